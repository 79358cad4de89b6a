package internal

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/LegacyCodeHQ/depclosure/cmd"
	"github.com/stretchr/testify/require"
)

// Depclosure runs the depclosure command tree with args and returns its stdout
// without the trailing newline.
func Depclosure(t *testing.T, args ...string) string {
	t.Helper()

	rootCmd := cmd.NewRootCommand()
	rootCmd.SetArgs(args)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)

	err := rootCmd.Execute()
	require.NoError(t, err, "stderr: %s", strings.TrimSpace(stderr.String()))

	return strings.TrimRight(stdout.String(), "\n")
}

// DependencyRepo is a throwaway git repository holding a dependency file.
type DependencyRepo struct {
	Dir  string
	File string
}

// NewDependencyRepo initializes a git repository in a temporary directory.
// The test is skipped when git is not installed.
func NewDependencyRepo(t *testing.T) *DependencyRepo {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git is not installed")
	}

	dir := t.TempDir()
	repo := &DependencyRepo{Dir: dir, File: filepath.Join(dir, "deps.txt")}
	repo.git(t, "init")
	repo.git(t, "config", "user.name", "Test User")
	repo.git(t, "config", "user.email", "test@example.com")
	return repo
}

// Commit writes content to the dependency file, commits it and returns the commit SHA.
func (r *DependencyRepo) Commit(t *testing.T, content, message string) string {
	t.Helper()
	r.Write(t, content)
	r.git(t, "add", filepath.Base(r.File))
	r.git(t, "commit", "-m", message)
	return r.git(t, "rev-parse", "HEAD")
}

// Write changes the dependency file in the working tree without committing.
func (r *DependencyRepo) Write(t *testing.T, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(r.File, []byte(content), 0o644))
}

func (r *DependencyRepo) git(t *testing.T, args ...string) string {
	t.Helper()
	c := exec.Command("git", args...)
	c.Dir = r.Dir

	var stdout bytes.Buffer
	c.Stdout = &stdout
	require.NoError(t, c.Run(), "git %s failed", strings.Join(args, " "))

	return strings.TrimSpace(stdout.String())
}
