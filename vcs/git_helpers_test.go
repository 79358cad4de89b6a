package vcs

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// requireGit skips the test when no git binary is available
func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git is not installed")
	}
}

// setupGitRepo initializes a git repository in a temporary directory
func setupGitRepo(t *testing.T, dir string) {
	t.Helper()
	runGit(t, dir, "init")

	// Configure git user to avoid errors
	runGit(t, dir, "config", "user.name", "Test User")
	runGit(t, dir, "config", "user.email", "test@example.com")
}

// runGit runs a git command in repoDir and returns its trimmed stdout
func runGit(t *testing.T, repoDir string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = repoDir

	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	require.NoError(t, cmd.Run(), "git %s failed", strings.Join(args, " "))

	return strings.TrimSpace(stdout.String())
}

// createFile creates a file with content
func createFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	filePath := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(filePath, []byte(content), 0644), "failed to create file %s", name)
	return filePath
}

// commitFile stages and commits a single file and returns the commit SHA
func commitFile(t *testing.T, repoDir, file, message string) string {
	t.Helper()
	runGit(t, repoDir, "add", file)
	runGit(t, repoDir, "commit", "-m", message)
	return runGit(t, repoDir, "rev-parse", "HEAD")
}
