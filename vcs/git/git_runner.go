package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"
)

// CommandTimeout bounds every git invocation.
var CommandTimeout = 10 * time.Second

// runGitCommand runs git in repoPath and returns stdout and the trimmed stderr.
// Prompts are disabled so a missing credential never blocks a read.
func runGitCommand(repoPath string, args ...string) ([]byte, string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), CommandTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = repoPath
	cmd.Env = append(os.Environ(), "GIT_TERMINAL_PROMPT=0")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	stderrText := strings.TrimSpace(stderr.String())
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, stderrText, fmt.Errorf("git %s timed out after %s", args[0], CommandTimeout)
		}
		return nil, stderrText, err
	}

	return stdout.Bytes(), stderrText, nil
}

func gitCommandError(err error, stderr string) error {
	if stderr == "" {
		return err
	}
	return fmt.Errorf("git command failed: %s", stderr)
}
