package git

import (
	"fmt"
	"path/filepath"
	"strings"
)

// GetRepositoryRoot returns the absolute path to the repository root
func GetRepositoryRoot(repoPath string) (string, error) {
	stdout, stderr, err := runGitCommand(repoPath, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", gitCommandError(err, stderr)
	}

	return strings.TrimSpace(string(stdout)), nil
}

// GetFileContentFromCommit returns the content of relPath as recorded in commitID.
func GetFileContentFromCommit(repoPath, commitID, relPath string) ([]byte, error) {
	if err := validateCommit(repoPath, commitID); err != nil {
		return nil, err
	}
	if err := validateGitRelPath(relPath); err != nil {
		return nil, err
	}

	stdout, stderr, err := runGitCommand(repoPath, "show", fmt.Sprintf("%s:%s", commitID, relPath))
	if err != nil {
		return nil, gitCommandError(err, stderr)
	}
	return stdout, nil
}

func validateGitRef(ref string) error {
	if ref == "" {
		return fmt.Errorf("git reference cannot be empty")
	}
	if strings.HasPrefix(ref, "-") {
		return fmt.Errorf("git reference cannot start with '-': %q", ref)
	}
	if strings.ContainsAny(ref, "\x00\n\r\t ") {
		return fmt.Errorf("git reference contains whitespace or NUL: %q", ref)
	}
	return nil
}

func validateGitRelPath(path string) error {
	if path == "" {
		return fmt.Errorf("git path cannot be empty")
	}
	if filepath.IsAbs(path) {
		return fmt.Errorf("git path must be relative: %q", path)
	}
	if strings.Contains(path, "\x00") {
		return fmt.Errorf("git path contains NUL: %q", path)
	}
	cleaned := filepath.Clean(path)
	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return fmt.Errorf("git path escapes repository: %q", path)
	}
	return nil
}

// validateCommit checks if the given commit reference exists in the repository
func validateCommit(repoPath, commitID string) error {
	if err := validateGitRef(commitID); err != nil {
		return err
	}

	if _, stderr, err := runGitCommand(repoPath, "rev-parse", "--verify", commitID+"^{commit}"); err != nil {
		if stderr != "" {
			return fmt.Errorf("invalid commit reference '%s': %s", commitID, stderr)
		}
		return fmt.Errorf("invalid commit reference '%s'", commitID)
	}

	return nil
}
