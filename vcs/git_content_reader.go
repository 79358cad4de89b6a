package vcs

import (
	"fmt"
	"path/filepath"

	"github.com/LegacyCodeHQ/depclosure/vcs/git"
)

// GitCommitContentReader returns a ContentReader that reads files as they were at commitID.
// Relative paths are resolved against repoPath. Every path must lie inside the repository.
func GitCommitContentReader(repoPath, commitID string) ContentReader {
	return func(filePath string) ([]byte, error) {
		repoRoot, err := git.GetRepositoryRoot(repoPath)
		if err != nil {
			return nil, err
		}

		if !filepath.IsAbs(filePath) {
			filePath = filepath.Join(repoPath, filePath)
		}
		absPath, err := filepath.Abs(filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve path %s: %w", filePath, err)
		}
		resolvedRoot, err := filepath.EvalSymlinks(repoRoot)
		if err != nil {
			return nil, err
		}
		if resolvedDir, err := filepath.EvalSymlinks(filepath.Dir(absPath)); err == nil {
			absPath = filepath.Join(resolvedDir, filepath.Base(absPath))
		}

		relPath, err := filepath.Rel(resolvedRoot, absPath)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve %s inside repository: %w", filePath, err)
		}

		return git.GetFileContentFromCommit(repoPath, commitID, filepath.ToSlash(relPath))
	}
}
