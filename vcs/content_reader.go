package vcs

import (
	"fmt"
	"io"
	"os"
)

// StdinPath is the source path that selects standard input.
const StdinPath = "-"

// ContentReader is a function that reads file content given a file path.
// This allows the caller to control how files are read (filesystem, stdin, git, etc.)
type ContentReader func(filePath string) ([]byte, error)

// IOError reports a dependency source that could not be read.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("error reading file: %v", e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// FilesystemContentReader returns a ContentReader that reads from the local filesystem.
func FilesystemContentReader() ContentReader {
	return os.ReadFile
}

// StdinContentReader returns a ContentReader that reads r for StdinPath and
// falls back to the filesystem for every other path.
func StdinContentReader(r io.Reader) ContentReader {
	readFile := FilesystemContentReader()
	return func(filePath string) ([]byte, error) {
		if filePath != StdinPath {
			return readFile(filePath)
		}
		return io.ReadAll(r)
	}
}

// ReadSource reads the whole source with reader. Any failure is returned as *IOError.
func ReadSource(reader ContentReader, filePath string) (string, error) {
	content, err := reader(filePath)
	if err != nil {
		return "", &IOError{Path: filePath, Err: err}
	}
	return string(content), nil
}
