package depgraph

import (
	"fmt"
	"strings"
)

const (
	keywordDepends      = "depends"
	keywordOn           = "on"
	keywordHas          = "has"
	keywordNo           = "no"
	keywordDependencies = "dependencies"
)

// Declaration is one parsed input line: the subject library and its direct dependencies.
type Declaration struct {
	Library      string
	Dependencies []string
	// Line is the input line exactly as it was supplied.
	Line string
	// Position is the 1-based ordinal of the line in its batch.
	Position int
}

// FormatError reports a line that matches neither declaration grammar.
type FormatError struct {
	Line     string
	Position int
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid dependency line format: %s", e.Line)
}

// ParseDeclaration parses a single line of the form
// "<library> depends on <dep>..." or "<library> has no dependencies".
func ParseDeclaration(line string, position int) (Declaration, error) {
	parts := strings.Fields(line)

	if len(parts) == 4 &&
		parts[1] == keywordHas &&
		parts[2] == keywordNo &&
		parts[3] == keywordDependencies {
		return Declaration{
			Library:      parts[0],
			Dependencies: []string{},
			Line:         line,
			Position:     position,
		}, nil
	}

	if len(parts) < 3 || parts[1] != keywordDepends || parts[2] != keywordOn {
		return Declaration{}, &FormatError{Line: line, Position: position}
	}

	return Declaration{
		Library:      parts[0],
		Dependencies: deduplicateLibraries(parts[3:]),
		Line:         line,
		Position:     position,
	}, nil
}

// deduplicateLibraries removes duplicate entries while preserving insertion order
func deduplicateLibraries(libraries []string) []string {
	seen := make(map[string]bool, len(libraries))
	result := make([]string, 0, len(libraries))
	for _, library := range libraries {
		if !seen[library] {
			seen[library] = true
			result = append(result, library)
		}
	}
	return result
}
