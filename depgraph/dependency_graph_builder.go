package depgraph

import "strings"

// SplitLines trims surrounding whitespace from text and splits it into lines.
// Text that is empty after trimming yields no lines. Carriage returns left by
// CRLF line endings are removed.
func SplitLines(text string) []string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}

	lines := strings.Split(trimmed, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// BuildDependencyGraph parses every line and builds the direct dependency graph.
// A library declared more than once keeps its last declaration.
// Parsing stops at the first malformed line and its *FormatError is returned as is.
// The returned declarations are in input order, one per line.
func BuildDependencyGraph(lines []string) (DependencyGraph, []Declaration, error) {
	graph := make(DependencyGraph, len(lines))
	declarations := make([]Declaration, 0, len(lines))

	for i, line := range lines {
		declaration, err := ParseDeclaration(line, i+1)
		if err != nil {
			return nil, nil, err
		}

		graph[declaration.Library] = declaration.Dependencies
		declarations = append(declarations, declaration)
	}

	return graph, declarations, nil
}
