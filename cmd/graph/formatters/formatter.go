package formatters

import (
	"sort"

	"github.com/LegacyCodeHQ/depclosure/depgraph"
)

// RenderOptions contains optional parameters for rendering dependency graphs.
type RenderOptions struct {
	// Label is an optional title or label for the graph
	Label string
	// Cycles lists the dependency cycles whose libraries and edges are highlighted
	Cycles []depgraph.Cycle
}

// Formatter is the interface that all graph formatters must implement.
type Formatter interface {
	// Format converts a dependency graph to a formatted string representation.
	Format(g depgraph.DependencyGraph, opts RenderOptions) (string, error)
	// GenerateURL returns a shareable visualization URL for output, if the format has one.
	GenerateURL(output string) (string, bool)
}

// CycleLibraries returns the set of libraries that belong to any of cycles.
func CycleLibraries(cycles []depgraph.Cycle) map[string]bool {
	libraries := make(map[string]bool)
	for _, cycle := range cycles {
		for _, library := range cycle.Libraries {
			libraries[library] = true
		}
	}
	return libraries
}

// SortedEdges returns the edges of g ordered by source then target. Self edges are skipped.
func SortedEdges(g depgraph.DependencyGraph) []depgraph.Edge {
	var edges []depgraph.Edge
	for _, library := range g.Libraries() {
		deps := append([]string(nil), g[library]...)
		sort.Strings(deps)
		for _, dep := range deps {
			if dep == library {
				continue
			}
			edges = append(edges, depgraph.Edge{From: library, To: dep})
		}
	}
	return edges
}
