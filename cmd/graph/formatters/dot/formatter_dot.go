package dot

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/LegacyCodeHQ/depclosure/cmd/graph/formatters"
	"github.com/LegacyCodeHQ/depclosure/depgraph"
)

// Formatter formats dependency graphs as Graphviz DOT.
type Formatter struct{}

// Format converts the dependency graph to Graphviz DOT format.
// Libraries in a cycle are filled and edges inside a cycle are drawn red and dashed.
func (f *Formatter) Format(g depgraph.DependencyGraph, opts formatters.RenderOptions) (string, error) {
	var sb strings.Builder
	sb.WriteString("digraph dependencies {\n")
	sb.WriteString("  rankdir=LR;\n")
	sb.WriteString("  node [shape=box];\n")

	// Add label if provided
	if opts.Label != "" {
		sb.WriteString(fmt.Sprintf("  label=%q;\n", opts.Label))
		sb.WriteString("  labelloc=t;\n")
		sb.WriteString("  labeljust=l;\n")
		sb.WriteString("  fontsize=10;\n")
		sb.WriteString("  fontname=Courier;\n")
	}

	libraries := g.Libraries()
	if len(libraries) > 0 {
		sb.WriteString("\n")
	}

	cycleLibraries := formatters.CycleLibraries(opts.Cycles)
	for _, library := range libraries {
		if cycleLibraries[library] {
			sb.WriteString(fmt.Sprintf("  %q [style=filled, fillcolor=mistyrose, color=red];\n", library))
			continue
		}
		sb.WriteString(fmt.Sprintf("  %q;\n", library))
	}

	edges := formatters.SortedEdges(g)
	if len(edges) > 0 {
		sb.WriteString("\n")
	}

	cycleEdges := depgraph.CycleEdges(g, opts.Cycles)
	for _, edge := range edges {
		if cycleEdges[edge] {
			sb.WriteString(fmt.Sprintf("  %q -> %q [color=red, style=dashed];\n", edge.From, edge.To))
			continue
		}
		sb.WriteString(fmt.Sprintf("  %q -> %q;\n", edge.From, edge.To))
	}

	sb.WriteString("}")
	return sb.String(), nil
}

// GenerateURL creates a GraphvizOnline URL with the DOT graph embedded.
func (f *Formatter) GenerateURL(output string) (string, bool) {
	encoded := url.PathEscape(output)
	return fmt.Sprintf("https://dreampuf.github.io/GraphvizOnline/?engine=dot#%s", encoded), true
}
