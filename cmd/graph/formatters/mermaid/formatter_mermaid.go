package mermaid

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/LegacyCodeHQ/depclosure/cmd/graph/formatters"
	"github.com/LegacyCodeHQ/depclosure/depgraph"
)

// Formatter formats dependency graphs as Mermaid.js flowcharts.
type Formatter struct{}

// Format converts the dependency graph to Mermaid.js flowchart format.
func (f *Formatter) Format(g depgraph.DependencyGraph, opts formatters.RenderOptions) (string, error) {
	var sb strings.Builder

	// Add title if label provided
	if opts.Label != "" {
		sb.WriteString("---\n")
		sb.WriteString(fmt.Sprintf("title: %s\n", opts.Label))
		sb.WriteString("---\n")
	}

	sb.WriteString("flowchart LR\n")

	for i, cycle := range opts.Cycles {
		sb.WriteString(fmt.Sprintf("%%%% C%d: %s\n", i+1, strings.Join(cycle.Libraries, ", ")))
	}

	// Mermaid node IDs can't hold arbitrary characters, so libraries get
	// positional IDs in lexicographic order.
	libraries := g.Libraries()
	nodeIDs := make(map[string]string, len(libraries))
	for i, library := range libraries {
		nodeIDs[library] = fmt.Sprintf("n%d", i)
		label := strings.ReplaceAll(library, "\"", "#quot;")
		sb.WriteString(fmt.Sprintf("    %s[\"%s\"]\n", nodeIDs[library], label))
	}

	edges := formatters.SortedEdges(g)
	cycleEdges := depgraph.CycleEdges(g, opts.Cycles)
	var cycleEdgeIndices []int
	if len(edges) > 0 {
		sb.WriteString("\n")
	}
	for i, edge := range edges {
		sb.WriteString(fmt.Sprintf("    %s --> %s\n", nodeIDs[edge.From], nodeIDs[edge.To]))
		if cycleEdges[edge] {
			cycleEdgeIndices = append(cycleEdgeIndices, i)
		}
	}

	cycleLibraries := formatters.CycleLibraries(opts.Cycles)
	var stylesSB strings.Builder
	for _, library := range libraries {
		if cycleLibraries[library] {
			stylesSB.WriteString(fmt.Sprintf("    style %s stroke:#d62728,stroke-width:3px\n", nodeIDs[library]))
		}
	}
	for _, idx := range cycleEdgeIndices {
		stylesSB.WriteString(fmt.Sprintf("    linkStyle %d stroke:#d62728,stroke-width:3px,stroke-dasharray: 5 5\n", idx))
	}
	if stylesSB.Len() > 0 {
		sb.WriteString("\n")
		sb.WriteString(stylesSB.String())
	}

	return strings.TrimSuffix(sb.String(), "\n"), nil
}

// GenerateURL creates a mermaid.live URL with the diagram embedded.
func (f *Formatter) GenerateURL(output string) (string, bool) {
	payload := map[string]interface{}{
		"code": output,
		"mermaid": map[string]interface{}{
			"theme": "default",
		},
		"autoSync":      true,
		"updateDiagram": true,
	}

	jsonBytes, err := json.Marshal(payload)
	if err != nil {
		// Fallback: just return the code URL-encoded
		return fmt.Sprintf("https://mermaid.live/edit#%s", url.PathEscape(output)), true
	}

	encoded := base64.URLEncoding.EncodeToString(jsonBytes)
	return fmt.Sprintf("https://mermaid.live/edit#base64:%s", encoded), true
}
