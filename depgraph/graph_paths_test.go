package depgraph_test

import (
	"testing"

	"github.com/LegacyCodeHQ/depclosure/depgraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExplainPath(t *testing.T) {
	graph := depgraph.DependencyGraph{
		"X": {"Y"},
		"Y": {"Z"},
		"Z": {"Leaf"},
	}

	path, err := depgraph.ExplainPath(graph, "X", "Leaf")
	require.NoError(t, err)
	assert.Equal(t, []string{"X", "Y", "Z", "Leaf"}, path)

	path, err = depgraph.ExplainPath(graph, "X", "Y")
	require.NoError(t, err)
	assert.Equal(t, []string{"X", "Y"}, path)
}

func TestExplainPath_PrefersShortestChain(t *testing.T) {
	graph := depgraph.DependencyGraph{
		"A": {"B", "D"},
		"B": {"C"},
		"C": {"D"},
	}

	path, err := depgraph.ExplainPath(graph, "A", "D")

	require.NoError(t, err)
	assert.Equal(t, []string{"A", "D"}, path)
}

func TestExplainPath_ThroughCycle(t *testing.T) {
	graph := depgraph.DependencyGraph{
		"A": {"B"},
		"B": {"A", "C"},
	}

	path, err := depgraph.ExplainPath(graph, "A", "C")

	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, path)
}

func TestExplainPath_Errors(t *testing.T) {
	graph := depgraph.DependencyGraph{
		"A": {"B"},
		"C": {},
	}

	_, err := depgraph.ExplainPath(graph, "A", "C")
	assert.ErrorIs(t, err, depgraph.ErrNoPath)

	_, err = depgraph.ExplainPath(graph, "B", "A")
	assert.ErrorIs(t, err, depgraph.ErrNoPath)

	_, err = depgraph.ExplainPath(graph, "A", "A")
	assert.ErrorIs(t, err, depgraph.ErrNoPath)

	_, err = depgraph.ExplainPath(graph, "Nope", "A")
	assert.ErrorIs(t, err, depgraph.ErrUnknownLibrary)
	assert.Contains(t, err.Error(), "Nope")
}

func TestClosureGraph(t *testing.T) {
	closure, err := depgraph.ClosureGraph(depgraph.DependencyGraph{
		"X": {"Y"},
		"Y": {"Z", "X"},
	})

	require.NoError(t, err)
	assert.Equal(t, depgraph.DependencyGraph{
		"X": {"Y", "Z"},
		"Y": {"X", "Z"},
		"Z": {},
	}, closure)
}
