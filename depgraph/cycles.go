package depgraph

import (
	"errors"
	"sort"

	graphlib "github.com/dominikbraun/graph"
)

// Cycle is a set of libraries that are mutually reachable, or a single
// library that declares itself as a dependency.
type Cycle struct {
	Libraries []string
}

// Edge identifies a directed dependency edge.
type Edge struct {
	From string
	To   string
}

// ToGraph converts g into a directed graphlib graph. Every declared or referenced
// library becomes a vertex. Self edges are dropped because they never affect a closure.
func ToGraph(g DependencyGraph) (graphlib.Graph[string, string], error) {
	lg := graphlib.New(graphlib.StringHash, graphlib.Directed())

	for _, library := range g.Libraries() {
		if err := lg.AddVertex(library); err != nil && !errors.Is(err, graphlib.ErrVertexAlreadyExists) {
			return nil, err
		}
	}

	for _, library := range declaredLibraries(g) {
		for _, dep := range g[library] {
			if dep == library {
				continue
			}
			if err := lg.AddEdge(library, dep); err != nil && !errors.Is(err, graphlib.ErrEdgeAlreadyExists) {
				return nil, err
			}
		}
	}

	return lg, nil
}

// FindCycles returns the dependency cycles of g, sorted by their first library.
// Libraries inside each cycle are sorted.
func FindCycles(g DependencyGraph) ([]Cycle, error) {
	lg, err := ToGraph(g)
	if err != nil {
		return nil, err
	}

	components, err := graphlib.StronglyConnectedComponents(lg)
	if err != nil {
		return nil, err
	}

	var cycles []Cycle
	for _, component := range components {
		if len(component) < 2 && !hasSelfEdge(g, component[0]) {
			continue
		}
		libraries := append([]string(nil), component...)
		sort.Strings(libraries)
		cycles = append(cycles, Cycle{Libraries: libraries})
	}

	sort.Slice(cycles, func(i, j int) bool {
		return cycles[i].Libraries[0] < cycles[j].Libraries[0]
	})
	return cycles, nil
}

// CycleEdges returns the set of edges whose endpoints belong to the same cycle.
func CycleEdges(g DependencyGraph, cycles []Cycle) map[Edge]bool {
	member := make(map[string]int)
	for i, cycle := range cycles {
		for _, library := range cycle.Libraries {
			member[library] = i
		}
	}

	edges := make(map[Edge]bool)
	for library, deps := range g {
		from, ok := member[library]
		if !ok {
			continue
		}
		for _, dep := range deps {
			if to, ok := member[dep]; ok && to == from {
				edges[Edge{From: library, To: dep}] = true
			}
		}
	}
	return edges
}

func hasSelfEdge(g DependencyGraph, library string) bool {
	deps, ok := g.DependenciesOf(library)
	if !ok {
		return false
	}
	for _, dep := range deps {
		if dep == library {
			return true
		}
	}
	return false
}

func declaredLibraries(g DependencyGraph) []string {
	libraries := make([]string, 0, len(g))
	for library := range g {
		libraries = append(libraries, library)
	}
	sort.Strings(libraries)
	return libraries
}
