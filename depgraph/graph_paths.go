package depgraph

import (
	"errors"
	"fmt"

	graphlib "github.com/dominikbraun/graph"
)

var (
	// ErrUnknownLibrary is returned when a library is neither declared nor referenced.
	ErrUnknownLibrary = errors.New("unknown library")
	// ErrNoPath is returned when the target is not in the full dependency set of the source.
	ErrNoPath = errors.New("no dependency path")
)

// ExplainPath returns a shortest dependency chain from one library to another,
// both ends included. It answers why "to" is in the full dependency set of "from".
func ExplainPath(g DependencyGraph, from, to string) ([]string, error) {
	for _, library := range []string{from, to} {
		if !g.ContainsLibrary(library) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownLibrary, library)
		}
	}
	if from == to {
		return nil, fmt.Errorf("%w: a library never depends on itself", ErrNoPath)
	}

	lg, err := ToGraph(g)
	if err != nil {
		return nil, err
	}

	path, err := graphlib.ShortestPath(lg, from, to)
	if errors.Is(err, graphlib.ErrTargetNotReachable) {
		return nil, fmt.Errorf("%w from %s to %s", ErrNoPath, from, to)
	}
	if err != nil {
		return nil, err
	}
	return path, nil
}

// ClosureGraph returns a graph in which every library points to its full
// dependency set. Undeclared libraries appear with no dependencies.
func ClosureGraph(g DependencyGraph, opts ...ResolverOption) (DependencyGraph, error) {
	resolver, err := NewResolver(g, opts...)
	if err != nil {
		return nil, err
	}

	closure := make(DependencyGraph)
	for _, library := range g.Libraries() {
		closure[library] = resolver.Resolve(library)
	}
	return closure, nil
}
