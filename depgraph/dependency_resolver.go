package depgraph

import (
	"fmt"
	"sort"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/sirupsen/logrus"
)

// DefaultCacheSize is the number of resolved closures a Resolver keeps by default.
const DefaultCacheSize = 1024

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithCacheSize sets how many resolved closures are memoized. Zero disables the cache.
func WithCacheSize(size int) ResolverOption {
	return func(r *Resolver) {
		r.cacheSize = size
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(log *logrus.Logger) ResolverOption {
	return func(r *Resolver) {
		if log != nil {
			r.log = log
		}
	}
}

// Resolver computes full (transitive) dependency sets over a DependencyGraph.
// The graph is only read; a Resolver belongs to a single batch.
type Resolver struct {
	graph     DependencyGraph
	cacheSize int
	cache     *lru.Cache[string, []string]
	log       *logrus.Logger
}

// NewResolver creates a Resolver for graph.
func NewResolver(graph DependencyGraph, opts ...ResolverOption) (*Resolver, error) {
	r := &Resolver{
		graph:     graph,
		cacheSize: DefaultCacheSize,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.log == nil {
		r.log = logrus.New()
	}

	if r.cacheSize < 0 {
		return nil, fmt.Errorf("cache size must not be negative, got %d", r.cacheSize)
	}
	if r.cacheSize > 0 {
		cache, err := lru.New[string, []string](r.cacheSize)
		if err != nil {
			return nil, fmt.Errorf("failed to create closure cache: %w", err)
		}
		r.cache = cache
	}

	return r, nil
}

// Resolve returns every library reachable from library through one or more
// dependency edges, excluding library itself, in lexicographic order.
// Undeclared libraries are leaves. Cycles and self edges terminate the walk.
func (r *Resolver) Resolve(library string) []string {
	if r.cache != nil {
		if closure, ok := r.cache.Get(library); ok {
			r.log.WithField("library", library).Debug("closure cache hit")
			return cloneLibraries(closure)
		}
	}

	closure := r.walk(library)
	if r.cache != nil {
		r.cache.Add(library, closure)
	}
	return cloneLibraries(closure)
}

// walk is a depth-first traversal with an explicit stack. The visited set is
// seeded with the start library so it is never part of its own closure.
func (r *Resolver) walk(library string) []string {
	visited := map[string]bool{library: true}
	closure := make([]string, 0)

	stack := append([]string(nil), r.graph[library]...)
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if visited[current] {
			continue
		}
		visited[current] = true
		closure = append(closure, current)

		for _, dep := range r.graph[current] {
			if !visited[dep] {
				stack = append(stack, dep)
			}
		}
	}

	sort.Strings(closure)
	return closure
}

func cloneLibraries(libraries []string) []string {
	clone := make([]string, len(libraries))
	copy(clone, libraries)
	return clone
}
