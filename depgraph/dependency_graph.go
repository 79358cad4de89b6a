package depgraph

import "sort"

// DependencyGraph represents a mapping from library names to their direct dependencies.
// Libraries that only appear as dependencies have no entry and are treated as leaves.
type DependencyGraph map[string][]string

// DependenciesOf returns the direct dependencies of library and whether it was declared.
func (g DependencyGraph) DependenciesOf(library string) ([]string, bool) {
	deps, ok := g[library]
	return deps, ok
}

// ContainsLibrary reports whether library is declared or referenced as a dependency.
func (g DependencyGraph) ContainsLibrary(library string) bool {
	if _, ok := g[library]; ok {
		return true
	}
	for _, deps := range g {
		for _, dep := range deps {
			if dep == library {
				return true
			}
		}
	}
	return false
}

// Libraries returns every declared or referenced library in lexicographic order.
func (g DependencyGraph) Libraries() []string {
	seen := make(map[string]bool, len(g))
	for library, deps := range g {
		seen[library] = true
		for _, dep := range deps {
			seen[dep] = true
		}
	}

	libraries := make([]string, 0, len(seen))
	for library := range seen {
		libraries = append(libraries, library)
	}
	sort.Strings(libraries)
	return libraries
}

// EdgeCount returns the number of direct dependency edges, self edges included.
func (g DependencyGraph) EdgeCount() int {
	count := 0
	for _, deps := range g {
		count += len(deps)
	}
	return count
}
