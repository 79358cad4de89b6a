package depgraph

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// Resolution is the full dependency set of the subject library of one input line.
type Resolution struct {
	Library      string   `json:"library" yaml:"library"`
	Dependencies []string `json:"dependencies" yaml:"dependencies"`
}

// String renders the resolution in the input line grammar.
func (r Resolution) String() string {
	if len(r.Dependencies) == 0 {
		return fmt.Sprintf("%s %s %s %s", r.Library, keywordHas, keywordNo, keywordDependencies)
	}
	return fmt.Sprintf("%s %s %s %s", r.Library, keywordDepends, keywordOn, strings.Join(r.Dependencies, " "))
}

// BatchOptions configures ResolveBatch.
type BatchOptions struct {
	CacheSize int
	Logger    *logrus.Logger
}

// DefaultBatchOptions returns the options used by ComputeFullDependencies.
func DefaultBatchOptions() BatchOptions {
	return BatchOptions{CacheSize: DefaultCacheSize}
}

// ResolveBatch parses all lines, then resolves the subject of every line in input order.
// The result has exactly one Resolution per line, repeated subjects included.
// A malformed line aborts the batch with its *FormatError.
func ResolveBatch(lines []string, opts BatchOptions) ([]Resolution, error) {
	graph, declarations, err := BuildDependencyGraph(lines)
	if err != nil {
		return nil, err
	}

	log := opts.Logger
	if log == nil {
		log = logrus.New()
	}
	log.WithFields(logrus.Fields{
		"lines":     len(lines),
		"libraries": len(graph.Libraries()),
		"edges":     graph.EdgeCount(),
	}).Debug("dependency graph built")

	if log.IsLevelEnabled(logrus.DebugLevel) {
		logCycles(log, graph)
	}

	resolver, err := NewResolver(graph, WithCacheSize(opts.CacheSize), WithLogger(log))
	if err != nil {
		return nil, err
	}

	resolutions := make([]Resolution, 0, len(declarations))
	for _, declaration := range declarations {
		resolutions = append(resolutions, Resolution{
			Library:      declaration.Library,
			Dependencies: resolver.Resolve(declaration.Library),
		})
	}
	return resolutions, nil
}

// ComputeFullDependencies resolves lines and renders each result back into the line grammar.
func ComputeFullDependencies(lines []string) ([]string, error) {
	resolutions, err := ResolveBatch(lines, DefaultBatchOptions())
	if err != nil {
		return nil, err
	}
	return FormatResolutions(resolutions), nil
}

// FormatResolutions renders resolutions in the input line grammar, one line each.
func FormatResolutions(resolutions []Resolution) []string {
	lines := make([]string, 0, len(resolutions))
	for _, resolution := range resolutions {
		lines = append(lines, resolution.String())
	}
	return lines
}

func logCycles(log *logrus.Logger, graph DependencyGraph) {
	cycles, err := FindCycles(graph)
	if err != nil {
		log.WithError(err).Debug("cycle detection failed")
		return
	}
	for _, cycle := range cycles {
		log.WithField("libraries", strings.Join(cycle.Libraries, " ")).Debug("dependency cycle")
	}
}
