// Package search defines core types, options, and sentinel errors
// for the search subpackage of github.com/katalvlaran/gridpath.
package search

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/katalvlaran/gridpath/maze"
)

// Sentinel errors for search execution.
var (
	// ErrNilMaze is returned if a nil maze pointer is passed.
	ErrNilMaze = errors.New("search: maze is nil")

	// ErrUnknownAlgorithm is returned for an unrecognized algorithm
	// name or enum value.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")
)

// Algorithm selects one of the implemented search strategies.
type Algorithm uint8

const (
	// AlgoBFS is breadth-first search: shortest path by edge count.
	AlgoBFS Algorithm = iota
	// AlgoDFS is depth-first search: some path, not necessarily shortest.
	AlgoDFS
	// AlgoAStar is A* with the Manhattan heuristic: shortest path by edge count.
	AlgoAStar
)

// String returns the canonical algorithm name.
func (a Algorithm) String() string {
	switch a {
	case AlgoBFS:
		return "BFS"
	case AlgoDFS:
		return "DFS"
	case AlgoAStar:
		return "A*"
	default:
		return fmt.Sprintf("Algorithm(%d)", uint8(a))
	}
}

// MarshalText encodes the algorithm as its canonical name.
func (a Algorithm) MarshalText() ([]byte, error) {
	switch a {
	case AlgoBFS, AlgoDFS, AlgoAStar:
		return []byte(a.String()), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, uint8(a))
	}
}

// UnmarshalText decodes an algorithm name via ParseAlgorithm.
func (a *Algorithm) UnmarshalText(text []byte) error {
	parsed, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}
	*a = parsed

	return nil
}

// ParseAlgorithm maps a name to its Algorithm, case-insensitively:
// "BFS", "DFS", "ASTAR" or "A*". Anything else yields ErrUnknownAlgorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "BFS":
		return AlgoBFS, nil
	case "DFS":
		return AlgoDFS, nil
	case "ASTAR", "A*":
		return AlgoAStar, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}

// Visitor observes the search: OnVisit is called synchronously once per
// visited non-start cell, in visitation order, while visualization is
// enabled. The engine ignores anything the visitor does.
type Visitor interface {
	OnVisit(row, col int, algo Algorithm)
}

// VisitorFunc adapts a plain function to the Visitor interface.
type VisitorFunc func(row, col int, algo Algorithm)

// OnVisit implements Visitor.
func (f VisitorFunc) OnVisit(row, col int, algo Algorithm) { f(row, col, algo) }

// Statistics records the outcome of one search run. A fresh value is
// produced per invocation and returned by value: callers own it outright.
type Statistics struct {
	// Algorithm that produced these statistics.
	Algorithm Algorithm `json:"algorithm"`
	// NodesVisited counts cells finalized by the search; never exceeds rows×cols.
	NodesVisited int `json:"nodes_visited"`
	// PathLength is the number of cells on the returned path, 0 when none.
	PathLength int `json:"path_length"`
	// Elapsed is the wall time of the full search loop (monotonic clock).
	Elapsed time.Duration `json:"elapsed"`
	// PathFound reports whether a start→goal path was discovered.
	PathFound bool `json:"path_found"`
}

// ElapsedSeconds returns the run time in seconds.
func (s Statistics) ElapsedSeconds() float64 { return s.Elapsed.Seconds() }

// Result is the outcome of one search run.
type Result struct {
	// Path runs start→goal inclusive; nil when no path exists.
	Path []maze.Coord
	// Stats is always populated, regardless of success.
	Stats Statistics
}

// Option configures search behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and the visitor hook for one search run.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Visitor observes visited cells; nil means no observation.
	Visitor Visitor

	// Visualize gates all Visitor calls. When false the search behaves
	// identically (statistics, result) but stays silent; this is the
	// headless-testing mode.
	Visualize bool
}

// DefaultOptions returns an Options with sane defaults:
//   - context.Background()
//   - no visitor
//   - visualization enabled (moot without a visitor).
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Visitor:   nil,
		Visualize: true,
	}
}

// WithContext sets a custom context for cancellation.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithVisitor installs the visitor to notify per visited cell.
// Passing nil has no effect.
func WithVisitor(v Visitor) Option {
	return func(o *Options) {
		if v != nil {
			o.Visitor = v
		}
	}
}

// WithVisualize enables or disables Visitor notifications.
// Disabling changes nothing but the notifications themselves.
func WithVisualize(on bool) Option {
	return func(o *Options) {
		o.Visualize = on
	}
}

// visit notifies the visitor for (row, col) when visualization is active.
func (o *Options) visit(row, col int, algo Algorithm) {
	if o.Visualize && o.Visitor != nil {
		o.Visitor.OnVisit(row, col, algo)
	}
}
