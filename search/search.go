package search

import (
	"fmt"

	"github.com/katalvlaran/gridpath/maze"
)

// Run dispatches to the algorithm selected by algo. It is the only public
// entry point besides the three individual algorithms; an out-of-range
// enum value yields ErrUnknownAlgorithm with no partial state left behind.
func Run(m *maze.Maze, algo Algorithm, opts ...Option) (Result, error) {
	switch algo {
	case AlgoBFS:
		return BFS(m, opts...)
	case AlgoDFS:
		return DFS(m, opts...)
	case AlgoAStar:
		return AStar(m, opts...)
	default:
		return Result{}, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, uint8(algo))
	}
}

// buildOptions assembles Options from functional arguments and validates
// the maze, shared by all three algorithms.
func buildOptions(m *maze.Maze, opts []Option) (Options, error) {
	if m == nil {
		return Options{}, ErrNilMaze
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, nil
}

// manhattan is the A* heuristic: |Δrow| + |Δcol|. With unit-cost
// orthogonal moves it is admissible and consistent, which makes A* optimal.
func manhattan(a, b maze.Coord) int {
	dr, dc := a.Row-b.Row, a.Col-b.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}

	return dr + dc
}

// reconstructPath walks predecessor links backward from goal until a
// coordinate with no predecessor (the start) is reached, then reverses
// the collected sequence so it runs start→goal inclusive. Callers invoke
// it only after the goal has actually been reached.
func reconstructPath(parent map[maze.Coord]maze.Coord, goal maze.Coord) []maze.Coord {
	path := make([]maze.Coord, 0, len(parent)+1)
	for cur := goal; ; {
		path = append(path, cur)
		prev, ok := parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
