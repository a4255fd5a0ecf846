package search

import (
	"time"

	"github.com/katalvlaran/gridpath/maze"
)

// DFS performs depth-first search from the maze start to its goal.
// The frontier is a LIFO stack; neighbors are pushed in reverse of the
// maze's fixed order so that pops come back in the forward order (a stack
// inverts whatever is pushed). Each unvisited neighbor is marked visited
// at push time, giving an eager pre-order visitation. DFS finds some
// simple path, not necessarily a shortest one, deterministically.
// Complexity: O(V + E) time, O(V) memory.
func DFS(m *maze.Maze, opts ...Option) (Result, error) {
	// 1) Options and input validation.
	o, err := buildOptions(m, opts)
	if err != nil {
		return Result{}, err
	}

	// 2) Seed the stack with the start cell.
	startAt := time.Now()
	start, goal := m.Start(), m.Goal()
	n := m.Rows() * m.Cols()
	stack := make([]maze.Coord, 0, n)
	stack = append(stack, start)
	visited := make(map[maze.Coord]bool, n)
	visited[start] = true
	parent := make(map[maze.Coord]maze.Coord, n)
	nodes := 0

	// 3) Main loop: pop, notify, goal-check, push unseen neighbors reversed.
	for len(stack) > 0 {
		select {
		case <-o.Ctx.Done():
			return Result{}, o.Ctx.Err()
		default:
		}

		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		nodes++
		if cur != start {
			o.visit(cur.Row, cur.Col, AlgoDFS)
		}
		if cur == goal {
			path := reconstructPath(parent, goal)

			return Result{
				Path: path,
				Stats: Statistics{
					Algorithm:    AlgoDFS,
					NodesVisited: nodes,
					PathLength:   len(path),
					Elapsed:      time.Since(startAt),
					PathFound:    true,
				},
			}, nil
		}
		nbs := m.Neighbors(cur.Row, cur.Col)
		for i := len(nbs) - 1; i >= 0; i-- {
			if nb := nbs[i]; !visited[nb] {
				visited[nb] = true
				parent[nb] = cur
				stack = append(stack, nb)
			}
		}
	}

	// 4) Stack exhausted: no path. A valid outcome, not an error.
	return Result{
		Stats: Statistics{
			Algorithm:    AlgoDFS,
			NodesVisited: nodes,
			Elapsed:      time.Since(startAt),
		},
	}, nil
}
