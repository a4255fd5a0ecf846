package search

import (
	"time"

	"github.com/katalvlaran/gridpath/maze"
)

// BFS performs breadth-first search from the maze start to its goal.
// The frontier is a FIFO queue and every edge costs one, so the first time
// the goal is dequeued the reconstructed path is a shortest path by edge
// count. Exploration follows the maze's fixed neighbor order, making runs
// on an unmodified maze fully deterministic.
// Complexity: O(V + E) time, O(V) memory.
func BFS(m *maze.Maze, opts ...Option) (Result, error) {
	// 1) Options and input validation.
	o, err := buildOptions(m, opts)
	if err != nil {
		return Result{}, err
	}

	// 2) Seed the frontier with the start cell.
	startAt := time.Now()
	start, goal := m.Start(), m.Goal()
	n := m.Rows() * m.Cols()
	queue := make([]maze.Coord, 0, n)
	queue = append(queue, start)
	visited := make(map[maze.Coord]bool, n)
	visited[start] = true
	parent := make(map[maze.Coord]maze.Coord, n)
	nodes := 0

	// 3) Main loop: dequeue, notify, goal-check, enqueue unseen neighbors.
	for len(queue) > 0 {
		select {
		case <-o.Ctx.Done():
			return Result{}, o.Ctx.Err()
		default:
		}

		cur := queue[0]
		queue = queue[1:]
		nodes++
		if cur != start {
			o.visit(cur.Row, cur.Col, AlgoBFS)
		}
		if cur == goal {
			path := reconstructPath(parent, goal)

			return Result{
				Path: path,
				Stats: Statistics{
					Algorithm:    AlgoBFS,
					NodesVisited: nodes,
					PathLength:   len(path),
					Elapsed:      time.Since(startAt),
					PathFound:    true,
				},
			}, nil
		}
		// Mark on enqueue so no cell enters the queue twice.
		for _, nb := range m.Neighbors(cur.Row, cur.Col) {
			if !visited[nb] {
				visited[nb] = true
				parent[nb] = cur
				queue = append(queue, nb)
			}
		}
	}

	// 4) Frontier exhausted: no path. A valid outcome, not an error.
	return Result{
		Stats: Statistics{
			Algorithm:    AlgoBFS,
			NodesVisited: nodes,
			Elapsed:      time.Since(startAt),
		},
	}, nil
}
