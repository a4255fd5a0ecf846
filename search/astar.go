package search

import (
	"container/heap"
	"time"

	"github.com/katalvlaran/gridpath/maze"
)

// AStar performs A* search from the maze start to its goal using the
// Manhattan-distance heuristic. The frontier is a min-heap on
// f = g + h with a "lazy decrease-key" strategy: improving a cell pushes a
// fresh entry instead of reordering the old one, and stale entries are
// discarded against the closed set on pop. With unit edge costs and an
// admissible, consistent heuristic the returned path is shortest by edge
// count.
//
// Tie-break on equal f: lower row first, then lower column. This fixed
// total order decides which of several equal-cost shortest paths is
// returned and which cells are expanded first.
// Complexity: O((V + E) log V) time, O(V + E) memory.
func AStar(m *maze.Maze, opts ...Option) (Result, error) {
	// 1) Options and input validation.
	o, err := buildOptions(m, opts)
	if err != nil {
		return Result{}, err
	}

	// 2) Initialize runner state and seed the frontier.
	startAt := time.Now()
	n := m.Rows() * m.Cols()
	r := &aStarRunner{
		m:      m,
		opts:   o,
		goal:   m.Goal(),
		gScore: make(map[maze.Coord]int, n),
		parent: make(map[maze.Coord]maze.Coord, n),
		closed: make(map[maze.Coord]bool, n),
		pq:     make(frontier, 0, n),
	}
	r.init()

	// 3) Main loop.
	path, err := r.process()
	if err != nil {
		return Result{}, err
	}

	// 4) Assemble statistics; PathFound mirrors path presence.
	stats := Statistics{
		Algorithm:    AlgoAStar,
		NodesVisited: r.nodes,
		PathLength:   len(path),
		Elapsed:      time.Since(startAt),
		PathFound:    path != nil,
	}

	return Result{Path: path, Stats: stats}, nil
}

// aStarRunner holds the mutable state for a single A* execution.
type aStarRunner struct {
	m      *maze.Maze                // read-only during the search
	opts   Options                   // visitor hook, context
	goal   maze.Coord                // target cell
	gScore map[maze.Coord]int        // best-known cost from start
	parent map[maze.Coord]maze.Coord // predecessor links for reconstruction
	closed map[maze.Coord]bool       // finalized cells
	pq     frontier                  // lazy min-heap on (f, row, col)
	nodes  int                       // finalized-cell counter
}

// init seeds gScore and the frontier with the start cell.
func (r *aStarRunner) init() {
	start := r.m.Start()
	r.gScore[start] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, frontierEntry{coord: start, f: manhattan(start, r.goal)})
}

// process is the core loop: pop the minimum-f entry, drop it if stale,
// finalize it, then relax its neighbors. Returns the reconstructed path,
// or nil when the frontier empties without reaching the goal.
func (r *aStarRunner) process() ([]maze.Coord, error) {
	start := r.m.Start()
	for r.pq.Len() > 0 {
		select {
		case <-r.opts.Ctx.Done():
			return nil, r.opts.Ctx.Err()
		default:
		}

		// 1) Pop the smallest (f, row, col) entry.
		entry := heap.Pop(&r.pq).(frontierEntry)
		cur := entry.coord

		// 2) Lazy deletion: a better path already finalized this cell.
		if r.closed[cur] {
			continue
		}

		// 3) Finalize, count, notify.
		r.closed[cur] = true
		r.nodes++
		if cur != start {
			r.opts.visit(cur.Row, cur.Col, AlgoAStar)
		}

		// 4) Goal check on finalization, not on push.
		if cur == r.goal {
			return reconstructPath(r.parent, r.goal), nil
		}

		// 5) Relax neighbors with unit edge cost.
		r.relax(cur)
	}

	return nil, nil
}

// relax offers cur as predecessor to each open neighbor, pushing a fresh
// frontier entry whenever the tentative cost improves on the recorded one.
// Duplicate pushes for one cell are expected; step 2 of process discards
// the stale ones.
func (r *aStarRunner) relax(cur maze.Coord) {
	tentative := r.gScore[cur] + 1
	for _, nb := range r.m.Neighbors(cur.Row, cur.Col) {
		if r.closed[nb] {
			continue
		}
		if best, seen := r.gScore[nb]; seen && tentative >= best {
			continue
		}
		r.parent[nb] = cur
		r.gScore[nb] = tentative
		heap.Push(&r.pq, frontierEntry{coord: nb, f: tentative + manhattan(nb, r.goal)})
	}
}

// frontierEntry pairs a cell with the f-score it was pushed under.
type frontierEntry struct {
	coord maze.Coord
	f     int
}

// frontier is a min-heap of frontierEntry ordered by f ascending, then
// row, then column. The positional fallback is the documented tie-break
// among equal-f entries.
type frontier []frontierEntry

// Len returns the number of entries in the heap.
func (pq frontier) Len() int { return len(pq) }

// Less orders by f, then row, then column.
func (pq frontier) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	if pq[i].coord.Row != pq[j].coord.Row {
		return pq[i].coord.Row < pq[j].coord.Row
	}

	return pq[i].coord.Col < pq[j].coord.Col
}

// Swap swaps two entries.
func (pq frontier) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends x; called by heap.Push.
func (pq *frontier) Push(x interface{}) { *pq = append(*pq, x.(frontierEntry)) }

// Pop removes and returns the last entry; called by heap.Pop.
func (pq *frontier) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
