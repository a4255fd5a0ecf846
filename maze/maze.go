package maze

import (
	"fmt"
)

// New constructs a Maze from a non-empty, rectangular 2D slice of cells.
// It deep-copies the input to ensure immutability and validates the
// exactly-one-Start / exactly-one-Goal invariant, failing fast with a
// sentinel error otherwise. Search algorithms rely on this invariant
// having been established here and never re-check it.
// Complexity: O(rows×cols) time and memory.
func New(cells [][]Cell) (*Maze, error) {
	// 1) Reject empty input before touching any row.
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyMaze
	}
	rows, cols := len(cells), len(cells[0])

	// 2) Single pass: shape check, value check, start/goal discovery, deep copy.
	grid := make([][]Cell, rows)
	var start, goal Coord
	var starts, goals int
	for r, row := range cells {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), cols)
		}
		grid[r] = make([]Cell, cols)
		for c, cell := range row {
			switch cell {
			case Free, Wall:
			case Start:
				starts++
				start = Coord{Row: r, Col: c}
			case Goal:
				goals++
				goal = Coord{Row: r, Col: c}
			default:
				return nil, fmt.Errorf("%w: %d at (%d,%d)", ErrBadCell, uint8(cell), r, c)
			}
			grid[r][c] = cell
		}
	}

	// 3) Enforce the start/goal invariant (exactly one of each).
	switch {
	case starts == 0:
		return nil, ErrNoStart
	case starts > 1:
		return nil, ErrDuplicateStart
	case goals == 0:
		return nil, ErrNoGoal
	case goals > 1:
		return nil, ErrDuplicateGoal
	}

	return &Maze{rows: rows, cols: cols, cells: grid, start: start, goal: goal}, nil
}

// Rows returns the number of grid rows.
func (m *Maze) Rows() int { return m.rows }

// Cols returns the number of grid columns.
func (m *Maze) Cols() int { return m.cols }

// Start returns the coordinate of the unique Start cell.
func (m *Maze) Start() Coord { return m.start }

// Goal returns the coordinate of the unique Goal cell.
func (m *Maze) Goal() Coord { return m.goal }

// InBounds reports whether (row, col) lies within the grid boundaries.
// Complexity: O(1).
func (m *Maze) InBounds(row, col int) bool {
	return row >= 0 && row < m.rows && col >= 0 && col < m.cols
}

// Passable reports whether (row, col) can be stepped on: in bounds and
// not a Wall. Start and Goal cells are passable.
// Complexity: O(1).
func (m *Maze) Passable(row, col int) bool {
	return m.InBounds(row, col) && m.cells[row][col] != Wall
}

// Neighbors returns the passable orthogonal neighbors of (row, col) in the
// fixed order right, down, left, up. The order is contractual: it determines
// DFS tie-breaking and the relative exploration order of BFS and A*.
// Complexity: O(1), at most four probes.
func (m *Maze) Neighbors(row, col int) []Coord {
	nbs := make([]Coord, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		nr, nc := row+d[0], col+d[1]
		if m.Passable(nr, nc) {
			nbs = append(nbs, Coord{Row: nr, Col: nc})
		}
	}

	return nbs
}

// At returns the cell at (row, col) and ok=true, or ok=false out of bounds.
// Complexity: O(1).
func (m *Maze) At(row, col int) (Cell, bool) {
	if !m.InBounds(row, col) {
		return Free, false
	}

	return m.cells[row][col], true
}
