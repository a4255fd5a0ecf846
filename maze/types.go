// Package maze defines core types, options, and sentinel errors
// for the maze subpackage of github.com/katalvlaran/gridpath.
package maze

import (
	"errors"
	"fmt"
)

// Sentinel errors for maze construction and generation.
var (
	// ErrEmptyMaze indicates the input grid has no rows or no columns.
	ErrEmptyMaze = errors.New("maze: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("maze: all rows must have the same length")
	// ErrBadCell indicates a cell value outside the Cell enum.
	ErrBadCell = errors.New("maze: invalid cell value")
	// ErrNoStart indicates the grid contains no Start cell.
	ErrNoStart = errors.New("maze: missing start cell")
	// ErrNoGoal indicates the grid contains no Goal cell.
	ErrNoGoal = errors.New("maze: missing goal cell")
	// ErrDuplicateStart indicates more than one Start cell.
	ErrDuplicateStart = errors.New("maze: more than one start cell")
	// ErrDuplicateGoal indicates more than one Goal cell.
	ErrDuplicateGoal = errors.New("maze: more than one goal cell")
	// ErrTooSmall indicates requested generation dimensions below the minimum.
	ErrTooSmall = errors.New("maze: generated maze must be at least 4×4")
	// ErrBadDensity indicates a wall density outside [0.0, 1.0].
	ErrBadDensity = errors.New("maze: wall density must lie in [0.0, 1.0]")
)

// Cell is the kind of a single maze cell.
type Cell uint8

const (
	// Free is an open, walkable cell.
	Free Cell = iota
	// Wall is an impassable cell.
	Wall
	// Start marks the unique entry cell. Start cells are walkable.
	Start
	// Goal marks the unique target cell. Goal cells are walkable.
	Goal
)

// String returns a human-readable cell name.
func (c Cell) String() string {
	switch c {
	case Free:
		return "Free"
	case Wall:
		return "Wall"
	case Start:
		return "Start"
	case Goal:
		return "Goal"
	default:
		return fmt.Sprintf("Cell(%d)", uint8(c))
	}
}

// Coord addresses a cell by (Row, Col). Coords compare structurally and
// may be used as map keys in visited sets and predecessor maps.
type Coord struct {
	Row, Col int
}

// String renders the coordinate as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Maze is an immutable rectangular grid with exactly one Start and one Goal.
// The grid is deep-copied on construction; all methods are pure queries,
// so a Maze may be read concurrently by independent searches.
type Maze struct {
	rows, cols int
	cells      [][]Cell
	start      Coord
	goal       Coord
}

// neighborOffsets lists the orthogonal moves in the contractual order:
// right, down, left, up.
var neighborOffsets = [4][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}
