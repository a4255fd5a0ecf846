package maze

import (
	"strings"
)

// Text-encoding runes. Both the '#'/'.' and the '1'/'0' alphabets are
// accepted on input; output always uses '#' and '.'.
const (
	runeWall      = '#'
	runeWallDigit = '1'
	runeFree      = '.'
	runeFreeDigit = '0'
	runeStart     = 'S'
	runeGoal      = 'G'
)

// Parse decodes a text maze, one row per line. Recognized runes:
//
//	'#' or '1'       Wall
//	'.' or '0'       Free
//	'S' / 's'        Start
//	'G' / 'g'        Goal
//
// Any other rune decodes as Free. Blank lines are skipped, so trailing
// newlines and surrounding whitespace are harmless. Structural validation
// (rectangularity, exactly one Start and Goal) is delegated to New.
// Complexity: O(len(s)).
func Parse(s string) (*Maze, error) {
	var cells [][]Cell
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		row := make([]Cell, 0, len(line))
		for _, r := range line {
			row = append(row, cellOf(r))
		}
		cells = append(cells, row)
	}
	if len(cells) == 0 {
		return nil, ErrEmptyMaze
	}

	return New(cells)
}

// cellOf maps a single rune to its Cell; unknown runes default to Free.
func cellOf(r rune) Cell {
	switch r {
	case runeWall, runeWallDigit:
		return Wall
	case runeFree, runeFreeDigit:
		return Free
	case runeStart, 's':
		return Start
	case runeGoal, 'g':
		return Goal
	default:
		return Free
	}
}

// String renders the maze in the '#'/'.'/'S'/'G' alphabet, one row per
// line, with a trailing newline. Parse(m.String()) reproduces m.
// Complexity: O(rows×cols).
func (m *Maze) String() string {
	var b strings.Builder
	b.Grow(m.rows * (m.cols + 1))
	for _, row := range m.cells {
		for _, cell := range row {
			switch cell {
			case Wall:
				b.WriteRune(runeWall)
			case Start:
				b.WriteRune(runeStart)
			case Goal:
				b.WriteRune(runeGoal)
			default:
				b.WriteRune(runeFree)
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}
