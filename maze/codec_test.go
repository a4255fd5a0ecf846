package maze_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/katalvlaran/gridpath/maze"
)

// TestParse_Alphabets verifies that the '#'/'.' and '1'/'0' alphabets decode
// to the same maze, case-insensitively for S and G.
func TestParse_Alphabets(t *testing.T) {
	hash, err := maze.Parse("#####\n#S.G#\n#####")
	if err != nil {
		t.Fatalf("Parse(hash) error: %v", err)
	}
	digit, err := maze.Parse("11111\n1s0g1\n11111")
	if err != nil {
		t.Fatalf("Parse(digit) error: %v", err)
	}
	if hash.String() != digit.String() {
		t.Errorf("alphabets disagree:\n%s\nvs\n%s", hash, digit)
	}
}

// TestParse_UnknownRunesAreFree ensures unrecognized runes default to Free.
func TestParse_UnknownRunesAreFree(t *testing.T) {
	m, err := maze.Parse("S?G")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if c, _ := m.At(0, 1); c != maze.Free {
		t.Errorf("At(0,1) = %v; want Free", c)
	}
}

// TestParse_SkipsBlankLines ensures surrounding blank lines do not add rows.
func TestParse_SkipsBlankLines(t *testing.T) {
	m, err := maze.Parse("\n\nSG\n\n")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if m.Rows() != 1 || m.Cols() != 2 {
		t.Errorf("dimensions = %d×%d; want 1×2", m.Rows(), m.Cols())
	}
}

// TestParse_Errors covers structural failures surfaced through New.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		text string
		err  error
	}{
		{"Empty", "", maze.ErrEmptyMaze},
		{"OnlyBlankLines", "\n  \n", maze.ErrEmptyMaze},
		{"Ragged", "S.\nG", maze.ErrNonRectangular},
		{"NoStart", "..\n.G", maze.ErrNoStart},
		{"TwoGoals", "SG\nG.", maze.ErrDuplicateGoal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := maze.Parse(tc.text); !errors.Is(err, tc.err) {
				t.Errorf("Parse(%q) error = %v; want %v", tc.text, err, tc.err)
			}
		})
	}
}

// TestString_RoundTrip ensures Parse(m.String()) reproduces the rendering.
func TestString_RoundTrip(t *testing.T) {
	m := maze.Sample()
	again, err := maze.Parse(m.String())
	if err != nil {
		t.Fatalf("round-trip Parse error: %v", err)
	}
	if m.String() != again.String() {
		t.Errorf("round trip changed the maze:\n%s\nvs\n%s", m, again)
	}
	if !strings.HasSuffix(m.String(), "\n") {
		t.Error("String() should end with a newline")
	}
}
