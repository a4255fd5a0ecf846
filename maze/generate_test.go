package maze_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/gridpath/maze"
	"github.com/katalvlaran/gridpath/search"
)

// TestGenerate_Errors verifies parameter validation.
func TestGenerate_Errors(t *testing.T) {
	if _, err := maze.Generate(3, 10); !errors.Is(err, maze.ErrTooSmall) {
		t.Errorf("Generate(3,10) error = %v; want ErrTooSmall", err)
	}
	if _, err := maze.Generate(10, 3); !errors.Is(err, maze.ErrTooSmall) {
		t.Errorf("Generate(10,3) error = %v; want ErrTooSmall", err)
	}
	if _, err := maze.Generate(10, 10, maze.WithWallDensity(1.5)); !errors.Is(err, maze.ErrBadDensity) {
		t.Errorf("density 1.5 error = %v; want ErrBadDensity", err)
	}
	if _, err := maze.Generate(10, 10, maze.WithWallDensity(-0.1)); !errors.Is(err, maze.ErrBadDensity) {
		t.Errorf("density -0.1 error = %v; want ErrBadDensity", err)
	}
}

// TestGenerate_Deterministic ensures a fixed seed reproduces the exact maze.
func TestGenerate_Deterministic(t *testing.T) {
	a, err := maze.Generate(15, 20, maze.WithSeed(42))
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	b, err := maze.Generate(15, 20, maze.WithSeed(42))
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if a.String() != b.String() {
		t.Error("same seed produced different mazes")
	}
}

// TestGenerate_Invariants checks border walls and start/goal placement.
func TestGenerate_Invariants(t *testing.T) {
	rows, cols := 12, 17
	m, err := maze.Generate(rows, cols, maze.WithSeed(7))
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if m.Rows() != rows || m.Cols() != cols {
		t.Fatalf("dimensions = %d×%d; want %d×%d", m.Rows(), m.Cols(), rows, cols)
	}
	for r := 0; r < rows; r++ {
		for _, c := range []int{0, cols - 1} {
			if cell, _ := m.At(r, c); cell != maze.Wall {
				t.Fatalf("border cell (%d,%d) = %v; want Wall", r, c, cell)
			}
		}
	}
	for c := 0; c < cols; c++ {
		for _, r := range []int{0, rows - 1} {
			if cell, _ := m.At(r, c); cell != maze.Wall {
				t.Fatalf("border cell (%d,%d) = %v; want Wall", r, c, cell)
			}
		}
	}
	if want := (maze.Coord{Row: 1, Col: 1}); m.Start() != want {
		t.Errorf("Start() = %v; want %v", m.Start(), want)
	}
	if want := (maze.Coord{Row: rows - 2, Col: cols - 2}); m.Goal() != want {
		t.Errorf("Goal() = %v; want %v", m.Goal(), want)
	}
}

// TestGenerate_AlwaysSolvable runs BFS over several seeds and densities:
// the carved corridor must keep start and goal connected even at density 1.
func TestGenerate_AlwaysSolvable(t *testing.T) {
	for seed := int64(0); seed < 8; seed++ {
		for _, density := range []float64{0.0, 0.3, 1.0} {
			m, err := maze.Generate(20, 20, maze.WithSeed(seed), maze.WithWallDensity(density))
			if err != nil {
				t.Fatalf("Generate(seed=%d, density=%v) error: %v", seed, density, err)
			}
			res, err := search.BFS(m)
			if err != nil {
				t.Fatalf("BFS error: %v", err)
			}
			if !res.Stats.PathFound {
				t.Errorf("seed=%d density=%v: generated maze is unsolvable:\n%s", seed, density, m)
			}
		}
	}
}

// TestGenerate_MinimumSize covers the smallest legal maze.
func TestGenerate_MinimumSize(t *testing.T) {
	m, err := maze.Generate(4, 4, maze.WithSeed(1))
	if err != nil {
		t.Fatalf("Generate(4,4) error: %v", err)
	}
	res, err := search.BFS(m)
	if err != nil {
		t.Fatalf("BFS error: %v", err)
	}
	if !res.Stats.PathFound {
		t.Errorf("4×4 maze is unsolvable:\n%s", m)
	}
}

// TestSample verifies the fixed demonstration maze.
func TestSample(t *testing.T) {
	m := maze.Sample()
	if m.Rows() != 10 || m.Cols() != 10 {
		t.Fatalf("Sample dimensions = %d×%d; want 10×10", m.Rows(), m.Cols())
	}
	if want := (maze.Coord{Row: 1, Col: 1}); m.Start() != want {
		t.Errorf("Sample Start() = %v; want %v", m.Start(), want)
	}
	if want := (maze.Coord{Row: 8, Col: 8}); m.Goal() != want {
		t.Errorf("Sample Goal() = %v; want %v", m.Goal(), want)
	}
	res, err := search.BFS(m)
	if err != nil {
		t.Fatalf("BFS error: %v", err)
	}
	if !res.Stats.PathFound {
		t.Error("Sample maze must be solvable")
	}
}
