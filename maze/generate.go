package maze

import (
	"fmt"
	"math/rand"
	"time"
)

// Generation knobs (no magic literals in the build path).
const (
	// minGenDim is the smallest dimension that fits a wall border plus
	// distinct start and goal cells.
	minGenDim = 4
	// defaultWallDensity is the probability that an interior cell becomes a wall.
	defaultWallDensity = 0.3
)

// GenOption configures maze generation via functional arguments.
// An invalid option (e.g. density outside [0,1]) is recorded internally
// and surfaced as a sentinel error when Generate is invoked.
type GenOption func(*genConfig)

// genConfig holds generation parameters assembled from GenOptions.
type genConfig struct {
	seed    int64
	seeded  bool
	density float64
	err     error
}

// defaultGenConfig returns the generation defaults: time-based seed,
// defaultWallDensity, no pending option error.
func defaultGenConfig() genConfig {
	return genConfig{
		density: defaultWallDensity,
	}
}

// WithSeed fixes the RNG seed so generation is fully reproducible.
// Without it each call seeds from the wall clock.
func WithSeed(seed int64) GenOption {
	return func(cfg *genConfig) {
		cfg.seed = seed
		cfg.seeded = true
	}
}

// WithWallDensity sets the probability p that an interior cell becomes a
// wall. p must lie in [0.0, 1.0]; anything else surfaces ErrBadDensity.
func WithWallDensity(p float64) GenOption {
	return func(cfg *genConfig) {
		if p < 0 || p > 1 {
			cfg.err = fmt.Errorf("%w: %v", ErrBadDensity, p)
			return
		}
		cfg.density = p
	}
}

// Generate builds a rows×cols maze: a solid wall border, interior walls
// drawn with the configured density, Start at (1,1), Goal at
// (rows-2, cols-2), and finally an L-shaped corridor carved from start to
// goal so the two are always connected. The RNG is local to the call;
// the package never touches the global rand source.
//
// Returns ErrTooSmall when either dimension is below 4, or ErrBadDensity
// from an invalid option. The result always satisfies the Maze invariants
// because it is assembled through New.
// Complexity: O(rows×cols) time and memory.
func Generate(rows, cols int, opts ...GenOption) (*Maze, error) {
	// 1) Assemble options and fail fast on a recorded violation.
	cfg := defaultGenConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if rows < minGenDim || cols < minGenDim {
		return nil, fmt.Errorf("%w: got %d×%d", ErrTooSmall, rows, cols)
	}
	if !cfg.seeded {
		cfg.seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(cfg.seed))

	// 2) All free, then the border walls.
	cells := make([][]Cell, rows)
	for r := range cells {
		cells[r] = make([]Cell, cols)
	}
	for r := 0; r < rows; r++ {
		cells[r][0] = Wall
		cells[r][cols-1] = Wall
	}
	for c := 0; c < cols; c++ {
		cells[0][c] = Wall
		cells[rows-1][c] = Wall
	}

	// 3) Random interior walls. The sampled region leaves rows 1 and rows-2
	//    (and the matching columns) untouched, so start and goal survive.
	for r := 2; r < rows-2; r++ {
		for c := 2; c < cols-2; c++ {
			if rng.Float64() < cfg.density {
				cells[r][c] = Wall
			}
		}
	}

	// 4) Place start and goal.
	start := Coord{Row: 1, Col: 1}
	goal := Coord{Row: rows - 2, Col: cols - 2}
	cells[start.Row][start.Col] = Start
	cells[goal.Row][goal.Col] = Goal

	// 5) Carve an L-shaped corridor (horizontal, then vertical) so at least
	//    one start→goal path exists regardless of the random walls.
	r, c := start.Row, start.Col
	for c != goal.Col {
		if c < goal.Col {
			c++
		} else {
			c--
		}
		if cells[r][c] == Wall {
			cells[r][c] = Free
		}
	}
	for r != goal.Row {
		if r < goal.Row {
			r++
		} else {
			r--
		}
		if cells[r][c] == Wall {
			cells[r][c] = Free
		}
	}

	// 6) Route through New so every generated maze passes the same invariants.
	return New(cells)
}

// Sample returns the fixed 10×10 demonstration maze used across examples
// and docs. It always has exactly one path-connected Start/Goal pair.
func Sample() *Maze {
	const text = `
##########
#S..#....#
###.#.##.#
#......#.#
#.####.#.#
#......#.#
######.#.#
#........#
#.######G#
##########`
	m, err := Parse(text)
	if err != nil {
		// The literal above is a compile-time constant; failing to parse it
		// is a programming error, not a runtime condition.
		panic(fmt.Sprintf("maze: invalid sample maze: %v", err))
	}

	return m
}
