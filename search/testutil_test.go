// Package search_test provides lightweight testing helpers and fixtures
// shared across the *_test.go files in this package.
package search_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/maze"
	"github.com/katalvlaran/gridpath/search"
)

// Shared fixture mazes. Visit counts and paths asserted in the tests were
// derived by hand from the fixed neighbor order (right, down, left, up).
const (
	// simpleText has one shortest path and a couple of dead ends.
	simpleText = `
#####
#S..#
#.#.#
#..G#
#####`

	// openText is the 5×5 scenario with a wall border and a free interior.
	openText = `
#####
#S..#
#...#
#..G#
#####`

	// blockedText walls the goal off entirely; only two cells are reachable.
	blockedText = `
#####
#S.##
#####
##.G#
#####`

	// corridorText is a straight 1×5 corridor with no choice points.
	corridorText = `S...G`
)

// mustParse decodes a fixture maze or fails the test immediately.
func mustParse(t *testing.T, text string) *maze.Maze {
	t.Helper()
	m, err := maze.Parse(text)
	require.NoError(t, err, "fixture maze must parse")

	return m
}

// coords is shorthand for building expected paths.
func coords(rc ...[2]int) []maze.Coord {
	out := make([]maze.Coord, len(rc))
	for i, p := range rc {
		out[i] = maze.Coord{Row: p[0], Col: p[1]}
	}

	return out
}

// requireValidPath asserts the path validity invariant: endpoints at start
// and goal, consecutive cells Manhattan-adjacent and passable, no cell
// repeated.
func requireValidPath(t *testing.T, m *maze.Maze, path []maze.Coord) {
	t.Helper()
	require.NotEmpty(t, path, "path must not be empty")
	require.Equal(t, m.Start(), path[0], "path must begin at start")
	require.Equal(t, m.Goal(), path[len(path)-1], "path must end at goal")

	seen := make(map[maze.Coord]bool, len(path))
	for i, c := range path {
		require.True(t, m.Passable(c.Row, c.Col), "path cell %v must be passable", c)
		require.False(t, seen[c], "path revisits %v", c)
		seen[c] = true
		if i == 0 {
			continue
		}
		prev := path[i-1]
		dr, dc := c.Row-prev.Row, c.Col-prev.Col
		if dr < 0 {
			dr = -dr
		}
		if dc < 0 {
			dc = -dc
		}
		require.Equal(t, 1, dr+dc, "steps %v→%v must be orthogonal unit moves", prev, c)
	}
}

// runAll executes every algorithm on m without visualization and returns
// the results keyed by algorithm.
func runAll(t *testing.T, m *maze.Maze) map[search.Algorithm]search.Result {
	t.Helper()
	out := make(map[search.Algorithm]search.Result, 3)
	for _, algo := range []search.Algorithm{search.AlgoBFS, search.AlgoDFS, search.AlgoAStar} {
		res, err := search.Run(m, algo, search.WithVisualize(false))
		require.NoError(t, err, "%s must not error", algo)
		out[algo] = res
	}

	return out
}
