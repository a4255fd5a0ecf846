// Package gridpath is a small, deterministic toolkit for solving 2-D grid
// mazes with the classic search algorithms: BFS, DFS and A*.
//
// 🚀 What is gridpath?
//
//	A focused library that brings together:
//		• maze/   — the immutable grid model: cells, coordinates, validation,
//		            a text codec (#/./S/G and 1/0/S/G) and a seeded generator
//		• search/ — the engine: BFS, DFS and A* over a maze, each returning
//		            the path (when one exists) plus per-run statistics
//
// ✨ Why choose gridpath?
//
//   - Deterministic – fixed neighbor order (right, down, left, up) and a
//     documented A* tie-break make every run reproducible
//   - Headless-first – visualization is a single-method Visitor capability
//     injected into the engine; the core never draws, logs, or sleeps
//   - Honest results – "no path" is a valid outcome, not an error; every
//     run returns fresh statistics owned solely by the caller
//   - Pure Go – stdlib containers, no cgo, no hidden deps
//
// Quick ASCII example:
//
//	#####
//	#S..#
//	#.#.#
//	#..G#
//	#####
//
//	m, _ := maze.Parse(text)
//	res, _ := search.Run(m, search.AlgoBFS)
//	fmt.Println(res.Path, res.Stats.NodesVisited)
//
// Dive into the per-package doc.go files for contracts, complexity notes
// and the full error taxonomy.
package gridpath
