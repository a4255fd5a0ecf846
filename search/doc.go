// Package search implements BFS, DFS and A* over a maze.Maze, producing a
// start→goal path (when one exists) plus per-run statistics.
//
// What:
//
//   - Run(m, algo, opts...): dispatch by Algorithm enum; ParseAlgorithm maps
//     the names "BFS", "DFS", "ASTAR" / "A*" case-insensitively.
//   - BFS / DFS / AStar: the three individual entry points.
//   - Result: the path (nil when none exists) and fresh Statistics owned
//     solely by the caller; no state is shared between runs.
//   - Visitor: a single-method capability invoked synchronously once per
//     visited non-start cell, in visitation order, only while visualization
//     is enabled. The engine never consumes its result.
//
// Guarantees:
//
//   - BFS and A* return a shortest path by edge count (unit costs; the
//     Manhattan heuristic is admissible and consistent on a 4-connected grid).
//   - DFS returns some simple path, deterministically: neighbors are pushed
//     in reverse of the grid order so pops follow the forward order.
//   - A* keeps a lazy-deletion frontier: duplicate pushes are expected and
//     discarded against the closed set on pop. Ties on equal f are broken
//     by lower row, then lower column.
//   - "No path" is a valid Result (PathFound=false, PathLength=0), never
//     an error.
//   - The maze is read-only for the duration of a search; independent
//     searches may share one maze concurrently.
//
// Complexity (V = rows×cols, E ≤ 4V):
//
//   - BFS / DFS: O(V + E) time, O(V) memory.
//   - A*:        O((V + E) log V) time, O(V + E) memory (lazy decrease-key).
//
// Errors:
//
//   - ErrNilMaze:           a nil *maze.Maze was supplied.
//   - ErrUnknownAlgorithm:  unrecognized algorithm name or enum value.
//   - context errors when a WithContext cancellation fires mid-search.
package search
