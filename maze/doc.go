// Package maze models a rectangular 2-D maze as an immutable grid of cells
// and serves as the query surface the search engine runs over.
//
// What:
//
//   - Maze wraps a rectangular [][]Cell grid with exactly one Start and one Goal.
//   - Pure adjacency queries: InBounds, Passable, Neighbors, At.
//   - Neighbors returns passable orthogonal cells in the FIXED order
//     right, down, left, up. This order is part of the contract: it decides
//     DFS tie-breaking and the exploration order of BFS and A*.
//   - Parse/String convert between mazes and their text encoding
//     ('#' or '1' wall, '.' or '0' free, 'S' start, 'G' goal).
//   - Generate builds a reproducible random maze whose start and goal are
//     always connected; Sample returns a fixed 10×10 demonstration maze.
//
// Why:
//
//   - Search algorithms only need a narrow, read-only grid contract;
//     keeping construction, validation and encoding here leaves the
//     engine free of formats and mutation.
//   - Deterministic neighbor order makes search runs reproducible and
//     testable against exact visit sequences.
//
// Complexity:
//
//   - New/Parse/String/Generate: O(rows×cols) time and memory.
//   - InBounds/Passable/At:      O(1).
//   - Neighbors:                 O(1) (at most four probes).
//
// Errors:
//
//   - ErrEmptyMaze:       grid has no rows or no columns.
//   - ErrNonRectangular:  rows of differing lengths.
//   - ErrBadCell:         a cell value outside {Wall, Free, Start, Goal}.
//   - ErrNoStart / ErrNoGoal:               start or goal missing.
//   - ErrDuplicateStart / ErrDuplicateGoal: more than one start or goal.
//   - ErrTooSmall:        generated maze smaller than 4×4.
//   - ErrBadDensity:      wall density outside [0.0, 1.0].
package maze
