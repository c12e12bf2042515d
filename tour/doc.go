// Package tour generates random partial knight's tours with the
// Warnsdorff heuristic and classifies the finished walk into the
// per-cell kind grid that drives puzzle construction.
//
// What:
//
//   - Generate: repeat a randomized Warnsdorff walk until one attempt
//     covers the requested number of cells, restarting from scratch on
//     every dead end. Each attempt redraws the start cell and, unless
//     pinned, the number of cells left unvisited.
//   - (*Tour).Classify: label every cell Unvisited, Endpoint,
//     OrthogonalTurn, or DiagonalTurn from the walk's move directions.
//   - (*Tour).Connections: the walk's own edges as per-cell direction
//     sets, for replaying or checking a known solution.
//
// Why:
//
//	A plain random walk corners itself almost immediately. Warnsdorff's
//	rule — always step to the reachable cell with the fewest onward
//	exits — keeps the frontier tight enough that restarts stay cheap,
//	and the randomized tie-break keeps successive puzzles distinct.
//
// Determinism:
//
//	All randomness flows from a single seeded source (WithSeed); the
//	same seed and options reproduce the same tour on every platform.
//	Generate never consults the clock.
//
// Complexity: each attempt is O(n) steps of O(1) work on an n-cell
// board; the attempt count is bounded by WithMaxAttempts.
//
// Errors:
//
//   - ErrHeuristicDeadEnd — every attempt dead-ended before covering
//     the requested cells.
//   - ErrOptionViolation  — an invalid Option value was supplied.
//   - knightgrid.ErrBoardSize — the board is below the minimum size.
package tour
