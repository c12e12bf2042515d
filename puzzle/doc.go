// Package puzzle is the top-level facade over the knight-tour
// pipeline: it generates unique-solution puzzles, opens persisted
// descriptions for play, and solves them outright.
//
// What:
//
//   - Generate runs tour construction, turn classification, and
//     uniqueness pruning, then encodes the result as a persisted
//     description. Two tour generators are available: the randomized
//     Warnsdorff walk (default, supports unvisited cells) and the
//     neuron-relaxation Hamiltonian solver (covers every cell).
//   - Open parses a description and returns the live player state with
//     the revealed connections drawn and locked.
//   - Solve parses a description, reconstructs its unique tour, and
//     returns the move string that finishes the puzzle from its
//     revealed connections.
//
// Every puzzle Generate emits has exactly one tour consistent with its
// revealed connections: pure constraint propagation over them, with no
// guessing, reconstructs the full solution.
//
// Determinism: a fixed Seed yields the same puzzle for the same
// parameters and generator; Seed 0 selects the fixed default stream.
//
// Errors: option violations surface ErrOptionViolation; everything
// else propagates the underlying package's sentinel (codec.ErrDescFormat,
// tour.ErrHeuristicDeadEnd, hamilton.ErrConvergenceFailure,
// pruner.ErrDegreeContradiction, knightgrid.ErrBoardSize).
package puzzle
