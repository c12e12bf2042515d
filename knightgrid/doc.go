// Package knightgrid provides the board geometry and core data model for
// knight-move puzzles: directions, cell kinds, per-cell connection sets,
// and the opposite-ends map used to track partial paths.
//
// What:
//
//   - Direction: one of the 8 knight moves, clockwise-ordered, with
//     parity and opposite-direction arithmetic.
//   - Board: a W×H grid addressed by row-major cell index, with
//     bounds-checked move application and edge enumeration.
//   - CellKind: the per-cell hint category of a finished tour
//     (Unvisited, Endpoint, OrthogonalTurn, DiagonalTurn).
//   - DirSet: an 8-bit set of directions, used for candidate and
//     connection bookkeeping at each cell.
//   - PathEnds: the opposite-ends map — for every cell, either its own
//     index (free), the far end of its partial path, or one of the
//     Interior / ParityError / LoopError sentinels.
//
// Why:
//
//	Every solver and state machine in this module speaks the same small
//	vocabulary: flat cell indices, direction digits 0–7, and symmetric
//	connection updates. Centralizing that vocabulary keeps the move
//	arithmetic identical everywhere and the serialized formats stable.
//
// Key invariants:
//
//   - Directions d and d+4 (mod 8) are geometric opposites.
//   - Directions split into two parity classes {0,2,4,6} and {1,3,5,7};
//     two moves through a cell form an orthogonal turn iff they share a
//     parity class.
//   - A connection is always recorded at both cells: (cell, d) pairs
//     with (destination, d.Opposite()).
//   - PathEnds is symmetric on linked cells: m[m[x]] == x whenever
//     m[x] ≥ 0 and m[x] != x.
//
// Complexity: all operations are O(1) except Board.KnightEdges, which
// is O(W×H).
package knightgrid
