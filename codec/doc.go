// Package codec reads and writes the textual wire forms of a knight
// puzzle: board parameters, the persisted puzzle description, and
// player move sequences.
//
// Formats:
//
//   - Parameters: "WxH", decimal width and height.
//   - Description: W*H digit characters (one cell kind per cell in
//     row-major order: 0 unvisited, 1 endpoint, 2 orthogonal turn,
//     3 diagonal turn), a '.' separator, then zero or more
//     period-terminated "<dir><cell>." triples naming the permanently
//     revealed connections. The mirrored half of each connection is
//     implied and reconstructed by the loader.
//   - Moves: one or more '.'-separated "<dir><cell>" pairs, in the
//     order they were played.
//
// EncodeDesc emits a canonical description: each revealed connection
// is written once, from its lower-index cell, and triples are sorted.
// Encoding a parsed canonical description reproduces it byte for byte.
//
// Parsing is strict. Beyond the grammar, ParseDesc checks that the
// kind grid has exactly two endpoints, that every triple names an
// on-board knight move between visited cells, that no connection is
// declared twice, and that no cell's revealed connections exceed what
// its kind permits.
//
// Errors:
//
//   - ErrParamsFormat — the parameter string is not "WxH".
//   - ErrDescFormat — the description breaks the grammar or its checks.
//   - ErrMoveFormat — the move string breaks the grammar or the board.
package codec
