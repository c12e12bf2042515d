// Package play is the player-side state machine of a knight-move
// puzzle: it holds the connections drawn so far, applies and retracts
// moves, and keeps a per-cell status map the way a UI or checker wants
// to read it.
//
// What:
//
//   - NewState loads a kind grid plus its published hints; hinted
//     connections are permanent and cannot be retracted.
//   - Toggle draws the connection (cell, dir), or removes it when it
//     is already present. Only geometric nonsense is rejected — moves
//     that merely contradict the cell kinds are allowed and flagged,
//     because making and undoing mistakes is part of playing.
//   - Statuses: after every toggle each cell reads as Free (no
//     connections), Linked (the far end of its open path), Interior
//     (connections complete), ParityError (degree or parity breaks its
//     kind), or LoopError (part of a closed loop).
//   - Completed reports whether the drawn connections finish the tour.
//
// Statuses are a pure function of the drawn connections: they are
// recomputed from the connection sets rather than adjusted in place.
// Applying a move and retracting it therefore restores bit-identical
// state, with no possibility of drift.
//
// Loop detection peels degree-1 cells until only cycle structure
// remains; whatever survives the peel is flagged LoopError. Open path
// ends locate their far end by walking through clean degree-2 cells,
// stopping at the first flagged or branching cell.
//
// Errors:
//
//   - ErrMalformedMove — the toggle names no legal board edge, touches
//     an unvisited cell, or retracts a permanent hint. The state is
//     unchanged.
//   - ErrGridShape — the kind grid or hint set is malformed.
package play
