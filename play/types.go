// types.go — sentinel errors and the State container.

package play

import (
	"errors"

	"github.com/katalvlaran/knighttour/knightgrid"
)

var (
	// ErrMalformedMove is returned for a toggle that names no legal
	// board edge, touches an unvisited cell, or retracts a permanent
	// hint. A rejected move leaves the state untouched.
	ErrMalformedMove = errors.New("play: malformed move")

	// ErrGridShape is returned when the kind grid or hint set handed
	// to NewState is malformed.
	ErrGridShape = errors.New("play: malformed puzzle")
)

// State is a puzzle in progress. It is not safe for concurrent use.
type State struct {
	board knightgrid.Board
	kinds []knightgrid.CellKind

	conns []knightgrid.DirSet // connections currently drawn
	perm  []knightgrid.DirSet // hinted connections; subset of conns, locked
	ends  knightgrid.PathEnds // per-cell status, derived from conns

	moves []knightgrid.Connection // accepted toggles in order
}

// Board returns the board geometry.
func (s *State) Board() knightgrid.Board { return s.board }

// Kind returns the kind of one cell.
func (s *State) Kind(cell int) knightgrid.CellKind { return s.kinds[cell] }

// Kinds returns a copy of the kind grid.
func (s *State) Kinds() []knightgrid.CellKind {
	return append([]knightgrid.CellKind(nil), s.kinds...)
}

// Connections returns a copy of the drawn connection sets.
func (s *State) Connections() []knightgrid.DirSet {
	return append([]knightgrid.DirSet(nil), s.conns...)
}

// Connection returns the drawn directions at one cell.
func (s *State) Connection(cell int) knightgrid.DirSet { return s.conns[cell] }

// Permanent reports whether (cell, d) is a hinted connection.
func (s *State) Permanent(cell int, d knightgrid.Direction) bool {
	return s.perm[cell].Has(d)
}

// Status returns the current status of one cell: the cell's own index
// when free, the far end of its open path, or one of knightgrid's
// Interior, ParityError, and LoopError sentinels.
func (s *State) Status(cell int) int { return s.ends[cell] }

// Statuses returns a copy of the whole status map.
func (s *State) Statuses() knightgrid.PathEnds { return s.ends.Clone() }

// Moves returns a copy of the accepted toggle log, retractions
// included.
func (s *State) Moves() []knightgrid.Connection {
	return append([]knightgrid.Connection(nil), s.moves...)
}
