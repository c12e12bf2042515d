// move.go — the toggle operation and the move log.

package play

import (
	"fmt"

	"github.com/katalvlaran/knighttour/knightgrid"
)

// Toggle draws the connection between cell and its knight neighbor in
// direction d, or erases it when it is already drawn. Both halves of
// the mirror pair flip together. A rejected move leaves the state
// untouched.
//
// Over-connecting a cell is allowed; the status map flags the excess
// instead. Only geometric nonsense and hint retraction are rejected.
func (s *State) Toggle(cell int, d knightgrid.Direction) error {
	dest, err := s.validateMove(cell, d)
	if err != nil {
		return err
	}
	if s.conns[cell].Has(d) {
		if s.perm[cell].Has(d) {
			return fmt.Errorf("%w: connection %d/%d is a permanent hint", ErrMalformedMove, cell, d)
		}
		s.conns[cell] = s.conns[cell].Without(d)
		s.conns[dest] = s.conns[dest].Without(d.Opposite())
	} else {
		s.conns[cell] = s.conns[cell].With(d)
		s.conns[dest] = s.conns[dest].With(d.Opposite())
	}
	s.moves = append(s.moves, knightgrid.Connection{Cell: cell, Dir: d})
	s.ends = computeStatuses(s.board, s.kinds, s.conns)
	return nil
}

// Replay applies a recorded move sequence in order. The first failing
// move aborts the replay with its index; earlier moves stay applied.
func (s *State) Replay(moves []knightgrid.Connection) error {
	for i, mv := range moves {
		if err := s.Toggle(mv.Cell, mv.Dir); err != nil {
			return fmt.Errorf("move %d: %w", i, err)
		}
	}
	return nil
}

func (s *State) validateMove(cell int, d knightgrid.Direction) (int, error) {
	if cell < 0 || cell >= s.board.Cells() {
		return 0, fmt.Errorf("%w: cell %d out of range", ErrMalformedMove, cell)
	}
	if !d.Valid() {
		return 0, fmt.Errorf("%w: direction %d", ErrMalformedMove, d)
	}
	dest, ok := s.board.Apply(cell, d)
	if !ok {
		return 0, fmt.Errorf("%w: cell %d has no neighbor in direction %d", ErrMalformedMove, cell, d)
	}
	if s.kinds[cell] == knightgrid.Unvisited || s.kinds[dest] == knightgrid.Unvisited {
		return 0, fmt.Errorf("%w: connection %d-%d touches an unvisited cell", ErrMalformedMove, cell, dest)
	}
	return dest, nil
}
