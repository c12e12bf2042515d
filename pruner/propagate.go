// propagate.go — the fixpoint loop and the per-kind candidate rules.
//
// Every rule here is an entailment: it eliminates a candidate only
// when no tour consistent with the current state can use it, and
// forces one only when every such tour must. That is what lets the
// assumption trail double as a uniqueness certificate.

package pruner

import (
	"context"
	"fmt"

	"github.com/katalvlaran/knighttour/knightgrid"
)

// propagate drains the work queue, reprocessing cells until no rule
// changes anything. A contradiction refutes the state.
func (s *state) propagate(ctx context.Context) error {
	for len(s.queue) > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err := s.processCell(s.dequeue()); err != nil {
			return err
		}
	}
	return nil
}

// processCell applies the local rules to one cell in a fixed order:
// complete cells shed their leftover candidates, doomed candidates go
// next, then the cell's kind has its say. After a mutation the cell is
// rescheduled so the following pass reads fresh counts.
func (s *state) processCell(c int) error {
	if s.kinds[c] == knightgrid.Unvisited {
		return nil
	}

	if s.ends[c] == knightgrid.Interior {
		s.purge(c, knightgrid.AllDirs)
		return nil
	}

	// A candidate that would close a loop, or lead into a cell with no
	// room left, cannot appear in any tour of this grid. The final
	// connection of a real tour never trips the loop test: the far
	// ends it joins are the two virtual slots, not board cells.
	dropped := 0
	open := s.can[c] &^ s.conn[c]
	for d := knightgrid.Direction(0); d < 8; d++ {
		if !open.Has(d) {
			continue
		}
		dest, ok := s.board.Apply(c, d)
		if !ok {
			continue
		}
		if s.ends[dest] == c || s.ends[dest] == knightgrid.Interior {
			s.eliminate(c, d)
			dropped++
		}
	}
	if dropped > 0 {
		return nil // eliminate already rescheduled this cell
	}

	return s.applyKindRule(c)
}

// applyKindRule dispatches on the cell's kind with the four counts the
// rules run on: candidates and decided connections, split by parity
// class. Candidate counts include the decided bits.
func (s *state) applyKindRule(c int) error {
	e := s.can[c].CountIn(knightgrid.EvenDirs)
	o := s.can[c].CountIn(knightgrid.OddDirs)
	ce := s.conn[c].CountIn(knightgrid.EvenDirs)
	co := s.conn[c].CountIn(knightgrid.OddDirs)

	switch s.kinds[c] {
	case knightgrid.Endpoint:
		return s.ruleEndpoint(c, e, o, ce, co)
	case knightgrid.OrthogonalTurn:
		return s.ruleOrthogonal(c, e, o, ce, co)
	case knightgrid.DiagonalTurn:
		return s.ruleDiagonal(c, e, o, ce, co)
	}
	return nil
}

// ruleEndpoint enforces exactly one connection of either parity.
func (s *state) ruleEndpoint(c, e, o, ce, co int) error {
	switch {
	case ce+co > 1:
		return s.contradiction(c, "endpoint with more than one connection")
	case ce+co == 1:
		// Normally unreachable: a connected endpoint is buried by its
		// virtual slot and handled as a complete cell.
		s.purge(c, knightgrid.AllDirs)
		return nil
	case e+o == 0:
		return s.contradiction(c, "endpoint with no candidates")
	case e+o == 1:
		return s.forceAll(c, s.can[c]&^s.conn[c])
	}
	return nil
}

// ruleOrthogonal enforces a pair of connections within one parity
// class.
func (s *state) ruleOrthogonal(c, e, o, ce, co int) error {
	switch {
	case ce+co > 2, ce == 1 && co == 1:
		return s.contradiction(c, "orthogonal turn with mixed or excess connections")
	case ce == 2 || co == 2:
		s.purge(c, knightgrid.AllDirs)
		return nil
	case ce == 1:
		s.purge(c, knightgrid.OddDirs)
		switch e - 1 {
		case 0:
			return s.contradiction(c, "orthogonal turn with no partner for its even connection")
		case 1:
			return s.forceAll(c, (s.can[c]&^s.conn[c])&knightgrid.EvenDirs)
		}
		return nil
	case co == 1:
		s.purge(c, knightgrid.EvenDirs)
		switch o - 1 {
		case 0:
			return s.contradiction(c, "orthogonal turn with no partner for its odd connection")
		case 1:
			return s.forceAll(c, (s.can[c]&^s.conn[c])&knightgrid.OddDirs)
		}
		return nil
	default: // nothing decided yet
		if e < 2 && o < 2 {
			return s.contradiction(c, "orthogonal turn with no parity class able to host a pair")
		}
		if e < 2 {
			// The pair must be odd; stray even candidates are dead.
			s.purge(c, knightgrid.EvenDirs)
			if o == 2 {
				return s.forceAll(c, s.can[c]&knightgrid.OddDirs)
			}
		} else if o < 2 {
			s.purge(c, knightgrid.OddDirs)
			if e == 2 {
				return s.forceAll(c, s.can[c]&knightgrid.EvenDirs)
			}
		}
		return nil
	}
}

// ruleDiagonal enforces one even and one odd connection.
func (s *state) ruleDiagonal(c, e, o, ce, co int) error {
	switch {
	case ce+co > 2, ce == 2, co == 2:
		return s.contradiction(c, "diagonal turn with a same-parity pair")
	case ce == 1 && co == 1:
		s.purge(c, knightgrid.AllDirs)
		return nil
	case ce == 1:
		s.purge(c, knightgrid.EvenDirs)
		switch o {
		case 0:
			return s.contradiction(c, "diagonal turn with no odd candidate")
		case 1:
			return s.forceAll(c, s.can[c]&knightgrid.OddDirs)
		}
		return nil
	case co == 1:
		s.purge(c, knightgrid.OddDirs)
		switch e {
		case 0:
			return s.contradiction(c, "diagonal turn with no even candidate")
		case 1:
			return s.forceAll(c, s.can[c]&knightgrid.EvenDirs)
		}
		return nil
	default: // nothing decided yet
		if e == 0 || o == 0 {
			return s.contradiction(c, "diagonal turn missing a parity class")
		}
		var err error
		if e == 1 {
			err = s.forceAll(c, s.can[c]&knightgrid.EvenDirs)
		}
		if err == nil && o == 1 {
			err = s.forceAll(c, s.can[c]&knightgrid.OddDirs)
		}
		return err
	}
}

// forceAll decides every candidate of set at cell c as one batch.
func (s *state) forceAll(c int, set knightgrid.DirSet) error {
	for d := knightgrid.Direction(0); d < 8; d++ {
		if set.Has(d) {
			if err := s.connect(c, d); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *state) contradiction(c int, msg string) error {
	return fmt.Errorf("%w: cell %d: %s", ErrDegreeContradiction, c, msg)
}
