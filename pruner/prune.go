// prune.go — entry points and the assumption search.

package pruner

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/knighttour/knightgrid"
)

// Prune finds a tour consistent with the kind grid together with the
// hint set that pins it down as the unique solution. Propagation runs
// first; wherever it stalls, one open candidate is assumed on a cloned
// state and the search recurses. The returned Hints are exactly the
// assumptions the winning branch made — publish them and the puzzle
// solves by propagation alone, with Result.Connections as its only
// solution.
func Prune(b knightgrid.Board, kinds []knightgrid.CellKind, opts ...Option) (*Result, error) {
	return run(b, kinds, nil, true, opts)
}

// Solve finishes a puzzle from its published hints. For a grid that
// came out of Prune the hints make search unnecessary; hand-built
// grids may still trigger it, in which case the extra assumptions
// appear in Result.Hints.
func Solve(b knightgrid.Board, kinds []knightgrid.CellKind, hints []knightgrid.Connection, opts ...Option) (*Result, error) {
	return run(b, kinds, hints, true, opts)
}

// Propagate applies the hints and runs candidate elimination to its
// fixpoint without assuming anything. Check Result.Complete: a grid
// whose hints do not fully determine it comes back unfinished rather
// than failing.
func Propagate(b knightgrid.Board, kinds []knightgrid.CellKind, hints []knightgrid.Connection, opts ...Option) (*Result, error) {
	return run(b, kinds, hints, false, opts)
}

func run(b knightgrid.Board, kinds []knightgrid.CellKind, hints []knightgrid.Connection, search bool, opts []Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := validateKinds(b, kinds); err != nil {
		return nil, err
	}

	s := newState(b, kinds)
	s.seedAll()
	for _, h := range hints {
		if err := s.connect(h.Cell, h.Dir); err != nil {
			return nil, err
		}
	}
	if err := s.propagate(o.Ctx); err != nil {
		return nil, err
	}
	if !search || s.complete() {
		return s.result(), nil
	}

	found, err := s.search(o.Ctx)
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, fmt.Errorf("%w: no tour matches the kind grid", ErrDegreeContradiction)
	}
	return found.result(), nil
}

// search assumes open candidates in ascending cell and direction
// order, cloning the state for each, until some branch propagates to
// a finished tour. A refuted branch dies with its clone; the parent
// never records the refutation, which keeps every state exactly the
// propagation closure of its own assumptions — the property the
// uniqueness argument rests on.
func (s *state) search(ctx context.Context) (*state, error) {
	for c := 0; c < s.n; c++ {
		if s.kinds[c] == knightgrid.Unvisited {
			continue
		}
		open := s.can[c] &^ s.conn[c]
		if open == 0 {
			continue
		}
		for d := knightgrid.Direction(0); d < 8; d++ {
			if !open.Has(d) {
				continue
			}
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}

			child := s.clone()
			child.trail = append(child.trail, knightgrid.Connection{Cell: c, Dir: d})
			if err := child.connect(c, d); err != nil {
				continue
			}
			if err := child.propagate(ctx); err != nil {
				if errors.Is(err, ErrDegreeContradiction) {
					continue
				}
				return nil, err
			}
			if child.complete() {
				return child, nil
			}
			found, err := child.search(ctx)
			if err != nil {
				return nil, err
			}
			if found != nil {
				return found, nil
			}
		}
	}
	return nil, nil
}

func validateKinds(b knightgrid.Board, kinds []knightgrid.CellKind) error {
	if b.Width < knightgrid.MinBoardDim || b.Height < knightgrid.MinBoardDim {
		return fmt.Errorf("%w: %dx%d", knightgrid.ErrBoardSize, b.Width, b.Height)
	}
	if len(kinds) != b.Cells() {
		return fmt.Errorf("%w: %d kinds for %d cells", ErrGridShape, len(kinds), b.Cells())
	}
	endpoints := 0
	for c, k := range kinds {
		if k > knightgrid.DiagonalTurn {
			return fmt.Errorf("%w: invalid kind %d at cell %d", ErrGridShape, k, c)
		}
		if k == knightgrid.Endpoint {
			endpoints++
		}
	}
	if endpoints != 2 {
		return fmt.Errorf("%w: %d endpoint cells, need exactly 2", ErrGridShape, endpoints)
	}
	return nil
}
