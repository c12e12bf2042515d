// tour.go — the randomized Warnsdorff walk: restart loop, per-step
// candidate selection, and dead-end handling.

package tour

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/knighttour/knightgrid"
)

// walk encapsulates the mutable state of one generation run. Its
// scratch slices are reused across restart attempts.
type walk struct {
	board  knightgrid.Board
	rng    *rand.Rand
	walked []bool
	cells  []int
	moves  []knightgrid.Direction
	order  [8]int // per-step direction shuffle
}

// Generate runs randomized Warnsdorff walks on b until one covers the
// requested number of cells, applying any number of functional Options.
// Every attempt starts from a freshly drawn cell; a walk that corners
// itself before the target count is discarded wholesale rather than
// repaired. Returns ErrHeuristicDeadEnd when the attempt budget runs
// out, ErrOptionViolation for bad options, knightgrid.ErrBoardSize for
// an undersized board, or the context's error on cancellation.
func Generate(b knightgrid.Board, opts ...Option) (*Tour, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if b.Width < knightgrid.MinBoardDim || b.Height < knightgrid.MinBoardDim {
		return nil, fmt.Errorf("%w: %dx%d", knightgrid.ErrBoardSize, b.Width, b.Height)
	}
	if o.Unvisited >= 0 && b.Cells()-o.Unvisited < 2 {
		return nil, fmt.Errorf("%w: %d unvisited cells leave no room for a walk on %d cells",
			ErrOptionViolation, o.Unvisited, b.Cells())
	}

	w := &walk{
		board:  b,
		rng:    rngFromSeed(o.Seed),
		walked: make([]bool, b.Cells()),
		cells:  make([]int, 0, b.Cells()),
		moves:  make([]knightgrid.Direction, 0, b.Cells()),
	}

	for attempt := 0; attempt < o.MaxAttempts; attempt++ {
		// cancellation check (once per attempt)
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		unvisited := o.Unvisited
		if unvisited < 0 {
			unvisited = w.rng.Intn(b.Width + b.Height)
		}
		if t := w.attempt(b.Cells() - unvisited); t != nil {
			return t, nil
		}
	}

	return nil, fmt.Errorf("%w: no walk covered its target in %d attempts",
		ErrHeuristicDeadEnd, o.MaxAttempts)
}

// attempt runs one walk toward ncells covered cells. It returns nil
// when the walk dead-ends early; partial progress is never kept.
func (w *walk) attempt(ncells int) *Tour {
	for i := range w.walked {
		w.walked[i] = false
	}
	w.cells = w.cells[:0]
	w.moves = w.moves[:0]

	cur := w.rng.Intn(w.board.Cells())
	w.walked[cur] = true
	w.cells = append(w.cells, cur)

	for len(w.cells) < ncells {
		d, dest, ok := w.step(cur)
		if !ok {
			return nil
		}
		w.walked[dest] = true
		w.moves = append(w.moves, d)
		w.cells = append(w.cells, dest)
		cur = dest
	}

	t := &Tour{
		Board: w.board,
		Cells: make([]int, len(w.cells)),
		Moves: make([]knightgrid.Direction, len(w.moves)),
	}
	copy(t.Cells, w.cells)
	copy(t.Moves, w.moves)

	return t
}

// step picks the next move from cur by Warnsdorff's rule: among the
// on-board, unwalked destinations, take the one with the fewest onward
// exits. Directions are shuffled first so that ties resolve randomly;
// the strict < comparison then keeps the earliest of the tied
// candidates.
func (w *walk) step(cur int) (knightgrid.Direction, int, bool) {
	for i := range w.order {
		w.order[i] = i
	}
	shuffleIntsInPlace(w.order[:], w.rng)

	best := knightgrid.NoDirection
	bestDest := 0
	bestExits := 9 // above any real exit count, so the first candidate always lands

	for _, i := range w.order {
		d := knightgrid.Direction(i)
		dest, ok := w.board.Apply(cur, d)
		if !ok || w.walked[dest] {
			continue
		}
		if n := w.freeExits(dest); n < bestExits {
			best, bestDest, bestExits = d, dest, n
		}
	}
	if best == knightgrid.NoDirection {
		return knightgrid.NoDirection, 0, false
	}

	return best, bestDest, true
}

// freeExits counts the on-board, unwalked destinations reachable from
// cell. The walk's current cell is already marked walked, so it never
// inflates a candidate's count.
func (w *walk) freeExits(cell int) int {
	n := 0
	for d := knightgrid.Direction(0); d < 8; d++ {
		if dest, ok := w.board.Apply(cell, d); ok && !w.walked[dest] {
			n++
		}
	}

	return n
}
