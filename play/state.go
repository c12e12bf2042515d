// state.go — construction, the status recomputation, and the
// completion check.

package play

import (
	"fmt"

	"github.com/katalvlaran/knighttour/knightgrid"
)

// NewState loads a puzzle: the kind grid plus its published hints. The
// hinted connections are drawn immediately and marked permanent.
func NewState(b knightgrid.Board, kinds []knightgrid.CellKind, hints []knightgrid.Connection) (*State, error) {
	if b.Width < knightgrid.MinBoardDim || b.Height < knightgrid.MinBoardDim {
		return nil, fmt.Errorf("%w: board %dx%d", ErrGridShape, b.Width, b.Height)
	}
	if len(kinds) != b.Cells() {
		return nil, fmt.Errorf("%w: %d kinds for %d cells", ErrGridShape, len(kinds), b.Cells())
	}
	endpoints := 0
	for c, k := range kinds {
		if k > knightgrid.DiagonalTurn {
			return nil, fmt.Errorf("%w: invalid kind %d at cell %d", ErrGridShape, k, c)
		}
		if k == knightgrid.Endpoint {
			endpoints++
		}
	}
	if endpoints != 2 {
		return nil, fmt.Errorf("%w: %d endpoint cells, need exactly 2", ErrGridShape, endpoints)
	}

	s := &State{
		board: b,
		kinds: append([]knightgrid.CellKind(nil), kinds...),
		conns: make([]knightgrid.DirSet, b.Cells()),
		perm:  make([]knightgrid.DirSet, b.Cells()),
	}
	for _, h := range hints {
		dest, ok := b.Apply(h.Cell, h.Dir)
		if !ok || kinds[h.Cell] == knightgrid.Unvisited || kinds[dest] == knightgrid.Unvisited {
			return nil, fmt.Errorf("%w: hint %d/%d", ErrGridShape, h.Cell, h.Dir)
		}
		s.conns[h.Cell] = s.conns[h.Cell].With(h.Dir)
		s.conns[dest] = s.conns[dest].With(h.Dir.Opposite())
		s.perm[h.Cell] = s.perm[h.Cell].With(h.Dir)
		s.perm[dest] = s.perm[dest].With(h.Dir.Opposite())
	}
	s.ends = computeStatuses(b, kinds, s.conns)
	return s, nil
}

// Completed reports whether the drawn connections finish the tour:
// every cell carries exactly what its kind demands, nothing is
// flagged, and the two endpoint cells are each other's far end.
func (s *State) Completed() bool {
	endA, endB := -1, -1
	for c, k := range s.kinds {
		if !kindSatisfied(k, s.conns[c]) {
			return false
		}
		if k == knightgrid.Endpoint {
			if endA < 0 {
				endA = c
			} else {
				endB = c
			}
		}
	}
	for _, st := range s.ends {
		if st == knightgrid.ParityError || st == knightgrid.LoopError {
			return false
		}
	}
	return s.ends[endA] == endB
}

// kindSatisfied reports whether the connection set is exactly what the
// kind demands.
func kindSatisfied(k knightgrid.CellKind, set knightgrid.DirSet) bool {
	evens := set.CountIn(knightgrid.EvenDirs)
	odds := set.CountIn(knightgrid.OddDirs)
	switch k {
	case knightgrid.Unvisited:
		return evens+odds == 0
	case knightgrid.Endpoint:
		return evens+odds == 1
	case knightgrid.OrthogonalTurn:
		return (evens == 2 && odds == 0) || (evens == 0 && odds == 2)
	case knightgrid.DiagonalTurn:
		return evens == 1 && odds == 1
	default:
		return false
	}
}

// computeStatuses derives the status map from the drawn connections
// alone. Loop flags come first, parity flags second, and the far-end
// walks run last so they can stop at flagged cells.
func computeStatuses(b knightgrid.Board, kinds []knightgrid.CellKind, conns []knightgrid.DirSet) knightgrid.PathEnds {
	n := b.Cells()
	deg := make([]int, n)
	for c := range deg {
		deg[c] = conns[c].Count()
	}
	m := knightgrid.NewPathEnds(n)

	flagLoops(b, conns, deg, m)

	for c := 0; c < n; c++ {
		if m[c] != c {
			continue
		}
		if deg[c] >= 3 || (deg[c] == 2 && !kindSatisfied(kinds[c], conns[c])) {
			m[c] = knightgrid.ParityError
		}
	}

	// Degree-1 cells are never flagged above, so every open path end
	// gets a far-end link: mutual between two clean ends, one-way when
	// the walk runs into trouble.
	for c := 0; c < n; c++ {
		if deg[c] == 1 && m[c] == c {
			m[c] = followPath(b, conns, deg, m, c)
		}
	}

	for c := 0; c < n; c++ {
		if deg[c] == 2 && m[c] == c {
			m[c] = knightgrid.Interior
		}
	}
	return m
}

// flagLoops peels degree-1 cells until none remain; any connected cell
// surviving the peel belongs to cycle structure and is flagged.
func flagLoops(b knightgrid.Board, conns []knightgrid.DirSet, deg []int, m knightgrid.PathEnds) {
	n := len(deg)
	work := append([]int(nil), deg...)
	peeled := make([]bool, n)
	queue := make([]int, 0, n)
	for c := 0; c < n; c++ {
		if work[c] <= 1 {
			peeled[c] = true
			queue = append(queue, c)
		}
	}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for d := knightgrid.Direction(0); d < 8; d++ {
			if !conns[c].Has(d) {
				continue
			}
			dest, ok := b.Apply(c, d)
			if !ok || peeled[dest] {
				continue
			}
			work[dest]--
			if work[dest] <= 1 {
				peeled[dest] = true
				queue = append(queue, dest)
			}
		}
	}
	for c := 0; c < n; c++ {
		if !peeled[c] {
			m[c] = knightgrid.LoopError
		}
	}
}

// followPath walks from a degree-1 cell through clean degree-2 cells
// and returns the stopping cell: the other end of the path, or the
// first flagged or branching cell it runs into.
func followPath(b knightgrid.Board, conns []knightgrid.DirSet, deg []int, m knightgrid.PathEnds, start int) int {
	prev, cur := -1, start
	for {
		next := -1
		for d := knightgrid.Direction(0); d < 8; d++ {
			if !conns[cur].Has(d) {
				continue
			}
			if dest, ok := b.Apply(cur, d); ok && dest != prev {
				next = dest
				break
			}
		}
		if next < 0 {
			return cur
		}
		if m[next] == knightgrid.ParityError || m[next] == knightgrid.LoopError || deg[next] != 2 {
			return next
		}
		prev, cur = cur, next
	}
}
