// state.go — mutable solver state: candidate and connection sets, the
// opposite-ends map with its two virtual endpoint slots, and the
// dedup work queue.

package pruner

import (
	"fmt"

	"github.com/katalvlaran/knighttour/knightgrid"
)

// state is one node of the search: a consistent partial determination
// of the tour. Children clone before assuming, so a refuted branch
// never leaks back into its parent.
type state struct {
	board knightgrid.Board
	kinds []knightgrid.CellKind // shared, never mutated
	n     int                   // real cell count; virtual slots are n and n+1

	can  []knightgrid.DirSet // candidates still possible; a superset of conn
	conn []knightgrid.DirSet // decided connections
	ends knightgrid.PathEnds // far ends of partial paths, virtuals included

	queue  []int
	queued []bool
	trail  []knightgrid.Connection // assumptions on the way to this state
}

// newState builds the initial candidate sets: a connection is possible
// iff both of its cells are visited and the move stays on the board.
// Each endpoint cell is pre-linked to its own virtual slot, consuming
// the path side an endpoint does not have; its single real connection
// then buries it exactly like an interior cell's second one.
func newState(b knightgrid.Board, kinds []knightgrid.CellKind) *state {
	n := b.Cells()
	s := &state{
		board:  b,
		kinds:  kinds,
		n:      n,
		can:    make([]knightgrid.DirSet, n),
		conn:   make([]knightgrid.DirSet, n),
		ends:   knightgrid.NewPathEnds(n + 2),
		queued: make([]bool, n),
	}
	for c := 0; c < n; c++ {
		if kinds[c] == knightgrid.Unvisited {
			continue
		}
		for d := knightgrid.Direction(0); d < 8; d++ {
			if dest, ok := b.Apply(c, d); ok && kinds[dest] != knightgrid.Unvisited {
				s.can[c] = s.can[c].With(d)
			}
		}
	}
	virtual := n
	for c := 0; c < n; c++ {
		if kinds[c] == knightgrid.Endpoint {
			s.ends.Link(c, virtual)
			virtual++
		}
	}
	return s
}

// clone copies everything a branch may mutate. The queue starts empty:
// states are only cloned at a propagation fixpoint.
func (s *state) clone() *state {
	return &state{
		board:  s.board,
		kinds:  s.kinds,
		n:      s.n,
		can:    append([]knightgrid.DirSet(nil), s.can...),
		conn:   append([]knightgrid.DirSet(nil), s.conn...),
		ends:   s.ends.Clone(),
		queued: make([]bool, s.n),
		trail:  append([]knightgrid.Connection(nil), s.trail...),
	}
}

// enqueue schedules a visited cell for reprocessing, at most once.
func (s *state) enqueue(c int) {
	if c < 0 || c >= s.n || s.kinds[c] == knightgrid.Unvisited || s.queued[c] {
		return
	}
	s.queued[c] = true
	s.queue = append(s.queue, c)
}

// enqueueNeighbors schedules every cell one knight move away from c.
func (s *state) enqueueNeighbors(c int) {
	for d := knightgrid.Direction(0); d < 8; d++ {
		if dest, ok := s.board.Apply(c, d); ok {
			s.enqueue(dest)
		}
	}
}

func (s *state) dequeue() int {
	c := s.queue[0]
	s.queue = s.queue[1:]
	s.queued[c] = false
	return c
}

// seedAll schedules the whole board for the initial propagation pass.
func (s *state) seedAll() {
	for c := 0; c < s.n; c++ {
		s.enqueue(c)
	}
}

// eliminate discards the open candidate (c, d) and its mirrored half,
// rescheduling both cells. Decided connections are never eliminated.
func (s *state) eliminate(c int, d knightgrid.Direction) {
	dest, ok := s.board.Apply(c, d)
	if !ok {
		return
	}
	s.can[c] = s.can[c].Without(d)
	s.can[dest] = s.can[dest].Without(d.Opposite())
	s.enqueue(c)
	s.enqueue(dest)
}

// purge eliminates every open candidate of c within mask, returning
// how many were dropped.
func (s *state) purge(c int, mask knightgrid.DirSet) int {
	open := (s.can[c] &^ s.conn[c]) & mask
	dropped := 0
	for d := knightgrid.Direction(0); d < 8; d++ {
		if open.Has(d) {
			s.eliminate(c, d)
			dropped++
		}
	}
	return dropped
}

// connect decides the candidate (c, d): records both half-edges,
// merges the two paths in the ends map, and reschedules every cell
// whose local view moved. Deciding a connection the state can no
// longer host refutes the state.
func (s *state) connect(c int, d knightgrid.Direction) error {
	dest, ok := s.board.Apply(c, d)
	if !ok || !s.can[c].Has(d) {
		return fmt.Errorf("%w: %d/%d is not a candidate", ErrDegreeContradiction, c, d)
	}
	if s.conn[c].Has(d) {
		return nil // mirrored half already decided
	}
	if s.ends[c] == knightgrid.Interior || s.ends[dest] == knightgrid.Interior {
		return fmt.Errorf("%w: %d/%d enters a complete cell", ErrDegreeContradiction, c, d)
	}
	if s.ends[dest] == c {
		return fmt.Errorf("%w: %d/%d closes a loop", ErrDegreeContradiction, c, d)
	}

	s.conn[c] = s.conn[c].With(d)
	s.conn[dest] = s.conn[dest].With(d.Opposite())

	ea, eb := s.ends[c], s.ends[dest]
	s.ends.Link(c, dest)

	// The ends entries of c, dest, and their old far ends all moved;
	// those cells and everything that can reach them need another pass.
	for _, x := range [4]int{c, dest, ea, eb} {
		if x >= 0 && x < s.n {
			s.enqueue(x)
			s.enqueueNeighbors(x)
		}
	}
	return nil
}

// complete reports whether every visited cell is buried in the ends
// map, i.e. carries its full connection count.
func (s *state) complete() bool {
	for c := 0; c < s.n; c++ {
		if s.kinds[c] != knightgrid.Unvisited && s.ends[c] != knightgrid.Interior {
			return false
		}
	}
	return true
}

// result snapshots the state for callers.
func (s *state) result() *Result {
	return &Result{
		Connections: append([]knightgrid.DirSet(nil), s.conn...),
		Hints:       append([]knightgrid.Connection(nil), s.trail...),
		Complete:    s.complete(),
	}
}
