// ends.go — the opposite-ends map shared by the solvers and the player
// state machine: every cell points at the far end of the partial path
// it belongs to, or carries one of the negative status sentinels.

package knightgrid

// Special PathEnds states. Non-negative entries are cell indices: a cell
// mapping to itself is free, any other non-negative value is the far end
// of the open path through that cell.
const (
	// Interior marks a cell whose path connections are complete; it can
	// accept no further links.
	Interior = -1
	// ParityError marks a cell whose connections contradict its kind.
	ParityError = -2
	// LoopError marks a cell lying on a closed loop.
	LoopError = -3
)

// PathEnds maps every cell to the opposite end of its partial path.
// Linked entries are symmetric: m[m[c]] == c whenever m[c] is an
// ordinary far-end link.
type PathEnds []int

// NewPathEnds returns a map of n cells, each initially free.
func NewPathEnds(n int) PathEnds {
	m := make(PathEnds, n)
	for i := range m {
		m[i] = i
	}
	return m
}

// Free reports whether cell has no links yet.
func (m PathEnds) Free(cell int) bool { return m[cell] == cell }

// Linked reports whether cell carries an ordinary far-end link.
func (m PathEnds) Linked(cell int) bool { return m[cell] >= 0 && m[cell] != cell }

// Link merges the open paths ending at a and b. A cell that already had
// a far end becomes Interior, and the two surviving ends are pointed at
// each other. Callers must ensure a and b are distinct ends of distinct
// paths, neither Interior nor flagged.
func (m PathEnds) Link(a, b int) {
	ea, eb := m[a], m[b]
	if ea != a {
		m[a] = Interior
	}
	if eb != b {
		m[b] = Interior
	}
	m[ea] = eb
	m[eb] = ea
}

// Clone returns an independent copy of the map.
func (m PathEnds) Clone() PathEnds {
	out := make(PathEnds, len(m))
	copy(out, m)
	return out
}
