// hamilton.go — the neural-net cycle search: graph construction,
// per-edge neuron sweeps, the adaptive restart loop, and the
// single-cycle verification walk.

package hamilton

import (
	"fmt"
	"math/rand"

	"github.com/spakin/disjoint"
)

// Neuron activation thresholds. An edge turns on when its cumulative
// level exceeds onThreshold*4 and off when the level drops below
// offThreshold; the gap between the two is what stops freshly toggled
// edges from flip-flopping every sweep. The pair 12,0 converges far
// more often than the 3,0 of Takefuji & Lee's original on boards in
// the supported size range.
const (
	onThreshold  = 12
	offThreshold = 0
)

// initialIterLimit is the sweep budget of the first attempts. The
// restart loop raises it when convergence failures pile up.
const initialIterLimit = 100

// edge is one graph edge together with its neuron state.
type edge struct {
	level  int  // cumulative adjustment value
	active bool // whether the edge is in the working subset
	a, b   int
}

// Solver accumulates a graph and searches it for a Hamilton cycle or
// path. Construct with NewCycle or NewPath, feed edges with AddEdge,
// then call Run. A Solver is not safe for concurrent use.
type Solver struct {
	n      int  // vertices in the working graph, hub included
	start  int  // vertex the output cycle begins at
	isPath bool // hub augmentation active; hub omitted from output

	edges     []edge
	neighbors [][]int // per edge: indices of edges sharing exactly one vertex

	sealed  bool
	prepErr error

	// per-vertex scratch reused across attempts
	vdeg   []int
	vedges [][2]int
}

// NewCycle returns a Solver that searches for a Hamilton cycle over n
// vertices, rotating the output to begin at start.
func NewCycle(n, start int) *Solver {
	return &Solver{n: n, start: start}
}

// NewPath returns a Solver that searches for a Hamilton path over n
// vertices. Internally the graph gains one hub vertex adjacent to
// every real vertex: a cycle through the hub minus the hub is exactly
// a path over the original graph, ending wherever the cycle touched
// the hub.
func NewPath(n int) *Solver {
	s := NewCycle(n+1, n)
	for i := 0; i < n; i++ {
		s.addEdge(i, n)
	}
	s.isPath = true
	return s
}

// AddEdge records the undirected edge (a, b). Edges must be distinct
// pairs of distinct in-range vertices, and must all be added before
// the first Run.
func (s *Solver) AddEdge(a, b int) error {
	if s.sealed {
		return ErrSealed
	}
	if a < 0 || a >= s.n || b < 0 || b >= s.n {
		return fmt.Errorf("%w: (%d,%d) on %d vertices", ErrVertexRange, a, b, s.n)
	}
	if a == b {
		return fmt.Errorf("%w: self edge at %d", ErrVertexRange, a)
	}
	s.addEdge(a, b)
	return nil
}

func (s *Solver) addEdge(a, b int) {
	s.edges = append(s.edges, edge{a: a, b: b})
}

// Run searches for a cycle, applying any number of functional Options.
// Each attempt starts from a fresh random edge subset and sweeps the
// neurons until they stabilize or the per-attempt limit runs out; a
// stable state is accepted only if its active edges form one cycle
// through every vertex. The returned vertex sequence has length n (the
// real vertex count), begins at the requested start vertex in cycle
// mode, and is reversed with probability 1/2.
func (s *Solver) Run(opts ...Option) ([]int, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := s.prepare(); err != nil {
		return nil, err
	}

	rng := rngFromSeed(o.Seed)
	iterLimit := initialIterLimit
	nfail, nok := 0, 0

	for attempt := 0; attempt < o.MaxAttempts; attempt++ {
		// cancellation check (once per attempt)
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		if s.tryConverge(iterLimit, rng) == 0 {
			nfail++
			if nok < nfail/2 {
				// Twice as many convergence failures as successes
				// means the sweep limit is probably too low. Raise it
				// and forget the failures, which say nothing about
				// the new limit.
				iterLimit = iterLimit * 3 / 2
				nfail = 0
			}
			continue
		}
		nok++

		// The net is stable; see if it found what we actually want.
		out, ok := s.checkResult()
		if !ok {
			continue
		}
		// Reverse with probability 1/2 to erase directional bias from
		// the edge input order.
		if rng.Intn(2) == 1 {
			if s.isPath {
				reverseInts(out)
			} else {
				reverseInts(out[1:])
			}
		}
		return out, nil
	}

	return nil, fmt.Errorf("%w: %d attempts", ErrConvergenceFailure, o.MaxAttempts)
}

// prepare seals the edge set, rejects disconnected graphs, and builds
// each edge's neighbor list (edges sharing exactly one vertex). Runs
// once; later calls return the cached verdict.
func (s *Solver) prepare() error {
	if s.sealed {
		return s.prepErr
	}
	s.sealed = true

	if len(s.edges) == 0 {
		s.prepErr = fmt.Errorf("%w: no edges", ErrDisconnected)
		return s.prepErr
	}

	// A Hamilton cycle needs one connected component spanning every
	// vertex; union-find over the edges settles that up front.
	elems := make([]*disjoint.Element, s.n)
	for i := range elems {
		elems[i] = disjoint.NewElement()
	}
	deg := make([]int, s.n)
	for _, e := range s.edges {
		disjoint.Union(elems[e.a], elems[e.b])
		deg[e.a]++
		deg[e.b]++
	}
	root := elems[0].Find()
	for _, el := range elems[1:] {
		if el.Find() != root {
			s.prepErr = ErrDisconnected
			return s.prepErr
		}
	}

	// Group edge indices by vertex, then mark every pair meeting at a
	// vertex as mutual neighbors.
	incident := make([][]int, s.n)
	for v := range incident {
		incident[v] = make([]int, 0, deg[v])
	}
	for i, e := range s.edges {
		incident[e.a] = append(incident[e.a], i)
		incident[e.b] = append(incident[e.b], i)
	}
	s.neighbors = make([][]int, len(s.edges))
	for i, e := range s.edges {
		s.neighbors[i] = make([]int, 0, deg[e.a]+deg[e.b]-2)
	}
	for _, list := range incident {
		for j := 0; j+1 < len(list); j++ {
			for k := j + 1; k < len(list); k++ {
				ej, ek := list[j], list[k]
				s.neighbors[ej] = append(s.neighbors[ej], ek)
				s.neighbors[ek] = append(s.neighbors[ek], ej)
			}
		}
	}

	s.vdeg = make([]int, s.n)
	s.vedges = make([][2]int, s.n)
	return nil
}

// tryConverge randomizes the edge subset and sweeps until the net is
// stable, returning the 1-based sweep count on success and 0 when the
// limit runs out.
func (s *Solver) tryConverge(iterLimit int, rng *rand.Rand) int {
	for i := range s.edges {
		s.edges[i].level = 0
		s.edges[i].active = rng.Intn(2) == 1
	}
	for iter := 0; iter < iterLimit; iter++ {
		if s.sweep() {
			return iter + 1
		}
	}
	return 0
}

// sweep runs one synchronous neuron update over every edge and reports
// whether the state was already stable.
func (s *Solver) sweep() bool {
	stable := true

	// Each edge wants the degrees of its two endpoints to sum to 4.
	// Every active neighboring edge meets exactly one endpoint and
	// subtracts 1; the edge itself meets both and subtracts 2.
	for i := range s.edges {
		e := &s.edges[i]
		delta := 4
		for _, ni := range s.neighbors[i] {
			if s.edges[ni].active {
				delta--
			}
		}
		if e.active {
			delta -= 2
		}
		if delta != 0 {
			stable = false
		}
		e.level += delta
	}

	// Toggle in a second pass so the sweep above acted on the previous
	// state of every edge, as if in parallel.
	for i := range s.edges {
		e := &s.edges[i]
		if e.level > onThreshold*4 {
			e.active = true
		} else if e.level < offThreshold {
			e.active = false
		}
	}

	return stable
}

// checkResult verifies that the active edges form a single cycle
// covering every vertex, and if so walks it from the start vertex into
// an output sequence. Stability alone cannot be trusted: a Y of three
// degree-1 arms around a degree-3 hub also zeroes every delta, and a
// stable state may be several disjoint cycles instead of one.
func (s *Solver) checkResult() ([]int, bool) {
	for i := range s.vdeg {
		s.vdeg[i] = 0
	}
	for i, e := range s.edges {
		if !e.active {
			continue
		}
		for _, v := range [2]int{e.a, e.b} {
			if s.vdeg[v] >= 2 {
				return nil, false // vertex degree too high
			}
			s.vedges[v][s.vdeg[v]] = i
			s.vdeg[v]++
		}
	}
	for _, d := range s.vdeg {
		if d != 2 {
			return nil, false // vertex degree too low
		}
	}

	// Trace one cycle of the cover. It must return to the start only
	// after passing through every single vertex.
	outLen := s.n
	if s.isPath {
		outLen--
	}
	out := make([]int, 0, outLen)

	vertex := s.start
	eidx := s.vedges[vertex][0]
	for i := 0; i < s.n; i++ {
		if i != 0 && vertex == s.start {
			return nil, false // cycle too short
		}
		if !(s.isPath && i == 0) { // the hub never appears in the output
			out = append(out, vertex)
		}
		e := s.edges[eidx]
		vertex = e.a + e.b - vertex
		if s.vedges[vertex][0] == eidx {
			eidx = s.vedges[vertex][1]
		} else {
			eidx = s.vedges[vertex][0]
		}
	}
	if vertex != s.start {
		return nil, false
	}

	return out, true
}

func reverseInts(a []int) {
	for i, j := 0, len(a)-1; i < j; i, j = i+1, j-1 {
		a[i], a[j] = a[j], a[i]
	}
}
