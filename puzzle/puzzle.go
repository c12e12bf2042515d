// puzzle.go — Generate, Open, and Solve: the pipeline from board
// parameters to a persisted puzzle and back.

package puzzle

import (
	"fmt"

	"github.com/katalvlaran/knighttour/codec"
	"github.com/katalvlaran/knighttour/hamilton"
	"github.com/katalvlaran/knighttour/knightgrid"
	"github.com/katalvlaran/knighttour/play"
	"github.com/katalvlaran/knighttour/pruner"
	"github.com/katalvlaran/knighttour/tour"
)

// Generate builds a unique-solution puzzle for the given board size:
// it constructs a tour, classifies its turns, prunes the candidate
// connections until exactly one tour remains consistent with the
// revealed set, and encodes the result.
func Generate(p codec.Params, opts ...Option) (*Puzzle, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	b, err := p.Board()
	if err != nil {
		return nil, err
	}
	if o.Generator == NeuralNet && o.Unvisited > 0 {
		return nil, fmt.Errorf("%w: the neural generator visits every cell", ErrOptionViolation)
	}

	var kinds []knightgrid.CellKind
	switch o.Generator {
	case NeuralNet:
		kinds, err = neuralKinds(b, o)
	default:
		kinds, err = warnsdorffKinds(b, o)
	}
	if err != nil {
		return nil, err
	}

	res, err := pruner.Prune(b, kinds, pruner.WithContext(o.Ctx))
	if err != nil {
		return nil, err
	}
	desc, err := codec.EncodeDesc(b, kinds, res.Hints)
	if err != nil {
		return nil, err
	}
	return &Puzzle{Params: p, Desc: desc, Kinds: kinds, Hints: res.Hints}, nil
}

// Open parses a persisted description and returns the live player
// state, with the revealed connections drawn and locked.
func Open(p codec.Params, desc string) (*play.State, error) {
	b, err := p.Board()
	if err != nil {
		return nil, err
	}
	kinds, hints, err := codec.ParseDesc(b, desc)
	if err != nil {
		return nil, err
	}
	return play.NewState(b, kinds, hints)
}

// Open returns the live player state of this puzzle.
func (pz *Puzzle) Open() (*play.State, error) {
	return Open(pz.Params, pz.Desc)
}

// Solve reconstructs the unique tour of a persisted description and
// returns the move string that finishes the puzzle from its revealed
// connections. Replaying it against Open's state completes the puzzle.
func Solve(p codec.Params, desc string, opts ...Option) (string, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return "", o.err
	}
	b, err := p.Board()
	if err != nil {
		return "", err
	}
	kinds, hints, err := codec.ParseDesc(b, desc)
	if err != nil {
		return "", err
	}
	res, err := pruner.Solve(b, kinds, hints, pruner.WithContext(o.Ctx))
	if err != nil {
		return "", err
	}
	return codec.EncodeMoves(solutionMoves(b, kinds, hints, res.Connections)), nil
}

// warnsdorffKinds runs the heuristic walk and classifies its tour.
func warnsdorffKinds(b knightgrid.Board, o Options) ([]knightgrid.CellKind, error) {
	topts := []tour.Option{tour.WithContext(o.Ctx), tour.WithSeed(o.Seed)}
	if o.Unvisited >= 0 {
		topts = append(topts, tour.WithUnvisited(o.Unvisited))
	}
	if o.MaxAttempts > 0 {
		topts = append(topts, tour.WithMaxAttempts(o.MaxAttempts))
	}
	tr, err := tour.Generate(b, topts...)
	if err != nil {
		return nil, err
	}
	return tr.Classify(), nil
}

// neuralKinds runs the Hamiltonian path solver over the board's knight
// graph and classifies the resulting full-board tour.
func neuralKinds(b knightgrid.Board, o Options) ([]knightgrid.CellKind, error) {
	s := hamilton.NewPath(b.Cells())
	for _, e := range b.KnightEdges() {
		if err := s.AddEdge(e[0], e[1]); err != nil {
			return nil, err
		}
	}
	hopts := []hamilton.Option{hamilton.WithContext(o.Ctx), hamilton.WithSeed(o.Seed)}
	if o.MaxAttempts > 0 {
		hopts = append(hopts, hamilton.WithMaxAttempts(o.MaxAttempts))
	}
	path, err := s.Run(hopts...)
	if err != nil {
		return nil, err
	}

	moves := make([]knightgrid.Direction, len(path)-1)
	for i := range moves {
		d, ok := b.DirectionBetween(path[i], path[i+1])
		if !ok {
			return nil, fmt.Errorf("puzzle: solver step %d-%d is not a knight move", path[i], path[i+1])
		}
		moves[i] = d
	}
	tr := &tour.Tour{Board: b, Cells: path, Moves: moves}
	return tr.Classify(), nil
}

// solutionMoves walks the solved tour endpoint to endpoint and collects
// the connections the description did not already reveal, in walk
// order.
func solutionMoves(b knightgrid.Board, kinds []knightgrid.CellKind, hints []knightgrid.Connection, conns []knightgrid.DirSet) []knightgrid.Connection {
	hinted := make([]knightgrid.DirSet, b.Cells())
	for _, h := range hints {
		dest, _ := b.Apply(h.Cell, h.Dir)
		hinted[h.Cell] = hinted[h.Cell].With(h.Dir)
		hinted[dest] = hinted[dest].With(h.Dir.Opposite())
	}

	start := -1
	for c, k := range kinds {
		if k == knightgrid.Endpoint {
			start = c
			break
		}
	}

	var out []knightgrid.Connection
	prev, cur := -1, start
	for {
		next := -1
		var dir knightgrid.Direction
		for d := knightgrid.Direction(0); d < 8; d++ {
			if !conns[cur].Has(d) {
				continue
			}
			if dest, ok := b.Apply(cur, d); ok && dest != prev {
				next, dir = dest, d
				break
			}
		}
		if next < 0 {
			return out
		}
		if !hinted[cur].Has(dir) {
			out = append(out, knightgrid.Connection{Cell: cur, Dir: dir})
		}
		prev, cur = cur, next
	}
}
