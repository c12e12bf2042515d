// types.go — errors, generator selection, functional options, and the
// Puzzle result type.

package puzzle

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/knighttour/codec"
	"github.com/katalvlaran/knighttour/knightgrid"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("puzzle: invalid option supplied")

// Generator selects the tour-construction algorithm behind Generate.
type Generator uint8

const (
	// Warnsdorff is the randomized heuristic walk. It supports leaving
	// cells unvisited and is the default.
	Warnsdorff Generator = iota
	// NeuralNet is the neuron-relaxation Hamiltonian path solver. It
	// visits every cell of the board.
	NeuralNet
)

// Option configures Generate and Solve via functional arguments. An
// invalid Option is recorded internally and surfaced as
// ErrOptionViolation.
type Option func(*Options)

// Options holds the facade tunables.
type Options struct {
	// Ctx allows cancellation of the underlying stages.
	Ctx context.Context

	// Seed drives the deterministic RNG of the selected generator;
	// 0 selects the fixed default stream.
	Seed int64

	// Generator selects the tour-construction algorithm.
	Generator Generator

	// Unvisited pins the number of unvisited cells. A negative value
	// lets the Warnsdorff walk redraw it per attempt; the neural
	// generator accepts only 0.
	Unvisited int

	// MaxAttempts bounds the generator's restart loop; 0 inherits the
	// generator's own default ceiling.
	MaxAttempts int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - Seed 0 (fixed default stream)
//   - the Warnsdorff generator, Unvisited redrawn per attempt
//   - MaxAttempts inherited from the generator.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		Seed:        0,
		Generator:   Warnsdorff,
		Unvisited:   -1,
		MaxAttempts: 0,
		err:         nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithSeed fixes the RNG seed. Zero selects the default stream.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithGenerator selects the tour-construction algorithm.
func WithGenerator(g Generator) Option {
	return func(o *Options) {
		if g > NeuralNet {
			o.err = fmt.Errorf("%w: unknown generator %d", ErrOptionViolation, g)
			return
		}
		o.Generator = g
	}
}

// WithUnvisited pins the number of unvisited cells. Negative values
// are invalid; board-dependent limits are checked by the generator.
func WithUnvisited(u int) Option {
	return func(o *Options) {
		if u < 0 {
			o.err = fmt.Errorf("%w: Unvisited cannot be negative (%d)", ErrOptionViolation, u)
			return
		}
		o.Unvisited = u
	}
}

// WithMaxAttempts bounds the generator's restart loop. Values below 1
// are invalid.
func WithMaxAttempts(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: MaxAttempts must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxAttempts = n
	}
}

// Puzzle is one generated unique-solution puzzle.
type Puzzle struct {
	// Params is the board size the puzzle was generated for.
	Params codec.Params

	// Desc is the persisted description: kind grid plus revealed
	// connections, in the codec wire form.
	Desc string

	// Kinds is the classified cell grid backing Desc.
	Kinds []knightgrid.CellKind

	// Hints are the revealed connections, as produced by the pruner.
	Hints []knightgrid.Connection
}
