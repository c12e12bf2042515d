// types.go — sentinel errors and functional options for the
// neural-net cycle solver.

package hamilton

import (
	"context"
	"errors"
	"fmt"
)

// DefaultMaxAttempts bounds restart attempts when WithMaxAttempts is
// not supplied. On boards in the supported size range the net usually
// lands a valid cycle within a few dozen attempts; the ceiling turns a
// cycle-free input into a loud error instead of an endless spin.
const DefaultMaxAttempts = 10_000

var (
	// ErrConvergenceFailure is returned when the attempt budget runs
	// out before any stable state forms a single full-length cycle.
	ErrConvergenceFailure = errors.New("hamilton: no valid cycle within the attempt budget")

	// ErrDisconnected is returned when the edge set does not connect
	// every vertex; such a graph cannot carry a Hamilton cycle.
	ErrDisconnected = errors.New("hamilton: edge set does not connect all vertices")

	// ErrVertexRange is returned when an AddEdge endpoint is outside
	// the graph.
	ErrVertexRange = errors.New("hamilton: vertex index out of range")

	// ErrSealed is returned when AddEdge is called after Run.
	ErrSealed = errors.New("hamilton: edges cannot change after Run")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("hamilton: invalid option supplied")
)

// Option configures a Run via functional arguments. An invalid Option
// is recorded internally and surfaced as ErrOptionViolation when Run
// is invoked.
type Option func(*Options)

// Options holds the tunables of the restart loop.
type Options struct {
	// Ctx allows cancellation between restart attempts.
	Ctx context.Context

	// Seed drives the deterministic RNG; 0 selects the fixed default
	// stream.
	Seed int64

	// MaxAttempts bounds the number of restart attempts.
	MaxAttempts int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - Seed 0 (fixed default stream)
//   - MaxAttempts = DefaultMaxAttempts.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		Seed:        0,
		MaxAttempts: DefaultMaxAttempts,
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

// WithMaxAttempts bounds the restart loop. Values below 1 are invalid.
func WithMaxAttempts(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: MaxAttempts must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxAttempts = n
	}
}
