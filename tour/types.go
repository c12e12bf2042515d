// types.go — sentinel errors, functional options, and the Tour result
// type of the Warnsdorff generator.

package tour

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/knighttour/knightgrid"
)

// DefaultMaxAttempts bounds restart attempts when WithMaxAttempts is
// not supplied. Warnsdorff with randomized tie-breaks succeeds within a
// handful of restarts on supported boards; the ceiling exists so a
// hostile configuration fails loudly instead of spinning.
const DefaultMaxAttempts = 10_000

var (
	// ErrHeuristicDeadEnd is returned when every restart attempt
	// dead-ended before covering the requested number of cells.
	ErrHeuristicDeadEnd = errors.New("tour: heuristic walk exhausted its attempts")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("tour: invalid option supplied")
)

// Option configures tour generation via functional arguments. An
// invalid Option is recorded internally and surfaced as
// ErrOptionViolation when Generate is invoked.
type Option func(*Options)

// Options holds the tunables of the heuristic walk.
type Options struct {
	// Ctx allows cancellation between restart attempts.
	Ctx context.Context

	// Seed drives the deterministic RNG; 0 selects the fixed default
	// stream.
	Seed int64

	// Unvisited pins the number of cells the walk must leave
	// untouched. A negative value redraws it uniformly from
	// [0, Width+Height) on every attempt.
	Unvisited int

	// MaxAttempts bounds the number of restart attempts.
	MaxAttempts int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - Seed 0 (fixed default stream)
//   - Unvisited redrawn per attempt
//   - MaxAttempts = DefaultMaxAttempts.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		Seed:        0,
		Unvisited:   -1,
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

// WithUnvisited pins the number of unvisited cells instead of redrawing
// it per attempt. Negative values are invalid; board-dependent limits
// are checked by Generate.
func WithUnvisited(u int) Option {
	return func(o *Options) {
		if u < 0 {
			o.err = fmt.Errorf("%w: Unvisited cannot be negative (%d)", ErrOptionViolation, u)
			return
		}
		o.Unvisited = u
	}
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

// Tour is a finished heuristic walk: the cells in visit order and the
// direction of each move between consecutive cells. len(Moves) is
// always len(Cells)-1; cells absent from Cells were left unvisited.
type Tour struct {
	Board knightgrid.Board
	Cells []int
	Moves []knightgrid.Direction
}
