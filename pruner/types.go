// types.go — sentinel errors, functional options, and the Result type
// of the uniqueness solver.

package pruner

import (
	"context"
	"errors"

	"github.com/katalvlaran/knighttour/knightgrid"
)

var (
	// ErrDegreeContradiction is returned when no tour is consistent
	// with the kind grid and the connections assumed so far.
	ErrDegreeContradiction = errors.New("pruner: connection degrees contradict the kind grid")

	// ErrGridShape is returned when the kind grid does not fit the
	// board, holds an invalid kind, or lacks exactly two endpoints.
	ErrGridShape = errors.New("pruner: malformed kind grid")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("pruner: invalid option supplied")
)

// Option configures a solver run via functional arguments.
type Option func(*Options)

// Options holds the tunables of a solver run. The solver itself is
// fully deterministic; only cancellation is configurable.
type Options struct {
	// Ctx allows cancellation of long propagation or search runs.
	Ctx context.Context

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with context.Background().
func DefaultOptions() Options {
	return Options{Ctx: context.Background(), err: nil}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// Result is the outcome of a solver run.
type Result struct {
	// Connections is the tour as per-cell direction sets: every edge
	// recorded at both cells in opposite directions.
	Connections []knightgrid.DirSet

	// Hints lists the connections that were assumed rather than
	// derived. Publishing them with the kind grid makes the puzzle
	// solvable by propagation alone, with this tour as its only
	// solution. One entry per edge; the mirrored half is implied.
	Hints []knightgrid.Connection

	// Complete reports whether every visited cell reached its full
	// connection count. Prune and Solve only return complete results;
	// Propagate may stop short.
	Complete bool
}
