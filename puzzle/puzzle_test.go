// puzzle_test.go — integration tests for the generate / open / solve
// pipeline.

package puzzle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knighttour/codec"
	"github.com/katalvlaran/knighttour/knightgrid"
	"github.com/katalvlaran/knighttour/play"
	"github.com/katalvlaran/knighttour/pruner"
	"github.com/katalvlaran/knighttour/puzzle"
)

var params6 = codec.Params{Width: 6, Height: 6}

func TestGenerate_ProducesValidDescriptions(t *testing.T) {
	b, err := params6.Board()
	require.NoError(t, err)

	for _, seed := range []int64{1, 2, 3} {
		pz, err := puzzle.Generate(params6, puzzle.WithSeed(seed))
		require.NoError(t, err, "seed %d", seed)
		require.NoError(t, codec.ValidateDesc(b, pz.Desc))

		kinds, _, err := codec.ParseDesc(b, pz.Desc)
		require.NoError(t, err)
		assert.Equal(t, pz.Kinds, kinds)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a, err := puzzle.Generate(params6, puzzle.WithSeed(11))
	require.NoError(t, err)
	b, err := puzzle.Generate(params6, puzzle.WithSeed(11))
	require.NoError(t, err)
	assert.Equal(t, a.Desc, b.Desc)

	c, err := puzzle.Generate(params6, puzzle.WithSeed(12))
	require.NoError(t, err)
	assert.NotEqual(t, a.Desc, c.Desc, "different seeds draw different puzzles")
}

func TestGenerate_HintsReplayByPropagationAlone(t *testing.T) {
	b, err := params6.Board()
	require.NoError(t, err)

	for _, seed := range []int64{1, 2, 3} {
		pz, err := puzzle.Generate(params6, puzzle.WithSeed(seed), puzzle.WithUnvisited(0))
		require.NoError(t, err, "seed %d", seed)
		assert.NotEmpty(t, pz.Hints, "a full-board tour is never forced from the bare grid")

		kinds, hints, err := codec.ParseDesc(b, pz.Desc)
		require.NoError(t, err)
		res, err := pruner.Propagate(b, kinds, hints)
		require.NoError(t, err)
		assert.True(t, res.Complete, "revealed connections must determine the tour without guessing")
	}
}

func TestGenerate_PinnedUnvisitedCount(t *testing.T) {
	pz, err := puzzle.Generate(params6, puzzle.WithSeed(4), puzzle.WithUnvisited(5))
	require.NoError(t, err)

	unvisited := 0
	for _, k := range pz.Kinds {
		if k == knightgrid.Unvisited {
			unvisited++
		}
	}
	assert.Equal(t, 5, unvisited)
}

func TestGenerate_NeuralGeneratorCoversBoard(t *testing.T) {
	pz, err := puzzle.Generate(params6, puzzle.WithSeed(2), puzzle.WithGenerator(puzzle.NeuralNet))
	require.NoError(t, err)

	for c, k := range pz.Kinds {
		assert.NotEqual(t, knightgrid.Unvisited, k, "cell %d", c)
	}
	b, err := params6.Board()
	require.NoError(t, err)
	assert.NoError(t, codec.ValidateDesc(b, pz.Desc))
}

func TestSolve_CompletesOpenedPuzzle(t *testing.T) {
	b, err := params6.Board()
	require.NoError(t, err)

	for _, seed := range []int64{5, 6} {
		pz, err := puzzle.Generate(params6, puzzle.WithSeed(seed))
		require.NoError(t, err, "seed %d", seed)

		st, err := pz.Open()
		require.NoError(t, err)

		s, err := puzzle.Solve(params6, pz.Desc)
		require.NoError(t, err)
		if s != "" {
			moves, err := codec.ParseMoves(b, s)
			require.NoError(t, err)
			require.NoError(t, st.Replay(moves))
		}
		assert.True(t, st.Completed(), "seed %d", seed)
	}
}

func TestOpen_LocksRevealedConnections(t *testing.T) {
	pz, err := puzzle.Generate(params6, puzzle.WithSeed(9), puzzle.WithUnvisited(0))
	require.NoError(t, err)
	require.NotEmpty(t, pz.Hints)

	st, err := puzzle.Open(pz.Params, pz.Desc)
	require.NoError(t, err)

	h := pz.Hints[0]
	assert.True(t, st.Connection(h.Cell).Has(h.Dir))
	assert.ErrorIs(t, st.Toggle(h.Cell, h.Dir), play.ErrMalformedMove)
}

func TestOpen_RejectsMalformedDescription(t *testing.T) {
	_, err := puzzle.Open(params6, "nonsense")
	assert.ErrorIs(t, err, codec.ErrDescFormat)

	_, err = puzzle.Solve(params6, "nonsense")
	assert.ErrorIs(t, err, codec.ErrDescFormat)
}

func TestGenerate_OptionViolations(t *testing.T) {
	cases := []struct {
		name string
		opts []puzzle.Option
	}{
		{"unknown generator", []puzzle.Option{puzzle.WithGenerator(puzzle.Generator(9))}},
		{"negative unvisited", []puzzle.Option{puzzle.WithUnvisited(-1)}},
		{"zero attempts", []puzzle.Option{puzzle.WithMaxAttempts(0)}},
		{"neural with unvisited cells", []puzzle.Option{
			puzzle.WithGenerator(puzzle.NeuralNet), puzzle.WithUnvisited(3),
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := puzzle.Generate(params6, tc.opts...)
			assert.ErrorIs(t, err, puzzle.ErrOptionViolation)
		})
	}
}

func TestGenerate_RejectsSmallBoard(t *testing.T) {
	_, err := puzzle.Generate(codec.Params{Width: 4, Height: 4})
	assert.ErrorIs(t, err, knightgrid.ErrBoardSize)
}
