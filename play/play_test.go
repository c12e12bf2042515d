// play_test.go — unit tests for the player state machine: toggles,
// retraction, the status map, and completion.

package play_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knighttour/knightgrid"
	"github.com/katalvlaran/knighttour/play"
	"github.com/katalvlaran/knighttour/tour"
)

func mustBoard(t *testing.T, w, h int) knightgrid.Board {
	t.Helper()
	b, err := knightgrid.NewBoard(w, h)
	require.NoError(t, err)
	return b
}

func sparseKinds(b knightgrid.Board, set map[int]knightgrid.CellKind) []knightgrid.CellKind {
	kinds := make([]knightgrid.CellKind, b.Cells())
	for c, k := range set {
		kinds[c] = k
	}
	return kinds
}

// fourCycleMoves draw a knight 4-cycle on the 6x6 board:
// 12 → 25 → 14 → 1 → 12.
var fourCycleMoves = []knightgrid.Connection{
	{Cell: 12, Dir: 3},
	{Cell: 25, Dir: 0},
	{Cell: 14, Dir: 7},
	{Cell: 1, Dir: 4},
}

// fourCycleKinds marks the cycle cells as diagonal turns and parks the
// endpoint pair on the knight-adjacent cells 0 and 8.
func fourCycleKinds(b knightgrid.Board) []knightgrid.CellKind {
	return sparseKinds(b, map[int]knightgrid.CellKind{
		0:  knightgrid.Endpoint,
		8:  knightgrid.Endpoint,
		12: knightgrid.DiagonalTurn,
		25: knightgrid.DiagonalTurn,
		14: knightgrid.DiagonalTurn,
		1:  knightgrid.DiagonalTurn,
	})
}

func TestNewState_ValidatesShape(t *testing.T) {
	b := mustBoard(t, 6, 6)
	good := fourCycleKinds(b)

	threeEnds := append([]knightgrid.CellKind(nil), good...)
	threeEnds[30] = knightgrid.Endpoint
	badValue := append([]knightgrid.CellKind(nil), good...)
	badValue[5] = knightgrid.CellKind(9)

	cases := []struct {
		name  string
		board knightgrid.Board
		kinds []knightgrid.CellKind
		hints []knightgrid.Connection
	}{
		{"undersized board", knightgrid.Board{Width: 3, Height: 3}, good[:9], nil},
		{"kind count mismatch", b, good[:10], nil},
		{"no endpoints", b, make([]knightgrid.CellKind, b.Cells()), nil},
		{"three endpoints", b, threeEnds, nil},
		{"invalid kind value", b, badValue, nil},
		{"hint leaves the board", b, good, []knightgrid.Connection{{Cell: 0, Dir: 5}}},
		{"hint touches unvisited cell", b, good, []knightgrid.Connection{{Cell: 0, Dir: 3}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := play.NewState(tc.board, tc.kinds, tc.hints)
			assert.ErrorIs(t, err, play.ErrGridShape)
		})
	}
}

func TestToggle_RetractionRestoresState(t *testing.T) {
	b := mustBoard(t, 6, 6)
	st, err := play.NewState(b, fourCycleKinds(b), nil)
	require.NoError(t, err)

	conns := st.Connections()
	ends := st.Statuses()

	require.NoError(t, st.Toggle(12, 3))
	require.NoError(t, st.Toggle(12, 3))

	assert.Equal(t, conns, st.Connections())
	assert.Equal(t, ends, st.Statuses())
	assert.Len(t, st.Moves(), 2, "retractions stay in the move log")
}

func TestStatuses_OpenPathLinksEnds(t *testing.T) {
	b := mustBoard(t, 6, 6)
	st, err := play.NewState(b, fourCycleKinds(b), nil)
	require.NoError(t, err)

	for _, mv := range fourCycleMoves[:3] {
		require.NoError(t, st.Toggle(mv.Cell, mv.Dir))
	}

	// The open chain 12-25-14-1 links its ends and buries its middle.
	assert.Equal(t, 1, st.Status(12))
	assert.Equal(t, 12, st.Status(1))
	assert.Equal(t, knightgrid.Interior, st.Status(25))
	assert.Equal(t, knightgrid.Interior, st.Status(14))

	// A single connection links the endpoint pair both ways.
	require.NoError(t, st.Toggle(0, 2))
	assert.Equal(t, 8, st.Status(0))
	assert.Equal(t, 0, st.Status(8))

	// Untouched cells stay free.
	assert.True(t, st.Statuses().Free(30))
}

func TestToggle_FlagsAndClearsLoop(t *testing.T) {
	b := mustBoard(t, 6, 6)
	st, err := play.NewState(b, fourCycleKinds(b), nil)
	require.NoError(t, err)

	for _, mv := range fourCycleMoves[:3] {
		require.NoError(t, st.Toggle(mv.Cell, mv.Dir))
	}
	open := st.Statuses()

	require.NoError(t, st.Toggle(1, 4))
	for _, c := range []int{12, 25, 14, 1} {
		assert.Equal(t, knightgrid.LoopError, st.Status(c), "cell %d", c)
	}
	assert.True(t, st.Statuses().Free(0), "cells off the loop stay free")
	assert.False(t, st.Completed())

	// Erasing the closing connection restores the open-chain statuses.
	require.NoError(t, st.Toggle(1, 4))
	assert.Equal(t, open, st.Statuses())
}

func TestStatuses_FlagsOverConnectedCell(t *testing.T) {
	b := mustBoard(t, 6, 6)
	kinds := sparseKinds(b, map[int]knightgrid.CellKind{
		0:  knightgrid.Endpoint,
		8:  knightgrid.Endpoint,
		14: knightgrid.DiagonalTurn,
		3:  knightgrid.OrthogonalTurn,
		10: knightgrid.OrthogonalTurn,
		22: knightgrid.OrthogonalTurn,
	})
	st, err := play.NewState(b, kinds, nil)
	require.NoError(t, err)

	// Three spokes into cell 14 make a junction.
	require.NoError(t, st.Toggle(14, 0))
	require.NoError(t, st.Toggle(14, 1))
	require.NoError(t, st.Toggle(14, 2))

	assert.Equal(t, knightgrid.ParityError, st.Status(14))
	for _, c := range []int{3, 10, 22} {
		assert.Equal(t, 14, st.Status(c), "spoke end %d points at the junction", c)
	}
}

func TestStatuses_FlagsKindMismatch(t *testing.T) {
	b := mustBoard(t, 6, 6)
	kinds := fourCycleKinds(b)
	kinds[25] = knightgrid.OrthogonalTurn
	st, err := play.NewState(b, kinds, nil)
	require.NoError(t, err)

	for _, mv := range fourCycleMoves[:3] {
		require.NoError(t, st.Toggle(mv.Cell, mv.Dir))
	}

	// Cell 25 carries one even and one odd direction, which an
	// orthogonal turn forbids; both chain ends stop there.
	assert.Equal(t, knightgrid.ParityError, st.Status(25))
	assert.Equal(t, 25, st.Status(12))
	assert.Equal(t, 25, st.Status(1))
	assert.Equal(t, knightgrid.Interior, st.Status(14))
}

func TestToggle_RejectsMalformedMoves(t *testing.T) {
	b := mustBoard(t, 6, 6)
	st, err := play.NewState(b, fourCycleKinds(b), nil)
	require.NoError(t, err)

	cases := []struct {
		name string
		cell int
		dir  knightgrid.Direction
	}{
		{"negative cell", -1, 0},
		{"cell out of range", b.Cells(), 0},
		{"invalid direction", 0, knightgrid.NoDirection},
		{"destination off the board", 0, 5},
		{"destination unvisited", 0, 3},
		{"source unvisited", 20, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := st.Toggle(tc.cell, tc.dir)
			assert.ErrorIs(t, err, play.ErrMalformedMove)
		})
	}

	assert.Equal(t, make([]knightgrid.DirSet, b.Cells()), st.Connections(),
		"rejected moves leave no trace")
	assert.Empty(t, st.Moves())
}

func TestToggle_ProtectsPermanentHints(t *testing.T) {
	b := mustBoard(t, 6, 6)
	hints := []knightgrid.Connection{{Cell: 0, Dir: 2}}
	st, err := play.NewState(b, fourCycleKinds(b), hints)
	require.NoError(t, err)

	assert.True(t, st.Permanent(0, 2))
	assert.True(t, st.Permanent(8, 6), "the mirror half is locked too")
	assert.Equal(t, 8, st.Status(0), "hints count at load time")

	assert.ErrorIs(t, st.Toggle(0, 2), play.ErrMalformedMove)
	assert.ErrorIs(t, st.Toggle(8, 6), play.ErrMalformedMove)
	assert.True(t, st.Connection(0).Has(2))
	assert.Empty(t, st.Moves())
}

func TestReplay_ReproducesInteractiveSession(t *testing.T) {
	b := mustBoard(t, 6, 6)
	kinds := fourCycleKinds(b)

	st1, err := play.NewState(b, kinds, nil)
	require.NoError(t, err)
	require.NoError(t, st1.Toggle(12, 3))
	require.NoError(t, st1.Toggle(25, 0))
	require.NoError(t, st1.Toggle(25, 0)) // change of mind
	require.NoError(t, st1.Toggle(0, 2))

	st2, err := play.NewState(b, kinds, nil)
	require.NoError(t, err)
	require.NoError(t, st2.Replay(st1.Moves()))

	assert.Equal(t, st1.Connections(), st2.Connections())
	assert.Equal(t, st1.Statuses(), st2.Statuses())
}

func TestReplay_ReportsFailingIndex(t *testing.T) {
	b := mustBoard(t, 6, 6)
	st, err := play.NewState(b, fourCycleKinds(b), nil)
	require.NoError(t, err)

	moves := []knightgrid.Connection{
		{Cell: 12, Dir: 3},
		{Cell: 0, Dir: 5},
	}
	err = st.Replay(moves)
	assert.ErrorIs(t, err, play.ErrMalformedMove)
	assert.Contains(t, err.Error(), "move 1")
	assert.True(t, st.Connection(12).Has(3), "moves before the failure stay applied")
}

func TestPlayThrough_CompletesGeneratedTour(t *testing.T) {
	b := mustBoard(t, 6, 6)
	tr, err := tour.Generate(b, tour.WithSeed(5), tour.WithUnvisited(0))
	require.NoError(t, err)

	st, err := play.NewState(b, tr.Classify(), nil)
	require.NoError(t, err)

	for i, d := range tr.Moves {
		assert.False(t, st.Completed(), "incomplete after %d moves", i)
		require.NoError(t, st.Toggle(tr.Cells[i], d))
	}
	assert.True(t, st.Completed())

	first, last := tr.Cells[0], tr.Cells[len(tr.Cells)-1]
	assert.Equal(t, last, st.Status(first))
	assert.Equal(t, first, st.Status(last))
}
