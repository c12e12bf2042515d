// codec_test.go — unit tests for the parameter, description, and move
// wire forms.

package codec_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knighttour/codec"
	"github.com/katalvlaran/knighttour/knightgrid"
	"github.com/katalvlaran/knighttour/pruner"
	"github.com/katalvlaran/knighttour/tour"
)

func mustBoard(t *testing.T, w, h int) knightgrid.Board {
	t.Helper()
	b, err := knightgrid.NewBoard(w, h)
	require.NoError(t, err)
	return b
}

// kindDigits builds a kind-digit string for a 36-cell board with the
// given sparse overrides.
func kindDigits(set map[int]byte) string {
	digits := []byte(strings.Repeat("0", 36))
	for c, d := range set {
		digits[c] = d
	}
	return string(digits)
}

func TestParseParams(t *testing.T) {
	good := map[string]codec.Params{
		"6x6":  {Width: 6, Height: 6},
		"10x6": {Width: 10, Height: 6},
		"7x12": {Width: 7, Height: 12},
	}
	for s, want := range good {
		p, err := codec.ParseParams(s)
		require.NoError(t, err, s)
		assert.Equal(t, want, p)
		assert.Equal(t, s, p.String())
	}

	bad := []string{"", "6", "x6", "6x", "axb", "6x6x6", "0x6", "6x-1", "6 x 6"}
	for _, s := range bad {
		_, err := codec.ParseParams(s)
		assert.ErrorIs(t, err, codec.ErrParamsFormat, "%q", s)
	}
}

func TestParams_BoardAppliesDimensionBounds(t *testing.T) {
	p, err := codec.ParseParams("4x4")
	require.NoError(t, err, "syntax alone does not reject small boards")
	_, err = p.Board()
	assert.ErrorIs(t, err, knightgrid.ErrBoardSize)
}

func TestPresets_AllValid(t *testing.T) {
	presets := codec.Presets()
	require.NotEmpty(t, presets)
	assert.Equal(t, codec.Params{Width: 6, Height: 6}, presets[0])
	for _, p := range presets {
		_, err := p.Board()
		assert.NoError(t, err, p.String())
	}
}

func TestEncodeDesc_CanonicalForm(t *testing.T) {
	b := mustBoard(t, 6, 6)
	kinds, _, err := codec.ParseDesc(b, kindDigits(map[int]byte{0: '1', 8: '1'})+".")
	require.NoError(t, err)

	// The same connection named from the higher-index side, twice.
	hints := []knightgrid.Connection{
		{Cell: 8, Dir: 6},
		{Cell: 8, Dir: 6},
	}
	desc, err := codec.EncodeDesc(b, kinds, hints)
	require.NoError(t, err)
	assert.Equal(t, kindDigits(map[int]byte{0: '1', 8: '1'})+".20.", desc,
		"mirrored to the lower-index cell and written once")
}

func TestDesc_RoundTripsGeneratedPuzzles(t *testing.T) {
	b := mustBoard(t, 6, 6)
	for _, seed := range []int64{3, 7, 21} {
		tr, err := tour.Generate(b, tour.WithSeed(seed), tour.WithUnvisited(0))
		require.NoError(t, err)
		kinds := tr.Classify()
		res, err := pruner.Prune(b, kinds)
		require.NoError(t, err)

		desc, err := codec.EncodeDesc(b, kinds, res.Hints)
		require.NoError(t, err)
		require.NoError(t, codec.ValidateDesc(b, desc))

		kinds2, hints2, err := codec.ParseDesc(b, desc)
		require.NoError(t, err)
		assert.Equal(t, kinds, kinds2)

		// Encoding what was parsed reproduces the description byte for
		// byte, so the hint sets are identical.
		desc2, err := codec.EncodeDesc(b, kinds2, hints2)
		require.NoError(t, err)
		assert.Equal(t, desc, desc2)
	}
}

func TestParseDesc_AcceptsHintlessDescription(t *testing.T) {
	b := mustBoard(t, 6, 6)
	kinds, hints, err := codec.ParseDesc(b, kindDigits(map[int]byte{0: '1', 8: '1'})+".")
	require.NoError(t, err)
	assert.Empty(t, hints)
	assert.Equal(t, knightgrid.Endpoint, kinds[0])
	assert.Equal(t, knightgrid.Endpoint, kinds[8])
}

func TestParseDesc_Rejects(t *testing.T) {
	twoEnds := map[int]byte{0: '1', 8: '1'}
	cases := []struct {
		name string
		desc string
	}{
		{"too short", "1100."},
		{"bad kind digit", kindDigits(map[int]byte{0: '1', 8: '1', 5: '4'}) + "."},
		{"missing separator", kindDigits(twoEnds)},
		{"no endpoints", kindDigits(nil) + "."},
		{"three endpoints", kindDigits(map[int]byte{0: '1', 8: '1', 30: '1'}) + "."},
		{"bad direction byte", kindDigits(twoEnds) + ".80."},
		{"triple without cell index", kindDigits(twoEnds) + ".2."},
		{"unterminated triple", kindDigits(twoEnds) + ".20"},
		{"non-digit cell byte", kindDigits(twoEnds) + ".2a."},
		{"cell out of range", kindDigits(twoEnds) + ".299."},
		{"connection leaves the board", kindDigits(twoEnds) + ".50."},
		{"connection to unvisited cell", kindDigits(twoEnds) + ".30."},
		{"duplicate connection", kindDigits(twoEnds) + ".20.68."},
		{"two connections at an endpoint", kindDigits(map[int]byte{0: '1', 8: '1', 13: '2'}) + ".20.30."},
		{"mixed parity at orthogonal turn", kindDigits(map[int]byte{0: '1', 8: '1', 12: '2', 25: '3', 1: '3'}) + ".312.012."},
		{"matched parity at diagonal turn", kindDigits(map[int]byte{0: '1', 8: '1', 12: '3', 1: '2', 20: '2'}) + ".012.212."},
	}
	b := mustBoard(t, 6, 6)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, codec.ValidateDesc(b, tc.desc), codec.ErrDescFormat)
		})
	}
}

func TestMoves_RoundTrip(t *testing.T) {
	b := mustBoard(t, 6, 6)
	moves := []knightgrid.Connection{
		{Cell: 14, Dir: 2},
		{Cell: 5, Dir: 4},
		{Cell: 14, Dir: 2}, // retraction of the first pair
	}
	s := codec.EncodeMoves(moves)
	assert.Equal(t, "214.45.214", s)

	parsed, err := codec.ParseMoves(b, s)
	require.NoError(t, err)
	assert.Equal(t, moves, parsed)
}

func TestParseMoves_Rejects(t *testing.T) {
	b := mustBoard(t, 6, 6)
	bad := []string{
		"",        // empty
		"2",       // no cell index
		"814",     // direction out of range
		"2x4",     // non-digit cell byte
		"299",     // cell out of range
		"50",      // move leaves the board
		"214..45", // empty pair between separators
		"214.45.", // trailing empty pair
	}
	for _, s := range bad {
		_, err := codec.ParseMoves(b, s)
		assert.ErrorIs(t, err, codec.ErrMoveFormat, "%q", s)
	}
}

func TestFormatGrid_RowPerLine(t *testing.T) {
	b := mustBoard(t, 6, 6)
	kinds, _, err := codec.ParseDesc(b, kindDigits(map[int]byte{0: '1', 8: '1', 14: '3'})+".")
	require.NoError(t, err)

	out := codec.FormatGrid(b, kinds)
	want := "100000\n" +
		"001000\n" +
		"003000\n" +
		"000000\n" +
		"000000\n" +
		"000000\n"
	assert.Equal(t, want, out)
}
