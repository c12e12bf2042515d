package pruner_test

import (
	"testing"

	"github.com/katalvlaran/knighttour/knightgrid"
	"github.com/katalvlaran/knighttour/pruner"
	"github.com/katalvlaran/knighttour/tour"
)

// classified6x6 builds a full-coverage 6×6 tour and returns its board
// and kind grid.
func classified6x6(b *testing.B, seed int64) (knightgrid.Board, []knightgrid.CellKind) {
	board, err := knightgrid.NewBoard(6, 6)
	if err != nil {
		b.Fatalf("setup board: %v", err)
	}
	t, err := tour.Generate(board, tour.WithSeed(seed), tour.WithUnvisited(0))
	if err != nil {
		b.Fatalf("setup tour: %v", err)
	}
	return board, t.Classify()
}

// BenchmarkPrune_Full6x6 measures the whole generation-time pass:
// propagation to a fixed point plus the backtracking search for the
// assumption set that leaves a unique tour.
func BenchmarkPrune_Full6x6(b *testing.B) {
	board, kinds := classified6x6(b, 42)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := pruner.Prune(board, kinds); err != nil {
			b.Fatalf("prune: %v", err)
		}
	}
}

// BenchmarkPropagate_HintReplay6x6 measures the play-time cost of
// re-deriving the tour from the published hints by propagation alone.
func BenchmarkPropagate_HintReplay6x6(b *testing.B) {
	board, kinds := classified6x6(b, 42)
	res, err := pruner.Prune(board, kinds)
	if err != nil {
		b.Fatalf("setup prune: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		out, err := pruner.Propagate(board, kinds, res.Hints)
		if err != nil {
			b.Fatalf("propagate: %v", err)
		}
		if !out.Complete {
			b.Fatal("propagation left the tour incomplete")
		}
	}
}
