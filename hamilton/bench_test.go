package hamilton_test

import (
	"testing"

	"github.com/katalvlaran/knighttour/hamilton"
	"github.com/katalvlaran/knighttour/knightgrid"
)

// knightSolver builds a solver over the knight graph of a w×h board.
func knightSolver(b *testing.B, cycle bool, w, h int) *hamilton.Solver {
	board, err := knightgrid.NewBoard(w, h)
	if err != nil {
		b.Fatalf("setup board: %v", err)
	}
	var s *hamilton.Solver
	if cycle {
		s = hamilton.NewCycle(board.Cells(), 0)
	} else {
		s = hamilton.NewPath(board.Cells())
	}
	for _, e := range board.KnightEdges() {
		if err := s.AddEdge(e[0], e[1]); err != nil {
			b.Fatalf("setup edge %v: %v", e, err)
		}
	}
	return s
}

// BenchmarkRun_KnightCycle6x6 measures full neuron-relaxation solves on
// the 36-vertex knight graph, the alternative generator's hot path.
func BenchmarkRun_KnightCycle6x6(b *testing.B) {
	s := knightSolver(b, true, 6, 6)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.Run(hamilton.WithSeed(int64(i + 1))); err != nil {
			b.Fatalf("run: %v", err)
		}
	}
}

// BenchmarkRun_KnightPath6x6 measures path-mode solves, which add the
// virtual vertex and its 36 extra edges to every iteration sweep.
func BenchmarkRun_KnightPath6x6(b *testing.B) {
	s := knightSolver(b, false, 6, 6)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.Run(hamilton.WithSeed(int64(i + 1))); err != nil {
			b.Fatalf("run: %v", err)
		}
	}
}
