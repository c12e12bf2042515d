// classify.go — turning a finished walk into the per-cell kind grid
// and connection sets.

package tour

import "github.com/katalvlaran/knighttour/knightgrid"

// Classify returns the kind grid of the walk, one entry per board cell
// in flat index order. Cells the walk never entered stay Unvisited, the
// first and last cells become Endpoint, and every interior cell is
// labeled by the parity relation of its entering and leaving moves.
//
// Complexity: O(n) over the board.
func (t *Tour) Classify() []knightgrid.CellKind {
	kinds := make([]knightgrid.CellKind, t.Board.Cells())
	if len(t.Cells) == 0 {
		return kinds
	}

	kinds[t.Cells[0]] = knightgrid.Endpoint
	kinds[t.Cells[len(t.Cells)-1]] = knightgrid.Endpoint
	for i := 1; i < len(t.Cells)-1; i++ {
		kinds[t.Cells[i]] = knightgrid.TurnKind(t.Moves[i-1], t.Moves[i])
	}

	return kinds
}

// Connections returns the walk's own edges as per-cell direction sets:
// every move is recorded at both of its cells, in opposite directions.
// Endpoints end up with one set bit, interior cells with two.
//
// Complexity: O(n) over the walk.
func (t *Tour) Connections() []knightgrid.DirSet {
	conns := make([]knightgrid.DirSet, t.Board.Cells())
	for i, d := range t.Moves {
		from, to := t.Cells[i], t.Cells[i+1]
		conns[from] = conns[from].With(d)
		conns[to] = conns[to].With(d.Opposite())
	}

	return conns
}
