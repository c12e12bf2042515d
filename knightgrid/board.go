// board.go — W×H board geometry: flat cell indexing, bounds-checked
// knight-move application, and edge enumeration.

package knightgrid

import "fmt"

// knightMoves lists the (dx,dy) displacement of each Direction in
// clockwise order. Rows grow downward, so dy < 0 moves toward row 0.
var knightMoves = [8][2]int{
	{+1, -2}, {+2, -1}, {+2, +1}, {+1, +2},
	{-1, +2}, {-2, +1}, {-2, -1}, {-1, -2},
}

// Offset returns the (dx,dy) displacement of d, or (0,0) for NoDirection.
func (d Direction) Offset() (dx, dy int) {
	if !d.Valid() {
		return 0, 0
	}
	return knightMoves[d][0], knightMoves[d][1]
}

// Board is a W×H knight-move board addressed by row-major cell index.
// It is a small value type; copy it freely.
type Board struct {
	Width  int
	Height int
}

// NewBoard validates the dimensions and returns a Board. Both sides must
// be at least MinBoardDim.
func NewBoard(width, height int) (Board, error) {
	if width < MinBoardDim || height < MinBoardDim {
		return Board{}, fmt.Errorf("%w: %dx%d (minimum %d)", ErrBoardSize, width, height, MinBoardDim)
	}
	return Board{Width: width, Height: height}, nil
}

// Cells returns the number of cells, Width×Height.
func (b Board) Cells() int { return b.Width * b.Height }

// Index converts coordinates to the flat row-major index y*Width+x.
func (b Board) Index(x, y int) int { return y*b.Width + x }

// Coordinate converts a flat index back to (x,y) coordinates.
func (b Board) Coordinate(cell int) (x, y int) { return cell % b.Width, cell / b.Width }

// InBounds reports whether (x,y) lies on the board.
func (b Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.Width && y >= 0 && y < b.Height
}

// Contains reports whether cell is a valid flat index.
func (b Board) Contains(cell int) bool { return cell >= 0 && cell < b.Cells() }

// Apply moves one knight step from cell along d. The boolean is false
// when cell is invalid, d is NoDirection, or the destination falls off
// the board.
func (b Board) Apply(cell int, d Direction) (int, bool) {
	if !d.Valid() || !b.Contains(cell) {
		return 0, false
	}
	x, y := b.Coordinate(cell)
	x += knightMoves[d][0]
	y += knightMoves[d][1]
	if !b.InBounds(x, y) {
		return 0, false
	}
	return b.Index(x, y), true
}

// DirectionBetween returns the direction of the knight move from one
// cell to another, or false when they are not one knight move apart.
func (b Board) DirectionBetween(from, to int) (Direction, bool) {
	for d := Direction(0); d < 8; d++ {
		if dest, ok := b.Apply(from, d); ok && dest == to {
			return d, true
		}
	}
	return NoDirection, false
}

// KnightEdges enumerates every knight-move edge of the board exactly
// once, as {lower, higher} index pairs in cell-scan order.
func (b Board) KnightEdges() [][2]int {
	edges := make([][2]int, 0, 4*b.Cells())
	for c := 0; c < b.Cells(); c++ {
		for d := Direction(0); d < 8; d++ {
			if dest, ok := b.Apply(c, d); ok && dest > c {
				edges = append(edges, [2]int{c, dest})
			}
		}
	}
	return edges
}
