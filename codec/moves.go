// moves.go — the player move-sequence wire form.

package codec

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/knighttour/knightgrid"
)

// EncodeMoves renders a move sequence as '.'-separated "<dir><cell>"
// pairs. A drag gesture batches several pairs into one string.
func EncodeMoves(moves []knightgrid.Connection) string {
	parts := make([]string, len(moves))
	for i, mv := range moves {
		parts[i] = fmt.Sprintf("%d%d", mv.Dir, mv.Cell)
	}
	return strings.Join(parts, ".")
}

// ParseMoves parses a move string for the board. Moves are checked
// geometrically; whether they suit the puzzle is the player state's
// concern.
func ParseMoves(b knightgrid.Board, s string) ([]knightgrid.Connection, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: empty", ErrMoveFormat)
	}
	parts := strings.Split(s, ".")
	moves := make([]knightgrid.Connection, 0, len(parts))
	for i, part := range parts {
		mv, err := parseMove(b, part)
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i, err)
		}
		moves = append(moves, mv)
	}
	return moves, nil
}

func parseMove(b knightgrid.Board, part string) (knightgrid.Connection, error) {
	if len(part) < 2 {
		return knightgrid.Connection{}, fmt.Errorf("%w: pair %q too short", ErrMoveFormat, part)
	}
	if part[0] < '0' || part[0] > '7' {
		return knightgrid.Connection{}, fmt.Errorf("%w: direction byte %q", ErrMoveFormat, part[0])
	}
	dir := knightgrid.Direction(part[0] - '0')
	for i := 1; i < len(part); i++ {
		if part[i] < '0' || part[i] > '9' {
			return knightgrid.Connection{}, fmt.Errorf("%w: cell byte %q", ErrMoveFormat, part[i])
		}
	}
	cell, err := strconv.Atoi(part[1:])
	if err != nil || cell >= b.Cells() {
		return knightgrid.Connection{}, fmt.Errorf("%w: cell index %q out of range", ErrMoveFormat, part[1:])
	}
	if _, ok := b.Apply(cell, dir); !ok {
		return knightgrid.Connection{}, fmt.Errorf("%w: move %d/%d leaves the board", ErrMoveFormat, cell, dir)
	}
	return knightgrid.Connection{Cell: cell, Dir: dir}, nil
}
