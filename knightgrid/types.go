// types.go — shared vocabulary of the knight-move data model: directions,
// cell kinds, direction sets, connections, and package sentinels.

package knightgrid

import (
	"errors"
	"math/bits"
)

// MinBoardDim is the smallest board side the generators support.
const MinBoardDim = 6

var (
	// ErrBoardSize indicates a board dimension below MinBoardDim.
	ErrBoardSize = errors.New("knightgrid: board dimension below minimum")
)

// Direction identifies one of the eight knight moves, numbered 0–7 in
// clockwise order starting at (+1,−2). Direction digits are the values
// carried by serialized descriptors and move strings.
type Direction int

// NoDirection is the zero-displacement placeholder used where a move
// digit is absent.
const NoDirection Direction = 8

// Valid reports whether d is one of the eight real directions.
func (d Direction) Valid() bool { return d >= 0 && d < 8 }

// Opposite returns the direction pointing the reverse way. Applying d
// and then d.Opposite() from any cell returns to that cell.
func (d Direction) Opposite() Direction { return (d + 4) % 8 }

// Parity returns 0 for directions {0,2,4,6} and 1 for {1,3,5,7}.
// A direction and its opposite always share a parity class.
func (d Direction) Parity() int { return int(d) % 2 }

// CellKind classifies a cell of a finished tour. The numeric values are
// the digit characters of the serialized descriptor.
type CellKind uint8

const (
	// Unvisited marks a cell the tour never enters.
	Unvisited CellKind = iota
	// Endpoint marks the first or last cell of the path.
	Endpoint
	// OrthogonalTurn marks an interior cell whose two moves share a
	// parity class.
	OrthogonalTurn
	// DiagonalTurn marks an interior cell whose two moves lie in
	// different parity classes.
	DiagonalTurn
)

// String returns a short human-readable kind name.
func (k CellKind) String() string {
	switch k {
	case Unvisited:
		return "unvisited"
	case Endpoint:
		return "endpoint"
	case OrthogonalTurn:
		return "orthogonal"
	case DiagonalTurn:
		return "diagonal"
	default:
		return "invalid"
	}
}

// TurnKind returns the interior cell kind implied by a pair of moves
// through a cell: OrthogonalTurn when the directions share a parity
// class, DiagonalTurn otherwise. Orientation does not matter because a
// direction and its opposite have equal parity.
func TurnKind(a, b Direction) CellKind {
	if a.Parity() == b.Parity() {
		return OrthogonalTurn
	}
	return DiagonalTurn
}

// DirSet is a bitmask over the eight directions, bit d for Direction d.
type DirSet uint8

const (
	// EvenDirs covers the even parity class {0,2,4,6}.
	EvenDirs DirSet = 0x55
	// OddDirs covers the odd parity class {1,3,5,7}.
	OddDirs DirSet = 0xAA
	// AllDirs covers every direction.
	AllDirs DirSet = 0xFF
)

// Has reports whether d is in the set.
func (s DirSet) Has(d Direction) bool { return d.Valid() && s&(1<<uint(d)) != 0 }

// With returns the set extended by d.
func (s DirSet) With(d Direction) DirSet { return s | 1<<uint(d) }

// Without returns the set with d removed.
func (s DirSet) Without(d Direction) DirSet { return s &^ (1 << uint(d)) }

// Count returns the number of directions in the set.
func (s DirSet) Count() int { return bits.OnesCount8(uint8(s)) }

// CountIn returns the number of directions shared with mask.
func (s DirSet) CountIn(mask DirSet) int { return bits.OnesCount8(uint8(s & mask)) }

// Connection names one half of a tour edge: the move Dir taken from
// Cell. The symmetric half (destination, Dir.Opposite()) is implied.
type Connection struct {
	Cell int
	Dir  Direction
}
