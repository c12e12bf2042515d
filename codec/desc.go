// desc.go — encoding, parsing and validation of the persisted puzzle
// description.

package codec

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/knighttour/knightgrid"
)

// EncodeDesc renders a kind grid and its revealed connections into the
// canonical description form. Connections may be named from either
// side; each is written once, from its lower-index cell, in sorted
// order.
func EncodeDesc(b knightgrid.Board, kinds []knightgrid.CellKind, hints []knightgrid.Connection) (string, error) {
	n := b.Cells()
	if len(kinds) != n {
		return "", fmt.Errorf("%w: %d kinds for %d cells", ErrDescFormat, len(kinds), n)
	}
	var sb strings.Builder
	sb.Grow(n + 1 + len(hints)*5)
	for c, k := range kinds {
		if k > knightgrid.DiagonalTurn {
			return "", fmt.Errorf("%w: invalid kind %d at cell %d", ErrDescFormat, k, c)
		}
		sb.WriteByte('0' + byte(k))
	}
	sb.WriteByte('.')

	canonical, err := canonicalHints(b, kinds, hints)
	if err != nil {
		return "", err
	}
	for _, h := range canonical {
		sb.WriteByte('0' + byte(h.Dir))
		sb.WriteString(strconv.Itoa(h.Cell))
		sb.WriteByte('.')
	}
	return sb.String(), nil
}

// ParseDesc parses a description into its kind grid and revealed
// connections. Returned connections are canonical: named once each,
// from the lower-index cell, in description order.
func ParseDesc(b knightgrid.Board, desc string) ([]knightgrid.CellKind, []knightgrid.Connection, error) {
	n := b.Cells()
	if len(desc) < n+1 {
		return nil, nil, fmt.Errorf("%w: %d bytes, want at least %d", ErrDescFormat, len(desc), n+1)
	}

	kinds := make([]knightgrid.CellKind, n)
	endpoints := 0
	for i := 0; i < n; i++ {
		ch := desc[i]
		if ch < '0' || ch > '3' {
			return nil, nil, fmt.Errorf("%w: kind byte %q at cell %d", ErrDescFormat, ch, i)
		}
		kinds[i] = knightgrid.CellKind(ch - '0')
		if kinds[i] == knightgrid.Endpoint {
			endpoints++
		}
	}
	if endpoints != 2 {
		return nil, nil, fmt.Errorf("%w: %d endpoint cells, need exactly 2", ErrDescFormat, endpoints)
	}
	if desc[n] != '.' {
		return nil, nil, fmt.Errorf("%w: missing separator after the kind grid", ErrDescFormat)
	}

	var hints []knightgrid.Connection
	drawn := make([]knightgrid.DirSet, n)
	for i := n + 1; i < len(desc); {
		ch := desc[i]
		if ch < '0' || ch > '7' {
			return nil, nil, fmt.Errorf("%w: direction byte %q at offset %d", ErrDescFormat, ch, i)
		}
		dir := knightgrid.Direction(ch - '0')
		j := i + 1
		for j < len(desc) && desc[j] != '.' {
			if desc[j] < '0' || desc[j] > '9' {
				return nil, nil, fmt.Errorf("%w: cell byte %q at offset %d", ErrDescFormat, desc[j], j)
			}
			j++
		}
		if j == i+1 {
			return nil, nil, fmt.Errorf("%w: triple at offset %d has no cell index", ErrDescFormat, i)
		}
		if j == len(desc) {
			return nil, nil, fmt.Errorf("%w: unterminated triple at offset %d", ErrDescFormat, i)
		}
		cell, err := strconv.Atoi(desc[i+1 : j])
		if err != nil || cell >= n {
			return nil, nil, fmt.Errorf("%w: cell index %q out of range", ErrDescFormat, desc[i+1:j])
		}

		dest, ok := b.Apply(cell, dir)
		if !ok {
			return nil, nil, fmt.Errorf("%w: connection %d/%d leaves the board", ErrDescFormat, cell, dir)
		}
		if kinds[cell] == knightgrid.Unvisited || kinds[dest] == knightgrid.Unvisited {
			return nil, nil, fmt.Errorf("%w: connection %d-%d touches an unvisited cell", ErrDescFormat, cell, dest)
		}
		if dest < cell {
			cell, dir = dest, dir.Opposite()
		}
		if drawn[cell].Has(dir) {
			return nil, nil, fmt.Errorf("%w: connection %d/%d declared twice", ErrDescFormat, cell, dir)
		}
		drawn[cell] = drawn[cell].With(dir)
		other, _ := b.Apply(cell, dir)
		drawn[other] = drawn[other].With(dir.Opposite())
		hints = append(hints, knightgrid.Connection{Cell: cell, Dir: dir})
		i = j + 1
	}

	for c := 0; c < n; c++ {
		if err := hintsFitKind(kinds[c], drawn[c]); err != nil {
			return nil, nil, fmt.Errorf("%w at cell %d", err, c)
		}
	}
	return kinds, hints, nil
}

// ValidateDesc reports whether desc is a well-formed description for
// the board.
func ValidateDesc(b knightgrid.Board, desc string) error {
	_, _, err := ParseDesc(b, desc)
	return err
}

// FormatGrid renders a kind grid as digit rows, one board row per
// line. Kinds must be a valid grid for the board.
func FormatGrid(b knightgrid.Board, kinds []knightgrid.CellKind) string {
	var sb strings.Builder
	sb.Grow(len(kinds) + b.Height)
	for i, k := range kinds {
		sb.WriteByte('0' + byte(k))
		if (i+1)%b.Width == 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// canonicalHints mirrors every connection onto its lower-index cell,
// validates it against the board and grid, drops the duplicate halves
// of pairs named from both sides, and sorts.
func canonicalHints(b knightgrid.Board, kinds []knightgrid.CellKind, hints []knightgrid.Connection) ([]knightgrid.Connection, error) {
	out := make([]knightgrid.Connection, 0, len(hints))
	seen := make(map[knightgrid.Connection]bool, len(hints))
	for _, h := range hints {
		if h.Cell < 0 || h.Cell >= b.Cells() || !h.Dir.Valid() {
			return nil, fmt.Errorf("%w: connection %d/%d", ErrDescFormat, h.Cell, h.Dir)
		}
		dest, ok := b.Apply(h.Cell, h.Dir)
		if !ok {
			return nil, fmt.Errorf("%w: connection %d/%d leaves the board", ErrDescFormat, h.Cell, h.Dir)
		}
		if kinds[h.Cell] == knightgrid.Unvisited || kinds[dest] == knightgrid.Unvisited {
			return nil, fmt.Errorf("%w: connection %d-%d touches an unvisited cell", ErrDescFormat, h.Cell, dest)
		}
		if dest < h.Cell {
			h = knightgrid.Connection{Cell: dest, Dir: h.Dir.Opposite()}
		}
		if seen[h] {
			continue
		}
		seen[h] = true
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Cell != out[j].Cell {
			return out[i].Cell < out[j].Cell
		}
		return out[i].Dir < out[j].Dir
	})
	return out, nil
}

// hintsFitKind checks that a cell's revealed connections do not exceed
// what its kind permits, in count or in parity.
func hintsFitKind(k knightgrid.CellKind, set knightgrid.DirSet) error {
	evens := set.CountIn(knightgrid.EvenDirs)
	odds := set.CountIn(knightgrid.OddDirs)
	switch k {
	case knightgrid.Endpoint:
		if evens+odds > 1 {
			return fmt.Errorf("%w: %d connections at an endpoint", ErrDescFormat, evens+odds)
		}
	case knightgrid.OrthogonalTurn:
		if evens+odds > 2 {
			return fmt.Errorf("%w: %d connections at a turn", ErrDescFormat, evens+odds)
		}
		if evens == 1 && odds == 1 {
			return fmt.Errorf("%w: mixed parity at an orthogonal turn", ErrDescFormat)
		}
	case knightgrid.DiagonalTurn:
		if evens+odds > 2 {
			return fmt.Errorf("%w: %d connections at a turn", ErrDescFormat, evens+odds)
		}
		if evens == 2 || odds == 2 {
			return fmt.Errorf("%w: matched parity at a diagonal turn", ErrDescFormat)
		}
	}
	return nil
}
