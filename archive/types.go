// types.go — sentinel errors and the stored record type.

package archive

import (
	"errors"
	"time"
)

// ErrNotFound is returned when no record carries the requested ID.
var ErrNotFound = errors.New("archive: puzzle not found")

// Record is one archived puzzle.
type Record struct {
	// ID is the record's UUID.
	ID string

	// Params is the board size in the "WxH" wire form.
	Params string

	// Seed is the generation seed the puzzle was built with.
	Seed int64

	// Desc is the persisted puzzle description.
	Desc string

	// CreatedAt is the UTC time the record was saved.
	CreatedAt time.Time
}
