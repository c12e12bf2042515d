// types.go — sentinel errors of the text codec.

package codec

import "errors"

var (
	// ErrParamsFormat is returned when a parameter string is not of
	// the "WxH" form with positive decimal dimensions.
	ErrParamsFormat = errors.New("codec: malformed parameters")

	// ErrDescFormat is returned when a puzzle description breaks the
	// grammar or one of its consistency checks.
	ErrDescFormat = errors.New("codec: malformed description")

	// ErrMoveFormat is returned when a move string breaks the grammar
	// or names a move the board does not have.
	ErrMoveFormat = errors.New("codec: malformed move string")
)
