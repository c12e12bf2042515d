// params.go — the "WxH" board-size form and the preset list.

package codec

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/knighttour/knightgrid"
)

// Params names a board size in the textual "WxH" form shared by
// presets, descriptions on disk, and the CLI.
type Params struct {
	Width  int
	Height int
}

// String renders the canonical "WxH" form.
func (p Params) String() string {
	return fmt.Sprintf("%dx%d", p.Width, p.Height)
}

// Board validates the dimensions and returns the board geometry.
func (p Params) Board() (knightgrid.Board, error) {
	return knightgrid.NewBoard(p.Width, p.Height)
}

// ParseParams parses a "WxH" string. Dimension bounds are not checked
// here; Board applies them.
func ParseParams(s string) (Params, error) {
	ws, hs, ok := strings.Cut(s, "x")
	if !ok {
		return Params{}, fmt.Errorf("%w: %q", ErrParamsFormat, s)
	}
	w, err := strconv.Atoi(ws)
	if err != nil || w < 1 {
		return Params{}, fmt.Errorf("%w: width in %q", ErrParamsFormat, s)
	}
	h, err := strconv.Atoi(hs)
	if err != nil || h < 1 {
		return Params{}, fmt.Errorf("%w: height in %q", ErrParamsFormat, s)
	}
	return Params{Width: w, Height: h}, nil
}

// Presets returns the board sizes offered by default, smallest first.
func Presets() []Params {
	return []Params{
		{Width: 6, Height: 6},
		{Width: 7, Height: 7},
		{Width: 8, Height: 8},
		{Width: 10, Height: 10},
	}
}
