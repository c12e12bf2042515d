// example_test.go — runnable documentation for the puzzle facade.

package puzzle_test

import (
	"fmt"

	"github.com/katalvlaran/knighttour/codec"
	"github.com/katalvlaran/knighttour/puzzle"
)

// ExampleGenerate builds a 6x6 puzzle and checks that its description
// survives the wire.
func ExampleGenerate() {
	p := codec.Params{Width: 6, Height: 6}
	pz, err := puzzle.Generate(p, puzzle.WithSeed(7))
	if err != nil {
		fmt.Println("generate:", err)
		return
	}

	b, _ := p.Board()
	fmt.Println(pz.Params, codec.ValidateDesc(b, pz.Desc) == nil)

	// Output:
	// 6x6 true
}
