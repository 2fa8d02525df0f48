// SPDX-License-Identifier: MIT

package glyph_test

import (
	"fmt"

	"github.com/katalvlaran/blockgrid/glyph"
)

// ExampleLine_Number renders 42 with '#' on '.' at block size 1.
func ExampleLine_Number() {
	lines, err := glyph.NewLine(1, '.', '#').Number(42).Build()
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, l := range lines {
		fmt.Println(string(l))
	}

	// Output:
	// #.#.###
	// #.#...#
	// ###.###
	// ..##..
	// ..####
}

// ExampleBuilder scales the separator shape to block size 2.
func ExampleBuilder() {
	s, _ := glyph.Default.Lookup(glyph.SeparatorRune)
	fmt.Println(glyph.Builder(s, '.', 'o').BlockSize(2).MustBuild())

	// Output:
	// ......
	// ......
	// ..oo..
	// ..oo..
	// ......
	// ......
	// ..oo..
	// ..oo..
	// ......
	// ......
}
