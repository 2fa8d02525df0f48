// SPDX-License-Identifier: MIT

package grid_test

import (
	"fmt"

	"github.com/katalvlaran/blockgrid/grid"
)

// ExampleBuilder declares two corner blocks at block size 2 and prints the
// rasterized 6×6 grid.
func ExampleBuilder() {
	g, err := grid.WithDefault('.').
		BlockSize(2). // every block is 2×2 cells
		BlocksX(3).   // 3 blocks wide
		BlocksY(3).   // 3 blocks high
		SetBlockSector(0, 0, '#').
		SetBlockSector(2, 2, '#').
		Build()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(g)

	// Output:
	// ##....
	// ##....
	// ......
	// ......
	// ....##
	// ....##
}

// ExampleStitch lays two grids of different heights side by side.
func ExampleStitch() {
	left := grid.WithDefault('L').Blocks(1, 3).MustBuild()
	right := grid.WithDefault('R').Blocks(2, 2).MustBuild()

	for line := range grid.Stitch([]*grid.Grid[rune]{left, right}, 3) {
		fmt.Printf("%q\n", string(line))
	}

	// Output:
	// "LRR"
	// "LRR"
	// "L"
}

// ExampleBuilder_BlockSize shows that configuration errors surface at Build.
func ExampleBuilder_BlockSize() {
	_, err := grid.WithDefault(' ').BlockSize(0).Build()
	fmt.Println(err)

	// Output:
	// BlockSize: got 0: grid: block size must be at least 1
}
