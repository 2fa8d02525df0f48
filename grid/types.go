// SPDX-License-Identifier: MIT

package grid

// Point is a coordinate pair. Depending on context it addresses a block
// (builder side) or a single cell (grid side). Origin is top-left, X grows
// rightward and Y downward.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}, handy in shape tables.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Sector is one override instruction: every cell of block (X, Y) takes Value.
type Sector[V any] struct {
	X, Y  int
	Value V
}
