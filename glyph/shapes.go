// SPDX-License-Identifier: MIT
// Package: blockgrid/glyph
//
// shapes.go - built-in glyph shapes, as data.
//
// Purpose:
//   - Single source of truth for the built-in glyph geometry. Digits and the
//     separator live on a 3×5 block box, the spacer is a 1×3 column.
//   - Cells are listed in drawing order (row by row, left to right). Build
//     folds them in this order; keep it stable.
//
// Notes:
//   - The spacer is shorter than the digits. Stitching skips its missing
//     rows, so the last two rows of a number carry no gap between digits.
//   - To add a symbol, add a data-only entry below or load a font file
//     (see package font); building logic never hardcodes shapes.

package glyph

import "github.com/katalvlaran/blockgrid/grid"

// Box of every digit and of the separator, in blocks.
const (
	DigitWidth  = 3
	DigitHeight = 5
)

// Box of the spacer glyph, in blocks.
const (
	SpaceWidth  = 1
	SpaceHeight = 3
)

// Runes under which the built-in table registers its non-digit glyphs.
const (
	SeparatorRune = ':'
	SpaceRune     = ' '
)

// -----------------------------------------------------------------------------
// Anchor positions on the 3×5 box - no magic coordinates.
// -----------------------------------------------------------------------------

var (
	topLeft   = grid.Pt(0, 0)
	topCenter = grid.Pt(1, 0)
	topRight  = grid.Pt(2, 0)

	upperLeft   = grid.Pt(0, 1)
	upperCenter = grid.Pt(1, 1)
	upperRight  = grid.Pt(2, 1)

	middleLeft   = grid.Pt(0, 2)
	middleCenter = grid.Pt(1, 2)
	middleRight  = grid.Pt(2, 2)

	lowerLeft   = grid.Pt(0, 3)
	lowerCenter = grid.Pt(1, 3)
	lowerRight  = grid.Pt(2, 3)

	bottomLeft   = grid.Pt(0, 4)
	bottomCenter = grid.Pt(1, 4)
	bottomRight  = grid.Pt(2, 4)
)

// Anchors returns the named positions of the 3×5 box, keyed by snake_case
// name (top_left … bottom_right). The map is a fresh copy.
func Anchors() map[string]grid.Point {
	return map[string]grid.Point{
		"top_left": topLeft, "top_center": topCenter, "top_right": topRight,
		"upper_left": upperLeft, "upper_center": upperCenter, "upper_right": upperRight,
		"middle_left": middleLeft, "middle_center": middleCenter, "middle_right": middleRight,
		"lower_left": lowerLeft, "lower_center": lowerCenter, "lower_right": lowerRight,
		"bottom_left": bottomLeft, "bottom_center": bottomCenter, "bottom_right": bottomRight,
	}
}

// digit wraps a cell list into a 3×5 shape.
func digit(cells ...grid.Point) Shape {
	return Shape{Width: DigitWidth, Height: DigitHeight, Cells: cells}
}

// defaultShapes is the built-in registry. Pictures use '#' for "on".
var defaultShapes = map[rune]Shape{
	// ###
	// # #
	// # #
	// # #
	// ###
	'0': digit(
		topLeft, topCenter, topRight,
		upperLeft, upperRight,
		middleLeft, middleRight,
		lowerLeft, lowerRight,
		bottomLeft, bottomCenter, bottomRight,
	),

	//   #
	//   #
	//   #
	//   #
	//   #
	'1': digit(
		topRight,
		upperRight,
		middleRight,
		lowerRight,
		bottomRight,
	),

	// ###
	//   #
	// ###
	// #
	// ###
	'2': digit(
		topLeft, topCenter, topRight,
		upperRight,
		middleLeft, middleCenter, middleRight,
		lowerLeft,
		bottomLeft, bottomCenter, bottomRight,
	),

	// ###
	//   #
	// ###
	//   #
	// ###
	'3': digit(
		topLeft, topCenter, topRight,
		upperRight,
		middleLeft, middleCenter, middleRight,
		lowerRight,
		bottomLeft, bottomCenter, bottomRight,
	),

	// # #
	// # #
	// ###
	//   #
	//   #
	'4': digit(
		topLeft, topRight,
		upperLeft, upperRight,
		middleLeft, middleCenter, middleRight,
		lowerRight,
		bottomRight,
	),

	// ###
	// #
	// ###
	//   #
	// ###
	'5': digit(
		topLeft, topCenter, topRight,
		upperLeft,
		middleLeft, middleCenter, middleRight,
		lowerRight,
		bottomLeft, bottomCenter, bottomRight,
	),

	// ###
	// #
	// ###
	// # #
	// ###
	'6': digit(
		topLeft, topCenter, topRight,
		upperLeft,
		middleLeft, middleCenter, middleRight,
		lowerLeft, lowerRight,
		bottomLeft, bottomCenter, bottomRight,
	),

	// ###
	//   #
	//   #
	//   #
	//   #
	'7': digit(
		topLeft, topCenter, topRight,
		upperRight,
		middleRight,
		lowerRight,
		bottomRight,
	),

	// ###
	// # #
	// ###
	// # #
	// ###
	'8': digit(
		topLeft, topCenter, topRight,
		upperLeft, upperRight,
		middleLeft, middleCenter, middleRight,
		lowerLeft, lowerRight,
		bottomLeft, bottomCenter, bottomRight,
	),

	// ###
	// # #
	// ###
	//   #
	// ###
	'9': digit(
		topLeft, topCenter, topRight,
		upperLeft, upperRight,
		middleLeft, middleCenter, middleRight,
		lowerRight,
		bottomLeft, bottomCenter, bottomRight,
	),

	//
	//  #
	//
	//  #
	//
	SeparatorRune: digit(upperCenter, lowerCenter),

	// 1×3 blank column.
	SpaceRune: {Width: SpaceWidth, Height: SpaceHeight},
}
