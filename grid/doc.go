// SPDX-License-Identifier: MIT

// Package grid composes immutable two-dimensional grids of arbitrary values
// out of fixed-size square blocks, and reads several grids side by side as
// one continuous raster.
//
// What:
//
//   - Builder[V] accumulates "place value V at block (x,y)" instructions
//     (sectors) at a chosen block size and rasterizes them into a Grid[V].
//   - Grid[V] is the frozen result: bounds-checked cell and row access,
//     lazy row iteration, region analysis.
//   - AlongRow and Stitch concatenate the same row index across an ordered
//     slice of grids, the mechanism used to lay glyphs out left to right.
//
// Why:
//
//   - A shape is declared once in block space (a handful of coordinates)
//     and scaled uniformly by changing the block size, without touching
//     the shape data.
//
// Complexity:
//
//   - Build:     O(W×H + S×B²), Memory: O(W×H)   (S sectors, B block size).
//   - Get/Row:   O(1) / O(W).
//   - AlongRow:  O(Σ widths) per row, lazy.
//   - Stitch:    O(maxRows × Σ widths).
//   - Regions:   O(W×H), Memory: O(W×H).
//
// Errors:
//
//   - ErrZeroBlockSize:    BlockSize called with n < 1.
//   - ErrEmptyExtent:      BlocksX/BlocksY would leave an axis below one block.
//   - ErrSectorOutOfRange: a sector lies outside the block extents at Build.
//   - ErrGridTooLarge:     cell width, height or area would overflow int.
//
// Configuration errors are sticky: the first one disables the builder and
// is returned by Build. Reading never fails; out-of-range access reports
// absence through a boolean.
package grid
