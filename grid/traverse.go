// SPDX-License-Identifier: MIT
// Package: blockgrid/grid
//
// traverse.go - reading several grids as one continuous raster.
//
// Contract:
//   • Grids are visited strictly in slice order (left to right on screen).
//   • A grid that does not reach the requested row contributes nothing;
//     no padding value is invented and no error is raised.
//   • nil entries are treated like grids of height zero.

package grid

import "iter"

// AlongRow yields, left to right, every value of row y of each grid in
// grids. Grids shorter than y+1 rows are skipped silently.
// Complexity: O(Σ widths) per full iteration, O(1) extra memory.
func AlongRow[V any](grids []*Grid[V], y int) iter.Seq[V] {
	return func(yield func(V) bool) {
		if y < 0 {
			return
		}
		for _, g := range grids {
			if g == nil || y >= g.height {
				continue // short grid: no contribution
			}
			for _, v := range g.cells[y] {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Stitch yields maxRows lines. Line y is AlongRow(grids, y) collected into a
// fresh slice, so a column of glyphs sharing a common height becomes
// maxRows lines of concatenated symbols. Lines past every grid are empty,
// never nil. maxRows <= 0 yields nothing.
// Complexity: O(maxRows × Σ widths).
func Stitch[V any](grids []*Grid[V], maxRows int) iter.Seq[[]V] {
	return func(yield func([]V) bool) {
		width := 0
		for _, g := range grids {
			if g != nil {
				width += g.width
			}
		}
		for y := 0; y < maxRows; y++ {
			line := make([]V, 0, width)
			for v := range AlongRow(grids, y) {
				line = append(line, v)
			}
			if !yield(line) {
				return
			}
		}
	}
}

// MaxHeight returns the height of the tallest grid, or 0 when grids holds
// no non-nil grid.
func MaxHeight[V any](grids []*Grid[V]) int {
	maxH := 0
	for _, g := range grids {
		if g != nil && g.height > maxH {
			maxH = g.height
		}
	}

	return maxH
}

// StitchAll collects Stitch(grids, MaxHeight(grids)) into a slice of lines.
func StitchAll[V any](grids []*Grid[V]) [][]V {
	maxH := MaxHeight(grids)
	lines := make([][]V, 0, maxH)
	for line := range Stitch(grids, maxH) {
		lines = append(lines, line)
	}

	return lines
}
