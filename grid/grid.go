// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"iter"
	"strings"
)

// Grid is an immutable, row-major two-dimensional array of values.
// A Grid is produced only by Builder.Build; once built nothing mutates it,
// so any number of goroutines may read it without synchronisation.
// Width and Height are always ≥ 1 and match the backing rows exactly.
type Grid[V any] struct {
	cells  [][]V // cells[y][x]
	width  int
	height int
}

// Width returns the number of cells along X.
// Complexity: O(1).
func (g *Grid[V]) Width() int {
	return g.width
}

// Height returns the number of cells along Y.
// Complexity: O(1).
func (g *Grid[V]) Height() int {
	return g.height
}

// InBounds reports whether (x,y) addresses a cell of g.
// Complexity: O(1).
func (g *Grid[V]) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Get returns the value at cell (x,y). ok is false when (x,y) lies outside
// the grid; Get never panics.
// Complexity: O(1).
func (g *Grid[V]) Get(x, y int) (v V, ok bool) {
	if !g.InBounds(x, y) {
		return v, false
	}

	return g.cells[y][x], true
}

// Row returns a copy of row y, or ok=false when y is out of range.
// Complexity: O(W).
func (g *Grid[V]) Row(y int) ([]V, bool) {
	if y < 0 || y >= g.height {
		return nil, false
	}
	row := make([]V, g.width)
	copy(row, g.cells[y])

	return row, true
}

// Rows yields every row, top to bottom, together with its index.
// The sequence is lazy and may be ranged over any number of times.
// Yielded slices are views into the grid: callers must not modify or
// retain them (use Row or Cells for owned copies).
func (g *Grid[V]) Rows() iter.Seq2[int, []V] {
	return func(yield func(int, []V) bool) {
		for y := 0; y < g.height; y++ {
			if !yield(y, g.cells[y][:g.width:g.width]) {
				return
			}
		}
	}
}

// Cells returns a deep copy of the whole grid as [y][x].
// Complexity: O(W×H) time and memory.
func (g *Grid[V]) Cells() [][]V {
	out := make([][]V, g.height)
	for y := range out {
		out[y] = make([]V, g.width)
		copy(out[y], g.cells[y])
	}

	return out
}

// String renders the grid one row per line without a trailing newline.
// rune and string cells are written verbatim, anything else with %v.
func (g *Grid[V]) String() string {
	var sb strings.Builder
	for y, row := range g.cells {
		for _, v := range row {
			switch c := any(v).(type) {
			case rune:
				sb.WriteRune(c)
			case string:
				sb.WriteString(c)
			default:
				fmt.Fprint(&sb, v)
			}
		}
		if y < g.height-1 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}

// Equal reports whether a and b have the same dimensions and eq holds for
// every pair of cells at the same position. Two nil grids are equal.
// Complexity: O(W×H).
func Equal[V any](a, b *Grid[V], eq func(V, V) bool) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.width != b.width || a.height != b.height {
		return false
	}
	for y := 0; y < a.height; y++ {
		for x := 0; x < a.width; x++ {
			if !eq(a.cells[y][x], b.cells[y][x]) {
				return false
			}
		}
	}

	return true
}
