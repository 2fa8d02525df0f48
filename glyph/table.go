// SPDX-License-Identifier: MIT

package glyph

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/blockgrid/grid"
)

// Shape describes a glyph in block space: a Width×Height box and the block
// coordinates that take the "on" value, in drawing order.
type Shape struct {
	Width, Height int
	Cells         []grid.Point
}

// Validate reports ErrBadShape when the box is empty or a cell lies outside it.
func (s Shape) Validate() error {
	if s.Width < 1 || s.Height < 1 {
		return fmt.Errorf("box %d×%d: %w", s.Width, s.Height, ErrBadShape)
	}
	for _, p := range s.Cells {
		if p.X < 0 || p.X >= s.Width || p.Y < 0 || p.Y >= s.Height {
			return fmt.Errorf("cell (%d,%d) outside %d×%d box: %w", p.X, p.Y, s.Width, s.Height, ErrBadShape)
		}
	}

	return nil
}

// clone deep-copies the cell list.
func (s Shape) clone() Shape {
	s.Cells = slices.Clone(s.Cells)
	return s
}

// Builder returns a fresh builder for shape s at block size 1: every cell
// defaults to off and each of s.Cells is set to on, in order. Callers scale
// it with BlockSize before building.
func Builder[V any](s Shape, off, on V) *grid.Builder[V] {
	return grid.WithDefault(off).
		Blocks(s.Width, s.Height).
		SetBulkSectors(on, s.Cells...)
}

// Table maps runes to shapes. A Table is never modified after construction,
// so a single value may be shared freely between goroutines.
type Table struct {
	shapes map[rune]Shape
}

// Default is the built-in table: '0'–'9', SeparatorRune and SpaceRune.
var Default = mustTable(defaultShapes)

// NewTable validates and copies shapes into a new Table.
func NewTable(shapes map[rune]Shape) (Table, error) {
	t := Table{shapes: make(map[rune]Shape, len(shapes))}
	for r, s := range shapes {
		if err := s.Validate(); err != nil {
			return Table{}, fmt.Errorf("%s: glyph %q: %w", methodNewTable, r, err)
		}
		t.shapes[r] = s.clone()
	}

	return t, nil
}

func mustTable(shapes map[rune]Shape) Table {
	t, err := NewTable(shapes)
	if err != nil {
		panic(err)
	}
	return t
}

// Lookup returns the shape registered for r.
func (t Table) Lookup(r rune) (Shape, bool) {
	s, ok := t.shapes[r]
	if !ok {
		return Shape{}, false
	}
	return s.clone(), true
}

// Len returns the number of glyphs in t.
func (t Table) Len() int {
	return len(t.shapes)
}

// Runes returns the registered runes in ascending order.
func (t Table) Runes() []rune {
	out := make([]rune, 0, len(t.shapes))
	for r := range t.shapes {
		out = append(out, r)
	}
	slices.Sort(out)

	return out
}

// Merge returns a new table holding t's shapes overlaid with other's;
// other wins for runes present in both.
func (t Table) Merge(other Table) Table {
	out := Table{shapes: make(map[rune]Shape, len(t.shapes)+len(other.shapes))}
	for r, s := range t.shapes {
		out.shapes[r] = s
	}
	for r, s := range other.shapes {
		out.shapes[r] = s
	}

	return out
}
