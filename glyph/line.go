// SPDX-License-Identifier: MIT
// Package: blockgrid/glyph
//
// line.go - composing glyphs into one line of large symbols.
//
// Contract:
//   • Glyphs are kept in call order; Build applies the line's block size to
//     every glyph, builds each grid and stitches them up to the tallest one.
//   • The first error (unknown rune, bad digit, bad block size) is sticky:
//     later calls are no-ops and Build returns it.
//   • Build does not consume the line; it may be called again, or the line
//     reset and reused.

package glyph

import (
	"fmt"

	"github.com/katalvlaran/blockgrid/grid"
)

// LineOption customizes a Line at construction.
type LineOption func(*lineConfig)

type lineConfig struct {
	table Table
}

// WithTable makes the line resolve runes through t instead of Default.
func WithTable(t Table) LineOption {
	return func(c *lineConfig) {
		c.table = t
	}
}

// Line accumulates glyph builders sharing one block size and one pair of
// off/on values.
type Line[V any] struct {
	table     Table
	blockSize int
	off, on   V
	builders  []*grid.Builder[V]
	err       error
}

// NewLine starts an empty line. blockSize < 1 records grid.ErrZeroBlockSize.
func NewLine[V any](blockSize int, off, on V, opts ...LineOption) *Line[V] {
	cfg := lineConfig{table: Default}
	for _, opt := range opts {
		opt(&cfg)
	}
	l := &Line[V]{table: cfg.table, blockSize: blockSize, off: off, on: on}
	if blockSize < 1 {
		l.err = fmt.Errorf("%s: got %d: %w", methodNewLine, blockSize, grid.ErrZeroBlockSize)
	}

	return l
}

// Glyph appends the shape registered for r.
func (l *Line[V]) Glyph(r rune) *Line[V] {
	if l.err != nil {
		return l
	}
	s, ok := l.table.Lookup(r)
	if !ok {
		l.err = fmt.Errorf("%s: %q: %w", methodGlyph, r, ErrUnknownGlyph)
		return l
	}
	l.builders = append(l.builders, Builder(s, l.off, l.on))

	return l
}

// Text appends one glyph per rune of s, verbatim: ' ' becomes the spacer
// glyph and no spacing is inserted automatically.
func (l *Line[V]) Text(s string) *Line[V] {
	for _, r := range s {
		l.Glyph(r)
	}

	return l
}

// Digit appends the glyph of decimal digit d (0..9).
func (l *Line[V]) Digit(d int) *Line[V] {
	if l.err != nil {
		return l
	}
	if d < 0 || d > 9 {
		l.err = fmt.Errorf("%s: %d: %w", methodDigit, d, ErrDigitRange)
		return l
	}

	return l.Glyph(rune('0' + d))
}

// Space appends the spacer glyph.
func (l *Line[V]) Space() *Line[V] {
	return l.Glyph(SpaceRune)
}

// Separator appends the ':' separator glyph.
func (l *Line[V]) Separator() *Line[V] {
	return l.Glyph(SeparatorRune)
}

// Number appends the decimal digits of n in display order with exactly one
// spacer glyph between consecutive digits and none around them.
func (l *Line[V]) Number(n uint64) *Line[V] {
	for i, d := range Digits(n) {
		if i > 0 {
			l.Space()
		}
		l.Digit(d)
	}

	return l
}

// Append adds a snapshot of a caller-configured builder as the next glyph.
// The snapshot is built at the line's block size; b itself is left as is
// and later changes to it do not affect the line. A nil b records
// ErrNilBuilder.
func (l *Line[V]) Append(b *grid.Builder[V]) *Line[V] {
	if l.err != nil {
		return l
	}
	if b == nil {
		l.err = fmt.Errorf("%s: glyph %d: %w", methodAppend, len(l.builders), ErrNilBuilder)
		return l
	}
	l.builders = append(l.builders, b.Clone())

	return l
}

// Reset drops every glyph and any recorded glyph error, keeping the block
// size, values and table. A block-size error from NewLine is kept.
func (l *Line[V]) Reset() *Line[V] {
	l.builders = nil
	if l.blockSize >= 1 {
		l.err = nil
	}

	return l
}

// Len returns the number of glyphs appended so far.
func (l *Line[V]) Len() int {
	return len(l.builders)
}

// Err returns the first recorded error, if any.
func (l *Line[V]) Err() error {
	return l.err
}

// Grids builds every glyph at the line's block size, in order.
func (l *Line[V]) Grids() ([]*grid.Grid[V], error) {
	if l.err != nil {
		return nil, l.err
	}
	grids := make([]*grid.Grid[V], 0, len(l.builders))
	for i, b := range l.builders {
		g, err := b.BlockSize(l.blockSize).Build()
		if err != nil {
			return nil, fmt.Errorf("glyph %d: %w", i, err)
		}
		grids = append(grids, g)
	}

	return grids, nil
}

// Build renders the line: one []V per cell row, as many rows as the
// tallest glyph. Shorter glyphs contribute nothing to rows they lack.
func (l *Line[V]) Build() ([][]V, error) {
	grids, err := l.Grids()
	if err != nil {
		return nil, err
	}

	return grid.StitchAll(grids), nil
}
