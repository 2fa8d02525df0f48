// SPDX-License-Identifier: MIT

package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/blockgrid/glyph"
)

// Cell is one terminal character cell.
type Cell struct {
	Rune  rune
	Style tcell.Style
}

// Block returns a blank cell painted with background color c.
func Block(c tcell.Color) Cell {
	return Cell{Rune: ' ', Style: tcell.StyleDefault.Background(c)}
}

// Aligned is glyph.Default with a spacer as tall as a digit. The default
// 1×3 spacer leaves the bottom rows of a number without a gap, which shifts
// the following digits left on screen.
var Aligned = glyph.Default.Merge(mustSpacer())

func mustSpacer() glyph.Table {
	t, err := glyph.NewTable(map[rune]glyph.Shape{
		glyph.SpaceRune: {Width: glyph.SpaceWidth, Height: glyph.DigitHeight},
	})
	if err != nil {
		panic(err)
	}
	return t
}

// NewLine starts a glyph line over Aligned whose off blocks are painted off
// and on blocks painted on. A glyph.WithTable option replaces the table.
func NewLine(blockSize int, off, on tcell.Color, opts ...glyph.LineOption) *glyph.Line[Cell] {
	opts = append([]glyph.LineOption{glyph.WithTable(Aligned)}, opts...)
	return glyph.NewLine(blockSize, Block(off), Block(on), opts...)
}
