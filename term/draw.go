// SPDX-License-Identifier: MIT
// Package: blockgrid/term
//
// draw.go - copying built lines onto a tcell.Screen.
//
// Lines may be ragged when a short glyph ends early; every line starts at
// the same left column and is drawn as stitched. Cells falling outside the
// screen are clipped by tcell itself.

package term

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// advance is the number of columns r occupies; zero-width runes still
// consume one column so every cell of a line is visible.
func advance(r rune) int {
	return max(runewidth.RuneWidth(r), 1)
}

// Draw writes lines with their top-left corner at (x, y) and returns the
// width and height of the drawn area in columns and rows.
func Draw(s tcell.Screen, x, y int, lines [][]Cell) (w, h int) {
	for dy, line := range lines {
		col := x
		for _, c := range line {
			s.SetContent(col, y+dy, c.Rune, nil, c.Style)
			col += advance(c.Rune)
		}
		w = max(w, col-x)
	}

	return w, len(lines)
}

// Extent reports the area Draw would cover for lines.
func Extent(lines [][]Cell) (w, h int) {
	for _, line := range lines {
		lw := 0
		for _, c := range line {
			lw += advance(c.Rune)
		}
		w = max(w, lw)
	}

	return w, len(lines)
}

// Center returns the top-left corner that centers a w×h area on s.
// Areas larger than the screen are pinned to the origin.
func Center(s tcell.Screen, w, h int) (x, y int) {
	sw, sh := s.Size()
	return max((sw-w)/2, 0), max((sh-h)/2, 0)
}

// Frame draws a single-line border whose interior is the w×h area at (x, y).
func Frame(s tcell.Screen, x, y, w, h int, style tcell.Style) {
	left, right, top, bottom := x-1, x+w, y-1, y+h
	for col := x; col < right; col++ {
		s.SetContent(col, top, tcell.RuneHLine, nil, style)
		s.SetContent(col, bottom, tcell.RuneHLine, nil, style)
	}
	for row := y; row < bottom; row++ {
		s.SetContent(left, row, tcell.RuneVLine, nil, style)
		s.SetContent(right, row, tcell.RuneVLine, nil, style)
	}
	s.SetContent(left, top, tcell.RuneULCorner, nil, style)
	s.SetContent(right, top, tcell.RuneURCorner, nil, style)
	s.SetContent(left, bottom, tcell.RuneLLCorner, nil, style)
	s.SetContent(right, bottom, tcell.RuneLRCorner, nil, style)
}

// Text writes str starting at (x, y) and returns the column after it.
func Text(s tcell.Screen, x, y int, str string, style tcell.Style) int {
	for _, r := range str {
		s.SetContent(x, y, r, nil, style)
		x += advance(r)
	}

	return x
}

// Render joins rune lines with '\n', without a trailing newline.
func Render(lines [][]rune) string {
	var sb strings.Builder
	for i, line := range lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(line))
	}

	return sb.String()
}

// Width is the display width of line in terminal columns.
func Width(line []rune) int {
	return runewidth.StringWidth(string(line))
}
