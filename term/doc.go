// SPDX-License-Identifier: MIT

// Package term puts glyph lines on a character-cell terminal.
//
// A terminal cell is addressed by column and row and carries one rune plus
// a style. Block glyphs are drawn with blank cells whose background color
// marks a block as on or off, so the picture needs no special characters
// and survives any font. NewLine returns a glyph.Line over Cell values with
// the colors already applied; Draw copies the built lines onto a
// tcell.Screen, and Frame draws the single-line border the demo programs
// put around them.
//
// For non-interactive output, Render joins rune lines into a string and
// Width measures a line in terminal columns, so lines holding wide runes
// (CJK, emoji) can be aligned.
package term
