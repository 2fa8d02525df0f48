// SPDX-License-Identifier: MIT

// Package glyph turns declarative block shapes (digits 0–9, the ':'
// separator and a blank spacer) into grid builders, and composes them into
// lines of large symbols.
//
// What:
//
//   - Shape is a data-only descriptor: a bounding box in blocks and the set
//     of occupied block coordinates.
//   - Table maps runes to shapes. Default holds the built-in 3×5 digit set;
//     tables are immutable once constructed and safe to share.
//   - Builder turns any Shape into a *grid.Builder[V] for a chosen default
//     ("off") and occupied ("on") value of any type.
//   - Line collects glyphs, applies one block size to all of them and
//     stitches the built grids into display lines.
//
// Numbers:
//
//	Line.Number(207) renders "2", space, "0", space, "7": one spacer glyph
//	between consecutive digits, none leading or trailing.
//
// Errors:
//
//   - ErrUnknownGlyph: rune not present in the table.
//   - ErrBadShape:     shape box is empty or a cell lies outside it.
//   - ErrDigitRange:   digit outside 0..9.
//
// Errors recorded by Line are sticky and returned by Line.Build, mirroring
// grid.Builder.
package glyph
