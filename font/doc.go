// SPDX-License-Identifier: MIT

// Package font loads glyph tables from HCL files.
//
// A font file is a list of `glyph "<rune>" { ... }` blocks. Each block gives
// the glyph box in blocks (width, height) and the occupied block cells,
// either as [x, y] pairs (cells) or as a picture (rows). The fifteen anchor
// names of the built-in 3×5 digit box, such as top_left or middle_center,
// are available as variables, together with digit_width and digit_height.
//
// Load returns exactly the glyphs found in the given files; Overlay lays
// them over glyph.Default so a file can override one digit or add a letter
// without redeclaring the rest.
//
// Errors:
//   - ErrParse          - HCL syntax or decode diagnostics.
//   - ErrInvalidGlyph   - bad label, malformed cell, or a shape that fails
//     glyph.Shape.Validate (wraps glyph.ErrBadShape in that case).
//   - ErrDuplicateGlyph - the same rune declared twice in one file.
package font
