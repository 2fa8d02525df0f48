// SPDX-License-Identifier: MIT

package font

import "errors"

var (
	// ErrParse indicates HCL diagnostics while reading a font file.
	ErrParse = errors.New("font: parse error")
	// ErrInvalidGlyph indicates a glyph block that does not describe a valid shape.
	ErrInvalidGlyph = errors.New("font: invalid glyph")
	// ErrDuplicateGlyph indicates a rune declared more than once in a file.
	ErrDuplicateGlyph = errors.New("font: duplicate glyph")
)
