// SPDX-License-Identifier: MIT

package glyph

import "errors"

var (
	// ErrUnknownGlyph indicates a rune with no shape in the active table.
	ErrUnknownGlyph = errors.New("glyph: unknown glyph")
	// ErrBadShape indicates a shape with a non-positive box or a cell outside it.
	ErrBadShape = errors.New("glyph: invalid shape")
	// ErrDigitRange indicates a digit outside 0..9.
	ErrDigitRange = errors.New("glyph: digit out of range")
	// ErrNilBuilder indicates a nil builder passed to Append.
	ErrNilBuilder = errors.New("glyph: nil builder")
)

const (
	methodNewTable = "NewTable"
	methodDigit    = "Digit"
	methodGlyph    = "Glyph"
	methodNewLine  = "NewLine"
	methodAppend   = "Append"
)
