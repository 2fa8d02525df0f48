// SPDX-License-Identifier: MIT
// Package: blockgrid/grid
//
// errors.go - sentinel errors for the grid package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Builder methods wrap sentinels with method context via %w.
//   • Read accessors never return errors; absence is reported with ok=false.

package grid

import (
	"errors"
	"fmt"
)

// ErrZeroBlockSize indicates a block edge of less than one cell was requested.
var ErrZeroBlockSize = errors.New("grid: block size must be at least 1")

// ErrEmptyExtent indicates a block-grid extent below one block on either axis.
var ErrEmptyExtent = errors.New("grid: block extents must be at least 1 on both axes")

// ErrSectorOutOfRange indicates a sector whose block coordinate lies outside
// the configured block extents at rasterization time.
var ErrSectorOutOfRange = errors.New("grid: sector out of range")

// ErrGridTooLarge indicates a configuration whose cell width, height or
// area does not fit in an int.
var ErrGridTooLarge = errors.New("grid: grid dimensions overflow int")

// Method tags used as error context prefixes.
const (
	methodBlockSize = "BlockSize"
	methodBlocksX   = "BlocksX"
	methodBlocksY   = "BlocksY"
	methodBlocks    = "Blocks"
	methodBuild     = "Build"
)

// builderErrorf prefixes a sentinel with the method that produced it.
func builderErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
