// Package blockgrid builds large pictures out of square blocks: digits,
// separators and any glyph you can draw on a small block grid, scaled to
// any size and laid out side by side.
//
// 🚀 What is blockgrid?
//
//	A small, generic, dependency-light toolkit that brings together:
//		• grid/  – Builder[V] and immutable Grid[V]: block-space overrides,
//		           row stitching across many grids, region analysis
//		• glyph/ – the built-in 3×5 digit table, separator and spacer,
//		           Line composer and Number entry point
//		• font/  – extra or replacement glyphs declared in HCL files
//		• term/  – tcell glue: colored cells, drawing, frames, plain text
//
// ✨ Why choose blockgrid?
//
//   - Generic cells – render runes for a log line, tcell cells for a
//     dashboard, or bools for a LED matrix from the same shapes
//   - Declarative – a glyph is a handful of block coordinates
//   - Immutable results – built grids are safe to share between goroutines
//
// Quick example (block size 1, '#' on ' '):
//
//	glyph.NewLine(1, ' ', '#').Number(42).Build()
//
//	# # ###
//	# #   #
//	### ###
//	  ##
//	  ####
//
// The spacer between digits is three blocks tall, so the last two rows close
// up; term.Aligned swaps in a full-height spacer for on-screen use.
//
// The demo programs live under cmd/: blocknumbers shows a fixed line,
// blockcounter a key-driven counter.
//
//	go install github.com/katalvlaran/blockgrid/cmd/blockcounter@latest
package blockgrid
