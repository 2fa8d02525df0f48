// SPDX-License-Identifier: MIT
// Package: blockgrid/font
//
// loader.go - HCL font files to glyph tables.
//
// File format:
//
//	glyph "7" {
//	  width  = 3                      # optional, default 3
//	  height = 5                      # optional, default 5
//	  cells  = [top_left, top_center, top_right, [2, 1]]
//	}
//
//	glyph "-" {
//	  rows = [
//	    "   ",
//	    "   ",
//	    "###",
//	  ]
//	}
//
// The label is the rune the glyph is registered under. Cells are [x, y]
// block coordinates; the anchor names of the built-in 3×5 box (top_left …
// bottom_right) are predeclared variables. rows draws a picture: every
// character other than ' ' and '.' is an occupied block, and an omitted
// width/height is taken from the picture. cells are applied before rows.

package font

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"unicode/utf8"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/katalvlaran/blockgrid/glyph"
	"github.com/katalvlaran/blockgrid/grid"
	"github.com/katalvlaran/blockgrid/internal/ctxlog"
)

// fileExt is the extension picked up when a directory is loaded.
const fileExt = ".hcl"

// MaxGlyphBlocks bounds each side of a glyph box declared in a font file.
const MaxGlyphBlocks = 64

// fileRoot decodes every top-level block of a font file.
type fileRoot struct {
	Glyphs []*glyphBlock `hcl:"glyph,block"`
}

// glyphBlock is one `glyph "<rune>" { ... }` block.
type glyphBlock struct {
	Label  string   `hcl:"name,label"`
	Width  *int     `hcl:"width,optional"`
	Height *int     `hcl:"height,optional"`
	Cells  [][]int  `hcl:"cells,optional"`
	Rows   []string `hcl:"rows,optional"`
}

// evalContext exposes the named anchors as [x, y] tuples.
func evalContext() *hcl.EvalContext {
	vars := make(map[string]cty.Value)
	for name, p := range glyph.Anchors() {
		vars[name] = cty.TupleVal([]cty.Value{
			cty.NumberIntVal(int64(p.X)),
			cty.NumberIntVal(int64(p.Y)),
		})
	}
	vars["digit_width"] = cty.NumberIntVal(glyph.DigitWidth)
	vars["digit_height"] = cty.NumberIntVal(glyph.DigitHeight)

	return &hcl.EvalContext{Variables: vars}
}

// Parse decodes one font file held in src. filename is used in diagnostics.
func Parse(ctx context.Context, src []byte, filename string) (glyph.Table, error) {
	logger := ctxlog.FromContext(ctx)

	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return glyph.Table{}, fmt.Errorf("%s: %w: %w", filename, ErrParse, diags)
	}

	var root fileRoot
	if diags = gohcl.DecodeBody(file.Body, evalContext(), &root); diags.HasErrors() {
		return glyph.Table{}, fmt.Errorf("%s: %w: %w", filename, ErrParse, diags)
	}

	shapes := make(map[rune]glyph.Shape, len(root.Glyphs))
	for _, blk := range root.Glyphs {
		r, shape, err := translate(blk)
		if err != nil {
			return glyph.Table{}, fmt.Errorf("%s: %w", filename, err)
		}
		if _, dup := shapes[r]; dup {
			return glyph.Table{}, fmt.Errorf("%s: glyph %q: %w", filename, r, ErrDuplicateGlyph)
		}
		shapes[r] = shape
		logger.Debug("Glyph decoded.", "file", filename, "glyph", string(r),
			"width", shape.Width, "height", shape.Height, "strokes", strokes(shape))
	}

	table, err := glyph.NewTable(shapes)
	if err != nil {
		return glyph.Table{}, fmt.Errorf("%s: %w: %w", filename, ErrInvalidGlyph, err)
	}
	logger.Debug("Font file parsed.", "file", filename, "glyphs", table.Len())

	return table, nil
}

// Load reads font files and merges them in order, later files overriding
// earlier ones glyph by glyph. A directory contributes its *.hcl files in
// lexical order. The result is not merged with glyph.Default; callers
// decide (see Overlay).
func Load(ctx context.Context, paths ...string) (glyph.Table, error) {
	logger := ctxlog.FromContext(ctx)

	files, err := findFontFiles(paths)
	if err != nil {
		return glyph.Table{}, err
	}
	logger.Debug("Discovered font files.", "count", len(files))

	var table glyph.Table
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return glyph.Table{}, err
		}
		src, err := os.ReadFile(f)
		if err != nil {
			return glyph.Table{}, fmt.Errorf("read font file: %w", err)
		}
		t, err := Parse(ctx, src, f)
		if err != nil {
			return glyph.Table{}, err
		}
		table = table.Merge(t)
	}
	logger.Debug("Font loading complete.", "files", len(files), "glyphs", table.Len())

	return table, nil
}

// Overlay loads paths and lays the result over glyph.Default, so a font
// file only needs to declare the glyphs it changes or adds.
func Overlay(ctx context.Context, paths ...string) (glyph.Table, error) {
	t, err := Load(ctx, paths...)
	if err != nil {
		return glyph.Table{}, err
	}

	return glyph.Default.Merge(t), nil
}

// translate turns a decoded block into a rune and a shape.
func translate(blk *glyphBlock) (rune, glyph.Shape, error) {
	r, size := utf8.DecodeRuneInString(blk.Label)
	if r == utf8.RuneError || size != len(blk.Label) {
		return 0, glyph.Shape{}, fmt.Errorf("label %q must be exactly one character: %w", blk.Label, ErrInvalidGlyph)
	}

	shape := glyph.Shape{Width: glyph.DigitWidth, Height: glyph.DigitHeight}
	if len(blk.Rows) > 0 {
		shape.Height = len(blk.Rows)
		shape.Width = 0
		for _, row := range blk.Rows {
			shape.Width = max(shape.Width, utf8.RuneCountInString(row))
		}
	}
	if blk.Width != nil {
		shape.Width = *blk.Width
	}
	if blk.Height != nil {
		shape.Height = *blk.Height
	}

	if shape.Width > MaxGlyphBlocks || shape.Height > MaxGlyphBlocks {
		return 0, glyph.Shape{}, fmt.Errorf("glyph %q: box %d×%d exceeds %d×%d blocks: %w",
			r, shape.Width, shape.Height, MaxGlyphBlocks, MaxGlyphBlocks, ErrInvalidGlyph)
	}

	for i, c := range blk.Cells {
		if len(c) != 2 {
			return 0, glyph.Shape{}, fmt.Errorf("glyph %q: cell %d has %d coordinates, want 2: %w", r, i, len(c), ErrInvalidGlyph)
		}
		shape.Cells = append(shape.Cells, grid.Pt(c[0], c[1]))
	}
	for y, row := range blk.Rows {
		x := 0
		for _, ch := range row {
			if ch != ' ' && ch != '.' {
				shape.Cells = append(shape.Cells, grid.Pt(x, y))
			}
			x++
		}
	}

	if err := shape.Validate(); err != nil {
		return 0, glyph.Shape{}, fmt.Errorf("glyph %q: %w: %w", r, ErrInvalidGlyph, err)
	}

	return r, shape, nil
}

// strokes counts the connected strokes of a shape, for diagnostics.
func strokes(s glyph.Shape) int {
	g := glyph.Builder(s, false, true).MustBuild()
	return len(g.Regions(func(on bool) bool { return on }))
}

// findFontFiles expands directories to their *.hcl files. Missing paths
// are errors: a font the user asked for must exist.
func findFontFiles(paths []string) ([]string, error) {
	var files []string
	seen := make(map[string]struct{})
	add := func(p string) {
		if _, ok := seen[p]; !ok {
			seen[p] = struct{}{}
			files = append(files, p)
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("font path %s: %w", path, err)
		}
		if !info.IsDir() {
			add(path)
			continue
		}
		matches, err := filepath.Glob(filepath.Join(path, "*"+fileExt))
		if err != nil {
			return nil, err
		}
		slices.Sort(matches)
		for _, m := range matches {
			add(m)
		}
	}

	return files, nil
}
