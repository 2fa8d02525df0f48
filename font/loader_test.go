// SPDX-License-Identifier: MIT

package font_test

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/blockgrid/font"
	"github.com/katalvlaran/blockgrid/glyph"
	"github.com/katalvlaran/blockgrid/internal/ctxlog"
)

const sevenAndDash = `
glyph "7" {
  cells = [top_left, top_center, top_right, upper_right, middle_right, [2, 3], bottom_right]
}

glyph "-" {
  rows = [
    "...",
    "...",
    "###",
    "...",
    "...",
  ]
}

glyph "." {
  width  = 1
  height = digit_height
  cells  = [[0, 4]]
}
`

// draw renders a shape with ' '/'#' at block size 1.
func draw(t *testing.T, tbl glyph.Table, r rune) []string {
	t.Helper()
	s, ok := tbl.Lookup(r)
	require.True(t, ok, "glyph %q missing", r)
	return strings.Split(glyph.Builder(s, ' ', '#').MustBuild().String(), "\n")
}

func writeFile(t *testing.T, dir, name, src string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(src), 0o600))
	return p
}

// TestParse decodes anchors, explicit pairs, pictures and variables.
func TestParse(t *testing.T) {
	tbl, err := font.Parse(context.Background(), []byte(sevenAndDash), "seven.hcl")
	require.NoError(t, err)
	require.Equal(t, []rune("-.7"), tbl.Runes())

	require.Equal(t, []string{"###", "  #", "  #", "  #", "  #"}, draw(t, tbl, '7'))
	require.Equal(t, []string{"   ", "   ", "###", "   ", "   "}, draw(t, tbl, '-'))
	require.Equal(t, []string{" ", " ", " ", " ", "#"}, draw(t, tbl, '.'))
}

// TestParse_PictureWidth infers the box from the widest row.
func TestParse_PictureWidth(t *testing.T) {
	src := `glyph "T" {
  rows = ["#####", "  #", "  #"]
}`
	tbl, err := font.Parse(context.Background(), []byte(src), "t.hcl")
	require.NoError(t, err)
	s, _ := tbl.Lookup('T')
	require.Equal(t, 5, s.Width)
	require.Equal(t, 3, s.Height)
	require.Len(t, s.Cells, 7)
}

// TestParse_Errors covers every rejection path.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		err  error
	}{
		{"Syntax", `glyph "1" {`, font.ErrParse},
		{"UnknownAttribute", `glyph "1" { colour = 1 }`, font.ErrParse},
		{"UnknownVariable", `glyph "1" { cells = [nowhere] }`, font.ErrParse},
		{"LongLabel", `glyph "10" { }`, font.ErrInvalidGlyph},
		{"EmptyLabel", `glyph "" { }`, font.ErrInvalidGlyph},
		{"CellArity", `glyph "1" { cells = [[0, 1, 2]] }`, font.ErrInvalidGlyph},
		{"CellOutside", "glyph \"1\" {\n  width = 1\n  cells = [top_right]\n}", glyph.ErrBadShape},
		{"EmptyBox", `glyph "1" { width = 0 }`, font.ErrInvalidGlyph},
		{"HugeWidth", `glyph "1" { width = 100000000 }`, font.ErrInvalidGlyph},
		{"HugeHeight", `glyph "1" { height = 65 }`, font.ErrInvalidGlyph},
		{"Duplicate", "glyph \"1\" {}\nglyph \"1\" {}", font.ErrDuplicateGlyph},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := font.Parse(context.Background(), []byte(tc.src), tc.name+".hcl")
			require.ErrorIs(t, err, tc.err)
			require.Contains(t, err.Error(), tc.name+".hcl")
		})
	}
}

// TestParse_LargestBox accepts a box at the size limit.
func TestParse_LargestBox(t *testing.T) {
	src := fmt.Sprintf("glyph \"W\" {\n  width  = %d\n  height = %d\n  cells  = [[%d, %d]]\n}",
		font.MaxGlyphBlocks, font.MaxGlyphBlocks, font.MaxGlyphBlocks-1, font.MaxGlyphBlocks-1)
	tbl, err := font.Parse(context.Background(), []byte(src), "w.hcl")
	require.NoError(t, err)
	s, _ := tbl.Lookup('W')
	require.Equal(t, font.MaxGlyphBlocks, s.Width)
	require.Equal(t, font.MaxGlyphBlocks, s.Height)
}

// TestLoad_Directory merges files in lexical order.
func TestLoad_Directory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.hcl", `glyph "x" { rows = ["#"] }`)
	writeFile(t, dir, "a.hcl", `glyph "x" { rows = ["##"] }
glyph "y" { rows = ["#"] }`)
	writeFile(t, dir, "notes.txt", `not a font`)

	tbl, err := font.Load(context.Background(), dir)
	require.NoError(t, err)
	require.Equal(t, 2, tbl.Len())
	s, _ := tbl.Lookup('x')
	require.Equal(t, 1, s.Width, "b.hcl is read after a.hcl")

	// An explicit file after the directory overrides it again.
	extra := writeFile(t, t.TempDir(), "wide.hcl", `glyph "x" { rows = ["###"] }`)
	tbl, err = font.Load(context.Background(), dir, extra)
	require.NoError(t, err)
	s, _ = tbl.Lookup('x')
	require.Equal(t, 3, s.Width)
}

// TestLoad_Errors reports missing paths and broken files.
func TestLoad_Errors(t *testing.T) {
	_, err := font.Load(context.Background(), filepath.Join(t.TempDir(), "missing.hcl"))
	require.ErrorIs(t, err, os.ErrNotExist)

	bad := writeFile(t, t.TempDir(), "bad.hcl", `glyph {`)
	_, err = font.Load(context.Background(), bad)
	require.ErrorIs(t, err, font.ErrParse)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	ok := writeFile(t, t.TempDir(), "ok.hcl", `glyph "x" { rows = ["#"] }`)
	_, err = font.Load(ctx, ok)
	require.ErrorIs(t, err, context.Canceled)
}

// TestOverlay keeps the built-in glyphs and replaces the declared ones.
func TestOverlay(t *testing.T) {
	p := writeFile(t, t.TempDir(), "font.hcl", sevenAndDash)

	tbl, err := font.Overlay(context.Background(), p)
	require.NoError(t, err)
	require.Equal(t, glyph.Default.Len()+2, tbl.Len())
	require.Equal(t, []string{"###", "  #", "  #", "  #", "  #"}, draw(t, tbl, '7'))

	lines, err := glyph.NewLine(1, ' ', '#', glyph.WithTable(tbl)).Text("1-1").Build()
	require.NoError(t, err)
	require.Equal(t, "  ####  #", string(lines[2]))
}

// TestParse_Logging emits one debug record per glyph with its stroke count.
func TestParse_Logging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := ctxlog.WithLogger(context.Background(), logger)

	src := `glyph ":" { cells = [upper_center, lower_center] }`
	_, err := font.Parse(ctx, []byte(src), "sep.hcl")
	require.NoError(t, err)
	require.Contains(t, buf.String(), "strokes=2")
	require.Contains(t, buf.String(), "glyphs=1")
}

// ExampleParse declares a minus sign and renders it.
func ExampleParse() {
	tbl, err := font.Parse(context.Background(), []byte(`
glyph "-" {
  cells = [middle_left, middle_center, middle_right]
}`), "minus.hcl")
	if err != nil {
		panic(err)
	}
	s, _ := tbl.Lookup('-')
	fmt.Println(glyph.Builder(s, '.', '#').MustBuild())

	// Output:
	// ...
	// ...
	// ###
	// ...
	// ...
}
