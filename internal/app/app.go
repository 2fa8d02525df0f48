// SPDX-License-Identifier: MIT

// Package app runs a full-screen view of block glyphs: it resolves the
// glyph table, owns the tcell event loop and redraws the active View.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/blockgrid/font"
	"github.com/katalvlaran/blockgrid/glyph"
	"github.com/katalvlaran/blockgrid/internal/cli"
	"github.com/katalvlaran/blockgrid/internal/ctxlog"
	"github.com/katalvlaran/blockgrid/term"
)

// View is what an App shows. Draw paints the whole screen after it has been
// cleared; HandleKey reacts to a key other than the quit keys and reports
// whether a redraw is needed.
type View interface {
	Draw(a *App, s tcell.Screen) error
	HandleKey(ev *tcell.EventKey) bool
}

// App encapsulates the configuration, glyph table and screen of a demo run.
type App struct {
	cfg    *cli.Config
	table  glyph.Table
	screen tcell.Screen
	logger *slog.Logger
}

// New resolves the glyph table (term.Aligned overlaid with cfg.Fonts) for
// an already initialized screen.
func New(ctx context.Context, cfg *cli.Config, screen tcell.Screen) (*App, error) {
	logger := ctxlog.FromContext(ctx)

	table := term.Aligned
	if len(cfg.Fonts) > 0 {
		loaded, err := font.Load(ctx, cfg.Fonts...)
		if err != nil {
			return nil, fmt.Errorf("failed to load fonts: %w", err)
		}
		table = table.Merge(loaded)
		logger.Debug("Fonts overlaid.", "paths", cfg.Fonts, "glyphs", table.Len())
	}

	return &App{cfg: cfg, table: table, screen: screen, logger: logger}, nil
}

// Line starts a glyph line in the configured block size, colors and table.
func (a *App) Line() *glyph.Line[term.Cell] {
	return term.NewLine(a.cfg.BlockSize, a.cfg.Off, a.cfg.On, glyph.WithTable(a.table))
}

// isQuit reports the keys that end every view: q, Esc and Ctrl-C.
func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

// redraw clears the screen, lets v paint it and shows the result.
func (a *App) redraw(v View) error {
	a.screen.Clear()
	if err := v.Draw(a, a.screen); err != nil {
		return err
	}
	a.screen.Show()

	return nil
}

// Run draws v and processes events until a quit key, ctx cancellation or a
// draw error. A quit key ends the run without error.
func (a *App) Run(ctx context.Context, v View) error {
	stop := context.AfterFunc(ctx, func() {
		_ = a.screen.PostEvent(tcell.NewEventInterrupt(nil))
	})
	defer stop()

	if err := a.redraw(v); err != nil {
		return err
	}
	a.logger.Debug("View started.", "view", fmt.Sprintf("%T", v))

	for {
		switch ev := a.screen.PollEvent().(type) {
		case nil:
			// Screen finalized underneath us.
			return nil
		case *tcell.EventInterrupt:
			if err := ctx.Err(); err != nil {
				return err
			}
		case *tcell.EventResize:
			a.screen.Sync()
			if err := a.redraw(v); err != nil {
				return err
			}
		case *tcell.EventKey:
			if isQuit(ev) {
				a.logger.Debug("Quit requested.", "key", ev.Name())
				return nil
			}
			if v.HandleKey(ev) {
				if err := a.redraw(v); err != nil {
					return err
				}
			}
		}
	}
}
