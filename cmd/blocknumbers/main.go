// SPDX-License-Identifier: MIT

// Command blocknumbers shows the fixed line "1 0:2 0 7" in large block
// digits, framed and centered on the terminal, until q, Esc or Ctrl-C.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/blockgrid/internal/app"
	"github.com/katalvlaran/blockgrid/internal/cli"
	"github.com/katalvlaran/blockgrid/internal/ctxlog"
)

// sequence is the text on display: digits, spacers and one separator.
const sequence = "1 0:2 0 7"

var program = cli.Program{
	Name:    "blocknumbers",
	Summary: "blocknumbers - shows a fixed line of block digits. Press q or Esc to quit.",
}

func main() {
	if err := run(context.Background(), os.Stdout, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run holds the program logic so errors surface in one place.
func run(ctx context.Context, outW io.Writer, args []string) error {
	if _, err := cli.LoadDotEnv("."); err != nil {
		return err
	}
	cfg, shouldExit, err := cli.Parse(program, args, outW)
	if err != nil || shouldExit {
		return err
	}

	logW, err := cli.OpenLog(cfg)
	if err != nil {
		return err
	}
	defer logW.Close()
	logger := cli.NewLogger(cfg.LogLevel, cfg.LogFormat, logW)
	slog.SetDefault(logger)
	ctx = ctxlog.WithLogger(ctx, logger)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	defer screen.Fini()

	a, err := app.New(ctx, cfg, screen)
	if err != nil {
		return err
	}
	logger.Info("Showing sequence.", "text", sequence, "block_size", cfg.BlockSize)

	return a.Run(ctx, &app.Sequence{Text: sequence})
}
