// SPDX-License-Identifier: MIT

// Command blockcounter shows a counter in large block digits. Press a, +
// or space to increment, r to reset, q or Esc to quit.
//
// Usage:
//
//	blockcounter [options] [START]
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/blockgrid/internal/app"
	"github.com/katalvlaran/blockgrid/internal/cli"
	"github.com/katalvlaran/blockgrid/internal/ctxlog"
)

var program = cli.Program{
	Name:    "blockcounter",
	Summary: "blockcounter - a key-driven counter in block digits.",
	Args:    "[START]",
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

// startValue parses the optional START argument.
func startValue(args []string) (uint64, error) {
	switch len(args) {
	case 0:
		return 0, nil
	case 1:
		n, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return 0, &cli.ExitError{Code: 2, Message: fmt.Sprintf("invalid START %q: must be a non-negative integer", args[0])}
		}
		return n, nil
	default:
		return 0, &cli.ExitError{Code: 2, Message: "at most one START argument is accepted"}
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
	start, err := startValue(cfg.Args)
	if err != nil {
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

	counter := &app.Counter{Value: start}
	err = a.Run(ctx, counter)
	logger.Info("Counter stopped.", "value", counter.Value)

	return err
}
