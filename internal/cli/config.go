// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Config is the validated configuration of a demo program.
type Config struct {
	BlockSize int
	On, Off   tcell.Color
	Fonts     []string // HCL font files or directories, overlaid in order

	LogLevel  string
	LogFormat string
	LogFile   string // empty discards log output; the terminal is in use

	Args []string // positional arguments left after the flags
}

var (
	// ErrBlockSize indicates a block size below one cell.
	ErrBlockSize = errors.New("block-size must be at least 1")
	// ErrLogLevel indicates an unknown log level.
	ErrLogLevel = errors.New("log-level must be 'debug', 'info', 'warn', or 'error'")
	// ErrLogFormat indicates an unknown log format.
	ErrLogFormat = errors.New("log-format must be 'text' or 'json'")
)

// NewConfig validates cfg and returns a copy.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.BlockSize < 1 {
		return nil, fmt.Errorf("got %d: %w", cfg.BlockSize, ErrBlockSize)
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("got %q: %w", cfg.LogLevel, ErrLogLevel)
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("got %q: %w", cfg.LogFormat, ErrLogFormat)
	}

	return &cfg, nil
}
