// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// envPrefix prefixes every environment key read by Parse.
const envPrefix = "BLOCKGRID_"

// envFiles are the dotenv files LoadDotEnv looks for, highest priority first.
var envFiles = []string{".env.local", ".env"}

// ExitError is an error carrying the process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// usageError wraps err as exit status 2.
func usageError(err error) *ExitError {
	return &ExitError{Code: 2, Message: err.Error()}
}

// Program describes a demo program for usage output.
type Program struct {
	Name    string
	Summary string // one paragraph shown above the options
	Args    string // positional argument synopsis, may be empty
}

// LoadDotEnv loads the dotenv files present in dir into the process
// environment and returns the ones it read. Variables already set are
// never overridden, so the environment beats .env.local, which beats .env.
func LoadDotEnv(dir string) ([]string, error) {
	var loaded []string
	for _, name := range envFiles {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return loaded, fmt.Errorf("load %s: %w", path, err)
		}
		loaded = append(loaded, path)
	}

	return loaded, nil
}

// envKey maps a flag name to its environment key.
func envKey(flagName string) string {
	return envPrefix + strings.ToUpper(strings.ReplaceAll(flagName, "-", "_"))
}

// envString returns the environment default for a flag.
func envString(flagName, def string) string {
	if v, ok := os.LookupEnv(envKey(flagName)); ok && v != "" {
		return v
	}
	return def
}

// Parse processes command-line arguments for prog. It returns a validated
// Config, a boolean telling the caller to exit cleanly (help was shown), or
// an *ExitError.
func Parse(prog Program, args []string, output io.Writer) (*Config, bool, error) {
	slog.Debug("CLI parser started.", "program", prog.Name)
	flagSet := flag.NewFlagSet(prog.Name, flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprintf(output, "\n%s\n\nUsage:\n  %s [options] %s\n\nOptions:\n", prog.Summary, prog.Name, prog.Args)
		flagSet.PrintDefaults()
		fmt.Fprintf(output, "\nEvery option can also be set as %s<NAME> in the environment or a .env file.\n", envPrefix)
	}

	blockSizeDef := 1
	if v := envString("block-size", ""); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, false, usageError(fmt.Errorf("%s: %w", envKey("block-size"), err))
		}
		blockSizeDef = n
	}

	blockSizeFlag := flagSet.Int("block-size", blockSizeDef, "Size of one glyph block in terminal cells.")
	onFlag := flagSet.String("on-color", envString("on-color", "white"), "Color of filled blocks: a color name or #rrggbb.")
	offFlag := flagSet.String("off-color", envString("off-color", "black"), "Color of empty blocks: a color name or #rrggbb.")
	fontFlag := flagSet.String("font", envString("font", ""), "HCL font files or directories overlaid on the built-in digits, separated by '"+string(os.PathListSeparator)+"'.")
	logLevelFlag := flagSet.String("log-level", envString("log-level", "info"), "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	logFormatFlag := flagSet.String("log-format", envString("log-format", "text"), "Log output format. Options: 'text' or 'json'.")
	logFileFlag := flagSet.String("log-file", envString("log-file", ""), "Append logs to this file. Logs are discarded when empty.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, usageError(err)
	}
	slog.Debug("Arguments parsed successfully.")

	on, err := ParseColor(*onFlag)
	if err != nil {
		return nil, false, usageError(fmt.Errorf("on-color: %w", err))
	}
	off, err := ParseColor(*offFlag)
	if err != nil {
		return nil, false, usageError(fmt.Errorf("off-color: %w", err))
	}

	var fonts []string
	for _, p := range filepath.SplitList(*fontFlag) {
		if p != "" {
			fonts = append(fonts, p)
		}
	}

	config, err := NewConfig(Config{
		BlockSize: *blockSizeFlag,
		On:        on,
		Off:       off,
		Fonts:     fonts,
		LogLevel:  strings.ToLower(*logLevelFlag),
		LogFormat: strings.ToLower(*logFormatFlag),
		LogFile:   *logFileFlag,
		Args:      flagSet.Args(),
	})
	if err != nil {
		return nil, false, usageError(err)
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
