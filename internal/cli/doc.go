// SPDX-License-Identifier: MIT

// Package cli holds the command-line plumbing shared by the demo programs:
// flag parsing with environment and .env defaults, color names, and logger
// construction.
//
// Precedence, highest first: command-line flags, process environment,
// .env.local, .env, built-in defaults. Environment keys are the flag names
// upper-cased with a BLOCKGRID_ prefix (block-size → BLOCKGRID_BLOCK_SIZE).
package cli
