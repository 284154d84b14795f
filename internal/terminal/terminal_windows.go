//go:build windows

// Package terminal implements a raw-mode text front-end of the emulator.
package terminal

import (
	"context"
	"errors"

	"github.com/retroenv/chip8emu/internal/chip8"
)

// Run is not available on Windows, the raw stdin handling is POSIX only.
// Use the windowed front-end instead.
func Run(_ context.Context, _ *chip8.Chip8) error {
	return errors.New("the terminal front-end is not supported on windows")
}
