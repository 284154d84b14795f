// Package loader handles ROM file loading operations.
package loader

import (
	"fmt"
	"os"

	"github.com/retroenv/chip8emu/internal/chip8"
	"github.com/retroenv/chip8emu/internal/memory"
)

// MaxROMSize is the largest program that fits into the memory window
// between the program start address and the end of memory.
const MaxROMSize = memory.Size - chip8.ROMAddress

// Loader handles loading ROM files from disk. CHIP-8 ROM files are raw
// program bytes without any header, commonly named .ch8 or .rom.
type Loader struct{}

// New creates a new ROM loader.
func New() *Loader {
	return &Loader{}
}

// Load reads a ROM file and validates that it fits into program memory.
func (l *Loader) Load(path string) ([]byte, error) {
	rom, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}

	if len(rom) == 0 {
		return nil, fmt.Errorf("file %s contains no program data", path)
	}
	if len(rom) > MaxROMSize {
		return nil, fmt.Errorf("file %s exceeds the %d byte program memory by %d bytes",
			path, MaxROMSize, len(rom)-MaxROMSize)
	}

	return rom, nil
}
