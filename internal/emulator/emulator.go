// Package emulator wires the execution engine to a front-end and drives it.
package emulator

import (
	"context"
	"fmt"

	"github.com/retroenv/chip8emu/internal/chip8"
	"github.com/retroenv/chip8emu/internal/gui"
	"github.com/retroenv/chip8emu/internal/loader"
	"github.com/retroenv/chip8emu/internal/options"
	"github.com/retroenv/chip8emu/internal/terminal"
	"github.com/retroenv/retrogolib/log"
)

// Run loads the ROM, builds a machine configured with the selected quirks
// and hands it to a front-end until the context is cancelled, the front-end
// quits or a fatal execution error surfaces.
func Run(ctx context.Context, logger *log.Logger, opts options.Program) error {
	rom, err := loader.New().Load(opts.Input)
	if err != nil {
		return fmt.Errorf("loading ROM: %w", err)
	}

	machine, err := newMachine(logger, opts)
	if err != nil {
		return err
	}
	if err := machine.LoadROM(rom); err != nil {
		return fmt.Errorf("loading ROM into memory: %w", err)
	}

	logger.Info("Running ROM",
		log.String("file", opts.Input),
		log.Int("bytes", len(rom)))

	if opts.Terminal {
		err = terminal.Run(ctx, machine)
	} else {
		err = gui.Run(ctx, machine, opts.Scale)
	}
	if err != nil {
		logger.Debug("dumping machine state", log.Stringer("machine", machine))
	}
	return err
}

// newMachine builds an engine with the quirk configuration from the options.
func newMachine(logger *log.Logger, opts options.Program) (*chip8.Chip8, error) {
	machine, err := chip8.New(logger)
	if err != nil {
		return nil, fmt.Errorf("creating machine: %w", err)
	}

	machine.WithLegacyShift(opts.LegacyShift).
		WithJumpAddOffset(opts.JumpAddOffset).
		WithMemoryIncrementIndex(opts.MemoryIncrementIndex).
		WithInstructionsPerFrame(opts.InstructionsPerFrame)
	return machine, nil
}
