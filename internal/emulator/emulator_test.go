package emulator

import (
	"context"
	"testing"

	"github.com/retroenv/chip8emu/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestNewMachine(t *testing.T) {
	opts := options.Program{
		LegacyShift:          true,
		InstructionsPerFrame: 20,
	}

	machine, err := newMachine(log.NewTestLogger(t), opts)
	assert.NoError(t, err)
	assert.NotNil(t, machine)
}

func TestRunMissingROM(t *testing.T) {
	opts := options.Program{
		Input:                "does-not-exist.ch8",
		InstructionsPerFrame: 11,
	}

	err := Run(context.Background(), log.NewTestLogger(t), opts)
	assert.Error(t, err)
}
