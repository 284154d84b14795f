package cli

import (
	"errors"
	"os"
	"testing"

	"github.com/retroenv/chip8emu/internal/chip8"
	"github.com/retroenv/chip8emu/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want options.Program
	}{
		{
			name: "default flags",
			args: []string{"prog", "game.ch8"},
			want: options.Program{
				Input:                "game.ch8",
				Scale:                options.DefaultScale,
				InstructionsPerFrame: chip8.DefaultInstructionsPerFrame,
			},
		},
		{
			name: "quirk flags",
			args: []string{"prog", "-legacy-shift", "-jump-offset", "-increment-index", "game.ch8"},
			want: options.Program{
				Input:                "game.ch8",
				Scale:                options.DefaultScale,
				InstructionsPerFrame: chip8.DefaultInstructionsPerFrame,
				LegacyShift:          true,
				JumpAddOffset:        true,
				MemoryIncrementIndex: true,
			},
		},
		{
			name: "terminal front-end with custom rate",
			args: []string{"prog", "-t", "-ipf", "20", "game.ch8"},
			want: options.Program{
				Input:                "game.ch8",
				Scale:                options.DefaultScale,
				InstructionsPerFrame: 20,
				Terminal:             true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldArgs := os.Args
			t.Cleanup(func() { os.Args = oldArgs })

			os.Args = tt.args

			got, err := ParseFlags()
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFlagsErrors(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		usage bool
	}{
		{name: "missing rom file", args: []string{"prog"}, usage: true},
		{name: "flag after rom file", args: []string{"prog", "game.ch8", "-t"}, usage: true},
		{name: "invalid instruction rate", args: []string{"prog", "-ipf", "0", "game.ch8"}},
		{name: "invalid scale", args: []string{"prog", "-scale", "0", "game.ch8"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldArgs := os.Args
			t.Cleanup(func() { os.Args = oldArgs })

			os.Args = tt.args

			_, err := ParseFlags()
			assert.Error(t, err)

			var usageErr *UsageError
			assert.Equal(t, tt.usage, errors.As(err, &usageErr))
		})
	}
}
