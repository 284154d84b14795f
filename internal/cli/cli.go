// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/retroenv/chip8emu/internal/chip8"
	"github.com/retroenv/chip8emu/internal/options"
)

// ParseFlags parses command line flags and returns the program options.
func ParseFlags() (options.Program, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || len(args) == 0 {
		return opts, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, err
	}
	opts.Input = args[0]

	if err := normalizeOptions(&opts); err != nil {
		return opts, err
	}

	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: chip8emu [options] <rom file to run>\n\n")
	e.flags.PrintDefaults()
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after the ROM file, please pass the ROM file as last argument", arg),
			}
		}
	}
	return nil
}

// normalizeOptions validates option values
func normalizeOptions(opts *options.Program) error {
	if opts.InstructionsPerFrame <= 0 {
		return fmt.Errorf("instructions per frame must be positive, got %d", opts.InstructionsPerFrame)
	}
	if opts.Scale < 1 {
		return fmt.Errorf("window scale must be at least 1, got %d", opts.Scale)
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.BoolVar(&opts.Terminal, "t", false, "render into the terminal instead of opening a window")
	flags.IntVar(&opts.Scale, "scale", options.DefaultScale, "window scale factor")
	flags.BoolVar(&opts.LegacyShift, "legacy-shift", false, "shift instructions read the source register (COSMAC VIP behavior)")
	flags.BoolVar(&opts.JumpAddOffset, "jump-offset", false, "indexed jump adds the register selected by the opcode (CHIP-48 behavior)")
	flags.BoolVar(&opts.MemoryIncrementIndex, "increment-index", false, "block load/store instructions advance the index register (COSMAC VIP behavior)")
	flags.IntVar(&opts.InstructionsPerFrame, "ipf", chip8.DefaultInstructionsPerFrame, "instructions to execute per 60Hz frame")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}
