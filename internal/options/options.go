// Package options contains the program options.
package options

// DefaultScale is the default window scale factor of the GUI front-end.
const DefaultScale = 10

// Program options of the emulator.
type Program struct {
	Input string // ROM file to run

	Terminal bool // render into the terminal instead of a window
	Scale    int  // window scale factor

	// interpreter quirk toggles, see the chip8 package
	LegacyShift          bool
	JumpAddOffset        bool
	MemoryIncrementIndex bool
	InstructionsPerFrame int

	Debug bool
	Quiet bool
}
