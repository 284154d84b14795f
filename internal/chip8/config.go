package chip8

// DefaultInstructionsPerFrame is the number of instructions executed per
// 60Hz frame, roughly 700 instructions per second. A rate most ROMs of the
// era were written against.
const DefaultInstructionsPerFrame = 11

// Config contains the quirk toggles that reproduce divergent historical
// interpreter behaviors. The set is immutable once the engine executes its
// first instruction.
type Config struct {
	// LegacyShift makes the shift instructions read from the secondary
	// operand register instead of the target register, matching the
	// original COSMAC VIP interpreter.
	LegacyShift bool

	// JumpAddOffset makes the indexed jump add the register selected by the
	// opcode's own high nibble instead of V0, matching CHIP-48/SUPER-CHIP.
	JumpAddOffset bool

	// MemoryIncrementIndex makes the block load/store instructions advance
	// the index register by one per byte transferred, matching the
	// original COSMAC VIP interpreter.
	MemoryIncrementIndex bool

	// InstructionsPerFrame is the number of instructions executed per
	// RunFrame call.
	InstructionsPerFrame int
}

// DefaultConfig returns the modern interpreter behavior at the default
// execution rate.
func DefaultConfig() Config {
	return Config{
		InstructionsPerFrame: DefaultInstructionsPerFrame,
	}
}
