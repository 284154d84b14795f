package chip8

import "errors"

// Fatal execution errors. CHIP-8 defines no recovery semantics for illegal
// instructions, execution halts and the host decides whether to reset,
// reload or terminate.
var (
	// ErrUnknownOpcode indicates an instruction word that matches no defined
	// opcode class and operand combination.
	ErrUnknownOpcode = errors.New("unknown opcode")

	// ErrStackOverflow indicates a subroutine call with a full call stack.
	ErrStackOverflow = errors.New("call stack overflow")

	// ErrStackUnderflow indicates a subroutine return with an empty call stack.
	ErrStackUnderflow = errors.New("return with empty call stack")
)
