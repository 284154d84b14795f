package chip8

import (
	chip8cpu "github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// opcode is the decomposition of a 16-bit instruction word into its operand
// fields. The split is pure bit-masking, which field a handler consumes
// depends on the opcode class.
type opcode struct {
	word uint16

	c   uint8  // opcode class, high nibble
	x   uint8  // second nibble, first operand register
	y   uint8  // third nibble, second operand register
	n   uint8  // low nibble
	nn  uint8  // low byte immediate
	nnn uint16 // 12-bit address immediate
}

// decodeOpcode splits an instruction word into its operand fields.
func decodeOpcode(word uint16) opcode {
	return opcode{
		word: word,
		c:    uint8(word >> 12),
		x:    uint8(word & 0x0F00 >> 8),
		y:    uint8(word & 0x00F0 >> 4),
		n:    uint8(word & 0x000F),
		nn:   uint8(word & 0x00FF),
		nnn:  word & 0x0FFF,
	}
}

// mnemonic resolves the instruction name of a word using the CHIP-8 opcode
// tables, for trace logging. Returns an empty string for undefined words.
func mnemonic(word uint16) string {
	firstNibble := (word & 0xF000) >> 12
	for _, op := range chip8cpu.Opcodes[int(firstNibble)] {
		if op.Info.Mask&word == op.Info.Value {
			return op.Instruction.Name
		}
	}
	return ""
}
