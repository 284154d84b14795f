package chip8

import (
	"fmt"
	"math/rand"

	"github.com/retroenv/chip8emu/internal/display"
	"github.com/retroenv/chip8emu/internal/keypad"
)

// execute dispatches a decoded instruction to its handler. Any word that
// matches no defined opcode class and operand combination is fatal.
func (c *Chip8) execute(op opcode) error {
	switch op.c {
	case 0x0:
		switch op.word {
		case 0x00E0:
			c.opClearScreen()
		case 0x00EE:
			return c.opReturn()
		default:
			return ErrUnknownOpcode
		}

	case 0x1:
		c.pc = op.nnn

	case 0x2:
		return c.opCall(op.nnn)

	case 0x3:
		c.skipIf(c.v[op.x] == op.nn)

	case 0x4:
		c.skipIf(c.v[op.x] != op.nn)

	case 0x5:
		if op.n != 0 {
			return ErrUnknownOpcode
		}
		c.skipIf(c.v[op.x] == c.v[op.y])

	case 0x6:
		c.v[op.x] = op.nn

	case 0x7:
		c.v[op.x] += op.nn // wrapping, flags register untouched

	case 0x8:
		return c.executeArithmetic(op)

	case 0x9:
		if op.n != 0 {
			return ErrUnknownOpcode
		}
		c.skipIf(c.v[op.x] != c.v[op.y])

	case 0xA:
		c.i = op.nnn

	case 0xB:
		c.opJumpWithOffset(op.nnn, op.x)

	case 0xC:
		c.v[op.x] = op.nn & uint8(rand.Intn(0x100))

	case 0xD:
		return c.opDraw(op.x, op.y, op.n)

	case 0xE:
		switch op.nn {
		case 0x9E:
			c.skipIf(c.keypad.IsDown(c.v[op.x]))
		case 0xA1:
			c.skipIf(c.keypad.IsUp(c.v[op.x]))
		default:
			return ErrUnknownOpcode
		}

	case 0xF:
		return c.executeMisc(op)
	}
	return nil
}

// executeArithmetic handles the register-to-register instruction class.
func (c *Chip8) executeArithmetic(op opcode) error {
	switch op.n {
	case 0x0:
		c.v[op.x] = c.v[op.y]
	case 0x1:
		c.v[op.x] |= c.v[op.y]
	case 0x2:
		c.v[op.x] &= c.v[op.y]
	case 0x3:
		c.v[op.x] ^= c.v[op.y]
	case 0x4:
		c.opAdd(op.x, op.y)
	case 0x5:
		c.opSub(op.x, op.x, op.y)
	case 0x6:
		c.opShiftRight(op.x, op.y)
	case 0x7:
		c.opSub(op.x, op.y, op.x)
	case 0xE:
		c.opShiftLeft(op.x, op.y)
	default:
		return ErrUnknownOpcode
	}
	return nil
}

// executeMisc handles the timer, keypad, index and memory instruction class.
func (c *Chip8) executeMisc(op opcode) error {
	switch op.nn {
	case 0x07:
		c.v[op.x] = c.dt
	case 0x0A:
		c.opWaitKey(op.x)
	case 0x15:
		c.dt = c.v[op.x]
	case 0x18:
		c.st = c.v[op.x]
	case 0x1E:
		c.i += uint16(c.v[op.x]) // wrapping 16-bit addition
	case 0x29:
		c.i = FontAddress + 5*uint16(c.v[op.x])
	case 0x33:
		return c.opStoreDigits(op.x)
	case 0x55:
		return c.opStoreRegisters(op.x)
	case 0x65:
		return c.opLoadRegisters(op.x)
	default:
		return ErrUnknownOpcode
	}
	return nil
}

// skipIf advances the program counter past the next instruction when the
// condition holds.
func (c *Chip8) skipIf(condition bool) {
	if condition {
		c.pc += 2
	}
}

func (c *Chip8) opClearScreen() {
	c.display.Clear()
}

func (c *Chip8) opReturn() error {
	if c.sp == 0 {
		return ErrStackUnderflow
	}
	c.sp--
	c.pc = c.stack[c.sp]
	return nil
}

func (c *Chip8) opCall(nnn uint16) error {
	if c.sp == StackSize {
		return ErrStackOverflow
	}
	c.stack[c.sp] = c.pc
	c.sp++
	c.pc = nnn
	return nil
}

// opAdd adds two registers with wraparound, VF records the carry out of
// 8 bits. The flag is written last so VF as target still ends up holding
// the flag.
func (c *Chip8) opAdd(x, y uint8) {
	sum := uint16(c.v[x]) + uint16(c.v[y])
	c.v[x] = uint8(sum)
	if sum > 0xFF {
		c.v[FlagRegister] = 1
	} else {
		c.v[FlagRegister] = 0
	}
}

// opSub stores minuend-subtrahend into the target register with wraparound,
// VF records that no borrow occurred.
func (c *Chip8) opSub(target, minuend, subtrahend uint8) {
	noBorrow := c.v[minuend] >= c.v[subtrahend]
	c.v[target] = c.v[minuend] - c.v[subtrahend]
	if noBorrow {
		c.v[FlagRegister] = 1
	} else {
		c.v[FlagRegister] = 0
	}
}

func (c *Chip8) opShiftRight(x, y uint8) {
	value := c.v[x]
	if c.cfg.LegacyShift {
		value = c.v[y]
	}
	c.v[x] = value >> 1
	c.v[FlagRegister] = value & 0x1
}

func (c *Chip8) opShiftLeft(x, y uint8) {
	value := c.v[x]
	if c.cfg.LegacyShift {
		value = c.v[y]
	}
	c.v[x] = value << 1
	c.v[FlagRegister] = value >> 7
}

func (c *Chip8) opJumpWithOffset(nnn uint16, x uint8) {
	if c.cfg.JumpAddOffset {
		c.pc = nnn + uint16(c.v[x])
	} else {
		c.pc = nnn + uint16(c.v[0])
	}
}

// opDraw XORs an n-row sprite read from the index register onto the screen.
// The start coordinates wrap to the grid, the drawing itself does not: rows
// past the bottom edge end the sprite, columns past the right edge end the
// row. Each row byte is read as its row draws, a bottom-clipped row is never
// read, so only rows that actually draw can fault on a read past memory.
// VF becomes 1 when any drawn bit lands on an already set pixel.
func (c *Chip8) opDraw(x, y, n uint8) error {
	startX := int(c.v[x]) % display.Width
	startY := int(c.v[y]) % display.Height
	c.v[FlagRegister] = 0

	for row := range int(n) {
		py := startY + row
		if py >= display.Height {
			break
		}

		line, err := c.memory.Read(c.i + uint16(row))
		if err != nil {
			return fmt.Errorf("reading sprite data: %w", err)
		}

		for col := range 8 {
			px := startX + col
			if px >= display.Width {
				break
			}
			if line>>(7-col)&0x1 == 0 {
				continue
			}
			if c.display.Toggle(px, py) {
				c.v[FlagRegister] = 1
			}
		}
	}
	return nil
}

// opWaitKey suspends program counter progress until a key press followed by
// its release is observed. The fetch advance is rewound so the instruction
// re-executes every cycle until satisfied.
func (c *Chip8) opWaitKey(x uint8) {
	if key, ok := c.keypad.Awaiting(); ok {
		if c.keypad.IsUp(key) {
			c.v[x] = key
			c.keypad.ReleaseProcessed()
			return
		}
		c.pc -= 2
		return
	}

	for key := uint8(0); key < keypad.KeyCount; key++ {
		if c.keypad.IsDown(key) {
			c.keypad.AwaitRelease(key)
			break
		}
	}
	c.pc -= 2
}

// opStoreDigits writes the hundreds, tens and ones digits of the register
// value to memory at the index register.
func (c *Chip8) opStoreDigits(x uint8) error {
	value := c.v[x]
	digits := []byte{value / 100, value / 10 % 10, value % 10}
	if _, err := c.memory.Write(c.i, digits); err != nil {
		return fmt.Errorf("storing decimal digits: %w", err)
	}
	return nil
}

// opStoreRegisters writes V0 through Vx inclusive to memory starting at the
// index register.
func (c *Chip8) opStoreRegisters(x uint8) error {
	count := int(x) + 1
	if _, err := c.memory.Write(c.i, c.v[:count]); err != nil {
		return fmt.Errorf("storing registers: %w", err)
	}
	if c.cfg.MemoryIncrementIndex {
		c.i += uint16(count)
	}
	return nil
}

// opLoadRegisters reads memory starting at the index register into V0
// through Vx inclusive.
func (c *Chip8) opLoadRegisters(x uint8) error {
	count := int(x) + 1
	buf, err := c.memory.ReadRange(c.i, count)
	if err != nil {
		return fmt.Errorf("loading registers: %w", err)
	}
	copy(c.v[:count], buf)
	if c.cfg.MemoryIncrementIndex {
		c.i += uint16(count)
	}
	return nil
}
