// Package chip8 implements the CHIP-8 execution engine: memory, register
// file, the fetch/decode/execute cycle and the per-frame driver.
package chip8

import (
	"fmt"

	"github.com/retroenv/chip8emu/internal/display"
	"github.com/retroenv/chip8emu/internal/keypad"
	"github.com/retroenv/chip8emu/internal/memory"
	"github.com/retroenv/retrogolib/log"
)

// Machine layout constants.
const (
	// ROMAddress is where programs are loaded and execution starts.
	ROMAddress = 0x200

	// StackSize is the call stack depth in return addresses.
	StackSize = 0x10

	// RegisterCount is the number of general purpose registers.
	RegisterCount = 0x10

	// FlagRegister is the index of VF, the implicit flags/carry register.
	FlagRegister = 0xF
)

// Chip8 is a single CHIP-8 virtual machine instance. It owns all machine
// state exclusively, state only leaves by value copy (framebuffer snapshot)
// or enters by explicit mutation call (key injection). Not safe for
// concurrent use, the host serializes all calls.
type Chip8 struct {
	logger *log.Logger
	cfg    Config

	memory  *memory.Memory
	display *display.Display
	keypad  *keypad.Keypad

	// return addresses of active subroutine calls, sp points one past the top
	stack [StackSize]uint16
	sp    uint8

	v  [RegisterCount]uint8
	i  uint16
	pc uint16

	dt uint8 // delay timer, counts down at 60Hz
	st uint8 // sound timer, a tone plays while it is non-zero
}

// New creates a machine with default configuration and the font table
// written at its fixed address.
func New(logger *log.Logger) (*Chip8, error) {
	mem := memory.New()
	if _, err := mem.Write(FontAddress, fontData[:]); err != nil {
		return nil, fmt.Errorf("writing font into memory: %w", err)
	}

	return &Chip8{
		logger:  logger,
		cfg:     DefaultConfig(),
		memory:  mem,
		display: display.New(),
		keypad:  keypad.New(),
		pc:      ROMAddress,
	}, nil
}

// WithLegacyShift toggles the legacy shift quirk. Configuration toggles must
// not be called once the machine executes instructions.
func (c *Chip8) WithLegacyShift(value bool) *Chip8 {
	c.cfg.LegacyShift = value
	return c
}

// WithJumpAddOffset toggles the indexed jump quirk.
func (c *Chip8) WithJumpAddOffset(value bool) *Chip8 {
	c.cfg.JumpAddOffset = value
	return c
}

// WithMemoryIncrementIndex toggles the block load/store index quirk.
func (c *Chip8) WithMemoryIncrementIndex(value bool) *Chip8 {
	c.cfg.MemoryIncrementIndex = value
	return c
}

// WithInstructionsPerFrame sets how many instructions RunFrame executes.
func (c *Chip8) WithInstructionsPerFrame(count int) *Chip8 {
	c.cfg.InstructionsPerFrame = count
	return c
}

// LoadROM writes the program bytes to the program start address and resets
// the program counter. Loading again resets the machine to the new program.
func (c *Chip8) LoadROM(rom []byte) error {
	if _, err := c.memory.Write(ROMAddress, rom); err != nil {
		return fmt.Errorf("writing rom into memory: %w", err)
	}
	c.pc = ROMAddress
	return nil
}

// RunFrame advances the machine by one 60Hz frame: both timers count down
// once, then a fixed number of instructions execute. It stops at the first
// fatal execution error.
func (c *Chip8) RunFrame() error {
	if c.dt > 0 {
		c.dt--
	}
	if c.st > 0 {
		c.st--
	}

	for range c.cfg.InstructionsPerFrame {
		if err := c.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Step fetches, decodes and executes a single instruction without touching
// the timers, for hosts that drive timing externally.
func (c *Chip8) Step() error {
	addr := c.pc
	word, err := c.memory.ReadWord(addr)
	if err != nil {
		return fmt.Errorf("fetching instruction at %#04x: %w", addr, err)
	}

	// advance before execution so jump handlers overwrite the provisional value
	c.pc += 2

	op := decodeOpcode(word)
	c.logger.Debug("executing instruction",
		log.Hex("address", addr),
		log.Hex("opcode", word),
		log.String("mnemonic", mnemonic(word)))

	if err := c.execute(op); err != nil {
		return fmt.Errorf("opcode %#04x fetched at %#04x: %w", word, addr, err)
	}
	return nil
}

// KeyDown injects a key press. The key index validation error is recoverable,
// machine state stays untouched.
func (c *Chip8) KeyDown(key uint8) error {
	return c.keypad.KeyDown(key)
}

// KeyUp injects a key release.
func (c *Chip8) KeyUp(key uint8) error {
	return c.keypad.KeyUp(key)
}

// FramebufferSnapshot returns a copy of the pixel grid and clears the dirty
// flag.
func (c *Chip8) FramebufferSnapshot() display.FrameBuffer {
	return c.display.Snapshot()
}

// IsDirty reports whether the display changed since the last snapshot.
func (c *Chip8) IsDirty() bool {
	return c.display.IsDirty()
}

// IsSoundPlaying reports whether the sound timer is running. Producing the
// tone is the host's business.
func (c *Chip8) IsSoundPlaying() bool {
	return c.st > 0
}

// String renders the machine memory as a hex dump.
func (c *Chip8) String() string {
	return "=== Memory ===\n" + c.memory.String()
}
