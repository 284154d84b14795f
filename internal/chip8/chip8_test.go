package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

// newTestChip returns a machine with the given program loaded.
func newTestChip(t *testing.T, rom ...byte) *Chip8 {
	t.Helper()

	c, err := New(log.NewTestLogger(t))
	assert.NoError(t, err)
	assert.NoError(t, c.LoadROM(rom))
	return c
}

func TestNew(t *testing.T) {
	c, err := New(log.NewTestLogger(t))
	assert.NoError(t, err)

	assert.Equal(t, uint16(ROMAddress), c.pc)
	assert.Equal(t, uint8(0), c.sp)

	// font table sits at its fixed address
	b, err := c.memory.Read(FontAddress)
	assert.NoError(t, err)
	assert.Equal(t, byte(0xF0), b)
	b, err = c.memory.Read(FontAddress + 5*0x10 - 1)
	assert.NoError(t, err)
	assert.Equal(t, byte(0x80), b)
}

func TestLoadROM(t *testing.T) {
	t.Run("program bytes land at the start address", func(t *testing.T) {
		c := newTestChip(t, 0xAB, 0xCD)

		b, err := c.memory.Read(ROMAddress)
		assert.NoError(t, err)
		assert.Equal(t, byte(0xAB), b)
		assert.Equal(t, uint16(ROMAddress), c.pc)
	})

	t.Run("program counter resets on reload", func(t *testing.T) {
		c := newTestChip(t, 0x12, 0x34) // jump 0x234
		assert.NoError(t, c.Step())
		assert.Equal(t, uint16(0x234), c.pc)

		assert.NoError(t, c.LoadROM([]byte{0x00, 0xE0}))
		assert.Equal(t, uint16(ROMAddress), c.pc)
	})

	t.Run("too large program is rejected", func(t *testing.T) {
		c, err := New(log.NewTestLogger(t))
		assert.NoError(t, err)

		rom := make([]byte, 0x1000-ROMAddress+1)
		assert.Error(t, c.LoadROM(rom))
	})
}

func TestRunFrame(t *testing.T) {
	t.Run("timers count down once per frame", func(t *testing.T) {
		c := newTestChip(t, 0x12, 0x00) // jump to self
		c.dt = 2
		c.st = 1

		assert.NoError(t, c.RunFrame())
		assert.Equal(t, uint8(1), c.dt)
		assert.Equal(t, uint8(0), c.st)
	})

	t.Run("timers saturate at zero", func(t *testing.T) {
		c := newTestChip(t, 0x12, 0x00)

		assert.NoError(t, c.RunFrame())
		assert.Equal(t, uint8(0), c.dt)
		assert.Equal(t, uint8(0), c.st)
	})

	t.Run("executes the configured instruction count", func(t *testing.T) {
		rom := make([]byte, 6) // three register sets
		for i := 0; i < len(rom); i += 2 {
			rom[i] = 0x60
			rom[i+1] = byte(i)
		}
		c := newTestChip(t, rom...)
		c.WithInstructionsPerFrame(3)

		assert.NoError(t, c.RunFrame())
		assert.Equal(t, uint16(ROMAddress+6), c.pc)
	})

	t.Run("stops at the first fatal error", func(t *testing.T) {
		c := newTestChip(t, 0x60, 0x01, 0x00, 0x00) // set, then undefined
		c.WithInstructionsPerFrame(5)

		assert.Error(t, c.RunFrame())
		assert.Equal(t, uint8(0x01), c.v[0])
	})
}

func TestStepFetchOutOfBounds(t *testing.T) {
	c := newTestChip(t)
	c.pc = 0xFFF

	assert.Error(t, c.Step())
}

func TestKeyInjection(t *testing.T) {
	c := newTestChip(t)

	assert.NoError(t, c.KeyDown(0xA))
	assert.True(t, c.keypad.IsDown(0xA))
	assert.NoError(t, c.KeyUp(0xA))
	assert.True(t, c.keypad.IsUp(0xA))

	assert.Error(t, c.KeyDown(0x10))
	assert.Error(t, c.KeyUp(0x10))
}

func TestSoundState(t *testing.T) {
	c := newTestChip(t)
	assert.False(t, c.IsSoundPlaying())

	c.st = 3
	assert.True(t, c.IsSoundPlaying())
}

func TestString(t *testing.T) {
	c := newTestChip(t, 0x12, 0x00)
	dump := c.String()

	assert.Contains(t, dump, "=== Memory ===")
	assert.Contains(t, dump, "0050: F0 90 90 90 F0") // font table
	assert.Contains(t, dump, "0200: 12 00")          // program bytes
}

func TestFramebufferSnapshot(t *testing.T) {
	c := newTestChip(t)
	c.display.Toggle(1, 2)
	assert.True(t, c.IsDirty())

	fb := c.FramebufferSnapshot()
	assert.True(t, fb[2][1])
	assert.False(t, c.IsDirty())
}
