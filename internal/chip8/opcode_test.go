package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDecodeOpcode(t *testing.T) {
	op := decodeOpcode(0xD123)

	assert.Equal(t, uint16(0xD123), op.word)
	assert.Equal(t, uint8(0xD), op.c)
	assert.Equal(t, uint8(0x1), op.x)
	assert.Equal(t, uint8(0x2), op.y)
	assert.Equal(t, uint8(0x3), op.n)
	assert.Equal(t, uint8(0x23), op.nn)
	assert.Equal(t, uint16(0x123), op.nnn)
}

func TestMnemonic(t *testing.T) {
	tests := []struct {
		word    uint16
		defined bool
	}{
		{0x00E0, true}, // clear screen
		{0x1234, true}, // jump
		{0x8AB4, true}, // register add
		{0xD01F, true}, // draw
		{0xF0FF, false},
	}

	for _, tt := range tests {
		name := mnemonic(tt.word)
		if tt.defined {
			assert.NotEmpty(t, name)
		} else {
			assert.Equal(t, "", name)
		}
	}
}
