package keypad

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestKeyState(t *testing.T) {
	k := New()

	assert.True(t, k.IsUp(0x5))
	assert.False(t, k.IsDown(0x5))

	assert.NoError(t, k.KeyDown(0x5))
	assert.True(t, k.IsDown(0x5))
	assert.False(t, k.IsUp(0x5))

	assert.NoError(t, k.KeyUp(0x5))
	assert.True(t, k.IsUp(0x5))
}

func TestInvalidKeyIndex(t *testing.T) {
	k := New()

	assert.Error(t, k.KeyDown(0x10))
	assert.Error(t, k.KeyUp(0xFF))
}

func TestAwaitRelease(t *testing.T) {
	k := New()

	_, ok := k.Awaiting()
	assert.False(t, ok)

	k.AwaitRelease(0xF)
	key, ok := k.Awaiting()
	assert.True(t, ok)
	assert.Equal(t, uint8(0xF), key)

	k.ReleaseProcessed()
	_, ok = k.Awaiting()
	assert.False(t, ok)
}
