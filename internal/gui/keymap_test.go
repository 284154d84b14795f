package gui

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestKeyMapCoversAllKeys(t *testing.T) {
	assert.Len(t, keyMap, 0x10)

	seen := map[uint8]bool{}
	for _, index := range keyMap {
		assert.True(t, index <= 0xF)
		assert.False(t, seen[index])
		seen[index] = true
	}
}
