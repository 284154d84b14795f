// Package keypad implements the 16-key hexadecimal keypad state of the
// CHIP-8 machine.
//
// The computers which originally ran CHIP-8 used a keypad with this layout:
//
//	+---+---+---+---+
//	| 1 | 2 | 3 | C |
//	+---+---+---+---+
//	| 4 | 5 | 6 | D |
//	+---+---+---+---+
//	| 7 | 8 | 9 | E |
//	+---+---+---+---+
//	| A | 0 | B | F |
//	+---+---+---+---+
//
// Mapping host input events onto the 0x0-0xF index space is the caller's job.
package keypad

import "fmt"

// KeyCount is the number of keys on the keypad.
const KeyCount = 0x10

// Keypad holds the boolean state of all 16 keys plus the release latch used
// by the blocking key-read instruction: the latch remembers the key that was
// down when the instruction first ran and is cleared once that key goes up.
type Keypad struct {
	keys [KeyCount]bool

	awaiting    uint8
	awaitingSet bool
}

// New returns a keypad with all keys up.
func New() *Keypad {
	return &Keypad{}
}

// KeyDown marks the key as pressed. Keys above 0xF do not exist.
func (k *Keypad) KeyDown(key uint8) error {
	if key >= KeyCount {
		return fmt.Errorf("invalid key index %#02x", key)
	}
	k.keys[key] = true
	return nil
}

// KeyUp marks the key as released.
func (k *Keypad) KeyUp(key uint8) error {
	if key >= KeyCount {
		return fmt.Errorf("invalid key index %#02x", key)
	}
	k.keys[key] = false
	return nil
}

// IsDown reports whether the key is currently pressed.
// Key indices are taken modulo the keypad size, operands are 4-bit nibbles.
func (k *Keypad) IsDown(key uint8) bool {
	return k.keys[key%KeyCount]
}

// IsUp reports whether the key is currently released.
func (k *Keypad) IsUp(key uint8) bool {
	return !k.keys[key%KeyCount]
}

// AwaitRelease latches the key whose release the blocking key-read is
// waiting for.
func (k *Keypad) AwaitRelease(key uint8) {
	k.awaiting = key % KeyCount
	k.awaitingSet = true
}

// Awaiting returns the latched key, if any.
func (k *Keypad) Awaiting() (uint8, bool) {
	return k.awaiting, k.awaitingSet
}

// ReleaseProcessed clears the latch after the awaited release was observed.
func (k *Keypad) ReleaseProcessed() {
	k.awaitingSet = false
}
