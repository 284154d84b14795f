// Package memory implements the flat 4KB address space of the CHIP-8 machine.
package memory

import (
	"fmt"
	"strings"
)

// Size is the total amount of addressable memory in bytes.
const Size = 0x1000

// Memory is a bounds-checked flat byte array. Writes are all-or-nothing:
// a write that would run past the end of memory fails without mutating
// any byte.
type Memory struct {
	data [Size]byte
}

// New returns zeroed memory.
func New() *Memory {
	return &Memory{}
}

// Write copies data into memory starting at addr and returns the number of
// bytes that remain addressable from addr. It fails if addr is out of range
// or the data does not fit; no partial write happens on failure.
func (m *Memory) Write(addr uint16, data []byte) (int, error) {
	if int(addr) >= Size {
		return 0, fmt.Errorf("memory write address %#04x out of bounds", addr)
	}

	available := Size - int(addr)
	if len(data) > available {
		return 0, fmt.Errorf("memory write of %d bytes at %#04x overflows by %d bytes",
			len(data), addr, len(data)-available)
	}

	copy(m.data[addr:], data)
	return available, nil
}

// Read returns the byte at addr.
func (m *Memory) Read(addr uint16) (byte, error) {
	if int(addr) >= Size {
		return 0, fmt.Errorf("memory read address %#04x out of bounds", addr)
	}
	return m.data[addr], nil
}

// ReadWord reads two consecutive bytes at addr and combines them big-endian.
func (m *Memory) ReadWord(addr uint16) (uint16, error) {
	if int(addr)+1 >= Size {
		return 0, fmt.Errorf("memory word read address %#04x out of bounds", addr)
	}
	return uint16(m.data[addr])<<8 | uint16(m.data[addr+1]), nil
}

// ReadRange returns a copy of length bytes starting at addr.
func (m *Memory) ReadRange(addr uint16, length int) ([]byte, error) {
	if int(addr)+length > Size {
		return nil, fmt.Errorf("memory range read of %d bytes at %#04x out of bounds",
			length, addr)
	}
	buf := make([]byte, length)
	copy(buf, m.data[addr:int(addr)+length])
	return buf, nil
}

// String renders memory as a classic 16-bytes-per-line hex dump.
func (m *Memory) String() string {
	const bytesPerLine = 16

	var sb strings.Builder
	for line := 0; line < Size/bytesPerLine; line++ {
		fmt.Fprintf(&sb, "%04X: ", line*bytesPerLine)
		for _, b := range m.data[line*bytesPerLine : (line+1)*bytesPerLine] {
			fmt.Fprintf(&sb, "%02X ", b)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
