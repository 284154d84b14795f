// Package display implements the monochrome 64x32 framebuffer of the CHIP-8 machine.
package display

// Screen dimensions in pixels.
const (
	Width  = 64
	Height = 32
)

// FrameBuffer is a full copy of the pixel grid, indexed [y][x].
type FrameBuffer [Height][Width]bool

// Display is a bit-per-pixel framebuffer with XOR-toggle drawing and a dirty
// flag that tracks whether any pixel changed since the last snapshot.
type Display struct {
	fb    FrameBuffer
	dirty bool
}

// New returns a cleared display.
func New() *Display {
	return &Display{}
}

// Toggle flips the pixel at x,y and reports whether it was set before the
// flip, which drawing uses to accumulate the collision flag. Coordinates
// outside the grid are ignored and report false.
func (d *Display) Toggle(x, y int) bool {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return false
	}

	wasSet := d.fb[y][x]
	d.fb[y][x] = !wasSet
	d.dirty = true
	return wasSet
}

// Clear switches every pixel off.
func (d *Display) Clear() {
	d.fb = FrameBuffer{}
	d.dirty = true
}

// Snapshot returns a copy of the pixel grid and clears the dirty flag.
// Consumers poll-and-render on a fixed cadence, so handing out the frame
// counts as having observed it.
func (d *Display) Snapshot() FrameBuffer {
	d.dirty = false
	return d.fb
}

// IsDirty reports whether any pixel changed since the last snapshot,
// without clearing the flag.
func (d *Display) IsDirty() bool {
	return d.dirty
}

// IsSet reports the state of the pixel at x,y. Out of range pixels read as off.
func (d *Display) IsSet(x, y int) bool {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return false
	}
	return d.fb[y][x]
}
