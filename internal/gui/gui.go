// Package gui implements the windowed front-end of the emulator.
package gui

import (
	"context"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/retroenv/chip8emu/internal/chip8"
	"github.com/retroenv/chip8emu/internal/display"
)

// Compile-time check to ensure window implements ebiten.Game.
var _ ebiten.Game = (*window)(nil)

// window drives the machine from the game loop. Ebiten ticks at 60Hz which
// is exactly the machine's timer cadence, so every tick runs one frame.
type window struct {
	ctx     context.Context
	machine *chip8.Chip8

	// RGBA pixels of the last observed framebuffer, kept between draws
	frame []byte
}

// Run opens the emulator window and blocks until the window closes, the
// context is cancelled or a fatal execution error occurs.
func Run(ctx context.Context, machine *chip8.Chip8, scale int) error {
	w := &window{
		ctx:     ctx,
		machine: machine,
		frame:   make([]byte, display.Width*display.Height*4),
	}

	ebiten.SetWindowTitle("chip8emu")
	ebiten.SetWindowSize(display.Width*scale, display.Height*scale)

	if err := ebiten.RunGame(w); err != nil {
		return fmt.Errorf("running window: %w", err)
	}
	return nil
}

// Update injects key transitions into the keypad and advances the machine
// by one frame.
func (w *window) Update() error {
	select {
	case <-w.ctx.Done():
		return ebiten.Termination
	default:
	}

	for key, index := range keyMap {
		if inpututil.IsKeyJustPressed(key) {
			_ = w.machine.KeyDown(index)
		}
		if inpututil.IsKeyJustReleased(key) {
			_ = w.machine.KeyUp(index)
		}
	}

	if err := w.machine.RunFrame(); err != nil {
		return fmt.Errorf("running frame: %w", err)
	}
	return nil
}

// Draw uploads the framebuffer pixels. A new grid is only fetched when the
// machine reports changed pixels.
func (w *window) Draw(screen *ebiten.Image) {
	if w.machine.IsDirty() {
		fb := w.machine.FramebufferSnapshot()
		for y := range display.Height {
			for x := range display.Width {
				value := byte(0x00)
				if fb[y][x] {
					value = 0xFF
				}
				offset := (y*display.Width + x) * 4
				w.frame[offset] = value
				w.frame[offset+1] = value
				w.frame[offset+2] = value
				w.frame[offset+3] = 0xFF
			}
		}
	}
	screen.WritePixels(w.frame)
}

// Layout reports the logical screen size, ebiten scales it to the window.
func (w *window) Layout(_, _ int) (int, int) {
	return display.Width, display.Height
}
