//go:build !windows

// Package terminal implements a raw-mode text front-end of the emulator.
package terminal

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"syscall"
	"time"

	"github.com/retroenv/chip8emu/internal/chip8"
	"github.com/retroenv/chip8emu/internal/keypad"
	"golang.org/x/term"
)

// frameInterval is the 60Hz drive cadence of the machine.
const frameInterval = time.Second / 60

// keyHoldDuration controls synthetic key releases. Terminals deliver no key
// release events, so a key counts as held until no repeat byte arrived for
// this long.
const keyHoldDuration = 100 * time.Millisecond

// Run renders into the terminal and drives the machine at 60 frames per
// second until Escape or Ctrl-C is pressed, the context is cancelled or a
// fatal execution error occurs.
func Run(ctx context.Context, machine *chip8.Chip8) error {
	fd := int(os.Stdin.Fd())

	// raw mode disables echo and line buffering, keystrokes arrive directly
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("setting terminal raw mode: %w", err)
	}
	defer func() { _ = term.Restore(fd, oldState) }()

	if err := syscall.SetNonblock(fd, true); err != nil {
		return fmt.Errorf("setting nonblocking stdin: %w", err)
	}
	defer func() { _ = syscall.SetNonblock(fd, false) }()

	keys := make(chan uint8, 16)
	quit := make(chan struct{})
	done := make(chan struct{})
	stopped := make(chan struct{})
	go readKeys(fd, keys, quit, done, stopped)
	// stop the reader before the deferred mode restores run, a blocking
	// read on a restored fd would park the goroutine forever
	defer func() {
		close(done)
		<-stopped
	}()

	out := bufio.NewWriter(os.Stdout)
	var expiry [keypad.KeyCount]time.Time

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case <-quit:
			return nil

		case key := <-keys:
			_ = machine.KeyDown(key)
			expiry[key] = time.Now().Add(keyHoldDuration)

		case now := <-ticker.C:
			for key, deadline := range expiry {
				if !deadline.IsZero() && now.After(deadline) {
					_ = machine.KeyUp(uint8(key))
					expiry[key] = time.Time{}
				}
			}

			if err := machine.RunFrame(); err != nil {
				return fmt.Errorf("running frame: %w", err)
			}
			if machine.IsDirty() {
				render(out, machine.FramebufferSnapshot(), machine.IsSoundPlaying())
			}
		}
	}
}

// readKeys forwards mapped keypad bytes from raw stdin until Escape or
// Ctrl-C arrives or done closes. It closes stopped on exit. Nonblocking
// reads with a short sleep keep the goroutine responsive without
// busy-waiting.
func readKeys(fd int, keys chan<- uint8, quit chan<- struct{},
	done <-chan struct{}, stopped chan<- struct{}) {

	defer close(stopped)

	buf := make([]byte, 1)
	for {
		select {
		case <-done:
			return
		default:
		}

		n, err := syscall.Read(fd, buf)
		if n > 0 {
			switch b := buf[0]; b {
			case 0x03, 0x1B: // Ctrl-C, Escape
				close(quit)
				return
			default:
				if key, ok := labelMap[b]; ok {
					select {
					case keys <- key:
					case <-done:
						return
					}
				}
			}
			continue
		}
		if err == syscall.EAGAIN || err == syscall.EWOULDBLOCK || n == 0 {
			time.Sleep(5 * time.Millisecond)
			continue
		}
		if err != nil {
			return
		}
	}
}
