package terminal

import (
	"bufio"
	"strings"

	"github.com/retroenv/chip8emu/internal/display"
)

// labelMap maps terminal input bytes onto the hexadecimal keypad, the same
// left-hand block layout the GUI front-end uses.
var labelMap = map[byte]uint8{
	'1': 0x1, '2': 0x2, '3': 0x3, '4': 0xC,
	'q': 0x4, 'w': 0x5, 'e': 0x6, 'r': 0xD,
	'a': 0x7, 's': 0x8, 'd': 0x9, 'f': 0xE,
	'z': 0xA, 'x': 0x0, 'c': 0xB, 'v': 0xF,
}

// render draws the framebuffer as double-width blocks inside a border that
// doubles as the sound indicator.
func render(out *bufio.Writer, fb display.FrameBuffer, sound bool) {
	border := "+"
	if sound {
		border = "#"
	}

	var sb strings.Builder
	sb.WriteString("\x1b[H\x1b[2J") // cursor home, clear screen

	edge := strings.Repeat(border, display.Width*2+2)
	sb.WriteString(edge)
	sb.WriteString("\r\n")

	for y := range display.Height {
		sb.WriteString(border)
		for x := range display.Width {
			if fb[y][x] {
				sb.WriteString("▓▓")
			} else {
				sb.WriteString("  ")
			}
		}
		sb.WriteString(border)
		sb.WriteString("\r\n")
	}

	sb.WriteString(edge)
	sb.WriteString("\r\n")

	_, _ = out.WriteString(sb.String())
	_ = out.Flush()
}
