// Package text has small helpers for strings that carry ANSI escape
// sequences, used when measuring or inspecting rendered terminal frames.
package text

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// StripANSI removes ANSI escape sequences, handling both CSI sequences
// (ESC [ ... final byte) and two-byte escapes.
func StripANSI(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	const (
		statePlain = iota
		stateEscape
		stateCSI
	)
	state := statePlain
	for _, r := range s {
		switch state {
		case statePlain:
			if r == '\x1b' {
				state = stateEscape
				continue
			}
			b.WriteRune(r)
		case stateEscape:
			if r == '[' {
				state = stateCSI
			} else {
				// Two-byte escape; the next rune is plain text again.
				state = statePlain
			}
		case stateCSI:
			// Parameter and intermediate bytes are 0x20-0x3f; anything in
			// 0x40-0x7e terminates the sequence.
			if r >= 0x40 && r <= 0x7e {
				state = statePlain
			}
		}
	}
	return b.String()
}

// VisibleWidth returns the display width of s, ignoring escape sequences
// and counting wide runes properly.
func VisibleWidth(s string) int {
	return runewidth.StringWidth(StripANSI(s))
}
