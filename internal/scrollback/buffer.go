// Package scrollback holds the terminal transcript.
package scrollback

import "slices"

var banner = []string{
	"Construction CLI Web Terminal",
	`Type "buildcli --help" to get started`,
	`Special commands: "clear" to clear terminal, "exit" to close`,
	"",
}

// Banner returns the lines a fresh or cleared transcript starts with.
func Banner() []string {
	return slices.Clone(banner)
}

// Buffer is an append-only list of display lines. The zero value is not
// valid; use New.
//
// Buffer is a value: Append and Reset return a new Buffer and never touch
// the receiver's backing array, so earlier states stay intact.
type Buffer struct {
	lines []string
}

// New returns a buffer holding only the banner.
func New() Buffer {
	return Buffer{lines: Banner()}
}

// Append adds lines to the tail in order.
func (b Buffer) Append(lines ...string) Buffer {
	if len(lines) == 0 {
		return b
	}
	return Buffer{lines: append(slices.Clip(b.lines), lines...)}
}

// Reset discards everything and reseeds the banner.
func (b Buffer) Reset() Buffer {
	return New()
}

// Lines returns a copy of the transcript.
func (b Buffer) Lines() []string {
	return slices.Clone(b.lines)
}

func (b Buffer) Len() int {
	return len(b.lines)
}

// Last returns the newest line, or "" for an invalid zero buffer.
func (b Buffer) Last() string {
	if len(b.lines) == 0 {
		return ""
	}
	return b.lines[len(b.lines)-1]
}
