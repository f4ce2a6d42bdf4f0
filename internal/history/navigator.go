// Package history keeps submitted commands and the cursor used to browse
// them, plus an optional SQL store that persists them across sessions.
package history

import "slices"

// None is the cursor value while the user is editing live text.
const None = -1

// Navigator is the command history with its browse cursor. Like
// scrollback.Buffer it is a value; every method returns the next state.
// Build one with New or Seed.
type Navigator struct {
	entries []string
	cursor  int
}

// New returns an empty navigator.
func New() Navigator {
	return Navigator{cursor: None}
}

// Seed returns a navigator pre-loaded with entries, oldest first.
func Seed(entries []string) Navigator {
	return Navigator{entries: slices.Clone(entries), cursor: None}
}

// Record appends cmd and stops browsing. Duplicates are kept.
func (n Navigator) Record(cmd string) Navigator {
	return Navigator{entries: append(slices.Clip(n.entries), cmd), cursor: None}
}

// Older moves the cursor one entry back in time. On the first call it
// jumps to the newest entry; at the oldest entry it stays put. ok is false
// when there is no history.
func (n Navigator) Older() (next Navigator, value string, ok bool) {
	if len(n.entries) == 0 {
		return n, "", false
	}
	idx := len(n.entries) - 1
	if n.cursor != None {
		idx = max(0, n.cursor-1)
	}
	n.cursor = idx
	return n, n.entries[idx], true
}

// Newer moves the cursor one entry forward. Stepping past the newest entry
// returns to live editing with an empty value. ok is false when not
// browsing.
func (n Navigator) Newer() (next Navigator, value string, ok bool) {
	if n.cursor == None {
		return n, "", false
	}
	idx := n.cursor + 1
	if idx >= len(n.entries) {
		n.cursor = None
		return n, "", true
	}
	n.cursor = idx
	return n, n.entries[idx], true
}

func (n Navigator) Cursor() int {
	return n.cursor
}

// Browsing reports whether the cursor points into the history.
func (n Navigator) Browsing() bool {
	return n.cursor != None
}

func (n Navigator) Len() int {
	return len(n.entries)
}

// Entries returns a copy of the history in submission order.
func (n Navigator) Entries() []string {
	return slices.Clone(n.entries)
}
