// Package session holds the in-progress command line.
package session

// InputBuffer manages the text of the line being edited.
type InputBuffer struct {
	Value string
}

// Set replaces the whole line, as history recall and quick actions do.
func (b *InputBuffer) Set(s string) {
	b.Value = s
}

// Append adds runes to the buffer.
func (b *InputBuffer) Append(runes []rune) {
	if len(runes) > 0 {
		b.Value += string(runes)
	}
}

// Backspace removes the last character.
func (b *InputBuffer) Backspace() {
	if r := []rune(b.Value); len(r) > 0 {
		b.Value = string(r[:len(r)-1])
	}
}

// Clear resets the buffer.
func (b *InputBuffer) Clear() {
	b.Value = ""
}
