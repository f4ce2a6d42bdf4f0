package resolver

import "math/rand/v2"

// maxID bounds the display IDs handed out by creation responses.
const maxID = 100

// IDGenerator draws the pseudo-random IDs shown in mock responses.
type IDGenerator interface {
	// Intn returns a value in [0, n).
	Intn(n int) int
}

type randomIDs struct{}

func (randomIDs) Intn(n int) int { return rand.IntN(n) }

// RandomIDs is the default generator.
func RandomIDs() IDGenerator { return randomIDs{} }

// FixedID always returns id, clamped into range.
type FixedID int

func (f FixedID) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return ((int(f) % n) + n) % n
}
