package pattern

import (
	"time"

	"git.lost.host/meutraa/minigames/internal/game"
)

type Generator interface {
	// Next returns the notes of the next bar, cycling through the pattern
	Next() game.Bar

	BPM() int
	// BeatInterval is the length of one quarter note at the current tempo
	BeatInterval() time.Duration

	// Adapt nudges the tempo given the recent perfect ratio
	Adapt(performance float64)
}
