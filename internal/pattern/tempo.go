package pattern

import (
	"time"

	"git.lost.host/meutraa/minigames/internal/config"
)

// tempo is the adaptive BPM shared by every generator.
type tempo struct {
	bpm   int
	adapt config.Adaptation
}

func (t *tempo) BPM() int {
	return t.bpm
}

func (t *tempo) BeatInterval() time.Duration {
	return time.Minute / time.Duration(t.bpm)
}

// Adapt is a plain hysteresis step, there is no overshoot correction.
func (t *tempo) Adapt(performance float64) {
	if performance > t.adapt.High && t.bpm < t.adapt.MaxBPM {
		t.bpm = clampBPM(t.bpm + t.adapt.Step)
	} else if performance < t.adapt.Low && t.bpm > t.adapt.MinBPM {
		t.bpm = clampBPM(t.bpm - t.adapt.Step)
	}
}
