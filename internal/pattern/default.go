package pattern

import (
	"math"
	"math/rand"

	"git.lost.host/meutraa/minigames/internal/config"
	"git.lost.host/meutraa/minigames/internal/game"
)

const (
	Bars         = 8
	SlotsPerBar  = 16
	MinBPM       = 40
	MaxBPM       = 300
	downbeatGain = 1.5
	backbeatGain = 1.2
)

type DefaultGenerator struct {
	tempo
	tracks  int
	profile game.Profile
	pattern *game.Pattern
	rng     *rand.Rand
}

func NewGenerator(bpm int, difficulty game.Difficulty, tracks int, adapt config.Adaptation, rng *rand.Rand) *DefaultGenerator {
	g := &DefaultGenerator{
		tempo:   tempo{bpm: clampBPM(bpm), adapt: adapt},
		tracks:  tracks,
		profile: difficulty.Profile(),
		rng:     rng,
	}
	g.pattern = game.NewPattern(g.generate())
	return g
}

func clampBPM(bpm int) int {
	if bpm < MinBPM {
		return MinBPM
	}
	if bpm > MaxBPM {
		return MaxBPM
	}
	return bpm
}

// Intensity follows a sine envelope across the bar cycle.
func Intensity(bar int) float64 {
	return 0.3 + 0.4*math.Sin(float64(bar)*math.Pi/4)
}

// Probability of a note on a slot, boosted on downbeats and backbeats.
func Probability(density, intensity float64, slot int) float64 {
	p := density * intensity
	if slot%4 == 0 {
		p *= downbeatGain
	} else if slot%2 == 0 {
		p *= backbeatGain
	}
	return p
}

func (g *DefaultGenerator) generate() []game.Bar {
	bars := make([]game.Bar, 0, Bars)
	for bar := 0; bar < Bars; bar++ {
		bars = append(bars, g.generateBar(bar))
	}
	return bars
}

func (g *DefaultGenerator) generateBar(bar int) game.Bar {
	intensity := Intensity(bar)
	notes := game.Bar{}
	for slot := 0; slot < SlotsPerBar; slot++ {
		if g.rng.Float64() >= Probability(g.profile.Density, intensity, slot) {
			continue
		}
		track := g.rng.Intn(g.tracks)
		isLong := g.rng.Float64() < g.profile.Complexity*0.3
		isSpecial := g.rng.Float64() < g.profile.Complexity*0.2

		t := game.NoteNormal
		if isSpecial {
			t = game.NoteSpecial
		} else if isLong {
			t = game.NoteLong
		}
		notes = append(notes, game.NoteSpec{
			Track:     track,
			Beat:      slot,
			Type:      t,
			Intensity: intensity,
		})
	}
	return notes
}

func (g *DefaultGenerator) Next() game.Bar {
	return g.pattern.Next()
}
