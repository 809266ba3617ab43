package rhythm

import (
	"math"
	"math/rand"
	"time"

	"git.lost.host/meutraa/minigames/internal/game"
)

// Effect is the floating quality label left by a judgement.
type Effect struct {
	X, Y    float64
	Quality game.Quality
	Born    time.Duration
}

func (e *Effect) progress(now, lifetime time.Duration) float64 {
	p := float64(now-e.Born) / float64(lifetime)
	return math.Min(math.Max(p, 0), 1)
}

func (e *Effect) Alpha(now, lifetime time.Duration) float64 {
	return 1 - e.progress(now, lifetime)
}

func (e *Effect) Scale(now, lifetime time.Duration) float64 {
	return 0.5 + e.progress(now, lifetime)*1.5
}

type Particle struct {
	X, Y   float64
	VX, VY float64
	Size   float64
	Type   game.NoteType // colours the particle like its note
	Born   time.Duration
}

func (p *Particle) Alpha(now, lifetime time.Duration) float64 {
	a := 1 - float64(now-p.Born)/float64(lifetime)
	return math.Min(math.Max(a, 0), 1)
}

// burst spreads count particles evenly around a point, kicked slightly upwards.
func burst(x, y float64, count int, t game.NoteType, now time.Duration, rng *rand.Rand) []*Particle {
	ps := make([]*Particle, 0, count)
	for i := 0; i < count; i++ {
		angle := math.Pi * 2 * float64(i) / float64(count)
		ps = append(ps, &Particle{
			X:    x,
			Y:    y,
			VX:   math.Cos(angle) * (2 + rng.Float64()*3),
			VY:   math.Sin(angle)*(2+rng.Float64()*3) - 2,
			Size: 3 + rng.Float64()*3,
			Type: t,
			Born: now,
		})
	}
	return ps
}
