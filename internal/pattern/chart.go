package pattern

import (
	"git.lost.host/meutraa/minigames/internal/config"
	"git.lost.host/meutraa/minigames/internal/game"
)

// ChartGenerator replays authored bars in a loop instead of generating them.
type ChartGenerator struct {
	tempo
	pattern *game.Pattern
}

func NewChartGenerator(bars []game.Bar, bpm int, adapt config.Adaptation) *ChartGenerator {
	return &ChartGenerator{
		tempo:   tempo{bpm: clampBPM(bpm), adapt: adapt},
		pattern: game.NewPattern(bars),
	}
}

func (g *ChartGenerator) Next() game.Bar {
	return g.pattern.Next()
}
