package pattern

import (
	"testing"
	"time"

	"git.lost.host/meutraa/minigames/internal/config"
	"git.lost.host/meutraa/minigames/internal/game"
)

func TestChartGeneratorLoops(t *testing.T) {
	bars := []game.Bar{
		{{Track: 0, Beat: 0, Type: game.NoteNormal}},
		{{Track: 3, Beat: 8, Type: game.NoteSpecial}},
	}
	g := NewChartGenerator(bars, 150, config.DefaultRhythm().Adaptation)
	for i := 0; i < 5; i++ {
		bar := g.Next()
		if bar[0].Track != bars[i%2][0].Track {
			t.Errorf("bar %v = %v", i, bar)
		}
	}
	if g.BeatInterval() != 400*time.Millisecond {
		t.Errorf("interval = %v", g.BeatInterval())
	}
	g.Adapt(1)
	if g.BPM() != 155 {
		t.Errorf("bpm = %v", g.BPM())
	}
}

func TestChartGeneratorClamps(t *testing.T) {
	g := NewChartGenerator(nil, 1000, config.DefaultRhythm().Adaptation)
	if g.BPM() != MaxBPM {
		t.Errorf("bpm = %v", g.BPM())
	}
	if g.Next() != nil {
		t.Error("empty chart returned a bar")
	}
}
