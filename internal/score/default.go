package score

import (
	"math"

	"git.lost.host/meutraa/minigames/internal/config"
	"git.lost.host/meutraa/minigames/internal/game"
)

type DefaultScorer struct {
	Layout Layout

	cfg        config.Rhythm
	judgements []game.Judgement
}

func NewScorer(cfg config.Rhythm, layout Layout) *DefaultScorer {
	return &DefaultScorer{
		Layout:     layout,
		cfg:        cfg,
		judgements: cfg.Judgements(),
	}
}

// Outer is the acceptance radius, anything further is never selected.
func (s *DefaultScorer) Outer() float64 {
	return s.judgements[len(s.judgements)-1].Range
}

func (s *DefaultScorer) Closest(notes []*game.Note, track int) (*game.Note, float64) {
	var closestNote *game.Note
	distance := math.Inf(1)
	center := s.Layout.Center()

	for _, note := range notes {
		if note.Track != track || note.Resolved() {
			continue
		}
		d := math.Abs(note.Y - center)
		if d < distance && d < s.Outer() {
			distance = d
			closestNote = note
		}
	}
	return closestNote, distance
}

func (s *DefaultScorer) Judge(distance float64) (game.Judgement, bool) {
	for _, judgement := range s.judgements {
		if distance < judgement.Range {
			return judgement, true
		}
	}
	return game.Judgement{Quality: game.Miss}, false
}

// Base is the unscaled score for a judged note.
func (s *DefaultScorer) Base(note *game.Note, judgement game.Judgement) int {
	switch judgement.Quality {
	case game.Perfect:
		if s.cfg.LegacySpecialScoring {
			return 0
		}
		if note.Type == game.NoteSpecial {
			return judgement.Score + s.cfg.SpecialBonus
		}
		return judgement.Score
	case game.Good, game.Ok:
		return judgement.Score
	case game.Miss:
		return 0
	}
	return 0
}

func (s *DefaultScorer) Hit(state *game.State, note *game.Note, judgement game.Judgement) int {
	note.Hit = true
	state.Counts[judgement.Quality]++

	state.Combo++
	if state.Combo > state.MaxCombo {
		state.MaxCombo = state.Combo
	}
	points := game.Scaled(s.Base(note, judgement), state.Combo)
	state.Score += points
	state.AddEnergy(judgement.Energy)
	return points
}

func (s *DefaultScorer) Miss(state *game.State, note *game.Note) {
	if note.Missed {
		return
	}
	note.Missed = true
	state.Counts[game.Miss]++
	state.Combo = 0
	state.AddEnergy(-s.cfg.MissEnergy)
}
