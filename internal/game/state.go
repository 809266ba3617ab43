package game

const MaxEnergy = 100.0

type State struct {
	Score    int
	Combo    int
	MaxCombo int
	Counts   [len(Qualities)]int
	Energy   float64

	BPM        int
	Difficulty Difficulty
	Playing    bool
	Over       bool
}

// Multiplier grows by half for every ten combo.
func Multiplier(combo int) float64 {
	return 1 + float64(combo/10)*0.5
}

// Scaled applies the combo multiplier to a base score without going through floats.
func Scaled(base, combo int) int {
	return base * (2 + combo/10) / 2
}

func (s *State) Total() int {
	total := 0
	for _, c := range s.Counts {
		total += c
	}
	return total
}

// PerfectRatio is the share of resolved notes judged perfect.
func (s *State) PerfectRatio() float64 {
	total := s.Total()
	if total == 0 {
		return 0
	}
	return float64(s.Counts[Perfect]) / float64(total)
}

// Accuracy is a weighted percentage, 100 for all perfects.
func (s *State) Accuracy() float64 {
	total := s.Total()
	if total == 0 {
		return 0
	}
	weighted := s.Counts[Perfect]*100 + s.Counts[Good]*80 + s.Counts[Ok]*50
	return float64(weighted) / float64(total*100) * 100
}

func (s *State) AddEnergy(delta float64) {
	s.Energy += delta
	if s.Energy > MaxEnergy {
		s.Energy = MaxEnergy
	}
	if s.Energy < 0 {
		s.Energy = 0
	}
}
