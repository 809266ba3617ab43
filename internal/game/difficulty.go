package game

import "strings"

type Difficulty uint8

const (
	Easy Difficulty = iota
	Normal
	Hard
)

var Difficulties = [...]Difficulty{Easy, Normal, Hard}

// Profile is the generator tuning for a difficulty tier.
type Profile struct {
	Density    float64
	Complexity float64
	StartBPM   int
}

var profiles = map[Difficulty]Profile{
	Easy:   {Density: 0.4, Complexity: 0.3, StartBPM: 100},
	Normal: {Density: 0.6, Complexity: 0.5, StartBPM: 120},
	Hard:   {Density: 0.8, Complexity: 0.7, StartBPM: 140},
}

func (d Difficulty) Profile() Profile {
	p, ok := profiles[d]
	if !ok {
		return profiles[Normal]
	}
	return p
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Normal:
		return "normal"
	case Hard:
		return "hard"
	}
	return "normal"
}

// ParseDifficulty falls back to Normal for unknown names.
func ParseDifficulty(name string) Difficulty {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "easy":
		return Easy
	case "hard":
		return Hard
	}
	return Normal
}
