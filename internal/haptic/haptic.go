package haptic

import (
	"fmt"
	"os"
)

type Tier uint8

const (
	Light Tier = iota
	Medium
	Heavy
)

func (t Tier) String() string {
	switch t {
	case Light:
		return "light"
	case Medium:
		return "medium"
	case Heavy:
		return "heavy"
	}
	return "unknown"
}

// Vibrator is a fire-and-forget haptic sink.
type Vibrator interface {
	Vibrate(tier Tier)
}

type Nop struct{}

func (Nop) Vibrate(Tier) {}

// Bell rings the terminal bell for heavy feedback, a terminal has nothing finer.
type Bell struct{}

func (Bell) Vibrate(tier Tier) {
	if tier == Heavy {
		fmt.Fprint(os.Stdout, "\a")
	}
}

type Recorder struct {
	Tiers []Tier
}

func (r *Recorder) Vibrate(tier Tier) {
	r.Tiers = append(r.Tiers, tier)
}

func (r *Recorder) Count(tier Tier) int {
	n := 0
	for _, t := range r.Tiers {
		if t == tier {
			n++
		}
	}
	return n
}
