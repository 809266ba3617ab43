package haptic

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Ebiten vibrates the device through ebiten, a no-op on desktops.
type Ebiten struct{}

func (Ebiten) Vibrate(tier Tier) {
	ebiten.Vibrate(Options(tier))
}

func Options(tier Tier) *ebiten.VibrateOptions {
	switch tier {
	case Light:
		return &ebiten.VibrateOptions{Duration: 15 * time.Millisecond, Magnitude: 0.3}
	case Medium:
		return &ebiten.VibrateOptions{Duration: 25 * time.Millisecond, Magnitude: 0.6}
	case Heavy:
		return &ebiten.VibrateOptions{Duration: 40 * time.Millisecond, Magnitude: 1}
	}
	return &ebiten.VibrateOptions{}
}
