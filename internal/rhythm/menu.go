package rhythm

import (
	"git.lost.host/meutraa/minigames/internal/game"
	"git.lost.host/meutraa/minigames/internal/haptic"
)

// Button is a difficulty choice on the start screen.
type Button struct {
	Difficulty game.Difficulty
	X, Y, W, H float64 // Y is the vertical centre
}

func (b Button) Contains(x, y float64) bool {
	return x >= b.X && x <= b.X+b.W && y >= b.Y-b.H/2 && y <= b.Y+b.H/2
}

func (s *Session) Buttons() []Button {
	w, h := s.layout.Width, s.layout.Height
	buttons := make([]Button, 0, len(game.Difficulties))
	for i, d := range game.Difficulties {
		buttons = append(buttons, Button{
			Difficulty: d,
			X:          w/2 - 80,
			Y:          h/2 + 30 + float64(i)*40,
			W:          160,
			H:          30,
		})
	}
	return buttons
}

// menuTap selects a difficulty, or starts when the tap is clear of the menu block.
func (s *Session) menuTap(x, y float64) {
	for _, b := range s.Buttons() {
		if b.Contains(x, y) {
			s.selected = b.Difficulty
			s.state.Difficulty = b.Difficulty
			s.sinks.Haptic.Vibrate(haptic.Light)
		}
	}
	h := s.layout.Height
	if y < h/2-40 || y > h/2+150 {
		s.Start(s.selected)
	}
}

// Select changes the menu choice without starting.
func (s *Session) Select(d game.Difficulty) {
	if s.phase != Menu {
		return
	}
	s.selected = d
	s.state.Difficulty = d
}
