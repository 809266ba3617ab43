package app

import (
	"github.com/hajimehoshi/ebiten/v2"

	"git.lost.host/meutraa/minigames/internal/game"
	"git.lost.host/meutraa/minigames/internal/input"
	"git.lost.host/meutraa/minigames/internal/render"
	"git.lost.host/meutraa/minigames/internal/rhythm"
	"git.lost.host/meutraa/minigames/internal/theme"
)

type Rhythm struct {
	Session *rhythm.Session
	Theme   theme.Theme
	Keys    []rune
}

func (g *Rhythm) Pointer(ev input.PointerEvent) {
	if ev.Kind == input.Press {
		g.Session.Tap(ev.X, ev.Y)
	}
}

// Command taps the centre of the hit line for track keys. r may be nil.
func (g *Rhythm) Command(cmd input.Command, r render.Renderer) {
	s := g.Session
	switch cmd.Action {
	case input.Track:
		if s.Phase() != rhythm.Playing {
			return
		}
		layout := s.Layout()
		s.Tap(layout.TrackX(cmd.Index), layout.Center())
		if nil != r {
			render.FlashTrack(r, s, cmd.Index)
		}
	case input.Choose:
		if cmd.Index < len(game.Difficulties) {
			s.Select(game.Difficulties[cmd.Index])
		}
	case input.Confirm, input.Launch:
		if s.Phase() != rhythm.Playing {
			s.Start(s.Selected())
		}
	}
}

// Back leaves the game over screen for the menu.
func (g *Rhythm) Back() bool {
	if g.Session.Phase() != rhythm.Over {
		return false
	}
	g.Session.Reset()
	return true
}

func (g *Rhythm) Update()                   { g.Session.Update() }
func (g *Rhythm) Draw(screen *ebiten.Image) { render.DrawRhythmWindow(screen, g.Theme, g.Session) }
func (g *Rhythm) Print(r render.Renderer)   { render.DrawRhythm(r, g.Theme, g.Session, g.Keys) }
