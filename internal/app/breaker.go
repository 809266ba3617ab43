package app

import (
	"github.com/hajimehoshi/ebiten/v2"

	"git.lost.host/meutraa/minigames/internal/breaker"
	"git.lost.host/meutraa/minigames/internal/input"
	"git.lost.host/meutraa/minigames/internal/render"
	"git.lost.host/meutraa/minigames/internal/theme"
)

// AimStep is how far one arrow key press turns the launcher, in radians.
const AimStep = 0.05

type Breaker struct {
	Session *breaker.Session
	Theme   theme.Theme
}

func (g *Breaker) Pointer(ev input.PointerEvent) {
	switch ev.Kind {
	case input.Press:
		g.Session.TouchStart(ev.X, ev.Y)
	case input.Move:
		g.Session.TouchMove(ev.X, ev.Y)
	case input.Release:
		g.Session.TouchEnd()
	}
}

func (g *Breaker) Command(cmd input.Command, _ render.Renderer) {
	s := g.Session
	switch cmd.Action {
	case input.AimLeft:
		s.Nudge(-AimStep)
	case input.AimRight:
		s.Nudge(AimStep)
	case input.Launch:
		if s.Phase() == breaker.Playing {
			s.TouchEnd()
		}
	case input.Confirm:
		if s.Phase() != breaker.Playing {
			s.TouchEnd()
		}
	}
}

func (g *Breaker) Back() bool { return false }

func (g *Breaker) Update()                   { g.Session.Update() }
func (g *Breaker) Draw(screen *ebiten.Image) { render.DrawBreakerWindow(screen, g.Theme, g.Session) }
func (g *Breaker) Print(r render.Renderer)   { render.DrawBreaker(r, g.Theme, g.Session) }
