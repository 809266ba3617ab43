package app

import (
	"github.com/hajimehoshi/ebiten/v2"

	"git.lost.host/meutraa/minigames/internal/input"
	"git.lost.host/meutraa/minigames/internal/render"
)

// Game is one minigame as seen by the frontends.
type Game interface {
	Pointer(ev input.PointerEvent)
	Command(cmd input.Command, r render.Renderer)
	// Back handles escape, false when the game has nowhere to go back to
	Back() bool
	Update()
	Draw(screen *ebiten.Image)
	Print(r render.Renderer)
}
