package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"git.lost.host/meutraa/minigames/internal/input"
)

// Window runs a game in an ebiten window at a fixed logical size.
type Window struct {
	game          Game
	width, height int
	pointer       input.Pointer
}

func NewWindow(g Game, width, height int) *Window {
	return &Window{game: g, width: width, height: height}
}

func (w *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) && !w.game.Back() {
		return ebiten.Termination
	}
	for _, ev := range w.pointer.Poll() {
		w.game.Pointer(ev)
	}
	w.game.Update()
	return nil
}

func (w *Window) Draw(screen *ebiten.Image) {
	w.game.Draw(screen)
}

func (w *Window) Layout(_, _ int) (int, int) {
	return w.width, w.height
}

// Run opens the window and blocks until it closes.
func (w *Window) Run(title string) error {
	ebiten.SetWindowSize(w.width, w.height)
	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(60)
	return ebiten.RunGame(w)
}
