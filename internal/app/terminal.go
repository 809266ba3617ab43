package app

import (
	"time"

	"github.com/eiannone/keyboard"

	"git.lost.host/meutraa/minigames/internal/config"
	"git.lost.host/meutraa/minigames/internal/input"
	"git.lost.host/meutraa/minigames/internal/render"
)

// maxCatchUp bounds how many ticks one frame may run after a stall.
const maxCatchUp = 10

// Terminal drives a game from keyboard events with a fixed tick, drawing
// at whatever frame period the renderer loop runs at.
type Terminal struct {
	Game      Game
	Renderer  render.Renderer
	Keys      <-chan keyboard.KeyEvent
	KeyColumn func(rune) int

	ticks int64
}

// Run blocks until quit is pressed or the key channel closes.
func (t *Terminal) Run(period time.Duration) error {
	if err := t.Renderer.Init(); nil != err {
		return err
	}
	defer t.Renderer.Deinit()

	t.Renderer.RenderLoop(period, func(_ time.Time, duration time.Duration) bool {
		if !t.Frame(duration) {
			return false
		}
		t.Game.Print(t.Renderer)
		return true
	})
	return nil
}

// Frame handles pending keys and catches the game up to elapsed.
func (t *Terminal) Frame(elapsed time.Duration) bool {
	for {
		select {
		case ev, ok := <-t.Keys:
			if !ok {
				return false
			}
			if nil != ev.Err {
				continue
			}
			cmd := input.Translate(ev, t.KeyColumn)
			if cmd.Action == input.Quit {
				if t.Game.Back() {
					continue
				}
				return false
			}
			t.Game.Command(cmd, t.Renderer)
			continue
		default:
		}
		break
	}

	due := int64(elapsed / config.Tick)
	if due-t.ticks > maxCatchUp {
		t.ticks = due - maxCatchUp
	}
	for ; t.ticks < due; t.ticks++ {
		t.Game.Update()
	}
	return true
}
