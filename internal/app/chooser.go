package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"git.lost.host/meutraa/minigames/internal/input"
	"git.lost.host/meutraa/minigames/internal/render"
	"git.lost.host/meutraa/minigames/internal/theme"
)

// Chooser is a launcher with one half of the screen per game. Once a game
// is picked every call goes to it.
type Chooser struct {
	Games         []Game
	Titles        []string
	Width, Height float64

	current Game
}

func (c *Chooser) Current() Game { return c.current }

// pick returns the game whose band contains y.
func (c *Chooser) pick(y float64) Game {
	if len(c.Games) == 0 {
		return nil
	}
	i := int(y / (c.Height / float64(len(c.Games))))
	if i < 0 || i >= len(c.Games) {
		return nil
	}
	return c.Games[i]
}

func (c *Chooser) Pointer(ev input.PointerEvent) {
	if nil != c.current {
		c.current.Pointer(ev)
		return
	}
	if ev.Kind == input.Release {
		c.current = c.pick(ev.Y)
	}
}

func (c *Chooser) Command(cmd input.Command, r render.Renderer) {
	if nil != c.current {
		c.current.Command(cmd, r)
		return
	}
	if cmd.Action == input.Choose && cmd.Index < len(c.Games) {
		c.current = c.Games[cmd.Index]
	}
}

func (c *Chooser) Back() bool {
	return nil != c.current && c.current.Back()
}

func (c *Chooser) Update() {
	if nil != c.current {
		c.current.Update()
	}
}

func (c *Chooser) Draw(screen *ebiten.Image) {
	if nil != c.current {
		c.current.Draw(screen)
		return
	}
	band := c.Height / float64(len(c.Games))
	for i := range c.Games {
		top := float32(float64(i) * band)
		vector.StrokeRect(screen, 10, top+10, float32(c.Width-20), float32(band-20), 2, theme.White, false)
		if i < len(c.Titles) {
			ebitenutil.DebugPrintAt(screen, c.Titles[i], int(c.Width/2)-len(c.Titles[i])*3, int(float64(top)+band/2)-8)
		}
	}
}

func (c *Chooser) Print(r render.Renderer) {
	if nil != c.current {
		c.current.Print(r)
		return
	}
	r.Clear()
	for i := range c.Games {
		if i < len(c.Titles) {
			r.Fill(uint16(i+1), 1, string(rune('1'+i))+" "+c.Titles[i])
		}
	}
}
