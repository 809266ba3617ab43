package theme

import (
	"fmt"
	"image/color"

	"git.lost.host/meutraa/minigames/internal/breaker"
	"git.lost.host/meutraa/minigames/internal/game"
)

type DefaultTheme struct {
}

func (t *DefaultTheme) NoteColor(nt game.NoteType) color.RGBA {
	switch nt {
	case game.NoteNormal:
		return noteColors[0]
	case game.NoteLong:
		return noteColors[1]
	case game.NoteSpecial:
		return noteColors[2]
	}
	return noteColors[0]
}

func (t *DefaultTheme) QualityColor(q game.Quality) color.RGBA {
	switch q {
	case game.Perfect:
		return qualityColors[0]
	case game.Good:
		return qualityColors[1]
	case game.Ok:
		return qualityColors[2]
	case game.Miss:
		return qualityColors[3]
	}
	return White
}

func (t *DefaultTheme) BlockColor(value int) color.RGBA {
	return blockColors[breaker.ColorIndex(value)]
}

func (t *DefaultTheme) BonusColor() color.RGBA {
	return Gold
}

func (t *DefaultTheme) RenderNote(nt game.NoteType) string {
	return ansi(t.NoteColor(nt), noteSyms[nt])
}

func (t *DefaultTheme) RenderQuality(q game.Quality) string {
	return ansi(t.QualityColor(q), q.Label())
}

func (t *DefaultTheme) RenderHitField(track int) string {
	return barSym
}

func ansi(c color.RGBA, s string) string {
	return fmt.Sprintf("\033[38;2;%v;%v;%vm%v\033[0m", c.R, c.G, c.B, s)
}

const (
	barSym = "="
)

var (
	White = color.RGBA{255, 255, 255, 255}
	Gold  = color.RGBA{255, 215, 0, 255}

	noteSyms = map[game.NoteType]string{
		game.NoteNormal:  "⬤",
		game.NoteLong:    "▮",
		game.NoteSpecial: "★",
	}
	noteColors = [...]color.RGBA{
		{0, 217, 255, 255}, // normal cyan
		{255, 0, 255, 255}, // long magenta
		{255, 215, 0, 255}, // special gold
	}
	qualityColors = [...]color.RGBA{
		{255, 215, 0, 255}, // perfect
		{0, 255, 0, 255},   // good
		{255, 165, 0, 255}, // ok
		{255, 0, 0, 255},   // miss
	}
	blockColors = [...]color.RGBA{
		{0x4E, 0xCD, 0xC4, 255},
		{0x45, 0xB7, 0xD1, 255},
		{0x5F, 0x9E, 0xA0, 255},
		{0xFF, 0x6B, 0x6B, 255},
		{0xFF, 0xA0, 0x7A, 255},
		{0xF0, 0x80, 0x80, 255},
		{0xDD, 0xA0, 0xDD, 255},
		{0xDA, 0x70, 0xD6, 255},
		{0xBA, 0x55, 0xD3, 255},
	}
)
