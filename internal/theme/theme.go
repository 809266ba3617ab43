package theme

import (
	"image/color"

	"git.lost.host/meutraa/minigames/internal/game"
)

type Theme interface {
	NoteColor(t game.NoteType) color.RGBA
	QualityColor(q game.Quality) color.RGBA
	BlockColor(value int) color.RGBA
	BonusColor() color.RGBA

	// Terminal glyphs, already coloured
	RenderNote(t game.NoteType) string
	RenderQuality(q game.Quality) string
	RenderHitField(track int) string
}
