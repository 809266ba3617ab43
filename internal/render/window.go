package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"git.lost.host/meutraa/minigames/internal/breaker"
	"git.lost.host/meutraa/minigames/internal/game"
	"git.lost.host/meutraa/minigames/internal/rhythm"
	"git.lost.host/meutraa/minigames/internal/theme"
)

var (
	background = color.RGBA{0x1a, 0x1a, 0x2e, 0xff}
	trackLine  = color.RGBA{0x33, 0x33, 0x55, 0xff}
	hitZone    = color.RGBA{0x44, 0x44, 0x88, 0xff}
	buttonFill = color.RGBA{0x2a, 0x2a, 0x4e, 0xff}
	shade      = color.RGBA{0, 0, 0, 0xb0}
)

// Fade scales a colour by alpha. ebiten colours are premultiplied.
func Fade(c color.RGBA, alpha float64) color.RGBA {
	alpha = math.Min(math.Max(alpha, 0), 1)
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}

// DrawRhythmWindow paints a rhythm session in canvas coordinates.
func DrawRhythmWindow(screen *ebiten.Image, th theme.Theme, s *rhythm.Session) {
	screen.Fill(background)
	layout := s.Layout()
	cfg := s.Config()
	now := s.Now()

	for track := 0; track <= layout.Tracks; track++ {
		x := float32(layout.Margin + float64(track)*layout.TrackWidth)
		vector.StrokeLine(screen, x, 0, x, float32(layout.Height), 1, trackLine, false)
	}
	vector.DrawFilledRect(screen,
		float32(layout.Margin), float32(layout.HitZoneY),
		float32(layout.TrackWidth*float64(layout.Tracks)), float32(layout.HitZoneHeight),
		hitZone, false)
	vector.StrokeLine(screen,
		float32(layout.Margin), float32(layout.Center()),
		float32(layout.Width-layout.Margin), float32(layout.Center()),
		2, theme.White, false)

	for _, note := range s.Notes() {
		if note.Resolved() {
			continue
		}
		x := float32(layout.TrackX(note.Track))
		c := th.NoteColor(note.Type)
		switch note.Type {
		case game.NoteLong:
			w := float32(layout.TrackWidth * 0.6)
			vector.DrawFilledRect(screen, x-w/2, float32(note.Y)-20, w, 40, c, true)
		default:
			vector.DrawFilledCircle(screen, x, float32(note.Y), 18, c, true)
		}
	}

	for _, p := range s.Particles() {
		c := Fade(th.NoteColor(p.Type), p.Alpha(now, cfg.ParticleLifetime))
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(p.Size), c, true)
	}
	for _, e := range s.Effects() {
		// DebugPrint has one size, so the growth shows as a ring
		c := Fade(th.QualityColor(e.Quality), e.Alpha(now, cfg.EffectLifetime))
		vector.StrokeCircle(screen, float32(e.X), float32(e.Y), float32(20*e.Scale(now, cfg.EffectLifetime)), 2, c, true)
		label := e.Quality.Label()
		ebitenutil.DebugPrintAt(screen, label, int(e.X)-len(label)*3, int(e.Y)-8)
	}

	state := s.State()
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score %v", state.Score), 10, 10)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Combo %v x%.1f", state.Combo, game.Multiplier(state.Combo)), 10, 26)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("BPM %v %v", state.BPM, state.Difficulty), int(layout.Width)-110, 10)
	drawEnergy(screen, layout.Width, state.Energy)

	switch s.Phase() {
	case rhythm.Menu:
		drawRhythmMenuWindow(screen, s)
	case rhythm.Over:
		drawRhythmOverWindow(screen, s)
	}
}

func drawEnergy(screen *ebiten.Image, width, energy float64) {
	w := float32(width - 20)
	vector.StrokeRect(screen, 10, 44, w, 8, 1, theme.White, false)
	c := color.RGBA{0x00, 0xff, 0x88, 0xff}
	if energy < 30 {
		c = color.RGBA{0xff, 0x44, 0x44, 0xff}
	}
	vector.DrawFilledRect(screen, 10, 44, w*float32(energy/game.MaxEnergy), 8, c, false)
}

func drawRhythmMenuWindow(screen *ebiten.Image, s *rhythm.Session) {
	layout := s.Layout()
	vector.DrawFilledRect(screen, 0, 0, float32(layout.Width), float32(layout.Height), shade, false)
	mid := int(layout.Height / 2)
	center := int(layout.Width / 2)
	ebitenutil.DebugPrintAt(screen, "RHYTHM TAP", center-30, mid-100)
	ebitenutil.DebugPrintAt(screen, "tap the notes on the line", center-75, mid-70)
	for _, b := range s.Buttons() {
		fill := buttonFill
		if b.Difficulty == s.Selected() {
			fill = hitZone
		}
		vector.DrawFilledRect(screen, float32(b.X), float32(b.Y-b.H/2), float32(b.W), float32(b.H), fill, false)
		vector.StrokeRect(screen, float32(b.X), float32(b.Y-b.H/2), float32(b.W), float32(b.H), 1, theme.White, false)
		label := b.Difficulty.String()
		ebitenutil.DebugPrintAt(screen, label, int(b.X+b.W/2)-len(label)*3, int(b.Y)-8)
	}
	ebitenutil.DebugPrintAt(screen, "tap anywhere else to start", center-78, mid+170)
	if best := s.Best(); best > 0 {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Best %v", best), center-30, mid+190)
	}
}

func drawRhythmOverWindow(screen *ebiten.Image, s *rhythm.Session) {
	layout := s.Layout()
	vector.DrawFilledRect(screen, 0, 0, float32(layout.Width), float32(layout.Height), shade, false)
	state := s.State()
	lines := []string{
		"GAME OVER",
		fmt.Sprintf("Score %v", state.Score),
		fmt.Sprintf("Max combo %v", state.MaxCombo),
		fmt.Sprintf("Accuracy %.1f%%", state.Accuracy()),
	}
	for _, q := range game.Qualities {
		lines = append(lines, fmt.Sprintf("%v %v", q, state.Counts[q]))
	}
	lines = append(lines, fmt.Sprintf("Best %v", s.Best()), "", "tap to play again, esc for menu")
	y := int(layout.Height/2) - len(lines)*9
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, int(layout.Width/2)-len(line)*3, y+i*18)
	}
}

// DrawBreakerWindow paints a breaker session in canvas coordinates.
func DrawBreakerWindow(screen *ebiten.Image, th theme.Theme, s *breaker.Session) {
	screen.Fill(background)
	cfg := s.Config()
	w, h := s.Size()

	for _, block := range s.Blocks() {
		size := float32(cfg.BlockSize)
		vector.DrawFilledRect(screen, float32(block.X), float32(block.Y), size, size, th.BlockColor(block.Value), false)
		label := fmt.Sprint(block.Value)
		ebitenutil.DebugPrintAt(screen, label,
			int(block.X+cfg.BlockSize/2)-len(label)*3, int(block.Y+cfg.BlockSize/2)-8)
	}
	for _, bonus := range s.Bonuses() {
		vector.StrokeCircle(screen, float32(bonus.X), float32(bonus.Y), float32(bonus.Radius), 2, th.BonusColor(), true)
		vector.DrawFilledCircle(screen, float32(bonus.X), float32(bonus.Y), float32(bonus.Radius/2), th.BonusColor(), true)
	}

	x, y := s.Shooter()
	if s.Aiming() && s.Phase() == breaker.Playing {
		for i := 1; i <= 12; i++ {
			d := float64(i) * 20
			vector.DrawFilledCircle(screen,
				float32(x+math.Cos(s.Aim())*d), float32(y+math.Sin(s.Aim())*d),
				2, Fade(theme.White, 1-float64(i)/13), true)
		}
	}
	for _, ball := range s.Balls() {
		vector.DrawFilledCircle(screen, float32(ball.X), float32(ball.Y), float32(cfg.BallRadius), theme.White, true)
	}
	vector.DrawFilledCircle(screen, float32(x), float32(y), float32(cfg.BallRadius*2), theme.Gold, true)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score %v  Best %v", s.Score(), s.Best()), 10, 10)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Balls %v  Round %v", s.BallCount(), s.Round()), 10, 26)

	var lines []string
	switch s.Phase() {
	case breaker.Ready:
		lines = []string{"BALL BREAKER", "drag to aim, release to shoot", "tap to start"}
	case breaker.Over:
		lines = []string{"GAME OVER", fmt.Sprintf("Score %v", s.Score()), fmt.Sprintf("Round %v", s.Round()),
			fmt.Sprintf("Best %v", s.Best()), "tap to retry"}
	}
	if len(lines) > 0 {
		vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), shade, false)
		top := int(h/2) - len(lines)*9
		for i, line := range lines {
			ebitenutil.DebugPrintAt(screen, line, int(w/2)-len(line)*3, top+i*18)
		}
	}
}
