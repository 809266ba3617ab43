package render

import (
	"fmt"
	"strings"

	"git.lost.host/meutraa/minigames/internal/game"
	"git.lost.host/meutraa/minigames/internal/rhythm"
	"git.lost.host/meutraa/minigames/internal/theme"
)

// DrawRhythm projects a rhythm session onto the terminal. Rows above the
// canvas are used for the heads-up display.
func DrawRhythm(r Renderer, th theme.Theme, s *rhythm.Session, keys []rune) {
	cols, rows := r.Size()
	layout := s.Layout()
	g := Grid{Width: layout.Width, Height: layout.Height, Cols: cols, Rows: rows}
	r.Clear()

	switch s.Phase() {
	case rhythm.Menu:
		drawRhythmMenu(r, g, s, keys)
		return
	case rhythm.Over:
		drawRhythmOver(r, g, s)
		return
	}

	for track := 0; track < layout.Tracks; track++ {
		x := layout.TrackX(track)
		if col, row, ok := g.Cell(x, layout.Center()); ok {
			r.Fill(row, col, th.RenderHitField(track))
			if track < len(keys) && int(row) < g.Rows {
				r.Fill(row+1, col, string(keys[track]))
			}
		}
	}

	for _, note := range s.Notes() {
		if note.Resolved() {
			continue
		}
		if col, row, ok := g.Cell(layout.TrackX(note.Track), note.Y); ok {
			r.Fill(row, col, th.RenderNote(note.Type))
		}
	}

	for _, e := range s.Effects() {
		label := e.Quality.Label()
		if col, row, ok := g.Cell(e.X, e.Y); ok {
			if int(col) > len(label)/2 {
				col -= uint16(len(label) / 2)
			}
			r.Fill(row, col, th.RenderQuality(e.Quality))
		}
	}

	state := s.State()
	r.Fill(1, 1, fmt.Sprintf("Score %v  Combo %v  x%.1f", state.Score, state.Combo, game.Multiplier(state.Combo)))
	r.Fill(2, 1, fmt.Sprintf("BPM %v  %v  Best %v", state.BPM, state.Difficulty, s.Best()))
	r.Fill(3, 1, EnergyBar(state.Energy, 20))
}

// EnergyBar renders energy as a fixed width gauge.
func EnergyBar(energy float64, width int) string {
	filled := int(energy / game.MaxEnergy * float64(width))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

func drawRhythmMenu(r Renderer, g Grid, s *rhythm.Session, keys []rune) {
	mid := g.Rows / 2
	title := "RHYTHM TAP"
	r.Fill(g.Row(mid-3), g.Centered(len(title)), title)
	for i, d := range game.Difficulties {
		line := fmt.Sprintf("  %v %v  ", i+1, d)
		if d == s.Selected() {
			line = fmt.Sprintf("> %v %v <", i+1, d)
		}
		r.Fill(g.Row(mid+i), g.Centered(len(line)), line)
	}
	hint := fmt.Sprintf("enter to start, %v to tap, esc to quit", string(keys))
	r.Fill(g.Row(mid+4), g.Centered(len(hint)), hint)
	if best := s.Best(); best > 0 {
		line := fmt.Sprintf("Best %v", best)
		r.Fill(g.Row(mid+6), g.Centered(len(line)), line)
	}
}

func drawRhythmOver(r Renderer, g Grid, s *rhythm.Session) {
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
	lines = append(lines, fmt.Sprintf("Best %v", s.Best()), "", "enter to play again, esc for menu")
	top := g.Rows/2 - len(lines)/2
	for i, line := range lines {
		r.Fill(g.Row(top+i), g.Centered(len(line)), line)
	}
}

// FlashTrack marks a key press on the hit field for a few frames.
func FlashTrack(r Renderer, s *rhythm.Session, track int) {
	cols, rows := r.Size()
	layout := s.Layout()
	g := Grid{Width: layout.Width, Height: layout.Height, Cols: cols, Rows: rows}
	if col, row, ok := g.Cell(layout.TrackX(track), layout.Center()); ok {
		r.AddDecoration(col, row, "#", 3)
	}
}
