package render

import (
	"fmt"
	"math"
	"strconv"

	"git.lost.host/meutraa/minigames/internal/breaker"
	"git.lost.host/meutraa/minigames/internal/theme"
)

const (
	ballSym    = "o"
	bonusSym   = "+"
	shooterSym = "^"
	aimSym     = "."
)

// DrawBreaker projects a breaker session onto the terminal.
func DrawBreaker(r Renderer, th theme.Theme, s *breaker.Session) {
	cols, rows := r.Size()
	w, h := s.Size()
	g := Grid{Width: w, Height: h, Cols: cols, Rows: rows}
	r.Clear()

	for _, block := range s.Blocks() {
		size := s.Config().BlockSize
		col, row, ok := g.Cell(block.X+size/2, block.Y+size/2)
		if !ok {
			continue
		}
		label := strconv.Itoa(block.Value)
		if int(col) > len(label)/2 {
			col -= uint16(len(label) / 2)
		}
		r.FillColor(row, col, th.BlockColor(block.Value), label)
	}
	for _, bonus := range s.Bonuses() {
		if col, row, ok := g.Cell(bonus.X, bonus.Y); ok {
			r.FillColor(row, col, th.BonusColor(), bonusSym)
		}
	}

	x, y := s.Shooter()
	if s.Aiming() {
		for i := 1; i <= 6; i++ {
			d := float64(i) * 30
			if col, row, ok := g.Cell(x+math.Cos(s.Aim())*d, y+math.Sin(s.Aim())*d); ok {
				r.Fill(row, col, aimSym)
			}
		}
	}
	for _, ball := range s.Balls() {
		if col, row, ok := g.Cell(ball.X, ball.Y); ok {
			r.Fill(row, col, ballSym)
		}
	}
	if col, row, ok := g.Cell(x, y); ok {
		r.Fill(row, col, shooterSym)
	}

	r.Fill(1, 1, fmt.Sprintf("Score %v  Balls %v  Round %v  Best %v", s.Score(), s.BallCount(), s.Round(), s.Best()))

	var message string
	switch s.Phase() {
	case breaker.Ready:
		message = "arrows to aim, space to shoot, enter to start"
	case breaker.Over:
		message = fmt.Sprintf("GAME OVER  score %v  round %v  enter to retry", s.Score(), s.Round())
	}
	if message != "" {
		r.Fill(g.Row(g.Rows/2), g.Centered(len(message)), message)
	}
}
