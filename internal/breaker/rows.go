package breaker

// addRow starts a round: everything moves down one row, then a fresh row of
// blocks and bonus balls fills the top. The game is lost if a block reaches
// the shoot line.
func (s *Session) addRow() {
	s.round++

	step := s.cfg.BlockSize + s.cfg.BlockPadding
	for _, block := range s.blocks {
		block.Y += step
	}
	for _, bonus := range s.bonuses {
		bonus.Y += step
	}

	bottom := s.shooterY - s.cfg.LossMargin
	for _, block := range s.blocks {
		if block.Y+s.cfg.BlockSize > bottom {
			s.gameOver()
			return
		}
	}

	positions := make([]int, s.perRow)
	for i := range positions {
		positions[i] = i
	}
	count := s.cfg.RowMin + s.rng.Intn(s.cfg.RowMax-s.cfg.RowMin+1)

	for i := 0; i < count && len(positions) > 0; i++ {
		idx := s.rng.Intn(len(positions))
		pos := positions[idx]
		positions = append(positions[:idx], positions[idx+1:]...)

		x := s.cfg.Margin + float64(pos)*step
		y := s.cfg.RowTop
		if s.rng.Float64() < s.cfg.BonusChance {
			s.bonuses = append(s.bonuses, &Bonus{
				X:      x + s.cfg.BlockSize/2,
				Y:      y + s.cfg.BlockSize/2,
				Radius: s.cfg.BonusRadius,
			})
			continue
		}
		s.blocks = append(s.blocks, &Block{X: x, Y: y, Value: s.round})
	}
}
