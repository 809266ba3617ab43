package breaker

import (
	"math"

	"git.lost.host/meutraa/minigames/internal/haptic"
)

// updateBalls integrates with a single Euler step. Fast balls can tunnel
// through a block corner, there is no substepping.
func (s *Session) updateBalls() {
	r := s.cfg.BallRadius
	for i := len(s.balls) - 1; i >= 0; i-- {
		ball := s.balls[i]

		ball.X += ball.VX
		ball.Y += ball.VY

		if ball.X-r < 0 || ball.X+r > s.width {
			ball.VX = -ball.VX
			ball.X = math.Max(r, math.Min(s.width-r, ball.X))
		}
		if ball.Y-r < 0 {
			ball.VY = -ball.VY
			ball.Y = r
		}

		s.collideBlocks(ball)
		s.collideBonuses(ball)

		if ball.Y > s.shooterY {
			if ball.First {
				s.firstBallX = ball.X
			}
			s.balls = append(s.balls[:i], s.balls[i+1:]...)
		}
	}
}

// collideBlocks resolves at most one block per ball per tick. The bounce axis
// is whichever offset from the block centre dominates.
func (s *Session) collideBlocks(ball *Ball) {
	size := s.cfg.BlockSize
	r := s.cfg.BallRadius

	for i := len(s.blocks) - 1; i >= 0; i-- {
		block := s.blocks[i]
		if !(ball.X+r > block.X &&
			ball.X-r < block.X+size &&
			ball.Y+r > block.Y &&
			ball.Y-r < block.Y+size) {
			continue
		}

		dx := ball.X - (block.X + size/2)
		dy := ball.Y - (block.Y + size/2)
		if math.Abs(dx) > math.Abs(dy) {
			ball.VX = -ball.VX
		} else {
			ball.VY = -ball.VY
		}

		block.Value--
		if block.Value <= 0 {
			s.blocks = append(s.blocks[:i], s.blocks[i+1:]...)
			s.award()
		}
		s.sinks.Haptic.Vibrate(haptic.Light)
		break
	}
}

func (s *Session) collideBonuses(ball *Ball) {
	for i := len(s.bonuses) - 1; i >= 0; i-- {
		bonus := s.bonuses[i]
		if bonus.Collected {
			continue
		}
		if math.Hypot(ball.X-bonus.X, ball.Y-bonus.Y) < s.cfg.BallRadius+bonus.Radius {
			bonus.Collected = true
			s.ballCount++
			s.bonuses = append(s.bonuses[:i], s.bonuses[i+1:]...)
			s.sinks.Haptic.Vibrate(haptic.Medium)
		}
	}
}
