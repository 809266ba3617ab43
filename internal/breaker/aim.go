package breaker

import "math"

func (s *Session) acceptsAim() bool {
	return s.phase == Playing && s.aiming
}

func (s *Session) TouchStart(x, y float64) {
	if !s.acceptsAim() {
		return
	}
	s.TouchMove(x, y)
}

// TouchMove points the launcher at the touch, kept within the upper half plane.
func (s *Session) TouchMove(x, y float64) {
	if !s.acceptsAim() {
		return
	}
	s.SetAim(math.Atan2(y-s.shooterY, x-s.shooterX))
}

func (s *Session) SetAim(angle float64) {
	switch {
	case angle > 0:
		angle = s.cfg.MinAngle
	case angle > s.cfg.MaxAngle:
		angle = s.cfg.MaxAngle
	case angle < s.cfg.MinAngle:
		angle = s.cfg.MinAngle
	}
	s.aim = angle
}

// TouchEnd launches the volley, or starts a game from the ready and game over screens.
func (s *Session) TouchEnd() {
	if s.phase != Playing {
		s.Start()
		return
	}
	if !s.aiming {
		return
	}
	s.aiming = false
	s.shooting = true
	s.shootCount = 0
	s.shootDelay = 0
}

// Nudge turns the launcher by delta radians, for keyboard aiming.
func (s *Session) Nudge(delta float64) {
	if !s.acceptsAim() {
		return
	}
	s.SetAim(s.aim + delta)
}
