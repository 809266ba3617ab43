package breaker

import (
	"log"
	"math"
	"math/rand"

	"git.lost.host/meutraa/minigames/internal/config"
	"git.lost.host/meutraa/minigames/internal/haptic"
	"git.lost.host/meutraa/minigames/internal/score"
)

const GameName = "breaker"

type Phase uint8

const (
	Ready Phase = iota
	Playing
	Over
)

type Ball struct {
	X, Y   float64
	VX, VY float64
	First  bool // the first ball of a volley picks the next launch point
}

type Block struct {
	X, Y  float64 // top left corner
	Value int     // hits left
}

type Bonus struct {
	X, Y      float64
	Radius    float64
	Collected bool
}

type Sinks struct {
	Haptic haptic.Vibrator
	Store  score.Store
}

func (s *Sinks) defaults() {
	if s.Haptic == nil {
		s.Haptic = haptic.Nop{}
	}
	if s.Store == nil {
		s.Store = score.NewMemoryStore()
	}
}

type Session struct {
	cfg           config.Breaker
	width, height float64
	shooterY      float64
	perRow        int
	sinks         Sinks
	rng           *rand.Rand

	phase       Phase
	aiming      bool
	shooting    bool
	shootDelay  int
	shootCount  int
	allReturned bool

	balls   []*Ball
	blocks  []*Block
	bonuses []*Bonus

	ballCount  int
	round      int
	score      int
	best       int
	shooterX   float64
	firstBallX float64
	aim        float64
}

func New(cfg config.Breaker, width, height float64, sinks Sinks, rng *rand.Rand) *Session {
	sinks.defaults()
	s := &Session{
		cfg:      cfg,
		width:    width,
		height:   height,
		shooterY: height - cfg.ShooterOffset,
		perRow:   cfg.PerRow(width),
		sinks:    sinks,
		rng:      rng,
	}
	best, err := sinks.Store.Best(GameName)
	if nil != err {
		log.Println("[breaker] unable to read best score:", err)
	}
	s.best = best
	s.reset()
	return s
}

func (s *Session) reset() {
	s.aim = -math.Pi / 2
	s.ballCount = 1
	s.round = 0
	s.score = 0
	s.balls = nil
	s.shooterX = s.width / 2
	s.firstBallX = s.shooterX
	s.allReturned = true
	s.shooting = false
	s.shootCount = 0
	s.shootDelay = 0

	s.blocks = nil
	s.bonuses = nil
	s.addRow()
}

// Start begins a new game from the first row.
func (s *Session) Start() {
	s.phase = Playing
	s.aiming = true
	s.reset()
}

// Update advances one tick: launch the volley, move every ball, close the round.
func (s *Session) Update() {
	if s.phase != Playing {
		return
	}

	if s.shooting && s.allReturned {
		s.shootDelay++
		if s.shootDelay >= s.cfg.ShootInterval && s.shootCount < s.ballCount {
			s.launch()
			s.shootDelay = 0
			s.shootCount++
		}
		if s.shootCount >= s.ballCount {
			s.shooting = false
			s.allReturned = false
		}
	}

	s.updateBalls()

	if !s.allReturned && len(s.balls) == 0 {
		s.allReturned = true
		s.aiming = true
		s.shooterX = s.firstBallX
		s.addRow()
	}
}

func (s *Session) launch() {
	s.balls = append(s.balls, &Ball{
		X:     s.shooterX,
		Y:     s.shooterY,
		VX:    math.Cos(s.aim) * s.cfg.BallSpeed,
		VY:    math.Sin(s.aim) * s.cfg.BallSpeed,
		First: s.shootCount == 0,
	})
}

func (s *Session) award() {
	s.score++
	if s.score > s.best {
		s.best = s.score
		if err := s.sinks.Store.SaveBest(GameName, s.best); nil != err {
			log.Println("[breaker] unable to save best score:", err)
		}
	}
}

func (s *Session) gameOver() {
	s.phase = Over
	s.aiming = false
	s.shooting = false
	s.sinks.Haptic.Vibrate(haptic.Heavy)
}

// ColorIndex buckets block values five at a time into a nine colour palette.
func ColorIndex(value int) int {
	i := value / 5
	if i > 8 {
		return 8
	}
	if i < 0 {
		return 0
	}
	return i
}

func (s *Session) Phase() Phase                { return s.phase }
func (s *Session) Aiming() bool                { return s.aiming }
func (s *Session) Balls() []*Ball              { return s.balls }
func (s *Session) Blocks() []*Block            { return s.blocks }
func (s *Session) Bonuses() []*Bonus           { return s.bonuses }
func (s *Session) Score() int                  { return s.score }
func (s *Session) Best() int                   { return s.best }
func (s *Session) BallCount() int              { return s.ballCount }
func (s *Session) Round() int                  { return s.round }
func (s *Session) Aim() float64                { return s.aim }
func (s *Session) Shooter() (float64, float64) { return s.shooterX, s.shooterY }
func (s *Session) Size() (float64, float64)    { return s.width, s.height }
func (s *Session) Config() config.Breaker      { return s.cfg }
