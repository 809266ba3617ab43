package breaker

import (
	"math"
	"math/rand"
	"testing"

	"git.lost.host/meutraa/minigames/internal/config"
	"git.lost.host/meutraa/minigames/internal/haptic"
	"git.lost.host/meutraa/minigames/internal/score"
)

type fixture struct {
	session *Session
	haptic  *haptic.Recorder
	store   *score.MemoryStore
}

// newFixture returns a running game with an empty board.
func newFixture() *fixture {
	f := &fixture{haptic: &haptic.Recorder{}, store: score.NewMemoryStore()}
	f.session = New(config.DefaultBreaker(), 375, 667, Sinks{Haptic: f.haptic, Store: f.store}, rand.New(rand.NewSource(7)))
	f.session.Start()
	f.session.blocks = nil
	f.session.bonuses = nil
	return f
}

// inFlight puts balls in the air as if a volley had been launched.
func (f *fixture) inFlight(balls ...*Ball) {
	f.session.balls = append(f.session.balls, balls...)
	f.session.aiming = false
	f.session.allReturned = false
}

func TestWallReflection(t *testing.T) {
	f := newFixture()
	s := f.session
	r := s.cfg.BallRadius
	left := &Ball{X: r - 1, Y: 300, VX: -1}
	right := &Ball{X: 375 - r + 1, Y: 300, VX: 1}
	f.inFlight(left, right)

	s.Update()

	if left.VX <= 0 || left.X != r {
		t.Log("left", left)
		t.Fail()
	}
	if right.VX >= 0 || right.X != 375-r {
		t.Log("right", right)
		t.Fail()
	}
}

func TestCeilingReflection(t *testing.T) {
	f := newFixture()
	s := f.session
	ball := &Ball{X: 100, Y: s.cfg.BallRadius + 1, VY: -3}
	f.inFlight(ball)

	s.Update()

	if ball.VY != 3 || ball.Y != s.cfg.BallRadius {
		t.Log("ball", ball)
		t.Fail()
	}
}

func TestBlockDestroyed(t *testing.T) {
	f := newFixture()
	s := f.session
	s.blocks = []*Block{{X: 100, Y: 100, Value: 1}}
	ball := &Ball{X: 130, Y: 165, VY: -2}
	f.inFlight(ball)

	s.Update()

	if len(s.Blocks()) != 0 || s.Score() != 1 {
		t.Log("blocks", s.Blocks())
		t.Log("score ", s.Score())
		t.FailNow()
	}
	if ball.VY != 2 {
		t.Errorf("hit from below must bounce down, vy = %v", ball.VY)
	}
	if best, _ := f.store.Best(GameName); best != 1 {
		t.Errorf("best = %v, want 1", best)
	}
	if f.haptic.Count(haptic.Light) != 1 {
		t.Errorf("haptics = %v", f.haptic.Tiers)
	}
}

func TestSideHitReflectsHorizontally(t *testing.T) {
	f := newFixture()
	s := f.session
	s.blocks = []*Block{{X: 100, Y: 100, Value: 3}}
	ball := &Ball{X: 92, Y: 128, VX: 4}
	f.inFlight(ball)

	s.Update()

	if ball.VX != -4 || ball.VY != 0 {
		t.Log("ball", ball)
		t.Fail()
	}
	if s.Blocks()[0].Value != 2 || s.Score() != 0 {
		t.Log("block", s.Blocks()[0])
		t.Fail()
	}
}

func TestOneCollisionPerTick(t *testing.T) {
	f := newFixture()
	s := f.session
	a := &Block{X: 100, Y: 100, Value: 5}
	b := &Block{X: 100, Y: 165, Value: 5}
	s.blocks = []*Block{a, b}
	// straddles the gap between the two blocks
	f.inFlight(&Ball{X: 130, Y: 162, VY: 0.5})

	s.Update()

	if a.Value+b.Value != 9 {
		t.Log("a", a, "b", b)
		t.Fail()
	}
}

func TestBonusCollectedOnce(t *testing.T) {
	f := newFixture()
	s := f.session
	bonus := &Bonus{X: 200, Y: 200, Radius: s.cfg.BonusRadius}
	s.bonuses = []*Bonus{bonus}
	f.inFlight(&Ball{X: 198, Y: 200}, &Ball{X: 202, Y: 201}, &Ball{X: 200, Y: 195})

	s.Update()

	if !bonus.Collected || s.BallCount() != 2 || len(s.Bonuses()) != 0 {
		t.Log("bonus", bonus)
		t.Log("balls", s.BallCount())
		t.Fail()
	}
	if f.haptic.Count(haptic.Medium) != 1 {
		t.Errorf("haptics = %v", f.haptic.Tiers)
	}

	// the extra ball carries into later rounds
	s.balls = nil
	s.Update()
	if s.BallCount() != 2 {
		t.Errorf("ball count after round = %v", s.BallCount())
	}
}

func TestBonusMissedOutsideRadius(t *testing.T) {
	f := newFixture()
	s := f.session
	s.bonuses = []*Bonus{{X: 200, Y: 200, Radius: s.cfg.BonusRadius}}
	f.inFlight(&Ball{X: 200 + s.cfg.BallRadius + s.cfg.BonusRadius, Y: 200})

	s.Update()

	if s.BallCount() != 1 || len(s.Bonuses()) != 1 {
		t.Error("bonus collected at touching distance")
	}
}

func TestRoundEnd(t *testing.T) {
	f := newFixture()
	s := f.session
	s.blocks = []*Block{{X: 10, Y: 20, Value: 4}}
	f.inFlight(
		&Ball{X: 220, Y: s.shooterY - 1, VY: 4, First: true},
		&Ball{X: 80, Y: 300, VY: 4},
	)
	round := s.Round()

	s.Update()
	if s.Round() != round || len(s.Balls()) != 1 {
		t.Fatalf("round closed with a ball still in flight")
	}
	if x, _ := s.Shooter(); x != 375.0/2 {
		t.Errorf("shooter moved before the round ended: %v", x)
	}

	s.balls[0].Y = s.shooterY - 1
	s.Update()

	if s.Round() != round+1 {
		t.Fatalf("round = %v, want %v", s.Round(), round+1)
	}
	if x, _ := s.Shooter(); x != 220 {
		t.Errorf("shooter x = %v, want the first ball's 220", x)
	}
	if s.Blocks()[0].Y != 85 {
		t.Errorf("old block y = %v, want 85", s.Blocks()[0].Y)
	}
	if !s.Aiming() {
		t.Error("aiming must resume after the round")
	}

	for i := 0; i < 10; i++ {
		s.Update()
	}
	if s.Round() != round+1 {
		t.Errorf("idle ticks added rows: round = %v", s.Round())
	}
}

func TestNewRow(t *testing.T) {
	for seed := int64(0); seed < 30; seed++ {
		s := New(config.DefaultBreaker(), 375, 667, Sinks{}, rand.New(rand.NewSource(seed)))
		s.Start()
		entries := len(s.Blocks()) + len(s.Bonuses())
		if entries < 3 || entries > s.perRow {
			t.Errorf("seed %v: %v entries in a row of %v", seed, entries, s.perRow)
		}
		seen := map[float64]bool{}
		for _, b := range s.Blocks() {
			if b.Value != 1 || b.Y != s.cfg.RowTop || seen[b.X] {
				t.Errorf("seed %v: block %v", seed, b)
			}
			seen[b.X] = true
		}
		for _, b := range s.Bonuses() {
			if seen[b.X-s.cfg.BlockSize/2] {
				t.Errorf("seed %v: bonus shares a cell", seed)
			}
			seen[b.X-s.cfg.BlockSize/2] = true
		}
	}
}

func TestGameOver(t *testing.T) {
	f := newFixture()
	s := f.session
	// shoot line 587, blocks may not pass 567 once moved down by 65
	s.blocks = []*Block{{X: 10, Y: 450, Value: 2}}
	f.inFlight(&Ball{X: 200, Y: s.shooterY - 1, VY: 4, First: true})

	s.Update()

	if s.Phase() != Over || s.Aiming() {
		t.Fatalf("phase = %v", s.Phase())
	}
	if f.haptic.Count(haptic.Heavy) != 1 {
		t.Errorf("haptics = %v", f.haptic.Tiers)
	}

	s.TouchEnd()
	if s.Phase() != Playing || s.Round() != 1 || s.Score() != 0 || s.BallCount() != 1 {
		t.Errorf("restart: phase %v round %v score %v", s.Phase(), s.Round(), s.Score())
	}
}

func TestVolley(t *testing.T) {
	f := newFixture()
	s := f.session
	s.ballCount = 3

	s.TouchMove(s.shooterX, 0)
	s.TouchEnd()
	if s.Aiming() {
		t.Fatal("still aiming after release")
	}
	for i := 0; i < 9; i++ {
		s.Update()
	}

	if len(s.Balls()) != 3 {
		t.Fatalf("launched %v balls, want 3", len(s.Balls()))
	}
	first := 0
	for _, b := range s.Balls() {
		if b.First {
			first++
		}
		if math.Abs(math.Hypot(b.VX, b.VY)-s.cfg.BallSpeed) > 1e-9 {
			t.Errorf("ball speed = %v", math.Hypot(b.VX, b.VY))
		}
	}
	if first != 1 {
		t.Errorf("%v balls flagged first", first)
	}
	// touches during the volley are ignored
	aim := s.Aim()
	s.TouchMove(0, 0)
	if s.Aim() != aim {
		t.Error("aim changed mid volley")
	}
}

func TestAimClamp(t *testing.T) {
	f := newFixture()
	s := f.session
	x, y := s.Shooter()

	s.TouchMove(x+100, y+50) // below the launcher
	if s.Aim() != s.cfg.MinAngle {
		t.Errorf("aim below = %v, want %v", s.Aim(), s.cfg.MinAngle)
	}
	s.TouchMove(x+100, y-1) // almost level to the right
	if s.Aim() != s.cfg.MaxAngle {
		t.Errorf("aim right = %v, want %v", s.Aim(), s.cfg.MaxAngle)
	}
	s.TouchMove(x-100, y-1) // almost level to the left
	if s.Aim() != s.cfg.MinAngle {
		t.Errorf("aim left = %v, want %v", s.Aim(), s.cfg.MinAngle)
	}
	s.TouchMove(x, y-100)
	if math.Abs(s.Aim()+math.Pi/2) > 1e-9 {
		t.Errorf("aim up = %v", s.Aim())
	}
}

func TestReadyUntilTouched(t *testing.T) {
	s := New(config.DefaultBreaker(), 375, 667, Sinks{}, rand.New(rand.NewSource(1)))
	if s.Phase() != Ready {
		t.Fatal("new session must wait on the ready screen")
	}
	s.TouchMove(0, 0)
	s.Update()
	if s.Aim() != -math.Pi/2 {
		t.Error("ready screen accepted aim")
	}
	s.TouchEnd()
	if s.Phase() != Playing || !s.Aiming() {
		t.Error("touch did not start the game")
	}
}

var colorTests = map[int]int{0: 0, 1: 0, 4: 0, 5: 1, 12: 2, 44: 8, 45: 8, 500: 8}

func TestColorIndex(t *testing.T) {
	for value, expected := range colorTests {
		if i := ColorIndex(value); i != expected {
			t.Errorf("ColorIndex(%v) = %v, want %v", value, i, expected)
		}
	}
}

func TestNudge(t *testing.T) {
	f := newFixture()
	s := f.session
	s.Nudge(0.1)
	if math.Abs(s.Aim()-(-math.Pi/2+0.1)) > 1e-9 {
		t.Errorf("aim = %v", s.Aim())
	}
	for i := 0; i < 100; i++ {
		s.Nudge(0.1)
	}
	if s.Aim() != s.cfg.MaxAngle {
		t.Errorf("aim = %v, want %v", s.Aim(), s.cfg.MaxAngle)
	}
	s.TouchEnd()
	s.Nudge(-1)
	if s.Aim() != s.cfg.MaxAngle {
		t.Error("nudge mid volley")
	}
}
