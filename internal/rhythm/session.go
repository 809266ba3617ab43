package rhythm

import (
	"log"
	"math/rand"
	"time"

	"git.lost.host/meutraa/minigames/internal/audio"
	"git.lost.host/meutraa/minigames/internal/config"
	"git.lost.host/meutraa/minigames/internal/game"
	"git.lost.host/meutraa/minigames/internal/haptic"
	"git.lost.host/meutraa/minigames/internal/pattern"
	"git.lost.host/meutraa/minigames/internal/schedule"
	"git.lost.host/meutraa/minigames/internal/score"
)

const GameName = "rhythm"

type Phase uint8

const (
	Menu Phase = iota
	Playing
	Over
)

// Sinks are the collaborators a session reports to. Nil members are replaced
// with silent defaults.
type Sinks struct {
	Audio  audio.Player
	Haptic haptic.Vibrator
	Store  score.Store
}

func (s *Sinks) defaults() {
	if s.Audio == nil {
		s.Audio = audio.Mute{}
	}
	if s.Haptic == nil {
		s.Haptic = haptic.Nop{}
	}
	if s.Store == nil {
		s.Store = score.NewMemoryStore()
	}
}

type Session struct {
	cfg    config.Rhythm
	layout score.Layout
	scorer score.Scorer
	sinks  Sinks
	rng    *rand.Rand

	phase     Phase
	selected  game.Difficulty
	state     game.State
	best      int
	generator pattern.Generator
	chart     []game.Bar // replaces generated bars when set
	chartBPM  int
	queue     schedule.Queue

	now          time.Duration // game time of the current round
	nextNoteTime time.Duration

	notes     []*game.Note
	effects   []*Effect
	particles []*Particle
}

func New(cfg config.Rhythm, width, height float64, sinks Sinks, rng *rand.Rand) *Session {
	sinks.defaults()
	layout := score.NewLayout(cfg, width, height)
	s := &Session{
		cfg:      cfg,
		layout:   layout,
		scorer:   score.NewScorer(cfg, layout),
		sinks:    sinks,
		rng:      rng,
		selected: game.Normal,
	}
	s.state.Difficulty = game.Normal
	s.state.BPM = game.Normal.Profile().StartBPM

	best, err := sinks.Store.Best(GameName)
	if nil != err {
		log.Println("[rhythm] unable to read best score:", err)
	}
	s.best = best
	return s
}

// Start begins a fresh round. Anything still queued from an earlier round is dropped.
func (s *Session) Start(d game.Difficulty) {
	s.selected = d
	profile := d.Profile()
	if len(s.chart) > 0 {
		s.generator = pattern.NewChartGenerator(s.chart, s.chartBPM, s.cfg.Adaptation)
	} else {
		s.generator = pattern.NewGenerator(profile.StartBPM, d, s.cfg.Tracks, s.cfg.Adaptation, s.rng)
	}
	s.state = game.State{
		Energy:     s.cfg.StartEnergy,
		BPM:        s.generator.BPM(),
		Difficulty: d,
		Playing:    true,
	}
	s.phase = Playing
	s.queue.Clear()
	s.now = 0
	s.nextNoteTime = s.cfg.FirstSpawn
	s.notes = nil
	s.effects = nil
	s.particles = nil
}

// UseChart plays authored bars from the next start on.
func (s *Session) UseChart(bars []game.Bar, bpm int) {
	s.chart = bars
	s.chartBPM = bpm
}

// Reset returns to the start screen.
func (s *Session) Reset() {
	s.queue.Clear()
	s.phase = Menu
	s.state.Playing = false
	s.state.Over = false
	s.notes = nil
	s.effects = nil
	s.particles = nil
}

// Update advances the round by one tick.
func (s *Session) Update() {
	if s.phase != Playing {
		return
	}
	s.now += config.Tick

	s.spawn()
	s.queue.Drain(s.now)
	s.updateNotes()
	s.updateParticles()
	s.updateEffects()

	if s.state.Energy <= 0 {
		s.gameOver()
		return
	}
	s.state.AddEnergy(s.cfg.EnergyRegen)
}

func (s *Session) updateNotes() {
	missLine := s.layout.HitZoneY + s.layout.HitZoneHeight + s.cfg.MissOvershoot
	kept := s.notes[:0]
	for _, note := range s.notes {
		if note.Hit {
			continue
		}
		note.Y += s.cfg.NoteSpeed

		if note.Y > missLine && !note.Missed {
			s.scorer.Miss(&s.state, note)
			s.effects = append(s.effects, &Effect{
				X:       s.layout.TrackX(note.Track),
				Y:       s.layout.Center(),
				Quality: game.Miss,
				Born:    s.now,
			})
			s.sinks.Haptic.Vibrate(haptic.Heavy)
		}

		if note.Y > s.layout.Height+100 {
			continue
		}
		kept = append(kept, note)
	}
	for i := len(kept); i < len(s.notes); i++ {
		s.notes[i] = nil
	}
	s.notes = kept
}

func (s *Session) updateParticles() {
	kept := s.particles[:0]
	for _, p := range s.particles {
		p.X += p.VX
		p.Y += p.VY
		p.VY += s.cfg.Gravity
		if s.now-p.Born > s.cfg.ParticleLifetime {
			continue
		}
		kept = append(kept, p)
	}
	s.particles = kept
}

func (s *Session) updateEffects() {
	kept := s.effects[:0]
	for _, e := range s.effects {
		if s.now-e.Born > s.cfg.EffectLifetime {
			continue
		}
		kept = append(kept, e)
	}
	s.effects = kept
}

// Tap routes a touch. While playing it judges the nearest note on the tapped track;
// a tap that finds nothing changes nothing.
func (s *Session) Tap(x, y float64) {
	switch s.phase {
	case Menu:
		s.menuTap(x, y)
		return
	case Over:
		s.Start(s.selected)
		return
	case Playing:
	}

	track := s.layout.Track(x)
	if track < 0 {
		return
	}
	note, distance := s.scorer.Closest(s.notes, track)
	if note == nil {
		return
	}
	judgement, ok := s.scorer.Judge(distance)
	if !ok {
		return
	}

	before := s.state.Score
	s.scorer.Hit(&s.state, note, judgement)

	trackX := s.layout.TrackX(track)
	s.effects = append(s.effects, &Effect{X: trackX, Y: note.Y, Quality: judgement.Quality, Born: s.now})
	s.particles = append(s.particles, burst(trackX, note.Y, s.cfg.ParticleCount, note.Type, s.now, s.rng)...)
	s.hitTone(track, judgement.Quality)
	if judgement.Quality == game.Perfect {
		s.sinks.Haptic.Vibrate(haptic.Medium)
	} else {
		s.sinks.Haptic.Vibrate(haptic.Light)
	}

	s.adapt(before)
}

// adapt runs the tempo control loop whenever the score crosses a milestone.
func (s *Session) adapt(before int) {
	m := s.cfg.Adaptation.Milestone
	if s.state.Score/m <= before/m {
		return
	}
	s.generator.Adapt(s.state.PerfectRatio())
	s.state.BPM = s.generator.BPM()
}

func (s *Session) gameOver() {
	s.phase = Over
	s.state.Playing = false
	s.state.Over = true
	s.queue.Clear()
	s.sinks.Haptic.Vibrate(haptic.Heavy)

	if s.state.Score > s.best {
		s.best = s.state.Score
		if err := s.sinks.Store.SaveBest(GameName, s.best); nil != err {
			log.Println("[rhythm] unable to save best score:", err)
		}
	}
}

func (s *Session) Phase() Phase              { return s.phase }
func (s *Session) State() game.State         { return s.state }
func (s *Session) Best() int                 { return s.best }
func (s *Session) Selected() game.Difficulty { return s.selected }
func (s *Session) Layout() score.Layout      { return s.layout }
func (s *Session) Config() config.Rhythm     { return s.cfg }
func (s *Session) Now() time.Duration        { return s.now }
func (s *Session) Notes() []*game.Note       { return s.notes }
func (s *Session) Effects() []*Effect        { return s.effects }
func (s *Session) Particles() []*Particle    { return s.particles }
