package config

import (
	"fmt"
	"math"
	"os"
	"time"

	"git.lost.host/meutraa/minigames/internal/game"
	"gopkg.in/yaml.v3"
)

// Tick is the fixed game-time step of a single update.
const Tick = time.Second / 60

// Adaptation is the BPM control loop tuning applied at every score milestone.
type Adaptation struct {
	Milestone int     `yaml:"milestone"` // score interval between adaptations
	High      float64 `yaml:"high"`      // perfect ratio above which the tempo rises
	Low       float64 `yaml:"low"`       // perfect ratio below which the tempo drops
	Step      int     `yaml:"step"`
	MaxBPM    int     `yaml:"maxBPM"`
	MinBPM    int     `yaml:"minBPM"`
}

type Rhythm struct {
	Tracks        int     `yaml:"tracks"`
	Margin        float64 `yaml:"margin"`        // left/right gutter of the track area
	HitZoneOffset float64 `yaml:"hitZoneOffset"` // distance of the hit zone top from the bottom edge
	HitZoneHeight float64 `yaml:"hitZoneHeight"`
	NoteSpeed     float64 `yaml:"noteSpeed"` // pixels per tick
	SpawnY        float64 `yaml:"spawnY"`
	MissOvershoot float64 `yaml:"missOvershoot"` // how far below the hit zone a note counts as missed

	Perfect game.Judgement `yaml:"perfect"`
	Good    game.Judgement `yaml:"good"`
	Ok      game.Judgement `yaml:"ok"`

	MissEnergy   float64 `yaml:"missEnergy"`
	StartEnergy  float64 `yaml:"startEnergy"`
	EnergyRegen  float64 `yaml:"energyRegen"` // per tick
	SpecialBonus int     `yaml:"specialBonus"`
	// LegacySpecialScoring restores the old scoring expression, which
	// never awarded points for a perfect hit.
	LegacySpecialScoring bool `yaml:"legacySpecialScoring"`

	FirstSpawn       time.Duration `yaml:"firstSpawn"`
	EffectLifetime   time.Duration `yaml:"effectLifetime"`
	ParticleLifetime time.Duration `yaml:"particleLifetime"`
	ParticleCount    int           `yaml:"particleCount"`
	Gravity          float64       `yaml:"gravity"`

	Adaptation Adaptation `yaml:"adaptation"`
}

// Judgements returns the tiers from strictest to loosest.
func (r *Rhythm) Judgements() []game.Judgement {
	p, g, o := r.Perfect, r.Good, r.Ok
	p.Quality, g.Quality, o.Quality = game.Perfect, game.Good, game.Ok
	return []game.Judgement{p, g, o}
}

type Breaker struct {
	BallRadius    float64 `yaml:"ballRadius"`
	BallSpeed     float64 `yaml:"ballSpeed"`
	BlockSize     float64 `yaml:"blockSize"`
	BlockPadding  float64 `yaml:"blockPadding"`
	BonusRadius   float64 `yaml:"bonusRadius"`
	BonusChance   float64 `yaml:"bonusChance"`
	ShooterOffset float64 `yaml:"shooterOffset"` // shoot line distance from the bottom edge
	ShootInterval int     `yaml:"shootInterval"` // ticks between launched balls
	RowMin        int     `yaml:"rowMin"`
	RowMax        int     `yaml:"rowMax"`
	RowTop        float64 `yaml:"rowTop"`
	Margin        float64 `yaml:"margin"`
	LossMargin    float64 `yaml:"lossMargin"` // blocks may not come closer than this to the shoot line
	MinAngle      float64 `yaml:"minAngle"`
	MaxAngle      float64 `yaml:"maxAngle"`
}

type Tuning struct {
	Rhythm  Rhythm  `yaml:"rhythm"`
	Breaker Breaker `yaml:"breaker"`
}

func DefaultRhythm() Rhythm {
	return Rhythm{
		Tracks:        4,
		Margin:        20,
		HitZoneOffset: 150,
		HitZoneHeight: 80,
		NoteSpeed:     5,
		SpawnY:        -50,
		MissOvershoot: 50,

		Perfect: game.Judgement{Quality: game.Perfect, Range: 30, Score: 100, Energy: 5},
		Good:    game.Judgement{Quality: game.Good, Range: 60, Score: 50, Energy: 3},
		Ok:      game.Judgement{Quality: game.Ok, Range: 90, Score: 20, Energy: 1},

		MissEnergy:   5,
		StartEnergy:  50,
		EnergyRegen:  0.05,
		SpecialBonus: 50,

		FirstSpawn:       time.Second,
		EffectLifetime:   500 * time.Millisecond,
		ParticleLifetime: 800 * time.Millisecond,
		ParticleCount:    8,
		Gravity:          0.2,

		Adaptation: Adaptation{
			Milestone: 500,
			High:      0.9,
			Low:       0.6,
			Step:      5,
			MaxBPM:    180,
			MinBPM:    80,
		},
	}
}

func DefaultBreaker() Breaker {
	return Breaker{
		BallRadius:    5,
		BallSpeed:     8,
		BlockSize:     60,
		BlockPadding:  5,
		BonusRadius:   8,
		BonusChance:   0.15,
		ShooterOffset: 80,
		ShootInterval: 3,
		RowMin:        3,
		RowMax:        6,
		RowTop:        20,
		Margin:        10,
		LossMargin:    20,
		MinAngle:      -math.Pi + 0.17,
		MaxAngle:      -0.17,
	}
}

// PerRow is how many block cells fit across a canvas of the given width.
func (b *Breaker) PerRow(width float64) int {
	step := b.BlockSize + b.BlockPadding
	if step <= 0 {
		return 0
	}
	n := int(math.Floor((width - 2*b.Margin) / step))
	if n < 0 {
		return 0
	}
	return n
}

func DefaultTuning() Tuning {
	return Tuning{Rhythm: DefaultRhythm(), Breaker: DefaultBreaker()}
}

// LoadTuning overlays a YAML file onto the defaults. An empty path yields the defaults.
func LoadTuning(path string) (Tuning, error) {
	tuning := DefaultTuning()
	if path == "" {
		return tuning, nil
	}
	data, err := os.ReadFile(path)
	if nil != err {
		return tuning, fmt.Errorf("unable to read tuning file: %w", err)
	}
	if err := yaml.Unmarshal(data, &tuning); nil != err {
		return DefaultTuning(), fmt.Errorf("unable to parse tuning file %v: %w", path, err)
	}
	if err := tuning.Validate(); nil != err {
		return DefaultTuning(), err
	}
	return tuning, nil
}

func (t *Tuning) Validate() error {
	r := &t.Rhythm
	if r.Tracks < 1 {
		return fmt.Errorf("rhythm.tracks must be positive, got %v", r.Tracks)
	}
	if !(r.Perfect.Range < r.Good.Range && r.Good.Range < r.Ok.Range) {
		return fmt.Errorf("judgement ranges must be nested: %v < %v < %v", r.Perfect.Range, r.Good.Range, r.Ok.Range)
	}
	if r.Adaptation.Milestone <= 0 {
		return fmt.Errorf("rhythm.adaptation.milestone must be positive, got %v", r.Adaptation.Milestone)
	}
	b := &t.Breaker
	if b.RowMin < 0 || b.RowMax < b.RowMin {
		return fmt.Errorf("breaker row fill %v..%v is invalid", b.RowMin, b.RowMax)
	}
	if b.BlockSize <= 0 || b.BlockPadding < 0 {
		return fmt.Errorf("breaker block size %v and padding %v are invalid", b.BlockSize, b.BlockPadding)
	}
	if b.ShootInterval < 1 {
		return fmt.Errorf("breaker.shootInterval must be positive, got %v", b.ShootInterval)
	}
	return nil
}
