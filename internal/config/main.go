package config

import (
	"errors"
	"fmt"
	"time"

	"git.lost.host/meutraa/minigames/internal/game"
	"gopkg.in/alecthomas/kingpin.v2"
)

const Version = "0.3.0"

const (
	CommandRhythm  = "rhythm"
	CommandBreaker = "breaker"

	FrontendWindow   = "window"
	FrontendTerminal = "terminal"
)

// ErrExit is returned after --help or --version printed their output.
var ErrExit = errors.New("exit requested")

type Options struct {
	Command     string
	Frontend    string
	Difficulty  game.Difficulty
	Chart       string
	Width       int
	Height      int
	Database    string
	TuningFile  string
	Mute        bool
	NoHaptics   bool
	Keys        []rune
	FramePeriod time.Duration
	Seed        int64
	Volume      float64

	Tuning Tuning
}

// Parse reads the command line. It never exits the process.
func Parse(args []string) (*Options, error) {
	app := kingpin.New("minigames", "Tap rhythm and ball breaker mini-games")
	app.Version(Version)
	exited := false
	app.Terminate(func(int) { exited = true })

	var (
		frontend    = app.Flag("frontend", "window or terminal").Default(FrontendWindow).Short('f').Enum(FrontendWindow, FrontendTerminal)
		width       = app.Flag("width", "Logical canvas width").Default("375").Short('W').Int()
		height      = app.Flag("height", "Logical canvas height").Default("667").Short('H').Int()
		database    = app.Flag("db", "Best score database").Default("./scores.db").String()
		tuningFile  = app.Flag("tuning", "YAML tuning overrides").Short('t').String()
		mute        = app.Flag("mute", "Disable sound").Bool()
		noHaptics   = app.Flag("no-haptics", "Disable vibration").Bool()
		framePeriod = app.Flag("frame-period", "Terminal frame period").Default("16ms").Short('p').Duration()
		seed        = app.Flag("seed", "Random seed, 0 uses the clock").Default("0").Int64()
		volume      = app.Flag("volume", "Tone volume").Default("1.0").Float64()
		keys        = app.Flag("keys", "Terminal keys, one per track").Default("dfjk").Short('k').String()
	)

	rhythm := app.Command(CommandRhythm, "Tap falling notes on the beat").Default()
	difficulty := rhythm.Flag("difficulty", "easy, normal or hard").Default("normal").Short('d').Enum("easy", "normal", "hard")
	chart := rhythm.Flag("chart", "Play an authored chart instead of generated bars").Short('c').ExistingFile()

	app.Command(CommandBreaker, "Break numbered blocks with a volley of balls")

	command, err := app.Parse(args)
	if exited {
		return nil, ErrExit
	}
	if nil != err {
		return nil, err
	}

	tuning, err := LoadTuning(*tuningFile)
	if nil != err {
		return nil, err
	}

	opts := &Options{
		Command:     command,
		Frontend:    *frontend,
		Difficulty:  game.ParseDifficulty(*difficulty),
		Chart:       *chart,
		Width:       *width,
		Height:      *height,
		Database:    *database,
		TuningFile:  *tuningFile,
		Mute:        *mute,
		NoHaptics:   *noHaptics,
		Keys:        []rune(*keys),
		FramePeriod: *framePeriod,
		Seed:        *seed,
		Volume:      *volume,
		Tuning:      tuning,
	}

	if opts.Width < 100 || opts.Height < 200 {
		return nil, fmt.Errorf("canvas %vx%v is too small", opts.Width, opts.Height)
	}
	if opts.Tuning.Breaker.PerRow(float64(opts.Width)) < 1 {
		return nil, fmt.Errorf("no breaker blocks fit across a %v wide canvas", opts.Width)
	}
	if len(opts.Keys) < tuning.Rhythm.Tracks {
		return nil, fmt.Errorf("need %v keys, got %q", tuning.Rhythm.Tracks, *keys)
	}
	return opts, nil
}

// KeyColumn maps a key to its track, -1 when unmapped.
func (o *Options) KeyColumn(r rune) int {
	for i, c := range o.Keys {
		if i >= o.Tuning.Rhythm.Tracks {
			break
		}
		if r == c {
			return i
		}
	}
	return -1
}
