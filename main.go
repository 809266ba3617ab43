package main

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"git.lost.host/meutraa/minigames/internal/app"
	"git.lost.host/meutraa/minigames/internal/audio"
	"git.lost.host/meutraa/minigames/internal/breaker"
	"git.lost.host/meutraa/minigames/internal/config"
	"git.lost.host/meutraa/minigames/internal/haptic"
	"git.lost.host/meutraa/minigames/internal/input"
	"git.lost.host/meutraa/minigames/internal/parser"
	"git.lost.host/meutraa/minigames/internal/render"
	"git.lost.host/meutraa/minigames/internal/rhythm"
	"git.lost.host/meutraa/minigames/internal/score"
	"git.lost.host/meutraa/minigames/internal/theme"
)

func main() {
	if err := run(); nil != err {
		log.Fatalln(err)
	}
}

func openStore(path string) score.Store {
	store, err := score.OpenSQLite(path)
	if nil != err {
		log.Println("unable to open score database, best scores will not persist:", err)
		return score.NewMemoryStore()
	}
	return store
}

func openAudio(opts *config.Options) audio.Player {
	if opts.Mute {
		return audio.Mute{}
	}
	player, err := audio.NewBeepPlayer(opts.Volume)
	if nil != err {
		log.Println("unable to open speaker, muting:", err)
		return audio.Mute{}
	}
	return player
}

func openHaptic(opts *config.Options) haptic.Vibrator {
	switch {
	case opts.NoHaptics:
		return haptic.Nop{}
	case opts.Frontend == config.FrontendTerminal:
		return haptic.Bell{}
	}
	return haptic.Ebiten{}
}

func newGame(opts *config.Options, store score.Store) (app.Game, string, error) {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	w, h := float64(opts.Width), float64(opts.Height)
	var th theme.Theme = &theme.DefaultTheme{}

	if opts.Command == config.CommandBreaker {
		s := breaker.New(opts.Tuning.Breaker, w, h, breaker.Sinks{
			Haptic: openHaptic(opts),
			Store:  store,
		}, rng)
		return &app.Breaker{Session: s, Theme: th}, "Ball Breaker", nil
	}

	s := rhythm.New(opts.Tuning.Rhythm, w, h, rhythm.Sinks{
		Audio:  openAudio(opts),
		Haptic: openHaptic(opts),
		Store:  store,
	}, rng)
	s.Select(opts.Difficulty)

	title := "Rhythm Tap"
	if opts.Chart != "" {
		var psr parser.Parser = &parser.DefaultParser{Tracks: opts.Tuning.Rhythm.Tracks}
		chart, err := psr.ParseFile(opts.Chart)
		if nil != err {
			return nil, "", fmt.Errorf("unable to load chart: %w", err)
		}
		log.Printf("Playing %q at %v BPM (%v bars)\n", chart.Title, chart.BPM, len(chart.Bars))
		s.UseChart(chart.Bars, chart.BPM)
		if chart.Title != "" {
			title += " - " + chart.Title
		}
	}
	return &app.Rhythm{Session: s, Theme: th, Keys: opts.Keys}, title, nil
}

func run() error {
	opts, err := config.Parse(os.Args[1:])
	if errors.Is(err, config.ErrExit) {
		return nil
	}
	if nil != err {
		return err
	}

	store := openStore(opts.Database)
	defer func() {
		if err := store.Close(); nil != err {
			log.Println("unable to close score store:", err)
		}
	}()

	g, title, err := newGame(opts, store)
	if nil != err {
		return err
	}

	if opts.Frontend == config.FrontendWindow {
		return app.NewWindow(g, opts.Width, opts.Height).Run(title)
	}

	keys, closeKeys, err := input.Keys(128)
	if nil != err {
		return fmt.Errorf("unable to open keyboard: %w", err)
	}
	defer func() {
		if err := closeKeys(); nil != err {
			log.Println("unable to close keyboard:", err)
		}
	}()

	t := &app.Terminal{
		Game:      g,
		Renderer:  render.NewTerminalRenderer(),
		Keys:      keys,
		KeyColumn: opts.KeyColumn,
	}
	return t.Run(opts.FramePeriod)
}
