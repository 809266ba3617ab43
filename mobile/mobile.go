//go:build mobile

// Package mobile is the ebitenmobile binding. Build with
//
//	ebitenmobile bind -target android -tags mobile -javapkg host.lost.minigames -o minigames.aar ./mobile
package mobile

import (
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"git.lost.host/meutraa/minigames/internal/app"
	"git.lost.host/meutraa/minigames/internal/audio"
	"git.lost.host/meutraa/minigames/internal/breaker"
	"git.lost.host/meutraa/minigames/internal/config"
	"git.lost.host/meutraa/minigames/internal/haptic"
	"git.lost.host/meutraa/minigames/internal/rhythm"
	"git.lost.host/meutraa/minigames/internal/score"
	"git.lost.host/meutraa/minigames/internal/theme"
)

const (
	width  = 375
	height = 667
)

func init() {
	var store score.Store = score.NewMemoryStore()
	if saves, err := score.OpenGdata("minigames"); nil != err {
		log.Println("unable to open save data, best scores will not persist:", err)
	} else {
		store = saves
	}

	var player audio.Player = audio.Mute{}
	if p, err := audio.NewBeepPlayer(1); nil == err {
		player = p
	}

	tuning := config.DefaultTuning()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	th := &theme.DefaultTheme{}

	r := rhythm.New(tuning.Rhythm, width, height, rhythm.Sinks{
		Audio:  player,
		Haptic: haptic.Ebiten{},
		Store:  store,
	}, rng)
	b := breaker.New(tuning.Breaker, width, height, breaker.Sinks{
		Haptic: haptic.Ebiten{},
		Store:  store,
	}, rng)

	chooser := &app.Chooser{
		Games:  []app.Game{&app.Rhythm{Session: r, Theme: th}, &app.Breaker{Session: b, Theme: th}},
		Titles: []string{"Rhythm Tap", "Ball Breaker"},
		Width:  width,
		Height: height,
	}
	mobile.SetGame(app.NewWindow(chooser, width, height))
}

// Dummy keeps the package exported for ebitenmobile.
func Dummy() {}
