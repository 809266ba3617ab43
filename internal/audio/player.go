package audio

import (
	"fmt"
	"log"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

// Player is a fire-and-forget tone sink.
type Player interface {
	Tone(freq float64, duration time.Duration, wave Wave)
}

const SampleRate = beep.SampleRate(44100)

type BeepPlayer struct {
	rate   beep.SampleRate
	volume float64
}

func NewBeepPlayer(volume float64) (*BeepPlayer, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/30)); nil != err {
		return nil, fmt.Errorf("unable to open speaker: %w", err)
	}
	return &BeepPlayer{rate: SampleRate, volume: volume}, nil
}

// Tone never fails the caller, sound is best effort.
func (p *BeepPlayer) Tone(freq float64, duration time.Duration, wave Wave) {
	defer func() {
		if r := recover(); r != nil {
			log.Println("[audio] tone playback failed:", r)
		}
	}()
	if freq <= 0 || duration <= 0 {
		log.Printf("[audio] ignoring tone %v Hz for %v\n", freq, duration)
		return
	}
	speaker.Play(NewOscillator(freq, duration, wave, p.rate, p.volume))
}

type Mute struct{}

func (Mute) Tone(float64, time.Duration, Wave) {}

// Recorder keeps every requested tone, used where sound has to be inspected.
type Recorder struct {
	Tones []Request
}

type Request struct {
	Freq     float64
	Duration time.Duration
	Wave     Wave
}

func (r *Recorder) Tone(freq float64, duration time.Duration, wave Wave) {
	r.Tones = append(r.Tones, Request{Freq: freq, Duration: duration, Wave: wave})
}
