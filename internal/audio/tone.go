package audio

import (
	"math"
	"time"

	"github.com/faiface/beep"
)

type Wave uint8

const (
	Sine Wave = iota
	Square
	Triangle
)

func (w Wave) String() string {
	switch w {
	case Sine:
		return "sine"
	case Square:
		return "square"
	case Triangle:
		return "triangle"
	}
	return "unknown"
}

const (
	startGain = 0.3
	endGain   = 0.01
)

// oscillator is a phase accumulator with an exponential gain ramp over its duration.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     Wave
	rate     beep.SampleRate
	volume   float64
}

func NewOscillator(freq float64, duration time.Duration, wave Wave, rate beep.SampleRate, volume float64) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		volume:   volume,
	}
}

func (o *oscillator) sample() float64 {
	switch o.wave {
	case Sine:
		return math.Sin(2 * math.Pi * o.phase)
	case Square:
		if o.phase < 0.5 {
			return 1
		}
		return -1
	case Triangle:
		return 4*math.Abs(o.phase-0.5) - 1
	}
	return 0
}

// Gain falls from 0.3 to 0.01 across the tone.
func (o *oscillator) gain() float64 {
	if o.duration <= 0 {
		return 0
	}
	progress := float64(o.position) / float64(o.duration)
	return startGain * math.Pow(endGain/startGain, progress)
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}
		val := o.sample() * o.gain() * o.volume
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }
