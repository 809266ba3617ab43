package audio

import (
	"math"
	"testing"
	"time"
)

func TestOscillatorRange(t *testing.T) {
	for _, wave := range []Wave{Sine, Square, Triangle} {
		osc := NewOscillator(440, 100*time.Millisecond, wave, SampleRate, 1)
		samples := make([][2]float64, 512)
		n, ok := osc.Stream(samples)
		if !ok || n != 512 {
			t.Fatalf("%v: streamed %v samples, ok = %v", wave, n, ok)
		}
		for i := 0; i < n; i++ {
			if math.Abs(samples[i][0]) > startGain+1e-9 || samples[i][0] != samples[i][1] {
				t.Errorf("%v: sample %v out of range: %v", wave, i, samples[i])
			}
		}
		if osc.Err() != nil {
			t.Errorf("%v: unexpected error %v", wave, osc.Err())
		}
	}
}

func TestOscillatorEnds(t *testing.T) {
	duration := 50 * time.Millisecond
	osc := NewOscillator(220, duration, Square, SampleRate, 1)
	total := 0
	samples := make([][2]float64, 1000)
	for {
		n, ok := osc.Stream(samples)
		total += n
		if !ok {
			break
		}
	}
	if total != SampleRate.N(duration) {
		t.Errorf("streamed %v samples, want %v", total, SampleRate.N(duration))
	}
}

func TestGainRamp(t *testing.T) {
	o := NewOscillator(100, time.Second, Sine, SampleRate, 1).(*oscillator)
	if math.Abs(o.gain()-startGain) > 1e-9 {
		t.Errorf("initial gain = %v", o.gain())
	}
	o.position = o.duration
	if math.Abs(o.gain()-endGain) > 1e-9 {
		t.Errorf("final gain = %v", o.gain())
	}
}

func TestSquareLevels(t *testing.T) {
	osc := NewOscillator(220, 50*time.Millisecond, Square, SampleRate, 1).(*oscillator)
	for i := 0; i < 100; i++ {
		if v := osc.sample(); v != 1 && v != -1 {
			t.Fatalf("square sample %v = %v", i, v)
		}
		osc.phase += osc.freq / float64(osc.rate)
		osc.phase -= math.Floor(osc.phase)
	}
}
