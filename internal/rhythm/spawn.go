package rhythm

import (
	"time"

	"git.lost.host/meutraa/minigames/internal/audio"
	"git.lost.host/meutraa/minigames/internal/game"
)

const (
	baseFreq     = 220.0
	previewTone  = 50 * time.Millisecond
	slotsPerBeat = 4
)

var trackRatios = [...]float64{1, 1.25, 1.5, 2}

// spawn queues the next bar once the previous one has played out.
func (s *Session) spawn() {
	if s.now <= s.nextNoteTime {
		return
	}
	bar := s.generator.Next()
	interval := s.generator.BeatInterval()
	for _, spec := range bar {
		spec := spec
		delay := time.Duration(spec.Beat) * interval / slotsPerBeat
		s.queue.At(s.now+delay, func() { s.spawnNote(spec) })
	}
	s.nextNoteTime = s.now + interval*4
}

func (s *Session) spawnNote(spec game.NoteSpec) {
	// a queued spawn may outlive the round that scheduled it
	if s.phase != Playing || s.state.Over {
		return
	}
	s.notes = append(s.notes, &game.Note{
		Track: spec.Track,
		Beat:  spec.Beat,
		Type:  spec.Type,
		Y:     s.cfg.SpawnY,
	})
	s.sinks.Audio.Tone(baseFreq*(1+float64(spec.Track)*0.25), previewTone, audio.Square)
}

func trackFreq(track int) float64 {
	if track < 0 || track >= len(trackRatios) {
		return baseFreq
	}
	return baseFreq * trackRatios[track]
}

func (s *Session) hitTone(track int, q game.Quality) {
	freq := trackFreq(track)
	switch q {
	case game.Perfect:
		s.sinks.Audio.Tone(freq*2, 120*time.Millisecond, audio.Sine)
	case game.Good:
		s.sinks.Audio.Tone(freq*1.5, 100*time.Millisecond, audio.Sine)
	case game.Ok:
		s.sinks.Audio.Tone(freq, 80*time.Millisecond, audio.Triangle)
	case game.Miss:
	}
}
