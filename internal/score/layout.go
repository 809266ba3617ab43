package score

import (
	"math"

	"git.lost.host/meutraa/minigames/internal/config"
)

// Layout is the track geometry of the rhythm canvas.
type Layout struct {
	Tracks        int
	Margin        float64
	TrackWidth    float64
	HitZoneY      float64
	HitZoneHeight float64
	Width, Height float64
}

func NewLayout(cfg config.Rhythm, width, height float64) Layout {
	return Layout{
		Tracks:        cfg.Tracks,
		Margin:        cfg.Margin,
		TrackWidth:    (width - 2*cfg.Margin) / float64(cfg.Tracks),
		HitZoneY:      height - cfg.HitZoneOffset,
		HitZoneHeight: cfg.HitZoneHeight,
		Width:         width,
		Height:        height,
	}
}

// Center is the y of the judgement line.
func (l Layout) Center() float64 {
	return l.HitZoneY + l.HitZoneHeight/2
}

// Track returns the track under x, or -1 outside of every track.
func (l Layout) Track(x float64) int {
	track := int(math.Floor((x - l.Margin) / l.TrackWidth))
	if track < 0 || track >= l.Tracks {
		return -1
	}
	return track
}

// TrackX is the horizontal centre of a track.
func (l Layout) TrackX(track int) float64 {
	return l.Margin + float64(track)*l.TrackWidth + l.TrackWidth/2
}
