package parser

import (
	"fmt"
	"io"
	"math/big"
	"os"
	"strconv"
	"strings"

	"git.lost.host/meutraa/minigames/internal/game"
)

const slotsPerBar = 16

// DefaultParser reads a trimmed down StepMania chart:
//
//	#TITLE:name;
//	#BPM:120;
//	#NOTES:
//	1000
//	0000
//	0200
//	0000
//	,
//	...;
//
// Each bar holds 1, 2, 4, 8 or 16 rows of one character per track.
type DefaultParser struct {
	Tracks int
}

// 0 – No note
// 1 – Normal note
// 2 – Hold head, played as a long note
// 3 – Hold/Roll tail, ignored
// 4 – Roll head, played as a long note
// S – Special note
// M, K, L, F – Mines, keysounds, lifts and fakes, ignored

func (p *DefaultParser) mapToNote(ch byte) (game.NoteType, bool) {
	switch ch {
	case '1':
		return game.NoteNormal, true
	case '2', '4':
		return game.NoteLong, true
	case 'S':
		return game.NoteSpecial, true
	}
	return 0, false
}

func (p *DefaultParser) ParseFile(file string) (*Chart, error) {
	f, err := os.Open(file)
	if nil != err {
		return nil, err
	}
	defer f.Close()
	chart, err := p.Parse(f)
	if nil != err {
		return nil, fmt.Errorf("%v: %w", file, err)
	}
	return chart, nil
}

func (p *DefaultParser) Parse(r io.Reader) (*Chart, error) {
	data, err := io.ReadAll(r)
	if nil != err {
		return nil, err
	}

	str := strings.ReplaceAll(string(data), "\r", "")
	sections := strings.SplitN(str, "#NOTES:", 2)
	if len(sections) != 2 {
		return nil, fmt.Errorf("missing #NOTES section")
	}
	meta, section := sections[0], sections[1]

	chart := &Chart{}
	for _, mdl := range strings.Split(meta, "\n#") {
		mdl = strings.TrimPrefix(strings.TrimSpace(mdl), "#")
		mdl = strings.TrimSuffix(mdl, ";")
		if strings.HasPrefix(mdl, "TITLE:") {
			chart.Title = strings.TrimPrefix(mdl, "TITLE:")
		} else if strings.HasPrefix(mdl, "BPM:") {
			bpm, err := strconv.Atoi(strings.TrimPrefix(mdl, "BPM:"))
			if nil != err {
				return nil, fmt.Errorf("bad bpm: %w", err)
			}
			chart.BPM = bpm
		}
	}
	if chart.BPM <= 0 {
		return nil, fmt.Errorf("missing #BPM")
	}

	section = strings.TrimSpace(section)
	section = strings.TrimSuffix(section, ";")
	for b, block := range strings.Split(section, "\n,") {
		lines := []string{}
		for _, l := range strings.Split(block, "\n") {
			l = strings.TrimSpace(l)
			if l == "" || strings.HasPrefix(l, "//") || l == "," {
				continue
			}
			lines = append(lines, l)
		}
		if len(lines) == 0 {
			continue
		}

		bar, err := p.parseBar(lines)
		if nil != err {
			return nil, fmt.Errorf("bar %v: %w", b+1, err)
		}
		chart.Bars = append(chart.Bars, bar)
	}
	if len(chart.Bars) == 0 {
		return nil, fmt.Errorf("chart has no bars")
	}
	return chart, nil
}

func (p *DefaultParser) parseBar(lines []string) (game.Bar, error) {
	lineCount := int64(len(lines))
	bar := game.Bar{}
	for i, line := range lines {
		if len(line) != p.Tracks {
			return nil, fmt.Errorf("row %q does not have %v tracks", line, p.Tracks)
		}
		slot := big.NewRat(int64(i*slotsPerBar), lineCount)
		if !slot.IsInt() {
			return nil, fmt.Errorf("%v rows do not divide into sixteenths", lineCount)
		}
		for track := 0; track < len(line); track++ {
			t, ok := p.mapToNote(line[track])
			if !ok {
				continue
			}
			bar = append(bar, game.NoteSpec{
				Track: track,
				Beat:  int(slot.Num().Int64()),
				Type:  t,
			})
		}
	}

	// authored bars carry their density as intensity
	intensity := float64(len(bar)) / float64(p.Tracks*slotsPerBar)
	for i := range bar {
		bar[i].Intensity = intensity
	}
	return bar, nil
}
