package game

// NoteSpec is a note descriptor inside a generated bar.
type NoteSpec struct {
	Track     int
	Beat      int // 0-15, a sixteenth note slot
	Type      NoteType
	Intensity float64
}

type Bar []NoteSpec

// Pattern is an immutable cycle of bars consumed with a wrapping cursor.
type Pattern struct {
	Bars []Bar

	cursor int
}

func NewPattern(bars []Bar) *Pattern {
	return &Pattern{Bars: bars}
}

// Next returns the bar under the cursor and advances it, wrapping at the end.
func (p *Pattern) Next() Bar {
	if len(p.Bars) == 0 {
		return nil
	}
	bar := p.Bars[p.cursor%len(p.Bars)]
	p.cursor = (p.cursor + 1) % len(p.Bars)
	return bar
}

func (p *Pattern) Cursor() int {
	return p.cursor
}
