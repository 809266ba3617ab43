package game

type NoteType uint8

const (
	NoteNormal NoteType = iota
	NoteLong
	NoteSpecial
)

func (t NoteType) String() string {
	switch t {
	case NoteNormal:
		return "normal"
	case NoteLong:
		return "long"
	case NoteSpecial:
		return "special"
	}
	return "unknown"
}

type Note struct {
	Track int      // The track column
	Beat  int      // The sixteenth slot of the bar it was generated on
	Type  NoteType //
	Y     float64  // Vertical centre in canvas pixels

	// This is state
	Hit    bool
	Missed bool // Has the note scrolled past the hit zone untouched
}

// Resolved notes can no longer be judged.
func (note *Note) Resolved() bool {
	return note.Hit || note.Missed
}
