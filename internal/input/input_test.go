package input

import (
	"testing"

	"github.com/eiannone/keyboard"
)

func column(r rune) int {
	for i, c := range "dfjk" {
		if c == r {
			return i
		}
	}
	return -1
}

var translateTests = map[keyboard.KeyEvent]Command{
	{Key: keyboard.KeyEsc}:        {Action: Quit},
	{Key: keyboard.KeyCtrlC}:      {Action: Quit},
	{Key: keyboard.KeyEnter}:      {Action: Confirm},
	{Key: keyboard.KeySpace}:      {Action: Launch},
	{Key: keyboard.KeyArrowLeft}:  {Action: AimLeft},
	{Key: keyboard.KeyArrowRight}: {Action: AimRight},
	{Rune: 'd'}:                   {Action: Track, Index: 0},
	{Rune: 'K'}:                   {Action: Track, Index: 3},
	{Rune: '2'}:                   {Action: Choose, Index: 1},
	{Rune: 'x'}:                   {},
	{}:                            {},
}

func TestTranslate(t *testing.T) {
	for ev, expected := range translateTests {
		if cmd := Translate(ev, column); cmd != expected {
			t.Log("event   ", ev)
			t.Log("command ", cmd)
			t.Log("expected", expected)
			t.Fail()
		}
	}
}

func TestPointerStep(t *testing.T) {
	var p Pointer
	steps := []struct {
		down     bool
		x, y     int
		expected []PointerEvent
	}{
		{false, 5, 5, nil},
		{true, 10, 20, []PointerEvent{{Press, 10, 20}}},
		{true, 10, 20, nil},
		{true, 30, 25, []PointerEvent{{Move, 30, 25}}},
		{false, 0, 0, []PointerEvent{{Release, 30, 25}}},
		{false, 7, 7, nil},
	}
	for i, step := range steps {
		events := p.Step(step.down, step.x, step.y)
		if len(events) != len(step.expected) {
			t.Fatalf("step %v: events = %v, want %v", i, events, step.expected)
		}
		for j := range events {
			if events[j] != step.expected[j] {
				t.Errorf("step %v: event = %v, want %v", i, events[j], step.expected[j])
			}
		}
	}
}

func TestPointerChord(t *testing.T) {
	var p Pointer
	first := Touch{ID: 1, X: 50, Y: 500}
	events := p.Touches(first, []Touch{first})
	if len(events) != 1 || events[0] != (PointerEvent{Press, 50, 500}) {
		t.Fatalf("first finger = %v", events)
	}

	// a second finger lands while the first is held
	second := Touch{ID: 2, X: 300, Y: 510}
	events = p.Touches(first, []Touch{second})
	if len(events) != 1 || events[0] != (PointerEvent{Press, 300, 510}) {
		t.Fatalf("second finger = %v", events)
	}

	events = p.Touches(first, nil)
	if len(events) != 0 {
		t.Errorf("held fingers = %v", events)
	}
	events = p.Step(false, 0, 0)
	if len(events) != 1 || events[0] != (PointerEvent{Release, 50, 500}) {
		t.Errorf("release = %v", events)
	}
}
