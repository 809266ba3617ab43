package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type PointerKind uint8

const (
	Press PointerKind = iota
	Move
	Release
)

type PointerEvent struct {
	Kind PointerKind
	X, Y float64
}

// Pointer merges touch and mouse into press/move/release events. Touch wins
// when both are active.
type Pointer struct {
	down         bool
	lastX, lastY int
}

// Poll reads the current ebiten input state. Call once per tick.
func (p *Pointer) Poll() []PointerEvent {
	if ids := ebiten.AppendTouchIDs(nil); len(ids) > 0 {
		x, y := ebiten.TouchPosition(ids[0])
		var fresh []Touch
		for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
			tx, ty := ebiten.TouchPosition(id)
			fresh = append(fresh, Touch{ID: id, X: tx, Y: ty})
		}
		return p.Touches(Touch{ID: ids[0], X: x, Y: y}, fresh)
	}
	x, y := ebiten.CursorPosition()
	return p.Step(ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft), x, y)
}

type Touch struct {
	ID   ebiten.TouchID
	X, Y int
}

// Touches steps the primary touch and adds a press for every other finger
// that just landed, so chords are not lost.
func (p *Pointer) Touches(primary Touch, fresh []Touch) []PointerEvent {
	events := p.Step(true, primary.X, primary.Y)
	for _, t := range fresh {
		if t.ID == primary.ID {
			continue
		}
		events = append(events, PointerEvent{Kind: Press, X: float64(t.X), Y: float64(t.Y)})
	}
	return events
}

// Step advances the pointer state machine. A release reports the last
// position seen while down since touches have no position once lifted.
func (p *Pointer) Step(down bool, x, y int) []PointerEvent {
	var events []PointerEvent
	switch {
	case down && !p.down:
		events = append(events, PointerEvent{Kind: Press, X: float64(x), Y: float64(y)})
	case down && (x != p.lastX || y != p.lastY):
		events = append(events, PointerEvent{Kind: Move, X: float64(x), Y: float64(y)})
	case !down && p.down:
		events = append(events, PointerEvent{Kind: Release, X: float64(p.lastX), Y: float64(p.lastY)})
	}
	if down {
		p.lastX, p.lastY = x, y
	}
	p.down = down
	return events
}
