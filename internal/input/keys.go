package input

import (
	"unicode"

	"github.com/eiannone/keyboard"
)

type Action uint8

const (
	None Action = iota
	Track
	AimLeft
	AimRight
	Launch
	Confirm
	Choose
	Quit
)

// Command is what a key press means to a game.
type Command struct {
	Action Action
	Index  int // track for Track, difficulty for Choose
}

// Translate maps a terminal key to a command. keyColumn returns -1 for keys
// that are not bound to a track.
func Translate(ev keyboard.KeyEvent, keyColumn func(rune) int) Command {
	switch ev.Key {
	case keyboard.KeyEsc, keyboard.KeyCtrlC:
		return Command{Action: Quit}
	case keyboard.KeyEnter:
		return Command{Action: Confirm}
	case keyboard.KeySpace:
		return Command{Action: Launch}
	case keyboard.KeyArrowLeft:
		return Command{Action: AimLeft}
	case keyboard.KeyArrowRight:
		return Command{Action: AimRight}
	}
	if ev.Rune == 0 {
		return Command{}
	}
	if col := keyColumn(unicode.ToLower(ev.Rune)); col >= 0 {
		return Command{Action: Track, Index: col}
	}
	if ev.Rune >= '1' && ev.Rune <= '3' {
		return Command{Action: Choose, Index: int(ev.Rune - '1')}
	}
	return Command{}
}

// Keys opens the keyboard and returns its event channel with a closer.
func Keys(buffer int) (<-chan keyboard.KeyEvent, func() error, error) {
	events, err := keyboard.GetKeys(buffer)
	if nil != err {
		return nil, nil, err
	}
	return events, keyboard.Close, nil
}
