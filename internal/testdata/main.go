package testdata

import (
	"encoding/json"

	"git.lost.host/meutraa/minigames/internal/game"
)

// Notes in flight on a 375x667 canvas, judgement line at y=557.
const data = `[
	{"Track": 0, "Beat": 0, "Type": 0, "Y": 557},
	{"Track": 0, "Beat": 4, "Type": 1, "Y": 420},
	{"Track": 1, "Beat": 2, "Type": 2, "Y": 610},
	{"Track": 1, "Beat": 6, "Type": 0, "Y": 512},
	{"Track": 2, "Beat": 8, "Type": 0, "Y": 557, "Hit": true},
	{"Track": 2, "Beat": 9, "Type": 0, "Y": 450},
	{"Track": 3, "Beat": 12, "Type": 0, "Y": 100}
]`

func GetNotes() ([]*game.Note, error) {
	var notes []*game.Note
	if err := json.Unmarshal([]byte(data), &notes); nil != err {
		return nil, err
	}
	return notes, nil
}
