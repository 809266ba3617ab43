package parser

import (
	"io"

	"git.lost.host/meutraa/minigames/internal/game"
)

// Chart is an authored rhythm pattern.
type Chart struct {
	Title string
	BPM   int
	Bars  []game.Bar
}

type Parser interface {
	Parse(r io.Reader) (*Chart, error)
	ParseFile(file string) (*Chart, error)
}
