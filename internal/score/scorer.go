package score

import "git.lost.host/meutraa/minigames/internal/game"

type Scorer interface {
	// Closest finds the unresolved note on a track nearest to the judgement line
	Closest(notes []*game.Note, track int) (*game.Note, float64)

	Judge(distance float64) (game.Judgement, bool)

	// Hit resolves a note and returns the points it awarded
	Hit(state *game.State, note *game.Note, judgement game.Judgement) int
	Miss(state *game.State, note *game.Note)
}

// Store keeps the best score per game.
type Store interface {
	Best(game string) (int, error)
	SaveBest(game string, score int) error
	Close() error
}
