package score

// MemoryStore keeps scores for the lifetime of the process only.
type MemoryStore struct {
	scores map[string]int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{scores: map[string]int{}}
}

func (s *MemoryStore) Best(game string) (int, error) {
	return s.scores[game], nil
}

func (s *MemoryStore) SaveBest(game string, score int) error {
	if score > s.scores[game] {
		s.scores[game] = score
	}
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}
