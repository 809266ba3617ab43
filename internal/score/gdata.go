package score

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const gdataObject = "best"

type bestRecord struct {
	Score int `yaml:"score"`
}

// GdataStore persists best scores through gdata, which also works on mobile.
type GdataStore struct {
	manager *gdata.Manager
}

func OpenGdata(appName string) (*GdataStore, error) {
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if nil != err {
		return nil, fmt.Errorf("unable to open gdata storage: %w", err)
	}
	return &GdataStore{manager: manager}, nil
}

func (s *GdataStore) Best(game string) (int, error) {
	if !s.manager.ObjectPropExists(gdataObject, game) {
		return 0, nil
	}
	data, err := s.manager.LoadObjectProp(gdataObject, game)
	if nil != err {
		return 0, fmt.Errorf("unable to load best score for %v: %w", game, err)
	}
	var record bestRecord
	if err := yaml.Unmarshal(data, &record); nil != err {
		return 0, fmt.Errorf("unable to unmarshal best score for %v: %w", game, err)
	}
	return record.Score, nil
}

func (s *GdataStore) SaveBest(game string, score int) error {
	best, err := s.Best(game)
	if nil == err && best >= score {
		return nil
	}
	data, err := yaml.Marshal(bestRecord{Score: score})
	if nil != err {
		return fmt.Errorf("unable to marshal best score: %w", err)
	}
	if err := s.manager.SaveObjectProp(gdataObject, game, data); nil != err {
		return fmt.Errorf("unable to save best score for %v: %w", game, err)
	}
	return nil
}

func (s *GdataStore) Close() error {
	return nil
}
