package score

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

type SQLiteStore struct {
	db *sql.DB
}

func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("unable to open score database: %w", err)
	}

	initStatement := `
	create table if not exists best
	  (
		  game text not null primary key,
		  score integer not null
	  );
	`
	if _, err = db.Exec(initStatement); nil != err {
		db.Close()
		return nil, fmt.Errorf("unable to create score table: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Best(game string) (int, error) {
	var best int
	err := s.db.QueryRow("select score from best where game = ?", game).Scan(&best)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if nil != err {
		return 0, fmt.Errorf("unable to load best score for %v: %w", game, err)
	}
	return best, nil
}

// SaveBest only ever raises the stored value.
func (s *SQLiteStore) SaveBest(game string, score int) error {
	_, err := s.db.Exec(`
	insert into best(game, score) values(?, ?)
	  on conflict(game) do update set score = excluded.score
	  where excluded.score > best.score
	`, game, score)
	if nil != err {
		return fmt.Errorf("unable to save best score for %v: %w", game, err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	if nil != s.db {
		return s.db.Close()
	}
	return nil
}
