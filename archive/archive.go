// Package archive persists fetched matches and hero reference data in a local
// SQLite database. It is used by the dota2fetch command; the client library
// itself holds no state.
package archive

import (
	"embed"
	"encoding/json"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"

	"github.com/go-dota/dota2api"

	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

type Store interface {
	SaveMatch(m dota2api.MatchDetails) error
	GetMatch(matchID uint64) (dota2api.MatchDetails, error)
	RecentMatches(limit int) ([]StoredMatch, error)
	SaveHeroes(heroes []dota2api.Hero) error
	HeroName(id int) (string, error)
}

// StoredMatch is the indexed subset of a match row. The full payload is kept
// as JSON in the data column.
type StoredMatch struct {
	MatchID     uint64 `db:"match_id"`
	MatchSeqNum uint64 `db:"match_seq_num"`
	StartTime   int64  `db:"start_time"`
	Duration    int    `db:"duration"`
	RadiantWin  bool   `db:"radiant_win"`
	GameMode    int    `db:"game_mode"`
	LeagueID    int    `db:"leagueid"`
}

type SqliteStore struct {
	DB *sqlx.DB
}

func NewSqliteStore(dsn string) (*SqliteStore, error) {
	db, err := sqlx.Connect("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	return &SqliteStore{DB: db}, nil
}

func (s *SqliteStore) ApplyMigrations() error {
	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(string(goose.DialectSQLite3)); err != nil {
		return err
	}

	return goose.Up(s.DB.DB, "migrations")
}

func (s *SqliteStore) SaveMatch(m dota2api.MatchDetails) error {
	data, err := json.Marshal(m)
	if err != nil {
		return err
	}
	_, err = s.DB.Exec(
		"INSERT OR REPLACE INTO matches (match_id, match_seq_num, start_time, duration, radiant_win, game_mode, leagueid, data) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		m.MatchID,
		m.MatchSeqNum,
		m.StartTime,
		m.Duration,
		m.RadiantWin,
		m.GameMode,
		m.LeagueID,
		string(data),
	)
	return err
}

func (s *SqliteStore) GetMatch(matchID uint64) (dota2api.MatchDetails, error) {
	var (
		m    dota2api.MatchDetails
		data string
	)
	if err := s.DB.Get(&data, "SELECT data FROM matches WHERE match_id = ?", matchID); err != nil {
		return m, err
	}
	err := json.Unmarshal([]byte(data), &m)
	return m, err
}

func (s *SqliteStore) RecentMatches(limit int) ([]StoredMatch, error) {
	ms := []StoredMatch{}
	if err := s.DB.Select(&ms, "SELECT match_id, match_seq_num, start_time, duration, radiant_win, game_mode, leagueid FROM matches ORDER BY start_time DESC LIMIT ?", limit); err != nil {
		return ms, err
	}
	return ms, nil
}

func (s *SqliteStore) SaveHeroes(heroes []dota2api.Hero) error {
	tx, err := s.DB.Beginx()
	if err != nil {
		return err
	}
	for _, h := range heroes {
		if _, err := tx.Exec(
			"INSERT OR REPLACE INTO heroes (id, name, localized_name) VALUES (?, ?, ?)",
			h.ID, h.Name, h.LocalizedName,
		); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

func (s *SqliteStore) HeroName(id int) (string, error) {
	var name string
	err := s.DB.Get(&name, "SELECT localized_name FROM heroes WHERE id = ?", id)
	return name, err
}
