package gamestore

import (
	"context"
	"database/sql"

	"github.com/sirupsen/logrus"

	"guesstimate-server/pkg/db"
	"guesstimate-server/pkg/scorekeeper"
)

// Store persists game snapshots in postgres, keyed by game ID
// A save overwrites the matching record or inserts if absent; there is no
// optimistic-concurrency check
type Store struct {
	db *sql.DB
}

// New returns a Store backed by the given database handle
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Save upserts the game's snapshot
// A failed save leaves the live game intact for retry on the next transition
func (s *Store) Save(ctx context.Context, game *scorekeeper.Game) error {
	snapshot, err := game.Snapshot()
	if err != nil {
		return err
	}

	const query = `
INSERT INTO games (id, name, game_date, snapshot)
VALUES ($1, $2, $3, $4)
ON CONFLICT (id) DO UPDATE
SET name = excluded.name, game_date = excluded.game_date, snapshot = excluded.snapshot`

	if _, err := s.db.ExecContext(ctx, query, game.ID, game.Name, game.Date, snapshot); err != nil {
		logrus.WithError(err).WithField("game", game.ID).Error("could not save game")
		return err
	}

	return nil
}

// LoadAll returns every saved game, most recent game date first
func (s *Store) LoadAll(ctx context.Context) ([]*scorekeeper.Game, error) {
	const query = `
SELECT snapshot
FROM games
ORDER BY game_date DESC, id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	games := make([]*scorekeeper.Game, 0)
	for rows.Next() {
		game, err := gameByRow(rows)
		if err != nil {
			return nil, err
		}

		games = append(games, game)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return games, nil
}

// Delete removes the game's stored record, if any
func (s *Store) Delete(ctx context.Context, game *scorekeeper.Game) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM games WHERE id = $1`, game.ID)
	return err
}

// DeleteAll removes every stored game
func (s *Store) DeleteAll(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM games`)
	return err
}

func gameByRow(row db.Scanner) (*scorekeeper.Game, error) {
	var snapshot []byte
	if err := row.Scan(&snapshot); err != nil {
		return nil, err
	}

	return scorekeeper.FromSnapshot(snapshot)
}
