package server

import (
	"context"
	"database/sql"
	"fmt"
)

// SQLiteScoreStore persists accepted scores via libSQL. Schema is managed
// by the migrations package.
type SQLiteScoreStore struct {
	db *sql.DB
}

func NewSQLiteScoreStore(db *sql.DB) *SQLiteScoreStore {
	return &SQLiteScoreStore{db: db}
}

func (s *SQLiteScoreStore) UpsertScore(ctx context.Context, e DailyScore) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO daily_scores (date, score, time_taken, difficulty)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET
			score = excluded.score,
			time_taken = excluded.time_taken,
			difficulty = excluded.difficulty,
			received_at = strftime('%Y-%m-%dT%H:%M:%fZ', 'now')
	`, e.Date, e.Score, e.TimeTaken, e.Difficulty)
	if err != nil {
		return fmt.Errorf("upserting score for %s: %w", e.Date, err)
	}
	return nil
}

func (s *SQLiteScoreStore) ListScores(ctx context.Context) ([]DailyScore, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT date, score, time_taken, difficulty FROM daily_scores ORDER BY date
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []DailyScore
	for rows.Next() {
		var e DailyScore
		if err := rows.Scan(&e.Date, &e.Score, &e.TimeTaken, &e.Difficulty); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *SQLiteScoreStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
