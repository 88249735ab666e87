package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// SQLiteStore persists the game locally via libSQL. The schema is created
// on construction; all writes are single-row upserts so concurrent writers
// degrade to last-write-wins per date.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(ctx context.Context, db *sql.DB) (*SQLiteStore, error) {
	s := &SQLiteStore{db: db}
	if err := s.ensureSchema(ctx); err != nil {
		return nil, fmt.Errorf("initializing local schema: %w", err)
	}
	return s, nil
}

func (s *SQLiteStore) ensureSchema(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS daily_completions (
			date TEXT PRIMARY KEY,
			solved INTEGER NOT NULL,
			score INTEGER NOT NULL,
			time_taken INTEGER NOT NULL,
			difficulty INTEGER NOT NULL,
			hints_used INTEGER NOT NULL,
			synced INTEGER NOT NULL DEFAULT 0,
			completed_at INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS achievements (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT NOT NULL,
			icon TEXT NOT NULL,
			unlocked_at INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS puzzle_progress (
			date TEXT PRIMARY KEY,
			step TEXT NOT NULL,
			state TEXT NOT NULL,
			started_at INTEGER NOT NULL
		)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

func (s *SQLiteStore) PutCompletion(ctx context.Context, c Completion) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO daily_completions (date, solved, score, time_taken, difficulty, hints_used, synced, completed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET
			solved = excluded.solved,
			score = excluded.score,
			time_taken = excluded.time_taken,
			difficulty = excluded.difficulty,
			hints_used = excluded.hints_used,
			synced = excluded.synced,
			completed_at = excluded.completed_at
	`, c.Date, boolInt(c.Solved), c.Score, c.TimeTaken, c.Difficulty, c.HintsUsed, boolInt(c.Synced), c.CompletedAt)
	if err != nil {
		return fmt.Errorf("saving completion %s: %w", c.Date, err)
	}
	return nil
}

func (s *SQLiteStore) GetCompletion(ctx context.Context, date string) (Completion, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT date, solved, score, time_taken, difficulty, hints_used, synced, completed_at
		FROM daily_completions WHERE date = ?
	`, date)
	return scanCompletion(row)
}

func (s *SQLiteStore) ListCompletions(ctx context.Context) ([]Completion, error) {
	return s.queryCompletions(ctx, `
		SELECT date, solved, score, time_taken, difficulty, hints_used, synced, completed_at
		FROM daily_completions ORDER BY date
	`)
}

func (s *SQLiteStore) ListUnsynced(ctx context.Context) ([]Completion, error) {
	return s.queryCompletions(ctx, `
		SELECT date, solved, score, time_taken, difficulty, hints_used, synced, completed_at
		FROM daily_completions WHERE synced = 0 ORDER BY date
	`)
}

func (s *SQLiteStore) queryCompletions(ctx context.Context, query string) ([]Completion, error) {
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Completion
	for rows.Next() {
		c, err := scanCompletion(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) MarkSynced(ctx context.Context, date string) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE daily_completions SET synced = 1 WHERE date = ?
	`, date)
	return err
}

func (s *SQLiteStore) PutAchievement(ctx context.Context, a Achievement) error {
	// Put-if-absent: an already-unlocked achievement keeps its original
	// unlock time.
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO achievements (id, name, description, icon, unlocked_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`, a.ID, a.Name, a.Description, a.Icon, a.UnlockedAt)
	if err != nil {
		return fmt.Errorf("saving achievement %s: %w", a.ID, err)
	}
	return nil
}

func (s *SQLiteStore) ListAchievements(ctx context.Context) ([]Achievement, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, description, icon, unlocked_at FROM achievements ORDER BY unlocked_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Achievement
	for rows.Next() {
		var a Achievement
		if err := rows.Scan(&a.ID, &a.Name, &a.Description, &a.Icon, &a.UnlockedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) PutProgress(ctx context.Context, p Progress) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO puzzle_progress (date, step, state, started_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET
			step = excluded.step,
			state = excluded.state,
			started_at = excluded.started_at
	`, p.Date, p.Step, p.StateJSON, p.StartedAt)
	return err
}

func (s *SQLiteStore) GetProgress(ctx context.Context, date string) (Progress, error) {
	var p Progress
	err := s.db.QueryRowContext(ctx, `
		SELECT date, step, state, started_at FROM puzzle_progress WHERE date = ?
	`, date).Scan(&p.Date, &p.Step, &p.StateJSON, &p.StartedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return p, ErrNotFound
	}
	return p, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCompletion(row rowScanner) (Completion, error) {
	var c Completion
	var solved, synced int
	err := row.Scan(&c.Date, &solved, &c.Score, &c.TimeTaken, &c.Difficulty, &c.HintsUsed, &synced, &c.CompletedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return c, ErrNotFound
	}
	if err != nil {
		return c, err
	}
	c.Solved = solved != 0
	c.Synced = synced != 0
	return c, nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
