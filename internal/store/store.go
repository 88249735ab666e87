// Package store is the local persistent store for the daily puzzle game:
// completions, achievements, and mid-puzzle progress. One Store is
// constructed at startup and passed to every component that needs it.
package store

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when a keyed record does not exist.
	ErrNotFound = errors.New("not found")
)

// Completion is one finished day, keyed by its ISO date. Immutable after
// creation except for Synced, which the reconciler flips once the remote
// endpoint acknowledges the record.
type Completion struct {
	Date        string `json:"date"`
	Solved      bool   `json:"solved"`
	Score       int    `json:"score"`
	TimeTaken   int    `json:"timeTaken"` // seconds
	Difficulty  int    `json:"difficulty"`
	HintsUsed   int    `json:"hintsUsed"`
	Synced      bool   `json:"synced"`
	CompletedAt int64  `json:"completedAt"` // epoch milliseconds
}

// Achievement is written at most once per ID.
type Achievement struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	UnlockedAt  int64  `json:"unlockedAt"` // epoch milliseconds
}

// Progress is ephemeral mid-puzzle state, keyed by date. Not required for
// correctness; losing it just restarts the day's chain.
type Progress struct {
	Date      string `json:"date"`
	Step      string `json:"step"`
	StateJSON string `json:"state"`
	StartedAt int64  `json:"startedAt"`
}

// Store is the local persistence contract.
type Store interface {
	// PutCompletion upserts a completion record.
	PutCompletion(ctx context.Context, c Completion) error
	// GetCompletion returns the record for a date, or ErrNotFound.
	GetCompletion(ctx context.Context, date string) (Completion, error)
	// ListCompletions returns all records ordered by date.
	ListCompletions(ctx context.Context) ([]Completion, error)
	// ListUnsynced returns records not yet acknowledged remotely.
	ListUnsynced(ctx context.Context) ([]Completion, error)
	// MarkSynced flips the synced flag for a date. Missing dates are a
	// no-op: the record may have been written by another process.
	MarkSynced(ctx context.Context, date string) error

	// PutAchievement inserts if absent. Re-unlocking an existing ID must
	// neither duplicate nor overwrite.
	PutAchievement(ctx context.Context, a Achievement) error
	// ListAchievements returns all unlocked achievements.
	ListAchievements(ctx context.Context) ([]Achievement, error)

	// PutProgress upserts mid-puzzle state for a date.
	PutProgress(ctx context.Context, p Progress) error
	// GetProgress returns mid-puzzle state, or ErrNotFound.
	GetProgress(ctx context.Context, date string) (Progress, error)
}
