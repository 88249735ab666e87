package server

import (
	"context"
)

// DailyScore is an accepted sync entry. Keyed by date; an entry
// resubmitted for the same date overwrites the previous one.
type DailyScore struct {
	Date       string `json:"date"`
	Score      int    `json:"score"`
	TimeTaken  int    `json:"timeTaken"`
	Difficulty int    `json:"difficulty"`
}

// ScoreStore is the server-side mirror of accepted entries.
type ScoreStore interface {
	UpsertScore(ctx context.Context, s DailyScore) error
	ListScores(ctx context.Context) ([]DailyScore, error)
	Ping(ctx context.Context) error
}
