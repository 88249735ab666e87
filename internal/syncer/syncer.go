// Package syncer pushes locally-unsynced completions to the remote
// endpoint. Best effort: a failed push leaves everything unsynced and is
// retried whenever the caller invokes reconciliation again, typically on
// the next online transition. No internal retry loop.
package syncer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/bluestock/dailypuzzle/internal/store"
)

// DefaultTimeout bounds a single sync request so a hung connection cannot
// block future attempts.
const DefaultTimeout = 10 * time.Second

// Entry is the wire projection of a completion. Hints and timestamps stay
// local.
type Entry struct {
	Date       string `json:"date"`
	Score      int    `json:"score"`
	TimeTaken  int    `json:"timeTaken"`
	Difficulty int    `json:"difficulty"`
}

type syncRequest struct {
	Entries []Entry `json:"entries"`
}

type syncResponse struct {
	Success bool `json:"success"`
	Synced  int  `json:"synced"`
	Results []struct {
		Date   string `json:"date"`
		Status string `json:"status"`
		Reason string `json:"reason,omitempty"`
	} `json:"results"`
}

// Result reports one reconciliation pass.
type Result struct {
	Synced int
	Failed bool
}

// Reconciler batches unsynced completions into a single POST.
type Reconciler struct {
	store    store.Store
	endpoint string
	client   *http.Client
	logger   *slog.Logger
}

func New(st store.Store, endpoint string, timeout time.Duration, logger *slog.Logger) *Reconciler {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Reconciler{
		store:    st,
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
		logger:   logger,
	}
}

// Reconcile reads unsynced records, submits them in one request, and on
// transport success marks each record synced. Transport failure is not an
// error: it is reported through Result.Failed and the records stay
// unsynced. Only store faults return an error.
func (r *Reconciler) Reconcile(ctx context.Context) (Result, error) {
	unsynced, err := r.store.ListUnsynced(ctx)
	if err != nil {
		return Result{Failed: true}, fmt.Errorf("reading unsynced completions: %w", err)
	}
	if len(unsynced) == 0 {
		return Result{}, nil
	}

	entries := make([]Entry, len(unsynced))
	for i, c := range unsynced {
		entries[i] = Entry{
			Date:       c.Date,
			Score:      c.Score,
			TimeTaken:  c.TimeTaken,
			Difficulty: c.Difficulty,
		}
	}

	body, err := json.Marshal(syncRequest{Entries: entries})
	if err != nil {
		return Result{Failed: true}, fmt.Errorf("encoding sync payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(body))
	if err != nil {
		return Result{Failed: true}, fmt.Errorf("building sync request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		r.logger.Warn("sync transport failed", "error", err)
		return Result{Failed: true}, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		r.logger.Warn("sync rejected", "status", resp.StatusCode)
		return Result{Failed: true}, nil
	}

	var sr syncResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err == nil {
		for _, res := range sr.Results {
			if res.Status != "synced" {
				r.logger.Warn("entry rejected by server", "date", res.Date, "reason", res.Reason)
			}
		}
	}

	// Transport succeeded: the local record stays authoritative either
	// way, so everything submitted is marked synced, including entries
	// the server rejected on validation.
	for _, c := range unsynced {
		if err := r.store.MarkSynced(ctx, c.Date); err != nil {
			return Result{Failed: true}, fmt.Errorf("marking %s synced: %w", c.Date, err)
		}
	}

	r.logger.Info("sync completed", "submitted", len(unsynced), "accepted", sr.Synced)
	return Result{Synced: len(unsynced)}, nil
}
