package server

import (
	"log/slog"
	"net/http"
	"time"
)

const dateLayout = "2006-01-02"

type SyncEntry struct {
	Date       string `json:"date"`
	Score      int    `json:"score"`
	TimeTaken  int    `json:"timeTaken"`
	Difficulty int    `json:"difficulty"`
}

type SyncRequest struct {
	Entries []SyncEntry `json:"entries"`
}

type SyncResult struct {
	Date   string `json:"date"`
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

type SyncResponse struct {
	Success bool         `json:"success"`
	Synced  int          `json:"synced"`
	Results []SyncResult `json:"results"`
}

type SyncInfoResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
	Status  string `json:"status"`
}

const (
	statusSynced   = "synced"
	statusRejected = "rejected"
)

// handleSyncScores validates each entry independently and upserts the
// accepted ones. Rejections are reported per entry and never fail the
// batch; only a store fault turns into a 500.
func handleSyncScores(logger *slog.Logger, scores ScoreStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SyncRequest
		if err := readJSON(r, &req); err != nil || req.Entries == nil {
			writeError(w, http.StatusBadRequest, "Invalid payload")
			return
		}

		now := time.Now()
		results := make([]SyncResult, 0, len(req.Entries))
		synced := 0

		for _, e := range req.Entries {
			if reason := validateEntry(e, now); reason != "" {
				results = append(results, SyncResult{Date: e.Date, Status: statusRejected, Reason: reason})
				syncEntriesTotal.WithLabelValues(statusRejected).Inc()
				continue
			}

			err := scores.UpsertScore(r.Context(), DailyScore{
				Date:       e.Date,
				Score:      e.Score,
				TimeTaken:  e.TimeTaken,
				Difficulty: e.Difficulty,
			})
			if err != nil {
				logger.Error("storing score failed", "date", e.Date, "error", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
				return
			}

			results = append(results, SyncResult{Date: e.Date, Status: statusSynced})
			syncEntriesTotal.WithLabelValues(statusSynced).Inc()
			synced++
		}

		writeJSON(w, http.StatusOK, SyncResponse{Success: true, Synced: synced, Results: results})
	}
}

// validateEntry returns a rejection reason, or "" if the entry passes.
// The checks are bounds only: no authentication exists, so the date and
// score are trusted within these limits.
func validateEntry(e SyncEntry, now time.Time) string {
	if _, err := time.Parse(dateLayout, e.Date); err != nil || e.Date > now.Format(dateLayout) {
		return "Invalid or future date"
	}
	if e.Score < 0 || e.Score > e.Difficulty*100+300 {
		return "Score out of bounds"
	}
	if e.TimeTaken < 5 || e.TimeTaken > 3600 {
		return "Unrealistic completion time"
	}
	return ""
}

func handleSyncInfo() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, SyncInfoResponse{
			Message: "DailyPuzzle Sync API",
			Version: "1.0.0",
			Status:  "online",
		})
	}
}
