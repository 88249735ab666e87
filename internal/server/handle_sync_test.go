package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/bluestock/dailypuzzle/internal/database"
	"github.com/bluestock/dailypuzzle/internal/migrations"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func setupRouter(t *testing.T) (*chi.Mux, *SQLiteScoreStore) {
	t.Helper()
	ctx := context.Background()

	db, err := database.Open(ctx, ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := migrations.Run(db); err != nil {
		t.Fatalf("migrations: %v", err)
	}

	scores := NewSQLiteScoreStore(db)
	r := chi.NewRouter()
	addRoutes(r, testLogger, scores)
	return r, scores
}

func postScores(t *testing.T, r http.Handler, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/sync/daily-scores", bytes.NewReader(raw))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSyncValidEntry(t *testing.T) {
	r, scores := setupRouter(t)

	w := postScores(t, r, SyncRequest{Entries: []SyncEntry{
		{Date: "2025-01-15", Score: 250, TimeTaken: 120, Difficulty: 2},
	}})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}

	var resp SyncResponse
	json.NewDecoder(w.Body).Decode(&resp)
	if !resp.Success || resp.Synced != 1 {
		t.Errorf("resp = %+v, want success with 1 synced", resp)
	}
	if len(resp.Results) != 1 || resp.Results[0].Date != "2025-01-15" || resp.Results[0].Status != statusSynced {
		t.Errorf("results = %+v", resp.Results)
	}

	stored, err := scores.ListScores(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(stored) != 1 || stored[0].Score != 250 {
		t.Errorf("stored = %+v", stored)
	}
}

func TestSyncRejections(t *testing.T) {
	r, _ := setupRouter(t)

	tests := []struct {
		name   string
		entry  SyncEntry
		reason string
	}{
		{"future date", SyncEntry{Date: "2099-01-01", Score: 100, TimeTaken: 60, Difficulty: 1}, "Invalid or future date"},
		{"garbage date", SyncEntry{Date: "not-a-date", Score: 100, TimeTaken: 60, Difficulty: 1}, "Invalid or future date"},
		{"score too high", SyncEntry{Date: "2025-01-15", Score: 501, TimeTaken: 60, Difficulty: 2}, "Score out of bounds"},
		{"negative score", SyncEntry{Date: "2025-01-15", Score: -1, TimeTaken: 60, Difficulty: 2}, "Score out of bounds"},
		{"too fast", SyncEntry{Date: "2025-01-15", Score: 100, TimeTaken: 4, Difficulty: 2}, "Unrealistic completion time"},
		{"too slow", SyncEntry{Date: "2025-01-15", Score: 100, TimeTaken: 3601, Difficulty: 2}, "Unrealistic completion time"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postScores(t, r, SyncRequest{Entries: []SyncEntry{tt.entry}})
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d", w.Code)
			}

			var resp SyncResponse
			json.NewDecoder(w.Body).Decode(&resp)
			if resp.Synced != 0 {
				t.Errorf("synced = %d, want 0", resp.Synced)
			}
			if len(resp.Results) != 1 || resp.Results[0].Status != statusRejected {
				t.Fatalf("results = %+v", resp.Results)
			}
			if resp.Results[0].Reason != tt.reason {
				t.Errorf("reason = %q, want %q", resp.Results[0].Reason, tt.reason)
			}
		})
	}
}

func TestSyncMixedBatch(t *testing.T) {
	// One rejection does not fail the batch.
	r, _ := setupRouter(t)

	w := postScores(t, r, SyncRequest{Entries: []SyncEntry{
		{Date: "2025-01-15", Score: 250, TimeTaken: 120, Difficulty: 2},
		{Date: "2099-01-01", Score: 250, TimeTaken: 120, Difficulty: 2},
	}})

	var resp SyncResponse
	json.NewDecoder(w.Body).Decode(&resp)
	if resp.Synced != 1 || len(resp.Results) != 2 {
		t.Fatalf("resp = %+v", resp)
	}
	if resp.Results[0].Status != statusSynced || resp.Results[1].Status != statusRejected {
		t.Errorf("results = %+v", resp.Results)
	}
}

func TestSyncUpsertByDate(t *testing.T) {
	r, scores := setupRouter(t)

	postScores(t, r, SyncRequest{Entries: []SyncEntry{{Date: "2025-01-15", Score: 100, TimeTaken: 60, Difficulty: 1}}})
	postScores(t, r, SyncRequest{Entries: []SyncEntry{{Date: "2025-01-15", Score: 390, TimeTaken: 30, Difficulty: 1}}})

	stored, _ := scores.ListScores(context.Background())
	if len(stored) != 1 {
		t.Fatalf("%d rows for one date", len(stored))
	}
	if stored[0].Score != 390 {
		t.Errorf("score = %d, want last write 390", stored[0].Score)
	}
}

func TestSyncMalformedPayload(t *testing.T) {
	r, _ := setupRouter(t)

	for name, body := range map[string]string{
		"not json":         `{"entries":`,
		"entries not list": `{"entries": 42}`,
		"missing entries":  `{}`,
	} {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/sync/daily-scores", bytes.NewReader([]byte(body)))
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", w.Code)
			}
			var resp ErrorResponse
			json.NewDecoder(w.Body).Decode(&resp)
			if resp.Error == "" {
				t.Error("missing error message")
			}
		})
	}
}

func TestSyncInfo(t *testing.T) {
	r, _ := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/sync/daily-scores", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp SyncInfoResponse
	json.NewDecoder(w.Body).Decode(&resp)
	if resp.Message != "DailyPuzzle Sync API" || resp.Status != "online" {
		t.Errorf("resp = %+v", resp)
	}
}

func TestHealthz(t *testing.T) {
	r, _ := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp HealthResponse
	json.NewDecoder(w.Body).Decode(&resp)
	if resp["sqlite"].Status != "ok" {
		t.Errorf("resp = %+v", resp)
	}
}
