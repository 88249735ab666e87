package syncer

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bluestock/dailypuzzle/internal/store"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func seeded(t *testing.T, dates ...string) store.Store {
	t.Helper()
	st := store.NewMemoryStore()
	for _, d := range dates {
		err := st.PutCompletion(context.Background(), store.Completion{
			Date: d, Solved: true, Score: 250, TimeTaken: 120, Difficulty: 2, HintsUsed: 1,
		})
		if err != nil {
			t.Fatalf("seed %s: %v", d, err)
		}
	}
	return st
}

func TestReconcileNoUnsynced(t *testing.T) {
	st := store.NewMemoryStore()
	rec := New(st, "http://localhost:0/sync/daily-scores", time.Second, testLogger)

	res, err := rec.Reconcile(context.Background())
	if err != nil {
		t.Fatalf("reconcile: %v", err)
	}
	if res.Failed || res.Synced != 0 {
		t.Errorf("empty store: %+v, want no-op success", res)
	}
}

func TestReconcileSuccess(t *testing.T) {
	st := seeded(t, "2025-01-14", "2025-01-15")

	var gotBody syncRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content-type = %s", ct)
		}
		json.NewDecoder(r.Body).Decode(&gotBody)
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"synced":  2,
			"results": []map[string]string{
				{"date": "2025-01-14", "status": "synced"},
				{"date": "2025-01-15", "status": "synced"},
			},
		})
	}))
	defer srv.Close()

	rec := New(st, srv.URL, time.Second, testLogger)
	res, err := rec.Reconcile(context.Background())
	if err != nil {
		t.Fatalf("reconcile: %v", err)
	}
	if res.Failed || res.Synced != 2 {
		t.Errorf("result = %+v, want 2 synced", res)
	}

	// Only the wire projection is sent: no hints, no timestamps.
	if len(gotBody.Entries) != 2 {
		t.Fatalf("%d entries submitted", len(gotBody.Entries))
	}
	if e := gotBody.Entries[0]; e.Date != "2025-01-14" || e.Score != 250 || e.TimeTaken != 120 || e.Difficulty != 2 {
		t.Errorf("entry = %+v", e)
	}

	unsynced, _ := st.ListUnsynced(context.Background())
	if len(unsynced) != 0 {
		t.Errorf("%d records still unsynced after success", len(unsynced))
	}
}

func TestReconcileRejectedEntriesStillMarked(t *testing.T) {
	// Validation rejections are per-entry server concerns; locally the
	// batch is done either way once transport succeeded.
	st := seeded(t, "2025-01-15")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"synced":  0,
			"results": []map[string]string{
				{"date": "2025-01-15", "status": "rejected", "reason": "Score out of bounds"},
			},
		})
	}))
	defer srv.Close()

	rec := New(st, srv.URL, time.Second, testLogger)
	res, err := rec.Reconcile(context.Background())
	if err != nil {
		t.Fatalf("reconcile: %v", err)
	}
	if res.Failed {
		t.Errorf("transport succeeded, result = %+v", res)
	}

	unsynced, _ := st.ListUnsynced(context.Background())
	if len(unsynced) != 0 {
		t.Errorf("rejected entry left unsynced; local store stays authoritative")
	}
}

func TestReconcileServerError(t *testing.T) {
	st := seeded(t, "2025-01-15")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":"boom"}`, http.StatusInternalServerError)
	}))
	defer srv.Close()

	rec := New(st, srv.URL, time.Second, testLogger)
	res, err := rec.Reconcile(context.Background())
	if err != nil {
		t.Fatalf("reconcile: %v", err)
	}
	if !res.Failed || res.Synced != 0 {
		t.Errorf("result = %+v, want failed", res)
	}

	unsynced, _ := st.ListUnsynced(context.Background())
	if len(unsynced) != 1 {
		t.Errorf("non-2xx must not mark anything synced")
	}
}

func TestReconcileTransportError(t *testing.T) {
	st := seeded(t, "2025-01-15")

	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // connection refused from here on

	rec := New(st, srv.URL, time.Second, testLogger)
	res, err := rec.Reconcile(context.Background())
	if err != nil {
		t.Fatalf("transport failure must not be an error: %v", err)
	}
	if !res.Failed {
		t.Errorf("result = %+v, want failed", res)
	}

	unsynced, _ := st.ListUnsynced(context.Background())
	if len(unsynced) != 1 {
		t.Errorf("network failure must not mark anything synced")
	}
}
