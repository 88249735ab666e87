package server

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggest/swgui/v5emb"
)

func addRoutes(r chi.Router, logger *slog.Logger, scores ScoreStore) {
	r.Get("/openapi.json", handleOpenAPI())
	r.Mount("/docs", v5emb.New("DailyPuzzle Sync API", "/openapi.json", "/docs"))
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/healthz", handleHealth(logger, scores))

	r.Route("/sync", func(r chi.Router) {
		r.Get("/daily-scores", handleSyncInfo())
		r.Post("/daily-scores", handleSyncScores(logger, scores))
	})
}
