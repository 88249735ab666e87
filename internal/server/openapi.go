package server

import (
	"encoding/json"
	"net/http"

	openapi "github.com/swaggest/openapi-go"
	"github.com/swaggest/openapi-go/openapi3"
)

// ErrorResponse is returned for all error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

func newOpenAPISpec() *openapi3.Spec {
	r := openapi3.NewReflector()
	r.Spec.Info.Title = "DailyPuzzle Sync API"
	r.Spec.Info.Version = "1.0.0"
	r.Spec.Info.WithDescription("Receives batched daily puzzle scores from clients and mirrors them server-side.")

	// GET /healthz
	getHealthz, _ := r.NewOperationContext(http.MethodGet, "/healthz")
	getHealthz.SetSummary("Health check")
	getHealthz.SetDescription("Returns the health status of backend dependencies.")
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusServiceUnavailable))
	_ = r.AddOperation(getHealthz)

	// GET /sync/daily-scores
	getInfo, _ := r.NewOperationContext(http.MethodGet, "/sync/daily-scores")
	getInfo.SetSummary("Service info")
	getInfo.SetDescription("Static service metadata probe. No side effects.")
	getInfo.AddRespStructure(SyncInfoResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getInfo)

	// POST /sync/daily-scores
	postScores, _ := r.NewOperationContext(http.MethodPost, "/sync/daily-scores")
	postScores.SetSummary("Submit daily scores")
	postScores.SetDescription("Validates each entry independently (date, score bounds, completion time) and upserts accepted entries keyed by date. Rejections are reported per entry and never fail the batch.")
	postScores.AddReqStructure(SyncRequest{})
	postScores.AddRespStructure(SyncResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postScores.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	postScores.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusInternalServerError))
	_ = r.AddOperation(postScores)

	return r.Spec
}

func handleOpenAPI() http.HandlerFunc {
	spec := newOpenAPISpec()
	data, err := json.MarshalIndent(spec, "", "  ")

	return func(w http.ResponseWriter, _ *http.Request) {
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to render spec")
			return
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Write(data)
	}
}
