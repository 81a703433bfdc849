package health

import (
	"encoding/json"
	"net/http"

	"github.com/dalemusser/penguinpathways/internal/app/system/catalog"
	"go.uber.org/zap"
)

// Lessons reports which routes have lesson content. *content.Library
// satisfies it.
type Lessons interface {
	Routes() []string
}

// Handler holds dependencies needed for health checks.
type Handler struct {
	Lessons Lessons
	Log     *zap.Logger
}

// NewHandler constructs a health Handler with the lesson library and logger.
func NewHandler(lessons Lessons, logger *zap.Logger) *Handler {
	return &Handler{
		Lessons: lessons,
		Log:     logger,
	}
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status     string   `json:"status"`
	Chapters   int      `json:"chapters"`
	Lessons    int      `json:"lessons"`
	Duplicates []string `json:"duplicates,omitempty"`
	Missing    []string `json:"missing,omitempty"`
	Error      string   `json:"error,omitempty"`
}

// Serve handles GET /health.
//
// On success: 200 and
//
//	{ "status":"ok", "chapters":15, "lessons":14, "duplicates":["/linux"] }
//
// When the catalog is invalid or a route has no lesson: 503 and
//
//	{ "status":"error", "missing":["/labs"], ... }
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	report, err := catalog.Check(catalog.All())
	resp := healthResponse{
		Status:   "ok",
		Chapters: report.Entries,
	}
	for _, d := range report.Duplicates {
		resp.Duplicates = append(resp.Duplicates, d.Route)
	}
	if err != nil {
		resp.Status = "error"
		resp.Error = err.Error()
	}

	have := make(map[string]bool)
	for _, route := range h.Lessons.Routes() {
		have[route] = true
	}
	resp.Lessons = len(have)
	for _, route := range catalog.Routes() {
		if !have[route] {
			resp.Missing = append(resp.Missing, route)
		}
	}
	if len(resp.Missing) > 0 {
		resp.Status = "error"
	}

	if resp.Status != "ok" {
		h.Log.Error("health-check: content unhealthy",
			zap.Strings("missing", resp.Missing),
			zap.String("error", resp.Error))
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	_ = json.NewEncoder(w).Encode(resp)
}
