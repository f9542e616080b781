package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/phrazzld/task-api/internal/api/shared"
	"github.com/phrazzld/task-api/internal/config"
)

// MetaHandler serves the index, health and fallback endpoints.
type MetaHandler struct {
	info config.APIConfig
	now  func() time.Time
}

// NewMetaHandler creates a MetaHandler describing the given API.
// A nil clock defaults to time.Now.
func NewMetaHandler(info config.APIConfig, now func() time.Time) *MetaHandler {
	if now == nil {
		now = time.Now
	}
	return &MetaHandler{info: info, now: now}
}

// Index handles GET / with static API metadata.
func (h *MetaHandler) Index(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, IndexResponse{
		Name:        h.info.Name,
		Version:     h.info.Version,
		Description: h.info.Description,
		Endpoints: map[string]string{
			"health": "/health",
			"tasks":  "/api/tasks",
			"task":   "/api/tasks/{id}",
		},
	})
}

// Health handles GET /health.
func (h *MetaHandler) Health(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: h.now().UTC().Format(time.RFC3339),
	})
}

// NotFound answers requests that match no route.
func (h *MetaHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithError(w, r, http.StatusNotFound, msgEndpointNotFound,
		shared.WithMessage(fmt.Sprintf("No endpoint matches %s %s", r.Method, r.URL.Path)))
}

// MethodNotAllowed answers requests whose path matches but whose method does not.
func (h *MetaHandler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithError(w, r, http.StatusMethodNotAllowed, msgMethodNotAllowed,
		shared.WithMessage(fmt.Sprintf("Method %s is not supported for %s", r.Method, r.URL.Path)))
}
