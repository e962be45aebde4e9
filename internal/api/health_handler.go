package api

import (
	"net/http"

	"github.com/nexalabs/nexa-task-api/internal/api/shared"
)

// HealthResponse is the static liveness payload. It reports that the
// process is serving requests; it does not probe store connectivity.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

// WelcomeResponse is the root endpoint payload.
type WelcomeResponse struct {
	Message string `json:"message"`
	Health  string `json:"health"`
}

// HealthHandler handles liveness and root requests.
type HealthHandler struct {
	serviceName string
	version     string
}

// NewHealthHandler creates a new HealthHandler with the given service
// identity.
func NewHealthHandler(serviceName, version string) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		version:     version,
	}
}

// Health handles GET /api/v1/health requests.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{
		Status:  "healthy",
		Service: h.serviceName,
		Version: h.version,
	})
}

// Root handles GET / requests with a welcome payload pointing at the
// health endpoint.
func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, WelcomeResponse{
		Message: "Welcome to Nexa Task API",
		Health:  "/api/v1/health",
	})
}
