package handlers

import (
	"net/http"

	"github.com/taskdrop/taskdrop/internal/ports"
)

const (
	statusOK       = "ok"
	statusReady    = "ready"
	statusNotReady = "not_ready"
)

// HealthHandler handles liveness and readiness HTTP endpoints.
type HealthHandler struct {
	registry ports.HealthRegistry
	service  ports.TaskService
}

// NewHealthHandler creates a HealthHandler. The registry runs the registered
// health checks; the task service reports which backends are configured.
func NewHealthHandler(registry ports.HealthRegistry, service ports.TaskService) *HealthHandler {
	return &HealthHandler{registry: registry, service: service}
}

// Liveness handles GET /health/live. Always returns 200 OK.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": statusOK})
}

// Readiness handles GET /health/ready. Returns 200 if all checks pass,
// 503 if any check fails. The backends map reports configuration presence
// only; no external call is made for it.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	results := h.registry.CheckAll(r.Context())

	checks := make(map[string]string, len(results))
	healthy := true
	for name, err := range results {
		if err != nil {
			checks[name] = err.Error()
			healthy = false
		} else {
			checks[name] = statusOK
		}
	}

	backends := make(map[string]bool)
	for backend, configured := range h.service.BackendStatus() {
		backends[backend.String()] = configured
	}

	status := statusReady
	code := http.StatusOK
	if !healthy {
		status = statusNotReady
		code = http.StatusServiceUnavailable
	}

	writeJSON(w, code, map[string]any{
		"status":   status,
		"checks":   checks,
		"backends": backends,
	})
}
