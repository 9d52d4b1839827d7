// Package handlers contains the inbound HTTP handlers: request decoding,
// validation, service invocation, and response encoding.
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/taskdrop/taskdrop/internal/adapters/http/dto"
	"github.com/taskdrop/taskdrop/internal/ports"
)

// TaskHandler handles the task-creation HTTP endpoint.
type TaskHandler struct {
	service ports.TaskService
	logger  *slog.Logger
}

// NewTaskHandler creates a TaskHandler backed by the given task service.
func NewTaskHandler(service ports.TaskService, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{service: service, logger: logger}
}

// CreateTask handles POST /api/v1/tasks. Malformed JSON, blank text, and an
// unknown platform produce a problem response; everything past request
// validation is contained by the service and comes back as a TaskResult,
// returned with status 200 whether the creation succeeded or not.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTaskRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	h.logger.InfoContext(r.Context(), "task creation requested",
		slog.String("source", req.Source),
		slog.String("platform", req.Platform),
	)

	result := h.service.Handle(r.Context(), req.Text, req.Backend())

	writeJSON(w, http.StatusOK, dto.ToTaskResultResponse(result))
}
