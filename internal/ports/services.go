package ports

import (
	"context"

	"github.com/taskdrop/taskdrop/internal/domain"
)

// TaskService is the service port for the text-to-task pipeline. Implemented
// by the application layer; called by the HTTP handlers and the MCP tools.
type TaskService interface {
	// Handle runs the full pipeline for raw text: backend resolution,
	// parsing, validation, and the adapter call. The override selects a
	// backend explicitly; when empty, SelectBackend decides. Handle never
	// returns an error — every failure is folded into a TaskResult with
	// Success false.
	Handle(ctx context.Context, text string, override domain.Backend) domain.TaskResult

	// Create skips parsing and creates a task from an already-structured
	// input, for callers (MCP tools, other services) that build TaskInput
	// themselves. The same containment applies: failures become the result.
	Create(ctx context.Context, input domain.TaskInput, override domain.Backend) domain.TaskResult

	// SelectBackend returns the default backend: Asana when configured,
	// else Planner when configured, else Asana. Deterministic for a fixed
	// configuration.
	SelectBackend() domain.Backend

	// BackendStatus reports which backends have adapters constructed, by
	// configuration alone — no external call is made.
	BackendStatus() map[domain.Backend]bool
}
