package ports

import (
	"context"

	"github.com/taskdrop/taskdrop/internal/domain"
)

// TaskCreator is the single contract both backend adapters implement:
// translate a normalized TaskInput into one backend's task-creation call and
// return the canonical URL of the created task.
//
// Implementations are constructed once at startup from validated config; a
// missing token or project/plan identifier is a construction-time failure,
// never a per-call one. CreateTask returns a *domain.APIError on non-success
// responses from the backend. Best-effort secondary calls (Asana's section
// move, Planner's details update) record their failure in
// CreatedTask.EnrichmentErr instead of failing the operation.
type TaskCreator interface {
	// Backend returns the identifier of the backend this adapter targets.
	Backend() domain.Backend

	// CreateTask creates a task and returns its canonical URL. The input is
	// assumed to have passed TaskInput.Validate.
	CreateTask(ctx context.Context, input domain.TaskInput) (*domain.CreatedTask, error)
}

// AssigneeDirectory resolves human names to backend-specific user
// identifiers. A miss is an expected outcome, not an error: callers omit the
// assignee rather than failing the task creation.
//
// The production implementation is expected to be a real directory service;
// the in-tree implementation is a static, config-backed table.
type AssigneeDirectory interface {
	// Resolve returns the identifier for name on the given backend. The
	// lookup is case-insensitive and ignores surrounding whitespace. The
	// second return value is false when the name is unknown or has no
	// identifier for that backend.
	Resolve(name string, backend domain.Backend) (string, bool)
}
