package domain

import "time"

// Backend identifies a task-management backend.
type Backend string

const (
	BackendAsana   Backend = "asana"
	BackendPlanner Backend = "planner"
)

// String returns the backend identifier as used in JSON payloads and logs.
func (b Backend) String() string {
	return string(b)
}

// IsValid reports whether b is one of the supported backends.
func (b Backend) IsValid() bool {
	return b == BackendAsana || b == BackendPlanner
}

// TaskInput is the normalized task record passed from the parser (or a
// caller building it directly) to exactly one adapter call. It is validated
// once and never persisted.
//
// Title is the only required field. DueDate, when set, is a calendar date in
// YYYY-MM-DD form. Assignee semantics are backend-specific (an Asana user GID
// or a Planner/AAD user id). Project, Section, and Attachments are accepted
// for forward compatibility; both adapters currently target the project,
// section, plan, and bucket named in their configuration.
type TaskInput struct {
	Title       string   `json:"title" validate:"required,notblank"`
	Description string   `json:"description,omitempty"`
	DueDate     string   `json:"dueDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Assignee    string   `json:"assignee,omitempty"`
	Project     string   `json:"project,omitempty"`
	Section     string   `json:"section,omitempty"`
	Links       []string `json:"links,omitempty" validate:"omitempty,dive,url"`
	Attachments []string `json:"attachments,omitempty"`
}

// CreatedTask is the outcome of a successful adapter call: the canonical URL
// of the created task, plus the error from a best-effort secondary call
// (Asana section move, Planner details update) when one was attempted and
// failed. A non-nil EnrichmentErr never downgrades the creation itself; the
// primary task exists either way.
type CreatedTask struct {
	URL           string
	EnrichmentErr error
}

// TaskResult is the uniform outcome of a task-creation request. Every
// failure from parsing, validation, or the adapter call is folded into a
// TaskResult with Success false and the error text in Error.
type TaskResult struct {
	Success   bool      `json:"success"`
	Backend   Backend   `json:"backend"`
	TaskURL   string    `json:"taskUrl,omitempty"`
	Message   string    `json:"message,omitempty"`
	Error     string    `json:"error,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
