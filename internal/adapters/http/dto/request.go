package dto

import (
	"fmt"
	"strings"

	"github.com/taskdrop/taskdrop/internal/domain"
)

const msgRequired = "is required"

// CreateTaskRequest represents the JSON body for creating a task from free
// text. Platform optionally pins the backend ("asana" or "planner"); when
// absent the service picks the default. Source labels where the text came
// from ("email", "dictation", "shortcut") and is used for logging only.
type CreateTaskRequest struct {
	Text     string `json:"text"`
	Platform string `json:"platform,omitempty"`
	Source   string `json:"source,omitempty"`
}

// Validate checks that required fields are present and the platform, when
// given, names a known backend. Returns a *domain.ValidationError if any
// checks fail.
func (r *CreateTaskRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Text) == "" {
		fields["text"] = msgRequired
	}
	if r.Platform != "" && !domain.Backend(r.Platform).IsValid() {
		fields["platform"] = fmt.Sprintf("invalid: %q (want %q or %q)",
			r.Platform, domain.BackendAsana, domain.BackendPlanner)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Backend returns the pinned backend, or empty when the caller left the
// choice to the service.
func (r *CreateTaskRequest) Backend() domain.Backend {
	return domain.Backend(r.Platform)
}
