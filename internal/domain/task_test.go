package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestTaskInput_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     TaskInput
		wantErr   bool
		wantField string
	}{
		{
			name:  "title alone is enough",
			input: TaskInput{Title: "Buy milk"},
		},
		{
			name: "all optional fields set",
			input: TaskInput{
				Title:       "Follow up with shipping",
				Description: "See thread",
				DueDate:     "2026-09-04",
				Assignee:    "120003456",
				Project:     "1200000000000001",
				Section:     "1200000000000002",
				Links:       []string{"https://example.com/order/42"},
				Attachments: []string{"quote.pdf"},
			},
		},
		{
			name:      "empty title rejected",
			input:     TaskInput{},
			wantErr:   true,
			wantField: "title",
		},
		{
			name:      "whitespace title rejected",
			input:     TaskInput{Title: "   "},
			wantErr:   true,
			wantField: "title",
		},
		{
			name:      "malformed due date rejected",
			input:     TaskInput{Title: "Buy milk", DueDate: "next friday"},
			wantErr:   true,
			wantField: "duedate",
		},
		{
			name:      "non-URL link rejected",
			input:     TaskInput{Title: "Buy milk", Links: []string{"not a url"}},
			wantErr:   true,
			wantField: "links",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.input.Validate()
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("Validate() error = %v, want nil", err)
				}
				return
			}

			if !errors.Is(err, ErrValidation) {
				t.Fatalf("Validate() error = %v, want ErrValidation", err)
			}

			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() error type = %T, want *ValidationError", err)
			}
			found := false
			for field := range verr.Fields {
				if strings.HasPrefix(field, tt.wantField) {
					found = true
				}
			}
			if !found {
				t.Errorf("Fields = %v, want entry for %q", verr.Fields, tt.wantField)
			}
		})
	}
}

func TestAPIError_Unwrap(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status int
		want   error
	}{
		{status: 500, want: ErrUnavailable},
		{status: 503, want: ErrUnavailable},
		{status: 401, want: ErrForbidden},
		{status: 403, want: ErrForbidden},
		{status: 404, want: ErrNotFound},
		{status: 400, want: ErrValidation},
		{status: 422, want: ErrValidation},
	}

	for _, tt := range tests {
		err := &APIError{Backend: BackendAsana, StatusCode: tt.status, Body: "boom"}
		if !errors.Is(err, tt.want) {
			t.Errorf("APIError(status=%d) does not unwrap to %v", tt.status, tt.want)
		}
	}
}

func TestAPIError_MessageCarriesStatusAndBody(t *testing.T) {
	t.Parallel()

	err := &APIError{Backend: BackendPlanner, StatusCode: 403, Body: `{"error":"token expired"}`}
	msg := err.Error()
	if !strings.Contains(msg, "403") || !strings.Contains(msg, "token expired") {
		t.Errorf("Error() = %q, want status and body present", msg)
	}
}

func TestBackend_IsValid(t *testing.T) {
	t.Parallel()

	if !BackendAsana.IsValid() || !BackendPlanner.IsValid() {
		t.Error("known backends should be valid")
	}
	if Backend("todoist").IsValid() {
		t.Error("unknown backend should be invalid")
	}
}
