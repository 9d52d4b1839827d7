// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/taskdrop/taskdrop/internal/domain"
)

// TaskResultResponse represents the outcome of a task-creation request in
// HTTP responses. Error is set on failed results, TaskURL and Message on
// successful ones.
type TaskResultResponse struct {
	Success   bool   `json:"success"`
	Backend   string `json:"backend"`
	TaskURL   string `json:"taskUrl,omitempty"`
	Message   string `json:"message,omitempty"`
	Error     string `json:"error,omitempty"`
	Timestamp string `json:"timestamp"`
}

// ToTaskResultResponse converts a domain TaskResult to an HTTP response DTO.
func ToTaskResultResponse(result domain.TaskResult) TaskResultResponse {
	return TaskResultResponse{
		Success:   result.Success,
		Backend:   result.Backend.String(),
		TaskURL:   result.TaskURL,
		Message:   result.Message,
		Error:     result.Error,
		Timestamp: result.Timestamp.Format(time.RFC3339),
	}
}
