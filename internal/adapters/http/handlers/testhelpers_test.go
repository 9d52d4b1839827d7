package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/taskdrop/taskdrop/internal/domain"
	"github.com/taskdrop/taskdrop/internal/ports"
)

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

// stubTaskService implements ports.TaskService with canned results.
type stubTaskService struct {
	result domain.TaskResult
	status map[domain.Backend]bool

	gotText     string
	gotOverride domain.Backend
	handleCalls int
}

func (s *stubTaskService) Handle(_ context.Context, text string, override domain.Backend) domain.TaskResult {
	s.gotText = text
	s.gotOverride = override
	s.handleCalls++
	return s.result
}

func (s *stubTaskService) Create(_ context.Context, _ domain.TaskInput, _ domain.Backend) domain.TaskResult {
	return s.result
}

func (s *stubTaskService) SelectBackend() domain.Backend { return domain.BackendAsana }

func (s *stubTaskService) BackendStatus() map[domain.Backend]bool {
	if s.status == nil {
		return map[domain.Backend]bool{domain.BackendAsana: true, domain.BackendPlanner: false}
	}
	return s.status
}

// stubRegistry implements ports.HealthRegistry with fixed check results.
type stubRegistry struct {
	results map[string]error
}

func (s *stubRegistry) Register(_ ports.HealthChecker) {}

func (s *stubRegistry) CheckAll(_ context.Context) map[string]error {
	return s.results
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
