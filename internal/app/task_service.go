// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/metric"

	"github.com/taskdrop/taskdrop/internal/domain"
	"github.com/taskdrop/taskdrop/internal/parse"
	"github.com/taskdrop/taskdrop/internal/platform/telemetry"
	"github.com/taskdrop/taskdrop/internal/ports"
)

// Compile-time check that TaskService implements ports.TaskService.
var _ ports.TaskService = (*TaskService)(nil)

// TaskService implements ports.TaskService. It is the error-containment
// boundary of the pipeline: parsing, validation, directory lookups, and the
// adapter call all funnel into a domain.TaskResult, and no failure escapes as
// an error to the caller.
type TaskService struct {
	creators  map[domain.Backend]ports.TaskCreator
	directory ports.AssigneeDirectory
	metrics   *telemetry.Metrics
	logger    *slog.Logger
	now       func() time.Time
}

// NewTaskService creates a TaskService over the given backend adapters. Only
// configured backends appear in creators; a request selecting an absent one
// fails with a configuration error at handle time. If metrics is nil, metric
// recording is skipped.
func NewTaskService(creators []ports.TaskCreator, directory ports.AssigneeDirectory, metrics *telemetry.Metrics, logger *slog.Logger) *TaskService {
	byBackend := make(map[domain.Backend]ports.TaskCreator, len(creators))
	for _, c := range creators {
		byBackend[c.Backend()] = c
	}

	return &TaskService{
		creators:  byBackend,
		directory: directory,
		metrics:   metrics,
		logger:    logger,
		now:       time.Now,
	}
}

// Handle runs the full pipeline for raw text. The text is parsed relative to
// the current time, so "tomorrow" and "next friday" resolve against the
// moment the request arrives.
func (s *TaskService) Handle(ctx context.Context, text string, override domain.Backend) domain.TaskResult {
	input := parse.TaskInputFromText(text, s.now())
	return s.Create(ctx, input, override)
}

// Create creates a task from an already-structured input. Every failure,
// from validation through the adapter call, is folded into the returned
// TaskResult.
func (s *TaskService) Create(ctx context.Context, input domain.TaskInput, override domain.Backend) domain.TaskResult {
	start := s.now()

	backend := override
	if backend == "" {
		backend = s.SelectBackend()
	}

	creator, ok := s.creators[backend]
	if !ok {
		return s.failure(ctx, backend, start,
			fmt.Errorf("%s: %w", backend, domain.ErrBackendNotConfigured))
	}

	if err := input.Validate(); err != nil {
		return s.failure(ctx, backend, start, err)
	}

	s.resolveAssignee(ctx, &input, backend)

	s.logger.InfoContext(ctx, "creating task",
		slog.String("backend", backend.String()),
		slog.String("title", input.Title),
		slog.String("due_date", input.DueDate),
	)

	created, err := creator.CreateTask(ctx, input)
	if err != nil {
		return s.failure(ctx, backend, start, err)
	}

	message := fmt.Sprintf("Task created in %s", backend)
	if created.EnrichmentErr != nil {
		message = fmt.Sprintf("Task created in %s, but a follow-up update failed: %s",
			backend, created.EnrichmentErr)
	}

	s.record(ctx, backend, start, "success")

	return domain.TaskResult{
		Success:   true,
		Backend:   backend,
		TaskURL:   created.URL,
		Message:   message,
		Timestamp: s.now().UTC(),
	}
}

// SelectBackend returns the default backend: Asana when configured, else
// Planner when configured, else Asana. Falling back to Asana when nothing is
// configured is deliberate; the resulting request fails with a clear
// configuration error instead of an arbitrary one.
func (s *TaskService) SelectBackend() domain.Backend {
	if _, ok := s.creators[domain.BackendAsana]; ok {
		return domain.BackendAsana
	}
	if _, ok := s.creators[domain.BackendPlanner]; ok {
		return domain.BackendPlanner
	}
	return domain.BackendAsana
}

// BackendStatus reports which backends have adapters constructed.
func (s *TaskService) BackendStatus() map[domain.Backend]bool {
	_, asana := s.creators[domain.BackendAsana]
	_, planner := s.creators[domain.BackendPlanner]
	return map[domain.Backend]bool{
		domain.BackendAsana:   asana,
		domain.BackendPlanner: planner,
	}
}

// resolveAssignee swaps the assignee name for its backend identifier. An
// unknown name clears the field; the task is still created, just unassigned.
func (s *TaskService) resolveAssignee(ctx context.Context, input *domain.TaskInput, backend domain.Backend) {
	if input.Assignee == "" {
		return
	}

	id, ok := s.directory.Resolve(input.Assignee, backend)
	if !ok {
		s.logger.InfoContext(ctx, "assignee not in directory, leaving task unassigned",
			slog.String("assignee", input.Assignee),
			slog.String("backend", backend.String()),
		)
		input.Assignee = ""
		return
	}

	input.Assignee = id
}

// failure logs the error and folds it into a TaskResult.
func (s *TaskService) failure(ctx context.Context, backend domain.Backend, start time.Time, err error) domain.TaskResult {
	s.logger.ErrorContext(ctx, "task creation failed",
		slog.String("backend", backend.String()),
		slog.Any("error", err),
	)

	s.record(ctx, backend, start, "error")

	return domain.TaskResult{
		Success:   false,
		Backend:   backend,
		Error:     err.Error(),
		Timestamp: s.now().UTC(),
	}
}

// record emits the task-creation duration and count metrics. Safe to call
// with nil metrics.
func (s *TaskService) record(ctx context.Context, backend domain.Backend, start time.Time, result string) {
	if s.metrics == nil {
		return
	}

	attrs := metric.WithAttributes(
		telemetry.AttrBackend.String(backend.String()),
		telemetry.AttrResult.String(result),
	)

	s.metrics.TaskCreateDuration.Record(ctx, s.now().Sub(start).Seconds(), attrs)
	s.metrics.TaskCreateTotal.Add(ctx, 1, attrs)
}
