// Package asana is the outbound adapter for the Asana REST API. It translates
// domain TaskInput values into Asana's "data"-enveloped task payloads and maps
// non-success responses to domain errors.
package asana

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/taskdrop/taskdrop/internal/domain"
	"github.com/taskdrop/taskdrop/internal/platform/config"
	"github.com/taskdrop/taskdrop/internal/platform/httpclient"
	"github.com/taskdrop/taskdrop/internal/ports"
)

// Compile-time interface check.
var _ ports.TaskCreator = (*Client)(nil)

// maxErrorBodySize limits how much of an error response body we read.
const maxErrorBodySize = 1 << 20 // 1 MB

// Client creates tasks in a single configured Asana project via POST /tasks.
// When a section is configured, each created task is moved into it with a
// best-effort POST /sections/{gid}/addTask; a failed move is recorded in
// CreatedTask.EnrichmentErr and never fails the creation.
//
// The underlying [httpclient.Client] provides the bearer token, timeout,
// circuit breaking, rate limiting, and OpenTelemetry tracing for every call.
// Requests are never retried.
type Client struct {
	http      *httpclient.Client
	projectID string
	sectionID string
	logger    *slog.Logger
}

// New creates an Asana adapter from validated configuration. The token and
// project ID are required; returns an error when either is missing so that
// startup fails fast instead of deferring the problem to the first request.
func New(httpClient *httpclient.Client, cfg *config.AsanaConfig, logger *slog.Logger) (*Client, error) {
	if !cfg.Configured() {
		return nil, fmt.Errorf("asana: token and project_id are required: %w", domain.ErrBackendNotConfigured)
	}

	return &Client{
		http:      httpClient,
		projectID: cfg.ProjectID,
		sectionID: cfg.SectionID,
		logger:    logger,
	}, nil
}

// Backend returns the backend identifier for this adapter.
func (c *Client) Backend() domain.Backend {
	return domain.BackendAsana
}

// CreateTask creates a task via POST /tasks and returns its permalink URL.
// A non-2xx response becomes a *domain.APIError carrying the status and body.
// The section move, when configured, runs after a successful creation and
// only ever surfaces through CreatedTask.EnrichmentErr.
func (c *Client) CreateTask(ctx context.Context, input domain.TaskInput) (*domain.CreatedTask, error) {
	reqBody := toCreateTaskRequest(input, c.projectID)

	var respBody createTaskResponse
	if err := c.do(ctx, http.MethodPost, "/tasks", nil, reqBody, &respBody); err != nil {
		return nil, err
	}

	created := &domain.CreatedTask{URL: respBody.Data.PermalinkURL}

	if c.sectionID != "" {
		if err := c.moveToSection(ctx, respBody.Data.GID); err != nil {
			c.logger.WarnContext(ctx, "section move failed",
				slog.String("task_gid", respBody.Data.GID),
				slog.String("section_gid", c.sectionID),
				slog.String("error", err.Error()),
			)
			created.EnrichmentErr = err
		}
	}

	return created, nil
}

// moveToSection files an already-created task into the configured section.
func (c *Client) moveToSection(ctx context.Context, taskGID string) error {
	var reqBody addToSectionRequest
	reqBody.Data.Task = taskGID

	path := fmt.Sprintf("/sections/%s/addTask", c.sectionID)
	return c.do(ctx, http.MethodPost, path, nil, reqBody, nil)
}

// do executes one JSON request against the Asana API: marshal, send, map any
// non-2xx status to *domain.APIError, decode the response into respBody when
// non-nil. The extra headers are merged into the request before sending.
func (c *Client) do(ctx context.Context, method, path string, headers map[string]string, reqBody, respBody any) error {
	url := c.http.BaseURL() + path

	var body io.Reader = http.NoBody
	if reqBody != nil {
		raw, err := json.Marshal(reqBody)
		if err != nil {
			return fmt.Errorf("marshaling %s body for %s: %w", method, path, err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("creating %s request for %s: %w", method, path, err)
	}
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(ctx, req)
	if resp == nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer c.closeBody(ctx, resp)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return translateError(resp)
	}

	if respBody != nil {
		if err := json.NewDecoder(resp.Body).Decode(respBody); err != nil {
			return fmt.Errorf("decoding response from %s %s: %w", method, path, err)
		}
	}

	return nil
}

// translateError maps a non-success Asana response to a *domain.APIError
// carrying the verbatim body.
func translateError(resp *http.Response) error {
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		raw = nil
	}

	return &domain.APIError{
		Backend:    domain.BackendAsana,
		StatusCode: resp.StatusCode,
		Body:       string(bytes.TrimSpace(raw)),
	}
}

// closeBody closes an HTTP response body and logs on failure.
func (c *Client) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		c.logger.WarnContext(ctx, "failed to close response body",
			slog.String("error", err.Error()),
		)
	}
}
