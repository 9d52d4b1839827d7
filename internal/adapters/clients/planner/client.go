// Package planner is the outbound adapter for Microsoft Planner via the
// Graph REST API. It translates domain TaskInput values into plannerTask
// payloads and maps non-success responses to domain errors.
package planner

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

// Client creates tasks in a single configured Planner plan via
// POST /planner/tasks. Without a configured bucket it falls back to the
// plan's first bucket, resolved per call. A description or links trigger a
// best-effort PATCH of the task details; a failed patch is recorded in
// CreatedTask.EnrichmentErr and never fails the creation.
//
// The underlying [httpclient.Client] provides the bearer token, timeout,
// circuit breaking, rate limiting, and OpenTelemetry tracing for every call.
// Requests are never retried.
type Client struct {
	http     *httpclient.Client
	planID   string
	bucketID string
	logger   *slog.Logger
}

// New creates a Planner adapter from validated configuration. The token and
// plan ID are required; returns an error when either is missing so that
// startup fails fast instead of deferring the problem to the first request.
func New(httpClient *httpclient.Client, cfg *config.PlannerConfig, logger *slog.Logger) (*Client, error) {
	if !cfg.Configured() {
		return nil, fmt.Errorf("planner: token and plan_id are required: %w", domain.ErrBackendNotConfigured)
	}

	return &Client{
		http:     httpClient,
		planID:   cfg.PlanID,
		bucketID: cfg.BucketID,
		logger:   logger,
	}, nil
}

// Backend returns the backend identifier for this adapter.
func (c *Client) Backend() domain.Backend {
	return domain.BackendPlanner
}

// CreateTask creates a task via POST /planner/tasks and returns its Planner
// view URL. A non-2xx response becomes a *domain.APIError carrying the status
// and body. The details patch, when the input has a description or links,
// runs after a successful creation and only ever surfaces through
// CreatedTask.EnrichmentErr.
func (c *Client) CreateTask(ctx context.Context, input domain.TaskInput) (*domain.CreatedTask, error) {
	bucketID, err := c.resolveBucket(ctx)
	if err != nil {
		return nil, err
	}

	reqBody := toCreateTaskRequest(input, c.planID, bucketID)

	var respBody createTaskResponse
	if err := c.do(ctx, http.MethodPost, "/planner/tasks", nil, reqBody, &respBody); err != nil {
		return nil, err
	}

	created := &domain.CreatedTask{URL: taskViewURL(respBody.ID)}

	if description := buildDescription(input.Description, input.Links); description != "" {
		if err := c.patchDetails(ctx, respBody.ID, description); err != nil {
			c.logger.WarnContext(ctx, "task details update failed",
				slog.String("task_id", respBody.ID),
				slog.String("error", err.Error()),
			)
			created.EnrichmentErr = err
		}
	}

	return created, nil
}

// resolveBucket returns the configured bucket id, or the plan's first bucket
// when none is configured. A plan with no buckets is an error; Planner
// requires every task to live in a bucket.
func (c *Client) resolveBucket(ctx context.Context) (string, error) {
	if c.bucketID != "" {
		return c.bucketID, nil
	}

	path := fmt.Sprintf("/planner/plans/%s/buckets", c.planID)

	var buckets bucketListResponse
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &buckets); err != nil {
		return "", fmt.Errorf("resolving default bucket: %w", err)
	}

	if len(buckets.Value) == 0 {
		return "", fmt.Errorf("plan %s has no buckets: %w", c.planID, domain.ErrNotFound)
	}

	return buckets.Value[0].ID, nil
}

// patchDetails sets the description of an already-created task. Planner
// guards details with an ETag; "If-Match: *" accepts whichever version the
// fresh task carries.
func (c *Client) patchDetails(ctx context.Context, taskID, description string) error {
	path := fmt.Sprintf("/planner/tasks/%s/details", taskID)
	headers := map[string]string{"If-Match": "*"}

	return c.do(ctx, http.MethodPatch, path, headers, detailsPatch{Description: description}, nil)
}

// do executes one JSON request against the Graph API: marshal, send, map any
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

// translateError maps a non-success Graph response to a *domain.APIError
// carrying the verbatim body.
func translateError(resp *http.Response) error {
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		raw = nil
	}

	return &domain.APIError{
		Backend:    domain.BackendPlanner,
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
