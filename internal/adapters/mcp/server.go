// Package mcp exposes the task-creation pipeline as Model Context Protocol
// tools, so an AI agent can create tasks (or dry-run the parser) over stdio.
// The tools are a thin shim: everything behind them is the same task service
// the HTTP boundary uses.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/taskdrop/taskdrop/internal/domain"
	"github.com/taskdrop/taskdrop/internal/parse"
	"github.com/taskdrop/taskdrop/internal/ports"
)

// NewServer creates an MCP server with the task tools registered. The caller
// runs it over a transport of its choice (stdio in cmd/mcp).
func NewServer(service ports.TaskService, version string) *mcpsdk.Server {
	impl := &mcpsdk.Implementation{
		Name:    "taskdrop-mcp",
		Version: version,
	}

	server := mcpsdk.NewServer(impl, &mcpsdk.ServerOptions{})

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "create-task",
		Description: "Create a task from structured fields. Only title is required; dueDate must be YYYY-MM-DD. Set platform to \"asana\" or \"planner\" to pin the backend.",
	}, createTaskHandler(service))

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "create-task-from-text",
		Description: "Create a task from free text (email body, dictation, shortcut payload). Extracts the title and due date, cleans quoted email noise, and creates the task in the selected backend.",
	}, createTaskFromTextHandler(service))

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "parse-task",
		Description: "Parse free text into the task fields that create-task-from-text would use, without creating anything. Use it to inspect or adjust the extraction before committing.",
	}, parseTaskHandler(service))

	return server
}

func createTaskHandler(service ports.TaskService) mcpsdk.ToolHandlerFor[CreateTaskParams, any] {
	return func(ctx context.Context, _ *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[CreateTaskParams]) (*mcpsdk.CallToolResultFor[any], error) {
		input := domain.TaskInput{
			Title:       params.Arguments.Title,
			Description: params.Arguments.Description,
			DueDate:     params.Arguments.DueDate,
			Assignee:    params.Arguments.Assignee,
			Links:       params.Arguments.Links,
		}

		result := service.Create(ctx, input, domain.Backend(params.Arguments.Platform))
		return resultResponse(result)
	}
}

func createTaskFromTextHandler(service ports.TaskService) mcpsdk.ToolHandlerFor[CreateTaskFromTextParams, any] {
	return func(ctx context.Context, _ *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[CreateTaskFromTextParams]) (*mcpsdk.CallToolResultFor[any], error) {
		result := service.Handle(ctx, params.Arguments.Text, domain.Backend(params.Arguments.Platform))
		return resultResponse(result)
	}
}

func parseTaskHandler(_ ports.TaskService) mcpsdk.ToolHandlerFor[ParseTaskParams, any] {
	return func(_ context.Context, _ *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[ParseTaskParams]) (*mcpsdk.CallToolResultFor[any], error) {
		input := parse.TaskInputFromText(params.Arguments.Text, time.Now())
		return jsonResponse(input)
	}
}

// resultResponse renders a TaskResult as a JSON text content block. Failed
// results are still tool successes; the agent reads the result body.
func resultResponse(result domain.TaskResult) (*mcpsdk.CallToolResultFor[any], error) {
	return jsonResponse(result)
}

func jsonResponse(v any) (*mcpsdk.CallToolResultFor[any], error) {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding tool result: %w", err)
	}

	return &mcpsdk.CallToolResultFor[any]{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: string(raw)}},
	}, nil
}
