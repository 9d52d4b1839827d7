package mcp

// CreateTaskParams defines the parameters for the create-task tool. It
// mirrors the task input shape; the agent supplies already-structured fields
// and skips the text parser.
type CreateTaskParams struct {
	// Title is the task title. Required.
	Title string `json:"title"`

	// Description is free-form body text shown on the task.
	Description string `json:"description,omitempty"`

	// DueDate is a calendar date in YYYY-MM-DD form.
	DueDate string `json:"dueDate,omitempty"`

	// Assignee is a person's name, resolved against the directory.
	Assignee string `json:"assignee,omitempty"`

	// Links are URLs appended to the task body as a bulleted list.
	Links []string `json:"links,omitempty"`

	// Platform pins the backend: "asana" or "planner". Optional.
	Platform string `json:"platform,omitempty"`
}

// CreateTaskFromTextParams defines the parameters for the
// create-task-from-text tool: the full free-text pipeline.
type CreateTaskFromTextParams struct {
	// Text is the raw task description: an email body, dictation
	// transcript, or shortcut payload. Required.
	Text string `json:"text"`

	// Platform pins the backend: "asana" or "planner". Optional.
	Platform string `json:"platform,omitempty"`
}

// ParseTaskParams defines the parameters for the parse-task tool, which runs
// the parser without creating anything.
type ParseTaskParams struct {
	// Text is the raw task description to parse. Required.
	Text string `json:"text"`
}
