package asana

// Asana wraps every request and response payload in a "data" envelope.

// createTaskRequest is the body for POST /tasks.
type createTaskRequest struct {
	Data taskFields `json:"data"`
}

// taskFields carries the writable task attributes. DueOn is a calendar date
// (YYYY-MM-DD); Assignee is a user GID.
type taskFields struct {
	Name     string   `json:"name"`
	Notes    string   `json:"notes,omitempty"`
	DueOn    string   `json:"due_on,omitempty"`
	Assignee string   `json:"assignee,omitempty"`
	Projects []string `json:"projects"`
}

// createTaskResponse is the body returned by POST /tasks.
type createTaskResponse struct {
	Data struct {
		GID          string `json:"gid"`
		PermalinkURL string `json:"permalink_url"`
	} `json:"data"`
}

// addToSectionRequest is the body for POST /sections/{gid}/addTask.
type addToSectionRequest struct {
	Data struct {
		Task string `json:"task"`
	} `json:"data"`
}
