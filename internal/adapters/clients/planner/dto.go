package planner

// bucketListResponse is the body returned by GET /planner/plans/{id}/buckets.
type bucketListResponse struct {
	Value []bucket `json:"value"`
}

// bucket is one Planner bucket within a plan.
type bucket struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// createTaskRequest is the body for POST /planner/tasks. DueDateTime is a
// full ISO 8601 timestamp; Assignments is keyed by AAD user id.
type createTaskRequest struct {
	PlanID      string                `json:"planId"`
	BucketID    string                `json:"bucketId"`
	Title       string                `json:"title"`
	DueDateTime string                `json:"dueDateTime,omitempty"`
	Assignments map[string]assignment `json:"assignments,omitempty"`
}

// assignment is the Graph odata shape for assigning a Planner task.
type assignment struct {
	ODataType string `json:"@odata.type"`
	OrderHint string `json:"orderHint"`
}

// createTaskResponse is the body returned by POST /planner/tasks.
type createTaskResponse struct {
	ID string `json:"id"`
}

// detailsPatch is the body for PATCH /planner/tasks/{id}/details.
type detailsPatch struct {
	Description string `json:"description"`
}
