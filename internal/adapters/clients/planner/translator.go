package planner

import (
	"strings"

	"github.com/taskdrop/taskdrop/internal/domain"
)

// dueTimeSuffix fixes the time-of-day Planner shows for parsed calendar
// dates. Planner stores full timestamps; 09:00 UTC keeps the task on the
// intended day for western time zones.
const dueTimeSuffix = "T09:00:00Z"

// taskViewBase is the user-facing Planner task URL prefix.
const taskViewBase = "https://tasks.office.com/Home/Task/"

// assignmentType is the Graph odata type for Planner task assignments.
const assignmentType = "#microsoft.graph.plannerAssignment"

// toCreateTaskRequest converts a domain TaskInput to the Graph task payload.
func toCreateTaskRequest(input domain.TaskInput, planID, bucketID string) createTaskRequest {
	req := createTaskRequest{
		PlanID:   planID,
		BucketID: bucketID,
		Title:    input.Title,
	}

	if input.DueDate != "" {
		req.DueDateTime = input.DueDate + dueTimeSuffix
	}

	if input.Assignee != "" {
		req.Assignments = map[string]assignment{
			input.Assignee: {
				ODataType: assignmentType,
				OrderHint: " !",
			},
		}
	}

	return req
}

// buildDescription renders the task details description: the description
// followed by a bulleted list of links, when any are present.
func buildDescription(description string, links []string) string {
	if len(links) == 0 {
		return description
	}

	var b strings.Builder
	b.WriteString(description)
	if description != "" {
		b.WriteString("\n\n")
	}
	b.WriteString("Links:")
	for _, link := range links {
		b.WriteString("\n- ")
		b.WriteString(link)
	}
	return b.String()
}

// taskViewURL returns the user-facing URL for a created Planner task.
func taskViewURL(id string) string {
	return taskViewBase + id
}
