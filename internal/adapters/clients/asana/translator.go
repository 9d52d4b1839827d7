package asana

import (
	"strings"

	"github.com/taskdrop/taskdrop/internal/domain"
)

// toCreateTaskRequest converts a domain TaskInput to the Asana task payload.
// The task is always filed into projectID; input.Project names an Asana
// project only indirectly via configuration, so it is not sent.
func toCreateTaskRequest(input domain.TaskInput, projectID string) createTaskRequest {
	return createTaskRequest{
		Data: taskFields{
			Name:     input.Title,
			Notes:    buildNotes(input.Description, input.Links),
			DueOn:    input.DueDate,
			Assignee: input.Assignee,
			Projects: []string{projectID},
		},
	}
}

// buildNotes renders the task notes: the description followed by a bulleted
// list of links, when any are present.
func buildNotes(description string, links []string) string {
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
