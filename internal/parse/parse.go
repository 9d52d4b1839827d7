package parse

import (
	"time"

	"github.com/taskdrop/taskdrop/internal/domain"
)

// TaskInputFromText composes the individual extractors into a partial
// TaskInput: the title from ExtractTitle, the due date from ExtractDueDate
// (absent when no pattern matches), and the description from CleanEmailBody
// applied to the original text, not the extracted title.
//
// The result has not been validated; callers run TaskInput.Validate once
// before handing it to an adapter.
func TaskInputFromText(text string, now time.Time) domain.TaskInput {
	input := domain.TaskInput{
		Title:       ExtractTitle(text),
		Description: CleanEmailBody(text),
	}

	if due, ok := ExtractDueDate(text, now); ok {
		input.DueDate = due
	}

	return input
}
