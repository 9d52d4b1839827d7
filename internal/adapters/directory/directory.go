// Package directory implements a static, config-backed assignee directory.
// It maps human names extracted from free text to backend user identifiers.
package directory

import (
	"strings"

	"github.com/taskdrop/taskdrop/internal/domain"
	"github.com/taskdrop/taskdrop/internal/platform/config"
	"github.com/taskdrop/taskdrop/internal/ports"
)

// Compile-time interface check.
var _ ports.AssigneeDirectory = (*Static)(nil)

// Static resolves names against the directory entries loaded from
// configuration. Lookups are case-insensitive and ignore surrounding
// whitespace. The table is built once and never mutated, so it is safe for
// concurrent use.
type Static struct {
	byName map[string]config.DirectoryEntry
}

// New builds a Static directory from config entries. Later entries win when
// two share a name.
func New(entries []config.DirectoryEntry) *Static {
	byName := make(map[string]config.DirectoryEntry, len(entries))
	for _, e := range entries {
		byName[normalize(e.Name)] = e
	}
	return &Static{byName: byName}
}

// Resolve returns the identifier for name on the given backend. The second
// return value is false when the name is unknown or the entry has no
// identifier for that backend.
func (s *Static) Resolve(name string, backend domain.Backend) (string, bool) {
	entry, ok := s.byName[normalize(name)]
	if !ok {
		return "", false
	}

	var id string
	switch backend {
	case domain.BackendAsana:
		id = entry.Asana
	case domain.BackendPlanner:
		id = entry.Planner
	}

	return id, id != ""
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
