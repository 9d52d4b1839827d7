package directory

import (
	"testing"

	"github.com/taskdrop/taskdrop/internal/domain"
	"github.com/taskdrop/taskdrop/internal/platform/config"
)

func testEntries() []config.DirectoryEntry {
	return []config.DirectoryEntry{
		{Name: "John", Asana: "gid-john", Planner: "aad-john"},
		{Name: "Sarah", Asana: "gid-sarah"},
		{Name: "Mike", Planner: "aad-mike"},
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	dir := New(testEntries())

	tests := []struct {
		name    string
		lookup  string
		backend domain.Backend
		wantID  string
		wantOK  bool
	}{
		{name: "exact match", lookup: "John", backend: domain.BackendAsana, wantID: "gid-john", wantOK: true},
		{name: "case insensitive", lookup: "jOhN", backend: domain.BackendPlanner, wantID: "aad-john", wantOK: true},
		{name: "surrounding whitespace", lookup: "  sarah ", backend: domain.BackendAsana, wantID: "gid-sarah", wantOK: true},
		{name: "no id for backend", lookup: "sarah", backend: domain.BackendPlanner, wantID: "", wantOK: false},
		{name: "unknown name", lookup: "alex", backend: domain.BackendAsana, wantID: "", wantOK: false},
		{name: "planner only entry", lookup: "mike", backend: domain.BackendPlanner, wantID: "aad-mike", wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			id, ok := dir.Resolve(tt.lookup, tt.backend)
			if id != tt.wantID || ok != tt.wantOK {
				t.Errorf("Resolve(%q, %q) = (%q, %v), want (%q, %v)",
					tt.lookup, tt.backend, id, ok, tt.wantID, tt.wantOK)
			}
		})
	}
}

func TestResolve_LaterEntryWins(t *testing.T) {
	t.Parallel()

	dir := New([]config.DirectoryEntry{
		{Name: "john", Asana: "gid-old"},
		{Name: "John", Asana: "gid-new"},
	})

	id, ok := dir.Resolve("john", domain.BackendAsana)
	if !ok || id != "gid-new" {
		t.Errorf("Resolve() = (%q, %v), want (gid-new, true)", id, ok)
	}
}
