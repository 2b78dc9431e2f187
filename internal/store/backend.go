// Package store persists projects, tasks, agents, and messages as whole JSON collections.
//
// Each entity kind is one JSON array. A Backend loads and replaces those arrays; Store layers
// typed read-modify-write helpers on top. Backends: JSON files (default), SQLite, PostgreSQL.
package store

import "context"

// Collection kinds. Each is stored as a single JSON array.
const (
	KindProjects = "projects"
	KindTasks    = "tasks"
	KindAgents   = "agents"
	KindMessages = "messages"
)

// Kinds lists every collection kind.
func Kinds() []string {
	return []string{KindProjects, KindTasks, KindAgents, KindMessages}
}

// Backend stores one raw JSON document per collection kind.
// Load returns nil (and no error) when the collection has never been written.
// Save replaces the whole collection.
// Implementations: *FileBackend, *sqlite.Backend, *postgres.Backend.
type Backend interface {
	Load(ctx context.Context, kind string) ([]byte, error)
	Save(ctx context.Context, kind string, data []byte) error
	Close() error
}
