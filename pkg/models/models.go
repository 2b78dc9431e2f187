// Package models provides the board's record types: projects, tasks, agents, and messages.
// The JSON field names are the on-disk layout of each collection.
package models

import "time"

// Project is a software project, optionally backed by a local checkout of a git repository.
type Project struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	RepoURL     *string   `json:"repo_url"`
	RepoPath    *string   `json:"repo_path"`
	CreatedAt   time.Time `json:"created_at"`
}

// Task is a card on the board. Status is the lane it sits in.
type Task struct {
	ID          string    `json:"id"`
	ProjectID   string    `json:"project_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      Status    `json:"status"`
	Assignee    *string   `json:"assignee"` // agent id
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Notes       []string  `json:"notes"`
}

// Agent is a persona on the roster.
type Agent struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Role        Role     `json:"role"`
	Personality string   `json:"personality"`
	Skills      []string `json:"skills"`
	CurrentTask *string  `json:"current_task"`
}

// Message is one line of agent collaboration. A nil ToAgent is a broadcast.
type Message struct {
	ID        string    `json:"id"`
	FromAgent string    `json:"from_agent"`
	ToAgent   *string   `json:"to_agent"`
	Content   string    `json:"content"`
	TaskID    *string   `json:"task_id"`
	Timestamp time.Time `json:"timestamp"`
}

// Label returns "Name (Role)", the way agents are shown next to their messages.
func (a Agent) Label() string {
	return a.Name + " (" + string(a.Role) + ")"
}

// Ptr returns a pointer to s. Used for the optional string fields.
func Ptr(s string) *string {
	return &s
}

// Deref returns *s, or "" when s is nil.
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
