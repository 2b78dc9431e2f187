// Package workflow assigns tasks to roster agents and plays out the scripted
// collaboration transcript for a task.
package workflow

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/marts9182/Rooster-AI-Project-Management/internal/otel"
	"github.com/marts9182/Rooster-AI-Project-Management/internal/roster"
	"github.com/marts9182/Rooster-AI-Project-Management/internal/router"
	"github.com/marts9182/Rooster-AI-Project-Management/internal/store"
	"github.com/marts9182/Rooster-AI-Project-Management/pkg/models"
)

// Engine runs assignment and simulation against a store. It holds no state of its own.
type Engine struct {
	Store  *store.Store
	Roster *roster.Directory
	// NewID generates message ids. Defaults to store.NewID("msg").
	NewID func() string
}

// New returns an Engine over st.
func New(st *store.Store) *Engine {
	return &Engine{Store: st, Roster: roster.New(st)}
}

// AssignByRole routes the task by its description and assigns it to the first agent holding that role.
// The task is saved first, then the agent; the two writes are independent.
// Returns nil when the roster has no agent for the role.
func (e *Engine) AssignByRole(ctx context.Context, task *models.Task) (*models.Agent, error) {
	role := router.Classify(task.Description)
	agent, err := e.Roster.FindByRole(ctx, role)
	if err != nil {
		return nil, err
	}
	if agent == nil {
		slog.Debug("no agent for role", "task_id", task.ID, "role", role)
		return nil, nil
	}
	task.Assignee = models.Ptr(agent.ID)
	if err := e.Store.SaveTask(ctx, task); err != nil {
		return nil, fmt.Errorf("assign task %s: %w", task.ID, err)
	}
	agent.CurrentTask = models.Ptr(task.ID)
	if err := e.Store.SaveAgent(ctx, *agent); err != nil {
		return nil, fmt.Errorf("update agent %s: %w", agent.ID, err)
	}
	otel.RecordAssignment(ctx, string(role))
	slog.Info("task assigned", "task_id", task.ID, "agent", agent.ID, "role", role)
	return agent, nil
}

// SendMessage appends a message from one agent. An empty to is a broadcast; an empty taskID leaves the task reference unset.
func (e *Engine) SendMessage(ctx context.Context, from, content, to, taskID string) (models.Message, error) {
	msg := models.Message{
		ID:        e.newID(),
		FromAgent: from,
		Content:   content,
	}
	if to != "" {
		msg.ToAgent = models.Ptr(to)
	}
	if taskID != "" {
		msg.TaskID = models.Ptr(taskID)
	}
	if err := e.Store.AppendMessage(ctx, &msg); err != nil {
		return models.Message{}, err
	}
	return msg, nil
}

func (e *Engine) newID() string {
	if e.NewID != nil {
		return e.NewID()
	}
	return store.NewID("msg")
}
