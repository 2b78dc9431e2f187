package board

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/marts9182/Rooster-AI-Project-Management/internal/otel"
	"github.com/marts9182/Rooster-AI-Project-Management/internal/store"
	"github.com/marts9182/Rooster-AI-Project-Management/pkg/models"
)

// Tasks manages task records. Mutators return a nil task when the id is unknown.
type Tasks struct {
	Store *store.Store
}

// NewTasks returns a Tasks service over st.
func NewTasks(st *store.Store) *Tasks {
	return &Tasks{Store: st}
}

// Create adds a TODO task to a project. The project is not checked for existence.
func (t *Tasks) Create(ctx context.Context, projectID, title, description string) (models.Task, error) {
	now := t.Store.Clock()
	task := models.Task{
		ID:          store.NewID("task"),
		ProjectID:   projectID,
		Title:       title,
		Description: description,
		Status:      models.StatusTodo,
		CreatedAt:   now,
		UpdatedAt:   now,
		Notes:       []string{},
	}
	if err := t.Store.SaveTask(ctx, &task); err != nil {
		return models.Task{}, fmt.Errorf("create task: %w", err)
	}
	otel.RecordTaskOp(ctx, "create", string(task.Status))
	slog.Info("task created", "task_id", task.ID, "project_id", projectID)
	return task, nil
}

// Get returns the task or nil.
func (t *Tasks) Get(ctx context.Context, id string) (*models.Task, error) {
	return t.Store.GetTask(ctx, id)
}

// List returns tasks of a project (all projects when projectID is empty), optionally in one lane.
func (t *Tasks) List(ctx context.Context, projectID string, status *models.Status) ([]models.Task, error) {
	tasks, err := t.Store.ListTasks(ctx, projectID)
	if err != nil || status == nil {
		return tasks, err
	}
	out := make([]models.Task, 0, len(tasks))
	for _, task := range tasks {
		if task.Status == *status {
			out = append(out, task)
		}
	}
	return out, nil
}

// Move sets the task's lane. Statuses outside the four lanes are rejected.
func (t *Tasks) Move(ctx context.Context, id string, status models.Status) (*models.Task, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("move task %s: unknown status %q", id, status)
	}
	return t.update(ctx, id, "move", func(task *models.Task) {
		task.Status = status
	})
}

// Assign sets the assignee without touching the agent record.
func (t *Tasks) Assign(ctx context.Context, id, agentID string) (*models.Task, error) {
	return t.update(ctx, id, "assign", func(task *models.Task) {
		task.Assignee = models.Ptr(agentID)
	})
}

// AddNote appends a note stamped with the time of the previous update.
func (t *Tasks) AddNote(ctx context.Context, id, note string) (*models.Task, error) {
	return t.update(ctx, id, "note", func(task *models.Task) {
		task.Notes = append(task.Notes, fmt.Sprintf("[%s] %s", task.UpdatedAt.Format(time.RFC3339), note))
	})
}

// Delete removes the task, reporting whether it existed.
func (t *Tasks) Delete(ctx context.Context, id string) (bool, error) {
	task, err := t.Store.GetTask(ctx, id)
	if err != nil || task == nil {
		return false, err
	}
	if err := t.Store.DeleteTask(ctx, id); err != nil {
		return false, err
	}
	otel.RecordTaskOp(ctx, "delete", string(task.Status))
	return true, nil
}

// CountByLane returns the number of tasks in each lane, keyed by lane label.
func (t *Tasks) CountByLane(ctx context.Context) (map[string]int64, error) {
	tasks, err := t.Store.ListTasks(ctx, "")
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(models.Lanes()))
	for _, lane := range models.Lanes() {
		counts[string(lane)] = 0
	}
	for _, task := range tasks {
		counts[string(task.Status)]++
	}
	return counts, nil
}

func (t *Tasks) update(ctx context.Context, id, op string, mutate func(*models.Task)) (*models.Task, error) {
	task, err := t.Store.GetTask(ctx, id)
	if err != nil || task == nil {
		return nil, err
	}
	mutate(task)
	if err := t.Store.SaveTask(ctx, task); err != nil {
		return nil, fmt.Errorf("%s task %s: %w", op, id, err)
	}
	otel.RecordTaskOp(ctx, op, string(task.Status))
	return task, nil
}
