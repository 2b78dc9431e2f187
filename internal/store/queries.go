package store

import (
	"context"

	"github.com/marts9182/Rooster-AI-Project-Management/pkg/models"
)

// Projects

// ListProjects returns every project in stored order.
func (s *Store) ListProjects(ctx context.Context) ([]models.Project, error) {
	return LoadAll[models.Project](ctx, s.Backend, KindProjects)
}

// GetProject returns the project with id, or nil if there is none.
func (s *Store) GetProject(ctx context.Context, id string) (*models.Project, error) {
	projects, err := s.ListProjects(ctx)
	if err != nil {
		return nil, err
	}
	for i := range projects {
		if projects[i].ID == id {
			return &projects[i], nil
		}
	}
	return nil, nil
}

// SaveProject inserts p, replacing any project with the same id. The saved project moves to the end.
func (s *Store) SaveProject(ctx context.Context, p models.Project) error {
	projects, err := s.ListProjects(ctx)
	if err != nil {
		return err
	}
	projects = upsert(projects, p, func(x models.Project) string { return x.ID })
	return SaveAll(ctx, s.Backend, KindProjects, projects)
}

// DeleteProject removes the project. Its tasks are left in place.
func (s *Store) DeleteProject(ctx context.Context, id string) error {
	projects, err := s.ListProjects(ctx)
	if err != nil {
		return err
	}
	projects = without(projects, id, func(x models.Project) string { return x.ID })
	return SaveAll(ctx, s.Backend, KindProjects, projects)
}

// Tasks

// ListTasks returns tasks in stored order, restricted to projectID when it is non-empty.
func (s *Store) ListTasks(ctx context.Context, projectID string) ([]models.Task, error) {
	tasks, err := LoadAll[models.Task](ctx, s.Backend, KindTasks)
	if err != nil {
		return nil, err
	}
	if projectID == "" {
		return tasks, nil
	}
	out := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.ProjectID == projectID {
			out = append(out, t)
		}
	}
	return out, nil
}

// GetTask returns the task with id, or nil if there is none.
func (s *Store) GetTask(ctx context.Context, id string) (*models.Task, error) {
	tasks, err := s.ListTasks(ctx, "")
	if err != nil {
		return nil, err
	}
	for i := range tasks {
		if tasks[i].ID == id {
			return &tasks[i], nil
		}
	}
	return nil, nil
}

// SaveTask refreshes t.UpdatedAt and upserts the task.
func (s *Store) SaveTask(ctx context.Context, t *models.Task) error {
	t.UpdatedAt = s.Clock()
	tasks, err := s.ListTasks(ctx, "")
	if err != nil {
		return err
	}
	tasks = upsert(tasks, *t, func(x models.Task) string { return x.ID })
	return SaveAll(ctx, s.Backend, KindTasks, tasks)
}

// DeleteTask removes the task with id.
func (s *Store) DeleteTask(ctx context.Context, id string) error {
	tasks, err := s.ListTasks(ctx, "")
	if err != nil {
		return err
	}
	tasks = without(tasks, id, func(x models.Task) string { return x.ID })
	return SaveAll(ctx, s.Backend, KindTasks, tasks)
}

// Agents

// ListAgents returns the roster in stored order.
func (s *Store) ListAgents(ctx context.Context) ([]models.Agent, error) {
	return LoadAll[models.Agent](ctx, s.Backend, KindAgents)
}

// GetAgent returns the agent with id, or nil if there is none.
func (s *Store) GetAgent(ctx context.Context, id string) (*models.Agent, error) {
	agents, err := s.ListAgents(ctx)
	if err != nil {
		return nil, err
	}
	for i := range agents {
		if agents[i].ID == id {
			return &agents[i], nil
		}
	}
	return nil, nil
}

// SaveAgent upserts a.
func (s *Store) SaveAgent(ctx context.Context, a models.Agent) error {
	agents, err := s.ListAgents(ctx)
	if err != nil {
		return err
	}
	agents = upsert(agents, a, func(x models.Agent) string { return x.ID })
	return SaveAll(ctx, s.Backend, KindAgents, agents)
}

// Messages

// ListMessages returns messages oldest first, restricted to taskID when non-empty.
// With limit > 0 only the most recent limit messages are returned.
func (s *Store) ListMessages(ctx context.Context, taskID string, limit int) ([]models.Message, error) {
	msgs, err := LoadAll[models.Message](ctx, s.Backend, KindMessages)
	if err != nil {
		return nil, err
	}
	if taskID != "" {
		filtered := make([]models.Message, 0, len(msgs))
		for _, m := range msgs {
			if m.TaskID != nil && *m.TaskID == taskID {
				filtered = append(filtered, m)
			}
		}
		msgs = filtered
	}
	if limit > 0 && len(msgs) > limit {
		msgs = msgs[len(msgs)-limit:]
	}
	return msgs, nil
}

// AppendMessage stamps m.Timestamp when it is zero and appends it to the log.
func (s *Store) AppendMessage(ctx context.Context, m *models.Message) error {
	if m.Timestamp.IsZero() {
		m.Timestamp = s.Clock()
	}
	msgs, err := LoadAll[models.Message](ctx, s.Backend, KindMessages)
	if err != nil {
		return err
	}
	msgs = append(msgs, *m)
	return SaveAll(ctx, s.Backend, KindMessages, msgs)
}

func upsert[T any](items []T, item T, id func(T) string) []T {
	items = without(items, id(item), id)
	return append(items, item)
}

func without[T any](items []T, drop string, id func(T) string) []T {
	out := items[:0]
	for _, x := range items {
		if id(x) != drop {
			out = append(out, x)
		}
	}
	return out
}
