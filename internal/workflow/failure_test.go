package workflow

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/marts9182/Rooster-AI-Project-Management/internal/roster"
	"github.com/marts9182/Rooster-AI-Project-Management/internal/store"
	"github.com/marts9182/Rooster-AI-Project-Management/pkg/models"
)

var errDiskFull = errors.New("disk full")

// flakyBackend fails the failOn-th Save of failKind once armed.
type flakyBackend struct {
	store.Backend
	failKind string
	failOn   int
	saves    int
}

func (b *flakyBackend) Save(ctx context.Context, kind string, data []byte) error {
	if b.failKind != "" && kind == b.failKind {
		b.saves++
		if b.saves == b.failOn {
			return errDiskFull
		}
	}
	return b.Backend.Save(ctx, kind, data)
}

func newFlakyEngine(t *testing.T) (*Engine, *flakyBackend) {
	t.Helper()
	fb, err := store.OpenFileBackend(filepath.Join(t.TempDir(), "data"))
	if err != nil {
		t.Fatalf("OpenFileBackend: %v", err)
	}
	flaky := &flakyBackend{Backend: fb}
	e := New(store.New(flaky))
	if _, err := roster.New(e.Store).Seed(context.Background()); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	return e, flaky
}

func TestSimulate_storeErrorKeepsEarlierMessages(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e, flaky := newFlakyEngine(t)
	task := &models.Task{ID: "task-1", Title: "Login", Description: "fix login bug", Status: models.StatusTodo, Assignee: models.Ptr("agent-qa-001")}
	if err := e.Store.SaveTask(ctx, task); err != nil {
		t.Fatalf("SaveTask: %v", err)
	}

	flaky.failKind, flaky.failOn = store.KindMessages, 3
	msgs, err := e.Simulate(ctx, *task)
	if !errors.Is(err, errDiskFull) {
		t.Fatalf("Simulate: got err %v, want %v", err, errDiskFull)
	}
	if len(msgs) != 2 {
		t.Fatalf("Simulate: got %d messages, want 2", len(msgs))
	}
	if msgs[0].FromAgent != "agent-po-001" || msgs[1].FromAgent != "agent-techlead-001" {
		t.Fatalf("Simulate senders: %s, %s", msgs[0].FromAgent, msgs[1].FromAgent)
	}
	stored, err := e.Store.ListMessages(ctx, task.ID, 0)
	if err != nil {
		t.Fatalf("ListMessages: %v", err)
	}
	if len(stored) != 2 {
		t.Fatalf("stored messages: got %d, want 2", len(stored))
	}
}

func TestAssignByRole_agentSaveFailureLeavesTaskAssigned(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e, flaky := newFlakyEngine(t)
	task := &models.Task{ID: "task-1", Title: "Login", Description: "implement new login feature", Status: models.StatusTodo}
	if err := e.Store.SaveTask(ctx, task); err != nil {
		t.Fatalf("SaveTask: %v", err)
	}

	flaky.failKind, flaky.failOn = store.KindAgents, 1
	agent, err := e.AssignByRole(ctx, task)
	if !errors.Is(err, errDiskFull) || agent != nil {
		t.Fatalf("AssignByRole: got %+v, %v", agent, err)
	}
	storedTask, err := e.Store.GetTask(ctx, task.ID)
	if err != nil || storedTask == nil {
		t.Fatalf("GetTask: %v, %v", storedTask, err)
	}
	if models.Deref(storedTask.Assignee) != "agent-developer-001" {
		t.Fatalf("task assignee: got %q", models.Deref(storedTask.Assignee))
	}
	dev, err := e.Store.GetAgent(ctx, "agent-developer-001")
	if err != nil || dev == nil {
		t.Fatalf("GetAgent: %v, %v", dev, err)
	}
	if dev.CurrentTask != nil {
		t.Fatalf("agent current_task should stay nil, got %q", *dev.CurrentTask)
	}
}

func TestAssignByRole_taskSaveFailureTouchesNothing(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e, flaky := newFlakyEngine(t)
	task := &models.Task{ID: "task-1", Title: "Login", Description: "fix login bug", Status: models.StatusTodo}
	if err := e.Store.SaveTask(ctx, task); err != nil {
		t.Fatalf("SaveTask: %v", err)
	}

	flaky.failKind, flaky.failOn = store.KindTasks, 1
	if _, err := e.AssignByRole(ctx, task); !errors.Is(err, errDiskFull) {
		t.Fatalf("AssignByRole: got %v, want %v", err, errDiskFull)
	}
	storedTask, _ := e.Store.GetTask(ctx, task.ID)
	if storedTask.Assignee != nil {
		t.Fatalf("task assignee should stay nil, got %q", *storedTask.Assignee)
	}
	qa, _ := e.Store.GetAgent(ctx, "agent-qa-001")
	if qa.CurrentTask != nil {
		t.Fatal("agent should not be updated when the task save fails")
	}
}
