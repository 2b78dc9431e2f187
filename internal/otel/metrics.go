package otel

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel/metric"
)

var (
	mu                sync.RWMutex
	taskOpsCounter    metric.Int64Counter
	assignmentCounter metric.Int64Counter
	messagesCounter   metric.Int64Counter
	simulationsHist   metric.Int64Histogram
)

func initInstruments(m metric.Meter) error {
	taskOps, err := m.Int64Counter("rooster_task_operations", metric.WithDescription("Task operations (create, move, assign, note, delete)"))
	if err != nil {
		return err
	}
	assignments, err := m.Int64Counter("rooster_assignments", metric.WithDescription("Tasks auto-assigned, by routed role"))
	if err != nil {
		return err
	}
	messages, err := m.Int64Counter("rooster_workflow_messages", metric.WithDescription("Messages emitted by workflow simulation, by role and step"))
	if err != nil {
		return err
	}
	sims, err := m.Int64Histogram("rooster_simulation_messages", metric.WithDescription("Messages per workflow simulation"))
	if err != nil {
		return err
	}
	mu.Lock()
	taskOpsCounter, assignmentCounter, messagesCounter, simulationsHist = taskOps, assignments, messages, sims
	mu.Unlock()
	return nil
}

// RecordTaskOp records a task operation with the task's resulting status.
func RecordTaskOp(ctx context.Context, op, status string) {
	mu.RLock()
	c := taskOpsCounter
	mu.RUnlock()
	if c == nil {
		return
	}
	c.Add(ctx, 1, metric.WithAttributes(AttrOp.String(op), AttrStatus.String(status)))
}

// RecordAssignment records an auto-assignment to role.
func RecordAssignment(ctx context.Context, role string) {
	mu.RLock()
	c := assignmentCounter
	mu.RUnlock()
	if c == nil {
		return
	}
	c.Add(ctx, 1, metric.WithAttributes(AttrRole.String(role)))
}

// RecordWorkflowMessage records one simulated message.
func RecordWorkflowMessage(ctx context.Context, role, step string) {
	mu.RLock()
	c := messagesCounter
	mu.RUnlock()
	if c == nil {
		return
	}
	c.Add(ctx, 1, metric.WithAttributes(AttrRole.String(role), AttrStep.String(step)))
}

// RecordSimulation records the transcript length of one simulation.
func RecordSimulation(ctx context.Context, messages int) {
	mu.RLock()
	h := simulationsHist
	mu.RUnlock()
	if h == nil {
		return
	}
	h.Record(ctx, int64(messages))
}

// LaneCountFunc returns the number of tasks per lane label.
type LaneCountFunc func(ctx context.Context) (map[string]int64, error)

// RegisterLaneGauge reports rooster_tasks{status=...} from counts at collection time.
func RegisterLaneGauge(p *Provider, counts LaneCountFunc) error {
	if p == nil || counts == nil {
		return nil
	}
	m := p.provider.Meter(meterName)
	gauge, err := m.Int64ObservableGauge("rooster_tasks", metric.WithDescription("Number of tasks by lane"))
	if err != nil {
		return err
	}
	_, err = m.RegisterCallback(func(ctx context.Context, o metric.Observer) error {
		byLane, err := counts(ctx)
		if err != nil {
			return err
		}
		for lane, n := range byLane {
			o.ObserveInt64(gauge, n, metric.WithAttributes(AttrStatus.String(lane)))
		}
		return nil
	}, gauge)
	return err
}
