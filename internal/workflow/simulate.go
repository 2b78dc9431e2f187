package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/marts9182/Rooster-AI-Project-Management/internal/otel"
	"github.com/marts9182/Rooster-AI-Project-Management/pkg/models"
)

// Step is one participation in the scripted transcript.
type Step int

// Steps in transcript order.
const (
	StepAnnounce Step = iota
	StepTechnicalReview
	StepClaim
	StepTestPlanning
	StepAccessibilityReview
	StepWrapUp
)

// Steps returns every step in the order Simulate runs them.
func Steps() []Step {
	return []Step{StepAnnounce, StepTechnicalReview, StepClaim, StepTestPlanning, StepAccessibilityReview, StepWrapUp}
}

func (s Step) String() string {
	switch s {
	case StepAnnounce:
		return "announce"
	case StepTechnicalReview:
		return "technical_review"
	case StepClaim:
		return "claim"
	case StepTestPlanning:
		return "test_planning"
	case StepAccessibilityReview:
		return "accessibility_review"
	case StepWrapUp:
		return "wrap_up"
	default:
		return fmt.Sprintf("step(%d)", int(s))
	}
}

// uiKeywords mark a task as touching the interface, which brings in the accessibility review.
var uiKeywords = []string{"ui", "interface", "user", "form", "button", "page"}

// NeedsAccessibilityReview reports whether the description mentions the user interface.
func NeedsAccessibilityReview(description string) bool {
	lower := strings.ToLower(description)
	for _, kw := range uiKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// Simulate walks the fixed steps for task and returns the messages sent, in step order.
// A step whose agent is not on the roster is skipped. The accessibility review also
// requires NeedsAccessibilityReview. On a store error the messages sent so far are returned with it.
func (e *Engine) Simulate(ctx context.Context, task models.Task) ([]models.Message, error) {
	var out []models.Message
	for _, step := range Steps() {
		agent, err := e.participant(ctx, step, task)
		if err != nil {
			return out, fmt.Errorf("simulate %s: %w", step, err)
		}
		if agent == nil {
			continue
		}
		msg, err := e.SendMessage(ctx, agent.ID, stepContent(step, *agent, task), "", task.ID)
		if err != nil {
			return out, fmt.Errorf("simulate %s: %w", step, err)
		}
		otel.RecordWorkflowMessage(ctx, string(agent.Role), step.String())
		out = append(out, msg)
	}
	otel.RecordSimulation(ctx, len(out))
	slog.Debug("workflow simulated", "task_id", task.ID, "messages", len(out))
	return out, nil
}

func (e *Engine) participant(ctx context.Context, step Step, task models.Task) (*models.Agent, error) {
	switch step {
	case StepAnnounce:
		return e.Roster.FindByRole(ctx, models.RoleProductOwner)
	case StepTechnicalReview:
		return e.Roster.FindByRole(ctx, models.RoleTechLead)
	case StepClaim:
		if task.Assignee == nil || *task.Assignee == "" {
			return nil, nil
		}
		return e.Roster.FindByID(ctx, *task.Assignee)
	case StepTestPlanning:
		return e.Roster.FindByRole(ctx, models.RoleQA)
	case StepAccessibilityReview:
		agent, err := e.Roster.FindByRole(ctx, models.RoleAccessibility)
		if err != nil || agent == nil {
			return nil, err
		}
		if !NeedsAccessibilityReview(task.Description) {
			return nil, nil
		}
		return agent, nil
	case StepWrapUp:
		return e.Roster.FindByRole(ctx, models.RoleManager)
	default:
		return nil, nil
	}
}

func stepContent(step Step, agent models.Agent, task models.Task) string {
	p := Perspective(agent, task)
	switch step {
	case StepAnnounce:
		return fmt.Sprintf("I've created a new task: '%s'. %s", task.Title, p)
	case StepTechnicalReview:
		return fmt.Sprintf("I've reviewed '%s' from a technical perspective. %s I'll ensure we follow best practices.", task.Title, p)
	case StepClaim:
		return fmt.Sprintf("I'm taking on '%s'. %s", task.Title, p)
	case StepTestPlanning:
		return fmt.Sprintf("For '%s', %s I'll prepare test cases.", task.Title, p)
	case StepAccessibilityReview:
		return fmt.Sprintf("I'm reviewing '%s' for accessibility. %s", task.Title, p)
	case StepWrapUp:
		return fmt.Sprintf("Great collaboration everyone on '%s'! %s Let me know if you need any support.", task.Title, p)
	default:
		return p
	}
}
