// Package tui renders the task board as a terminal UI.
package tui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/marts9182/Rooster-AI-Project-Management/pkg/models"
	"github.com/rivo/tview"
)

// Card is one task as shown in a lane.
type Card struct {
	TaskID   string
	Title    string
	Assignee string
}

// Lane is one board column.
type Lane struct {
	Status models.Status
	Cards  []Card
}

// BuildLanes groups tasks into the four lanes in board order, keeping stored order within a lane.
// Assignees resolve against agents; unknown or missing assignees show as "Unassigned".
func BuildLanes(tasks []models.Task, agents []models.Agent) []Lane {
	byID := make(map[string]models.Agent, len(agents))
	for _, a := range agents {
		byID[a.ID] = a
	}
	lanes := make([]Lane, 0, len(models.Lanes()))
	index := make(map[models.Status]int, len(models.Lanes()))
	for i, s := range models.Lanes() {
		lanes = append(lanes, Lane{Status: s})
		index[s] = i
	}
	for _, t := range tasks {
		i, ok := index[t.Status]
		if !ok {
			continue
		}
		assignee := "Unassigned"
		if t.Assignee != nil {
			if a, ok := byID[*t.Assignee]; ok {
				assignee = a.Label()
			}
		}
		lanes[i].Cards = append(lanes[i].Cards, Card{TaskID: t.ID, Title: t.Title, Assignee: assignee})
	}
	return lanes
}

// LaneColor is the header color of a lane.
func LaneColor(s models.Status) tcell.Color {
	switch s {
	case models.StatusTodo:
		return tcell.ColorYellow
	case models.StatusInProgress:
		return tcell.ColorDodgerBlue
	case models.StatusReview:
		return tcell.ColorOrchid
	case models.StatusDone:
		return tcell.ColorGreen
	}
	return tcell.ColorWhite
}

// Detail renders the task header, notes and transcript for the detail pane.
func Detail(t models.Task, msgs []models.Message, agents []models.Agent) string {
	byID := make(map[string]models.Agent, len(agents))
	for _, a := range agents {
		byID[a.ID] = a
	}
	var b strings.Builder
	fmt.Fprintf(&b, "[::b]%s[::-] (%s)\n", tview.Escape(t.Title), t.ID)
	fmt.Fprintf(&b, "Status: %s\n", t.Status)
	if t.Description != "" {
		fmt.Fprintf(&b, "%s\n", tview.Escape(t.Description))
	}
	for _, n := range t.Notes {
		fmt.Fprintf(&b, "  • %s\n", tview.Escape(n))
	}
	if len(msgs) == 0 {
		b.WriteString("\nNo messages")
		return b.String()
	}
	for _, m := range msgs {
		a, ok := byID[m.FromAgent]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "\n[yellow]%s:[-]\n  %s\n", tview.Escape(a.Label()), tview.Escape(m.Content))
	}
	return b.String()
}
