package tui

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/marts9182/Rooster-AI-Project-Management/internal/store"
	"github.com/marts9182/Rooster-AI-Project-Management/pkg/models"
	"github.com/rivo/tview"
)

// Board is the interactive lane view over a store.
type Board struct {
	Store     *store.Store
	ProjectID string // empty shows every project

	app    *tview.Application
	tables []*tview.Table
	detail *tview.TextView
	status *tview.TextView
	lanes  []Lane
	agents []models.Agent
}

// NewBoard returns a board for projectID (all projects when empty).
func NewBoard(st *store.Store, projectID string) *Board {
	return &Board{Store: st, ProjectID: projectID}
}

// Run blocks until the user quits (q, Esc, F10) or ctx is cancelled.
func (b *Board) Run(ctx context.Context) error {
	b.app = tview.NewApplication()
	columns := tview.NewFlex()
	for _, s := range models.Lanes() {
		t := tview.NewTable().
			SetBorders(false).
			SetSelectable(true, false)
		t.SetTitle(string(s)).SetTitleColor(LaneColor(s)).SetBorder(true)
		t.SetSelectedFunc(func(row, _ int) {
			b.showTask(ctx, s, row)
		})
		b.tables = append(b.tables, t)
		columns.AddItem(t, 0, 1, len(b.tables) == 1)
	}
	b.detail = tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true)
	b.detail.SetTitle("Task").SetBorder(true)
	b.status = tview.NewTextView().SetDynamicColors(true)
	b.status.SetText("Enter inspect, Tab next lane, r refresh, q quit")

	root := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(columns, 0, 3, true).
		AddItem(b.detail, 0, 2, false).
		AddItem(b.status, 1, 0, false)

	focused := 0
	b.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEscape, tcell.KeyF10:
			b.app.Stop()
			return nil
		case tcell.KeyTAB:
			focused = (focused + 1) % len(b.tables)
			b.app.SetFocus(b.tables[focused])
			return nil
		case tcell.KeyBacktab:
			focused = (focused + len(b.tables) - 1) % len(b.tables)
			b.app.SetFocus(b.tables[focused])
			return nil
		case tcell.KeyRune:
			switch event.Rune() {
			case 'q':
				b.app.Stop()
				return nil
			case 'r':
				b.refresh(ctx)
				return nil
			}
		}
		return event
	})

	b.refresh(ctx)
	done := make(chan struct{})
	defer close(done)
	go watchContext(ctx, done, b.app.Stop)
	return b.app.SetRoot(root, true).Run()
}

// watchContext calls stop when ctx is cancelled, and returns without calling it once done closes.
func watchContext(ctx context.Context, done <-chan struct{}, stop func()) {
	select {
	case <-ctx.Done():
		stop()
	case <-done:
	}
}

func (b *Board) refresh(ctx context.Context) {
	tasks, err := b.Store.ListTasks(ctx, b.ProjectID)
	if err == nil {
		b.agents, err = b.Store.ListAgents(ctx)
	}
	if err != nil {
		slog.Warn("board refresh failed", "err", err)
		b.status.SetText(fmt.Sprintf("[red]load error: %v", err))
		return
	}
	b.lanes = BuildLanes(tasks, b.agents)
	for i, lane := range b.lanes {
		renderLane(b.tables[i], lane)
	}
}

func renderLane(table *tview.Table, lane Lane) {
	table.Clear()
	table.SetTitle(fmt.Sprintf("%s (%d)", lane.Status, len(lane.Cards)))
	for row, c := range lane.Cards {
		table.SetCell(row, 0, tview.NewTableCell(tview.Escape(c.Title)).SetExpansion(1))
		table.SetCell(row, 1, tview.NewTableCell(tview.Escape(c.Assignee)).SetTextColor(tcell.ColorGray))
	}
}

func (b *Board) showTask(ctx context.Context, s models.Status, row int) {
	var cards []Card
	for _, l := range b.lanes {
		if l.Status == s {
			cards = l.Cards
		}
	}
	if row < 0 || row >= len(cards) {
		return
	}
	t, err := b.Store.GetTask(ctx, cards[row].TaskID)
	if err != nil || t == nil {
		b.status.SetText(fmt.Sprintf("[red]task %s unavailable", cards[row].TaskID))
		return
	}
	msgs, err := b.Store.ListMessages(ctx, t.ID, models.DefaultMessageListLimit)
	if err != nil {
		b.status.SetText(fmt.Sprintf("[red]messages: %v", err))
		return
	}
	b.detail.SetText(Detail(*t, msgs, b.agents)).ScrollToBeginning()
}
