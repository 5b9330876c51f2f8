// Package reschedule is the small state machine behind moving cases and
// tasks on the calendar: pick what to move, then pick the target date.
package reschedule

import (
	"errors"
	"sync"
	"time"

	dom "Bluecroft/internal/domain"
)

var (
	ErrNotAwaiting = errors.New("no reschedule in progress")
	ErrBadDrop     = errors.New("drop payload incomplete")
)

// Phase is the controller state.
type Phase string

const (
	Idle             Phase = "idle"
	AwaitingCaseDate Phase = "awaiting_case_date"
	AwaitingTaskDate Phase = "awaiting_task_date"
)

// DropKind discriminates drag-and-drop payloads.
type DropKind string

const (
	DropCase DropKind = "case"
	DropTask DropKind = "task"
)

// Mover commits the two move operations; the case store implements it.
type Mover interface {
	MoveCase(id string, date time.Time) (dom.Case, error)
	MoveTask(id, task string, date time.Time) (dom.Case, error)
}

// State is a snapshot of the controller for the API.
type State struct {
	Phase        Phase
	CaseID       string
	Task         string
	SelectedDate *time.Time
}

// Controller tracks which move is pending and which calendar day the day
// panel is showing. Entering an awaiting state closes the day panel so
// the grid is visible for target selection.
type Controller struct {
	mu       sync.Mutex
	mover    Mover
	phase    Phase
	caseID   string
	task     string
	selected *time.Time
}

func New(m Mover) *Controller {
	return &Controller{mover: m, phase: Idle}
}

// State returns the current snapshot.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	st := State{Phase: c.phase, CaseID: c.caseID, Task: c.task}
	if c.selected != nil {
		d := *c.selected
		st.SelectedDate = &d
	}
	return st
}

// SelectDate opens the day panel on the given date. Ignored while a move
// is pending; the next grid click commits the move instead.
func (c *Controller) SelectDate(date time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.phase != Idle {
		return
	}
	c.selected = &date
}

// ClearSelection closes the day panel.
func (c *Controller) ClearSelection() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selected = nil
}

// StartCase enters AwaitingCaseDate for the whole case.
func (c *Controller) StartCase(caseID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.phase = AwaitingCaseDate
	c.caseID = caseID
	c.task = ""
	c.selected = nil
}

// StartTask enters AwaitingTaskDate for a single task.
func (c *Controller) StartTask(caseID, task string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.phase = AwaitingTaskDate
	c.caseID = caseID
	c.task = task
	c.selected = nil
}

// Cancel abandons the pending move.
func (c *Controller) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reset()
}

// Confirm commits the pending move to the given target date and returns
// to Idle. The phase is left untouched when the store rejects the move,
// so the user can pick another cell.
func (c *Controller) Confirm(date time.Time) (dom.Case, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var (
		moved dom.Case
		err   error
	)
	switch c.phase {
	case AwaitingTaskDate:
		moved, err = c.mover.MoveTask(c.caseID, c.task, date)
	case AwaitingCaseDate:
		moved, err = c.mover.MoveCase(c.caseID, date)
	default:
		return dom.Case{}, ErrNotAwaiting
	}
	if err != nil {
		return dom.Case{}, err
	}
	c.reset()
	return moved, nil
}

// Drop is the stateless drag-and-drop path: it executes the same move
// operations directly without transiting the awaiting states.
func (c *Controller) Drop(kind DropKind, caseID, task string, date time.Time) (dom.Case, error) {
	switch kind {
	case DropTask:
		if caseID == "" || task == "" {
			return dom.Case{}, ErrBadDrop
		}
		return c.mover.MoveTask(caseID, task, date)
	case DropCase:
		if caseID == "" {
			return dom.Case{}, ErrBadDrop
		}
		return c.mover.MoveCase(caseID, date)
	default:
		return dom.Case{}, ErrBadDrop
	}
}

func (c *Controller) reset() {
	c.phase = Idle
	c.caseID = ""
	c.task = ""
}
