// Package schedule answers which cases and tasks are due on a calendar
// date. All functions are pure over domain values; "today" never enters
// the logic, callers pass the date they are asking about.
package schedule

import (
	"time"

	dom "Bluecroft/internal/domain"
)

// Status is the completion indicator for a case on a given day.
type Status string

const (
	StatusNone     Status = "none"     // no tasks at all
	StatusPending  Status = "pending"  // none completed
	StatusDone     Status = "done"     // all completed
	StatusProgress Status = "progress" // some completed
)

// overrideLayouts accepts what the override store may contain: date-only
// entries from manual due-date picks, RFC3339 from reschedules.
var overrideLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
}

func parseOverride(s string) (time.Time, bool) {
	for _, layout := range overrideLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ResolveTaskDueDate resolves a task's due date through the fallback
// chain: per-task override, case scheduled date, creation + 1 day.
// Override strings are authoritative even outside the case lifetime;
// an unparseable override falls through to the case-level date.
func ResolveTaskDueDate(c dom.Case, task string) time.Time {
	if raw, ok := c.LoanData.TaskDueDates[task]; ok {
		if t, ok := parseOverride(raw); ok {
			return t
		}
	}
	return caseBaseDueDate(c)
}

func caseBaseDueDate(c dom.Case) time.Time {
	if c.ScheduledDate != nil {
		return *c.ScheduledDate
	}
	return c.CreatedAt.AddDate(0, 0, 1)
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// CasesDueOn filters cases with activity on the given calendar day
// (time-of-day ignored). A case qualifies when any task override lands
// on that day, or when its case-level effective date does. The second
// rule keeps a case on its base date even after every task has been
// overridden away from it; that over-inclusion is deliberate.
func CasesDueOn(cases []dom.Case, date time.Time) []dom.Case {
	var due []dom.Case
	for _, c := range cases {
		if caseDueOn(c, date) {
			due = append(due, c)
		}
	}
	return due
}

func caseDueOn(c dom.Case, date time.Time) bool {
	for _, raw := range c.LoanData.TaskDueDates {
		if t, ok := parseOverride(raw); ok && sameDay(t, date) {
			return true
		}
	}
	return sameDay(caseBaseDueDate(c), date)
}

// TasksDueInMonth returns the case's next steps resolving into the given
// year+month. The monthly grid counts with this coarser filter; the day
// panel uses TasksDueOnDay. The two deliberately differ.
func TasksDueInMonth(c dom.Case, date time.Time) []string {
	return filterTasks(c, date, sameMonth)
}

// TasksDueOnDay returns the case's next steps resolving onto the exact
// calendar day.
func TasksDueOnDay(c dom.Case, date time.Time) []string {
	return filterTasks(c, date, sameDay)
}

func filterTasks(c dom.Case, date time.Time, match func(a, b time.Time) bool) []string {
	var out []string
	for _, task := range c.NextSteps() {
		if match(ResolveTaskDueDate(c, task), date) {
			out = append(out, task)
		}
	}
	return out
}

// CompletedCount returns how many of the given tasks the case has done.
func CompletedCount(c dom.Case, tasks []string) int {
	n := 0
	for _, task := range tasks {
		if c.IsTaskCompleted(task) {
			n++
		}
	}
	return n
}

// PendingCount returns the not-yet-completed remainder.
func PendingCount(c dom.Case, tasks []string) int {
	return len(tasks) - CompletedCount(c, tasks)
}

// StatusOf maps completion counts onto the four-state indicator.
func StatusOf(completed, total int) Status {
	switch {
	case total == 0:
		return StatusNone
	case completed == 0:
		return StatusPending
	case completed == total:
		return StatusDone
	default:
		return StatusProgress
	}
}
