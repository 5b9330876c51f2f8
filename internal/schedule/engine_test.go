package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dom "Bluecroft/internal/domain"
)

var base = time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)

func caseWith(scheduled *time.Time, overrides map[string]string, steps ...string) dom.Case {
	return dom.Case{
		ID:        "c1",
		CreatedAt: base,
		LoanData:  dom.LoanData{TaskDueDates: overrides},
		RiskReport: &dom.RiskReport{
			NextSteps: steps,
		},
		ScheduledDate:  scheduled,
		CompletedTasks: map[string]struct{}{},
	}
}

func TestResolveTaskDueDateFallbackChain(t *testing.T) {
	override := base.AddDate(0, 0, 3)
	scheduled := base.AddDate(0, 0, 5)

	c := caseWith(&scheduled, map[string]string{"verify id": override.Format(time.RFC3339)}, "verify id", "chase valuer")

	assert.True(t, ResolveTaskDueDate(c, "verify id").Equal(override), "override wins")
	assert.True(t, ResolveTaskDueDate(c, "chase valuer").Equal(scheduled), "scheduled date next")

	c.ScheduledDate = nil
	got := ResolveTaskDueDate(c, "chase valuer")
	assert.True(t, got.Equal(base.AddDate(0, 0, 1)), "creation+1d last")
}

func TestResolveTaskDueDateIdempotent(t *testing.T) {
	scheduled := base.AddDate(0, 0, 2)
	c := caseWith(&scheduled, map[string]string{"t": "2026-04-01"}, "t")
	first := ResolveTaskDueDate(c, "t")
	second := ResolveTaskDueDate(c, "t")
	assert.True(t, first.Equal(second))
}

func TestResolveTaskDueDateBadOverrideFallsThrough(t *testing.T) {
	scheduled := base.AddDate(0, 0, 2)
	c := caseWith(&scheduled, map[string]string{"t": "next tuesday-ish"}, "t")
	assert.True(t, ResolveTaskDueDate(c, "t").Equal(scheduled))
}

func TestCasesDueOnBaseDate(t *testing.T) {
	scheduled := base.AddDate(0, 0, 1) // tomorrow
	c := caseWith(&scheduled, nil)

	due := CasesDueOn([]dom.Case{c}, scheduled)
	require.Len(t, due, 1)

	// No tasks yet: shows up with the "no tasks" status, not under today.
	assert.Empty(t, CasesDueOn([]dom.Case{c}, base))
	assert.Equal(t, StatusNone, StatusOf(0, len(TasksDueOnDay(c, scheduled))))
}

func TestCasesDueOnTaskOverride(t *testing.T) {
	scheduled := base.AddDate(0, 0, 1)
	moved := base.AddDate(0, 0, 4)
	c := caseWith(&scheduled, map[string]string{"task": moved.Format(time.RFC3339)}, "task")

	assert.Len(t, CasesDueOn([]dom.Case{c}, moved), 1, "override day qualifies")
	assert.Len(t, CasesDueOn([]dom.Case{c}, scheduled), 1, "base day still qualifies (known over-inclusion)")
	assert.Empty(t, CasesDueOn([]dom.Case{c}, base.AddDate(0, 0, 2)))
}

func TestCasesDueOnNeverOnUnrelatedDay(t *testing.T) {
	scheduled := base.AddDate(0, 0, 1)
	c := caseWith(&scheduled, map[string]string{
		"a": base.AddDate(0, 0, 3).Format(time.RFC3339),
		"b": "2026-05-20",
	}, "a", "b")

	for d := 6; d < 20; d++ {
		day := base.AddDate(0, 0, d)
		assert.Empty(t, CasesDueOn([]dom.Case{c}, day), day.String())
	}
}

func TestTasksDueMonthVsDayFilters(t *testing.T) {
	scheduled := time.Date(2026, time.March, 12, 0, 0, 0, 0, time.UTC)
	c := caseWith(&scheduled, map[string]string{
		"same month": "2026-03-25",
		"next month": "2026-04-02",
	}, "same month", "next month", "on base date")

	day := time.Date(2026, time.March, 12, 0, 0, 0, 0, time.UTC)

	// Monthly grid: year+month only, so the 25th's task counts on the 12th.
	assert.ElementsMatch(t, []string{"same month", "on base date"}, TasksDueInMonth(c, day))

	// Day panel: exact day required.
	assert.Equal(t, []string{"on base date"}, TasksDueOnDay(c, day))
	assert.Equal(t, []string{"same month"}, TasksDueOnDay(c, time.Date(2026, time.March, 25, 0, 0, 0, 0, time.UTC)))
}

func TestCompletionAccounting(t *testing.T) {
	scheduled := base
	c := caseWith(&scheduled, nil, "a", "b", "c")
	c.CompletedTasks["a"] = struct{}{}

	tasks := TasksDueOnDay(c, scheduled)
	require.Len(t, tasks, 3)
	assert.Equal(t, 1, CompletedCount(c, tasks))
	assert.Equal(t, 2, PendingCount(c, tasks))
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, StatusNone, StatusOf(0, 0))
	assert.Equal(t, StatusPending, StatusOf(0, 3))
	assert.Equal(t, StatusDone, StatusOf(3, 3))
	assert.Equal(t, StatusProgress, StatusOf(1, 3))
}
