package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dom "Bluecroft/internal/domain"
	"Bluecroft/internal/schedule"
)

var now = time.Date(2026, time.June, 1, 10, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return now }

func analyzedStore(t *testing.T) *CaseStore {
	t.Helper()
	s := New(fixedClock)
	s.LoadSample()
	s.SetRiskReport(dom.RiskReport{
		Score:     62,
		Summary:   "Viable with conditions",
		NextSteps: []string{"Request bank statements", "Credit bureau search"},
	})
	return s
}

func TestNewDraftDefaults(t *testing.T) {
	s := New(fixedClock)
	d := s.Draft()

	assert.Equal(t, dom.DraftCaseID, d.ID)
	assert.Equal(t, dom.StatusDraft, d.Status)
	require.NotNil(t, d.ScheduledDate)
	assert.True(t, d.ScheduledDate.Equal(now.AddDate(0, 0, 1)), "defaults to tomorrow")
	assert.Empty(t, d.LoanData.TaskDueDates)
	assert.Empty(t, d.CompletedTasks)
}

func TestAllExcludesUnanalyzedDraft(t *testing.T) {
	s := New(fixedClock)
	assert.Empty(t, s.All())

	s = analyzedStore(t)
	all := s.All()
	require.Len(t, all, 1)
	assert.Equal(t, dom.DraftCaseID, all[0].ID)
}

func TestPromoteResetsDraft(t *testing.T) {
	s := analyzedStore(t)

	rec, err := s.Promote()
	require.NoError(t, err)
	assert.Equal(t, dom.StatusSaved, rec.Status)
	assert.NotEqual(t, dom.DraftCaseID, rec.ID)
	assert.Equal(t, "Oakwood Developments Ltd", rec.MainApplicantName())

	d := s.Draft()
	assert.Nil(t, d.RiskReport, "draft reset after promote")
	assert.Empty(t, d.LoanData.Applicants[0].Name)

	all := s.All()
	require.Len(t, all, 1)
	assert.Equal(t, rec.ID, all[0].ID)
}

func TestPromoteRequiresReport(t *testing.T) {
	s := New(fixedClock)
	_, err := s.Promote()
	assert.ErrorIs(t, err, ErrDraftNotSave)
}

func TestPromotedRecordDoesNotAliasDraft(t *testing.T) {
	s := analyzedStore(t)
	rec, err := s.Promote()
	require.NoError(t, err)

	_, err = s.ToggleTask(rec.ID, "Request bank statements")
	require.NoError(t, err)

	again, err := s.Get(rec.ID)
	require.NoError(t, err)
	assert.True(t, again.IsTaskCompleted("Request bank statements"))
	assert.False(t, s.Draft().IsTaskCompleted("Request bank statements"))
}

func TestDeleteSavedAndDraft(t *testing.T) {
	s := analyzedStore(t)
	rec, err := s.Promote()
	require.NoError(t, err)

	require.NoError(t, s.Delete(rec.ID))
	_, err = s.Get(rec.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	s.LoadSample()
	require.NoError(t, s.Delete(dom.DraftCaseID))
	assert.Empty(t, s.Draft().LoanData.Applicants[0].Name, "draft reset in place")

	assert.ErrorIs(t, s.Delete("no-such-id"), ErrNotFound)
}

func TestToggleTaskRoundTrip(t *testing.T) {
	s := analyzedStore(t)

	c, err := s.ToggleTask(dom.DraftCaseID, "Credit bureau search")
	require.NoError(t, err)
	assert.True(t, c.IsTaskCompleted("Credit bureau search"))

	c, err = s.ToggleTask(dom.DraftCaseID, "Credit bureau search")
	require.NoError(t, err)
	assert.False(t, c.IsTaskCompleted("Credit bureau search"))
	assert.Empty(t, c.CompletedTasks)
}

func TestAddTaskValidation(t *testing.T) {
	s := analyzedStore(t)

	_, err := s.AddTask(dom.DraftCaseID, "   ", now)
	assert.ErrorIs(t, err, ErrInvalidTask)

	_, err = s.AddTask(dom.DraftCaseID, "Chase solicitor", time.Time{})
	assert.ErrorIs(t, err, ErrInvalidTask)

	due := now.AddDate(0, 0, 3)
	c, err := s.AddTask(dom.DraftCaseID, "Chase solicitor", due)
	require.NoError(t, err)
	assert.Contains(t, c.NextSteps(), "Chase solicitor")
	assert.True(t, schedule.ResolveTaskDueDate(c, "Chase solicitor").Equal(due))
}

func TestMoveCaseClearsOverrides(t *testing.T) {
	s := analyzedStore(t)

	due := now.AddDate(0, 0, 3)
	_, err := s.AddTask(dom.DraftCaseID, "Request bank statements II", due)
	require.NoError(t, err)

	newDate := now.AddDate(0, 0, 5)
	c, err := s.MoveCase(dom.DraftCaseID, newDate)
	require.NoError(t, err)

	assert.Empty(t, c.LoanData.TaskDueDates, "case move wipes per-task overrides")
	require.NotNil(t, c.ScheduledDate)
	assert.True(t, c.ScheduledDate.Equal(newDate))
	assert.True(t, schedule.ResolveTaskDueDate(c, "Request bank statements II").Equal(newDate),
		"task reverts to the new case-level date")
}

func TestMoveTaskLeavesRestAlone(t *testing.T) {
	s := analyzedStore(t)
	before := s.Draft()

	date := now.AddDate(0, 0, 7)
	c, err := s.MoveTask(dom.DraftCaseID, "Credit bureau search", date)
	require.NoError(t, err)

	assert.True(t, schedule.ResolveTaskDueDate(c, "Credit bureau search").Equal(date))
	assert.True(t, c.ScheduledDate.Equal(*before.ScheduledDate), "case date untouched")
	assert.True(t, schedule.ResolveTaskDueDate(c, "Request bank statements").Equal(*before.ScheduledDate))
}

func TestSeedRestoresSavedList(t *testing.T) {
	s := New(fixedClock)
	s.Seed([]dom.Case{{ID: "a1", CreatedAt: now}})

	c, err := s.Get("a1")
	require.NoError(t, err)
	assert.Equal(t, dom.StatusSaved, c.Status)
	require.Len(t, s.All(), 1)
}
