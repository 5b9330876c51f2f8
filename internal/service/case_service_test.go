package service

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Bluecroft/internal/audit"
	dom "Bluecroft/internal/domain"
	"Bluecroft/internal/store"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func fixedClock() store.Clock {
	at := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	return func() time.Time { return at }
}

func newTestCaseService() (*CaseService, *store.CaseStore, *audit.Trail) {
	st := store.New(fixedClock())
	trail := audit.New("Case Manager", fixedClock())
	svc := NewCaseService(st, trail, nil, quietLogger())
	return svc, st, trail
}

func analyzedDraft(st *store.CaseStore) {
	st.LoadSample()
	st.SetRiskReport(dom.RiskReport{
		Score:     42,
		Summary:   "ok",
		NextSteps: []string{"Check credit score"},
	})
}

func TestSaveRequiresConfirmation(t *testing.T) {
	svc, st, _ := newTestCaseService()
	analyzedDraft(st)

	_, err := svc.Save(context.Background(), false)
	assert.ErrorIs(t, err, ErrConfirmationRequired)
	assert.Len(t, st.All(), 1, "draft must remain the only active case")
}

func TestSavePromotesAndAudits(t *testing.T) {
	svc, st, trail := newTestCaseService()
	analyzedDraft(st)

	rec, err := svc.Save(context.Background(), true)
	require.NoError(t, err)
	assert.Equal(t, dom.StatusSaved, rec.Status)
	assert.NotEqual(t, dom.DraftCaseID, rec.ID)

	entries := trail.List()
	require.NotEmpty(t, entries)
	assert.Equal(t, "Case Saved", entries[0].Action)

	// The draft reset: only the saved record stays active.
	all := st.All()
	require.Len(t, all, 1)
	assert.Equal(t, rec.ID, all[0].ID)
}

func TestSaveRejectsUnanalyzedDraft(t *testing.T) {
	svc, _, _ := newTestCaseService()

	_, err := svc.Save(context.Background(), true)
	assert.ErrorIs(t, err, store.ErrDraftNotSave)
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	svc, st, _ := newTestCaseService()
	analyzedDraft(st)
	rec, err := svc.Save(context.Background(), true)
	require.NoError(t, err)

	err = svc.Delete(context.Background(), rec.ID, false)
	assert.ErrorIs(t, err, ErrConfirmationRequired)
	_, err = svc.Get(rec.ID)
	assert.NoError(t, err, "case must survive an unconfirmed delete")
}

func TestDeleteDraftResetsForm(t *testing.T) {
	svc, st, trail := newTestCaseService()
	st.LoadSample()

	require.NoError(t, svc.Delete(context.Background(), dom.DraftCaseID, true))
	draft := svc.Draft()
	assert.Zero(t, draft.LoanData.LoanAmount)
	assert.Equal(t, "Draft Discarded", trail.List()[0].Action)
}

func TestDeleteUnknownCase(t *testing.T) {
	svc, _, _ := newTestCaseService()
	err := svc.Delete(context.Background(), "nope", true)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestToggleTaskAuditsBothDirections(t *testing.T) {
	svc, st, trail := newTestCaseService()
	analyzedDraft(st)

	rec, err := svc.ToggleTask(context.Background(), dom.DraftCaseID, "Check credit score")
	require.NoError(t, err)
	assert.True(t, rec.IsTaskCompleted("Check credit score"))
	assert.Contains(t, trail.List()[0].Details, "completed")

	rec, err = svc.ToggleTask(context.Background(), dom.DraftCaseID, "Check credit score")
	require.NoError(t, err)
	assert.False(t, rec.IsTaskCompleted("Check credit score"))
	assert.Contains(t, trail.List()[0].Details, "reopened")
}

func TestMoveCaseThroughService(t *testing.T) {
	svc, st, trail := newTestCaseService()
	analyzedDraft(st)
	target := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	rec, err := svc.MoveCase(dom.DraftCaseID, target)
	require.NoError(t, err)
	require.NotNil(t, rec.ScheduledDate)
	assert.True(t, rec.ScheduledDate.Equal(target))
	assert.Empty(t, rec.LoanData.TaskDueDates, "case move clears every override")
	assert.Equal(t, "Case Rescheduled", trail.List()[0].Action)
}

func TestMoveTaskThroughService(t *testing.T) {
	svc, st, _ := newTestCaseService()
	analyzedDraft(st)
	target := time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC)

	rec, err := svc.MoveTask(dom.DraftCaseID, "Check credit score", target)
	require.NoError(t, err)
	assert.Equal(t, target.Format(time.RFC3339), rec.LoanData.TaskDueDates["Check credit score"])
}

func TestUpdateDraftRecomputesMetrics(t *testing.T) {
	svc, _, _ := newTestCaseService()

	rec := svc.UpdateDraft(func(d *dom.LoanData) {
		d.LoanAmount = 250000
		d.PropertyValue = 400000
	})
	require.NotNil(t, rec.Metrics)
	assert.InDelta(t, 62.5, rec.Metrics.LTV, 1e-9)
}
