package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Bluecroft/internal/audit"
	dom "Bluecroft/internal/domain"
	"Bluecroft/internal/dto"
	"Bluecroft/internal/reschedule"
	"Bluecroft/internal/service"
	"Bluecroft/internal/store"
)

func newCalendarRig(t *testing.T) (*gin.Engine, *store.CaseStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	clock := func() time.Time { return time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC) }
	st := store.New(clock)
	trail := audit.New("Case Manager", clock)
	log := logrus.New()
	log.SetOutput(io.Discard)
	svc := service.NewCaseService(st, trail, nil, log)
	ctrl := reschedule.New(svc)
	h := NewCalendarHandler(svc, ctrl)

	r := gin.New()
	r.GET("/calendar/month", h.Month)
	r.GET("/calendar/day", h.Day)
	r.POST("/calendar/drop", h.Drop)
	r.GET("/reschedule", h.RescheduleState)
	r.POST("/reschedule/case", h.StartCaseReschedule)
	r.POST("/reschedule/confirm", h.ConfirmReschedule)
	return r, st
}

// seedScheduledDraft gives the draft a report with one task and moves it
// to March 15th, with a second task overridden to March 20th.
func seedScheduledDraft(t *testing.T, st *store.CaseStore) {
	t.Helper()
	st.LoadSample()
	st.SetRiskReport(dom.RiskReport{
		Score:     60,
		Summary:   "ok",
		NextSteps: []string{"Verify ID", "Request Bank Statements"},
	})
	_, err := st.MoveCase(dom.DraftCaseID, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	_, err = st.MoveTask(dom.DraftCaseID, "Request Bank Statements", time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestMonthGridCountsWholeMonth(t *testing.T) {
	r, st := newCalendarRig(t)
	seedScheduledDraft(t, st)

	w := doJSON(t, r, http.MethodGet, "/calendar/month?year=2026&month=3", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.MonthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Days, 31)

	// The case shows on both its base day and the override day, and the
	// monthly filter counts both tasks on each because they resolve into
	// the same month.
	day15 := resp.Days[14]
	require.Len(t, day15.Cases, 1)
	assert.Equal(t, 2, day15.Cases[0].Total)
	assert.Equal(t, "pending", day15.Cases[0].Status)

	day20 := resp.Days[19]
	require.Len(t, day20.Cases, 1)
	assert.Equal(t, 2, day20.Cases[0].Total)

	day1 := resp.Days[0]
	assert.Empty(t, day1.Cases)
}

func TestDayPanelFiltersToExactDay(t *testing.T) {
	r, st := newCalendarRig(t)
	seedScheduledDraft(t, st)

	w := doJSON(t, r, http.MethodGet, "/calendar/day?date=2026-03-20", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.DayResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Cases, 1)
	require.Len(t, resp.Cases[0].Tasks, 1, "only the overridden task lands on the 20th")
	assert.Equal(t, "Request Bank Statements", resp.Cases[0].Tasks[0].Text)
}

func TestDayPanelRejectsBadDate(t *testing.T) {
	r, _ := newCalendarRig(t)
	w := doJSON(t, r, http.MethodGet, "/calendar/day?date=20-03-2026", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDropMovesCase(t *testing.T) {
	r, st := newCalendarRig(t)
	seedScheduledDraft(t, st)

	w := doJSON(t, r, http.MethodPost, "/calendar/drop",
		`{"kind":"case","caseId":"current","date":"2026-03-25"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.CaseResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.ScheduledDate)
	assert.Equal(t, 25, resp.ScheduledDate.Day())
	assert.Empty(t, resp.LoanData.TaskDueDates, "case drop clears the overrides")
}

func TestDropTaskRequiresTask(t *testing.T) {
	r, st := newCalendarRig(t)
	seedScheduledDraft(t, st)

	w := doJSON(t, r, http.MethodPost, "/calendar/drop",
		`{"kind":"task","caseId":"current","date":"2026-03-25"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestConfirmFlowOverHTTP(t *testing.T) {
	r, st := newCalendarRig(t)
	seedScheduledDraft(t, st)

	w := doJSON(t, r, http.MethodPost, "/reschedule/case", `{"caseId":"current"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/reschedule", "")
	var state dto.RescheduleStateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &state))
	assert.Equal(t, "awaiting_case_date", state.Phase)

	w = doJSON(t, r, http.MethodPost, "/reschedule/confirm", `{"date":"2026-03-28"}`)
	require.Equal(t, http.StatusOK, w.Code)

	rec, err := st.Get(dom.DraftCaseID)
	require.NoError(t, err)
	require.NotNil(t, rec.ScheduledDate)
	assert.Equal(t, 28, rec.ScheduledDate.Day())

	// Confirming without a pending move is a conflict.
	w = doJSON(t, r, http.MethodPost, "/reschedule/confirm", `{"date":"2026-03-29"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
}
