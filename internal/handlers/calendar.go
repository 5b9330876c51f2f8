package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	dom "Bluecroft/internal/domain"
	"Bluecroft/internal/dto"
	"Bluecroft/internal/reschedule"
	"Bluecroft/internal/schedule"
	"Bluecroft/internal/service"
	"Bluecroft/internal/store"
)

// CalendarHandler serves the monthly grid, the day panel and the
// reschedule flow.
type CalendarHandler struct {
	svc  *service.CaseService
	ctrl *reschedule.Controller
}

func NewCalendarHandler(svc *service.CaseService, ctrl *reschedule.Controller) *CalendarHandler {
	return &CalendarHandler{svc: svc, ctrl: ctrl}
}

// Month godoc
// @Summary      Monthly calendar grid
// @Description  Per-day case chips with task counts filtered by month.
// @Tags         calendar
// @Produce      json
// @Security     CookieAuth
// @Param        year   query     int  true  "Year"
// @Param        month  query     int  true  "Month (1-12)"
// @Success      200    {object}  dto.MonthResponse
// @Failure      400    {object}  map[string]string
// @Router       /calendar/month [get]
func (h *CalendarHandler) Month(c *gin.Context) {
	year, err1 := strconv.Atoi(c.Query("year"))
	month, err2 := strconv.Atoi(c.Query("month"))
	if err1 != nil || err2 != nil || month < 1 || month > 12 || year < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "year and month (1-12) required"})
		return
	}
	cases := h.svc.All()
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	resp := dto.MonthResponse{Year: year, Month: month, Days: make([]dto.MonthDayDTO, 0, daysInMonth)}
	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
		cell := dto.MonthDayDTO{Date: date.Format("2006-01-02"), Cases: []dto.CalendarCaseDTO{}}
		for _, rec := range schedule.CasesDueOn(cases, date) {
			cell.Cases = append(cell.Cases, caseChip(rec, schedule.TasksDueInMonth(rec, date), false))
		}
		resp.Days = append(resp.Days, cell)
	}
	c.JSON(http.StatusOK, resp)
}

// Day godoc
// @Summary      Day-detail panel
// @Description  Cases and individual tasks due on the exact day. Opens the
// @Description  day-view selection unless a reschedule is pending.
// @Tags         calendar
// @Produce      json
// @Security     CookieAuth
// @Param        date  query     string  true  "Day (YYYY-MM-DD)"
// @Success      200   {object}  dto.DayResponse
// @Failure      400   {object}  map[string]string
// @Router       /calendar/day [get]
func (h *CalendarHandler) Day(c *gin.Context) {
	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}
	h.ctrl.SelectDate(date)

	resp := dto.DayResponse{Date: date.Format("2006-01-02"), Cases: []dto.CalendarCaseDTO{}}
	for _, rec := range schedule.CasesDueOn(h.svc.All(), date) {
		resp.Cases = append(resp.Cases, caseChip(rec, schedule.TasksDueOnDay(rec, date), true))
	}
	c.JSON(http.StatusOK, resp)
}

// RescheduleState godoc
// @Summary      Current reschedule state
// @Tags         calendar
// @Produce      json
// @Security     CookieAuth
// @Success      200  {object}  dto.RescheduleStateResponse
// @Router       /reschedule [get]
func (h *CalendarHandler) RescheduleState(c *gin.Context) {
	c.JSON(http.StatusOK, stateToResponse(h.ctrl.State()))
}

// StartCaseReschedule godoc
// @Summary      Begin moving a whole case
// @Tags         calendar
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        body  body      dto.StartCaseRescheduleRequest  true  "Case"
// @Success      200   {object}  dto.RescheduleStateResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /reschedule/case [post]
func (h *CalendarHandler) StartCaseReschedule(c *gin.Context) {
	var req dto.StartCaseRescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, err := h.svc.Get(req.CaseID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "case not found"})
		return
	}
	h.ctrl.StartCase(req.CaseID)
	c.JSON(http.StatusOK, stateToResponse(h.ctrl.State()))
}

// StartTaskReschedule godoc
// @Summary      Begin moving a single task
// @Tags         calendar
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        body  body      dto.StartTaskRescheduleRequest  true  "Case and task"
// @Success      200   {object}  dto.RescheduleStateResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /reschedule/task [post]
func (h *CalendarHandler) StartTaskReschedule(c *gin.Context) {
	var req dto.StartTaskRescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, err := h.svc.Get(req.CaseID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "case not found"})
		return
	}
	h.ctrl.StartTask(req.CaseID, req.Task)
	c.JSON(http.StatusOK, stateToResponse(h.ctrl.State()))
}

// CancelReschedule godoc
// @Summary      Abandon the pending move
// @Tags         calendar
// @Produce      json
// @Security     CookieAuth
// @Success      200  {object}  dto.RescheduleStateResponse
// @Router       /reschedule/cancel [post]
func (h *CalendarHandler) CancelReschedule(c *gin.Context) {
	h.ctrl.Cancel()
	c.JSON(http.StatusOK, stateToResponse(h.ctrl.State()))
}

// ConfirmReschedule godoc
// @Summary      Commit the pending move to a date
// @Tags         calendar
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        body  body      dto.ConfirmRescheduleRequest  true  "Target date"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /reschedule/confirm [post]
func (h *CalendarHandler) ConfirmReschedule(c *gin.Context) {
	var req dto.ConfirmRescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date := req.Date.Ptr()
	if date == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date is required"})
		return
	}
	moved, err := h.ctrl.Confirm(*date)
	if err != nil {
		if errors.Is(err, reschedule.ErrNotAwaiting) {
			c.JSON(http.StatusConflict, gin.H{"error": "no reschedule in progress"})
			return
		}
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "case not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"case": dto.CaseToResponse(moved), "state": stateToResponse(h.ctrl.State())})
}

// Drop godoc
// @Summary      Drag-and-drop a case or task onto a date
// @Tags         calendar
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        body  body      dto.DropRequest  true  "Drop payload"
// @Success      200   {object}  dto.CaseResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /calendar/drop [post]
func (h *CalendarHandler) Drop(c *gin.Context) {
	var req dto.DropRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date := req.Date.Ptr()
	if date == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date is required"})
		return
	}
	moved, err := h.ctrl.Drop(reschedule.DropKind(req.Kind), req.CaseID, req.Task, *date)
	if err != nil {
		if errors.Is(err, reschedule.ErrBadDrop) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "case not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.CaseToResponse(moved))
}

// caseChip builds the calendar representation of a case for one date
// bucket. withTasks includes the per-task rows for the day panel.
func caseChip(rec dom.Case, tasks []string, withTasks bool) dto.CalendarCaseDTO {
	completed := schedule.CompletedCount(rec, tasks)
	chip := dto.CalendarCaseDTO{
		CaseID:    rec.ID,
		Applicant: rec.MainApplicantName(),
		Status:    string(schedule.StatusOf(completed, len(tasks))),
		Total:     len(tasks),
		Completed: completed,
		Pending:   schedule.PendingCount(rec, tasks),
	}
	if withTasks {
		chip.Tasks = make([]dto.CalendarTaskDTO, len(tasks))
		for i, task := range tasks {
			chip.Tasks[i] = dto.CalendarTaskDTO{
				Text:      task,
				Completed: rec.IsTaskCompleted(task),
				DueDate:   schedule.ResolveTaskDueDate(rec, task),
			}
		}
	}
	return chip
}

func stateToResponse(st reschedule.State) dto.RescheduleStateResponse {
	return dto.RescheduleStateResponse{
		Phase:        string(st.Phase),
		CaseID:       st.CaseID,
		Task:         st.Task,
		SelectedDate: st.SelectedDate,
	}
}
