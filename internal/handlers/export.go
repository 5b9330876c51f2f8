package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"Bluecroft/internal/audit"
	"Bluecroft/internal/dto"
	"Bluecroft/internal/export"
	"Bluecroft/internal/service"
	"Bluecroft/internal/store"
)

// ExportHandler produces the downloadable artifacts: underwriting memo
// PDF, document-request letter PDF and single-event ICS files.
type ExportHandler struct {
	svc   *service.CaseService
	trail *audit.Trail
	now   store.Clock
}

func NewExportHandler(svc *service.CaseService, trail *audit.Trail, now store.Clock) *ExportHandler {
	if now == nil {
		now = time.Now
	}
	return &ExportHandler{svc: svc, trail: trail, now: now}
}

// CasePDF godoc
// @Summary      Download the underwriting memo PDF
// @Tags         export
// @Produce      application/pdf
// @Security     CookieAuth
// @Param        id   path  string  true  "Case ID"
// @Success      200  {file}  binary
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /cases/{id}/export/pdf [get]
func (h *ExportHandler) CasePDF(c *gin.Context) {
	rec, err := h.svc.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "case not found"})
		return
	}
	var buf bytes.Buffer
	if err := export.WriteUnderwritingMemo(&buf, rec, h.now()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "pdf generation failed"})
		return
	}
	h.trail.Add("PDF Exported", "Underwriting memo for "+rec.MainApplicantName())
	serveAttachment(c, "application/pdf", fmt.Sprintf("case-%s.pdf", rec.ID), buf.Bytes())
}

// Letter godoc
// @Summary      Download a document-request letter PDF
// @Tags         export
// @Accept       json
// @Produce      application/pdf
// @Security     CookieAuth
// @Param        body  body  dto.LetterRequest  true  "Letter contents"
// @Success      200   {file}  binary
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /letters [post]
func (h *ExportHandler) Letter(c *gin.Context) {
	var req dto.LetterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var buf bytes.Buffer
	err := export.WriteRequestLetter(&buf, req.ApplicantName, req.Items, req.PropertyAddress, h.now())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.trail.Add("Letter Generated", "Document request letter for "+req.ApplicantName)
	serveAttachment(c, "application/pdf", "request-letter.pdf", buf.Bytes())
}

// CalendarEvent godoc
// @Summary      Download a single-event ICS file
// @Tags         export
// @Accept       json
// @Produce      text/calendar
// @Security     CookieAuth
// @Param        body  body  dto.CalendarEventRequest  true  "Event"
// @Success      200   {file}  binary
// @Failure      400   {object}  map[string]string
// @Router       /calendar/events [post]
func (h *ExportHandler) CalendarEvent(c *gin.Context) {
	var req dto.CalendarEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ics := export.BuildCalendarEventICS(req.Title, req.Description, req.Date.Ptr(), h.now())
	h.trail.Add("Event Exported", "Calendar invite: "+req.Title)
	serveAttachment(c, "text/calendar", "event.ics", []byte(ics))
}

func serveAttachment(c *gin.Context, contentType, filename string, body []byte) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, body)
}
