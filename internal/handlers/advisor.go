package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"Bluecroft/internal/ai"
	dom "Bluecroft/internal/domain"
	"Bluecroft/internal/dto"
	"Bluecroft/internal/service"
)

// AdvisorHandler exposes the AI collaborator: analysis, document parsing,
// area valuation and case chat.
type AdvisorHandler struct {
	svc *service.AdvisorService
}

func NewAdvisorHandler(svc *service.AdvisorService) *AdvisorHandler {
	return &AdvisorHandler{svc: svc}
}

// Analyze godoc
// @Summary      Run the risk analysis over the draft
// @Description  Attaches the underwriting report; falls back to the
// @Description  generic report when the AI is unavailable.
// @Tags         advisor
// @Produce      json
// @Security     CookieAuth
// @Success      200  {object}  dto.CaseResponse
// @Router       /cases/analyze [post]
func (h *AdvisorHandler) Analyze(c *gin.Context) {
	c.JSON(http.StatusOK, dto.CaseToResponse(h.svc.Analyze(c.Request.Context())))
}

// ParseDocuments godoc
// @Summary      Extract loan data from uploaded documents
// @Tags         advisor
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        body  body      dto.ParseDocumentsRequest  true  "Base64 files"
// @Success      200   {object}  dto.CaseResponse
// @Failure      400   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Router       /documents/parse [post]
func (h *AdvisorHandler) ParseDocuments(c *gin.Context) {
	var req dto.ParseDocumentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	files := make([]dom.UploadedFile, len(req.Files))
	for i, f := range req.Files {
		files[i] = dom.UploadedFile{Name: f.Name, Type: f.Type, Data: f.Data}
	}
	rec, err := h.svc.ParseDocuments(c.Request.Context(), files)
	if err != nil {
		if errors.Is(err, ai.ErrInvalidFile) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "document parsing failed; enter the details manually"})
		return
	}
	c.JSON(http.StatusOK, dto.CaseToResponse(rec))
}

// Valuation godoc
// @Summary      Local market summary for an address
// @Tags         advisor
// @Produce      json
// @Security     CookieAuth
// @Param        address  query     string  true  "Property address"
// @Success      200      {object}  dto.ValuationResponse
// @Failure      400      {object}  map[string]string
// @Router       /valuation [get]
func (h *AdvisorHandler) Valuation(c *gin.Context) {
	val, err := h.svc.ValueArea(c.Request.Context(), c.Query("address"))
	if err != nil {
		if errors.Is(err, service.ErrNoAddress) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "address query parameter required"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	sources := make([]dto.ValuationSourceDTO, len(val.Sources))
	for i, s := range val.Sources {
		sources[i] = dto.ValuationSourceDTO{Title: s.Title, URI: s.URI}
	}
	c.JSON(http.StatusOK, dto.ValuationResponse{Summary: val.Summary, Sources: sources})
}

// Chat godoc
// @Summary      Ask a question about a case
// @Description  Unknown case IDs resolve to the draft; AI outages return
// @Description  the stock apology, never an error.
// @Tags         advisor
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        body  body      dto.ChatRequest  true  "Question"
// @Success      200   {object}  dto.ChatResponse
// @Failure      400   {object}  map[string]string
// @Router       /chat [post]
func (h *AdvisorHandler) Chat(c *gin.Context) {
	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	caseID := req.CaseID
	if caseID == "" {
		caseID = dom.DraftCaseID
	}
	answer := h.svc.Chat(c.Request.Context(), caseID, req.Question, req.FileNames)
	c.JSON(http.StatusOK, dto.ChatResponse{Answer: answer})
}
