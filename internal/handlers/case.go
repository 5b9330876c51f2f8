package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	dom "Bluecroft/internal/domain"
	"Bluecroft/internal/dto"
	"Bluecroft/internal/service"
	"Bluecroft/internal/store"
)

// CaseHandler exposes the case book and the draft application form.
type CaseHandler struct {
	svc *service.CaseService
}

func NewCaseHandler(svc *service.CaseService) *CaseHandler {
	return &CaseHandler{svc: svc}
}

// List godoc
// @Summary      List active cases
// @Tags         cases
// @Produce      json
// @Security     CookieAuth
// @Success      200  {object}  dto.ListCasesResponse
// @Router       /cases [get]
func (h *CaseHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ListCasesResponse{Items: dto.CasesToResponses(h.svc.All())})
}

// Get godoc
// @Summary      Get a case by ID ("current" for the draft)
// @Tags         cases
// @Produce      json
// @Security     CookieAuth
// @Param        id   path      string  true  "Case ID"
// @Success      200  {object}  dto.CaseResponse
// @Failure      404  {object}  map[string]string
// @Router       /cases/{id} [get]
func (h *CaseHandler) Get(c *gin.Context) {
	rec, err := h.svc.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "case not found"})
		return
	}
	c.JSON(http.StatusOK, dto.CaseToResponse(rec))
}

// Save godoc
// @Summary      Commit the draft as a saved case
// @Description  Promoting resets the draft, so confirm=true is required.
// @Tags         cases
// @Produce      json
// @Security     CookieAuth
// @Param        confirm  query     bool  true  "Must be true"
// @Success      201      {object}  dto.CaseResponse
// @Failure      400      {object}  map[string]string
// @Failure      409      {object}  map[string]string
// @Router       /cases [post]
func (h *CaseHandler) Save(c *gin.Context) {
	rec, err := h.svc.Save(c.Request.Context(), c.Query("confirm") == "true")
	if err != nil {
		if errors.Is(err, service.ErrConfirmationRequired) {
			c.JSON(http.StatusConflict, gin.H{"error": "saving resets the current form; pass confirm=true"})
			return
		}
		if errors.Is(err, store.ErrDraftNotSave) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "run the risk analysis before saving"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, dto.CaseToResponse(rec))
}

// Delete godoc
// @Summary      Delete a case ("current" resets the draft)
// @Tags         cases
// @Security     CookieAuth
// @Param        id       path   string  true  "Case ID"
// @Param        confirm  query  bool    true  "Must be true"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /cases/{id} [delete]
func (h *CaseHandler) Delete(c *gin.Context) {
	err := h.svc.Delete(c.Request.Context(), c.Param("id"), c.Query("confirm") == "true")
	if err != nil {
		if errors.Is(err, service.ErrConfirmationRequired) {
			c.JSON(http.StatusConflict, gin.H{"error": "deletion is permanent; pass confirm=true"})
			return
		}
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "case not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// UpdateDraft godoc
// @Summary      Merge a partial edit into the draft's loan data
// @Tags         cases
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        body  body      dto.UpdateDraftRequest  true  "Partial loan data"
// @Success      200   {object}  dto.CaseResponse
// @Failure      400   {object}  map[string]string
// @Router       /cases/current [patch]
func (h *CaseHandler) UpdateDraft(c *gin.Context) {
	var req dto.UpdateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.LoanType != nil && !validLoanType(*req.LoanType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown loan type"})
		return
	}
	if req.ExitStrategy != nil && !validExitStrategy(*req.ExitStrategy) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown exit strategy"})
		return
	}
	rec := h.svc.UpdateDraft(func(d *dom.LoanData) {
		applyDraftPatch(d, req)
	})
	c.JSON(http.StatusOK, dto.CaseToResponse(rec))
}

// LoadSample godoc
// @Summary      Replace the draft with the demo dataset
// @Tags         cases
// @Produce      json
// @Security     CookieAuth
// @Success      200  {object}  dto.CaseResponse
// @Router       /cases/sample [post]
func (h *CaseHandler) LoadSample(c *gin.Context) {
	c.JSON(http.StatusOK, dto.CaseToResponse(h.svc.LoadSample()))
}

// AddTask godoc
// @Summary      Add a manual task with a due date
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        id    path      string              true  "Case ID"
// @Param        body  body      dto.AddTaskRequest  true  "Task"
// @Success      200   {object}  dto.CaseResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /cases/{id}/tasks [post]
func (h *CaseHandler) AddTask(c *gin.Context) {
	var req dto.AddTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	due := req.DueDate.Ptr()
	if due == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "dueDate is required"})
		return
	}
	rec, err := h.svc.AddTask(c.Request.Context(), c.Param("id"), req.Text, *due)
	if err != nil {
		if errors.Is(err, store.ErrInvalidTask) {
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
	c.JSON(http.StatusOK, dto.CaseToResponse(rec))
}

// ToggleTask godoc
// @Summary      Toggle a task's completion state
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        id    path      string                 true  "Case ID"
// @Param        body  body      dto.ToggleTaskRequest  true  "Task text"
// @Success      200   {object}  dto.CaseResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /cases/{id}/tasks/toggle [post]
func (h *CaseHandler) ToggleTask(c *gin.Context) {
	var req dto.ToggleTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rec, err := h.svc.ToggleTask(c.Request.Context(), c.Param("id"), req.Task)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "case not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.CaseToResponse(rec))
}

// applyDraftPatch merges non-nil request fields into the loan data.
// Applicant rows replace the list wholesale; per-field pointers fall back
// to the existing row with the same ID.
func applyDraftPatch(d *dom.LoanData, req dto.UpdateDraftRequest) {
	if req.Applicants != nil {
		existing := make(map[string]dom.Applicant, len(d.Applicants))
		for _, a := range d.Applicants {
			existing[a.ID] = a
		}
		apps := make([]dom.Applicant, 0, len(req.Applicants))
		for _, in := range req.Applicants {
			a := existing[in.ID]
			if a.ID == "" {
				a.ID = in.ID
			}
			if a.ID == "" {
				a.ID = uuid.NewString()
			}
			if in.Name != nil {
				a.Name = *in.Name
			}
			if in.AnnualIncome != nil {
				a.AnnualIncome = *in.AnnualIncome
			}
			if in.MonthlyExpenses != nil {
				a.MonthlyExpenses = *in.MonthlyExpenses
			}
			if in.TotalAssets != nil {
				a.TotalAssets = *in.TotalAssets
			}
			if in.TotalLiabilities != nil {
				a.TotalLiabilities = *in.TotalLiabilities
			}
			apps = append(apps, a)
		}
		d.Applicants = apps
	}
	if req.LoanAmount != nil {
		d.LoanAmount = *req.LoanAmount
	}
	if req.PropertyValue != nil {
		d.PropertyValue = *req.PropertyValue
	}
	if req.PurchasePrice != nil {
		d.PurchasePrice = *req.PurchasePrice
	}
	if req.RefurbCost != nil {
		d.RefurbCost = *req.RefurbCost
	}
	if req.InterestRateMonthly != nil {
		d.InterestRateMonthly = *req.InterestRateMonthly
	}
	if req.TermMonths != nil {
		d.TermMonths = *req.TermMonths
	}
	if req.LoanType != nil {
		d.LoanType = dom.LoanType(*req.LoanType)
	}
	if req.PropertyAddress != nil {
		d.PropertyAddress = *req.PropertyAddress
	}
	if req.ExitStrategy != nil {
		d.ExitStrategy = dom.ExitStrategy(*req.ExitStrategy)
	}
}

func validLoanType(s string) bool {
	switch dom.LoanType(s) {
	case dom.LoanBridging, dom.LoanDevelopment, dom.LoanRefurbishment:
		return true
	}
	return false
}

func validExitStrategy(s string) bool {
	switch dom.ExitStrategy(s) {
	case dom.ExitSale, dom.ExitRefinance, dom.ExitDevelopmentExit, dom.ExitCashSettlement, dom.ExitOther:
		return true
	}
	return false
}
