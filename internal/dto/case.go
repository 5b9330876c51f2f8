package dto

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	dom "Bluecroft/internal/domain"
)

// Date parses a JSON date as either date-only ("2006-01-02") or RFC3339.
// Date-only is stored as start of that day in UTC.
type Date struct{ t *time.Time }

func (d *Date) UnmarshalJSON(data []byte) error {
	var raw *string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil || strings.TrimSpace(*raw) == "" {
		d.t = nil
		return nil
	}
	s := strings.TrimSpace(*raw)
	layouts := []string{
		"2006-01-02",
		time.RFC3339,
		time.RFC3339Nano,
		"2006-01-02T15:04:05",
	}
	for _, layout := range layouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			if layout == "2006-01-02" {
				parsed = time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC)
			}
			d.t = &parsed
			return nil
		}
	}
	return fmt.Errorf("date: use YYYY-MM-DD or RFC3339 datetime")
}

// Ptr returns *time.Time for use in service/domain.
func (d Date) Ptr() *time.Time { return d.t }

type ApplicantDTO struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	AnnualIncome     float64 `json:"annualIncome"`
	MonthlyExpenses  float64 `json:"monthlyExpenses"`
	TotalAssets      float64 `json:"totalAssets"`
	TotalLiabilities float64 `json:"totalLiabilities"`
}

type LoanDataDTO struct {
	Applicants          []ApplicantDTO    `json:"applicants"`
	LoanAmount          float64           `json:"loanAmount"`
	PropertyValue       float64           `json:"propertyValue"`
	PurchasePrice       float64           `json:"purchasePrice"`
	RefurbCost          float64           `json:"refurbCost"`
	InterestRateMonthly float64           `json:"monthlyInterestRate"`
	TermMonths          int               `json:"loanTerm"`
	LoanType            string            `json:"loanType"`
	PropertyAddress     string            `json:"propertyAddress"`
	ExitStrategy        string            `json:"exitStrategy"`
	TaskDueDates        map[string]string `json:"taskDueDates"`
}

type MetricsDTO struct {
	LTV             float64 `json:"ltv"`
	LTC             float64 `json:"ltc"`
	MonthlyInterest float64 `json:"monthlyInterest"`
	TotalInterest   float64 `json:"totalInterest"`
	GrossLoan       float64 `json:"grossLoan"`
}

type RiskReportDTO struct {
	Score       int      `json:"score"`
	Summary     string   `json:"summary"`
	Risks       []string `json:"risks"`
	Mitigations []string `json:"mitigations"`
	NextSteps   []string `json:"nextSteps"`
}

type CaseResponse struct {
	ID             string         `json:"id"`
	Status         string         `json:"status"`
	LoanData       LoanDataDTO    `json:"loanData"`
	Metrics        *MetricsDTO    `json:"calculatedMetrics,omitempty"`
	RiskReport     *RiskReportDTO `json:"riskReport,omitempty"`
	CompletedTasks []string       `json:"completedTasks"`
	CreatedAt      time.Time      `json:"createdAt"`
	ScheduledDate  *time.Time     `json:"scheduledDate,omitempty"`
}

type ListCasesResponse struct {
	Items []CaseResponse `json:"items"`
}

// UpdateApplicant carries a full applicant row; partial edits send the
// whole applicants array.
type UpdateApplicant struct {
	ID               string   `json:"id"`
	Name             *string  `json:"name"`
	AnnualIncome     *float64 `json:"annualIncome"`
	MonthlyExpenses  *float64 `json:"monthlyExpenses"`
	TotalAssets      *float64 `json:"totalAssets"`
	TotalLiabilities *float64 `json:"totalLiabilities"`
}

// UpdateDraftRequest is a partial merge into the draft's loan data; nil
// fields are left unchanged.
type UpdateDraftRequest struct {
	Applicants          []UpdateApplicant `json:"applicants"`
	LoanAmount          *float64          `json:"loanAmount"`
	PropertyValue       *float64          `json:"propertyValue"`
	PurchasePrice       *float64          `json:"purchasePrice"`
	RefurbCost          *float64          `json:"refurbCost"`
	InterestRateMonthly *float64          `json:"monthlyInterestRate"`
	TermMonths          *int              `json:"loanTerm"`
	LoanType            *string           `json:"loanType"`
	PropertyAddress     *string           `json:"propertyAddress"`
	ExitStrategy        *string           `json:"exitStrategy"`
}

type AddTaskRequest struct {
	Text    string `json:"text" binding:"required,min=1,max=300"`
	DueDate Date   `json:"dueDate" binding:"required"`
}

type ToggleTaskRequest struct {
	Task string `json:"task" binding:"required"`
}

// CaseToResponse converts a domain case to its wire form.
func CaseToResponse(c dom.Case) CaseResponse {
	resp := CaseResponse{
		ID:             c.ID,
		Status:         string(c.Status),
		LoanData:       loanDataToDTO(c.LoanData),
		CompletedTasks: completedToSlice(c.CompletedTasks),
		CreatedAt:      c.CreatedAt,
		ScheduledDate:  c.ScheduledDate,
	}
	if c.Metrics != nil {
		resp.Metrics = &MetricsDTO{
			LTV:             c.Metrics.LTV,
			LTC:             c.Metrics.LTC,
			MonthlyInterest: c.Metrics.MonthlyInterest,
			TotalInterest:   c.Metrics.TotalInterest,
			GrossLoan:       c.Metrics.GrossLoan,
		}
	}
	if c.RiskReport != nil {
		resp.RiskReport = &RiskReportDTO{
			Score:       c.RiskReport.Score,
			Summary:     c.RiskReport.Summary,
			Risks:       emptyIfNil(c.RiskReport.Risks),
			Mitigations: emptyIfNil(c.RiskReport.Mitigations),
			NextSteps:   emptyIfNil(c.RiskReport.NextSteps),
		}
	}
	return resp
}

// CasesToResponses converts a list of cases.
func CasesToResponses(list []dom.Case) []CaseResponse {
	out := make([]CaseResponse, len(list))
	for i := range list {
		out[i] = CaseToResponse(list[i])
	}
	return out
}

func loanDataToDTO(d dom.LoanData) LoanDataDTO {
	apps := make([]ApplicantDTO, len(d.Applicants))
	for i, a := range d.Applicants {
		apps[i] = ApplicantDTO{
			ID:               a.ID,
			Name:             a.Name,
			AnnualIncome:     a.AnnualIncome,
			MonthlyExpenses:  a.MonthlyExpenses,
			TotalAssets:      a.TotalAssets,
			TotalLiabilities: a.TotalLiabilities,
		}
	}
	overrides := d.TaskDueDates
	if overrides == nil {
		overrides = map[string]string{}
	}
	return LoanDataDTO{
		Applicants:          apps,
		LoanAmount:          d.LoanAmount,
		PropertyValue:       d.PropertyValue,
		PurchasePrice:       d.PurchasePrice,
		RefurbCost:          d.RefurbCost,
		InterestRateMonthly: d.InterestRateMonthly,
		TermMonths:          d.TermMonths,
		LoanType:            string(d.LoanType),
		PropertyAddress:     d.PropertyAddress,
		ExitStrategy:        string(d.ExitStrategy),
		TaskDueDates:        overrides,
	}
}

func completedToSlice(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for task := range set {
		out = append(out, task)
	}
	sort.Strings(out)
	return out
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
