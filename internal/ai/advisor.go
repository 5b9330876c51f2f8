// Package ai defines the generative-AI collaborator interface and the
// sanitizers that keep malformed model output from reaching the rest of
// the service.
package ai

import (
	"context"
	"errors"

	dom "Bluecroft/internal/domain"
)

// ErrInvalidFile marks an upload whose payload could not be decoded.
// Callers treat it as caller input error, not an AI outage.
var ErrInvalidFile = errors.New("unreadable file data")

// ParsedLoanData is the partial extraction from uploaded documents.
// Unrecognized fields come back zeroed/empty; the caller merges only
// what is present.
type ParsedLoanData struct {
	Applicants          []dom.Applicant
	LoanAmount          float64
	PropertyValue       float64
	PurchasePrice       float64
	RefurbCost          float64
	InterestRateMonthly float64
	TermMonths          int
	PropertyAddress     string
	LoanType            dom.LoanType
	ExitStrategy        dom.ExitStrategy
}

// ChatContext is the case snapshot handed to the Q&A assistant.
type ChatContext struct {
	LoanData   dom.LoanData
	Metrics    *dom.CalculatedMetrics
	RiskReport *dom.RiskReport
	FileNames  []string
}

// Advisor is the vendor-neutral AI collaborator. Implementations return
// typed results or an error; they never panic the caller.
type Advisor interface {
	ParseDocuments(ctx context.Context, files []dom.UploadedFile) (ParsedLoanData, error)
	AnalyzeRisk(ctx context.Context, data dom.LoanData, m dom.CalculatedMetrics) (dom.RiskReport, error)
	ValueArea(ctx context.Context, address string) (dom.AreaValuation, error)
	Answer(ctx context.Context, question string, cc ChatContext) (string, error)
}

// FallbackRiskReport is substituted when the analyzer fails, so the case
// always carries an actionable (if generic) plan.
func FallbackRiskReport(reason string) dom.RiskReport {
	summary := "AI service temporarily unavailable. Manual underwriting required."
	if reason != "" {
		summary += " (" + reason + ")"
	}
	return dom.RiskReport{
		Score:       50,
		Summary:     summary,
		Risks:       []string{"System error during analysis - data may be incomplete"},
		Mitigations: []string{"Perform full manual review"},
		NextSteps:   []string{"Check credit score", "Verify ID", "Request Bank Statements"},
	}
}

// FallbackChatAnswer is the apology returned when the assistant is down.
const FallbackChatAnswer = "Sorry, I'm having trouble connecting to the AI right now."

// FallbackValuation is returned when the market lookup fails.
func FallbackValuation() dom.AreaValuation {
	return dom.AreaValuation{Summary: "Could not retrieve local market data at this time."}
}
