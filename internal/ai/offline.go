package ai

import (
	"context"
	"errors"

	dom "Bluecroft/internal/domain"
)

// ErrOffline is returned by the Offline advisor; callers substitute
// their fallbacks exactly as for a network failure.
var ErrOffline = errors.New("ai advisor not configured")

// Offline is the Advisor used when no API key is configured. Every call
// fails, so the service layer degrades to the static fallbacks and the
// rest of the application keeps working.
type Offline struct{}

func (Offline) ParseDocuments(context.Context, []dom.UploadedFile) (ParsedLoanData, error) {
	return ParsedLoanData{}, ErrOffline
}

func (Offline) AnalyzeRisk(context.Context, dom.LoanData, dom.CalculatedMetrics) (dom.RiskReport, error) {
	return dom.RiskReport{}, ErrOffline
}

func (Offline) ValueArea(context.Context, string) (dom.AreaValuation, error) {
	return dom.AreaValuation{}, ErrOffline
}

func (Offline) Answer(context.Context, string, ChatContext) (string, error) {
	return "", ErrOffline
}
