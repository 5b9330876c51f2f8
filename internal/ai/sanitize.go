package ai

import (
	"encoding/json"

	"github.com/google/uuid"

	dom "Bluecroft/internal/domain"
)

// rawRiskReport tolerates whatever shape the model returns; numbers and
// strings may be missing or of the wrong JSON type.
type rawRiskReport struct {
	Score       json.Number     `json:"score"`
	Summary     string          `json:"summary"`
	Risks       json.RawMessage `json:"risks"`
	Mitigations json.RawMessage `json:"mitigations"`
	NextSteps   json.RawMessage `json:"nextSteps"`
}

type rawApplicant struct {
	Name             string      `json:"name"`
	AnnualIncome     json.Number `json:"annualIncome"`
	MonthlyExpenses  json.Number `json:"monthlyExpenses"`
	TotalAssets      json.Number `json:"totalAssets"`
	TotalLiabilities json.Number `json:"totalLiabilities"`
}

type rawParsedLoanData struct {
	Applicants          []rawApplicant `json:"applicants"`
	LoanAmount          json.Number    `json:"loanAmount"`
	PropertyValue       json.Number    `json:"propertyValue"`
	PurchasePrice       json.Number    `json:"purchasePrice"`
	RefurbCost          json.Number    `json:"refurbCost"`
	InterestRateMonthly json.Number    `json:"interestRateMonthly"`
	TermMonths          json.Number    `json:"termMonths"`
	PropertyAddress     string         `json:"propertyAddress"`
	LoanType            string         `json:"loanType"`
	ExitStrategy        string         `json:"exitStrategy"`
}

// SanitizeRiskReport decodes a model JSON payload into a report with
// every malformed field defaulted: score 50, placeholder summary, empty
// slices. It never fails; garbage in, defaults out.
func SanitizeRiskReport(payload []byte) dom.RiskReport {
	var raw rawRiskReport
	_ = json.Unmarshal(payload, &raw)

	score := 50
	if n, err := raw.Score.Int64(); err == nil {
		score = int(n)
	} else if f, err := raw.Score.Float64(); err == nil {
		score = int(f)
	}
	summary := raw.Summary
	if summary == "" {
		summary = "No summary provided."
	}
	return dom.RiskReport{
		Score:       score,
		Summary:     summary,
		Risks:       stringList(raw.Risks),
		Mitigations: stringList(raw.Mitigations),
		NextSteps:   stringList(raw.NextSteps),
	}
}

// SanitizeParsedLoanData decodes a model extraction payload, defaulting
// missing numerics to 0 and missing strings to "".
func SanitizeParsedLoanData(payload []byte) ParsedLoanData {
	var raw rawParsedLoanData
	_ = json.Unmarshal(payload, &raw)

	out := ParsedLoanData{
		LoanAmount:          num(raw.LoanAmount),
		PropertyValue:       num(raw.PropertyValue),
		PurchasePrice:       num(raw.PurchasePrice),
		RefurbCost:          num(raw.RefurbCost),
		InterestRateMonthly: num(raw.InterestRateMonthly),
		TermMonths:          int(num(raw.TermMonths)),
		PropertyAddress:     raw.PropertyAddress,
		LoanType:            loanType(raw.LoanType),
		ExitStrategy:        exitStrategy(raw.ExitStrategy),
	}
	for _, a := range raw.Applicants {
		out.Applicants = append(out.Applicants, dom.Applicant{
			ID:               uuid.NewString(),
			Name:             a.Name,
			AnnualIncome:     num(a.AnnualIncome),
			MonthlyExpenses:  num(a.MonthlyExpenses),
			TotalAssets:      num(a.TotalAssets),
			TotalLiabilities: num(a.TotalLiabilities),
		})
	}
	return out
}

func num(n json.Number) float64 {
	f, err := n.Float64()
	if err != nil {
		return 0
	}
	return f
}

func stringList(raw json.RawMessage) []string {
	var list []string
	if err := json.Unmarshal(raw, &list); err != nil {
		return []string{}
	}
	out := make([]string, 0, len(list))
	for _, s := range list {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

func loanType(s string) dom.LoanType {
	switch dom.LoanType(s) {
	case dom.LoanBridging, dom.LoanDevelopment, dom.LoanRefurbishment:
		return dom.LoanType(s)
	}
	return ""
}

func exitStrategy(s string) dom.ExitStrategy {
	switch dom.ExitStrategy(s) {
	case dom.ExitSale, dom.ExitRefinance, dom.ExitDevelopmentExit, dom.ExitCashSettlement, dom.ExitOther:
		return dom.ExitStrategy(s)
	}
	return ""
}
