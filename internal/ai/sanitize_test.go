package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeRiskReportDefaults(t *testing.T) {
	r := SanitizeRiskReport([]byte(`{}`))
	assert.Equal(t, 50, r.Score)
	assert.Equal(t, "No summary provided.", r.Summary)
	assert.Empty(t, r.Risks)
	assert.Empty(t, r.Mitigations)
	assert.Empty(t, r.NextSteps)

	r = SanitizeRiskReport([]byte(`not even json`))
	assert.Equal(t, 50, r.Score)
	assert.NotNil(t, r.NextSteps)
}

func TestSanitizeRiskReportWellFormed(t *testing.T) {
	r := SanitizeRiskReport([]byte(`{
		"score": 72.4,
		"summary": "Sound exit via sale.",
		"risks": ["Market softening"],
		"mitigations": ["Conservative LTV"],
		"nextSteps": ["Request bank statements", "Credit bureau search"]
	}`))
	assert.Equal(t, 72, r.Score)
	assert.Equal(t, "Sound exit via sale.", r.Summary)
	assert.Equal(t, []string{"Market softening"}, r.Risks)
	assert.Len(t, r.NextSteps, 2)
}

func TestSanitizeRiskReportWrongTypes(t *testing.T) {
	r := SanitizeRiskReport([]byte(`{"score":"high","risks":"many","nextSteps":[1,2]}`))
	assert.Equal(t, 50, r.Score)
	assert.Empty(t, r.Risks)
	assert.Empty(t, r.NextSteps)
}

func TestSanitizeParsedLoanData(t *testing.T) {
	p := SanitizeParsedLoanData([]byte(`{
		"applicants": [{"name": "A Ltd", "annualIncome": 90000}],
		"loanAmount": 250000,
		"propertyValue": 400000,
		"loanType": "Bridging",
		"exitStrategy": "Sale of Property"
	}`))
	require.Len(t, p.Applicants, 1)
	assert.Equal(t, "A Ltd", p.Applicants[0].Name)
	assert.NotEmpty(t, p.Applicants[0].ID)
	assert.Zero(t, p.Applicants[0].TotalAssets)
	assert.Equal(t, 250000.0, p.LoanAmount)
	assert.Equal(t, "Bridging", string(p.LoanType))
}

func TestSanitizeParsedLoanDataRejectsUnknownEnums(t *testing.T) {
	p := SanitizeParsedLoanData([]byte(`{"loanType":"Payday","exitStrategy":"Hope"}`))
	assert.Empty(t, string(p.LoanType))
	assert.Empty(t, string(p.ExitStrategy))
	assert.Zero(t, p.LoanAmount)
}
