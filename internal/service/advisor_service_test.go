package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Bluecroft/internal/ai"
	"Bluecroft/internal/audit"
	dom "Bluecroft/internal/domain"
	"Bluecroft/internal/store"
)

// scriptedAdvisor returns canned results or a forced error.
type scriptedAdvisor struct {
	fail      bool
	report    dom.RiskReport
	parsed    ai.ParsedLoanData
	valuation dom.AreaValuation
	answer    string
	calls     int
}

var errScripted = errors.New("scripted failure")

func (s *scriptedAdvisor) ParseDocuments(context.Context, []dom.UploadedFile) (ai.ParsedLoanData, error) {
	s.calls++
	if s.fail {
		return ai.ParsedLoanData{}, errScripted
	}
	return s.parsed, nil
}

func (s *scriptedAdvisor) AnalyzeRisk(context.Context, dom.LoanData, dom.CalculatedMetrics) (dom.RiskReport, error) {
	s.calls++
	if s.fail {
		return dom.RiskReport{}, errScripted
	}
	return s.report, nil
}

func (s *scriptedAdvisor) ValueArea(context.Context, string) (dom.AreaValuation, error) {
	s.calls++
	if s.fail {
		return dom.AreaValuation{}, errScripted
	}
	return s.valuation, nil
}

func (s *scriptedAdvisor) Answer(context.Context, string, ai.ChatContext) (string, error) {
	s.calls++
	if s.fail {
		return "", errScripted
	}
	return s.answer, nil
}

func newTestAdvisorService(a ai.Advisor) (*AdvisorService, *store.CaseStore, *audit.Trail) {
	st := store.New(fixedClock())
	trail := audit.New("Case Manager", fixedClock())
	svc := NewAdvisorService(a, st, trail, nil, time.Second, quietLogger())
	return svc, st, trail
}

func TestAnalyzeAttachesReport(t *testing.T) {
	fake := &scriptedAdvisor{report: dom.RiskReport{Score: 71, Summary: "solid"}}
	svc, st, _ := newTestAdvisorService(fake)
	st.LoadSample()

	rec := svc.Analyze(context.Background())
	require.NotNil(t, rec.RiskReport)
	assert.Equal(t, 71, rec.RiskReport.Score)
	assert.NotNil(t, rec.Metrics, "analysis snapshots the metrics")
}

func TestAnalyzeFallsBackOnError(t *testing.T) {
	svc, st, _ := newTestAdvisorService(&scriptedAdvisor{fail: true})
	st.LoadSample()

	rec := svc.Analyze(context.Background())
	require.NotNil(t, rec.RiskReport)
	assert.Equal(t, 50, rec.RiskReport.Score)
	assert.Contains(t, rec.RiskReport.Summary, "Manual underwriting required")
	assert.Equal(t, []string{"Check credit score", "Verify ID", "Request Bank Statements"}, rec.RiskReport.NextSteps)
}

func TestParseDocumentsMergesOnlyFoundFields(t *testing.T) {
	fake := &scriptedAdvisor{parsed: ai.ParsedLoanData{
		LoanAmount:      300000,
		PropertyAddress: "5 Mill Lane, Leeds",
	}}
	svc, st, _ := newTestAdvisorService(fake)
	st.LoadSample()

	rec, err := svc.ParseDocuments(context.Background(), []dom.UploadedFile{{Name: "app.pdf", Type: "application/pdf", Data: "aGk="}})
	require.NoError(t, err)
	assert.Equal(t, 300000.0, rec.LoanData.LoanAmount)
	assert.Equal(t, "5 Mill Lane, Leeds", rec.LoanData.PropertyAddress)
	// Untouched fields keep the manual input.
	assert.Equal(t, 750000.0, rec.LoanData.PropertyValue)
	assert.Len(t, rec.LoanData.Applicants, 2)
}

func TestParseDocumentsPropagatesError(t *testing.T) {
	svc, st, _ := newTestAdvisorService(&scriptedAdvisor{fail: true})
	st.LoadSample()
	before := st.Draft()

	_, err := svc.ParseDocuments(context.Background(), []dom.UploadedFile{{Name: "x", Type: "t", Data: "d"}})
	assert.Error(t, err)
	assert.Equal(t, before.LoanData, st.Draft().LoanData, "failed parse leaves the draft alone")
}

func TestValueAreaFallsBackAndRequiresAddress(t *testing.T) {
	svc, _, _ := newTestAdvisorService(&scriptedAdvisor{fail: true})

	_, err := svc.ValueArea(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrNoAddress)

	val, err := svc.ValueArea(context.Background(), "12 High Street, Manchester")
	require.NoError(t, err)
	assert.Equal(t, "Could not retrieve local market data at this time.", val.Summary)
}

func TestChatFallsBackToApology(t *testing.T) {
	svc, st, _ := newTestAdvisorService(&scriptedAdvisor{fail: true})
	st.LoadSample()

	answer := svc.Chat(context.Background(), dom.DraftCaseID, "What is the LTV?", nil)
	assert.Equal(t, ai.FallbackChatAnswer, answer)
}

func TestParseFailureAppendsAuditEntry(t *testing.T) {
	svc, st, trail := newTestAdvisorService(&scriptedAdvisor{fail: true})
	st.LoadSample()

	_, err := svc.ParseDocuments(context.Background(), []dom.UploadedFile{{Name: "x.pdf", Type: "application/pdf", Data: "aGk="}})
	require.Error(t, err)

	entries := trail.List()
	require.NotEmpty(t, entries, "a failed parse must still leave an audit entry")
	assert.Equal(t, "Parse Failed", entries[0].Action)
}

func TestValuationFailureAppendsAuditEntry(t *testing.T) {
	svc, _, trail := newTestAdvisorService(&scriptedAdvisor{fail: true})

	val, err := svc.ValueArea(context.Background(), "12 High Street, Manchester")
	require.NoError(t, err)
	assert.Equal(t, "Could not retrieve local market data at this time.", val.Summary)

	entries := trail.List()
	require.NotEmpty(t, entries)
	assert.Equal(t, "Valuation Failed", entries[0].Action)
}

func TestChatFailureAppendsAuditEntry(t *testing.T) {
	svc, st, trail := newTestAdvisorService(&scriptedAdvisor{fail: true})
	st.LoadSample()

	_ = svc.Chat(context.Background(), dom.DraftCaseID, "What is the LTV?", nil)

	entries := trail.List()
	require.NotEmpty(t, entries)
	assert.Equal(t, "Chat Failed", entries[0].Action)
}

func TestChatUnknownCaseUsesDraft(t *testing.T) {
	fake := &scriptedAdvisor{answer: "The LTV is 62.5%."}
	svc, st, _ := newTestAdvisorService(fake)
	st.LoadSample()

	answer := svc.Chat(context.Background(), "missing-id", "What is the LTV?", nil)
	assert.Equal(t, "The LTV is 62.5%.", answer)
	assert.Equal(t, 1, fake.calls)
}
