package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"Bluecroft/internal/ai"
	"Bluecroft/internal/audit"
	"Bluecroft/internal/cache"
	dom "Bluecroft/internal/domain"
	"Bluecroft/internal/store"
)

var ErrNoAddress = errors.New("property address required")

// AdvisorService fronts the AI collaborator: it owns the per-call
// deadline, the degraded-mode fallbacks and the valuation cache, so
// handlers never talk to the model directly.
type AdvisorService struct {
	advisor    ai.Advisor
	store      *store.CaseStore
	trail      *audit.Trail
	valuations *cache.ValuationCache
	sf         singleflight.Group
	timeout    time.Duration
	log        *logrus.Logger
}

// NewAdvisorService creates an AdvisorService. If vc is nil, valuations
// are fetched fresh every time.
func NewAdvisorService(a ai.Advisor, st *store.CaseStore, trail *audit.Trail, vc *cache.ValuationCache, timeout time.Duration, log *logrus.Logger) *AdvisorService {
	if timeout <= 0 {
		timeout = 90 * time.Second
	}
	return &AdvisorService{advisor: a, store: st, trail: trail, valuations: vc, timeout: timeout, log: log}
}

// Analyze runs the underwriting assessment over the draft and attaches
// the result. A failed call attaches the generic fallback report instead,
// so the case always ends up actionable.
func (s *AdvisorService) Analyze(ctx context.Context) dom.Case {
	draft := s.store.Draft()
	var m dom.CalculatedMetrics
	if draft.Metrics != nil {
		m = *draft.Metrics
	}

	cctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	report, err := s.advisor.AnalyzeRisk(cctx, draft.LoanData, m)
	if err != nil {
		s.log.WithError(err).Warn("risk analysis failed, using fallback report")
		report = ai.FallbackRiskReport("")
		c := s.store.SetRiskReport(report)
		s.trail.Add("Analysis Failed", "AI unavailable; fallback report attached for "+c.MainApplicantName())
		return c
	}
	c := s.store.SetRiskReport(report)
	s.trail.Add("Analysis Complete", fmt.Sprintf("Risk score %d for %s", report.Score, c.MainApplicantName()))
	return c
}

// ParseDocuments extracts loan data from uploads and merges what was
// found into the draft. Zero values in the extraction leave existing
// fields alone.
func (s *AdvisorService) ParseDocuments(ctx context.Context, files []dom.UploadedFile) (dom.Case, error) {
	cctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	parsed, err := s.advisor.ParseDocuments(cctx, files)
	if err != nil {
		s.log.WithError(err).Warn("document parsing failed")
		s.trail.Add("Parse Failed", "Could not extract application data: "+err.Error())
		return dom.Case{}, err
	}
	c := s.store.UpdateDraftLoanData(func(d *dom.LoanData) {
		mergeParsed(d, parsed)
	})
	names := make([]string, len(files))
	for i, f := range files {
		names[i] = f.Name
	}
	s.trail.Add("Documents Parsed", "Extracted application data from "+strings.Join(names, ", "))
	return c, nil
}

// ValueArea looks up the local property market for an address, with a
// Redis cache in front and singleflight collapsing concurrent lookups.
// Failures return the fallback valuation and are never cached.
func (s *AdvisorService) ValueArea(ctx context.Context, address string) (dom.AreaValuation, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return dom.AreaValuation{}, ErrNoAddress
	}
	key := "valuation:" + strings.ToLower(address)
	v, err, _ := s.sf.Do(key, func() (interface{}, error) {
		if s.valuations != nil {
			if hit, err := s.valuations.Get(ctx, address); err == nil && hit != nil {
				return *hit, nil
			}
		}
		cctx, cancel := context.WithTimeout(ctx, s.timeout)
		defer cancel()
		val, err := s.advisor.ValueArea(cctx, address)
		if err != nil {
			s.log.WithError(err).WithField("address", address).Warn("area valuation failed")
			s.trail.Add("Valuation Failed", "AI unavailable; fallback summary returned for "+address)
			return ai.FallbackValuation(), nil
		}
		if s.valuations != nil {
			if err := s.valuations.Set(ctx, address, val); err != nil {
				s.log.WithError(err).Warn("valuation cache write failed")
			}
		}
		s.trail.Add("Area Valued", "Local market summary fetched for "+address)
		return val, nil
	})
	if err != nil {
		return dom.AreaValuation{}, err
	}
	return v.(dom.AreaValuation), nil
}

// Chat answers a question about a case. Unknown case IDs and AI outages
// both degrade to the stock apology rather than an error.
func (s *AdvisorService) Chat(ctx context.Context, caseID, question string, fileNames []string) string {
	c, err := s.store.Get(caseID)
	if err != nil {
		c = s.store.Draft()
	}
	cc := ai.ChatContext{
		LoanData:   c.LoanData,
		Metrics:    c.Metrics,
		RiskReport: c.RiskReport,
		FileNames:  fileNames,
	}
	cctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	answer, err := s.advisor.Answer(cctx, question, cc)
	if err != nil {
		s.log.WithError(err).Warn("chat answer failed")
		s.trail.Add("Chat Failed", "AI unavailable; apology returned for "+c.MainApplicantName())
		return ai.FallbackChatAnswer
	}
	return answer
}

// mergeParsed overlays extracted values onto the draft, keeping manual
// input where the extraction came back empty.
func mergeParsed(d *dom.LoanData, p ai.ParsedLoanData) {
	if len(p.Applicants) > 0 {
		d.Applicants = p.Applicants
	}
	if p.LoanAmount > 0 {
		d.LoanAmount = p.LoanAmount
	}
	if p.PropertyValue > 0 {
		d.PropertyValue = p.PropertyValue
	}
	if p.PurchasePrice > 0 {
		d.PurchasePrice = p.PurchasePrice
	}
	if p.RefurbCost > 0 {
		d.RefurbCost = p.RefurbCost
	}
	if p.InterestRateMonthly > 0 {
		d.InterestRateMonthly = p.InterestRateMonthly
	}
	if p.TermMonths > 0 {
		d.TermMonths = p.TermMonths
	}
	if p.PropertyAddress != "" {
		d.PropertyAddress = p.PropertyAddress
	}
	if p.LoanType != "" {
		d.LoanType = p.LoanType
	}
	if p.ExitStrategy != "" {
		d.ExitStrategy = p.ExitStrategy
	}
}
