// Package store is the in-memory working set of loan cases: one live
// draft plus the saved records. All mutations go through the mutex; the
// caller owns ordering (handlers run their updates synchronously).
package store

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	dom "Bluecroft/internal/domain"
	"Bluecroft/internal/metrics"
)

var (
	ErrNotFound     = errors.New("case not found")
	ErrInvalidTask  = errors.New("task text and due date required")
	ErrDraftNotSave = errors.New("draft has no risk report yet")
)

// Clock supplies "now" so date defaults are deterministic in tests.
type Clock func() time.Time

// CaseStore holds the draft case and the saved list.
type CaseStore struct {
	mu    sync.RWMutex
	now   Clock
	draft dom.Case
	saved []dom.Case
}

// New returns a store with a fresh default draft.
func New(now Clock) *CaseStore {
	if now == nil {
		now = time.Now
	}
	s := &CaseStore{now: now}
	s.draft = s.newDraft()
	return s
}

// newDraft builds the default draft: one blank applicant, scheduled
// tomorrow, empty override map.
func (s *CaseStore) newDraft() dom.Case {
	created := s.now()
	scheduled := created.AddDate(0, 0, 1)
	return dom.Case{
		ID:     dom.DraftCaseID,
		Status: dom.StatusDraft,
		LoanData: dom.LoanData{
			Applicants:   []dom.Applicant{{ID: uuid.NewString()}},
			LoanType:     dom.LoanBridging,
			ExitStrategy: dom.ExitSale,
			TaskDueDates: map[string]string{},
		},
		CompletedTasks: map[string]struct{}{},
		CreatedAt:      created,
		ScheduledDate:  &scheduled,
	}
}

// Seed appends archived records to the saved list (startup restore).
func (s *CaseStore) Seed(cases []dom.Case) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range cases {
		c.Status = dom.StatusSaved
		s.saved = append(s.saved, c.Clone())
	}
}

// Draft returns a copy of the current draft.
func (s *CaseStore) Draft() dom.Case {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.draft.Clone()
}

// Get returns a copy of the case with the given ID.
func (s *CaseStore) Get(id string) (dom.Case, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if id == dom.DraftCaseID {
		return s.draft.Clone(), nil
	}
	for _, c := range s.saved {
		if c.ID == id {
			return c.Clone(), nil
		}
	}
	return dom.Case{}, ErrNotFound
}

// All returns the active working set, newest saved first. The draft is
// included only once it has a risk report and metrics, mirroring how the
// case book treats an unanalyzed form as not-yet-a-case.
func (s *CaseStore) All() []dom.Case {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]dom.Case, 0, len(s.saved)+1)
	if s.draft.RiskReport != nil && s.draft.Metrics != nil {
		out = append(out, s.draft.Clone())
	}
	for _, c := range s.saved {
		out = append(out, c.Clone())
	}
	return out
}

// Promote commits the draft as an immutable saved record and resets the
// draft to defaults. Returns the saved copy.
func (s *CaseStore) Promote() (dom.Case, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.draft.RiskReport == nil || s.draft.Metrics == nil {
		return dom.Case{}, ErrDraftNotSave
	}
	rec := s.draft.Clone()
	rec.ID = uuid.NewString()
	rec.Status = dom.StatusSaved
	if rec.ScheduledDate == nil {
		now := s.now()
		rec.ScheduledDate = &now
	}
	s.saved = append([]dom.Case{rec}, s.saved...)
	s.draft = s.newDraft()
	return rec.Clone(), nil
}

// ResetDraft discards the draft in place.
func (s *CaseStore) ResetDraft() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = s.newDraft()
}

// Delete removes a saved case, or resets the draft when id is the
// draft sentinel.
func (s *CaseStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id == dom.DraftCaseID {
		s.draft = s.newDraft()
		return nil
	}
	for i, c := range s.saved {
		if c.ID == id {
			s.saved = append(s.saved[:i], s.saved[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// UpdateDraftLoanData applies fn to the draft's loan data and recomputes
// metrics, which track every input change.
func (s *CaseStore) UpdateDraftLoanData(fn func(*dom.LoanData)) dom.Case {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.draft.LoanData)
	m := metrics.Calculate(s.draft.LoanData)
	s.draft.Metrics = &m
	return s.draft.Clone()
}

// SetRiskReport attaches an analysis result to the draft, along with the
// metrics snapshot it was produced from.
func (s *CaseStore) SetRiskReport(r dom.RiskReport) dom.Case {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.RiskReport = &r
	m := metrics.Calculate(s.draft.LoanData)
	s.draft.Metrics = &m
	return s.draft.Clone()
}

// ToggleTask flips a task's membership in the case's completed set.
func (s *CaseStore) ToggleTask(id, task string) (dom.Case, error) {
	return s.mutate(id, func(c *dom.Case) error {
		if c.CompletedTasks == nil {
			c.CompletedTasks = map[string]struct{}{}
		}
		if _, ok := c.CompletedTasks[task]; ok {
			delete(c.CompletedTasks, task)
		} else {
			c.CompletedTasks[task] = struct{}{}
		}
		return nil
	})
}

// AddTask appends a manual task to the case's next steps and records its
// due-date override. Empty text or zero date is rejected.
func (s *CaseStore) AddTask(id, text string, due time.Time) (dom.Case, error) {
	text = strings.TrimSpace(text)
	if text == "" || due.IsZero() {
		return dom.Case{}, ErrInvalidTask
	}
	return s.mutate(id, func(c *dom.Case) error {
		if c.RiskReport == nil {
			c.RiskReport = &dom.RiskReport{}
		}
		c.RiskReport.NextSteps = append(c.RiskReport.NextSteps, text)
		if c.LoanData.TaskDueDates == nil {
			c.LoanData.TaskDueDates = map[string]string{}
		}
		c.LoanData.TaskDueDates[text] = due.Format(time.RFC3339)
		return nil
	})
}

// MoveCase reschedules a whole case: sets its scheduled date and clears
// every per-task override, so all tasks revert to the new case date.
func (s *CaseStore) MoveCase(id string, date time.Time) (dom.Case, error) {
	return s.mutate(id, func(c *dom.Case) error {
		c.ScheduledDate = &date
		c.LoanData.TaskDueDates = map[string]string{}
		return nil
	})
}

// MoveTask reschedules a single task, leaving the case date and the other
// overrides untouched.
func (s *CaseStore) MoveTask(id, task string, date time.Time) (dom.Case, error) {
	return s.mutate(id, func(c *dom.Case) error {
		if c.LoanData.TaskDueDates == nil {
			c.LoanData.TaskDueDates = map[string]string{}
		}
		c.LoanData.TaskDueDates[task] = date.Format(time.RFC3339)
		return nil
	})
}

func (s *CaseStore) mutate(id string, fn func(*dom.Case) error) (dom.Case, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id == dom.DraftCaseID {
		if err := fn(&s.draft); err != nil {
			return dom.Case{}, err
		}
		return s.draft.Clone(), nil
	}
	for i := range s.saved {
		if s.saved[i].ID == id {
			if err := fn(&s.saved[i]); err != nil {
				return dom.Case{}, err
			}
			return s.saved[i].Clone(), nil
		}
	}
	return dom.Case{}, ErrNotFound
}

// LoadSample replaces the draft with the demo joint-applicant dataset.
func (s *CaseStore) LoadSample() dom.Case {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.newDraft()
	d.LoanData = dom.LoanData{
		Applicants: []dom.Applicant{
			{
				ID:               uuid.NewString(),
				Name:             "Oakwood Developments Ltd",
				AnnualIncome:     120000,
				MonthlyExpenses:  3500,
				TotalAssets:      1500000,
				TotalLiabilities: 450000,
			},
			{
				ID:               uuid.NewString(),
				Name:             "John Smith (Director)",
				AnnualIncome:     85000,
				MonthlyExpenses:  2000,
				TotalAssets:      450000,
				TotalLiabilities: 150000,
			},
		},
		LoanAmount:          450000,
		PropertyValue:       750000,
		PurchasePrice:       600000,
		RefurbCost:          100000,
		InterestRateMonthly: 0.95,
		TermMonths:          9,
		LoanType:            dom.LoanRefurbishment,
		PropertyAddress:     "12 High Street, Manchester, M1 1AA",
		ExitStrategy:        dom.ExitSale,
		TaskDueDates:        map[string]string{},
	}
	m := metrics.Calculate(d.LoanData)
	d.Metrics = &m
	s.draft = d
	return s.draft.Clone()
}
