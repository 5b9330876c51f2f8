package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	dom "Bluecroft/internal/domain"
	"Bluecroft/internal/audit"
	"Bluecroft/internal/repo"
	"Bluecroft/internal/store"
)

// ErrConfirmationRequired is returned for destructive operations called
// without an explicit confirm flag.
var ErrConfirmationRequired = errors.New("confirmation required")

// CaseService coordinates the in-memory working set, the audit trail and
// the saved-case archive. Archive writes are best-effort: a failed write
// is logged, never surfaced, because the in-memory store already holds
// the truth for the running session.
type CaseService struct {
	store   *store.CaseStore
	trail   *audit.Trail
	archive repo.CaseRepo
	log     *logrus.Logger
}

// NewCaseService creates a CaseService. If archive is nil, saved cases
// live only in memory.
func NewCaseService(st *store.CaseStore, trail *audit.Trail, archive repo.CaseRepo, log *logrus.Logger) *CaseService {
	return &CaseService{store: st, trail: trail, archive: archive, log: log}
}

// Restore seeds the store from the archive at startup.
func (s *CaseService) Restore(ctx context.Context) error {
	if s.archive == nil {
		return nil
	}
	saved, err := s.archive.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("restore cases: %w", err)
	}
	s.store.Seed(saved)
	return nil
}

// All returns the active working set, draft first when it qualifies.
func (s *CaseService) All() []dom.Case {
	return s.store.All()
}

// Get returns one case by ID; "current" resolves to the draft.
func (s *CaseService) Get(id string) (dom.Case, error) {
	return s.store.Get(id)
}

// Draft returns the current draft.
func (s *CaseService) Draft() dom.Case {
	return s.store.Draft()
}

// Save commits the draft as a saved record and resets the draft.
func (s *CaseService) Save(ctx context.Context, confirm bool) (dom.Case, error) {
	if !confirm {
		return dom.Case{}, ErrConfirmationRequired
	}
	rec, err := s.store.Promote()
	if err != nil {
		return dom.Case{}, err
	}
	s.trail.Add("Case Saved", "Case for "+rec.MainApplicantName()+" committed to the case book")
	s.persist(ctx, rec)
	return rec, nil
}

// Delete removes a saved case, or resets the draft when id is "current".
func (s *CaseService) Delete(ctx context.Context, id string, confirm bool) error {
	if !confirm {
		return ErrConfirmationRequired
	}
	c, err := s.store.Get(id)
	if err != nil {
		return err
	}
	if err := s.store.Delete(id); err != nil {
		return err
	}
	if id == dom.DraftCaseID {
		s.trail.Add("Draft Discarded", "Current application form reset to defaults")
		return nil
	}
	s.trail.Add("Case Deleted", "Removed case for "+c.MainApplicantName())
	if s.archive != nil {
		if err := s.archive.Delete(ctx, id); err != nil {
			s.log.WithError(err).WithField("case_id", id).Warn("archive delete failed")
		}
	}
	return nil
}

// UpdateDraft applies a partial edit to the draft's loan data. Metrics
// recompute inside the store.
func (s *CaseService) UpdateDraft(fn func(*dom.LoanData)) dom.Case {
	return s.store.UpdateDraftLoanData(fn)
}

// LoadSample swaps the demo dataset into the draft.
func (s *CaseService) LoadSample() dom.Case {
	c := s.store.LoadSample()
	s.trail.Add("Sample Loaded", "Draft replaced with the demo joint-applicant case")
	return c
}

// ToggleTask flips a task's completion state.
func (s *CaseService) ToggleTask(ctx context.Context, id, task string) (dom.Case, error) {
	c, err := s.store.ToggleTask(id, task)
	if err != nil {
		return dom.Case{}, err
	}
	state := "reopened"
	if c.IsTaskCompleted(task) {
		state = "completed"
	}
	s.trail.Add("Task Updated", fmt.Sprintf("%q %s on case for %s", task, state, c.MainApplicantName()))
	s.persist(ctx, c)
	return c, nil
}

// AddTask appends a manual task with its due date.
func (s *CaseService) AddTask(ctx context.Context, id, text string, due time.Time) (dom.Case, error) {
	c, err := s.store.AddTask(id, text, due)
	if err != nil {
		return dom.Case{}, err
	}
	s.trail.Add("Task Added", fmt.Sprintf("%q due %s on case for %s", text, due.Format("2 Jan 2006"), c.MainApplicantName()))
	s.persist(ctx, c)
	return c, nil
}

// MoveCase reschedules a whole case to a new date. Satisfies the
// reschedule controller's mover contract.
func (s *CaseService) MoveCase(id string, date time.Time) (dom.Case, error) {
	c, err := s.store.MoveCase(id, date)
	if err != nil {
		return dom.Case{}, err
	}
	s.trail.Add("Case Rescheduled", fmt.Sprintf("Case for %s moved to %s", c.MainApplicantName(), date.Format("2 Jan 2006")))
	s.persist(context.Background(), c)
	return c, nil
}

// MoveTask reschedules one task on a case.
func (s *CaseService) MoveTask(caseID, task string, date time.Time) (dom.Case, error) {
	c, err := s.store.MoveTask(caseID, task, date)
	if err != nil {
		return dom.Case{}, err
	}
	s.trail.Add("Task Rescheduled", fmt.Sprintf("%q moved to %s on case for %s", task, date.Format("2 Jan 2006"), c.MainApplicantName()))
	s.persist(context.Background(), c)
	return c, nil
}

// persist upserts a saved record into the archive; draft state is never
// archived.
func (s *CaseService) persist(ctx context.Context, c dom.Case) {
	if s.archive == nil || c.Status != dom.StatusSaved {
		return
	}
	if err := s.archive.Insert(ctx, c); err != nil {
		s.log.WithError(err).WithField("case_id", c.ID).Warn("archive write failed")
	}
}
