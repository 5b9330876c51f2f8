package domain

import "time"

// DraftCaseID is the sentinel ID of the single in-progress draft case.
const DraftCaseID = "current"

// CaseStatus distinguishes the live draft from committed records.
type CaseStatus string

const (
	StatusDraft CaseStatus = "draft"
	StatusSaved CaseStatus = "saved"
)

type LoanType string

const (
	LoanBridging      LoanType = "Bridging"
	LoanDevelopment   LoanType = "Development"
	LoanRefurbishment LoanType = "Refurbishment"
)

type ExitStrategy string

const (
	ExitSale            ExitStrategy = "Sale of Property"
	ExitRefinance       ExitStrategy = "Refinance to Term Loan"
	ExitDevelopmentExit ExitStrategy = "Development Exit Finance"
	ExitCashSettlement  ExitStrategy = "Cash Settlement"
	ExitOther           ExitStrategy = "Other"
)

// Applicant is one borrower (person or entity) on an application.
type Applicant struct {
	ID               string
	Name             string
	AnnualIncome     float64
	MonthlyExpenses  float64
	TotalAssets      float64
	TotalLiabilities float64
}

// LoanData holds the raw application inputs.
// TaskDueDates maps a task string to its due-date override; the stored
// strings (date-only or RFC3339) are authoritative even when they fall
// outside the case lifetime.
type LoanData struct {
	Applicants          []Applicant
	LoanAmount          float64
	PropertyValue       float64
	PurchasePrice       float64
	RefurbCost          float64
	InterestRateMonthly float64 // percent per month
	TermMonths          int
	LoanType            LoanType
	PropertyAddress     string
	ExitStrategy        ExitStrategy
	TaskDueDates        map[string]string
}

// CalculatedMetrics are derived from LoanData, never stored independently.
type CalculatedMetrics struct {
	LTV             float64
	LTC             float64
	MonthlyInterest float64
	TotalInterest   float64
	GrossLoan       float64
}

// RiskReport is the AI underwriting assessment. NextSteps is the ordered
// action plan; each entry is a task keyed by its exact text.
type RiskReport struct {
	Score       int
	Summary     string
	Risks       []string
	Mitigations []string
	NextSteps   []string
}

// AreaValuation is the AI local-market lookup result.
type AreaValuation struct {
	Summary string
	Sources []ValuationSource
}

type ValuationSource struct {
	Title string
	URI   string
}

// Case is one loan application: the live draft or a committed record.
// CompletedTasks is membership-only; entries may go stale if a next step
// is later removed from the report.
type Case struct {
	ID             string
	Status         CaseStatus
	LoanData       LoanData
	Metrics        *CalculatedMetrics
	RiskReport     *RiskReport
	CompletedTasks map[string]struct{}
	CreatedAt      time.Time
	ScheduledDate  *time.Time
}

// MainApplicantName returns the first applicant's name, or a placeholder.
func (c Case) MainApplicantName() string {
	if len(c.LoanData.Applicants) == 0 || c.LoanData.Applicants[0].Name == "" {
		return "Unnamed Applicant"
	}
	return c.LoanData.Applicants[0].Name
}

// AllApplicantNames joins the non-empty applicant names.
func (c Case) AllApplicantNames() string {
	names := make([]string, 0, len(c.LoanData.Applicants))
	for _, a := range c.LoanData.Applicants {
		if a.Name != "" {
			names = append(names, a.Name)
		}
	}
	if len(names) == 0 {
		return "Unnamed Applicant"
	}
	out := names[0]
	for _, n := range names[1:] {
		out += " & " + n
	}
	return out
}

// NextSteps returns the report's action plan, nil-safe.
func (c Case) NextSteps() []string {
	if c.RiskReport == nil {
		return nil
	}
	return c.RiskReport.NextSteps
}

// IsTaskCompleted reports membership in the completed-task set.
func (c Case) IsTaskCompleted(task string) bool {
	_, ok := c.CompletedTasks[task]
	return ok
}

// Clone returns a deep copy so saved records never alias draft state.
func (c Case) Clone() Case {
	out := c
	out.LoanData.Applicants = append([]Applicant(nil), c.LoanData.Applicants...)
	if c.LoanData.TaskDueDates != nil {
		out.LoanData.TaskDueDates = make(map[string]string, len(c.LoanData.TaskDueDates))
		for k, v := range c.LoanData.TaskDueDates {
			out.LoanData.TaskDueDates[k] = v
		}
	}
	if c.Metrics != nil {
		m := *c.Metrics
		out.Metrics = &m
	}
	if c.RiskReport != nil {
		r := *c.RiskReport
		r.Risks = append([]string(nil), c.RiskReport.Risks...)
		r.Mitigations = append([]string(nil), c.RiskReport.Mitigations...)
		r.NextSteps = append([]string(nil), c.RiskReport.NextSteps...)
		out.RiskReport = &r
	}
	if c.CompletedTasks != nil {
		out.CompletedTasks = make(map[string]struct{}, len(c.CompletedTasks))
		for k := range c.CompletedTasks {
			out.CompletedTasks[k] = struct{}{}
		}
	}
	if c.ScheduledDate != nil {
		d := *c.ScheduledDate
		out.ScheduledDate = &d
	}
	return out
}
