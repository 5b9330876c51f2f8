package dto

import "time"

// CalendarTaskDTO is one task row in the day-detail panel.
type CalendarTaskDTO struct {
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	DueDate   time.Time `json:"dueDate"`
}

// CalendarCaseDTO is a case chip on the monthly grid or day panel.
type CalendarCaseDTO struct {
	CaseID    string            `json:"caseId"`
	Applicant string            `json:"applicant"`
	Status    string            `json:"status"`
	Total     int               `json:"totalTasks"`
	Completed int               `json:"completedTasks"`
	Pending   int               `json:"pendingTasks"`
	Tasks     []CalendarTaskDTO `json:"tasks,omitempty"`
}

// MonthDayDTO is one cell of the monthly grid.
type MonthDayDTO struct {
	Date  string            `json:"date"`
	Cases []CalendarCaseDTO `json:"cases"`
}

type MonthResponse struct {
	Year  int           `json:"year"`
	Month int           `json:"month"`
	Days  []MonthDayDTO `json:"days"`
}

type DayResponse struct {
	Date  string            `json:"date"`
	Cases []CalendarCaseDTO `json:"cases"`
}

// RescheduleStateResponse mirrors the controller snapshot.
type RescheduleStateResponse struct {
	Phase        string     `json:"phase"`
	CaseID       string     `json:"caseId,omitempty"`
	Task         string     `json:"task,omitempty"`
	SelectedDate *time.Time `json:"selectedDate,omitempty"`
}

type StartCaseRescheduleRequest struct {
	CaseID string `json:"caseId" binding:"required"`
}

type StartTaskRescheduleRequest struct {
	CaseID string `json:"caseId" binding:"required"`
	Task   string `json:"task" binding:"required"`
}

type ConfirmRescheduleRequest struct {
	Date Date `json:"date" binding:"required"`
}

type DropRequest struct {
	Kind   string `json:"kind" binding:"required,oneof=case task"`
	CaseID string `json:"caseId" binding:"required"`
	Task   string `json:"task"`
	Date   Date   `json:"date" binding:"required"`
}

// CalendarEventRequest builds a single-event ICS download.
type CalendarEventRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Date        Date   `json:"date"`
}

// LetterRequest builds a document-request letter PDF.
type LetterRequest struct {
	ApplicantName   string   `json:"applicantName" binding:"required"`
	Items           []string `json:"items" binding:"required"`
	PropertyAddress string   `json:"propertyAddress"`
}
