package dto

import "time"

// UploadedFileDTO is one uploaded document; Data is base64.
type UploadedFileDTO struct {
	Name string `json:"name" binding:"required"`
	Type string `json:"type" binding:"required"`
	Data string `json:"data" binding:"required"`
}

type ParseDocumentsRequest struct {
	Files []UploadedFileDTO `json:"files" binding:"required,min=1,dive"`
}

type ChatRequest struct {
	CaseID    string   `json:"caseId"`
	Question  string   `json:"question" binding:"required,min=1"`
	FileNames []string `json:"fileNames"`
}

type ChatResponse struct {
	Answer string `json:"answer"`
}

type ValuationSourceDTO struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

type ValuationResponse struct {
	Summary string               `json:"summary"`
	Sources []ValuationSourceDTO `json:"sources"`
}

// AuditEntryResponse is one audit-trail row, newest first.
type AuditEntryResponse struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Action    string    `json:"action"`
	User      string    `json:"user"`
	Details   string    `json:"details"`
}

type AuditResponse struct {
	Items []AuditEntryResponse `json:"items"`
}
