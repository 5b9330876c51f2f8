package domain

import "time"

// AuditLogEntry is one line of the in-memory audit trail.
type AuditLogEntry struct {
	ID        string
	Timestamp time.Time
	Action    string
	User      string
	Details   string
}

// UploadedFile is a document submitted for AI extraction.
type UploadedFile struct {
	Name string
	Type string // MIME type
	Data string // base64 payload
}
