// Package audit keeps the in-memory activity trail. Newest entries
// first, capped so a long session cannot grow without bound.
package audit

import (
	"sync"
	"time"

	"github.com/google/uuid"

	dom "Bluecroft/internal/domain"
)

const defaultCap = 500

// Trail is the append-only audit log.
type Trail struct {
	mu      sync.RWMutex
	now     func() time.Time
	entries []dom.AuditLogEntry
	user    string
	max     int
}

// New returns an empty trail attributing entries to the given user.
func New(user string, now func() time.Time) *Trail {
	if now == nil {
		now = time.Now
	}
	if user == "" {
		user = "Case Manager"
	}
	return &Trail{now: now, user: user, max: defaultCap}
}

// Add prepends an entry.
func (t *Trail) Add(action, details string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	entry := dom.AuditLogEntry{
		ID:        uuid.NewString(),
		Timestamp: t.now(),
		Action:    action,
		User:      t.user,
		Details:   details,
	}
	t.entries = append([]dom.AuditLogEntry{entry}, t.entries...)
	if len(t.entries) > t.max {
		t.entries = t.entries[:t.max]
	}
}

// List returns a copy of the trail, newest first.
func (t *Trail) List() []dom.AuditLogEntry {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]dom.AuditLogEntry, len(t.entries))
	copy(out, t.entries)
	return out
}
