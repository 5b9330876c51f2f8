package export

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBuildCalendarEventICS(t *testing.T) {
	now := time.Date(2026, time.March, 10, 9, 30, 0, 0, time.UTC)
	date := time.Date(2026, time.March, 20, 0, 0, 0, 0, time.UTC)

	ics := BuildCalendarEventICS("Follow up: Oakwood", "Review loan application. Risk Score: 62", &date, now)

	assert.True(t, strings.HasPrefix(ics, "BEGIN:VCALENDAR\r\n"))
	assert.Contains(t, ics, "SUMMARY:Follow up: Oakwood")
	assert.Contains(t, ics, "DTSTART;VALUE=DATE:20260320")
	assert.Contains(t, ics, "DTEND;VALUE=DATE:20260321")
	assert.Contains(t, ics, "DTSTAMP:20260310T093000Z")
	assert.Contains(t, ics, "END:VCALENDAR")
}

func TestBuildCalendarEventICSDefaultsToTomorrow(t *testing.T) {
	now := time.Date(2026, time.March, 10, 9, 30, 0, 0, time.UTC)
	ics := BuildCalendarEventICS("Task: Verify ID", "", nil, now)
	assert.Contains(t, ics, "DTSTART;VALUE=DATE:20260311")
	assert.NotContains(t, ics, "DESCRIPTION:")
}

func TestICSEscaping(t *testing.T) {
	now := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	ics := BuildCalendarEventICS("a;b,c", "line1\nline2", nil, now)
	assert.Contains(t, ics, "SUMMARY:a\\;b\\,c")
	assert.Contains(t, ics, "DESCRIPTION:line1\\nline2")
}
