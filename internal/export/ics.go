// Package export renders downloadable artifacts: the underwriting memo
// PDF, request letters, and single-event calendar files.
package export

import (
	"fmt"
	"strings"
	"time"
)

const icsDateLayout = "20060102"

// BuildCalendarEventICS builds a one-event iCalendar file. With no date
// the event lands on the day after now (the follow-up convention).
func BuildCalendarEventICS(title, description string, date *time.Time, now time.Time) string {
	start := now.AddDate(0, 0, 1)
	if date != nil {
		start = *date
	}
	end := start.AddDate(0, 0, 1)

	title = strings.TrimSpace(title)
	if title == "" {
		title = "Blue Croft Finance"
	}

	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//Blue Croft Finance//Underwriting//EN",
		"CALSCALE:GREGORIAN",
		"METHOD:PUBLISH",
		"BEGIN:VEVENT",
		fmt.Sprintf("UID:event-%d@bluecroft", now.UnixNano()),
		"DTSTAMP:" + now.UTC().Format("20060102T150405Z"),
		"SUMMARY:" + escapeICSText(title),
		"DTSTART;VALUE=DATE:" + start.Format(icsDateLayout),
		"DTEND;VALUE=DATE:" + end.Format(icsDateLayout),
	}
	if d := strings.TrimSpace(description); d != "" {
		lines = append(lines, "DESCRIPTION:"+escapeICSText(d))
	}
	lines = append(lines, "END:VEVENT", "END:VCALENDAR", "")

	return strings.Join(lines, "\r\n")
}

func escapeICSText(s string) string {
	repl := strings.NewReplacer(
		"\\", "\\\\",
		";", "\\;",
		",", "\\,",
		"\r\n", "\\n",
		"\n", "\\n",
		"\r", "\\n",
	)
	return repl.Replace(s)
}
