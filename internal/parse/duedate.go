// Package parse extracts structured task fields (due date, title, cleaned
// description) from free-form text: forwarded emails, dictation transcripts,
// mobile shortcut payloads. Every function is pure — "now" is an explicit
// argument — and none of them fail: the worst case is an absent result or
// the original text passed through unchanged.
package parse

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the calendar-date form produced by ExtractDueDate and
// consumed by both backend adapters.
const DateLayout = "2006-01-02"

const daysPerWeek = 7

var (
	nextWeekdayPattern = regexp.MustCompile(`(?i)\bnext\s+(monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`)
	tomorrowPattern    = regexp.MustCompile(`(?i)\btomorrow\b`)
	inDaysPattern      = regexp.MustCompile(`(?i)\bin\s+(\d+)\s+days?\b`)
	literalDatePattern = regexp.MustCompile(`\b(\d{4}-\d{2}-\d{2})\b`)
)

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// ExtractDueDate scans text for a due-date phrase and returns the date in
// YYYY-MM-DD form. Pattern classes are tried in a fixed priority order, and
// the first class that matches wins:
//
//  1. "next <weekday>" — the next occurrence of that weekday strictly in the
//     future. When today already is the named weekday, the result is a full
//     week out, never today: "next friday" said on a Friday means the
//     following one.
//  2. "tomorrow" — now plus one day.
//  3. "in N days" — now plus N days (N may be 0).
//  4. a literal YYYY-MM-DD substring, returned verbatim.
//
// The second return value is false when no pattern matches.
func ExtractDueDate(text string, now time.Time) (string, bool) {
	if m := nextWeekdayPattern.FindStringSubmatch(text); m != nil {
		target := weekdays[strings.ToLower(m[1])]
		ahead := (int(target) - int(now.Weekday()) + daysPerWeek) % daysPerWeek
		if ahead == 0 {
			ahead = daysPerWeek
		}
		return now.AddDate(0, 0, ahead).Format(DateLayout), true
	}

	if tomorrowPattern.MatchString(text) {
		return now.AddDate(0, 0, 1).Format(DateLayout), true
	}

	if m := inDaysPattern.FindStringSubmatch(text); m != nil {
		n, err := strconv.Atoi(m[1])
		if err == nil {
			return now.AddDate(0, 0, n).Format(DateLayout), true
		}
	}

	if m := literalDatePattern.FindStringSubmatch(text); m != nil {
		return m[1], true
	}

	return "", false
}
