package engine

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// MonthDay is a calendar day without a year, reusable across target years.
type MonthDay struct {
	Month int // 1-12
	Day   int // 1-31
}

// kanjiDatePattern matches dates written as "3月5日" or "3月5".
var kanjiDatePattern = regexp.MustCompile(`(\d{1,2})月(\d{1,2})日?`)

// fallbackDateLayouts are tried, in order, when the text is neither the
// slash form nor the kanji form. Only the month and day of the parsed
// date are kept.
var fallbackDateLayouts = []string{
	"2006/1/2",
	"2006-1-2",
	"2006年1月2日",
	"January 2, 2006",
	"Jan 2, 2006",
}

// ParseMonthDay extracts a month/day pair from loosely formatted text.
// Strategies are tried in fixed priority order, first match wins:
// an "M/D" slash form, the kanji "M月D日" form, then a small set of
// full-date layouts. Whatever strategy matched, the result must satisfy
// month 1-12 and day 1-31 or the parse fails.
func ParseMonthDay(text string) (MonthDay, error) {
	text = strings.TrimSpace(text)

	month, day, ok := splitSlashDate(text)
	if !ok {
		if m := kanjiDatePattern.FindStringSubmatch(text); m != nil {
			month, _ = strconv.Atoi(m[1])
			day, _ = strconv.Atoi(m[2])
		} else if t, err := parseFallbackDate(text); err == nil {
			month = int(t.Month())
			day = t.Day()
		} else {
			return MonthDay{}, fmt.Errorf("unrecognized date format: %q", text)
		}
	}

	if month < 1 || month > 12 || day < 1 || day > 31 {
		return MonthDay{}, fmt.Errorf("date out of range: month=%d day=%d", month, day)
	}
	return MonthDay{Month: month, Day: day}, nil
}

// splitSlashDate handles the "M/D" form: exactly two slash-separated
// integer tokens. Texts with a different number of slash tokens fall
// through to the other strategies, but once the form matches, a bad
// token is a hard failure (reported by the range check as month/day 0).
func splitSlashDate(text string) (month, day int, ok bool) {
	parts := strings.Split(text, "/")
	if len(parts) != 2 {
		return 0, 0, false
	}
	month, _ = strconv.Atoi(strings.TrimSpace(parts[0]))
	day, _ = strconv.Atoi(strings.TrimSpace(parts[1]))
	return month, day, true
}

func parseFallbackDate(text string) (time.Time, error) {
	for _, layout := range fallbackDateLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("no layout matched %q", text)
}

// Date materializes the month/day in a concrete year, at midnight in loc.
func (md MonthDay) Date(year int, loc *time.Location) time.Time {
	return time.Date(year, time.Month(md.Month), md.Day, 0, 0, 0, 0, loc)
}
