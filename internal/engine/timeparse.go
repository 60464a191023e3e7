package engine

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ClockTime is a time of day without a date.
type ClockTime struct {
	Hour   int // 0-23
	Minute int // 0-59
}

// kanjiTimePattern matches times written as "9時" or "9時30分".
var kanjiTimePattern = regexp.MustCompile(`(\d{1,2})時(?:(\d{1,2})分)?`)

// ParseClockTime extracts an hour/minute pair from loosely formatted
// text. The "H:MM" colon form is tried first, then the kanji "H時M分"
// form (minutes optional, defaulting to 0). Empty text is a parse
// failure here; callers treat it as "no reminder requested" before
// calling.
func ParseClockTime(text string) (ClockTime, error) {
	text = strings.TrimSpace(text)

	if parts := strings.Split(text, ":"); len(parts) == 2 {
		hour, errH := strconv.Atoi(strings.TrimSpace(parts[0]))
		minute, errM := strconv.Atoi(strings.TrimSpace(parts[1]))
		if errH == nil && errM == nil && validClockTime(hour, minute) {
			return ClockTime{Hour: hour, Minute: minute}, nil
		}
		// A malformed colon form still gets a chance at the kanji form.
	}

	if m := kanjiTimePattern.FindStringSubmatch(text); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute := 0
		if m[2] != "" {
			minute, _ = strconv.Atoi(m[2])
		}
		if validClockTime(hour, minute) {
			return ClockTime{Hour: hour, Minute: minute}, nil
		}
	}

	return ClockTime{}, fmt.Errorf("unrecognized time format: %q", text)
}

func validClockTime(hour, minute int) bool {
	return hour >= 0 && hour < 24 && minute >= 0 && minute < 60
}
