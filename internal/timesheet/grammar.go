// Package timesheet holds the rules for a two-week shift record: field
// grammars, pay period dates and weekly totals.
package timesheet

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	hoursRegex = regexp.MustCompile(`^\d{0,2}(\.\d{0,2})?$`)
	timeRegex  = regexp.MustCompile(`^$|^(0[1-9]|1[0-2]):([0-5][0-9])\s(AM|PM)$`)
)

const (
	HoursHint = "Please enter a number with up to 2 digits before and after the decimal point. (e.g., 7.25)"
	TimeHint  = "Please enter the time in HH:MM AM/PM format (e.g., 09:30 AM)."
)

// ValidateTime reports whether text is empty or a 12-hour "HH:MM AM" time.
func ValidateTime(text string) bool {
	return timeRegex.MatchString(text)
}

// ValidateHours reports whether text is an hours value such as "7.25".
// Incomplete values like "." or "8." are accepted; FormatHours completes them.
func ValidateHours(text string) bool {
	return hoursRegex.MatchString(text)
}

// FormatHours renders valid hours text with exactly two decimals.
// It panics if text does not pass ValidateHours.
func FormatHours(text string) string {
	if !ValidateHours(text) {
		panic(fmt.Sprintf("timesheet: FormatHours called with invalid hours %q", text))
	}
	if text == "" || text == "." {
		return "0.00"
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		panic(fmt.Sprintf("timesheet: FormatHours: %v", err))
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// CommitTime strips raw time text and reports whether it is acceptable.
func CommitTime(raw string) (string, bool) {
	text := strings.TrimSpace(raw)
	return text, ValidateTime(text)
}

// CommitHours strips raw hours text and, when valid, formats it.
// Invalid text is returned stripped but otherwise untouched.
func CommitHours(raw string) (string, bool) {
	text := strings.TrimSpace(raw)
	if !ValidateHours(text) {
		return text, false
	}
	return FormatHours(text), true
}
