package telegram

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"timesheet-bot/internal/domain"
	"timesheet-bot/internal/report"
	"timesheet-bot/internal/timesheet"
)

var periodStart = time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)

func TestFormatTimesheet(t *testing.T) {
	e := domain.Employee{
		ID:        "7",
		FirstName: "Charlie",
		LastName:  "Brown",
		Position:  "Teacher",
		Shifts:    timesheet.DefaultShiftsFor(periodStart),
	}
	sheet, err := report.BuildEmployeeSheet(e)
	if err != nil {
		t.Fatalf("build sheet: %v", err)
	}
	out := formatTimesheet(sheet)

	for _, want := range []string{
		"Charlie Brown (ID 7)",
		"Teacher\n",
		"Week ending 2024-07-07",
		"Week ending 2024-07-14",
		"Mon 2024-07-01 09:00 AM 05:00 PM   8.00   0.00",
		"Sat 2024-07-06 --       --         0.00   0.00",
		"Total:    40.00   0.00",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
	if !strings.HasPrefix(out, "<pre>") || !strings.HasSuffix(out, "</pre>") {
		t.Fatalf("output is not a pre block")
	}
}

func TestFormatTimesheetEscapesMarkup(t *testing.T) {
	e := domain.Employee{
		ID:        "7",
		FirstName: "Ann`s",
		LastName:  "<b>Lee</b>",
		Position:  "Cook & Baker",
		Shifts:    timesheet.DefaultShiftsFor(periodStart),
	}
	sheet, err := report.BuildEmployeeSheet(e)
	if err != nil {
		t.Fatalf("build sheet: %v", err)
	}
	out := formatTimesheet(sheet)
	if strings.Contains(out, "<b>") || strings.Contains(out, "& Baker") {
		t.Fatalf("markup not escaped:\n%s", out)
	}
	if !strings.Contains(out, "&lt;b&gt;Lee&lt;/b&gt;") || !strings.Contains(out, "Cook &amp; Baker") {
		t.Fatalf("escaped text missing:\n%s", out)
	}
	if strings.Count(out, "<pre>") != 1 || strings.Count(out, "</pre>") != 1 {
		t.Fatalf("pre block broken:\n%s", out)
	}
}

func TestFormatEmployees(t *testing.T) {
	if out := formatEmployees(nil); !strings.Contains(out, "No employees") {
		t.Fatalf("unexpected empty list text %q", out)
	}
	out := formatEmployees([]domain.Employee{
		{ID: "1", FirstName: "Ann", LastName: "Lee", Position: "Cook", Contract: "Part time"},
		{ID: "2", FirstName: "Bo", LastName: "Kim"},
	})
	if !strings.Contains(out, "1: Ann Lee (Cook, Part time)\n") || !strings.Contains(out, "2: Bo Kim\n") {
		t.Fatalf("unexpected list %q", out)
	}
}

func TestFormatPeriod(t *testing.T) {
	out := formatPeriod(timesheet.RollPayPeriod(periodStart))
	if !strings.Contains(out, "2024-07-01 to 2024-07-14") || !strings.Contains(out, "2024-07-15 to 2024-07-28") {
		t.Fatalf("unexpected period text %q", out)
	}
}

func TestParseShiftEdit(t *testing.T) {
	edit, err := parseShiftEdit([]string{"7", "2024-07-02", "in", "09:30", "AM"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if edit.EmployeeID != "7" || edit.Field != timesheet.FieldTimeIn || edit.Value != "09:30 AM" {
		t.Fatalf("unexpected edit %+v", edit)
	}
	if !edit.Date.Equal(time.Date(2024, 7, 2, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected date %s", edit.Date)
	}

	clear, err := parseShiftEdit([]string{"7", "2024-07-02", "out", "-"})
	if err != nil || clear.Value != "" {
		t.Fatalf("dash must clear the value: %+v, %v", clear, err)
	}
	empty, err := parseShiftEdit([]string{"7", "2024-07-02", "reg"})
	if err != nil || empty.Value != "" {
		t.Fatalf("missing value must be empty: %+v, %v", empty, err)
	}

	for _, bad := range [][]string{
		{"7", "2024-07-02"},
		{"7", "07/02/2024", "in", "09:00 AM"},
		{"7", "2024-07-02", "lunch", "1"},
	} {
		if _, err := parseShiftEdit(bad); err == nil {
			t.Fatalf("expected error for %v", bad)
		}
	}
}

func TestUserMessage(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{&timesheet.InvalidFieldError{Field: timesheet.FieldHoursReg, Value: "123"}, timesheet.HoursHint},
		{fmt.Errorf("add: %w", domain.ErrDuplicateEmployeeID), "already exists"},
		{domain.ErrEmployeeNotFound, "not found"},
		{fmt.Errorf("%w: x", timesheet.ErrShape), "14 shifts"},
		{fmt.Errorf("%w: disk", domain.ErrInternal), "Something went wrong"},
	}
	for _, tc := range cases {
		if got := userMessage(tc.err); !strings.Contains(got, tc.want) {
			t.Fatalf("userMessage(%v) = %q, want %q", tc.err, got, tc.want)
		}
	}
}
