package telegram

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"
	"time"

	"timesheet-bot/internal/domain"
	"timesheet-bot/internal/report"
	"timesheet-bot/internal/timesheet"
	"timesheet-bot/pkg/workerpool"
)

const (
	usageAdd  = "Usage: /add ID;First name;Last name;Position;Contract"
	usageEdit = "Usage: /edit ID;First name;Last name;Position;Contract"
	usageSet  = "Usage: /set ID YYYY-MM-DD in|out|reg|ot VALUE (use - to clear a time)"
)

const rowFormat = "%-3s %-10s %-8s %-8s %6s %6s\n"

// formatTimesheet renders a sheet as a fixed width HTML <pre> block.
func formatTimesheet(sheet report.EmployeeSheet) string {
	e := sheet.Employee
	var b strings.Builder
	fmt.Fprintf(&b, "%s (ID %s)\n", e.FullName(), e.ID)
	if line := strings.TrimSpace(strings.Join(nonEmpty(e.Position, e.Contract), ", ")); line != "" {
		b.WriteString(line + "\n")
	}
	for _, week := range sheet.Weeks {
		fmt.Fprintf(&b, "\nWeek ending %s\n", week.WeekEnding.Format(domain.DateFormat))
		fmt.Fprintf(&b, rowFormat, "Day", "Date", "In", "Out", "Reg.", "OT")
		for _, r := range week.Rows {
			fmt.Fprintf(&b, rowFormat, r.Day, r.Date, r.TimeIn, r.TimeOut, r.Reg, r.OT)
		}
		fmt.Fprintf(&b, rowFormat, "", "", "", week.Totals.TimeOut, week.Totals.Reg, week.Totals.OT)
	}
	return "<pre>" + html.EscapeString(b.String()) + "</pre>"
}

func nonEmpty(ss ...string) []string {
	var out []string
	for _, s := range ss {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func formatEmployees(es []domain.Employee) string {
	if len(es) == 0 {
		return "No employees yet.\n" + usageAdd
	}
	var b strings.Builder
	b.WriteString("Employees:\n")
	for _, e := range es {
		fmt.Fprintf(&b, "%s: %s", e.ID, e.FullName())
		if extra := nonEmpty(e.Position, e.Contract); len(extra) > 0 {
			fmt.Fprintf(&b, " (%s)", strings.Join(extra, ", "))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func formatPeriod(p domain.PayPeriod) string {
	next := timesheet.RollPayPeriod(timesheet.NextDate(p.EndDate, 1))
	return fmt.Sprintf("Current pay period: %s\nNext pay period: %s", p, next)
}

type shiftEdit struct {
	EmployeeID string
	Date       time.Time
	Field      timesheet.Field
	Value      string
}

func parseShiftEdit(args []string) (shiftEdit, error) {
	if len(args) < 3 {
		return shiftEdit{}, errors.New("not enough arguments")
	}
	date, err := time.Parse(domain.DateFormat, args[1])
	if err != nil {
		return shiftEdit{}, fmt.Errorf("bad date %q", args[1])
	}
	field, err := timesheet.ParseField(args[2])
	if err != nil {
		return shiftEdit{}, err
	}
	value := strings.Join(args[3:], " ")
	if value == "-" {
		value = ""
	}
	return shiftEdit{EmployeeID: args[0], Date: date, Field: field, Value: value}, nil
}

// userMessage turns a service error into text for the operator.
func userMessage(err error) string {
	var fieldErr *timesheet.InvalidFieldError
	var shiftErr *timesheet.InvalidShiftError
	switch {
	case errors.As(err, &fieldErr):
		return fmt.Sprintf("Invalid %s value %q. %s", fieldErr.Field, fieldErr.Value, fieldErr.Field.Hint())
	case errors.As(err, &shiftErr):
		return "Please correct the shift: " + shiftErr.Error()
	case errors.Is(err, domain.ErrDuplicateEmployeeID):
		return "An employee with this ID already exists."
	case errors.Is(err, domain.ErrEmployeeNotFound):
		return "Employee not found."
	case errors.Is(err, domain.ErrShiftNotFound):
		return "That date is not in the current pay period."
	case errors.Is(err, domain.ErrEmptyEmployeeID):
		return "Employee ID must not be empty."
	case errors.Is(err, domain.ErrNoPayPeriod):
		return "No pay period is set. Use /rollover to start one."
	case errors.Is(err, timesheet.ErrShape):
		return "Every employee needs exactly 14 shifts before exporting."
	case errors.Is(err, context.DeadlineExceeded):
		return "The export took too long. Please try again."
	case errors.Is(err, workerpool.ErrClosed):
		return "The bot is shutting down."
	}
	return "Something went wrong. Please try again."
}
