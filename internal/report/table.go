// Package report lays out pay period timesheets and renders them as PDF or
// spreadsheet documents.
package report

import (
	"fmt"
	"time"

	"timesheet-bot/internal/domain"
	"timesheet-bot/internal/timesheet"
)

const (
	DefaultCompanyName = "Timesheet Generator"
	Subtitle           = "CREW TIMESHEET"
	emptyTime          = "--"
)

var (
	HeaderTop = []string{"Day", "Date", "Time", "", "Hours", ""}
	HeaderSub = []string{"", "", "In", "Out", "Reg.", "OT"}
)

// Row is one line of a weekly table.
type Row struct {
	Day     string
	Date    string
	TimeIn  string
	TimeOut string
	Reg     string
	OT      string
}

func (r Row) Cells() []string {
	return []string{r.Day, r.Date, r.TimeIn, r.TimeOut, r.Reg, r.OT}
}

type WeekTable struct {
	WeekEnding time.Time
	Rows       []Row
	Totals     Row
}

type EmployeeSheet struct {
	Employee domain.Employee
	Weeks    [2]WeekTable
}

func ShiftRow(s domain.Shift) Row {
	return Row{
		Day:     s.Date.Format("Mon"),
		Date:    s.Date.Format(domain.DateFormat),
		TimeIn:  timeText(s.TimeIn),
		TimeOut: timeText(s.TimeOut),
		Reg:     s.HoursReg,
		OT:      s.HoursOT,
	}
}

func timeText(c *domain.Clock) string {
	if c == nil {
		return emptyTime
	}
	return c.String()
}

// BuildWeekTable lays out one week of shifts with its totals row.
func BuildWeekTable(week []domain.Shift) (WeekTable, error) {
	reg, ot, err := timesheet.WeekTotals(week)
	if err != nil {
		return WeekTable{}, err
	}
	t := WeekTable{
		WeekEnding: week[len(week)-1].Date,
		Rows:       make([]Row, 0, len(week)),
		Totals: Row{
			TimeOut: "Total:",
			Reg:     timesheet.FormatTotal(reg),
			OT:      timesheet.FormatTotal(ot),
		},
	}
	for _, s := range week {
		t.Rows = append(t.Rows, ShiftRow(s))
	}
	return t, nil
}

// BuildEmployeeSheet requires exactly one pay period of shifts.
func BuildEmployeeSheet(e domain.Employee) (EmployeeSheet, error) {
	week1, week2, err := timesheet.SplitWeeks(e.Shifts)
	if err != nil {
		return EmployeeSheet{}, fmt.Errorf("employee %q: %w", e.ID, err)
	}
	sheet := EmployeeSheet{Employee: e}
	for i, week := range [][]domain.Shift{week1, week2} {
		if sheet.Weeks[i], err = BuildWeekTable(week); err != nil {
			return EmployeeSheet{}, fmt.Errorf("employee %q: %w", e.ID, err)
		}
	}
	return sheet, nil
}

func BuildSheets(es []domain.Employee) ([]EmployeeSheet, error) {
	sheets := make([]EmployeeSheet, 0, len(es))
	for _, e := range es {
		sheet, err := BuildEmployeeSheet(e)
		if err != nil {
			return nil, err
		}
		sheets = append(sheets, sheet)
	}
	return sheets, nil
}
