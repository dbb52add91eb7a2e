package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"timesheet-bot/internal/domain"
)

const defaultSheet = "Sheet1"

// XLSXRenderer writes one worksheet per employee.
type XLSXRenderer struct {
	CompanyName string
}

func (r *XLSXRenderer) Render(w io.Writer, employees []domain.Employee) error {
	sheets, err := BuildSheets(employees)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	if len(sheets) == 0 {
		if err := f.SetSheetName(defaultSheet, "Timesheet"); err != nil {
			return err
		}
		if err := r.writeHeader(f, "Timesheet", bold); err != nil {
			return err
		}
		return f.Write(w)
	}

	used := map[string]bool{}
	for i, sheet := range sheets {
		name := sheetName(sheet.Employee, i, used)
		if i == 0 {
			if err := f.SetSheetName(defaultSheet, name); err != nil {
				return err
			}
		} else if _, err := f.NewSheet(name); err != nil {
			return err
		}
		if err := r.writeSheet(f, name, sheet, bold); err != nil {
			return fmt.Errorf("sheet %q: %w", name, err)
		}
	}
	f.SetActiveSheet(0)
	return f.Write(w)
}

// sheetName derives a unique worksheet name within Excel's limits.
func sheetName(e domain.Employee, idx int, used map[string]bool) string {
	name := strings.TrimSpace(e.ID)
	if n := e.FullName(); n != "" {
		name = strings.TrimSpace(name + " " + n)
	}
	name = strings.Map(func(r rune) rune {
		if strings.ContainsRune(`[]:*?/\`, r) {
			return '_'
		}
		return r
	}, name)
	if runes := []rune(name); len(runes) > 31 {
		name = string(runes[:31])
	}
	if name == "" || used[strings.ToLower(name)] {
		name = fmt.Sprintf("Employee %d", idx+1)
	}
	used[strings.ToLower(name)] = true
	return name
}

func (r *XLSXRenderer) writeHeader(f *excelize.File, sheet string, bold int) error {
	if err := f.SetCellValue(sheet, "A1", r.CompanyName); err != nil {
		return err
	}
	if err := f.SetCellValue(sheet, "A2", Subtitle); err != nil {
		return err
	}
	return f.SetCellStyle(sheet, "A1", "A2", bold)
}

func (r *XLSXRenderer) writeSheet(f *excelize.File, sheet string, s EmployeeSheet, bold int) error {
	if err := r.writeHeader(f, sheet, bold); err != nil {
		return err
	}
	labels := [][]any{
		{"Employee", s.Employee.FullName()},
		{"Job Title", s.Employee.Position},
		{"Contract", s.Employee.Contract},
	}
	row := 4
	for _, l := range labels {
		if err := setRow(f, sheet, row, l); err != nil {
			return err
		}
		row++
	}
	row++

	for _, week := range s.Weeks {
		if err := setRow(f, sheet, row, []any{"Week Ending", week.WeekEnding.Format(domain.DateFormat)}); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, cell(1, row), cell(1, row), bold); err != nil {
			return err
		}
		row++
		for _, header := range [][]string{HeaderTop, HeaderSub} {
			if err := setRow(f, sheet, row, toAny(header)); err != nil {
				return err
			}
			if err := f.SetCellStyle(sheet, cell(1, row), cell(len(header), row), bold); err != nil {
				return err
			}
			row++
		}
		if err := f.MergeCell(sheet, cell(3, row-2), cell(4, row-2)); err != nil {
			return err
		}
		if err := f.MergeCell(sheet, cell(5, row-2), cell(6, row-2)); err != nil {
			return err
		}
		for _, wr := range week.Rows {
			if err := setRow(f, sheet, row, toAny(wr.Cells())); err != nil {
				return err
			}
			row++
		}
		if err := setRow(f, sheet, row, toAny(week.Totals.Cells())); err != nil {
			return err
		}
		row += 2
	}
	return f.SetColWidth(sheet, "A", "F", 14)
}

func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	return f.SetSheetRow(sheet, cell(1, row), &values)
}

func toAny(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
