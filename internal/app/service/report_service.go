package service

import (
	"bytes"
	"context"
	"io"
	"log"

	"timesheet-bot/internal/domain"
	"timesheet-bot/internal/report"
)

type ReportService struct {
	Employees   domain.EmployeeRepo
	CompanyName string
}

func NewReportService(employees domain.EmployeeRepo, companyName string) *ReportService {
	return &ReportService{Employees: employees, CompanyName: companyName}
}

// Export renders every employee's timesheet to w.
func (s *ReportService) Export(ctx context.Context, w io.Writer, format report.Format) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	renderer, err := report.NewRenderer(format, s.CompanyName)
	if err != nil {
		return err
	}
	employees, err := s.Employees.GetEmployees()
	if err != nil {
		return wrapUnexpected("export", err)
	}
	log.Printf("[export] rendering %s for %d employees", format, len(employees))
	return wrapUnexpected("export", renderer.Render(w, employees))
}

// ExportBytes renders the report on the async pool into memory.
func (s *ReportService) ExportBytes(ctx context.Context, async *AsyncService, format report.Format) ([]byte, error) {
	v, err := async.SubmitAsync(ctx, func() (any, error) {
		var buf bytes.Buffer
		if err := s.Export(ctx, &buf, format); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}
