package report

import (
	"fmt"
	"io"
	"strings"

	"timesheet-bot/internal/domain"
)

type Renderer interface {
	Render(w io.Writer, employees []domain.Employee) error
}

type Format string

const (
	FormatPDF  Format = "pdf"
	FormatXLSX Format = "xlsx"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatPDF, nil
	case FormatPDF, FormatXLSX:
		return f, nil
	}
	return "", fmt.Errorf("unknown report format %q (want pdf or xlsx)", s)
}

func (f Format) FileName() string {
	return "timesheet." + string(f)
}

func (f Format) MIME() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "application/pdf"
}

func NewRenderer(f Format, companyName string) (Renderer, error) {
	if companyName == "" {
		companyName = DefaultCompanyName
	}
	switch f {
	case FormatPDF:
		return &PDFRenderer{CompanyName: companyName}, nil
	case FormatXLSX:
		return &XLSXRenderer{CompanyName: companyName}, nil
	}
	return nil, fmt.Errorf("unknown report format %q", f)
}
