package report

import (
	"io"
	"strconv"

	"github.com/go-pdf/fpdf"

	"timesheet-bot/internal/domain"
)

// Page geometry in points.
const (
	inch     = 72.0
	cm       = 28.35
	font     = "Helvetica"
	fontSize = 12.0
	rowH     = 18.0
	labelGap = 1.95 * inch
)

var colWidths = []float64{60, 90, 75, 75, 55, 55}

// PDFRenderer draws one employee per A4 page.
type PDFRenderer struct {
	CompanyName string
}

// page draws on the PDF, translating UTF-8 text to the cp1252 encoding of
// the core fonts.
type page struct {
	*fpdf.Fpdf
	tr func(string) string
}

func (p page) cell(w, h float64, text, border string, ln int, align string) {
	p.CellFormat(w, h, p.tr(text), border, ln, align, false, 0, "")
}

func (r *PDFRenderer) Render(w io.Writer, employees []domain.Employee) error {
	sheets, err := BuildSheets(employees)
	if err != nil {
		return err
	}

	pdf := fpdf.New("P", "pt", "A4", "")
	p := page{Fpdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetFooterFunc(func() {
		pdf.SetFont(font, "", fontSize)
		pdf.SetXY(0, p.pageHeight()-0.5*inch-fontSize)
		pageW, _ := pdf.GetPageSize()
		p.cell(pageW, fontSize, strconv.Itoa(pdf.PageNo()), "", 0, "C")
	})

	if len(sheets) == 0 {
		pdf.AddPage()
		r.drawHeader(p)
	}
	for i, sheet := range sheets {
		pdf.AddPage()
		pdf.SetY(inch)
		if i == 0 {
			r.drawHeader(p)
			pdf.SetY(pdf.GetY() + 1.5*cm)
		}
		p.drawEmployee(sheet)
	}
	return pdf.Output(w)
}

func (p page) pageHeight() float64 {
	_, h := p.GetPageSize()
	return h
}

func (p page) drawBoxedTitle(text string, size, padX, padY float64) {
	p.SetFont(font, "", size)
	pageW, _ := p.GetPageSize()
	w := p.GetStringWidth(p.tr(text)) + 2*padX
	h := size + 2*padY
	p.SetXY((pageW-w)/2, p.GetY())
	p.SetLineWidth(1)
	p.cell(w, h, text, "1", 1, "C")
	p.SetLineWidth(0.1)
}

func (r *PDFRenderer) drawHeader(p page) {
	p.SetY(inch)
	p.drawBoxedTitle(r.CompanyName, 14, 16, 16)
	p.SetY(p.GetY() + 0.3*cm)
	p.drawBoxedTitle(Subtitle, fontSize, 10, 6)
}

func (p page) drawLabelled(label, text string, bold bool) {
	y := p.GetY()
	style := ""
	if bold {
		style = "B"
	}
	p.SetFont(font, style, fontSize)
	p.SetXY(inch, y)
	p.cell(labelGap, fontSize, label, "", 0, "L")
	p.SetFont(font, "", fontSize)
	p.cell(0, fontSize, text, "", 1, "L")
}

func (p page) drawEmployee(sheet EmployeeSheet) {
	e := sheet.Employee
	p.drawLabelled("Employee", e.FullName(), false)
	p.SetY(p.GetY() + cm - fontSize)
	p.drawLabelled("Job Title", e.Position, false)
	p.SetY(p.GetY() + cm - fontSize)
	p.drawLabelled("Contract", e.Contract, false)
	p.SetY(p.GetY() + 1.5*cm - fontSize)

	for i, week := range sheet.Weeks {
		if i > 0 {
			p.SetY(p.GetY() + cm)
		}
		p.drawWeek(week)
	}
}

func (p page) drawWeek(t WeekTable) {
	p.drawLabelled("Week Ending", t.WeekEnding.Format(domain.DateFormat), true)
	p.SetY(p.GetY() + cm - fontSize)
	p.SetFont(font, "", fontSize)

	x := 1.5 * inch
	p.SetX(x)
	p.cell(colWidths[0], rowH, HeaderTop[0], "LTR", 0, "C")
	p.cell(colWidths[1], rowH, HeaderTop[1], "LTR", 0, "C")
	p.cell(colWidths[2]+colWidths[3], rowH, HeaderTop[2], "1", 0, "C")
	p.cell(colWidths[4]+colWidths[5], rowH, HeaderTop[4], "1", 1, "C")

	p.SetX(x)
	for i, text := range HeaderSub {
		border := "1"
		if i < 2 {
			border = "LBR"
		}
		p.cell(colWidths[i], rowH, text, border, 0, "C")
	}
	p.Ln(rowH)

	for _, row := range t.Rows {
		p.SetX(x)
		for i, text := range row.Cells() {
			p.cell(colWidths[i], rowH, text, "1", 0, "C")
		}
		p.Ln(rowH)
	}

	p.SetX(x)
	for i, text := range t.Totals.Cells() {
		border := ""
		if i >= 3 {
			border = "1"
		}
		p.cell(colWidths[i], rowH, text, border, 0, "C")
	}
	p.Ln(rowH)
}
