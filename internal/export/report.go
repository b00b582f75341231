package export

import (
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/google/uuid"

	"github.com/alexiusacademia/gotank/internal/errors"
	"github.com/alexiusacademia/gotank/internal/version"
)

// Page layout constants (A4 portrait in mm)
const (
	pageWidth    = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 10.0
	rowHeight    = 6.0
	labelWidth   = 95.0
)

// Row is one labelled value of a report section
type Row struct {
	Label string
	Value string
}

// Section is a titled block of report rows
type Section struct {
	Title string
	Rows  []Row
	Notes []string
}

// Report is a design report
type Report struct {
	ID        uuid.UUID
	Title     string
	Generated time.Time
	Sections  []Section
}

// NewReport starts a report with a fresh id
func NewReport(title string) *Report {
	return &Report{
		ID:        uuid.New(),
		Title:     title,
		Generated: time.Now(),
	}
}

// Add appends a section
func (r *Report) Add(s Section) {
	r.Sections = append(r.Sections, s)
}

// WritePDF renders the report to a PDF file
func (r *Report) WritePDF(path string) error {
	if len(r.Sections) == 0 {
		return errors.New(errors.TypeExport, "report has no sections")
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(marginLeft, marginTop, marginRight)
	pdf.SetAutoPageBreak(true, marginBottom)
	pdf.SetTitle(r.Title, true)
	pdf.SetCreator("gotank "+version.Version, true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFooterFunc(func() {
		pdf.SetY(-marginBottom)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(120, 120, 120)
		pdf.CellFormat(0, 5, fmt.Sprintf("Report %s   page %d", r.ID, pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()
	r.renderHeader(pdf, tr)
	for _, s := range r.Sections {
		renderSection(pdf, tr, s)
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return errors.Wrap(errors.TypeExport, "writing "+path, err)
	}
	return nil
}

func (r *Report) renderHeader(pdf *fpdf.Fpdf, tr func(string) string) {
	contentWidth := pageWidth - marginLeft - marginRight

	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(contentWidth, headerHeight, tr(r.Title), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(80, 80, 80)
	meta := fmt.Sprintf("%s %s | generated %s | id %s",
		version.Code, "storage tank design", r.Generated.Format("2006-01-02 15:04"), r.ID)
	pdf.CellFormat(contentWidth, 5, tr(meta), "B", 1, "L", false, 0, "")
	pdf.Ln(4)
}

func renderSection(pdf *fpdf.Fpdf, tr func(string) string, s Section) {
	contentWidth := pageWidth - marginLeft - marginRight

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetFillColor(33, 150, 243)
	pdf.SetTextColor(255, 255, 255)
	pdf.CellFormat(contentWidth, 8, tr(s.Title), "", 1, "L", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(0, 0, 0)
	for i, row := range s.Rows {
		fill := i%2 == 1
		pdf.SetFillColor(240, 240, 240)
		pdf.CellFormat(labelWidth, rowHeight, tr(row.Label), "", 0, "L", fill, 0, "")
		pdf.CellFormat(contentWidth-labelWidth, rowHeight, tr(row.Value), "", 1, "R", fill, 0, "")
	}

	if len(s.Notes) > 0 {
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(90, 90, 90)
		for _, n := range s.Notes {
			pdf.MultiCell(contentWidth, 4, tr(n), "", "L", false)
		}
	}
	pdf.Ln(5)
}
