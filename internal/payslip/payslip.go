// Package payslip renders a single payroll record as a printable PDF
// document.
package payslip

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/jung-kurt/gofpdf"

	"payrolldesk/internal/domain/payroll"
)

const (
	pageWidth = 210.0 // A4 portrait, mm
	margin    = 20.0
	lineStep  = 10.0
)

// Core PDF fonts are cp1252; the rupee sign is not representable, so the
// textual marker stands in.
const currencyMarker = "Rs."

var earningOrder = []string{
	"basic_salary", "da", "hra", "conveyance", "special_allowance", "dp", "arrears", "overtime",
}

var deductionOrder = []string{
	"lop", "advance", "medical_deduction", "loan", "personal_bill", "other_deduction",
}

// Filename names the document deterministically from the employee code.
func Filename(rec payroll.Record) string {
	code := rec.EmpCode
	if code == "" {
		code = "unknown"
	}
	return fmt.Sprintf("payslip_%s.pdf", code)
}

// Render lays out the payslip: centered title, identity block, parallel
// earnings/deductions columns listing only strictly positive items, and a
// centered total and generation timestamp below the longer column.
func Render(rec payroll.Record, generatedAt time.Time) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	centeredText(pdf, 20, "Payslip")

	pdf.SetFont("Helvetica", "", 12)
	y := 40.0
	for _, line := range []string{
		fmt.Sprintf("Employee Code: %s", orNA(rec.EmpCode)),
		fmt.Sprintf("Employee Name: %s", orNA(rec.EmpName)),
		fmt.Sprintf("Department: %s", orNA(rec.Department)),
		fmt.Sprintf("Designation: %s", orNA(rec.Designation)),
		fmt.Sprintf("Status: %s", statusLabel(rec.IsActive)),
	} {
		pdf.Text(margin, y, line)
		y += lineStep
	}
	y += lineStep

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Text(margin, y, "Earnings")
	pdf.Text(pageWidth/2+margin, y, "Deductions")
	y += lineStep

	pdf.SetFont("Helvetica", "", 12)
	earningsY := writeColumn(pdf, rec, earningOrder, margin, y)
	deductionsY := writeColumn(pdf, rec, deductionOrder, pageWidth/2+margin, y)

	y = max(earningsY, deductionsY) + 2*lineStep
	pdf.SetFont("Helvetica", "B", 14)
	centeredText(pdf, y, fmt.Sprintf("Total Salary: %s %.2f", currencyMarker, totalValue(rec)))
	y += lineStep
	centeredText(pdf, y, fmt.Sprintf("Date: %s", generatedAt.Format("2/1/2006, 3:04:05 pm")))

	return pdf
}

// Write renders the payslip to w.
func Write(rec payroll.Record, generatedAt time.Time, w io.Writer) error {
	return Render(rec, generatedAt).Output(w)
}

// Save writes the payslip into dir under its deterministic name and
// returns the full path.
func Save(rec payroll.Record, generatedAt time.Time, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, Filename(rec))
	if err := Render(rec, generatedAt).OutputFileAndClose(path); err != nil {
		return "", err
	}
	return path, nil
}

// writeColumn advances its own vertical cursor, skipping items whose value
// is not strictly positive, and returns the final cursor.
func writeColumn(pdf *gofpdf.Fpdf, rec payroll.Record, order []string, x, y float64) float64 {
	for _, name := range order {
		f, ok := payroll.FieldByName(name)
		if !ok {
			continue
		}
		value := payroll.Amount(f.Get(&rec)).Value()
		if value <= 0 {
			continue
		}
		pdf.Text(x, y, fmt.Sprintf("%s: %s %.2f", f.Label, currencyMarker, value))
		y += lineStep
	}
	return y
}

func centeredText(pdf *gofpdf.Fpdf, y float64, text string) {
	x := (pageWidth - pdf.GetStringWidth(text)) / 2
	pdf.Text(x, y, text)
}

func orNA(value string) string {
	if value == "" {
		return "N/A"
	}
	return value
}

func statusLabel(active payroll.Flag) string {
	if active {
		return "Active"
	}
	return "Inactive"
}

func totalValue(rec payroll.Record) float64 {
	if rec.TotalSalary == nil {
		return 0
	}
	return *rec.TotalSalary
}
