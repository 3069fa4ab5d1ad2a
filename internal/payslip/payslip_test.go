package payslip

import (
	"bytes"
	"testing"
	"time"

	"payrolldesk/internal/domain/payroll"
)

func TestFilename(t *testing.T) {
	if got := Filename(payroll.Record{EmpCode: "E42"}); got != "payslip_E42.pdf" {
		t.Fatalf("unexpected filename %q", got)
	}
	if got := Filename(payroll.Record{}); got != "payslip_unknown.pdf" {
		t.Fatalf("expected unknown fallback, got %q", got)
	}
}

func TestWriteProducesDocument(t *testing.T) {
	total := 1450.0
	rec := payroll.Record{
		EmpCode:     "E1",
		EmpName:     "Alice",
		Department:  "Accounts",
		BasicSalary: "1000",
		HRA:         "500",
		LOP:         "50",
		TotalSalary: &total,
		IsActive:    true,
	}

	var buf bytes.Buffer
	if err := Write(rec, time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC), &buf); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("expected PDF bytes")
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Fatal("expected a PDF header")
	}
}

func TestColumnsOmitNonPositiveItems(t *testing.T) {
	rec := payroll.Record{BasicSalary: "0", HRA: "500"}
	pdf := Render(rec, time.Now())

	start := 100.0
	end := writeColumn(pdf, rec, earningOrder, margin, start)
	// Only HRA is strictly positive, so the cursor advances exactly once.
	if end != start+lineStep {
		t.Fatalf("expected one earnings line, cursor moved %v", end-start)
	}

	end = writeColumn(pdf, rec, deductionOrder, margin, start)
	if end != start {
		t.Fatalf("expected empty deductions column, cursor moved %v", end-start)
	}
}

func TestColumnsAdvanceIndependently(t *testing.T) {
	rec := payroll.Record{
		BasicSalary: "100",
		DA:          "100",
		HRA:         "100",
		LOP:         "10",
	}
	pdf := Render(rec, time.Now())
	start := 100.0
	earningsEnd := writeColumn(pdf, rec, earningOrder, margin, start)
	deductionsEnd := writeColumn(pdf, rec, deductionOrder, pageWidth/2+margin, start)
	if earningsEnd != start+3*lineStep {
		t.Fatalf("expected three earnings lines, got cursor %v", earningsEnd)
	}
	if deductionsEnd != start+lineStep {
		t.Fatalf("expected one deduction line, got cursor %v", deductionsEnd)
	}
}
