package payroll

import (
	"encoding/json"
	"testing"
)

func TestAmountValue(t *testing.T) {
	cases := map[Amount]float64{
		"1000":    1000,
		"1000.25": 1000.25,
		"":        0,
		"abc":     0,
		" 42 ":    42,
		"-10":     -10,
	}
	for in, want := range cases {
		if got := in.Value(); got != want {
			t.Fatalf("Amount(%q).Value() = %v, want %v", in, got, want)
		}
	}
}

func TestAmountUnmarshalAcceptsStringAndNumber(t *testing.T) {
	var rec Record
	payload := `{"basic_salary":"1200","hra":450.75,"da":null}`
	if err := json.Unmarshal([]byte(payload), &rec); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if rec.BasicSalary != "1200" {
		t.Fatalf("expected basic_salary 1200, got %q", rec.BasicSalary)
	}
	if rec.HRA.Value() != 450.75 {
		t.Fatalf("expected hra 450.75, got %v", rec.HRA.Value())
	}
	if rec.DA != "" {
		t.Fatalf("expected blank da, got %q", rec.DA)
	}
}

func TestFlagCoercion(t *testing.T) {
	cases := map[string]bool{
		`{"is_active":true}`:  true,
		`{"is_active":false}`: false,
		`{"is_active":1}`:     true,
		`{"is_active":0}`:     false,
		`{"is_active":"1"}`:   true,
		`{"is_active":"0"}`:   false,
		`{"is_active":null}`:  false,
	}
	for payload, want := range cases {
		var rec Record
		if err := json.Unmarshal([]byte(payload), &rec); err != nil {
			t.Fatalf("unmarshal %s failed: %v", payload, err)
		}
		if bool(rec.IsActive) != want {
			t.Fatalf("%s: expected is_active %v", payload, want)
		}
	}
}

func TestNormalizeNilYieldsDefaults(t *testing.T) {
	rec := Normalize(nil)
	if rec != Defaults() {
		t.Fatal("expected defaults for nil source")
	}
	if rec.TotalSalary != nil {
		t.Fatal("expected no computed total on a fresh draft")
	}
}

func TestNormalizeCopiesTotal(t *testing.T) {
	total := 1500.0
	src := Record{ID: "r1", EmpCode: "E1", TotalSalary: &total, IsActive: true}
	out := Normalize(&src)
	if out.TotalSalary == nil || *out.TotalSalary != 1500 {
		t.Fatalf("expected total 1500, got %v", out.TotalSalary)
	}
	if out.TotalSalary == src.TotalSalary {
		t.Fatal("expected total to be copied, not aliased")
	}
	if out.ID != "r1" || !bool(out.IsActive) {
		t.Fatal("expected identity and status preserved")
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	total := 10.0
	src := Record{EmpCode: "E2", TotalSalary: &total}
	once := Normalize(&src)
	twice := Normalize(&once)
	if *twice.TotalSalary != *once.TotalSalary || twice.EmpCode != once.EmpCode {
		t.Fatal("expected normalize to be idempotent")
	}
}
