package payroll

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// Amount holds a numeric field exactly as the clerk typed it. Values stay
// as text end to end; parsing happens only at computation and rendering
// time, with blank or malformed input counting as zero.
type Amount string

func (a Amount) Value() float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(string(a)), 64)
	if err != nil {
		return 0
	}
	return v
}

func (a Amount) String() string { return string(a) }

// UnmarshalJSON accepts both string and number forms so records written by
// older store deployments still load.
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*a = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Amount(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*a = Amount(n.String())
	return nil
}

// Flag is a boolean that tolerates the 0/1 and "0"/"1" encodings some
// stores use for active status.
type Flag bool

func (f *Flag) UnmarshalJSON(data []byte) error {
	switch strings.Trim(strings.TrimSpace(string(data)), `"`) {
	case "", "null", "0", "false":
		*f = false
	default:
		*f = true
	}
	return nil
}

// Record is a monthly payroll entry for one employee. ID is assigned by the
// store on create and absent on a local draft.
type Record struct {
	ID               string    `json:"id,omitempty"`
	EmpCode          string    `json:"emp_code"`
	EmpName          string    `json:"emp_name"`
	Department       string    `json:"department"`
	Designation      string    `json:"designation"`
	Category         string    `json:"category"`
	BasicSalary      Amount    `json:"basic_salary"`
	DA               Amount    `json:"da"`
	HRA              Amount    `json:"hra"`
	Conveyance       Amount    `json:"conveyance"`
	SpecialAllowance Amount    `json:"special_allowance"`
	DP               Amount    `json:"dp"`
	Arrears          Amount    `json:"arrears"`
	Overtime         Amount    `json:"overtime"`
	LOP              Amount    `json:"lop"`
	Advance          Amount    `json:"advance"`
	PersonalBill     Amount    `json:"personal_bill"`
	OtherDeduction   Amount    `json:"other_deduction"`
	MedicalDeduction Amount    `json:"medical_deduction"`
	Loan             Amount    `json:"loan"`
	TotalSalary      *float64  `json:"total_salary"`
	IsActive         Flag      `json:"is_active"`
	Remarks          string    `json:"remarks"`
	CreatedAt        time.Time `json:"created_at,omitempty"`
}

// Defaults is the canonical all-fields-present draft shape: every field at
// its empty value, no computed total.
func Defaults() Record {
	return Record{}
}

// Normalize overlays a possibly partial record onto the canonical default
// shape. A nil source yields the defaults. The function is pure and
// idempotent.
func Normalize(rec *Record) Record {
	if rec == nil {
		return Defaults()
	}
	out := *rec
	out.IsActive = Flag(bool(rec.IsActive))
	if rec.TotalSalary != nil {
		total := *rec.TotalSalary
		out.TotalSalary = &total
	}
	return out
}
