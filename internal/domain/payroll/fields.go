package payroll

import "strconv"

type Kind int

const (
	KindText Kind = iota
	KindNumeric
	KindSelect
	KindCheckbox
)

// Field describes one record field for a generic form surface: what it is
// called, which control renders it, the allowed choices for selects, and
// how to read and write it on a Record. Checkbox fields store booleans;
// everything else stores the raw input string.
type Field struct {
	Name    string
	Label   string
	Kind    Kind
	Options []string
	Get     func(*Record) string
	Set     func(*Record, string)
}

func amountField(name, label string, get func(*Record) *Amount) Field {
	return Field{
		Name:  name,
		Label: label,
		Kind:  KindNumeric,
		Get:   func(r *Record) string { return string(*get(r)) },
		Set:   func(r *Record, v string) { *get(r) = Amount(v) },
	}
}

var fields = []Field{
	{
		Name: "emp_code", Label: "Employee Code", Kind: KindText,
		Get: func(r *Record) string { return r.EmpCode },
		Set: func(r *Record, v string) { r.EmpCode = v },
	},
	{
		Name: "emp_name", Label: "Employee Name", Kind: KindText,
		Get: func(r *Record) string { return r.EmpName },
		Set: func(r *Record, v string) { r.EmpName = v },
	},
	{
		Name: "department", Label: "Department", Kind: KindSelect, Options: Departments,
		Get: func(r *Record) string { return r.Department },
		Set: func(r *Record, v string) { r.Department = v },
	},
	{
		Name: "designation", Label: "Designation", Kind: KindSelect, Options: Designations,
		Get: func(r *Record) string { return r.Designation },
		Set: func(r *Record, v string) { r.Designation = v },
	},
	{
		Name: "category", Label: "Category", Kind: KindText,
		Get: func(r *Record) string { return r.Category },
		Set: func(r *Record, v string) { r.Category = v },
	},
	amountField("basic_salary", "Basic Salary", func(r *Record) *Amount { return &r.BasicSalary }),
	amountField("da", "DA", func(r *Record) *Amount { return &r.DA }),
	amountField("hra", "HRA", func(r *Record) *Amount { return &r.HRA }),
	amountField("conveyance", "Conveyance", func(r *Record) *Amount { return &r.Conveyance }),
	amountField("special_allowance", "Special Allowance", func(r *Record) *Amount { return &r.SpecialAllowance }),
	amountField("dp", "DP", func(r *Record) *Amount { return &r.DP }),
	amountField("arrears", "Arrears", func(r *Record) *Amount { return &r.Arrears }),
	amountField("overtime", "Overtime", func(r *Record) *Amount { return &r.Overtime }),
	amountField("lop", "LOP", func(r *Record) *Amount { return &r.LOP }),
	amountField("advance", "Advance", func(r *Record) *Amount { return &r.Advance }),
	amountField("personal_bill", "Personal Bill", func(r *Record) *Amount { return &r.PersonalBill }),
	amountField("other_deduction", "Other Deduction", func(r *Record) *Amount { return &r.OtherDeduction }),
	amountField("medical_deduction", "Medical Deduction", func(r *Record) *Amount { return &r.MedicalDeduction }),
	amountField("loan", "Loan", func(r *Record) *Amount { return &r.Loan }),
	{
		Name: "remarks", Label: "Remarks", Kind: KindText,
		Get: func(r *Record) string { return r.Remarks },
		Set: func(r *Record, v string) { r.Remarks = v },
	},
	{
		Name: "is_active", Label: "Active", Kind: KindCheckbox,
		Get: func(r *Record) string { return strconv.FormatBool(bool(r.IsActive)) },
		Set: func(r *Record, v string) {
			b, err := strconv.ParseBool(v)
			r.IsActive = Flag(err == nil && b)
		},
	},
}

// Fields returns the full descriptor table in form order.
func Fields() []Field {
	return fields
}

func FieldByName(name string) (Field, bool) {
	for _, f := range fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}
