package payroll

// The earnings/deductions split is fixed. Every numeric field that is not a
// deduction is an earning.
var deductionFields = map[string]bool{
	"lop":               true,
	"advance":           true,
	"personal_bill":     true,
	"other_deduction":   true,
	"medical_deduction": true,
	"loan":              true,
}

func IsDeduction(name string) bool { return deductionFields[name] }

// ComputeTotal derives the total salary from a record: the sum of all
// earning fields minus the sum of all deduction fields. Blank or
// unparseable values count as zero. Pure function of the record.
func ComputeTotal(rec Record) float64 {
	var earnings, deductions float64
	for _, f := range fields {
		if f.Kind != KindNumeric {
			continue
		}
		v := Amount(f.Get(&rec)).Value()
		if deductionFields[f.Name] {
			deductions += v
		} else {
			earnings += v
		}
	}
	return earnings - deductions
}
