package payroll

import "testing"

func TestFieldTableCoversEveryEditableField(t *testing.T) {
	if len(Fields()) != 22 {
		t.Fatalf("expected 22 field descriptors, got %d", len(Fields()))
	}
	numeric := 0
	for _, f := range Fields() {
		if f.Kind == KindNumeric {
			numeric++
		}
	}
	if numeric != 14 {
		t.Fatalf("expected 14 numeric fields, got %d", numeric)
	}
}

func TestFieldSetAndGet(t *testing.T) {
	rec := Defaults()
	for name, value := range map[string]string{
		"emp_code":     "E7",
		"basic_salary": "1200.50",
		"department":   "Accounts",
		"remarks":      "october run",
	} {
		f, ok := FieldByName(name)
		if !ok {
			t.Fatalf("missing descriptor for %s", name)
		}
		f.Set(&rec, value)
		if got := f.Get(&rec); got != value {
			t.Fatalf("%s: set %q, got back %q", name, value, got)
		}
	}
}

func TestCheckboxFieldStoresBoolean(t *testing.T) {
	rec := Defaults()
	f, ok := FieldByName("is_active")
	if !ok {
		t.Fatal("missing is_active descriptor")
	}
	f.Set(&rec, "true")
	if !bool(rec.IsActive) {
		t.Fatal("expected active after setting true")
	}
	f.Set(&rec, "nonsense")
	if bool(rec.IsActive) {
		t.Fatal("expected unparseable checkbox input to store false")
	}
}

func TestSelectFieldsOfferOnlyEnumeratedOptions(t *testing.T) {
	dep, _ := FieldByName("department")
	if dep.Kind != KindSelect || len(dep.Options) != 4 {
		t.Fatalf("unexpected department descriptor: %+v", dep)
	}
	des, _ := FieldByName("designation")
	if des.Kind != KindSelect || len(des.Options) != 3 {
		t.Fatalf("unexpected designation descriptor: %+v", des)
	}

	// Out-of-set values still persist; the table only constrains choices.
	rec := Defaults()
	dep.Set(&rec, "Legacy Dept")
	if rec.Department != "Legacy Dept" {
		t.Fatal("expected out-of-set department value to stick")
	}
}

func TestFieldByNameUnknown(t *testing.T) {
	if _, ok := FieldByName("nope"); ok {
		t.Fatal("expected lookup miss for unknown field")
	}
}
