package payroll

import (
	"fmt"
	"net/url"
	"strconv"
	"time"
)

// Filter narrows the listing query. Zero month/year and nil Active impose
// no constraint. It lives only in memory; it is never persisted.
type Filter struct {
	Month  int // 1-12, 0 matches all
	Year   int // 4-digit, 0 matches all
	Active *bool
}

func (f Filter) IsZero() bool {
	return f.Month == 0 && f.Year == 0 && f.Active == nil
}

// Query encodes the non-empty filter fields as list query parameters.
func (f Filter) Query() url.Values {
	q := url.Values{}
	if f.Month != 0 {
		q.Set("month", strconv.Itoa(f.Month))
	}
	if f.Year != 0 {
		q.Set("year", strconv.Itoa(f.Year))
	}
	if f.Active != nil {
		if *f.Active {
			q.Set("is_active", "1")
		} else {
			q.Set("is_active", "0")
		}
	}
	return q
}

// ParseFilter builds a Filter from list query parameters, validating the
// ranges the store accepts.
func ParseFilter(q url.Values) (Filter, error) {
	var f Filter
	if raw := q.Get("month"); raw != "" {
		m, err := strconv.Atoi(raw)
		if err != nil || m < 1 || m > 12 {
			return Filter{}, fmt.Errorf("invalid month %q", raw)
		}
		f.Month = m
	}
	if raw := q.Get("year"); raw != "" {
		y, err := strconv.Atoi(raw)
		if err != nil || y < 1000 || y > 9999 {
			return Filter{}, fmt.Errorf("invalid year %q", raw)
		}
		f.Year = y
	}
	if raw := q.Get("is_active"); raw != "" {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return Filter{}, fmt.Errorf("invalid is_active %q", raw)
		}
		f.Active = &b
	}
	return f, nil
}

// Describe explains an empty result set in terms of the active filter,
// e.g. "No records found for March 2024." With no filter it is a plain
// "No records found."
func (f Filter) Describe() string {
	msg := "No records found"
	if f.IsZero() {
		return msg + "."
	}
	msg += " for"
	switch {
	case f.Month != 0 && f.Year != 0:
		msg += fmt.Sprintf(" %s %d", time.Month(f.Month), f.Year)
	case f.Month != 0:
		msg += " " + time.Month(f.Month).String()
	case f.Year != 0:
		msg += fmt.Sprintf(" %d", f.Year)
	}
	if f.Active != nil {
		if f.Month != 0 || f.Year != 0 {
			msg += " and"
		}
		if *f.Active {
			msg += " Active"
		} else {
			msg += " Inactive"
		}
	}
	return msg + "."
}
