// Package editor owns a single payroll draft: field edits, the computed
// total, and create-or-update submission against the record store.
package editor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"payrolldesk/internal/client"
	"payrolldesk/internal/domain/payroll"
)

const requiredFieldsMessage = "Employee Code and Name are required."

// Refresher is notified after a successful write so a listing surface can
// re-fetch. Injected at construction; nil means nobody listens.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// Store is the slice of the record store the editor writes through.
type Store interface {
	Create(ctx context.Context, rec payroll.Record) (payroll.Record, error)
	Update(ctx context.Context, id string, rec payroll.Record) (payroll.Record, error)
}

type Editor struct {
	store  Store
	list   Refresher
	onDone func()

	draft   payroll.Record
	editID  string
	total   *float64
	lastErr string
}

// New builds an editor in create mode. list and onDone may be nil.
func New(store Store, list Refresher, onDone func()) *Editor {
	return &Editor{
		store:  store,
		list:   list,
		onDone: onDone,
		draft:  payroll.Defaults(),
	}
}

// Load seeds the draft from an existing record (edit mode) by overlaying it
// onto the canonical defaults, or resets to create mode when rec is nil.
// Any previously computed total is replaced by the record's own.
func (e *Editor) Load(rec *payroll.Record) {
	e.draft = payroll.Normalize(rec)
	e.total = nil
	e.editID = ""
	if rec != nil {
		e.editID = rec.ID
		e.total = e.draft.TotalSalary
	}
	e.draft.TotalSalary = nil
}

// Editing reports whether the draft is backed by a stored record.
func (e *Editor) Editing() bool { return e.editID != "" }

func (e *Editor) Draft() payroll.Record { return e.draft }

func (e *Editor) Err() string { return e.lastErr }

// Total is the last computed total, nil until Compute runs or an existing
// record supplied one.
func (e *Editor) Total() *float64 { return e.total }

// SetField replaces exactly one draft field through its descriptor.
func (e *Editor) SetField(name, value string) error {
	f, ok := payroll.FieldByName(name)
	if !ok {
		return fmt.Errorf("unknown field %q", name)
	}
	f.Set(&e.draft, value)
	return nil
}

// Compute derives the total from the current draft. Pure and idempotent;
// no network involved.
func (e *Editor) Compute() float64 {
	total := payroll.ComputeTotal(e.draft)
	e.total = &total
	return total
}

// Submit validates the draft and sends it to the store, creating or
// updating depending on mode. On success the draft resets and the
// listeners fire; on failure the draft and total are left untouched so the
// clerk can retry.
func (e *Editor) Submit(ctx context.Context) error {
	e.lastErr = ""

	if strings.TrimSpace(e.draft.EmpCode) == "" || strings.TrimSpace(e.draft.EmpName) == "" {
		e.lastErr = requiredFieldsMessage
		return errors.New(requiredFieldsMessage)
	}

	payload := e.draft
	payload.TotalSalary = e.total

	var err error
	if e.editID != "" {
		_, err = e.store.Update(ctx, e.editID, payload)
	} else {
		_, err = e.store.Create(ctx, payload)
	}
	if err != nil {
		e.lastErr = "Error saving record: " + storeMessage(err)
		return err
	}

	e.draft = payroll.Defaults()
	e.total = nil
	e.editID = ""
	if e.list != nil {
		_ = e.list.Refresh(ctx)
	}
	if e.onDone != nil {
		e.onDone()
	}
	return nil
}

// Cancel abandons the draft without any network call and tells the host
// that editing is over.
func (e *Editor) Cancel() {
	e.draft = payroll.Defaults()
	e.total = nil
	e.editID = ""
	e.lastErr = ""
	if e.onDone != nil {
		e.onDone()
	}
}

func storeMessage(err error) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	if err != nil && err.Error() != "" {
		return err.Error()
	}
	return "Save failed."
}
