// Package browser maintains the filtered record listing and brokers the
// per-record actions: edit entry, delete, payslip download.
package browser

import (
	"context"
	"sync"
	"time"

	"payrolldesk/internal/domain/payroll"
	"payrolldesk/internal/payslip"
)

const (
	fetchFailedMessage  = "Failed to fetch payroll data."
	recordFailedMessage = "Failed to fetch record."
	deleteFailedMessage = "Failed to delete record."
)

// Confirmer asks the clerk to confirm an irreversible action.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a plain function to Confirmer.
type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

// Store is the slice of the record store the browser reads through.
type Store interface {
	List(ctx context.Context, filter payroll.Filter) ([]payroll.Record, error)
	Get(ctx context.Context, id string) (payroll.Record, error)
	Delete(ctx context.Context, id string) error
}

type Browser struct {
	store   Store
	confirm Confirmer

	mu      sync.Mutex
	filter  payroll.Filter
	records []payroll.Record
	lastErr string
	seq     uint64
}

func New(store Store, confirm Confirmer) *Browser {
	return &Browser{store: store, confirm: confirm}
}

func (b *Browser) Filter() payroll.Filter {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.filter
}

// SetFilter replaces the filter state and re-retrieves the collection.
func (b *Browser) SetFilter(ctx context.Context, f payroll.Filter) error {
	b.mu.Lock()
	b.filter = f
	b.mu.Unlock()
	return b.Refresh(ctx)
}

// Refresh retrieves the filtered collection and replaces the local state.
// Each retrieval carries a sequence number; a response that lost the race
// to a newer one is discarded instead of overwriting fresher state.
func (b *Browser) Refresh(ctx context.Context) error {
	b.mu.Lock()
	b.seq++
	seq := b.seq
	filter := b.filter
	b.mu.Unlock()

	records, err := b.store.List(ctx, filter)

	b.mu.Lock()
	defer b.mu.Unlock()
	if seq != b.seq {
		return nil
	}
	if err != nil {
		b.records = nil
		b.lastErr = fetchFailedMessage
		return err
	}
	b.records = records
	b.lastErr = ""
	return nil
}

func (b *Browser) Records() []payroll.Record {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.records
}

func (b *Browser) Err() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastErr
}

// EmptyMessage explains an empty collection in terms of the active filter.
func (b *Browser) EmptyMessage() string {
	return b.Filter().Describe()
}

// Edit fetches the full record so a hosting surface can hand it to the
// editor. On failure no editor is activated.
func (b *Browser) Edit(ctx context.Context, id string) (*payroll.Record, error) {
	b.mu.Lock()
	b.lastErr = ""
	b.mu.Unlock()

	rec, err := b.store.Get(ctx, id)
	if err != nil {
		b.mu.Lock()
		b.lastErr = recordFailedMessage
		b.mu.Unlock()
		return nil, err
	}
	return &rec, nil
}

// Delete removes a record after interactive confirmation, then re-fetches.
// A store failure leaves the collection untouched; the row is never
// removed optimistically.
func (b *Browser) Delete(ctx context.Context, id string) error {
	if b.confirm != nil && !b.confirm.Confirm("Delete this record?") {
		return nil
	}
	if err := b.store.Delete(ctx, id); err != nil {
		b.mu.Lock()
		b.lastErr = deleteFailedMessage
		b.mu.Unlock()
		return err
	}
	return b.Refresh(ctx)
}

// SavePayslip renders the record's payslip into dir and returns the path.
func (b *Browser) SavePayslip(rec payroll.Record, dir string) (string, error) {
	return payslip.Save(rec, time.Now(), dir)
}
