package payroll

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("payroll record not found")

// RecordStore is the persistence contract the reference store backends
// implement. List applies the filter server-side; Create assigns the id.
type RecordStore interface {
	List(ctx context.Context, filter Filter) ([]Record, error)
	Get(ctx context.Context, id string) (Record, error)
	Create(ctx context.Context, rec Record) (Record, error)
	Update(ctx context.Context, id string, rec Record) (Record, error)
	Delete(ctx context.Context, id string) error
}
