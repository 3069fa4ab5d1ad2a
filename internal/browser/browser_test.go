package browser

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"payrolldesk/internal/domain/payroll"
)

type fakeStore struct {
	records []payroll.Record
	listErr error
	getErr  error
	delErr  error
	deleted []string
	lists   int
}

func (s *fakeStore) List(context.Context, payroll.Filter) ([]payroll.Record, error) {
	s.lists++
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.records, nil
}

func (s *fakeStore) Get(_ context.Context, id string) (payroll.Record, error) {
	if s.getErr != nil {
		return payroll.Record{}, s.getErr
	}
	for _, rec := range s.records {
		if rec.ID == id {
			return rec, nil
		}
	}
	return payroll.Record{}, payroll.ErrNotFound
}

func (s *fakeStore) Delete(_ context.Context, id string) error {
	if s.delErr != nil {
		return s.delErr
	}
	s.deleted = append(s.deleted, id)
	return nil
}

func boolPtr(b bool) *bool { return &b }

func TestRefreshReplacesCollection(t *testing.T) {
	store := &fakeStore{records: []payroll.Record{{ID: "1"}, {ID: "2"}}}
	b := New(store, nil)

	if err := b.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	if len(b.Records()) != 2 || b.Err() != "" {
		t.Fatalf("unexpected state: records=%d err=%q", len(b.Records()), b.Err())
	}
}

func TestRefreshFailureYieldsEmptyCollectionAndError(t *testing.T) {
	store := &fakeStore{records: []payroll.Record{{ID: "1"}}, listErr: errors.New("boom")}
	b := New(store, nil)

	if err := b.Refresh(context.Background()); err == nil {
		t.Fatal("expected refresh error")
	}
	if len(b.Records()) != 0 {
		t.Fatal("expected empty collection after failure")
	}
	if b.Err() != "Failed to fetch payroll data." {
		t.Fatalf("unexpected error message %q", b.Err())
	}
}

func TestEmptyResultIsNotAnError(t *testing.T) {
	store := &fakeStore{}
	b := New(store, nil)
	if err := b.SetFilter(context.Background(), payroll.Filter{Month: 3, Year: 2024}); err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	if b.Err() != "" {
		t.Fatalf("empty result must not set an error, got %q", b.Err())
	}
	if got := b.EmptyMessage(); got != "No records found for March 2024." {
		t.Fatalf("unexpected empty message %q", got)
	}
}

func TestEmptyMessageWithoutFilter(t *testing.T) {
	b := New(&fakeStore{}, nil)
	if got := b.EmptyMessage(); got != "No records found." {
		t.Fatalf("unexpected empty message %q", got)
	}
}

// slowFirstStore stalls its first List call until released, answering
// "old"; later calls answer "new" immediately.
type slowFirstStore struct {
	mu      sync.Mutex
	calls   int
	release chan struct{}
}

func (s *slowFirstStore) List(context.Context, payroll.Filter) ([]payroll.Record, error) {
	s.mu.Lock()
	s.calls++
	first := s.calls == 1
	s.mu.Unlock()
	if first {
		<-s.release
		return []payroll.Record{{ID: "old"}}, nil
	}
	return []payroll.Record{{ID: "new"}}, nil
}

func (s *slowFirstStore) Get(context.Context, string) (payroll.Record, error) {
	return payroll.Record{}, payroll.ErrNotFound
}

func (s *slowFirstStore) Delete(context.Context, string) error { return nil }

func (s *slowFirstStore) started() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls >= 1
}

func TestStaleResponseDoesNotOverwriteNewer(t *testing.T) {
	store := &slowFirstStore{release: make(chan struct{})}
	b := New(store, nil)

	staleDone := make(chan error)
	go func() { staleDone <- b.Refresh(context.Background()) }()

	for !store.started() {
		time.Sleep(time.Millisecond)
	}

	if err := b.Refresh(context.Background()); err != nil {
		t.Fatalf("fresh refresh failed: %v", err)
	}

	close(store.release)
	if err := <-staleDone; err != nil {
		t.Fatalf("stale refresh errored: %v", err)
	}

	records := b.Records()
	if len(records) != 1 || records[0].ID != "new" {
		t.Fatalf("stale response overwrote newer state: %+v", records)
	}
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	store := &fakeStore{records: []payroll.Record{{ID: "1"}}}
	b := New(store, ConfirmFunc(func(string) bool { return false }))

	if err := b.Delete(context.Background(), "1"); err != nil {
		t.Fatalf("declined delete errored: %v", err)
	}
	if len(store.deleted) != 0 {
		t.Fatal("declined confirmation must not delete")
	}
}

func TestDeleteSuccessTriggersRefresh(t *testing.T) {
	store := &fakeStore{records: []payroll.Record{{ID: "1"}}}
	b := New(store, ConfirmFunc(func(prompt string) bool {
		if prompt != "Delete this record?" {
			t.Fatalf("unexpected prompt %q", prompt)
		}
		return true
	}))

	if err := b.Delete(context.Background(), "1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if len(store.deleted) != 1 || store.deleted[0] != "1" {
		t.Fatalf("unexpected deletions %v", store.deleted)
	}
	if store.lists != 1 {
		t.Fatalf("expected re-retrieval after delete, got %d lists", store.lists)
	}
}

func TestDeleteFailureLeavesCollectionVisible(t *testing.T) {
	store := &fakeStore{records: []payroll.Record{{ID: "1"}}}
	b := New(store, nil)
	if err := b.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh failed: %v", err)
	}

	store.delErr = errors.New("rejected")
	if err := b.Delete(context.Background(), "1"); err == nil {
		t.Fatal("expected delete error")
	}
	if len(b.Records()) != 1 {
		t.Fatal("failed delete must not remove the row")
	}
	if b.Err() != "Failed to delete record." {
		t.Fatalf("unexpected error message %q", b.Err())
	}
}

func TestEditFetchesFullRecord(t *testing.T) {
	active := payroll.Record{ID: "7", EmpCode: "E7", IsActive: true}
	store := &fakeStore{records: []payroll.Record{active}}
	b := New(store, nil)

	rec, err := b.Edit(context.Background(), "7")
	if err != nil {
		t.Fatalf("edit failed: %v", err)
	}
	if rec == nil || rec.EmpCode != "E7" {
		t.Fatalf("unexpected record %+v", rec)
	}
}

func TestEditFailureDoesNotActivateEditor(t *testing.T) {
	store := &fakeStore{getErr: errors.New("boom")}
	b := New(store, nil)

	rec, err := b.Edit(context.Background(), "7")
	if err == nil || rec != nil {
		t.Fatal("expected failed edit to return no record")
	}
	if b.Err() != "Failed to fetch record." {
		t.Fatalf("unexpected error message %q", b.Err())
	}
}

func TestFilterStatusOnlyMessage(t *testing.T) {
	b := New(&fakeStore{}, nil)
	if err := b.SetFilter(context.Background(), payroll.Filter{Active: boolPtr(true)}); err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	if got := b.EmptyMessage(); got != "No records found for Active." {
		t.Fatalf("unexpected empty message %q", got)
	}
}
