package testutil

import (
	"context"
	"sync"

	"github.com/billcraft/billcraft/internal/domain/snapshot"
	ierr "github.com/billcraft/billcraft/internal/errors"
)

// InMemorySnapshotStore implements snapshot.Repository
type InMemorySnapshotStore struct {
	mu        sync.RWMutex
	snapshots map[string]*snapshot.BillingSnapshot
}

func NewInMemorySnapshotStore() *InMemorySnapshotStore {
	return &InMemorySnapshotStore{
		snapshots: make(map[string]*snapshot.BillingSnapshot),
	}
}

func (s *InMemorySnapshotStore) Create(ctx context.Context, snap *snapshot.BillingSnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.snapshots[snap.InvoiceNumber]; ok {
		return ierr.NewError("snapshot already exists").
			WithHintf("Invoice %s has already been archived", snap.InvoiceNumber).
			Mark(ierr.ErrAlreadyExists)
	}
	s.snapshots[snap.InvoiceNumber] = snap
	return nil
}

func (s *InMemorySnapshotStore) GetByInvoiceNumber(ctx context.Context, invoiceNumber string) (*snapshot.BillingSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap, ok := s.snapshots[invoiceNumber]
	if !ok {
		return nil, ierr.NewError("snapshot not found").
			WithHintf("No archived bill with invoice number %s", invoiceNumber).
			Mark(ierr.ErrNotFound)
	}
	return snap, nil
}

func (s *InMemorySnapshotStore) List(ctx context.Context, companyAccountNumber string) ([]*snapshot.BillingSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snaps := make([]*snapshot.BillingSnapshot, 0)
	for _, snap := range s.snapshots {
		if snap.CompanyAccountNumber == companyAccountNumber {
			snaps = append(snaps, snap)
		}
	}
	return snaps, nil
}

func (s *InMemorySnapshotStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshots = make(map[string]*snapshot.BillingSnapshot)
}
