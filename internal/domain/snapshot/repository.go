package snapshot

import (
	"context"
)

// Repository defines the interface for snapshot persistence
type Repository interface {
	Create(ctx context.Context, snapshot *BillingSnapshot) error
	GetByInvoiceNumber(ctx context.Context, invoiceNumber string) (*BillingSnapshot, error)
	List(ctx context.Context, companyAccountNumber string) ([]*BillingSnapshot, error)
}
