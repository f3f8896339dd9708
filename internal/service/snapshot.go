package service

import (
	"context"
	"time"

	"github.com/billcraft/billcraft/internal/api/dto"
	"github.com/billcraft/billcraft/internal/domain/billing"
	"github.com/billcraft/billcraft/internal/domain/snapshot"
	ierr "github.com/billcraft/billcraft/internal/errors"
	"github.com/billcraft/billcraft/internal/types"
)

// SnapshotService archives a computed bill as an immutable snapshot.
// A snapshot freezes the numbers as they were at archive time; the same
// invoice number can only be archived once.
type SnapshotService interface {
	CreateSnapshot(ctx context.Context, req *dto.CreateSnapshotRequest) (*snapshot.BillingSnapshot, error)
}

type snapshotService struct {
	ServiceParams
}

func NewSnapshotService(params ServiceParams) SnapshotService {
	return &snapshotService{
		ServiceParams: params,
	}
}

func (s *snapshotService) CreateSnapshot(ctx context.Context, req *dto.CreateSnapshotRequest) (*snapshot.BillingSnapshot, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	billingService := NewBillingService(s.ServiceParams)
	invoiceService := NewInvoiceService(s.ServiceParams)

	result, err := billingService.Calculate(ctx, req.Billing)
	if err != nil {
		return nil, err
	}

	invoiceCSV, invoiceNumber, err := invoiceService.GenerateCSV(result)
	if err != nil {
		return nil, err
	}

	if existing, err := s.SnapshotRepo.GetByInvoiceNumber(ctx, invoiceNumber); err == nil && existing != nil {
		return nil, ierr.NewError("bill already archived").
			WithHintf("Invoice %s has already been archived", invoiceNumber).
			WithReportableDetails(map[string]any{
				"invoice_number": invoiceNumber,
			}).
			Mark(ierr.ErrAlreadyExists)
	}

	receipt := result.Receipt
	snap := &snapshot.BillingSnapshot{
		ID:                   types.GenerateUUIDWithPrefix(types.UUID_PREFIX_SNAPSHOT),
		CompanyAccountNumber: result.Client.AccountNumber,
		CompanyName:          result.Client.Name,
		InvoiceNumber:        invoiceNumber,
		BillingYear:          result.Period.Year,
		BillingMonth:         result.Period.Month,
		InvoiceDate:          result.Period.InvoiceDate().Format("2006-01-02"),
		DueDate:              result.Period.DueDate(s.dueDays()).Format("2006-01-02"),

		TotalAssetCharges:    receipt.TotalAssetCharges,
		TotalUserCharges:     receipt.TotalUserCharges,
		TicketCharge:         receipt.TicketCharge,
		BackupCharge:         receipt.BackupCharge,
		TotalLineItemCharges: receipt.TotalLineItemCharges,
		Total:                receipt.Total,

		InvoiceCSV: invoiceCSV,
		CreatedBy:  req.CreatedBy,
		Notes:      req.Notes,
		CreatedAt:  s.nowUTC(),
	}

	snap.LineItems = append(snap.LineItems, snapshotLines(snap.ID, "user", receipt.BilledUsers)...)
	snap.LineItems = append(snap.LineItems, snapshotLines(snap.ID, "asset", receipt.BilledAssets)...)
	if receipt.BackupCharge.IsPositive() {
		snap.LineItems = append(snap.LineItems, &snapshot.SnapshotLineItem{
			ID:         types.GenerateUUIDWithPrefix(types.UUID_PREFIX_SNAPSHOT_LINE_ITEM),
			SnapshotID: snap.ID,
			Category:   "backup",
			Name:       "Backup Services",
			Cost:       receipt.BackupCharge,
		})
	}
	if receipt.BillableHours.IsPositive() {
		snap.LineItems = append(snap.LineItems, &snapshot.SnapshotLineItem{
			ID:         types.GenerateUUIDWithPrefix(types.UUID_PREFIX_SNAPSHOT_LINE_ITEM),
			SnapshotID: snap.ID,
			Category:   "ticket",
			Name:       "Hourly Labor",
			Cost:       receipt.TicketCharge,
		})
	}
	snap.LineItems = append(snap.LineItems, snapshotLines(snap.ID, "custom", receipt.BilledLineItems)...)

	if err := s.SnapshotRepo.Create(ctx, snap); err != nil {
		return nil, err
	}

	s.Logger.Infow("archived billing snapshot",
		"invoice_number", invoiceNumber,
		"company_account_number", snap.CompanyAccountNumber,
		"total", snap.Total)

	return snap, nil
}

func (s *snapshotService) dueDays() int {
	if s.Config != nil && s.Config.Billing.InvoiceDueDays > 0 {
		return s.Config.Billing.InvoiceDueDays
	}
	return 30
}

func (s *snapshotService) nowUTC() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}

func snapshotLines(snapshotID, category string, items []billing.LineItem) []*snapshot.SnapshotLineItem {
	lines := make([]*snapshot.SnapshotLineItem, 0, len(items))
	for _, item := range items {
		lines = append(lines, &snapshot.SnapshotLineItem{
			ID:         types.GenerateUUIDWithPrefix(types.UUID_PREFIX_SNAPSHOT_LINE_ITEM),
			SnapshotID: snapshotID,
			Category:   category,
			Name:       item.Name,
			ItemType:   item.Type,
			Cost:       item.Cost,
		})
	}
	return lines
}
