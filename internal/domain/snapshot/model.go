package snapshot

import (
	"time"

	"github.com/shopspring/decimal"
)

// BillingSnapshot is an immutable archival record of one computed bill.
// Once written it is never recomputed; the numbers are frozen as they
// were at archive time.
type BillingSnapshot struct {
	ID                   string `json:"id"`
	CompanyAccountNumber string `json:"company_account_number"`
	CompanyName          string `json:"company_name"`
	InvoiceNumber        string `json:"invoice_number"`
	BillingYear          int    `json:"billing_year"`
	BillingMonth         int    `json:"billing_month"`
	InvoiceDate          string `json:"invoice_date"`
	DueDate              string `json:"due_date"`

	TotalAssetCharges    decimal.Decimal `json:"total_asset_charges"`
	TotalUserCharges     decimal.Decimal `json:"total_user_charges"`
	TicketCharge         decimal.Decimal `json:"ticket_charge"`
	BackupCharge         decimal.Decimal `json:"backup_charge"`
	TotalLineItemCharges decimal.Decimal `json:"total_line_item_charges"`
	Total                decimal.Decimal `json:"total"`

	InvoiceCSV string    `json:"invoice_csv"`
	CreatedBy  string    `json:"created_by"`
	Notes      string    `json:"notes"`
	CreatedAt  time.Time `json:"created_at"`

	LineItems []*SnapshotLineItem `json:"line_items"`
}

// SnapshotLineItem is one frozen receipt line inside a snapshot.
type SnapshotLineItem struct {
	ID         string          `json:"id"`
	SnapshotID string          `json:"snapshot_id"`
	Category   string          `json:"category"`
	Name       string          `json:"name"`
	ItemType   string          `json:"item_type"`
	Cost       decimal.Decimal `json:"cost"`
}
