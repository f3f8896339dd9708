package service

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/billcraft/billcraft/internal/api/dto"
	"github.com/billcraft/billcraft/internal/domain/billing"
	ierr "github.com/billcraft/billcraft/internal/errors"
	"github.com/billcraft/billcraft/internal/types"
)

// invoiceCSVHeader is the fixed column set expected by the accounting
// import. Do not reorder.
var invoiceCSVHeader = []string{
	"InvoiceNo",
	"Customer",
	"InvoiceDate",
	"DueDate",
	"Item(Product/Service)",
	"Description",
	"Qty",
	"Rate",
	"Amount",
}

// InvoiceService projects a computed billing result into the CSV
// invoice format. It never alters the computed numbers.
type InvoiceService interface {
	// GenerateCSV renders the invoice for a computed result and returns
	// the CSV content and the invoice number (ACCOUNT-YYYYMM).
	// Zero-cost user/asset lines are filtered; backup and hourly labor
	// are summarized as single lines.
	GenerateCSV(result *dto.BillingResponse) (string, string, error)
}

type invoiceService struct {
	ServiceParams
}

func NewInvoiceService(params ServiceParams) InvoiceService {
	return &invoiceService{
		ServiceParams: params,
	}
}

// InvoiceNumber builds the invoice number for an account and period,
// e.g. 620547-202510.
func InvoiceNumber(accountNumber string, period types.BillingPeriod) string {
	return fmt.Sprintf("%s-%04d%02d", accountNumber, period.Year, period.Month)
}

func (s *invoiceService) GenerateCSV(result *dto.BillingResponse) (string, string, error) {
	if result == nil || result.Client == nil {
		return "", "", ierr.NewError("missing billing result").
			WithHint("An invoice can only be generated from a computed billing result").
			Mark(ierr.ErrInvalidOperation)
	}

	invoiceNumber := InvoiceNumber(result.Client.AccountNumber, result.Period)
	invoiceDate := result.Period.InvoiceDate().Format("2006-01-02")
	dueDate := result.Period.DueDate(s.dueDays()).Format("2006-01-02")
	companyName := result.Client.Name

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(invoiceCSVHeader); err != nil {
		return "", "", ierr.WithError(err).
			WithHint("Failed to write invoice CSV").
			Mark(ierr.ErrSystem)
	}

	row := func(item, description, qty, rate, amount string) {
		writer.Write([]string{
			invoiceNumber, companyName, invoiceDate, dueDate,
			item, description, qty, rate, amount,
		})
	}

	receipt := result.Receipt

	for _, user := range receipt.BilledUsers {
		if user.Cost.IsPositive() {
			row("Managed Services",
				fmt.Sprintf("User: %s (%s)", user.Name, user.Type),
				"1", user.Cost.StringFixed(2), user.Cost.StringFixed(2))
		}
	}

	for _, asset := range receipt.BilledAssets {
		if asset.Cost.IsPositive() {
			row("Managed Services",
				fmt.Sprintf("Asset: %s (%s)", asset.Name, asset.Type),
				"1", asset.Cost.StringFixed(2), asset.Cost.StringFixed(2))
		}
	}

	if receipt.BackupCharge.IsPositive() {
		row("Backup Services", backupDescription(receipt),
			"1", receipt.BackupCharge.StringFixed(2), receipt.BackupCharge.StringFixed(2))
	}

	if receipt.BillableHours.IsPositive() {
		perHour := receipt.TicketCharge.Div(receipt.BillableHours)
		row("Hourly Labor",
			fmt.Sprintf("Billable Hours (%s hrs)", receipt.BillableHours.StringFixed(2)),
			receipt.BillableHours.StringFixed(2), perHour.StringFixed(2),
			receipt.TicketCharge.StringFixed(2))
	}

	for _, item := range receipt.BilledLineItems {
		row("Custom Charge",
			fmt.Sprintf("%s (%s)", item.Name, item.Type),
			"1", item.Cost.StringFixed(2), item.Cost.StringFixed(2))
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", "", ierr.WithError(err).
			WithHint("Failed to write invoice CSV").
			Mark(ierr.ErrSystem)
	}

	return buf.String(), invoiceNumber, nil
}

func (s *invoiceService) dueDays() int {
	if s.Config != nil && s.Config.Billing.InvoiceDueDays > 0 {
		return s.Config.Billing.InvoiceDueDays
	}
	return 30
}

func backupDescription(receipt billing.Receipt) string {
	details := make([]string, 0, 3)
	if receipt.BackupBaseWorkstation.IsPositive() {
		details = append(details,
			fmt.Sprintf("Workstation Backup Base: $%s", receipt.BackupBaseWorkstation.StringFixed(2)))
	}
	if receipt.BackupBaseServer.IsPositive() {
		details = append(details,
			fmt.Sprintf("Server Backup Base: $%s", receipt.BackupBaseServer.StringFixed(2)))
	}
	if receipt.OverageTB.IsPositive() {
		details = append(details,
			fmt.Sprintf("Overage: %s TB @ $%s", receipt.OverageTB.StringFixed(2), receipt.OverageCharge.StringFixed(2)))
	}
	return "Backup Services - " + strings.Join(details, ", ")
}
