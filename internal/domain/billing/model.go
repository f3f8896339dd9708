package billing

import (
	"github.com/billcraft/billcraft/internal/domain/ticket"
	"github.com/billcraft/billcraft/internal/types"
	"github.com/shopspring/decimal"
)

// EffectiveRates is the fully merged rate set for one client: plan
// defaults overlaid with every enabled client-level rate override.
// It always carries a value for each of the eleven rate keys.
type EffectiveRates struct {
	SupportLevel string                            `json:"support_level"`
	Rates        map[types.RateKey]decimal.Decimal `json:"rates"`
}

// Get returns the rate for a key, zero when the key is unknown.
func (r *EffectiveRates) Get(key types.RateKey) decimal.Decimal {
	if r == nil || key == "" {
		return decimal.Zero
	}
	return r.Rates[key]
}

// EffectiveFeatures is the fully merged feature set for one client,
// always populated for every known feature type.
type EffectiveFeatures map[types.FeatureType]string

// FeatureOverrideStatus records which features carry a client override,
// for display and audit.
type FeatureOverrideStatus map[types.FeatureType]bool

// ContractStatus is the derived contract end date and expiration flag.
// EndDate is a display label: an ISO date for fixed terms, the literal
// "Month to Month", "N/A" when inputs are missing, or
// "Invalid Start Date" when the start date cannot be parsed.
type ContractStatus struct {
	EndDate string `json:"contract_end_date"`
	Expired bool   `json:"contract_expired"`
}

// LineItem is one priced entry on a receipt. Zero-cost items are still
// listed; presentation layers filter as needed.
type LineItem struct {
	Name string          `json:"name"`
	Type string          `json:"type"`
	Cost decimal.Decimal `json:"cost"`
}

// ItemCharges is the output of one per-item calculator: ordered line
// items, their sum, and per-classification quantities.
type ItemCharges struct {
	Items      []LineItem      `json:"items"`
	Total      decimal.Decimal `json:"total"`
	Quantities map[string]int  `json:"quantities"`
}

// UsageCharges is the billable-hours computation for one period.
type UsageCharges struct {
	HoursForPeriod       decimal.Decimal  `json:"hours_for_period"`
	PrepaidMonthly       decimal.Decimal  `json:"prepaid_hours_monthly"`
	BillableHours        decimal.Decimal  `json:"billable_hours"`
	TicketCharge         decimal.Decimal  `json:"ticket_charge"`
	RemainingYearlyHours decimal.Decimal  `json:"remaining_yearly_hours"`
	TicketsForPeriod     []*ticket.Ticket `json:"tickets_for_period"`
}

// BackupInfo is the raw backup usage observed across directory assets.
type BackupInfo struct {
	TotalBackupBytes     int64 `json:"total_backup_bytes"`
	BackedUpWorkstations int   `json:"backed_up_workstations"`
	BackedUpServers      int   `json:"backed_up_servers"`
}

// BackupCharges is the backup fee computation: per-device base fees
// plus storage overage beyond the included allowance.
type BackupCharges struct {
	Info                  BackupInfo      `json:"info"`
	TotalBackupTB         decimal.Decimal `json:"total_backup_tb"`
	IncludedTB            decimal.Decimal `json:"total_included_tb"`
	OverageTB             decimal.Decimal `json:"overage_tb"`
	BaseWorkstationCharge decimal.Decimal `json:"backup_base_workstation"`
	BaseServerCharge      decimal.Decimal `json:"backup_base_server"`
	OverageCharge         decimal.Decimal `json:"overage_charge"`
	TotalCharge           decimal.Decimal `json:"backup_charge"`
}

// Receipt is the full itemized output of one billing computation.
// Total always equals the sum of the five named sub-totals.
type Receipt struct {
	BilledAssets    []LineItem `json:"billed_assets"`
	BilledUsers     []LineItem `json:"billed_users"`
	BilledLineItems []LineItem `json:"billed_line_items"`

	TotalAssetCharges    decimal.Decimal `json:"total_asset_charges"`
	TotalUserCharges     decimal.Decimal `json:"total_user_charges"`
	TicketCharge         decimal.Decimal `json:"ticket_charge"`
	BackupCharge         decimal.Decimal `json:"backup_charge"`
	TotalLineItemCharges decimal.Decimal `json:"total_line_item_charges"`
	Total                decimal.Decimal `json:"total"`

	HoursForBillingPeriod decimal.Decimal `json:"hours_for_billing_period"`
	PrepaidHoursMonthly   decimal.Decimal `json:"prepaid_hours_monthly"`
	BillableHours         decimal.Decimal `json:"billable_hours"`

	BackupBaseWorkstation decimal.Decimal `json:"backup_base_workstation"`
	BackupBaseServer      decimal.Decimal `json:"backup_base_server"`
	TotalIncludedTB       decimal.Decimal `json:"total_included_tb"`
	OverageTB             decimal.Decimal `json:"overage_tb"`
	OverageCharge         decimal.Decimal `json:"overage_charge"`
}
