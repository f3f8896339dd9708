package plan

import (
	"github.com/shopspring/decimal"
)

// PlanDetails is a pricing template keyed by (plan name, term length).
// All rates are non-negative; a missing plan is the one fatal condition
// in a billing computation.
type PlanDetails struct {
	BillingPlan  string `json:"billing_plan"`
	TermLength   string `json:"term_length"`
	SupportLevel string `json:"support_level"`

	PerUserCost        decimal.Decimal `json:"per_user_cost"`
	PerWorkstationCost decimal.Decimal `json:"per_workstation_cost"`
	PerServerCost      decimal.Decimal `json:"per_server_cost"`
	PerVMCost          decimal.Decimal `json:"per_vm_cost"`
	PerSwitchCost      decimal.Decimal `json:"per_switch_cost"`
	PerFirewallCost    decimal.Decimal `json:"per_firewall_cost"`
	PerHourTicketCost  decimal.Decimal `json:"per_hour_ticket_cost"`

	BackupBaseFeeWorkstation decimal.Decimal `json:"backup_base_fee_workstation"`
	BackupBaseFeeServer      decimal.Decimal `json:"backup_base_fee_server"`
	BackupIncludedTB         decimal.Decimal `json:"backup_included_tb"`
	BackupPerTBFee           decimal.Decimal `json:"backup_per_tb_fee"`
}
