package override

import (
	"github.com/billcraft/billcraft/internal/types"
	"github.com/shopspring/decimal"
)

// RateOverride is one (value, enabled) pair from a client billing
// override. The value only applies when Enabled is true and the stored
// value is non-nil; everything else falls back to the plan default.
type RateOverride struct {
	Enabled bool
	Value   *decimal.Decimal
}

// ClientBillingOverride holds every per-client rate exception. At most
// one record exists per client account number.
type ClientBillingOverride struct {
	CompanyAccountNumber string `json:"company_account_number"`

	OverrideBillingPlanEnabled bool   `json:"override_billing_plan_enabled"`
	BillingPlan                string `json:"billing_plan"`

	OverrideSupportLevelEnabled bool   `json:"override_support_level_enabled"`
	SupportLevel                string `json:"support_level"`

	OverridePerUserCostEnabled        bool             `json:"override_per_user_cost_enabled"`
	PerUserCost                       *decimal.Decimal `json:"per_user_cost"`
	OverridePerWorkstationCostEnabled bool             `json:"override_per_workstation_cost_enabled"`
	PerWorkstationCost                *decimal.Decimal `json:"per_workstation_cost"`
	OverridePerServerCostEnabled      bool             `json:"override_per_server_cost_enabled"`
	PerServerCost                     *decimal.Decimal `json:"per_server_cost"`
	OverridePerVMCostEnabled          bool             `json:"override_per_vm_cost_enabled"`
	PerVMCost                         *decimal.Decimal `json:"per_vm_cost"`
	OverridePerSwitchCostEnabled      bool             `json:"override_per_switch_cost_enabled"`
	PerSwitchCost                     *decimal.Decimal `json:"per_switch_cost"`
	OverridePerFirewallCostEnabled    bool             `json:"override_per_firewall_cost_enabled"`
	PerFirewallCost                   *decimal.Decimal `json:"per_firewall_cost"`
	OverridePerHourTicketCostEnabled  bool             `json:"override_per_hour_ticket_cost_enabled"`
	PerHourTicketCost                 *decimal.Decimal `json:"per_hour_ticket_cost"`

	OverrideBackupBaseFeeWorkstationEnabled bool             `json:"override_backup_base_fee_workstation_enabled"`
	BackupBaseFeeWorkstation                *decimal.Decimal `json:"backup_base_fee_workstation"`
	OverrideBackupBaseFeeServerEnabled      bool             `json:"override_backup_base_fee_server_enabled"`
	BackupBaseFeeServer                     *decimal.Decimal `json:"backup_base_fee_server"`
	OverrideBackupIncludedTBEnabled         bool             `json:"override_backup_included_tb_enabled"`
	BackupIncludedTB                        *decimal.Decimal `json:"backup_included_tb"`
	OverrideBackupPerTBFeeEnabled           bool             `json:"override_backup_per_tb_fee_enabled"`
	BackupPerTBFee                          *decimal.Decimal `json:"backup_per_tb_fee"`

	OverridePrepaidHoursMonthlyEnabled bool             `json:"override_prepaid_hours_monthly_enabled"`
	PrepaidHoursMonthly                *decimal.Decimal `json:"prepaid_hours_monthly"`
	OverridePrepaidHoursYearlyEnabled  bool             `json:"override_prepaid_hours_yearly_enabled"`
	PrepaidHoursYearly                 *decimal.Decimal `json:"prepaid_hours_yearly"`
}

// RateOverrides enumerates the eleven per-unit rate override pairs
// keyed the same way as the effective rate set, so the merge logic can
// treat every rate uniformly.
func (o *ClientBillingOverride) RateOverrides() map[types.RateKey]RateOverride {
	if o == nil {
		return nil
	}
	return map[types.RateKey]RateOverride{
		types.RateKeyPerUserCost:              {Enabled: o.OverridePerUserCostEnabled, Value: o.PerUserCost},
		types.RateKeyPerWorkstationCost:       {Enabled: o.OverridePerWorkstationCostEnabled, Value: o.PerWorkstationCost},
		types.RateKeyPerServerCost:            {Enabled: o.OverridePerServerCostEnabled, Value: o.PerServerCost},
		types.RateKeyPerVMCost:                {Enabled: o.OverridePerVMCostEnabled, Value: o.PerVMCost},
		types.RateKeyPerSwitchCost:            {Enabled: o.OverridePerSwitchCostEnabled, Value: o.PerSwitchCost},
		types.RateKeyPerFirewallCost:          {Enabled: o.OverridePerFirewallCostEnabled, Value: o.PerFirewallCost},
		types.RateKeyPerHourTicketCost:        {Enabled: o.OverridePerHourTicketCostEnabled, Value: o.PerHourTicketCost},
		types.RateKeyBackupBaseFeeWorkstation: {Enabled: o.OverrideBackupBaseFeeWorkstationEnabled, Value: o.BackupBaseFeeWorkstation},
		types.RateKeyBackupBaseFeeServer:      {Enabled: o.OverrideBackupBaseFeeServerEnabled, Value: o.BackupBaseFeeServer},
		types.RateKeyBackupIncludedTB:         {Enabled: o.OverrideBackupIncludedTBEnabled, Value: o.BackupIncludedTB},
		types.RateKeyBackupPerTBFee:           {Enabled: o.OverrideBackupPerTBFeeEnabled, Value: o.BackupPerTBFee},
	}
}

// EffectiveBillingPlan substitutes the override plan name over the
// directory-reported one when the plan override is enabled.
func (o *ClientBillingOverride) EffectiveBillingPlan(planName string) string {
	if o != nil && o.OverrideBillingPlanEnabled && o.BillingPlan != "" {
		return o.BillingPlan
	}
	return planName
}

// PrepaidHours returns the monthly and yearly prepaid hour allowances,
// zero when disabled or unset.
func (o *ClientBillingOverride) PrepaidHours() (monthly, yearly decimal.Decimal) {
	if o == nil {
		return decimal.Zero, decimal.Zero
	}
	if o.OverridePrepaidHoursMonthlyEnabled && o.PrepaidHoursMonthly != nil {
		monthly = *o.PrepaidHoursMonthly
	}
	if o.OverridePrepaidHoursYearlyEnabled && o.PrepaidHoursYearly != nil {
		yearly = *o.PrepaidHoursYearly
	}
	return monthly, yearly
}

// AssetOverride replaces the billing classification of one directory
// asset. CustomCost is only consulted when BillingType is Custom.
type AssetOverride struct {
	AssetID     int                    `json:"asset_id"`
	BillingType types.AssetBillingType `json:"billing_type"`
	CustomCost  *decimal.Decimal       `json:"custom_cost"`
}

// UserOverride replaces the billing classification of one directory
// user. CustomCost is only consulted when BillingType is Custom.
type UserOverride struct {
	UserID      int                   `json:"user_id"`
	BillingType types.UserBillingType `json:"billing_type"`
	CustomCost  *decimal.Decimal      `json:"custom_cost"`
}

// ManualAsset is an asset that exists only in the billing ledger, not
// in the directory. It carries its classification directly; the item
// is its own override.
type ManualAsset struct {
	CompanyAccountNumber string                 `json:"company_account_number"`
	Hostname             string                 `json:"hostname"`
	BillingType          types.AssetBillingType `json:"billing_type"`
	CustomCost           *decimal.Decimal       `json:"custom_cost"`
	Notes                string                 `json:"notes"`
}

// ManualUser is a user that exists only in the billing ledger.
type ManualUser struct {
	CompanyAccountNumber string                `json:"company_account_number"`
	FullName             string                `json:"full_name"`
	BillingType          types.UserBillingType `json:"billing_type"`
	CustomCost           *decimal.Decimal      `json:"custom_cost"`
	Notes                string                `json:"notes"`
}

// FeatureOverride replaces the plan's default value for one feature
// type when Enabled is true and Value is non-empty.
type FeatureOverride struct {
	CompanyAccountNumber string            `json:"company_account_number"`
	FeatureType          types.FeatureType `json:"feature_type"`
	Enabled              bool              `json:"override_enabled"`
	Value                string            `json:"value"`
}
