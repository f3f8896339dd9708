package dto

import (
	"github.com/billcraft/billcraft/internal/domain/asset"
	"github.com/billcraft/billcraft/internal/domain/billing"
	"github.com/billcraft/billcraft/internal/domain/company"
	"github.com/billcraft/billcraft/internal/domain/override"
	"github.com/billcraft/billcraft/internal/domain/ticket"
	"github.com/billcraft/billcraft/internal/domain/user"
	ierr "github.com/billcraft/billcraft/internal/errors"
	"github.com/billcraft/billcraft/internal/types"
	"github.com/billcraft/billcraft/internal/validator"
	"github.com/shopspring/decimal"
)

// BillingRequest carries everything one billing computation needs,
// already resolved by the caller. The engine performs no I/O of its
// own; plan lookup goes through the plan repository and every other
// input arrives here.
type BillingRequest struct {
	Company *company.Company    `json:"company" validate:"required"`
	Assets  []*asset.Asset      `json:"assets"`
	Users   []*user.User        `json:"users"`
	Tickets []*ticket.Ticket    `json:"tickets"`
	Period  types.BillingPeriod `json:"period" validate:"required"`

	RateOverride     *override.ClientBillingOverride `json:"rate_override"`
	AssetOverrides   map[int]*override.AssetOverride `json:"asset_overrides"`
	UserOverrides    map[int]*override.UserOverride  `json:"user_overrides"`
	ManualAssets     []*override.ManualAsset         `json:"manual_assets"`
	ManualUsers      []*override.ManualUser          `json:"manual_users"`
	CustomLineItems  []*override.CustomLineItem      `json:"custom_line_items"`
	FeatureOverrides []*override.FeatureOverride     `json:"feature_overrides"`

	// PlanFeatures is an optional inline plan-features payload keyed by
	// "plan|term", used to seed the shared feature cache for this call.
	PlanFeatures map[string]map[types.FeatureType]string `json:"plan_features"`
}

func (r *BillingRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.Company.AccountNumber == "" {
		return ierr.NewError("missing account number").
			WithHint("Company must have an account number").
			Mark(ierr.ErrValidation)
	}
	return r.Period.Validate()
}

// BillingResponse is the full result of one billing computation: the
// itemized receipt, the effective rates and features it was priced
// with, and the input echo downstream presentation layers need.
type BillingResponse struct {
	Client *company.Company    `json:"client"`
	Period types.BillingPeriod `json:"period"`

	Receipt billing.Receipt `json:"receipt_data"`

	EffectiveRates        *billing.EffectiveRates       `json:"effective_rates"`
	EffectiveFeatures     billing.EffectiveFeatures     `json:"effective_features"`
	FeatureOverrideStatus billing.FeatureOverrideStatus `json:"feature_override_status"`
	SupportLevelDisplay   string                        `json:"support_level_display"`

	Quantities map[string]int `json:"quantities"`

	BackupInfo    billing.BackupInfo `json:"backup_info"`
	TotalBackupTB decimal.Decimal    `json:"total_backup_tb"`

	ContractEndDate string `json:"contract_end_date"`
	ContractExpired bool   `json:"contract_expired"`

	TicketsForPeriod     []*ticket.Ticket `json:"tickets_for_billing_period"`
	RemainingYearlyHours decimal.Decimal  `json:"remaining_yearly_hours"`

	Assets          []*asset.Asset             `json:"assets"`
	ManualAssets    []*override.ManualAsset    `json:"manual_assets"`
	Users           []*user.User               `json:"users"`
	ManualUsers     []*override.ManualUser     `json:"manual_users"`
	CustomLineItems []*override.CustomLineItem `json:"custom_line_items"`
}

// CreateSnapshotRequest asks for a computed bill to be archived.
type CreateSnapshotRequest struct {
	Billing   *BillingRequest `json:"billing" validate:"required"`
	CreatedBy string          `json:"created_by"`
	Notes     string          `json:"notes"`
}

func (r *CreateSnapshotRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	return r.Billing.Validate()
}
