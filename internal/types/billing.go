package types

import (
	"strings"

	ierr "github.com/billcraft/billcraft/internal/errors"
	"github.com/samber/lo"
)

// AssetBillingType classifies how a single asset is charged.
// Directory assets report a type of their own which may be replaced by a
// per-asset override; manual assets carry their type directly.
type AssetBillingType string

const (
	AssetBillingTypeWorkstation AssetBillingType = "Workstation"
	AssetBillingTypeServer      AssetBillingType = "Server"
	AssetBillingTypeVM          AssetBillingType = "VM"
	AssetBillingTypeSwitch      AssetBillingType = "Switch"
	AssetBillingTypeFirewall    AssetBillingType = "Firewall"
	AssetBillingTypeCustom      AssetBillingType = "Custom"
	AssetBillingTypeNoCharge    AssetBillingType = "No Charge"
)

func (t AssetBillingType) String() string {
	return string(t)
}

// QuantityKey is the lower-cased form used in the per-type quantity map
func (t AssetBillingType) QuantityKey() string {
	return strings.ToLower(string(t))
}

// RateKey maps a rate-bearing type to its effective-rates key,
// e.g. Workstation -> "per_workstation_cost". Custom and No Charge
// have no per-unit rate and return an empty key.
func (t AssetBillingType) RateKey() RateKey {
	switch t {
	case AssetBillingTypeCustom, AssetBillingTypeNoCharge:
		return ""
	default:
		return RateKey("per_" + strings.ToLower(string(t)) + "_cost")
	}
}

func (t AssetBillingType) Validate() error {
	allowed := []AssetBillingType{
		AssetBillingTypeWorkstation,
		AssetBillingTypeServer,
		AssetBillingTypeVM,
		AssetBillingTypeSwitch,
		AssetBillingTypeFirewall,
		AssetBillingTypeCustom,
		AssetBillingTypeNoCharge,
	}
	if !lo.Contains(allowed, t) {
		return ierr.NewError("invalid asset billing type").
			WithHint("Please provide a valid asset billing type").
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// UserBillingType classifies how a single user is charged.
type UserBillingType string

const (
	UserBillingTypePaid   UserBillingType = "Paid"
	UserBillingTypeFree   UserBillingType = "Free"
	UserBillingTypeCustom UserBillingType = "Custom"
)

func (t UserBillingType) String() string {
	return string(t)
}

func (t UserBillingType) Validate() error {
	allowed := []UserBillingType{
		UserBillingTypePaid,
		UserBillingTypeFree,
		UserBillingTypeCustom,
	}
	if !lo.Contains(allowed, t) {
		return ierr.NewError("invalid user billing type").
			WithHint("Please provide a valid user billing type").
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// LineItemKind says why a custom line item applies to a period
type LineItemKind string

const (
	// LineItemKindRecurring applies every month
	LineItemKindRecurring LineItemKind = "Recurring"
	// LineItemKindOneOff applies to exactly one (year, month)
	LineItemKindOneOff LineItemKind = "One-Off"
	// LineItemKindYearly applies to the same calendar month every year
	LineItemKindYearly LineItemKind = "Yearly"
)

func (k LineItemKind) String() string {
	return string(k)
}

// Quantity map keys for user counts
const (
	QuantityKeyRegularUsers = "regular_users"
	QuantityKeyFreeUsers    = "free_users"
)
