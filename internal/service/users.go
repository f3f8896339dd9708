package service

import (
	"github.com/billcraft/billcraft/internal/domain/billing"
	"github.com/billcraft/billcraft/internal/domain/override"
	"github.com/billcraft/billcraft/internal/domain/user"
	"github.com/billcraft/billcraft/internal/types"
	"github.com/shopspring/decimal"
)

// UserService classifies and prices every user for a receipt.
type UserService interface {
	// CalculateUserCharges prices directory users (override-aware,
	// defaulting to Paid) followed by manual users, in input order.
	// Quantities split into regular (Paid) vs free users.
	CalculateUserCharges(users []*user.User, manual []*override.ManualUser, overrides map[int]*override.UserOverride, rates *billing.EffectiveRates) billing.ItemCharges
}

type userService struct {
	ServiceParams
}

func NewUserService(params ServiceParams) UserService {
	return &userService{
		ServiceParams: params,
	}
}

func (s *userService) CalculateUserCharges(
	users []*user.User,
	manual []*override.ManualUser,
	overrides map[int]*override.UserOverride,
	rates *billing.EffectiveRates,
) billing.ItemCharges {
	charges := billing.ItemCharges{
		Items:      make([]billing.LineItem, 0, len(users)+len(manual)),
		Total:      decimal.Zero,
		Quantities: make(map[string]int),
	}

	for _, u := range users {
		ovr := overrides[u.ID]

		// an unclassified directory user is billed by default; this
		// deliberately differs from assets, which keep their reported type
		billingType := types.UserBillingTypePaid
		if ovr != nil && ovr.BillingType != "" {
			billingType = ovr.BillingType
		}

		var customCost *decimal.Decimal
		if ovr != nil {
			customCost = ovr.CustomCost
		}

		charges = appendUserItem(charges, u.DisplayName(), billingType, customCost, rates)
	}

	for _, m := range manual {
		billingType := m.BillingType
		if billingType == "" {
			billingType = types.UserBillingTypePaid
		}
		charges = appendUserItem(charges, m.FullName, billingType, m.CustomCost, rates)
	}

	return charges
}

func appendUserItem(
	charges billing.ItemCharges,
	name string,
	billingType types.UserBillingType,
	customCost *decimal.Decimal,
	rates *billing.EffectiveRates,
) billing.ItemCharges {
	var cost decimal.Decimal
	switch billingType {
	case types.UserBillingTypeCustom:
		if customCost != nil {
			cost = *customCost
		}
	case types.UserBillingTypePaid:
		cost = rates.Get(types.RateKeyPerUserCost)
	default:
		cost = decimal.Zero
	}

	quantityKey := types.QuantityKeyFreeUsers
	if billingType == types.UserBillingTypePaid {
		quantityKey = types.QuantityKeyRegularUsers
	}

	charges.Items = append(charges.Items, billing.LineItem{
		Name: name,
		Type: billingType.String(),
		Cost: cost,
	})
	charges.Total = charges.Total.Add(cost)
	charges.Quantities[quantityKey]++

	return charges
}
