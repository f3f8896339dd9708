package service

import (
	"github.com/billcraft/billcraft/internal/domain/asset"
	"github.com/billcraft/billcraft/internal/domain/billing"
	"github.com/billcraft/billcraft/internal/domain/override"
	"github.com/billcraft/billcraft/internal/types"
	"github.com/shopspring/decimal"
)

// AssetService classifies and prices every asset for a receipt.
type AssetService interface {
	// CalculateAssetCharges prices directory assets (override-aware)
	// followed by manual assets (which carry their own classification),
	// in input order. Zero-cost items are still listed.
	CalculateAssetCharges(assets []*asset.Asset, manual []*override.ManualAsset, overrides map[int]*override.AssetOverride, rates *billing.EffectiveRates) billing.ItemCharges
}

type assetService struct {
	ServiceParams
}

func NewAssetService(params ServiceParams) AssetService {
	return &assetService{
		ServiceParams: params,
	}
}

func (s *assetService) CalculateAssetCharges(
	assets []*asset.Asset,
	manual []*override.ManualAsset,
	overrides map[int]*override.AssetOverride,
	rates *billing.EffectiveRates,
) billing.ItemCharges {
	charges := billing.ItemCharges{
		Items:      make([]billing.LineItem, 0, len(assets)+len(manual)),
		Total:      decimal.Zero,
		Quantities: make(map[string]int),
	}

	for _, a := range assets {
		ovr := overrides[a.ID]

		billingType := types.AssetBillingType(a.BillingType)
		if ovr != nil && ovr.BillingType != "" {
			billingType = ovr.BillingType
		}
		if billingType == "" {
			billingType = types.AssetBillingTypeWorkstation
		}

		var cost decimal.Decimal
		switch billingType {
		case types.AssetBillingTypeCustom:
			// custom cost comes from the override for directory assets;
			// absent cost bills zero, never the per-type rate
			if ovr != nil && ovr.CustomCost != nil {
				cost = *ovr.CustomCost
			}
		case types.AssetBillingTypeNoCharge:
			cost = decimal.Zero
		default:
			cost = rates.Get(billingType.RateKey())
		}

		charges.Items = append(charges.Items, billing.LineItem{
			Name: a.Hostname,
			Type: billingType.String(),
			Cost: cost,
		})
		charges.Total = charges.Total.Add(cost)
		charges.Quantities[billingType.QuantityKey()]++
	}

	for _, m := range manual {
		billingType := m.BillingType
		if billingType == "" {
			billingType = types.AssetBillingTypeWorkstation
		}

		var cost decimal.Decimal
		switch billingType {
		case types.AssetBillingTypeCustom:
			if m.CustomCost != nil {
				cost = *m.CustomCost
			}
		case types.AssetBillingTypeNoCharge:
			cost = decimal.Zero
		default:
			cost = rates.Get(billingType.RateKey())
		}

		charges.Items = append(charges.Items, billing.LineItem{
			Name: m.Hostname,
			Type: billingType.String(),
			Cost: cost,
		})
		charges.Total = charges.Total.Add(cost)
		charges.Quantities[billingType.QuantityKey()]++
	}

	return charges
}
