package service

import (
	"github.com/billcraft/billcraft/internal/domain/billing"
	"github.com/billcraft/billcraft/internal/domain/override"
	"github.com/billcraft/billcraft/internal/types"
	"github.com/shopspring/decimal"
)

// LineItemService selects which custom line items apply to a period.
type LineItemService interface {
	// EvaluateLineItems returns the applicable items in input order
	// with their resolved kind and fee, plus the sum.
	EvaluateLineItems(items []*override.CustomLineItem, period types.BillingPeriod) ([]billing.LineItem, decimal.Decimal)
}

type lineItemService struct {
	ServiceParams
}

func NewLineItemService(params ServiceParams) LineItemService {
	return &lineItemService{
		ServiceParams: params,
	}
}

func (s *lineItemService) EvaluateLineItems(items []*override.CustomLineItem, period types.BillingPeriod) ([]billing.LineItem, decimal.Decimal) {
	billed := make([]billing.LineItem, 0, len(items))
	total := decimal.Zero

	for _, item := range items {
		if item.FeeFieldCount() > 1 {
			// more than one fee field set is a data-quality violation;
			// precedence is monthly, then one-off, then yearly
			s.Logger.Warnw("custom line item has multiple fee fields set",
				"company_account_number", item.CompanyAccountNumber,
				"name", item.Name)
		}

		kind, applies := item.Kind(period)
		if !applies {
			continue
		}

		fee, ok := item.Fee(kind)
		if !ok {
			s.Logger.Warnw("custom line item matched period but has no fee, billing zero",
				"company_account_number", item.CompanyAccountNumber,
				"name", item.Name,
				"kind", kind)
		}

		billed = append(billed, billing.LineItem{
			Name: item.Name,
			Type: kind.String(),
			Cost: fee,
		})
		total = total.Add(fee)
	}

	return billed, total
}
