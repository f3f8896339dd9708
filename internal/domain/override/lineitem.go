package override

import (
	"github.com/billcraft/billcraft/internal/types"
	"github.com/shopspring/decimal"
)

// CustomLineItem is a named per-client charge that is exactly one of
// recurring (flat monthly fee), one-off (a single year/month), or
// yearly (the same calendar month every year). Well-formed records set
// exactly one fee field; when more than one is set, monthly wins, then
// one-off, then yearly.
type CustomLineItem struct {
	CompanyAccountNumber string `json:"company_account_number"`
	Name                 string `json:"name"`
	Description          string `json:"description"`

	MonthlyFee *decimal.Decimal `json:"monthly_fee"`

	OneOffFee   *decimal.Decimal `json:"one_off_fee"`
	OneOffYear  int              `json:"one_off_year"`
	OneOffMonth int              `json:"one_off_month"`

	YearlyFee       *decimal.Decimal `json:"yearly_fee"`
	YearlyBillMonth int              `json:"yearly_bill_month"`
}

// Kind resolves which charge kind applies for the given period, in
// precedence order, or false when the item does not apply at all.
func (i *CustomLineItem) Kind(period types.BillingPeriod) (types.LineItemKind, bool) {
	switch {
	case i.MonthlyFee != nil:
		return types.LineItemKindRecurring, true
	case i.OneOffYear == period.Year && i.OneOffMonth == period.Month:
		return types.LineItemKindOneOff, true
	case i.YearlyBillMonth == period.Month:
		return types.LineItemKindYearly, true
	default:
		return "", false
	}
}

// Fee returns the fee for the resolved kind, zero when the stored fee
// is missing. A missing fee on a matched item is a data-quality issue,
// not an error.
func (i *CustomLineItem) Fee(kind types.LineItemKind) (decimal.Decimal, bool) {
	var fee *decimal.Decimal
	switch kind {
	case types.LineItemKindRecurring:
		fee = i.MonthlyFee
	case types.LineItemKindOneOff:
		fee = i.OneOffFee
	case types.LineItemKindYearly:
		fee = i.YearlyFee
	}
	if fee == nil {
		return decimal.Zero, false
	}
	return *fee, true
}

// FeeFieldCount reports how many of the three fee fields are set.
// Anything other than one is a data-quality violation worth logging.
func (i *CustomLineItem) FeeFieldCount() int {
	count := 0
	for _, fee := range []*decimal.Decimal{i.MonthlyFee, i.OneOffFee, i.YearlyFee} {
		if fee != nil {
			count++
		}
	}
	return count
}
