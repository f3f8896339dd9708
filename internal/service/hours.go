package service

import (
	"github.com/billcraft/billcraft/internal/domain/billing"
	"github.com/billcraft/billcraft/internal/domain/ticket"
	"github.com/billcraft/billcraft/internal/types"
	"github.com/shopspring/decimal"
)

// UsageService computes billable support hours for a billing period,
// applying the monthly prepaid allowance first and then whatever
// remains of the yearly prepaid pool.
//
// The yearly pool is consumed chronologically: hours spent on tickets
// earlier in the same calendar year draw it down before the requested
// period gets a share. Monthly allowances reset every period and do
// not roll over.
type UsageService interface {
	CalculateUsageHours(tickets []*ticket.Ticket, period types.BillingPeriod, prepaidMonthly, prepaidYearly decimal.Decimal, rates *billing.EffectiveRates) billing.UsageCharges
}

type usageService struct {
	ServiceParams
}

func NewUsageService(params ServiceParams) UsageService {
	return &usageService{
		ServiceParams: params,
	}
}

func (s *usageService) CalculateUsageHours(
	tickets []*ticket.Ticket,
	period types.BillingPeriod,
	prepaidMonthly, prepaidYearly decimal.Decimal,
	rates *billing.EffectiveRates,
) billing.UsageCharges {
	periodStart := period.Start()

	hoursForPeriod := decimal.Zero
	hoursUsedPrior := decimal.Zero
	ticketsForPeriod := make([]*ticket.Ticket, 0)

	for _, t := range tickets {
		updatedAt, err := t.UpdatedAt()
		if err != nil {
			// bad timestamps exclude a ticket from billing math rather
			// than failing the whole computation
			s.Logger.Warnw("skipping ticket with unparsable timestamp",
				"ticket_id", t.TicketID,
				"last_updated_at", t.LastUpdatedAt,
				"error", err)
			continue
		}

		switch {
		case period.Contains(updatedAt):
			hoursForPeriod = hoursForPeriod.Add(t.TotalHoursSpent)
			ticketsForPeriod = append(ticketsForPeriod, t)
		case updatedAt.Before(periodStart) && updatedAt.Year() == periodStart.Year():
			hoursUsedPrior = hoursUsedPrior.Add(t.TotalHoursSpent)
		}
	}

	remainingYearly := maxZero(prepaidYearly.Sub(hoursUsedPrior))
	billableHours := maxZero(maxZero(hoursForPeriod.Sub(prepaidMonthly)).Sub(remainingYearly))
	ticketCharge := billableHours.Mul(rates.Get(types.RateKeyPerHourTicketCost))

	return billing.UsageCharges{
		HoursForPeriod:       hoursForPeriod,
		PrepaidMonthly:       prepaidMonthly,
		BillableHours:        billableHours,
		TicketCharge:         ticketCharge,
		RemainingYearlyHours: remainingYearly,
		TicketsForPeriod:     ticketsForPeriod,
	}
}

func maxZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
