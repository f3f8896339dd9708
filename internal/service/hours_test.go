package service

import (
	"testing"

	"github.com/billcraft/billcraft/internal/domain/billing"
	"github.com/billcraft/billcraft/internal/domain/ticket"
	"github.com/billcraft/billcraft/internal/testutil"
	"github.com/billcraft/billcraft/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type UsageServiceSuite struct {
	testutil.BaseServiceTestSuite
	service UsageService
	rates   *billing.EffectiveRates
	period  types.BillingPeriod
}

func TestUsageService(t *testing.T) {
	suite.Run(t, new(UsageServiceSuite))
}

func (s *UsageServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewUsageService(ServiceParams{
		Logger: s.GetLogger(),
		Config: s.GetConfig(),
	})
	s.rates = &billing.EffectiveRates{
		Rates: map[types.RateKey]decimal.Decimal{
			types.RateKeyPerHourTicketCost: decimal.NewFromInt(150),
		},
	}
	s.period = types.NewBillingPeriod(2025, 6)
}

func ticketAt(id int64, updatedAt string, hours float64) *ticket.Ticket {
	return &ticket.Ticket{
		TicketID:        id,
		LastUpdatedAt:   updatedAt,
		TotalHoursSpent: decimal.NewFromFloat(hours),
	}
}

func (s *UsageServiceSuite) TestMonthlyAllowanceAppliesBeforeYearly() {
	tickets := []*ticket.Ticket{
		ticketAt(1, "2025-06-10T14:00:00Z", 10),
	}

	usage := s.service.CalculateUsageHours(tickets, s.period,
		decimal.NewFromInt(4), decimal.NewFromInt(3), s.rates)

	// max(0, max(0, 10-4) - 3) = 3
	s.True(usage.HoursForPeriod.Equal(decimal.NewFromInt(10)))
	s.True(usage.BillableHours.Equal(decimal.NewFromInt(3)))
	s.True(usage.TicketCharge.Equal(decimal.NewFromInt(450)))
}

func (s *UsageServiceSuite) TestYearlyPoolConsumedChronologically() {
	tickets := []*ticket.Ticket{
		ticketAt(1, "2025-02-15T09:00:00Z", 8),
		ticketAt(2, "2025-06-05T09:00:00Z", 5),
	}

	usage := s.service.CalculateUsageHours(tickets, s.period,
		decimal.Zero, decimal.NewFromInt(10), s.rates)

	// 8 of the 10 yearly hours were burned before June
	s.True(usage.RemainingYearlyHours.Equal(decimal.NewFromInt(2)))
	s.True(usage.BillableHours.Equal(decimal.NewFromInt(3)))
}

func (s *UsageServiceSuite) TestExhaustedYearlyPoolClampsAtZero() {
	tickets := []*ticket.Ticket{
		ticketAt(1, "2025-01-15T09:00:00Z", 20),
		ticketAt(2, "2025-06-05T09:00:00Z", 5),
	}

	usage := s.service.CalculateUsageHours(tickets, s.period,
		decimal.Zero, decimal.NewFromInt(10), s.rates)

	s.True(usage.RemainingYearlyHours.IsZero())
	s.True(usage.BillableHours.Equal(decimal.NewFromInt(5)))
}

func (s *UsageServiceSuite) TestTicketsAfterPeriodAreIgnored() {
	tickets := []*ticket.Ticket{
		ticketAt(1, "2025-06-10T14:00:00Z", 2),
		ticketAt(2, "2025-07-01T00:00:00Z", 9),
	}

	usage := s.service.CalculateUsageHours(tickets, s.period,
		decimal.Zero, decimal.Zero, s.rates)

	s.True(usage.HoursForPeriod.Equal(decimal.NewFromInt(2)))
	s.Len(usage.TicketsForPeriod, 1)
}

func (s *UsageServiceSuite) TestPeriodBoundariesAreInclusive() {
	tickets := []*ticket.Ticket{
		ticketAt(1, "2025-06-01T00:00:00Z", 1),
		ticketAt(2, "2025-06-30T23:59:59Z", 1),
	}

	usage := s.service.CalculateUsageHours(tickets, s.period,
		decimal.Zero, decimal.Zero, s.rates)

	s.True(usage.HoursForPeriod.Equal(decimal.NewFromInt(2)))
}

func (s *UsageServiceSuite) TestUnparsableTimestampIsSkipped() {
	tickets := []*ticket.Ticket{
		ticketAt(1, "yesterday-ish", 4),
		ticketAt(2, "2025-06-10T14:00:00Z", 2),
	}

	usage := s.service.CalculateUsageHours(tickets, s.period,
		decimal.Zero, decimal.Zero, s.rates)

	s.True(usage.HoursForPeriod.Equal(decimal.NewFromInt(2)))
	s.True(usage.TicketCharge.Equal(decimal.NewFromInt(300)))
}

func (s *UsageServiceSuite) TestNoChargeWhenAllowanceCoversHours() {
	tickets := []*ticket.Ticket{
		ticketAt(1, "2025-06-10T14:00:00Z", 3),
	}

	usage := s.service.CalculateUsageHours(tickets, s.period,
		decimal.NewFromInt(5), decimal.Zero, s.rates)

	s.True(usage.BillableHours.IsZero())
	s.True(usage.TicketCharge.IsZero())
}

func (s *UsageServiceSuite) TestPriorYearTicketsDoNotConsumeYearlyPool() {
	tickets := []*ticket.Ticket{
		ticketAt(1, "2024-11-20T09:00:00Z", 50),
		ticketAt(2, "2025-06-05T09:00:00Z", 5),
	}

	usage := s.service.CalculateUsageHours(tickets, s.period,
		decimal.Zero, decimal.NewFromInt(10), s.rates)

	// the pool resets each calendar year; November 2024 hours are gone
	s.True(usage.RemainingYearlyHours.Equal(decimal.NewFromInt(10)))
	s.True(usage.BillableHours.IsZero())
}
