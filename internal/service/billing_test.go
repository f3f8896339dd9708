package service

import (
	"testing"
	"time"

	"github.com/billcraft/billcraft/internal/api/dto"
	"github.com/billcraft/billcraft/internal/domain/asset"
	"github.com/billcraft/billcraft/internal/domain/company"
	"github.com/billcraft/billcraft/internal/domain/override"
	"github.com/billcraft/billcraft/internal/domain/ticket"
	"github.com/billcraft/billcraft/internal/domain/user"
	ierr "github.com/billcraft/billcraft/internal/errors"
	"github.com/billcraft/billcraft/internal/testutil"
	"github.com/billcraft/billcraft/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type BillingServiceSuite struct {
	testutil.BaseServiceTestSuite
	service BillingService
}

func TestBillingService(t *testing.T) {
	suite.Run(t, new(BillingServiceSuite))
}

func (s *BillingServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewBillingService(ServiceParams{
		Logger:       s.GetLogger(),
		Config:       s.GetConfig(),
		PlanRepo:     s.GetStores().PlanStore,
		FeatureCache: s.GetFeatureCache(),
		Now: func() time.Time {
			return time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
		},
	})
	s.GetStores().PlanStore.Add(proPlan())
}

// acmeBillingRequest covers every charge category at once: two
// directory assets (one backed up past the included allowance), a paid
// and a free user, one billable ticket, and a recurring line item.
func acmeBillingRequest() *dto.BillingRequest {
	return &dto.BillingRequest{
		Company: &company.Company{
			AccountNumber:      "620547",
			Name:               "Acme Corp",
			BillingPlan:        "Pro Plan",
			ContractTermLength: "Month to Month",
			ContractStartDate:  "2023-03-01",
		},
		Period: types.NewBillingPeriod(2025, 6),
		Assets: []*asset.Asset{
			{ID: 1, Hostname: "acme-ws-01", BillingType: "Workstation", BackupDataBytes: tb / 2},
			{ID: 2, Hostname: "acme-srv-01", BillingType: "Server", BackupDataBytes: 3 * tb},
		},
		Users: []*user.User{
			{ID: 10, FullName: "Sam Ops", Email: "sam@acme.test"},
			{ID: 11, FullName: "Pat Intern", Email: "pat@acme.test"},
		},
		UserOverrides: map[int]*override.UserOverride{
			11: {UserID: 11, BillingType: types.UserBillingTypeFree},
		},
		Tickets: []*ticket.Ticket{
			{TicketID: 1, TicketNumber: "T-100", LastUpdatedAt: "2025-06-10T14:00:00Z", TotalHoursSpent: decimal.NewFromInt(2)},
		},
		CustomLineItems: []*override.CustomLineItem{
			{Name: "Hosting", MonthlyFee: lo.ToPtr(decimal.NewFromInt(10))},
		},
	}
}

func (s *BillingServiceSuite) TestTotalIsSumOfCategoryTotals() {
	resp, err := s.service.Calculate(s.GetContext(), acmeBillingRequest())
	s.NoError(err)

	// assets: 20 + 100
	s.True(resp.Receipt.TotalAssetCharges.Equal(decimal.NewFromInt(120)))
	// users: one paid at 50, one free
	s.True(resp.Receipt.TotalUserCharges.Equal(decimal.NewFromInt(50)))
	// tickets: 2 hours at 150
	s.True(resp.Receipt.TicketCharge.Equal(decimal.NewFromInt(300)))
	// backup: base 5 + 15, 3.5 TB against 2 included, 1.5 over at 10
	s.True(resp.Receipt.BackupCharge.Equal(decimal.NewFromInt(35)))
	// line items: flat 10
	s.True(resp.Receipt.TotalLineItemCharges.Equal(decimal.NewFromInt(10)))

	want := resp.Receipt.TotalAssetCharges.
		Add(resp.Receipt.TotalUserCharges).
		Add(resp.Receipt.TicketCharge).
		Add(resp.Receipt.BackupCharge).
		Add(resp.Receipt.TotalLineItemCharges)
	s.True(resp.Receipt.Total.Equal(want))
	s.True(resp.Receipt.Total.Equal(decimal.NewFromInt(515)))
}

func (s *BillingServiceSuite) TestQuantitiesMergeAssetsAndUsers() {
	resp, err := s.service.Calculate(s.GetContext(), acmeBillingRequest())
	s.NoError(err)

	s.Equal(1, resp.Quantities["workstation"])
	s.Equal(1, resp.Quantities["server"])
	s.Equal(1, resp.Quantities[types.QuantityKeyRegularUsers])
	s.Equal(1, resp.Quantities[types.QuantityKeyFreeUsers])
}

func (s *BillingServiceSuite) TestIdenticalInputIdenticalResult() {
	first, err := s.service.Calculate(s.GetContext(), acmeBillingRequest())
	s.NoError(err)
	second, err := s.service.Calculate(s.GetContext(), acmeBillingRequest())
	s.NoError(err)

	s.True(first.Receipt.Total.Equal(second.Receipt.Total))
	s.Equal(first.Quantities, second.Quantities)
	s.Equal(first.ContractEndDate, second.ContractEndDate)
}

func (s *BillingServiceSuite) TestUnknownPlanIsFatal() {
	req := acmeBillingRequest()
	req.Company.BillingPlan = "No Such Plan"

	resp, err := s.service.Calculate(s.GetContext(), req)
	s.Error(err)
	s.Nil(resp)
	s.True(ierr.IsPlanNotFound(err))
}

func (s *BillingServiceSuite) TestPlanOverrideSubstitutedWithoutMutatingInput() {
	req := acmeBillingRequest()
	req.Company.BillingPlan = "Directory Plan"
	req.RateOverride = &override.ClientBillingOverride{
		CompanyAccountNumber:       "620547",
		OverrideBillingPlanEnabled: true,
		BillingPlan:                "Pro Plan",
	}

	resp, err := s.service.Calculate(s.GetContext(), req)
	s.NoError(err)
	s.Equal("Pro Plan", resp.Client.BillingPlan)
	s.Equal("Directory Plan", req.Company.BillingPlan)
}

func (s *BillingServiceSuite) TestPrepaidHoursReduceTicketCharge() {
	req := acmeBillingRequest()
	req.RateOverride = &override.ClientBillingOverride{
		CompanyAccountNumber:               "620547",
		OverridePrepaidHoursMonthlyEnabled: true,
		PrepaidHoursMonthly:                lo.ToPtr(decimal.NewFromInt(2)),
	}

	resp, err := s.service.Calculate(s.GetContext(), req)
	s.NoError(err)
	s.True(resp.Receipt.BillableHours.IsZero())
	s.True(resp.Receipt.TicketCharge.IsZero())
	s.True(resp.Receipt.HoursForBillingPeriod.Equal(decimal.NewFromInt(2)))
}

func (s *BillingServiceSuite) TestContractStatusMonthToMonth() {
	resp, err := s.service.Calculate(s.GetContext(), acmeBillingRequest())
	s.NoError(err)
	s.Equal("Month to Month", resp.ContractEndDate)
	s.False(resp.ContractExpired)
}

func (s *BillingServiceSuite) TestInlinePlanFeaturesResolve() {
	req := acmeBillingRequest()
	req.PlanFeatures = map[string]map[types.FeatureType]string{
		"Pro Plan|Month to Month": {
			types.FeatureTypeAntivirus: "SentinelOne",
		},
	}
	req.FeatureOverrides = []*override.FeatureOverride{
		{FeatureType: types.FeatureTypeSOC, Enabled: true, Value: "24x7 SOC"},
	}

	resp, err := s.service.Calculate(s.GetContext(), req)
	s.NoError(err)
	s.Equal("SentinelOne", resp.EffectiveFeatures[types.FeatureTypeAntivirus])
	s.Equal("24x7 SOC", resp.EffectiveFeatures[types.FeatureTypeSOC])
	s.True(resp.FeatureOverrideStatus[types.FeatureTypeSOC])
	s.Equal(types.FeatureNotIncluded, resp.EffectiveFeatures[types.FeatureTypeSAT])
}

func (s *BillingServiceSuite) TestMissingCompanyFailsValidation() {
	req := acmeBillingRequest()
	req.Company = nil

	resp, err := s.service.Calculate(s.GetContext(), req)
	s.Error(err)
	s.Nil(resp)
}
