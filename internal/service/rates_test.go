package service

import (
	"testing"

	"github.com/billcraft/billcraft/internal/domain/override"
	"github.com/billcraft/billcraft/internal/domain/plan"
	ierr "github.com/billcraft/billcraft/internal/errors"
	"github.com/billcraft/billcraft/internal/testutil"
	"github.com/billcraft/billcraft/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type RateServiceSuite struct {
	testutil.BaseServiceTestSuite
	service RateService
}

func TestRateService(t *testing.T) {
	suite.Run(t, new(RateServiceSuite))
}

func (s *RateServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewRateService(ServiceParams{
		Logger:   s.GetLogger(),
		Config:   s.GetConfig(),
		PlanRepo: s.GetStores().PlanStore,
	})
	s.GetStores().PlanStore.Add(proPlan())
}

func proPlan() *plan.PlanDetails {
	return &plan.PlanDetails{
		BillingPlan:  "Pro Plan",
		TermLength:   "Month to Month",
		SupportLevel: "All Inclusive",

		PerUserCost:        decimal.NewFromInt(50),
		PerWorkstationCost: decimal.NewFromInt(20),
		PerServerCost:      decimal.NewFromInt(100),
		PerVMCost:          decimal.NewFromInt(75),
		PerSwitchCost:      decimal.NewFromInt(10),
		PerFirewallCost:    decimal.NewFromInt(25),
		PerHourTicketCost:  decimal.NewFromInt(150),

		BackupBaseFeeWorkstation: decimal.NewFromInt(5),
		BackupBaseFeeServer:      decimal.NewFromInt(15),
		BackupIncludedTB:         decimal.NewFromInt(1),
		BackupPerTBFee:           decimal.NewFromInt(10),
	}
}

func (s *RateServiceSuite) TestPlanDefaultsWithoutOverride() {
	rates, err := s.service.ResolveRates(s.GetContext(), "Pro Plan", types.ContractTermMonthToMonth, nil)
	s.NoError(err)

	s.Equal("All Inclusive", rates.SupportLevel)
	s.True(rates.Get(types.RateKeyPerUserCost).Equal(decimal.NewFromInt(50)))
	s.True(rates.Get(types.RateKeyPerServerCost).Equal(decimal.NewFromInt(100)))

	// every rate key carries a value
	for _, key := range types.AllRateKeys() {
		_, ok := rates.Rates[key]
		s.True(ok, "missing rate key %s", key)
	}
}

func (s *RateServiceSuite) TestDisabledOverrideLeavesDefault() {
	ovr := &override.ClientBillingOverride{
		CompanyAccountNumber:       "620547",
		OverridePerUserCostEnabled: false,
		PerUserCost:                lo.ToPtr(decimal.NewFromInt(5)),
	}

	rates, err := s.service.ResolveRates(s.GetContext(), "Pro Plan", types.ContractTermMonthToMonth, ovr)
	s.NoError(err)
	s.True(rates.Get(types.RateKeyPerUserCost).Equal(decimal.NewFromInt(50)))
}

func (s *RateServiceSuite) TestEnabledOverrideWins() {
	ovr := &override.ClientBillingOverride{
		CompanyAccountNumber:         "620547",
		OverridePerUserCostEnabled:   true,
		PerUserCost:                  lo.ToPtr(decimal.NewFromInt(40)),
		OverridePerServerCostEnabled: true,
		PerServerCost:                lo.ToPtr(decimal.NewFromInt(90)),
	}

	rates, err := s.service.ResolveRates(s.GetContext(), "Pro Plan", types.ContractTermMonthToMonth, ovr)
	s.NoError(err)
	s.True(rates.Get(types.RateKeyPerUserCost).Equal(decimal.NewFromInt(40)))
	s.True(rates.Get(types.RateKeyPerServerCost).Equal(decimal.NewFromInt(90)))
	// untouched keys keep plan defaults
	s.True(rates.Get(types.RateKeyPerWorkstationCost).Equal(decimal.NewFromInt(20)))
}

func (s *RateServiceSuite) TestEnabledOverrideWithoutValueIsIgnored() {
	ovr := &override.ClientBillingOverride{
		CompanyAccountNumber:       "620547",
		OverridePerUserCostEnabled: true,
		PerUserCost:                nil,
	}

	rates, err := s.service.ResolveRates(s.GetContext(), "Pro Plan", types.ContractTermMonthToMonth, ovr)
	s.NoError(err)
	s.True(rates.Get(types.RateKeyPerUserCost).Equal(decimal.NewFromInt(50)))
}

func (s *RateServiceSuite) TestSupportLevelOverride() {
	ovr := &override.ClientBillingOverride{
		CompanyAccountNumber:        "620547",
		OverrideSupportLevelEnabled: true,
		SupportLevel:                "Billed Hourly",
	}

	rates, err := s.service.ResolveRates(s.GetContext(), "Pro Plan", types.ContractTermMonthToMonth, ovr)
	s.NoError(err)
	s.Equal("Billed Hourly", rates.SupportLevel)
}

func (s *RateServiceSuite) TestUnknownPlanIsFatal() {
	rates, err := s.service.ResolveRates(s.GetContext(), "No Such Plan", types.ContractTermMonthToMonth, nil)
	s.Error(err)
	s.Nil(rates)
	s.True(ierr.IsPlanNotFound(err))
}

func (s *RateServiceSuite) TestZeroIncludedTBFallsBackToConfigDefault() {
	p := proPlan()
	p.BillingPlan = "No Backup Allowance"
	p.BackupIncludedTB = decimal.Zero
	s.GetStores().PlanStore.Add(p)

	rates, err := s.service.ResolveRates(s.GetContext(), "No Backup Allowance", types.ContractTermMonthToMonth, nil)
	s.NoError(err)
	s.True(rates.Get(types.RateKeyBackupIncludedTB).Equal(decimal.NewFromInt(1)))
}
