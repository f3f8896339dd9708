package service

import (
	"context"

	"github.com/billcraft/billcraft/internal/domain/billing"
	"github.com/billcraft/billcraft/internal/domain/override"
	"github.com/billcraft/billcraft/internal/domain/plan"
	ierr "github.com/billcraft/billcraft/internal/errors"
	"github.com/billcraft/billcraft/internal/types"
	"github.com/shopspring/decimal"
)

// RateService merges plan defaults with client-level rate overrides
// into one effective rate set.
type RateService interface {
	// ResolveRates looks up the plan for (billingPlan, term) and overlays
	// every enabled client override. A missing plan is fatal to the whole
	// billing computation and is returned marked ierr.ErrPlanNotFound.
	ResolveRates(ctx context.Context, billingPlan string, term types.ContractTerm, clientOverride *override.ClientBillingOverride) (*billing.EffectiveRates, error)
}

type rateService struct {
	ServiceParams
}

func NewRateService(params ServiceParams) RateService {
	return &rateService{
		ServiceParams: params,
	}
}

func (s *rateService) ResolveRates(
	ctx context.Context,
	billingPlan string,
	term types.ContractTerm,
	clientOverride *override.ClientBillingOverride,
) (*billing.EffectiveRates, error) {
	planDetails, err := s.PlanRepo.GetPlan(ctx, billingPlan, term)
	if err != nil || planDetails == nil {
		builder := ierr.NewError("billing plan not found")
		if err != nil {
			builder = ierr.WithError(err)
		}
		return nil, builder.
			WithHintf("No billing plan found for %q (%s)", billingPlan, term).
			WithReportableDetails(map[string]any{
				"billing_plan": billingPlan,
				"term":         term,
			}).
			Mark(ierr.ErrPlanNotFound)
	}

	rates := &billing.EffectiveRates{
		SupportLevel: planDetails.SupportLevel,
		Rates:        planDefaults(planDetails),
	}
	if rates.SupportLevel == "" {
		rates.SupportLevel = types.DefaultSupportLevel
	}
	// a plan without a backup allowance falls back to the configured
	// per-device default rather than treating every byte as overage
	if rates.Rates[types.RateKeyBackupIncludedTB].IsZero() && s.Config != nil {
		rates.Rates[types.RateKeyBackupIncludedTB] = decimal.NewFromFloat(s.Config.Billing.DefaultBackupIncludedTB)
	}

	if clientOverride != nil {
		if clientOverride.OverrideSupportLevelEnabled && clientOverride.SupportLevel != "" {
			rates.SupportLevel = clientOverride.SupportLevel
		}
		for key, ovr := range clientOverride.RateOverrides() {
			rates.Rates[key] = resolveRate(rates.Rates[key], ovr)
		}
	}

	return rates, nil
}

// planDefaults seeds the rate map from plan details. Every one of the
// eleven rate keys gets a value even when the plan leaves it zero.
func planDefaults(p *plan.PlanDetails) map[types.RateKey]decimal.Decimal {
	return map[types.RateKey]decimal.Decimal{
		types.RateKeyPerUserCost:              p.PerUserCost,
		types.RateKeyPerWorkstationCost:       p.PerWorkstationCost,
		types.RateKeyPerServerCost:            p.PerServerCost,
		types.RateKeyPerVMCost:                p.PerVMCost,
		types.RateKeyPerSwitchCost:            p.PerSwitchCost,
		types.RateKeyPerFirewallCost:          p.PerFirewallCost,
		types.RateKeyPerHourTicketCost:        p.PerHourTicketCost,
		types.RateKeyBackupBaseFeeWorkstation: p.BackupBaseFeeWorkstation,
		types.RateKeyBackupBaseFeeServer:      p.BackupBaseFeeServer,
		types.RateKeyBackupIncludedTB:         p.BackupIncludedTB,
		types.RateKeyBackupPerTBFee:           p.BackupPerTBFee,
	}
}

// resolveRate applies one (default, override) pair. The override wins
// only when its enabled flag is set and a value is actually stored;
// a disabled override leaves the default untouched no matter what
// value it carries.
func resolveRate(def decimal.Decimal, ovr override.RateOverride) decimal.Decimal {
	if ovr.Enabled && ovr.Value != nil {
		return *ovr.Value
	}
	return def
}
