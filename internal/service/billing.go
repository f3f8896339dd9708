package service

import (
	"context"
	"strings"
	"time"

	"github.com/billcraft/billcraft/internal/api/dto"
	"github.com/billcraft/billcraft/internal/domain/billing"
)

// BillingService composes the sub-calculators into the final receipt
// for one client and period.
//
// The computation is a pure function of its request: no I/O beyond the
// plan lookup, no shared mutable state, identical input yields an
// identical response. Concurrent invocations for different clients are
// independent.
type BillingService interface {
	// Calculate produces the itemized billing result. The only fatal
	// path is plan resolution failure (marked ierr.ErrPlanNotFound);
	// every other data-quality issue degrades to a safe default.
	Calculate(ctx context.Context, req *dto.BillingRequest) (*dto.BillingResponse, error)
}

type billingService struct {
	ServiceParams
}

func NewBillingService(params ServiceParams) BillingService {
	return &billingService{
		ServiceParams: params,
	}
}

func (s *billingService) Calculate(ctx context.Context, req *dto.BillingRequest) (*dto.BillingResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	rateService := NewRateService(s.ServiceParams)
	featureService := NewFeatureService(s.ServiceParams)
	assetService := NewAssetService(s.ServiceParams)
	userService := NewUserService(s.ServiceParams)
	usageService := NewUsageService(s.ServiceParams)
	backupService := NewBackupService(s.ServiceParams)
	lineItemService := NewLineItemService(s.ServiceParams)

	// work on a copy: the resolved plan name is substituted back for
	// display, but the caller's record stays untouched
	client := *req.Company
	client.BillingPlan = req.RateOverride.EffectiveBillingPlan(strings.TrimSpace(client.BillingPlan))
	term := client.EffectiveTerm()
	client.ContractTermLength = term.String()

	rates, err := rateService.ResolveRates(ctx, client.BillingPlan, term, req.RateOverride)
	if err != nil {
		return nil, err
	}

	if len(req.PlanFeatures) > 0 {
		featureService.SeedPlanFeatures(ctx, req.PlanFeatures)
	}
	features, featureStatus := featureService.ResolveFeatures(ctx, client.BillingPlan, term, req.FeatureOverrides)

	contract := ResolveContractTerm(client.ContractStartDate, term, s.now(), s.Logger)

	assetCharges := assetService.CalculateAssetCharges(req.Assets, req.ManualAssets, req.AssetOverrides, rates)
	userCharges := userService.CalculateUserCharges(req.Users, req.ManualUsers, req.UserOverrides, rates)

	prepaidMonthly, prepaidYearly := req.RateOverride.PrepaidHours()
	usage := usageService.CalculateUsageHours(req.Tickets, req.Period, prepaidMonthly, prepaidYearly, rates)

	backup := backupService.CalculateBackupCharges(req.Assets, rates)

	lineItems, lineItemTotal := lineItemService.EvaluateLineItems(req.CustomLineItems, req.Period)

	total := assetCharges.Total.
		Add(userCharges.Total).
		Add(usage.TicketCharge).
		Add(backup.TotalCharge).
		Add(lineItemTotal)

	receipt := billing.Receipt{
		BilledAssets:    assetCharges.Items,
		BilledUsers:     userCharges.Items,
		BilledLineItems: lineItems,

		TotalAssetCharges:    assetCharges.Total,
		TotalUserCharges:     userCharges.Total,
		TicketCharge:         usage.TicketCharge,
		BackupCharge:         backup.TotalCharge,
		TotalLineItemCharges: lineItemTotal,
		Total:                total,

		HoursForBillingPeriod: usage.HoursForPeriod,
		PrepaidHoursMonthly:   usage.PrepaidMonthly,
		BillableHours:         usage.BillableHours,

		BackupBaseWorkstation: backup.BaseWorkstationCharge,
		BackupBaseServer:      backup.BaseServerCharge,
		TotalIncludedTB:       backup.IncludedTB,
		OverageTB:             backup.OverageTB,
		OverageCharge:         backup.OverageCharge,
	}

	return &dto.BillingResponse{
		Client:  &client,
		Period:  req.Period,
		Receipt: receipt,

		EffectiveRates:        rates,
		EffectiveFeatures:     features,
		FeatureOverrideStatus: featureStatus,
		SupportLevelDisplay:   rates.SupportLevel,

		Quantities: mergeQuantities(assetCharges.Quantities, userCharges.Quantities),

		BackupInfo:    backup.Info,
		TotalBackupTB: backup.TotalBackupTB,

		ContractEndDate: contract.EndDate,
		ContractExpired: contract.Expired,

		TicketsForPeriod:     usage.TicketsForPeriod,
		RemainingYearlyHours: usage.RemainingYearlyHours,

		Assets:          req.Assets,
		ManualAssets:    req.ManualAssets,
		Users:           req.Users,
		ManualUsers:     req.ManualUsers,
		CustomLineItems: req.CustomLineItems,
	}, nil
}

func (s *billingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}

func mergeQuantities(maps ...map[string]int) map[string]int {
	merged := make(map[string]int)
	for _, m := range maps {
		for key, count := range m {
			merged[key] += count
		}
	}
	return merged
}
