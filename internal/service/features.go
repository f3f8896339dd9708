package service

import (
	"context"

	"github.com/billcraft/billcraft/internal/cache"
	"github.com/billcraft/billcraft/internal/domain/billing"
	"github.com/billcraft/billcraft/internal/domain/override"
	"github.com/billcraft/billcraft/internal/types"
)

// FeatureService merges plan feature defaults with client-level feature
// overrides into one effective feature set.
type FeatureService interface {
	// ResolveFeatures returns a fully populated feature set (every known
	// feature type has a value, defaulting to "Not Included") plus the
	// subset of features replaced by a client override.
	ResolveFeatures(ctx context.Context, billingPlan string, term types.ContractTerm, overrides []*override.FeatureOverride) (billing.EffectiveFeatures, billing.FeatureOverrideStatus)

	// SeedPlanFeatures loads an inline plan-features payload (keyed
	// "plan|term") into the shared cache.
	SeedPlanFeatures(ctx context.Context, features map[string]map[types.FeatureType]string)
}

type featureService struct {
	ServiceParams
}

func NewFeatureService(params ServiceParams) FeatureService {
	return &featureService{
		ServiceParams: params,
	}
}

func (s *featureService) ResolveFeatures(
	ctx context.Context,
	billingPlan string,
	term types.ContractTerm,
	overrides []*override.FeatureOverride,
) (billing.EffectiveFeatures, billing.FeatureOverrideStatus) {
	planFeatures := s.planFeatures(ctx, billingPlan, term)

	effective := make(billing.EffectiveFeatures, len(types.AllFeatureTypes()))
	for _, ft := range types.AllFeatureTypes() {
		value, ok := planFeatures[ft]
		if !ok || value == "" {
			value = types.FeatureNotIncluded
		}
		effective[ft] = value
	}

	status := make(billing.FeatureOverrideStatus)
	for _, ovr := range overrides {
		if ovr == nil || !ovr.Enabled || ovr.Value == "" {
			continue
		}
		effective[ovr.FeatureType] = ovr.Value
		status[ovr.FeatureType] = true
	}

	return effective, status
}

func (s *featureService) SeedPlanFeatures(ctx context.Context, features map[string]map[types.FeatureType]string) {
	if s.FeatureCache == nil {
		return
	}
	for key, featureMap := range features {
		s.FeatureCache.Set(ctx, cache.PrefixPlanFeatures+key, featureMap, 0)
	}
}

func (s *featureService) planFeatures(ctx context.Context, billingPlan string, term types.ContractTerm) map[types.FeatureType]string {
	if s.FeatureCache == nil || billingPlan == "" || term == "" {
		return nil
	}
	value, found := s.FeatureCache.Get(ctx, cache.PlanFeaturesKey(billingPlan, term.String()))
	if !found {
		return nil
	}
	features, ok := value.(map[types.FeatureType]string)
	if !ok {
		s.Logger.Warnw("unexpected plan features cache payload",
			"billing_plan", billingPlan,
			"term", term)
		return nil
	}
	return features
}
