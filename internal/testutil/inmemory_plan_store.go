package testutil

import (
	"context"
	"sync"

	"github.com/billcraft/billcraft/internal/domain/plan"
	ierr "github.com/billcraft/billcraft/internal/errors"
	"github.com/billcraft/billcraft/internal/types"
)

// InMemoryPlanStore implements plan.Repository
type InMemoryPlanStore struct {
	mu    sync.RWMutex
	plans map[string]*plan.PlanDetails
}

func NewInMemoryPlanStore() *InMemoryPlanStore {
	return &InMemoryPlanStore{
		plans: make(map[string]*plan.PlanDetails),
	}
}

func planKey(billingPlan string, term types.ContractTerm) string {
	return billingPlan + "|" + term.String()
}

// Add registers plan details for lookup by (plan, term)
func (s *InMemoryPlanStore) Add(details *plan.PlanDetails) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.plans[planKey(details.BillingPlan, types.ContractTerm(details.TermLength))] = details
}

func (s *InMemoryPlanStore) GetPlan(ctx context.Context, billingPlan string, term types.ContractTerm) (*plan.PlanDetails, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	details, ok := s.plans[planKey(billingPlan, term)]
	if !ok {
		return nil, ierr.NewError("plan not found").
			WithHintf("No plan named %q with term %q", billingPlan, term).
			Mark(ierr.ErrNotFound)
	}
	return details, nil
}

func (s *InMemoryPlanStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.plans = make(map[string]*plan.PlanDetails)
}
