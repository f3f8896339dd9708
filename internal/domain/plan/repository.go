package plan

import (
	"context"

	"github.com/billcraft/billcraft/internal/types"
)

// Repository resolves plan details for a (plan name, term) pair.
// Implementations are expected to return an ierr.ErrNotFound marked
// error when no such plan exists.
type Repository interface {
	GetPlan(ctx context.Context, billingPlan string, term types.ContractTerm) (*PlanDetails, error)
}
