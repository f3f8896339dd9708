package company

import (
	"strings"

	"github.com/billcraft/billcraft/internal/types"
)

// Company is a managed-service client as reported by the external
// directory service. The engine treats it as read-only input; the one
// working mutation is substituting the override-resolved billing plan
// name before rate lookup, which happens on a copy.
type Company struct {
	AccountNumber      string `json:"account_number"`
	Name               string `json:"name"`
	BillingPlan        string `json:"billing_plan"`
	ContractTermLength string `json:"contract_term_length"`
	// ContractStartDate is an ISO date string, possibly with a time
	// component, possibly empty. Parsing failures degrade to an
	// informational label rather than failing the computation.
	ContractStartDate string `json:"contract_start_date"`
}

// EffectiveTerm returns the contract term, defaulting to month-to-month
// when the directory record has none.
func (c *Company) EffectiveTerm() types.ContractTerm {
	term := strings.TrimSpace(c.ContractTermLength)
	if term == "" {
		return types.ContractTermMonthToMonth
	}
	return types.ContractTerm(term)
}
