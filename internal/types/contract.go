package types

import (
	ierr "github.com/billcraft/billcraft/internal/errors"
	"github.com/samber/lo"
)

// ContractTerm is the contract term length attached to a company and
// part of the plan lookup key.
type ContractTerm string

const (
	ContractTermMonthToMonth ContractTerm = "Month to Month"
	ContractTermOneYear      ContractTerm = "1-Year"
	ContractTermTwoYear      ContractTerm = "2-Year"
	ContractTermThreeYear    ContractTerm = "3-Year"
)

func (t ContractTerm) String() string {
	return string(t)
}

// Years returns the term length in years, 0 for month-to-month or
// unrecognized terms.
func (t ContractTerm) Years() int {
	switch t {
	case ContractTermOneYear:
		return 1
	case ContractTermTwoYear:
		return 2
	case ContractTermThreeYear:
		return 3
	default:
		return 0
	}
}

func (t ContractTerm) Validate() error {
	allowed := []ContractTerm{
		ContractTermMonthToMonth,
		ContractTermOneYear,
		ContractTermTwoYear,
		ContractTermThreeYear,
	}
	if !lo.Contains(allowed, t) {
		return ierr.NewError("invalid contract term").
			WithHint("Please provide a valid contract term length").
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}
