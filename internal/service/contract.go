package service

import (
	"strings"
	"time"

	"github.com/billcraft/billcraft/internal/domain/billing"
	"github.com/billcraft/billcraft/internal/logger"
	"github.com/billcraft/billcraft/internal/types"
)

const (
	contractEndNotAvailable = "N/A"
	contractEndInvalidStart = "Invalid Start Date"
)

// ResolveContractTerm derives the contract end date label and the
// expiration flag from the contract start date and term length.
//
// Contract dates are informational, not charge-affecting, so a
// malformed start date degrades to a label instead of failing the
// billing computation.
func ResolveContractTerm(startDate string, term types.ContractTerm, today time.Time, log *logger.Logger) billing.ContractStatus {
	status := billing.ContractStatus{EndDate: contractEndNotAvailable}

	if startDate == "" {
		return status
	}

	years := term.Years()
	if years == 0 {
		if term == types.ContractTermMonthToMonth {
			status.EndDate = types.ContractTermMonthToMonth.String()
		}
		return status
	}

	// start dates may arrive with a time component; only the date counts
	datePart, _, _ := strings.Cut(startDate, "T")
	start, err := time.Parse("2006-01-02", datePart)
	if err != nil {
		if log != nil {
			log.Warnw("unparsable contract start date",
				"contract_start_date", startDate,
				"error", err)
		}
		status.EndDate = contractEndInvalidStart
		return status
	}

	end := start.AddDate(years, 0, -1)
	status.EndDate = end.Format("2006-01-02")

	todayDate := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	status.Expired = todayDate.After(end)

	return status
}
