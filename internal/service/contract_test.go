package service

import (
	"testing"
	"time"

	"github.com/billcraft/billcraft/internal/logger"
	"github.com/billcraft/billcraft/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestResolveContractTerm(t *testing.T) {
	log := logger.GetLogger()
	today := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		startDate   string
		term        types.ContractTerm
		today       time.Time
		wantEndDate string
		wantExpired bool
	}{
		{
			name:        "two year term ends a day before the anniversary",
			startDate:   "2023-03-01",
			term:        types.ContractTermTwoYear,
			today:       time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC),
			wantEndDate: "2025-02-28",
			wantExpired: false,
		},
		{
			name:        "expired when today is strictly after the end date",
			startDate:   "2023-03-01",
			term:        types.ContractTermTwoYear,
			today:       time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			wantEndDate: "2025-02-28",
			wantExpired: true,
		},
		{
			name:        "start date with time component",
			startDate:   "2024-01-15T00:00:00",
			term:        types.ContractTermOneYear,
			today:       today,
			wantEndDate: "2025-01-14",
			wantExpired: true,
		},
		{
			name:        "month to month never expires",
			startDate:   "2020-01-01",
			term:        types.ContractTermMonthToMonth,
			today:       today,
			wantEndDate: "Month to Month",
			wantExpired: false,
		},
		{
			name:        "missing start date",
			startDate:   "",
			term:        types.ContractTermThreeYear,
			today:       today,
			wantEndDate: "N/A",
			wantExpired: false,
		},
		{
			name:        "malformed start date degrades to a label",
			startDate:   "not-a-date",
			term:        types.ContractTermOneYear,
			today:       today,
			wantEndDate: "Invalid Start Date",
			wantExpired: false,
		},
		{
			name:        "unknown term reports nothing",
			startDate:   "2024-01-15",
			term:        types.ContractTerm("5-Year"),
			today:       today,
			wantEndDate: "N/A",
			wantExpired: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status := ResolveContractTerm(tt.startDate, tt.term, tt.today, log)
			assert.Equal(t, tt.wantEndDate, status.EndDate)
			assert.Equal(t, tt.wantExpired, status.Expired)
		})
	}
}
