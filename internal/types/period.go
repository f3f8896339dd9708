package types

import (
	"fmt"
	"time"

	ierr "github.com/billcraft/billcraft/internal/errors"
)

// BillingPeriod identifies the (year, month) a receipt is computed for.
type BillingPeriod struct {
	Year  int `json:"year" validate:"required,min=2000"`
	Month int `json:"month" validate:"required,min=1,max=12"`
}

func NewBillingPeriod(year, month int) BillingPeriod {
	return BillingPeriod{Year: year, Month: month}
}

func (p BillingPeriod) Validate() error {
	if p.Year < 2000 || p.Month < 1 || p.Month > 12 {
		return ierr.NewError("invalid billing period").
			WithHint("Billing period must have a valid year and a month between 1 and 12").
			WithReportableDetails(map[string]any{
				"year":  p.Year,
				"month": p.Month,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

func (p BillingPeriod) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, p.Month)
}

// Start returns the first instant of the billing month in UTC.
func (p BillingPeriod) Start() time.Time {
	return time.Date(p.Year, time.Month(p.Month), 1, 0, 0, 0, 0, time.UTC)
}

// End returns the last instant of the billing month in UTC
// (last day, 23:59:59).
func (p BillingPeriod) End() time.Time {
	return time.Date(p.Year, time.Month(p.Month), p.DaysInMonth(), 23, 59, 59, 0, time.UTC)
}

// DaysInMonth returns the number of calendar days in the billing month.
func (p BillingPeriod) DaysInMonth() int {
	// day 0 of the next month is the last day of this one
	return time.Date(p.Year, time.Month(p.Month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// InvoiceDate is the last day of the billing month.
func (p BillingPeriod) InvoiceDate() time.Time {
	return time.Date(p.Year, time.Month(p.Month), p.DaysInMonth(), 0, 0, 0, 0, time.UTC)
}

// DueDate is the invoice date advanced by the given number of days.
func (p BillingPeriod) DueDate(days int) time.Time {
	return p.InvoiceDate().AddDate(0, 0, days)
}

// Contains reports whether t falls inside the billing month window.
func (p BillingPeriod) Contains(t time.Time) bool {
	return !t.Before(p.Start()) && !t.After(p.End())
}
