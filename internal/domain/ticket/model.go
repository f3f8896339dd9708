package ticket

import (
	"time"

	"github.com/shopspring/decimal"
)

// Ticket is a support ticket reported by the external directory
// service. Only LastUpdatedAt and TotalHoursSpent participate in
// billing math.
type Ticket struct {
	TicketID        int64           `json:"ticket_id"`
	TicketNumber    string          `json:"ticket_number"`
	Subject         string          `json:"subject"`
	LastUpdatedAt   string          `json:"last_updated_at"`
	TotalHoursSpent decimal.Decimal `json:"total_hours_spent"`
}

// UpdatedAt parses the ticket's last-updated timestamp. Timestamps
// arrive as RFC3339 with either a Z or a numeric offset.
func (t *Ticket) UpdatedAt() (time.Time, error) {
	return time.Parse(time.RFC3339, t.LastUpdatedAt)
}
