package ticket

import (
	"context"
	"fmt"
	"time"

	"helpdesk/internal/shared/constants"
)

// NumberGenerator yields unique human-readable ticket numbers. Daily
// sequences must stay unique under concurrent creates, so concrete
// generators allocate atomically.
type NumberGenerator interface {
	Next(ctx context.Context, day time.Time) (string, error)
}

// FormatNumber renders a day and daily sequence as TKT-YYYYMMDD-NNNN.
func FormatNumber(day time.Time, seq uint) string {
	return fmt.Sprintf("%s-%s-%04d", constants.TicketNumberPrefix, day.Format("20060102"), seq)
}
