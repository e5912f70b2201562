package ledger

import (
	"context"

	"github.com/example/roomdesk/internal/hotel"
)

// Ledger is the durable home of the complete reservation set. Load returns the
// whole persisted set (nil when no backing record exists yet, a fresh install);
// Save fully overwrites the prior durable content with rs.
type Ledger interface {
	Load(ctx context.Context) ([]hotel.Reservation, error)
	Save(ctx context.Context, rs []hotel.Reservation) error
}
