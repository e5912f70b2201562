package hotel

import (
	"fmt"
	"time"
)

// Reservation is one booked stay. It is immutable once created; cancellation
// removes it from the store instead of flipping a status.
type Reservation struct {
	ID       string    `validate:"required"`
	RoomID   string    `validate:"required"`
	Guest    string    `validate:"required"`
	CheckIn  time.Time `validate:"required"`
	CheckOut time.Time `validate:"required,gtfield=CheckIn"`
	Amount   Cents     `validate:"gte=0"`
}

func (r Reservation) String() string {
	return fmt.Sprintf("%s | Room:%s | Guest:%s | From:%s | To:%s | %s",
		r.ID, r.RoomID, r.Guest,
		r.CheckIn.Format(DateLayout), r.CheckOut.Format(DateLayout), r.Amount)
}
