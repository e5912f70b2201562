package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/example/roomdesk/internal/db"
	"github.com/example/roomdesk/internal/hotel"
)

// PostgresLedger keeps the ledger in a reservations table. It honors the same
// wholesale contract as the file ledger: Save replaces the full persisted set
// in one transaction, Load reads it back in insertion order.
type PostgresLedger struct {
	db *db.DB
}

func NewPostgresLedger(d *db.DB) *PostgresLedger {
	return &PostgresLedger{db: d}
}

func (l *PostgresLedger) Load(ctx context.Context) ([]hotel.Reservation, error) {
	rows, err := l.db.Query(ctx, `
SELECT id, room_id, guest, check_in, check_out, amount_cents
FROM reservations
ORDER BY position ASC`)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", hotel.ErrPersistence, err)
	}
	defer rows.Close()

	var out []hotel.Reservation
	for rows.Next() {
		var r hotel.Reservation
		var checkIn, checkOut time.Time
		var cents int64
		if err := rows.Scan(&r.ID, &r.RoomID, &r.Guest, &checkIn, &checkOut, &cents); err != nil {
			return nil, fmt.Errorf("%w: %v", hotel.ErrPersistence, err)
		}
		r.CheckIn = asDate(checkIn)
		r.CheckOut = asDate(checkOut)
		r.Amount = hotel.Cents(cents)
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", hotel.ErrPersistence, err)
	}
	return out, nil
}

func (l *PostgresLedger) Save(ctx context.Context, rs []hotel.Reservation) error {
	tx, err := l.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", hotel.ErrPersistence, err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM reservations`); err != nil {
		return fmt.Errorf("%w: %v", hotel.ErrPersistence, err)
	}
	for i, r := range rs {
		_, err := tx.Exec(ctx, `
INSERT INTO reservations(id, room_id, guest, check_in, check_out, amount_cents, position)
VALUES ($1,$2,$3,$4,$5,$6,$7)`,
			r.ID, r.RoomID, r.Guest, r.CheckIn, r.CheckOut, int64(r.Amount), i)
		if err != nil {
			return fmt.Errorf("%w: insert %s: %v", hotel.ErrPersistence, r.ID, err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%w: %v", hotel.ErrPersistence, err)
	}
	return nil
}

// asDate pins a scanned DATE column to UTC midnight so loaded reservations
// compare equal to freshly parsed ones.
func asDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
