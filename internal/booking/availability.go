package booking

import (
	"time"

	"github.com/example/roomdesk/internal/hotel"
)

// FindAvailable returns the rooms of catalog matching category (empty matches
// all) that have no reservation overlapping [from,to). Results keep catalog
// order. The caller must have validated to > from; the engine assumes it.
func FindAvailable(catalog *hotel.Catalog, reservations []hotel.Reservation, category string, from, to time.Time) []hotel.Room {
	var out []hotel.Room
	for _, room := range catalog.ByCategory(category) {
		if roomFree(room.ID, reservations, from, to) {
			out = append(out, room)
		}
	}
	return out
}

func roomFree(roomID string, reservations []hotel.Reservation, from, to time.Time) bool {
	for _, r := range reservations {
		if r.RoomID != roomID {
			continue
		}
		if hotel.Overlaps(from, to, r.CheckIn, r.CheckOut) {
			return false
		}
	}
	return true
}
