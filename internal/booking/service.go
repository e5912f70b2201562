package booking

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/example/roomdesk/internal/hotel"
	"github.com/example/roomdesk/internal/store"
)

// Service fronts the reservation core for the CLI shell: availability search,
// booking, cancellation, lookups and the startup/shutdown persistence hooks.
// Every mutating operation persists synchronously before returning.
type Service struct {
	catalog *hotel.Catalog
	store   *store.ReservationStore
	log     *slog.Logger
}

func NewService(catalog *hotel.Catalog, st *store.ReservationStore, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{catalog: catalog, store: st, log: log}
}

// SearchAvailable validates the date window and runs the availability engine.
func (s *Service) SearchAvailable(category string, from, to time.Time) ([]hotel.Room, error) {
	if !to.After(from) {
		return nil, hotel.ErrDateRange
	}
	return FindAvailable(s.catalog, s.store.ListAll(), category, from, to), nil
}

// Book reserves the selection-th available room (0-based) for guest over
// [from,to) and persists the ledger before returning.
//
// When the reservation was created but the save failed, Book returns the
// reservation together with an error wrapping hotel.ErrPersistence: the
// in-memory booking stands and the caller decides what to tell the user.
func (s *Service) Book(ctx context.Context, category string, from, to time.Time, selection int, guest string) (hotel.Reservation, error) {
	if !to.After(from) {
		return hotel.Reservation{}, hotel.ErrDateRange
	}
	avail := FindAvailable(s.catalog, s.store.ListAll(), category, from, to)
	if selection < 0 || selection >= len(avail) {
		return hotel.Reservation{}, fmt.Errorf("%w: %d of %d available rooms", hotel.ErrSelection, selection+1, len(avail))
	}
	if strings.TrimSpace(guest) == "" {
		return hotel.Reservation{}, fmt.Errorf("%w: guest name required", hotel.ErrValidation)
	}

	room := avail[selection]
	nights := hotel.Nights(from, to)
	amount := hotel.Cents(nights) * room.Price

	res, err := s.store.Create(room.ID, guest, from, to, amount)
	if err != nil {
		return hotel.Reservation{}, err
	}
	s.log.Info("reservation created",
		"id", res.ID, "room", res.RoomID, "nights", nights, "amount", res.Amount.String())

	if err := s.store.Save(ctx); err != nil {
		s.log.Warn("save after booking failed", "id", res.ID, "err", err)
		return res, fmt.Errorf("booked %s but %w", res.ID, err)
	}
	return res, nil
}

// Cancel removes the reservation and persists the shrunken ledger.
func (s *Service) Cancel(ctx context.Context, id string) error {
	if err := s.store.Cancel(id); err != nil {
		return err
	}
	s.log.Info("reservation cancelled", "id", id)
	return s.store.Save(ctx)
}

func (s *Service) FindByID(id string) (hotel.Reservation, error) {
	return s.store.FindByID(id)
}

func (s *Service) ListAll() []hotel.Reservation {
	return s.store.ListAll()
}

// LoadOnStartup resyncs the store from durable state. A persistence failure is
// fatal to startup; silently starting with an empty store would mask data loss.
// A missing backing record (fresh install) is just an empty store.
func (s *Service) LoadOnStartup(ctx context.Context) error {
	if err := s.store.Load(ctx); err != nil {
		return err
	}
	s.log.Debug("ledger loaded", "reservations", len(s.store.ListAll()))
	return nil
}

func (s *Service) SaveOnShutdown(ctx context.Context) error {
	return s.store.Save(ctx)
}
