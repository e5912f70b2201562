package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/example/roomdesk/internal/hotel"
	"github.com/example/roomdesk/internal/ledger"
)

// NewReservationID is the default id generator: RES- plus the uppercased first
// eight hex digits of a fresh UUID.
func NewReservationID() string {
	return "RES-" + strings.ToUpper(uuid.NewString()[:8])
}

// ReservationStore owns the live reservation set. It enforces only the
// structural invariants of a single reservation; overlap checking belongs to
// the booking layer, which consults availability before calling Create.
//
// The store is not safe for concurrent use. One active session per durable
// store is assumed; multi-session access would need mutual exclusion around
// Create/Cancel/Save and Load.
type ReservationStore struct {
	ledger   ledger.Ledger
	newID    func() string
	validate *validator.Validate

	reservations []hotel.Reservation
	issued       map[string]struct{} // every id ever handed out, cancelled ones included
}

// New builds a store backed by l. A nil newID falls back to NewReservationID;
// tests inject a deterministic generator. An injected generator must
// eventually produce ids the store has not issued before.
func New(l ledger.Ledger, newID func() string) *ReservationStore {
	if newID == nil {
		newID = NewReservationID
	}
	return &ReservationStore{
		ledger:   l,
		newID:    newID,
		validate: validator.New(),
		issued:   make(map[string]struct{}),
	}
}

func (s *ReservationStore) FindByID(id string) (hotel.Reservation, error) {
	for _, r := range s.reservations {
		if r.ID == id {
			return r, nil
		}
	}
	return hotel.Reservation{}, fmt.Errorf("%s: %w", id, hotel.ErrNotFound)
}

// Create mints a fresh reservation and appends it to the set. Validation runs
// before the append, so a rejected reservation leaves no trace.
func (s *ReservationStore) Create(roomID, guest string, from, to time.Time, amount hotel.Cents) (hotel.Reservation, error) {
	r := hotel.Reservation{
		ID:       s.freshID(),
		RoomID:   roomID,
		Guest:    strings.TrimSpace(guest),
		CheckIn:  from,
		CheckOut: to,
		Amount:   amount,
	}
	if err := s.validate.Struct(r); err != nil {
		return hotel.Reservation{}, fmt.Errorf("%w: %v", hotel.ErrValidation, err)
	}
	s.reservations = append(s.reservations, r)
	return r, nil
}

// Cancel removes the reservation with the given id. A miss leaves the set
// untouched.
func (s *ReservationStore) Cancel(id string) error {
	for i, r := range s.reservations {
		if r.ID == id {
			s.reservations = append(s.reservations[:i], s.reservations[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%s: %w", id, hotel.ErrNotFound)
}

// ListAll returns the reservations in insertion order. The slice is a copy;
// callers cannot mutate store state through it.
func (s *ReservationStore) ListAll() []hotel.Reservation {
	out := make([]hotel.Reservation, len(s.reservations))
	copy(out, s.reservations)
	return out
}

// Load replaces the in-memory set wholesale with the persisted one, discarding
// any unsaved changes.
func (s *ReservationStore) Load(ctx context.Context) error {
	rs, err := s.ledger.Load(ctx)
	if err != nil {
		return err
	}
	s.reservations = rs
	for _, r := range rs {
		s.issued[r.ID] = struct{}{}
	}
	return nil
}

// Save writes the complete current set, fully overwriting prior durable content.
func (s *ReservationStore) Save(ctx context.Context) error {
	return s.ledger.Save(ctx, s.reservations)
}

// freshID draws ids until one the store has never issued comes up, so ids are
// unique across the store's lifetime even after cancellations.
func (s *ReservationStore) freshID() string {
	for {
		id := s.newID()
		if _, taken := s.issued[id]; !taken {
			s.issued[id] = struct{}{}
			return id
		}
	}
}
