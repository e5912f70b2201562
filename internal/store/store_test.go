package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/example/roomdesk/internal/hotel"
)

// fakeLedger is an in-memory Ledger for tests.
type fakeLedger struct {
	records []hotel.Reservation
	saves   int
	loadErr error
	saveErr error
}

func (f *fakeLedger) Load(context.Context) ([]hotel.Reservation, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	out := make([]hotel.Reservation, len(f.records))
	copy(out, f.records)
	return out, nil
}

func (f *fakeLedger) Save(_ context.Context, rs []hotel.Reservation) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.records = make([]hotel.Reservation, len(rs))
	copy(f.records, rs)
	f.saves++
	return nil
}

// seqIDs returns a deterministic generator: RES-0001, RES-0002, ...
func seqIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("RES-%04d", n)
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestStore_Create(t *testing.T) {
	s := New(&fakeLedger{}, seqIDs())

	r, err := s.Create("R101", "Asha Rao", day(2024, 1, 1), day(2024, 1, 3), 400000)
	require.NoError(t, err)
	require.Equal(t, "RES-0001", r.ID)
	require.Equal(t, "R101", r.RoomID)
	require.Equal(t, hotel.Cents(400000), r.Amount)

	all := s.ListAll()
	require.Len(t, all, 1)
	require.Equal(t, r, all[0])
}

func TestStore_Create_Structural(t *testing.T) {
	tests := []struct {
		name   string
		guest  string
		from   time.Time
		to     time.Time
		amount hotel.Cents
	}{
		{"empty guest", "", day(2024, 1, 1), day(2024, 1, 3), 400000},
		{"blank guest", "   ", day(2024, 1, 1), day(2024, 1, 3), 400000},
		{"checkout equals checkin", "Asha Rao", day(2024, 1, 1), day(2024, 1, 1), 0},
		{"checkout before checkin", "Asha Rao", day(2024, 1, 3), day(2024, 1, 1), 400000},
		{"negative amount", "Asha Rao", day(2024, 1, 1), day(2024, 1, 3), -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(&fakeLedger{}, seqIDs())
			_, err := s.Create("R101", tt.guest, tt.from, tt.to, tt.amount)
			require.ErrorIs(t, err, hotel.ErrValidation)
			require.Empty(t, s.ListAll())
		})
	}
}

func TestStore_IDsNeverReused(t *testing.T) {
	// generator that repeats each id once before moving on
	n, repeat := 0, false
	gen := func() string {
		if repeat {
			repeat = false
			return fmt.Sprintf("RES-%04d", n)
		}
		n++
		repeat = true
		return fmt.Sprintf("RES-%04d", n)
	}
	s := New(&fakeLedger{}, gen)

	a, err := s.Create("R101", "A", day(2024, 1, 1), day(2024, 1, 2), 100)
	require.NoError(t, err)
	require.NoError(t, s.Cancel(a.ID))

	// the id stays burned even though the reservation is gone
	b, err := s.Create("R102", "B", day(2024, 1, 1), day(2024, 1, 2), 100)
	require.NoError(t, err)
	require.NotEqual(t, a.ID, b.ID)
}

func TestStore_Cancel(t *testing.T) {
	s := New(&fakeLedger{}, seqIDs())
	a, _ := s.Create("R101", "A", day(2024, 1, 1), day(2024, 1, 2), 100)
	b, _ := s.Create("R102", "B", day(2024, 1, 1), day(2024, 1, 2), 100)

	require.NoError(t, s.Cancel(a.ID))
	require.Equal(t, []hotel.Reservation{b}, s.ListAll())

	_, err := s.FindByID(a.ID)
	require.ErrorIs(t, err, hotel.ErrNotFound)
}

func TestStore_Cancel_MissLeavesStateUntouched(t *testing.T) {
	s := New(&fakeLedger{}, seqIDs())
	a, _ := s.Create("R101", "A", day(2024, 1, 1), day(2024, 1, 2), 100)

	err := s.Cancel("RES-NOPE")
	require.ErrorIs(t, err, hotel.ErrNotFound)
	require.Equal(t, []hotel.Reservation{a}, s.ListAll())
}

func TestStore_FindByID_DoesNotMutate(t *testing.T) {
	s := New(&fakeLedger{}, seqIDs())
	a, _ := s.Create("R101", "A", day(2024, 1, 1), day(2024, 1, 2), 100)

	before := s.ListAll()
	_, _ = s.FindByID(a.ID)
	_, _ = s.FindByID("RES-NOPE")
	_ = s.ListAll()
	require.Equal(t, before, s.ListAll())
}

func TestStore_ListAll_ReturnsCopy(t *testing.T) {
	s := New(&fakeLedger{}, seqIDs())
	_, _ = s.Create("R101", "A", day(2024, 1, 1), day(2024, 1, 2), 100)

	got := s.ListAll()
	got[0].Guest = "tampered"
	require.Equal(t, "A", s.ListAll()[0].Guest)
}

func TestStore_Load_ReplacesWholesale(t *testing.T) {
	persisted := []hotel.Reservation{
		{ID: "RES-AAAA1111", RoomID: "R201", Guest: "C", CheckIn: day(2024, 3, 1), CheckOut: day(2024, 3, 2), Amount: 350000},
	}
	led := &fakeLedger{records: persisted}
	s := New(led, seqIDs())

	// unsaved in-memory change is discarded by Load
	_, _ = s.Create("R101", "A", day(2024, 1, 1), day(2024, 1, 2), 100)
	require.NoError(t, s.Load(context.Background()))
	require.Equal(t, persisted, s.ListAll())
}

func TestStore_Load_PropagatesError(t *testing.T) {
	led := &fakeLedger{loadErr: fmt.Errorf("%w: corrupt", hotel.ErrPersistence)}
	s := New(led, seqIDs())
	require.ErrorIs(t, s.Load(context.Background()), hotel.ErrPersistence)
}

func TestStore_SaveRoundTrip(t *testing.T) {
	led := &fakeLedger{}
	s := New(led, seqIDs())
	a, _ := s.Create("R101", "A", day(2024, 1, 1), day(2024, 1, 2), 100)
	b, _ := s.Create("R102", "B", day(2024, 2, 1), day(2024, 2, 3), 200)
	require.NoError(t, s.Save(context.Background()))

	s2 := New(led, seqIDs())
	require.NoError(t, s2.Load(context.Background()))
	require.Equal(t, []hotel.Reservation{a, b}, s2.ListAll())
}

func TestStore_DefaultIDFormat(t *testing.T) {
	s := New(&fakeLedger{}, nil)
	r, err := s.Create("R101", "A", day(2024, 1, 1), day(2024, 1, 2), 100)
	require.NoError(t, err)
	require.Regexp(t, `^RES-[0-9A-F]{8}$`, r.ID)
}
