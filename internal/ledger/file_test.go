package ledger

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/example/roomdesk/internal/hotel"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sample() []hotel.Reservation {
	return []hotel.Reservation{
		{ID: "RES-AAAA1111", RoomID: "R101", Guest: "Asha Rao", CheckIn: day(2024, 1, 1), CheckOut: day(2024, 1, 3), Amount: 400000},
		{ID: "RES-BBBB2222", RoomID: "R301", Guest: "Vikram Shah", CheckIn: day(2024, 2, 10), CheckOut: day(2024, 2, 11), Amount: 650000},
	}
}

func TestFileLedger_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookings.csv")
	l := NewFileLedger(path)
	ctx := context.Background()

	require.NoError(t, l.Save(ctx, sample()))

	got, err := l.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, sample(), got)
}

func TestFileLedger_RecordFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookings.csv")
	l := NewFileLedger(path)

	require.NoError(t, l.Save(context.Background(), sample()[:1]))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "RES-AAAA1111,R101,Asha Rao,2024-01-01,2024-01-03,4000.00\n", string(b))
}

func TestFileLedger_Load_MissingFileIsEmpty(t *testing.T) {
	l := NewFileLedger(filepath.Join(t.TempDir(), "nope.csv"))
	got, err := l.Load(context.Background())
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestFileLedger_Load_SkipsBlankLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookings.csv")
	content := "\nRES-AAAA1111,R101,Asha Rao,2024-01-01,2024-01-03,4000.00\n\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	got, err := NewFileLedger(path).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestFileLedger_Load_MalformedFailsWholeLoad(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"too few fields", "RES-X,R101,Asha Rao,2024-01-01,2024-01-03"},
		{"too many fields", "RES-X,R101,Asha,Rao,2024-01-01,2024-01-03,4000.00"},
		{"bad check-in", "RES-X,R101,Asha Rao,01/01/2024,2024-01-03,4000.00"},
		{"bad check-out", "RES-X,R101,Asha Rao,2024-01-01,soon,4000.00"},
		{"bad amount", "RES-X,R101,Asha Rao,2024-01-01,2024-01-03,lots"},
		{"empty trailing amount", "RES-X,R101,Asha Rao,2024-01-01,2024-01-03,"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bookings.csv")
			good := "RES-AAAA1111,R101,Asha Rao,2024-01-01,2024-01-03,4000.00\n"
			require.NoError(t, os.WriteFile(path, []byte(good+tt.line+"\n"), 0o644))

			_, err := NewFileLedger(path).Load(context.Background())
			require.ErrorIs(t, err, hotel.ErrPersistence)
		})
	}
}

func TestFileLedger_Save_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookings.csv")
	l := NewFileLedger(path)
	ctx := context.Background()

	require.NoError(t, l.Save(ctx, sample()))
	require.NoError(t, l.Save(ctx, sample()[:1]))

	got, err := l.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, sample()[:1], got)
}
