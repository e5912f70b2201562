package ledger

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/example/roomdesk/internal/hotel"
)

// recordFields is the fixed field order of one persisted reservation:
// id,roomId,guest,checkIn,checkOut,amount
const recordFields = 6

// FileLedger persists the reservation set as one comma-delimited record per
// line, no header. Fields are not escaped: a guest name containing a comma
// corrupts its record. Known limitation of the format.
type FileLedger struct {
	path string
}

func NewFileLedger(path string) *FileLedger {
	return &FileLedger{path: path}
}

func (l *FileLedger) Load(_ context.Context) ([]hotel.Reservation, error) {
	f, err := os.Open(l.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			// fresh install, nothing persisted yet
			return nil, nil
		}
		return nil, fmt.Errorf("%w: open %s: %v", hotel.ErrPersistence, l.path, err)
	}
	defer f.Close()

	var out []hotel.Reservation
	sc := bufio.NewScanner(f)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		r, err := parseRecord(text)
		if err != nil {
			return nil, fmt.Errorf("%w: %s line %d: %v", hotel.ErrPersistence, l.path, line, err)
		}
		out = append(out, r)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", hotel.ErrPersistence, l.path, err)
	}
	return out, nil
}

// Save writes the complete set to a temp file and renames it over the backing
// file, so readers never observe a partially written ledger.
func (l *FileLedger) Save(_ context.Context, rs []hotel.Reservation) error {
	dir := filepath.Dir(l.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(l.path)+".tmp*")
	if err != nil {
		return fmt.Errorf("%w: %v", hotel.ErrPersistence, err)
	}
	defer os.Remove(tmp.Name())

	w := bufio.NewWriter(tmp)
	for _, r := range rs {
		if _, err := fmt.Fprintln(w, marshalRecord(r)); err != nil {
			tmp.Close()
			return fmt.Errorf("%w: write %s: %v", hotel.ErrPersistence, l.path, err)
		}
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: write %s: %v", hotel.ErrPersistence, l.path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %v", hotel.ErrPersistence, tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), l.path); err != nil {
		return fmt.Errorf("%w: replace %s: %v", hotel.ErrPersistence, l.path, err)
	}
	return nil
}

func marshalRecord(r hotel.Reservation) string {
	return strings.Join([]string{
		r.ID,
		r.RoomID,
		r.Guest,
		r.CheckIn.Format(hotel.DateLayout),
		r.CheckOut.Format(hotel.DateLayout),
		r.Amount.String(),
	}, ",")
}

func parseRecord(line string) (hotel.Reservation, error) {
	// strings.Split keeps empty trailing fields
	fields := strings.Split(line, ",")
	if len(fields) != recordFields {
		return hotel.Reservation{}, fmt.Errorf("want %d fields, got %d", recordFields, len(fields))
	}
	checkIn, err := hotel.ParseDate(fields[3])
	if err != nil {
		return hotel.Reservation{}, fmt.Errorf("check-in: %v", err)
	}
	checkOut, err := hotel.ParseDate(fields[4])
	if err != nil {
		return hotel.Reservation{}, fmt.Errorf("check-out: %v", err)
	}
	amount, err := hotel.ParseCents(fields[5])
	if err != nil {
		return hotel.Reservation{}, fmt.Errorf("amount: %v", err)
	}
	return hotel.Reservation{
		ID:       fields[0],
		RoomID:   fields[1],
		Guest:    fields[2],
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Amount:   amount,
	}, nil
}
