package hotel

import "time"

// DateLayout is the wire and CLI format for check-in/check-out dates.
const DateLayout = "2006-01-02"

// ParseDate parses a calendar date strictly as YYYY-MM-DD in UTC.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// Nights is the billing unit: whole calendar days between check-in and check-out.
func Nights(from, to time.Time) int64 {
	return int64(to.Sub(from) / (24 * time.Hour))
}

// Overlaps reports whether the half-open ranges [aFrom,aTo) and [bFrom,bTo)
// intersect. A stay ending the day another begins does not overlap.
func Overlaps(aFrom, aTo, bFrom, bTo time.Time) bool {
	return aFrom.Before(bTo) && bFrom.Before(aTo)
}
