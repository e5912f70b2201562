package hotel

import "errors"

var (
	ErrDateRange   = errors.New("check-out must be after check-in")
	ErrValidation  = errors.New("invalid reservation")
	ErrSelection   = errors.New("selection out of range")
	ErrNotFound    = errors.New("reservation not found")
	ErrPersistence = errors.New("ledger persistence failed")
)
