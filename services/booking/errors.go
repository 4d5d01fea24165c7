package booking

import (
	"errors"
	"fmt"
)

// ErrNotFound signals that no booking matches the requested id.
var ErrNotFound = errors.New("booking not found")

// AlreadyBookedError signals a duplicate (email, treatment, date) booking.
// The request is rejected without inserting a second record.
type AlreadyBookedError struct {
	Date string
}

func (e *AlreadyBookedError) Error() string {
	return fmt.Sprintf("You already have a booking on %s", e.Date)
}
