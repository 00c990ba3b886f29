package booking

import "errors"

// Workflow failure modes. All of these are recovered at the CLI boundary
// and reported to the user; none are fatal.
var (
	ErrNoMatchingRoute        = errors.New("no flights available for this route")
	ErrNoPriorSearch          = errors.New("no prior search: search flights before booking")
	ErrInvalidFlightSelection = errors.New("flight is not in the last search results")
	ErrInvalidPassengerCount  = errors.New("passenger count must be between 1 and 3")
	ErrInsufficientSeats      = errors.New("not enough seats available")
	ErrInvalidGender          = errors.New("gender must be M, F or O")
	ErrBookingNotFound        = errors.New("booking not found")
)
