package booking

import "errors"

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrServiceNotFound = errors.New("service not found")
	ErrItemNotFound    = errors.New("booking service not found")
)
