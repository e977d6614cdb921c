package webhook

import "errors"

var (
	ErrMissingBooking = errors.New("webhook event has no booking data")
	ErrBadPayload     = errors.New("malformed webhook payload")
)
