package payment

import "errors"

var (
	ErrPaymentNotFound  = errors.New("payment not found")
	ErrMissingApartment = errors.New("apartment title is required")
	ErrBadDate          = errors.New("malformed date")
)
