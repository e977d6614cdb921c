package expense

import "errors"

var (
	ErrExpenseNotFound = errors.New("expense not found")
	ErrBadDate         = errors.New("malformed date")
)
