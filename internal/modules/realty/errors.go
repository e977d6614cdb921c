package realty

import "errors"

var (
	ErrRealtyNotFound = errors.New("realty object not found")
	ErrEmptyName      = errors.New("realty name is empty")
	ErrNameExists     = errors.New("realty name already exists")
)
