package catalog

import "errors"

var (
	ErrServiceNotFound = errors.New("service not found")
	ErrServiceExists   = errors.New("service name already taken")
	ErrEmptyName       = errors.New("service name is empty")
)
