package plan

import "errors"

var (
	ErrPlanNotFound   = errors.New("plan not found")
	ErrNothingToApply = errors.New("no fields to update")
	ErrBadDate        = errors.New("malformed date")
)
