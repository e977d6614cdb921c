package plan

// CreatePlanRequest - форма нового плана по выручке.
type CreatePlanRequest struct {
	StartDate    string   `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate      string   `json:"end_date" validate:"required,datetime=2006-01-02"`
	TargetAmount *float64 `json:"target_amount" validate:"required"`
}

// UpdatePlanRequest - частичное обновление плана.
type UpdatePlanRequest struct {
	StartDate    *string  `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate      *string  `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	TargetAmount *float64 `json:"target_amount"`
}

// PlanRow - строка списка планов.
type PlanRow struct {
	ID           int64   `json:"id"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	TargetAmount float64 `json:"target_amount"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}
