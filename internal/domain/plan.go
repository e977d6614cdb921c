package domain

import "time"

// MonthlyPlan задает целевую выручку на период, обычно на календарный месяц.
type MonthlyPlan struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	StartDate    time.Time `json:"start_date" gorm:"type:date;not null"`
	EndDate      time.Time `json:"end_date" gorm:"type:date;not null"`
	TargetAmount float64   `json:"target_amount" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName задает имя таблицы планов.
func (MonthlyPlan) TableName() string {
	return "monthly_plans"
}
