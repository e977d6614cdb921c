package domain

import "time"

// Expense хранит расход. Пустой apartment_title означает общехозяйственный расход.
type Expense struct {
	ID             int64     `json:"id" gorm:"primaryKey"`
	ApartmentTitle string    `json:"apartment_title,omitempty" gorm:"index"`
	ExpenseDate    time.Time `json:"expense_date" gorm:"type:date;not null;index"`
	Amount         float64   `json:"amount" gorm:"not null"`
	Category       string    `json:"category,omitempty"`
	Comment        string    `json:"comment,omitempty" gorm:"type:text"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
