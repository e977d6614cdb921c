package domain

import "time"

// Realty представляет объект недвижимости (дом, коттедж).
// Справочник пополняется из бронирований и управляется админом.
type Realty struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"uniqueIndex;not null"`
	IsActive  bool      `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName сохраняет историческое имя таблицы без множественного числа.
func (Realty) TableName() string {
	return "realty"
}
