package domain

import "time"

// Service представляет дополнительную услугу из прайса (баня, веники и т.д.).
type Service struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"uniqueIndex;not null"`
	IsActive  bool      `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BookingService связывает бронирование с оказанной услугой и ее ценой.
type BookingService struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	BookingID int64     `json:"booking_id" gorm:"not null;index"`
	ServiceID int64     `json:"service_id" gorm:"not null;index"`
	Price     float64   `json:"price" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}

// BookingServiceRow - услуга бронирования вместе с названием из справочника.
type BookingServiceRow struct {
	ID          int64     `json:"id"`
	BookingID   int64     `json:"booking_id"`
	ServiceID   int64     `json:"service_id"`
	ServiceName string    `json:"service_name"`
	Price       float64   `json:"price"`
	CreatedAt   time.Time `json:"created_at"`
}

// BookingServicePaymentRow - услуга как строка поступления на странице денег.
type BookingServicePaymentRow struct {
	ID             int64
	BookingID      int64
	ApartmentTitle string
	ServiceName    string
	Price          float64
	CreatedAt      time.Time
}
