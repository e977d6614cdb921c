package domain

import "time"

// Payment хранит поступление денег: по бронированию, по услуге или вне их.
type Payment struct {
	ID               int64     `json:"id" gorm:"primaryKey"`
	BookingID        *int64    `json:"booking_id,omitempty" gorm:"index"`
	BookingServiceID *int64    `json:"booking_service_id,omitempty"`
	RealtyID         *int64    `json:"realty_id,omitempty"`
	ApartmentTitle   string    `json:"apartment_title,omitempty" gorm:"index"`
	ReceiptDate      time.Time `json:"receipt_date" gorm:"type:date;not null;index"`
	ReceiptTime      *string   `json:"receipt_time,omitempty"`
	Amount           float64   `json:"amount" gorm:"not null"`
	AdvanceForFuture *float64  `json:"advance_for_future,omitempty"`
	OperationType    string    `json:"operation_type,omitempty"`
	IncomeCategory   string    `json:"income_category,omitempty"`
	Comment          string    `json:"comment,omitempty" gorm:"type:text"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
