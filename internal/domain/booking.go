package domain

import "time"

// Действия, приходящие из webhook календаря бронирований.
const (
	ActionCreateBooking = "create_booking"
	ActionUpdateBooking = "update_booking"
	ActionDeleteBooking = "delete_booking"
)

const (
	BookingStatusBooked  = "booked"
	BookingStatusDeleted = "deleted"
)

// Booking хранит бронирование, полученное из внешнего календаря.
// ID приходит из внешней системы, не автоинкремент.
type Booking struct {
	ID     int64  `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Action string `json:"action" gorm:"not null"`
	Status string `json:"status" gorm:"not null"`

	BeginDate time.Time `json:"begin_date" gorm:"type:date;not null;index"`
	EndDate   time.Time `json:"end_date" gorm:"type:date;not null"`

	RealtyID int64  `json:"realty_id" gorm:"not null"`
	ClientID *int64 `json:"client_id,omitempty"`

	Amount           *float64 `json:"amount,omitempty"`
	Prepayment       *float64 `json:"prepayment,omitempty"`
	Payment          *float64 `json:"payment,omitempty"`
	PlatformTax      *float64 `json:"platform_tax,omitempty"`
	BalanceToBePaid1 *float64 `json:"balance_to_be_paid_1,omitempty" gorm:"column:balance_to_be_paid_1"`

	ArrivalTime   *string `json:"arrival_time,omitempty"`
	DepartureTime *string `json:"departure_time,omitempty"`

	Notes              string `json:"notes,omitempty" gorm:"type:text"`
	CheckinDayComments string `json:"checkin_day_comments,omitempty" gorm:"type:text"`

	ClientFIO   string `json:"client_fio,omitempty"`
	ClientPhone string `json:"client_phone,omitempty"`
	ClientEmail string `json:"client_email,omitempty"`

	ApartmentTitle   string `json:"apartment_title,omitempty" gorm:"index"`
	ApartmentAddress string `json:"apartment_address,omitempty"`

	NumberOfDays   *int `json:"number_of_days,omitempty"`
	NumberOfNights *int `json:"number_of_nights,omitempty"`

	IsDelete  bool      `json:"is_delete" gorm:"index;default:false"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	WebhookCreatedAt *time.Time `json:"webhook_created_at,omitempty"`
	WebhookUpdatedAt *time.Time `json:"webhook_updated_at,omitempty"`
}

// TotalAmount возвращает общую сумму за вычетом комиссии площадки.
func (b *Booking) TotalAmount() float64 {
	var amount, tax float64
	if b.Amount != nil {
		amount = *b.Amount
	}
	if b.PlatformTax != nil {
		tax = *b.PlatformTax
	}
	return amount - tax
}

// PrepaymentAmount возвращает предоплату за вычетом комиссии площадки.
func (b *Booking) PrepaymentAmount() float64 {
	var prepayment, tax float64
	if b.Prepayment != nil {
		prepayment = *b.Prepayment
	}
	if b.PlatformTax != nil {
		tax = *b.PlatformTax
	}
	return prepayment - tax
}

// SurchargeAmount возвращает доплату: balance_to_be_paid_1 из календаря,
// либо разницу между общей суммой и предоплатой, если поле не заполнено.
func (b *Booking) SurchargeAmount() float64 {
	if b.BalanceToBePaid1 != nil {
		return *b.BalanceToBePaid1
	}
	return b.TotalAmount() - b.PrepaymentAmount()
}
