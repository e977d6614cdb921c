package payment

// CreatePaymentRequest - форма нового поступления.
// Объект можно не указывать, если задано бронирование: название возьмется из него.
type CreatePaymentRequest struct {
	BookingID        *int64   `json:"booking_id"`
	BookingServiceID *int64   `json:"booking_service_id"`
	ApartmentTitle   string   `json:"apartment_title"`
	ReceiptDate      string   `json:"receipt_date" validate:"required,datetime=2006-01-02"`
	ReceiptTime      *string  `json:"receipt_time"`
	Amount           *float64 `json:"amount" validate:"required"`
	AdvanceForFuture *float64 `json:"advance_for_future"`
	OperationType    string   `json:"operation_type"`
	IncomeCategory   string   `json:"income_category"`
	Comment          string   `json:"comment"`
}

// UpdatePaymentRequest - частичное обновление: меняются только переданные поля.
type UpdatePaymentRequest struct {
	ApartmentTitle   *string  `json:"apartment_title"`
	ReceiptDate      *string  `json:"receipt_date" validate:"omitempty,datetime=2006-01-02"`
	ReceiptTime      *string  `json:"receipt_time"`
	Amount           *float64 `json:"amount"`
	AdvanceForFuture *float64 `json:"advance_for_future"`
	OperationType    *string  `json:"operation_type"`
	IncomeCategory   *string  `json:"income_category"`
	Comment          *string  `json:"comment"`
}

// PaymentRow - строка объединенного списка: реальное поступление
// или проданная услуга, показанная как поступление.
type PaymentRow struct {
	ID                   int64    `json:"id"`
	BookingID            *int64   `json:"booking_id"`
	BookingServiceID     *int64   `json:"booking_service_id"`
	ApartmentTitle       string   `json:"apartment_title"`
	ReceiptDate          string   `json:"receipt_date"`
	ReceiptTime          *string  `json:"receipt_time"`
	Amount               float64  `json:"amount"`
	AdvanceForFuture     *float64 `json:"advance_for_future"`
	OperationType        string   `json:"operation_type"`
	IncomeCategory       string   `json:"income_category"`
	Comment              string   `json:"comment"`
	IsFromBookingService bool     `json:"is_from_booking_service"`
}

// PaymentListItem - укороченная строка для /payments/list.
type PaymentListItem struct {
	ID               int64    `json:"id"`
	ApartmentTitle   string   `json:"apartment_title"`
	ReceiptDate      string   `json:"receipt_date"`
	ReceiptTime      *string  `json:"receipt_time"`
	Amount           float64  `json:"amount"`
	AdvanceForFuture *float64 `json:"advance_for_future"`
	OperationType    string   `json:"operation_type"`
	IncomeCategory   string   `json:"income_category"`
	Comment          string   `json:"comment"`
}

// ServiceLine - услуга внутри карточки бронирования на форме поступления.
type ServiceLine struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// BookingWithServices - бронирование с проданными услугами для формы.
type BookingWithServices struct {
	ID             int64         `json:"id"`
	ApartmentTitle string        `json:"apartment_title"`
	BeginDate      string        `json:"begin_date"`
	Services       []ServiceLine `json:"services"`
	Total          float64       `json:"total"`
}

// PageData - полный контекст страницы поступлений.
type PageData struct {
	Payments             []PaymentRow
	BookingsWithServices []BookingWithServices
	UniqueApartments     []string
	TotalPlan            float64
	TotalFact            float64
	TotalAdvance         float64
}
