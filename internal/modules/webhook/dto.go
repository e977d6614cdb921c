package webhook

// Event - событие из внешнего календаря бронирований.
// Неизвестные поля игнорируются.
type Event struct {
	Action string    `json:"action"`
	Status string    `json:"status"`
	Data   EventData `json:"data"`
}

type EventData struct {
	Booking *BookingPayload `json:"booking"`
}

type ClientPayload struct {
	ID    *int64 `json:"id"`
	FIO   string `json:"fio"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type ApartmentPayload struct {
	ID      *int64 `json:"id"`
	Title   string `json:"title"`
	Address string `json:"address"`
}

type BookingPayload struct {
	ID               int64             `json:"id"`
	BeginDate        string            `json:"begin_date"`
	EndDate          string            `json:"end_date"`
	RealtyID         int64             `json:"realty_id"`
	ClientID         *int64            `json:"client_id"`
	Amount           *float64          `json:"amount"`
	Prepayment       *float64          `json:"prepayment"`
	Payment          *float64          `json:"payment"`
	PlatformTax      *float64          `json:"platform_tax"`
	BalanceToBePaid1 *float64          `json:"balance_to_be_paid_1"`
	ArrivalTime      *string           `json:"arrival_time"`
	DepartureTime    *string           `json:"departure_time"`
	Notes            string            `json:"notes"`
	Client           *ClientPayload    `json:"client"`
	Apartment        *ApartmentPayload `json:"apartment"`
	Address          string            `json:"address"`
	NumberOfDays     *int              `json:"number_of_days"`
	NumberOfNights   *int              `json:"number_of_nights"`
	IsDelete         *bool             `json:"is_delete"`
	CreatedAt        *string           `json:"created_at"`
	UpdatedAt        *string           `json:"updated_at"`
}

// EventResult - итог обработки одного события.
type EventResult struct {
	Action    string `json:"action"`
	BookingID int64  `json:"booking_id"`
	Status    string `json:"status"`
}
