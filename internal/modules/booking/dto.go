package booking

// UpdateCommentRequest - комментарий оператора на день заселения.
type UpdateCommentRequest struct {
	BookingID int64  `json:"booking_id" binding:"required"`
	Comments  string `json:"comments"`
}

// AttachServiceRequest привязывает услугу из прайса к бронированию.
type AttachServiceRequest struct {
	BookingID int64   `json:"booking_id" binding:"required"`
	ServiceID int64   `json:"service_id" binding:"required"`
	Price     float64 `json:"price" binding:"required,gt=0"`
}

// BookingCard - одна карточка (выселение или заселение) внутри строки шахматки.
// Деньги показываются за вычетом комиссии площадки.
type BookingCard struct {
	ID                 int64   `json:"id"`
	Status             string  `json:"status"`
	ClientFIO          string  `json:"client_fio"`
	ClientPhone        string  `json:"client_phone"`
	BeginDate          string  `json:"begin_date"`
	EndDate            string  `json:"end_date"`
	NumberOfNights     *int    `json:"number_of_nights,omitempty"`
	ArrivalTime        *string `json:"arrival_time,omitempty"`
	DepartureTime      *string `json:"departure_time,omitempty"`
	TotalAmount        float64 `json:"total_amount"`
	PrepaymentAmount   float64 `json:"prepayment_amount"`
	SurchargeAmount    float64 `json:"surcharge_amount"`
	ServicesTotal      float64 `json:"services_total"`
	Notes              string  `json:"notes"`
	CheckinDayComments string  `json:"checkin_day_comments"`
}

// GroupRow - строка шахматки: выселение и заселение одного объекта на одну дату.
type GroupRow struct {
	Address        string       `json:"address"`
	Date           string       `json:"date"`
	Checkout       *BookingCard `json:"checkout"`
	Checkin        *BookingCard `json:"checkin"`
	IsFirstInGroup bool         `json:"is_first_in_group"`
	IsLastInGroup  bool         `json:"is_last_in_group"`
	IsSingleRow    bool         `json:"is_single_row"`
	HasDuplicate   bool         `json:"has_duplicate"`
}
