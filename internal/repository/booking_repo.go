package repository

import (
	"context"
	"time"

	"cottagesheets/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID                 int64      `gorm:"column:id;primaryKey"`
	Action             string     `gorm:"column:action"`
	Status             string     `gorm:"column:status"`
	BeginDate          time.Time  `gorm:"column:begin_date"`
	EndDate            time.Time  `gorm:"column:end_date"`
	RealtyID           int64      `gorm:"column:realty_id"`
	ClientID           *int64     `gorm:"column:client_id"`
	Amount             *float64   `gorm:"column:amount"`
	Prepayment         *float64   `gorm:"column:prepayment"`
	Payment            *float64   `gorm:"column:payment"`
	PlatformTax        *float64   `gorm:"column:platform_tax"`
	BalanceToBePaid1   *float64   `gorm:"column:balance_to_be_paid_1"`
	ArrivalTime        *string    `gorm:"column:arrival_time"`
	DepartureTime      *string    `gorm:"column:departure_time"`
	Notes              string     `gorm:"column:notes"`
	CheckinDayComments string     `gorm:"column:checkin_day_comments"`
	ClientFIO          string     `gorm:"column:client_fio"`
	ClientPhone        string     `gorm:"column:client_phone"`
	ClientEmail        string     `gorm:"column:client_email"`
	ApartmentTitle     string     `gorm:"column:apartment_title"`
	ApartmentAddress   string     `gorm:"column:apartment_address"`
	NumberOfDays       *int       `gorm:"column:number_of_days"`
	NumberOfNights     *int       `gorm:"column:number_of_nights"`
	IsDelete           bool       `gorm:"column:is_delete"`
	CreatedAt          time.Time  `gorm:"column:created_at"`
	UpdatedAt          time.Time  `gorm:"column:updated_at"`
	WebhookCreatedAt   *time.Time `gorm:"column:webhook_created_at"`
	WebhookUpdatedAt   *time.Time `gorm:"column:webhook_updated_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	return &domain.Booking{
		ID:                 m.ID,
		Action:             m.Action,
		Status:             m.Status,
		BeginDate:          m.BeginDate,
		EndDate:            m.EndDate,
		RealtyID:           m.RealtyID,
		ClientID:           m.ClientID,
		Amount:             m.Amount,
		Prepayment:         m.Prepayment,
		Payment:            m.Payment,
		PlatformTax:        m.PlatformTax,
		BalanceToBePaid1:   m.BalanceToBePaid1,
		ArrivalTime:        m.ArrivalTime,
		DepartureTime:      m.DepartureTime,
		Notes:              m.Notes,
		CheckinDayComments: m.CheckinDayComments,
		ClientFIO:          m.ClientFIO,
		ClientPhone:        m.ClientPhone,
		ClientEmail:        m.ClientEmail,
		ApartmentTitle:     m.ApartmentTitle,
		ApartmentAddress:   m.ApartmentAddress,
		NumberOfDays:       m.NumberOfDays,
		NumberOfNights:     m.NumberOfNights,
		IsDelete:           m.IsDelete,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
		WebhookCreatedAt:   m.WebhookCreatedAt,
		WebhookUpdatedAt:   m.WebhookUpdatedAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	return bookingModel{
		ID:                 b.ID,
		Action:             b.Action,
		Status:             b.Status,
		BeginDate:          b.BeginDate,
		EndDate:            b.EndDate,
		RealtyID:           b.RealtyID,
		ClientID:           b.ClientID,
		Amount:             b.Amount,
		Prepayment:         b.Prepayment,
		Payment:            b.Payment,
		PlatformTax:        b.PlatformTax,
		BalanceToBePaid1:   b.BalanceToBePaid1,
		ArrivalTime:        b.ArrivalTime,
		DepartureTime:      b.DepartureTime,
		Notes:              b.Notes,
		CheckinDayComments: b.CheckinDayComments,
		ClientFIO:          b.ClientFIO,
		ClientPhone:        b.ClientPhone,
		ClientEmail:        b.ClientEmail,
		ApartmentTitle:     b.ApartmentTitle,
		ApartmentAddress:   b.ApartmentAddress,
		NumberOfDays:       b.NumberOfDays,
		NumberOfNights:     b.NumberOfNights,
		IsDelete:           b.IsDelete,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
		WebhookCreatedAt:   b.WebhookCreatedAt,
		WebhookUpdatedAt:   b.WebhookUpdatedAt,
	}
}

// Upsert вставляет бронирование или обновляет все колонки из календаря.
// checkin_day_comments не трогаем: поле заполняют операторы, не webhook.
func (r *BookingRepository) Upsert(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	tx := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"action", "status", "begin_date", "end_date", "realty_id", "client_id",
			"amount", "prepayment", "payment", "platform_tax", "balance_to_be_paid_1",
			"arrival_time", "departure_time", "notes",
			"client_fio", "client_phone", "client_email",
			"apartment_title", "apartment_address",
			"number_of_days", "number_of_nights", "is_delete",
			"updated_at", "webhook_created_at", "webhook_updated_at",
		}),
	}).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

func (r *BookingRepository) UpdateCheckinComments(ctx context.Context, id int64, comments string) error {
	tx := r.db.WithContext(ctx).Model(&bookingModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"checkin_day_comments": comments,
			"updated_at":           time.Now(),
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListForGrouping отдает неудаленные бронирования для группировки по датам.
// Фильтр совпадает либо с датой заезда, либо с датой выезда.
func (r *BookingRepository) ListForGrouping(ctx context.Context, filterDate *time.Time) ([]domain.Booking, error) {
	q := r.db.WithContext(ctx).Where("is_delete = ?", false)
	if filterDate != nil {
		q = q.Where("(begin_date = ? OR end_date = ?)", *filterDate, *filterDate)
	}

	var models []bookingModel
	tx := q.Order("begin_date DESC, id DESC").Limit(1000).Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	bookings := make([]domain.Booking, 0, len(models))
	for _, m := range models {
		bookings = append(bookings, *toDomainBooking(m))
	}
	return bookings, nil
}

// ListByBeginDateRange отдает неудаленные бронирования с заездом в [from, to).
func (r *BookingRepository) ListByBeginDateRange(ctx context.Context, from, to time.Time) ([]domain.Booking, error) {
	var models []bookingModel
	tx := r.db.WithContext(ctx).
		Where("is_delete = ? AND begin_date >= ? AND begin_date < ?", false, from, to).
		Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	bookings := make([]domain.Booking, 0, len(models))
	for _, m := range models {
		bookings = append(bookings, *toDomainBooking(m))
	}
	return bookings, nil
}

// SumPrepaymentAfter считает сумму предоплат будущих заездов объекта.
func (r *BookingRepository) SumPrepaymentAfter(ctx context.Context, apartmentTitle string, after time.Time) (float64, error) {
	var total float64
	q := `
SELECT COALESCE(SUM(prepayment), 0)
FROM bookings
WHERE is_delete = ?
  AND apartment_title = ?
  AND begin_date > ?
`
	tx := r.db.WithContext(ctx).Raw(q, false, apartmentTitle, after).Scan(&total)
	if tx.Error != nil {
		return 0, tx.Error
	}
	return total, nil
}

// ListWithServices отдает неудаленные бронирования, к которым привязана
// хотя бы одна услуга. from ограничивает дату заезда снизу.
func (r *BookingRepository) ListWithServices(ctx context.Context, from *time.Time) ([]domain.Booking, error) {
	q := r.db.WithContext(ctx).
		Where("is_delete = ?", false).
		Where("id IN (SELECT DISTINCT booking_id FROM booking_services)")
	if from != nil {
		q = q.Where("begin_date >= ?", *from)
	}

	var models []bookingModel
	tx := q.Order("begin_date DESC, id DESC").Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	bookings := make([]domain.Booking, 0, len(models))
	for _, m := range models {
		bookings = append(bookings, *toDomainBooking(m))
	}
	return bookings, nil
}

// RenameApartment переносит бронирования со старого названия объекта на новое.
func (r *BookingRepository) RenameApartment(ctx context.Context, oldTitle, newTitle string) (int64, error) {
	tx := r.db.WithContext(ctx).Model(&bookingModel{}).
		Where("apartment_title = ?", oldTitle).
		Updates(map[string]any{
			"apartment_title": newTitle,
			"updated_at":      time.Now(),
		})
	return tx.RowsAffected, tx.Error
}
