package repository

import (
	"context"

	"cottagesheets/internal/domain"

	"gorm.io/gorm"
)

// BookingServiceRepository хранит услуги, привязанные к бронированиям.
type BookingServiceRepository struct {
	db *gorm.DB
}

func NewBookingServiceRepository(db *gorm.DB) *BookingServiceRepository {
	return &BookingServiceRepository{db: db}
}

func (r *BookingServiceRepository) Create(ctx context.Context, bs *domain.BookingService) error {
	return r.db.WithContext(ctx).Create(bs).Error
}

func (r *BookingServiceRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&domain.BookingService{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *BookingServiceRepository) ListByBookingWithNames(ctx context.Context, bookingID int64) ([]domain.BookingServiceRow, error) {
	return r.listRows(ctx, "bs.booking_id = ?", bookingID)
}

func (r *BookingServiceRepository) ListByBookingIDs(ctx context.Context, bookingIDs []int64) ([]domain.BookingServiceRow, error) {
	if len(bookingIDs) == 0 {
		return []domain.BookingServiceRow{}, nil
	}
	return r.listRows(ctx, "bs.booking_id IN ?", bookingIDs)
}

func (r *BookingServiceRepository) listRows(ctx context.Context, cond string, arg interface{}) ([]domain.BookingServiceRow, error) {
	var rows []domain.BookingServiceRow
	q := `
SELECT bs.id, bs.booking_id, bs.service_id, s.name AS service_name, bs.price, bs.created_at
FROM booking_services bs
JOIN services s ON s.id = bs.service_id
WHERE ` + cond + `
ORDER BY bs.created_at ASC, bs.id ASC
`
	tx := r.db.WithContext(ctx).Raw(q, arg).Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rows, nil
}

// ListAsPayments отдает услуги по живым бронированиям для страницы поступлений.
// Фильтрацию по датам делает сервисный слой, здесь только выборка.
func (r *BookingServiceRepository) ListAsPayments(ctx context.Context) ([]domain.BookingServicePaymentRow, error) {
	var rows []domain.BookingServicePaymentRow
	q := `
SELECT bs.id, bs.booking_id, b.apartment_title, s.name AS service_name, bs.price, bs.created_at
FROM booking_services bs
JOIN bookings b ON b.id = bs.booking_id AND b.is_delete = ?
JOIN services s ON s.id = bs.service_id
ORDER BY bs.created_at DESC, bs.id DESC
`
	tx := r.db.WithContext(ctx).Raw(q, false).Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rows, nil
}

// SumByBookingIDs считает суммы услуг сразу для набора бронирований,
// чтобы страница бронирований не делала запрос на каждую строку.
func (r *BookingServiceRepository) SumByBookingIDs(ctx context.Context, bookingIDs []int64) (map[int64]float64, error) {
	totals := make(map[int64]float64, len(bookingIDs))
	if len(bookingIDs) == 0 {
		return totals, nil
	}

	var rows []struct {
		BookingID int64
		Total     float64
	}
	q := `
SELECT booking_id, COALESCE(SUM(price), 0) AS total
FROM booking_services
WHERE booking_id IN ?
GROUP BY booking_id
`
	tx := r.db.WithContext(ctx).Raw(q, bookingIDs).Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	for _, row := range rows {
		totals[row.BookingID] = row.Total
	}
	return totals, nil
}
