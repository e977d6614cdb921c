package payment

import (
	"context"
	"time"

	"cottagesheets/internal/domain"
)

// PaymentRepositoryInterface - хранилище поступлений.
type PaymentRepositoryInterface interface {
	Create(ctx context.Context, p *domain.Payment) error
	GetByID(ctx context.Context, id int64) (*domain.Payment, error)
	UpdateFields(ctx context.Context, id int64, fields map[string]any) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filterDate, from, to *time.Time, apartmentTitle string) ([]domain.Payment, error)
}

// BookingRepositoryInterface - бронирования для подстановки объекта и авансов.
type BookingRepositoryInterface interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ListWithServices(ctx context.Context, from *time.Time) ([]domain.Booking, error)
	SumPrepaymentAfter(ctx context.Context, apartmentTitle string, after time.Time) (float64, error)
}

// BookingServiceRepositoryInterface - проданные услуги, показываемые как поступления.
type BookingServiceRepositoryInterface interface {
	ListAsPayments(ctx context.Context) ([]domain.BookingServicePaymentRow, error)
	ListByBookingIDs(ctx context.Context, bookingIDs []int64) ([]domain.BookingServiceRow, error)
}

// TitleSourceInterface - названия объектов по всем таблицам.
type TitleSourceInterface interface {
	UniqueApartmentTitles(ctx context.Context) ([]string, error)
}
