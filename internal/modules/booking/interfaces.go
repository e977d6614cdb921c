package booking

import (
	"context"
	"time"

	"cottagesheets/internal/domain"
)

// BookingRepositoryInterface - чтение бронирований для шахматки.
type BookingRepositoryInterface interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ListForGrouping(ctx context.Context, filterDate *time.Time) ([]domain.Booking, error)
	UpdateCheckinComments(ctx context.Context, id int64, comments string) error
}

// BookingServiceRepositoryInterface - услуги, привязанные к бронированиям.
type BookingServiceRepositoryInterface interface {
	Create(ctx context.Context, bs *domain.BookingService) error
	Delete(ctx context.Context, id int64) error
	ListByBookingWithNames(ctx context.Context, bookingID int64) ([]domain.BookingServiceRow, error)
	SumByBookingIDs(ctx context.Context, bookingIDs []int64) (map[int64]float64, error)
}

// ServiceCatalogInterface - справочник услуг для проверки существования.
type ServiceCatalogInterface interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}
