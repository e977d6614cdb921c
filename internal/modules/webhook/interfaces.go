package webhook

import (
	"context"
	"time"

	"cottagesheets/internal/domain"
)

// BookingRepositoryInterface - запись бронирований из календаря.
type BookingRepositoryInterface interface {
	Upsert(ctx context.Context, b *domain.Booking) error
}

// EventNotifier рассылает событие подключенным операторам.
type EventNotifier interface {
	NotifyBookingEvent(action string, bookingID int64, status, apartmentTitle string, beginDate time.Time)
}
