package webhook

import (
	"context"
	"fmt"
	"time"

	"cottagesheets/internal/domain"

	"github.com/rs/zerolog/log"
)

var webhookTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Service превращает события календаря в строки таблицы bookings.
type Service struct {
	bookings BookingRepositoryInterface
	notifier EventNotifier
}

func NewService(bookings BookingRepositoryInterface, notifier EventNotifier) *Service {
	return &Service{
		bookings: bookings,
		notifier: notifier,
	}
}

// ProcessEvent делает upsert бронирования по внешнему id. Для delete_booking
// строка остается в базе с is_delete=true и статусом deleted.
func (s *Service) ProcessEvent(ctx context.Context, event Event) (*EventResult, error) {
	if event.Action == "" || event.Data.Booking == nil {
		return nil, ErrMissingBooking
	}

	b, err := s.toDomain(event)
	if err != nil {
		return nil, err
	}

	if err := s.bookings.Upsert(ctx, b); err != nil {
		return nil, err
	}

	log.Info().
		Str("action", event.Action).
		Int64("booking_id", b.ID).
		Str("status", b.Status).
		Str("apartment", b.ApartmentTitle).
		Msg("webhook event processed")

	if s.notifier != nil {
		s.notifier.NotifyBookingEvent(event.Action, b.ID, b.Status, b.ApartmentTitle, b.BeginDate)
	}

	return &EventResult{
		Action:    event.Action,
		BookingID: b.ID,
		Status:    b.Status,
	}, nil
}

func (s *Service) toDomain(event Event) (*domain.Booking, error) {
	p := event.Data.Booking

	beginDate, err := time.Parse("2006-01-02", p.BeginDate)
	if err != nil {
		return nil, fmt.Errorf("%w: begin_date %q", ErrBadPayload, p.BeginDate)
	}
	endDate, err := time.Parse("2006-01-02", p.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: end_date %q", ErrBadPayload, p.EndDate)
	}

	status := event.Status
	if status == "" {
		status = domain.BookingStatusBooked
	}

	b := &domain.Booking{
		ID:               p.ID,
		Action:           event.Action,
		Status:           status,
		BeginDate:        beginDate,
		EndDate:          endDate,
		RealtyID:         p.RealtyID,
		ClientID:         p.ClientID,
		Amount:           p.Amount,
		Prepayment:       p.Prepayment,
		Payment:          p.Payment,
		PlatformTax:      p.PlatformTax,
		BalanceToBePaid1: p.BalanceToBePaid1,
		ArrivalTime:      p.ArrivalTime,
		DepartureTime:    p.DepartureTime,
		Notes:            p.Notes,
		ApartmentAddress: p.Address,
		NumberOfDays:     p.NumberOfDays,
		NumberOfNights:   p.NumberOfNights,
		UpdatedAt:        time.Now(),
	}

	if p.Client != nil {
		b.ClientFIO = p.Client.FIO
		b.ClientPhone = p.Client.Phone
		b.ClientEmail = p.Client.Email
	}

	if p.Apartment != nil {
		b.ApartmentTitle = p.Apartment.Title
		if p.Apartment.Address != "" {
			b.ApartmentAddress = p.Apartment.Address
		}
	}

	if p.IsDelete != nil {
		b.IsDelete = *p.IsDelete
	}
	if event.Action == domain.ActionDeleteBooking {
		b.IsDelete = true
		b.Status = domain.BookingStatusDeleted
	}

	b.WebhookCreatedAt = parseWebhookTime(p.CreatedAt)
	b.WebhookUpdatedAt = parseWebhookTime(p.UpdatedAt)

	return b, nil
}

// parseWebhookTime принимает несколько форматов: календарь присылает то
// полный timestamp, то голую дату.
func parseWebhookTime(value *string) *time.Time {
	if value == nil || *value == "" {
		return nil
	}
	for _, layout := range webhookTimeLayouts {
		if t, err := time.Parse(layout, *value); err == nil {
			return &t
		}
	}
	return nil
}
