package booking

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"cottagesheets/internal/domain"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Service собирает шахматку заселений и выселений и управляет
// услугами, привязанными к бронированиям.
type Service struct {
	bookings        BookingRepositoryInterface
	bookingServices BookingServiceRepositoryInterface
	catalog         ServiceCatalogInterface
}

func NewService(bookings BookingRepositoryInterface, bookingServices BookingServiceRepositoryInterface, catalog ServiceCatalogInterface) *Service {
	return &Service{
		bookings:        bookings,
		bookingServices: bookingServices,
		catalog:         catalog,
	}
}

// groupedRow - внутренняя строка шахматки до конвертации в DTO.
type groupedRow struct {
	address        string
	date           time.Time
	checkout       *domain.Booking
	checkin        *domain.Booking
	isFirstInGroup bool
	isLastInGroup  bool
	isSingleRow    bool
	hasDuplicate   bool
}

// groupBookings раскладывает бронирования по строкам шахматки.
// Строка = объект + дата: в ней выселение уходящего гостя и заселение нового.
// Дубли объектов получают флаги границ, чтобы интерфейс рисовал их одной рамкой.
func groupBookings(bookings []domain.Booking) []*groupedRow {
	type groupKey struct {
		title string
		date  string
	}

	byKey := make(map[groupKey]*groupedRow)
	rows := make([]*groupedRow, 0, len(bookings))

	for i := range bookings {
		b := &bookings[i]
		key := groupKey{title: b.ApartmentTitle, date: b.BeginDate.Format("2006-01-02")}

		row, ok := byKey[key]
		if !ok {
			row = &groupedRow{address: b.ApartmentTitle, date: b.BeginDate}
			byKey[key] = row
			rows = append(rows, row)
		}

		status := strings.ToLower(b.Status)
		if strings.Contains(status, "выс") || status == "checkout" {
			row.checkout = b
		}
		if strings.Contains(status, "зас") || status == "checkin" || status == "booked" {
			row.checkin = b
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if !a.date.Equal(b.date) {
			return a.date.After(b.date)
		}
		aBase, bBase := domain.BaseAddress(a.address), domain.BaseAddress(b.address)
		if aBase != bBase {
			return aBase > bBase
		}
		return a.address > b.address
	})

	// Дубли объединяются по базовому адресу независимо от даты заезда.
	groups := make(map[string][]*groupedRow)
	for _, row := range rows {
		base := domain.BaseAddress(row.address)
		groups[base] = append(groups[base], row)
	}
	for _, group := range groups {
		for i, row := range group {
			row.isFirstInGroup = i == 0
			row.isLastInGroup = i == len(group)-1
			row.isSingleRow = len(group) == 1
			row.hasDuplicate = len(group) > 1
		}
	}

	return rows
}

func collectBookingIDs(rows []*groupedRow) []int64 {
	seen := make(map[int64]struct{}, len(rows)*2)
	ids := make([]int64, 0, len(rows)*2)
	add := func(b *domain.Booking) {
		if b == nil {
			return
		}
		if _, ok := seen[b.ID]; ok {
			return
		}
		seen[b.ID] = struct{}{}
		ids = append(ids, b.ID)
	}
	for _, row := range rows {
		add(row.checkout)
		add(row.checkin)
	}
	return ids
}

// GroupedBookings возвращает строки шахматки с деньгами за вычетом
// комиссии площадки и суммой доп. услуг по каждой карточке.
func (s *Service) GroupedBookings(ctx context.Context, filterDate *time.Time) ([]GroupRow, error) {
	items, err := s.bookings.ListForGrouping(ctx, filterDate)
	if err != nil {
		return nil, err
	}

	rows := groupBookings(items)

	totals, err := s.bookingServices.SumByBookingIDs(ctx, collectBookingIDs(rows))
	if err != nil {
		return nil, err
	}

	result := make([]GroupRow, 0, len(rows))
	for _, row := range rows {
		result = append(result, GroupRow{
			Address:        row.address,
			Date:           row.date.Format("2006-01-02"),
			Checkout:       toCard(row.checkout, totals),
			Checkin:        toCard(row.checkin, totals),
			IsFirstInGroup: row.isFirstInGroup,
			IsLastInGroup:  row.isLastInGroup,
			IsSingleRow:    row.isSingleRow,
			HasDuplicate:   row.hasDuplicate,
		})
	}
	return result, nil
}

func toCard(b *domain.Booking, servicesTotals map[int64]float64) *BookingCard {
	if b == nil {
		return nil
	}
	return &BookingCard{
		ID:                 b.ID,
		Status:             b.Status,
		ClientFIO:          b.ClientFIO,
		ClientPhone:        b.ClientPhone,
		BeginDate:          b.BeginDate.Format("2006-01-02"),
		EndDate:            b.EndDate.Format("2006-01-02"),
		NumberOfNights:     b.NumberOfNights,
		ArrivalTime:        b.ArrivalTime,
		DepartureTime:      b.DepartureTime,
		TotalAmount:        b.TotalAmount(),
		PrepaymentAmount:   b.PrepaymentAmount(),
		SurchargeAmount:    b.SurchargeAmount(),
		ServicesTotal:      servicesTotals[b.ID],
		Notes:              b.Notes,
		CheckinDayComments: b.CheckinDayComments,
	}
}

// UpdateCheckinComments сохраняет комментарий оператора на день заселения.
func (s *Service) UpdateCheckinComments(ctx context.Context, bookingID int64, comments string) error {
	err := s.bookings.UpdateCheckinComments(ctx, bookingID, comments)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrBookingNotFound
	}
	if err != nil {
		return err
	}

	log.Info().Int64("booking_id", bookingID).Msg("checkin day comment updated")
	return nil
}

// BookingServices отдает услуги бронирования и их суммарную стоимость.
func (s *Service) BookingServices(ctx context.Context, bookingID int64) ([]domain.BookingServiceRow, float64, error) {
	rows, err := s.bookingServices.ListByBookingWithNames(ctx, bookingID)
	if err != nil {
		return nil, 0, err
	}

	var total float64
	for _, row := range rows {
		total += row.Price
	}
	return rows, total, nil
}

// AttachService добавляет услугу из прайса к бронированию по цене на момент продажи.
func (s *Service) AttachService(ctx context.Context, req AttachServiceRequest) (*domain.BookingService, error) {
	if _, err := s.bookings.GetByID(ctx, req.BookingID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	svc, err := s.catalog.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}

	bs := &domain.BookingService{
		BookingID: req.BookingID,
		ServiceID: svc.ID,
		Price:     req.Price,
	}
	if err := s.bookingServices.Create(ctx, bs); err != nil {
		return nil, err
	}

	log.Info().
		Int64("booking_id", bs.BookingID).
		Int64("service_id", bs.ServiceID).
		Float64("price", bs.Price).
		Msg("service attached to booking")
	return bs, nil
}

// DetachService убирает услугу из бронирования.
func (s *Service) DetachService(ctx context.Context, id int64) error {
	err := s.bookingServices.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrItemNotFound
	}
	if err != nil {
		return err
	}

	log.Info().Int64("booking_service_id", id).Msg("service detached from booking")
	return nil
}
