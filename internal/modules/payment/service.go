package payment

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"cottagesheets/internal/domain"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Категория, под которой проданные услуги показываются среди поступлений.
const serviceIncomeCategory = "Доп. услуги"

// Service ведет учет поступлений денег и сводит их с проданными услугами.
type Service struct {
	payments        PaymentRepositoryInterface
	bookings        BookingRepositoryInterface
	bookingServices BookingServiceRepositoryInterface
	titles          TitleSourceInterface
}

func NewService(payments PaymentRepositoryInterface, bookings BookingRepositoryInterface, bookingServices BookingServiceRepositoryInterface, titles TitleSourceInterface) *Service {
	return &Service{
		payments:        payments,
		bookings:        bookings,
		bookingServices: bookingServices,
		titles:          titles,
	}
}

// Filters - фильтры списка поступлений: точная дата или период.
type Filters struct {
	Date *time.Time
	From *time.Time
	To   *time.Time
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (f Filters) matches(t time.Time) bool {
	d := dateOnly(t)
	if f.Date != nil && !d.Equal(dateOnly(*f.Date)) {
		return false
	}
	if f.From != nil && d.Before(dateOnly(*f.From)) {
		return false
	}
	if f.To != nil && d.After(dateOnly(*f.To)) {
		return false
	}
	return true
}

// Page собирает контекст страницы поступлений: объединенный список,
// бронирования с услугами для формы, объекты для фильтра и итоги.
// План и факт считаются только по реальным поступлениям.
func (s *Service) Page(ctx context.Context, f Filters) (*PageData, error) {
	real, err := s.payments.List(ctx, f.Date, f.From, f.To, "")
	if err != nil {
		return nil, err
	}

	serviceRows, err := s.bookingServices.ListAsPayments(ctx)
	if err != nil {
		return nil, err
	}

	combined := make([]PaymentRow, 0, len(real)+len(serviceRows))
	for _, p := range real {
		combined = append(combined, toPaymentRow(p))
	}
	for _, row := range serviceRows {
		if !f.matches(row.CreatedAt) {
			continue
		}
		combined = append(combined, serviceAsPaymentRow(row))
	}

	// ISO-даты сравниваются как строки, новые сверху.
	sort.SliceStable(combined, func(i, j int) bool {
		return combined[i].ReceiptDate > combined[j].ReceiptDate
	})

	withServices, err := s.bookingsWithServices(ctx, f.From)
	if err != nil {
		return nil, err
	}

	titles, err := s.titles.UniqueApartmentTitles(ctx)
	if err != nil {
		return nil, err
	}

	var totalPlan, totalFact float64
	for _, p := range real {
		if p.AdvanceForFuture != nil {
			totalPlan += *p.AdvanceForFuture
		}
		totalFact += p.Amount
	}

	return &PageData{
		Payments:             combined,
		BookingsWithServices: withServices,
		UniqueApartments:     titles,
		TotalPlan:            totalPlan,
		TotalFact:            totalFact,
		TotalAdvance:         totalFact - totalPlan,
	}, nil
}

func toPaymentRow(p domain.Payment) PaymentRow {
	return PaymentRow{
		ID:               p.ID,
		BookingID:        p.BookingID,
		BookingServiceID: p.BookingServiceID,
		ApartmentTitle:   p.ApartmentTitle,
		ReceiptDate:      p.ReceiptDate.Format("2006-01-02"),
		ReceiptTime:      p.ReceiptTime,
		Amount:           p.Amount,
		AdvanceForFuture: p.AdvanceForFuture,
		OperationType:    p.OperationType,
		IncomeCategory:   p.IncomeCategory,
		Comment:          p.Comment,
	}
}

func serviceAsPaymentRow(row domain.BookingServicePaymentRow) PaymentRow {
	bookingID := row.BookingID
	serviceID := row.ID
	receiptTime := row.CreatedAt.Format("15:04")
	return PaymentRow{
		ID:                   row.ID,
		BookingID:            &bookingID,
		BookingServiceID:     &serviceID,
		ApartmentTitle:       row.ApartmentTitle,
		ReceiptDate:          row.CreatedAt.Format("2006-01-02"),
		ReceiptTime:          &receiptTime,
		Amount:               row.Price,
		IncomeCategory:       serviceIncomeCategory,
		Comment:              row.ServiceName,
		IsFromBookingService: true,
	}
}

func (s *Service) bookingsWithServices(ctx context.Context, from *time.Time) ([]BookingWithServices, error) {
	bookings, err := s.bookings.ListWithServices(ctx, from)
	if err != nil {
		return nil, err
	}
	if len(bookings) == 0 {
		return []BookingWithServices{}, nil
	}

	ids := make([]int64, 0, len(bookings))
	for _, b := range bookings {
		ids = append(ids, b.ID)
	}

	rows, err := s.bookingServices.ListByBookingIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	lines := make(map[int64][]ServiceLine, len(bookings))
	totals := make(map[int64]float64, len(bookings))
	for _, row := range rows {
		lines[row.BookingID] = append(lines[row.BookingID], ServiceLine{
			ID:    row.ID,
			Name:  row.ServiceName,
			Price: row.Price,
		})
		totals[row.BookingID] += row.Price
	}

	result := make([]BookingWithServices, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, BookingWithServices{
			ID:             b.ID,
			ApartmentTitle: b.ApartmentTitle,
			BeginDate:      b.BeginDate.Format("2006-01-02"),
			Services:       lines[b.ID],
			Total:          totals[b.ID],
		})
	}
	return result, nil
}

// List отдает только реальные поступления, без строк из проданных услуг.
func (s *Service) List(ctx context.Context, f Filters, apartmentTitle string) ([]PaymentListItem, error) {
	payments, err := s.payments.List(ctx, f.Date, f.From, f.To, apartmentTitle)
	if err != nil {
		return nil, err
	}

	items := make([]PaymentListItem, 0, len(payments))
	for _, p := range payments {
		items = append(items, PaymentListItem{
			ID:               p.ID,
			ApartmentTitle:   p.ApartmentTitle,
			ReceiptDate:      p.ReceiptDate.Format("2006-01-02"),
			ReceiptTime:      p.ReceiptTime,
			Amount:           p.Amount,
			AdvanceForFuture: p.AdvanceForFuture,
			OperationType:    p.OperationType,
			IncomeCategory:   p.IncomeCategory,
			Comment:          p.Comment,
		})
	}
	return items, nil
}

// Create создает поступление. Если объект не указан, но есть бронирование,
// название объекта берется из бронирования.
func (s *Service) Create(ctx context.Context, req CreatePaymentRequest) (*domain.Payment, error) {
	apartmentTitle := strings.TrimSpace(req.ApartmentTitle)
	if apartmentTitle == "" && req.BookingID != nil {
		b, err := s.bookings.GetByID(ctx, *req.BookingID)
		switch {
		case err == nil:
			apartmentTitle = b.ApartmentTitle
		case errors.Is(err, gorm.ErrRecordNotFound):
			log.Warn().Int64("booking_id", *req.BookingID).Msg("booking for payment not found")
		default:
			return nil, err
		}
	}
	if apartmentTitle == "" {
		return nil, ErrMissingApartment
	}

	receiptDate, err := time.Parse("2006-01-02", req.ReceiptDate)
	if err != nil {
		return nil, fmt.Errorf("%w: receipt_date %q", ErrBadDate, req.ReceiptDate)
	}

	p := &domain.Payment{
		BookingID:        req.BookingID,
		BookingServiceID: req.BookingServiceID,
		ApartmentTitle:   apartmentTitle,
		ReceiptDate:      receiptDate,
		ReceiptTime:      normalizeTime(req.ReceiptTime),
		Amount:           *req.Amount,
		AdvanceForFuture: req.AdvanceForFuture,
		OperationType:    strings.TrimSpace(req.OperationType),
		IncomeCategory:   strings.TrimSpace(req.IncomeCategory),
		Comment:          strings.TrimSpace(req.Comment),
	}
	if err := s.payments.Create(ctx, p); err != nil {
		return nil, err
	}

	log.Info().
		Int64("payment_id", p.ID).
		Str("apartment", p.ApartmentTitle).
		Float64("amount", p.Amount).
		Msg("payment created")
	return p, nil
}

// normalizeTime приводит время к ЧЧ:ММ, битые значения отбрасывает.
func normalizeTime(value *string) *string {
	if value == nil {
		return nil
	}
	raw := strings.TrimSpace(*value)
	if raw == "" {
		return nil
	}
	t, err := time.Parse("15:04", raw)
	if err != nil {
		log.Warn().Str("value", raw).Msg("malformed receipt time ignored")
		return nil
	}
	normalized := t.Format("15:04")
	return &normalized
}

// Update меняет только переданные поля.
func (s *Service) Update(ctx context.Context, id int64, req UpdatePaymentRequest) error {
	fields := map[string]any{}
	if req.ApartmentTitle != nil {
		fields["apartment_title"] = *req.ApartmentTitle
	}
	if req.ReceiptDate != nil {
		d, err := time.Parse("2006-01-02", *req.ReceiptDate)
		if err != nil {
			return fmt.Errorf("%w: receipt_date %q", ErrBadDate, *req.ReceiptDate)
		}
		fields["receipt_date"] = d
	}
	if req.ReceiptTime != nil {
		if t := normalizeTime(req.ReceiptTime); t != nil {
			fields["receipt_time"] = *t
		}
	}
	if req.Amount != nil {
		fields["amount"] = *req.Amount
	}
	if req.AdvanceForFuture != nil {
		fields["advance_for_future"] = *req.AdvanceForFuture
	}
	if req.OperationType != nil {
		fields["operation_type"] = *req.OperationType
	}
	if req.IncomeCategory != nil {
		fields["income_category"] = *req.IncomeCategory
	}
	if req.Comment != nil {
		fields["comment"] = *req.Comment
	}

	if len(fields) == 0 {
		if _, err := s.payments.GetByID(ctx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPaymentNotFound
			}
			return err
		}
		return nil
	}

	err := s.payments.UpdateFields(ctx, id, fields)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrPaymentNotFound
	}
	if err != nil {
		return err
	}

	log.Info().Int64("payment_id", id).Int("fields", len(fields)).Msg("payment updated")
	return nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	err := s.payments.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrPaymentNotFound
	}
	if err != nil {
		return err
	}

	log.Info().Int64("payment_id", id).Msg("payment deleted")
	return nil
}

// CalculateAdvance считает предоплаты по будущим заездам объекта
// после выбранной даты.
func (s *Service) CalculateAdvance(ctx context.Context, apartmentTitle string, selectedDate time.Time) (float64, error) {
	return s.bookings.SumPrepaymentAfter(ctx, apartmentTitle, selectedDate)
}
