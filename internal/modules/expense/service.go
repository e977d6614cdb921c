package expense

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cottagesheets/internal/domain"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Service ведет учет расходов: по конкретным домам и общехозяйственных.
type Service struct {
	expenses ExpenseRepositoryInterface
	titles   TitleSourceInterface
}

func NewService(expenses ExpenseRepositoryInterface, titles TitleSourceInterface) *Service {
	return &Service{expenses: expenses, titles: titles}
}

// Filters - период и объект для выборки расходов.
type Filters struct {
	From           *time.Time
	To             *time.Time
	ApartmentTitle string
}

func toExpenseRow(e domain.Expense) ExpenseRow {
	return ExpenseRow{
		ID:             e.ID,
		ApartmentTitle: e.ApartmentTitle,
		ExpenseDate:    e.ExpenseDate.Format("2006-01-02"),
		Amount:         e.Amount,
		Category:       e.Category,
		Comment:        e.Comment,
	}
}

// Page собирает контекст страницы расходов: список, объекты для фильтра
// и сумму по отфильтрованному списку.
func (s *Service) Page(ctx context.Context, f Filters) (*PageData, error) {
	rows, err := s.List(ctx, f)
	if err != nil {
		return nil, err
	}

	titles, err := s.titles.UniqueApartmentTitles(ctx)
	if err != nil {
		return nil, err
	}

	var total float64
	for _, row := range rows {
		total += row.Amount
	}

	return &PageData{
		Expenses:         rows,
		UniqueApartments: titles,
		TotalExpenses:    total,
	}, nil
}

func (s *Service) List(ctx context.Context, f Filters) ([]ExpenseRow, error) {
	items, err := s.expenses.List(ctx, f.From, f.To, f.ApartmentTitle)
	if err != nil {
		return nil, err
	}

	rows := make([]ExpenseRow, 0, len(items))
	for _, e := range items {
		rows = append(rows, toExpenseRow(e))
	}
	return rows, nil
}

func (s *Service) Create(ctx context.Context, req CreateExpenseRequest) (*domain.Expense, error) {
	expenseDate, err := time.Parse("2006-01-02", req.ExpenseDate)
	if err != nil {
		return nil, fmt.Errorf("%w: expense_date %q", ErrBadDate, req.ExpenseDate)
	}

	e := &domain.Expense{
		ApartmentTitle: strings.TrimSpace(req.ApartmentTitle),
		ExpenseDate:    expenseDate,
		Amount:         *req.Amount,
		Category:       strings.TrimSpace(req.Category),
		Comment:        strings.TrimSpace(req.Comment),
	}
	if err := s.expenses.Create(ctx, e); err != nil {
		return nil, err
	}

	log.Info().
		Int64("expense_id", e.ID).
		Str("apartment", e.ApartmentTitle).
		Float64("amount", e.Amount).
		Msg("expense created")
	return e, nil
}

// Update меняет только переданные поля.
func (s *Service) Update(ctx context.Context, id int64, req UpdateExpenseRequest) error {
	fields := map[string]any{}
	if req.ApartmentTitle != nil {
		fields["apartment_title"] = strings.TrimSpace(*req.ApartmentTitle)
	}
	if req.ExpenseDate != nil {
		d, err := time.Parse("2006-01-02", *req.ExpenseDate)
		if err != nil {
			return fmt.Errorf("%w: expense_date %q", ErrBadDate, *req.ExpenseDate)
		}
		fields["expense_date"] = d
	}
	if req.Amount != nil {
		fields["amount"] = *req.Amount
	}
	if req.Category != nil {
		fields["category"] = strings.TrimSpace(*req.Category)
	}
	if req.Comment != nil {
		fields["comment"] = strings.TrimSpace(*req.Comment)
	}

	if len(fields) == 0 {
		if _, err := s.expenses.GetByID(ctx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrExpenseNotFound
			}
			return err
		}
		return nil
	}

	err := s.expenses.UpdateFields(ctx, id, fields)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrExpenseNotFound
	}
	if err != nil {
		return err
	}

	log.Info().Int64("expense_id", id).Int("fields", len(fields)).Msg("expense updated")
	return nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	err := s.expenses.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrExpenseNotFound
	}
	if err != nil {
		return err
	}

	log.Info().Int64("expense_id", id).Msg("expense deleted")
	return nil
}
