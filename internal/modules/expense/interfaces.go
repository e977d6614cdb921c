package expense

import (
	"context"
	"time"

	"cottagesheets/internal/domain"
)

// ExpenseRepositoryInterface - хранилище расходов.
type ExpenseRepositoryInterface interface {
	Create(ctx context.Context, e *domain.Expense) error
	GetByID(ctx context.Context, id int64) (*domain.Expense, error)
	UpdateFields(ctx context.Context, id int64, fields map[string]any) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, from, to *time.Time, apartmentTitle string) ([]domain.Expense, error)
}

// TitleSourceInterface - названия объектов для выпадающего фильтра.
type TitleSourceInterface interface {
	UniqueApartmentTitles(ctx context.Context) ([]string, error)
}
