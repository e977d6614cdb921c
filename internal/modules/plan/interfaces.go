package plan

import (
	"context"

	"cottagesheets/internal/domain"
)

// PlanRepositoryInterface - хранилище месячных планов.
type PlanRepositoryInterface interface {
	Create(ctx context.Context, p *domain.MonthlyPlan) error
	ListAll(ctx context.Context) ([]domain.MonthlyPlan, error)
	UpdateFields(ctx context.Context, id int64, fields map[string]any) error
	Delete(ctx context.Context, id int64) error
}
