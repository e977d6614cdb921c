package catalog

import (
	"context"

	"cottagesheets/internal/domain"
)

// ServiceRepositoryInterface - хранилище справочника услуг.
type ServiceRepositoryInterface interface {
	Create(ctx context.Context, s *domain.Service) error
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
	ListActive(ctx context.Context) ([]domain.Service, error)
	ListAll(ctx context.Context) ([]domain.Service, error)
	UpdateName(ctx context.Context, id int64, name string) error
	UpdateActive(ctx context.Context, id int64, active bool) error
}
