package realty

import (
	"context"

	"cottagesheets/internal/domain"
)

// RealtyRepositoryInterface - справочник объектов недвижимости.
type RealtyRepositoryInterface interface {
	GetByID(ctx context.Context, id int64) (*domain.Realty, error)
	ListAll(ctx context.Context) ([]domain.Realty, error)
	SyncNames(ctx context.Context, names []string) error
	UpdateName(ctx context.Context, id int64, name string) error
	UpdateActive(ctx context.Context, id int64, active bool) error
}

// BookingRenamerInterface - каскадное переименование объекта в бронированиях.
type BookingRenamerInterface interface {
	RenameApartment(ctx context.Context, oldTitle, newTitle string) (int64, error)
}

// TitleSourceInterface - названия объектов по всем таблицам для синхронизации.
type TitleSourceInterface interface {
	UniqueApartmentTitles(ctx context.Context) ([]string, error)
}
