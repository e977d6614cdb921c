package repository

import (
	"context"
	"time"

	"cottagesheets/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RealtyRepository хранит справочник объектов недвижимости.
type RealtyRepository struct {
	db *gorm.DB
}

func NewRealtyRepository(db *gorm.DB) *RealtyRepository {
	return &RealtyRepository{db: db}
}

func (r *RealtyRepository) GetByID(ctx context.Context, id int64) (*domain.Realty, error) {
	var obj domain.Realty
	err := r.db.WithContext(ctx).First(&obj, id).Error
	if err != nil {
		return nil, err
	}
	return &obj, nil
}

func (r *RealtyRepository) ListAll(ctx context.Context) ([]domain.Realty, error) {
	var items []domain.Realty
	err := r.db.WithContext(ctx).Order("name ASC").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// SyncNames дописывает в справочник названия, которых еще нет.
func (r *RealtyRepository) SyncNames(ctx context.Context, names []string) error {
	if len(names) == 0 {
		return nil
	}

	now := time.Now()
	items := make([]domain.Realty, 0, len(names))
	for _, name := range names {
		items = append(items, domain.Realty{
			Name:      name,
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&items).Error
}

func (r *RealtyRepository) UpdateName(ctx context.Context, id int64, name string) error {
	tx := r.db.WithContext(ctx).Model(&domain.Realty{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"name":       name,
			"updated_at": time.Now(),
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *RealtyRepository) UpdateActive(ctx context.Context, id int64, active bool) error {
	tx := r.db.WithContext(ctx).Model(&domain.Realty{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"is_active":  active,
			"updated_at": time.Now(),
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
