package repository

import (
	"context"
	"time"

	"cottagesheets/internal/domain"

	"gorm.io/gorm"
)

// PlanRepository хранит месячные планы по выручке.
type PlanRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) *PlanRepository {
	return &PlanRepository{db: db}
}

func (r *PlanRepository) Create(ctx context.Context, p *domain.MonthlyPlan) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PlanRepository) ListAll(ctx context.Context) ([]domain.MonthlyPlan, error) {
	var items []domain.MonthlyPlan
	err := r.db.WithContext(ctx).Order("start_date DESC, id DESC").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PlanRepository) UpdateFields(ctx context.Context, id int64, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	fields["updated_at"] = time.Now()

	tx := r.db.WithContext(ctx).Model(&domain.MonthlyPlan{}).
		Where("id = ?", id).
		Updates(fields)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *PlanRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&domain.MonthlyPlan{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
