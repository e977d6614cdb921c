package repository

import (
	"context"
	"time"

	"cottagesheets/internal/domain"

	"gorm.io/gorm"
)

// ExpenseRepository хранит расходы по объектам и общехозяйственные.
type ExpenseRepository struct {
	db *gorm.DB
}

func NewExpenseRepository(db *gorm.DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

func (r *ExpenseRepository) Create(ctx context.Context, e *domain.Expense) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *ExpenseRepository) GetByID(ctx context.Context, id int64) (*domain.Expense, error) {
	var e domain.Expense
	err := r.db.WithContext(ctx).First(&e, id).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *ExpenseRepository) UpdateFields(ctx context.Context, id int64, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	fields["updated_at"] = time.Now()

	tx := r.db.WithContext(ctx).Model(&domain.Expense{}).
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

func (r *ExpenseRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&domain.Expense{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ExpenseRepository) List(ctx context.Context, from, to *time.Time, apartmentTitle string) ([]domain.Expense, error) {
	q := r.db.WithContext(ctx)
	if from != nil {
		q = q.Where("expense_date >= ?", *from)
	}
	if to != nil {
		q = q.Where("expense_date <= ?", *to)
	}
	if apartmentTitle != "" {
		q = q.Where("apartment_title = ?", apartmentTitle)
	}

	var items []domain.Expense
	err := q.Order("expense_date DESC, id DESC").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *ExpenseRepository) ListByDateRange(ctx context.Context, from, to time.Time) ([]domain.Expense, error) {
	var items []domain.Expense
	err := r.db.WithContext(ctx).
		Where("expense_date >= ? AND expense_date < ?", from, to).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
