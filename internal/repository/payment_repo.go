package repository

import (
	"context"
	"time"

	"cottagesheets/internal/domain"

	"gorm.io/gorm"
)

// PaymentRepository хранит поступления денег.
type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PaymentRepository) GetByID(ctx context.Context, id int64) (*domain.Payment, error) {
	var p domain.Payment
	err := r.db.WithContext(ctx).First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateFields применяет частичное обновление только переданных колонок.
func (r *PaymentRepository) UpdateFields(ctx context.Context, id int64, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	fields["updated_at"] = time.Now()

	tx := r.db.WithContext(ctx).Model(&domain.Payment{}).
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

func (r *PaymentRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&domain.Payment{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// List отдает платежи с фильтрами: точная дата, период поступления, объект.
func (r *PaymentRepository) List(ctx context.Context, filterDate, from, to *time.Time, apartmentTitle string) ([]domain.Payment, error) {
	q := r.db.WithContext(ctx)
	if filterDate != nil {
		q = q.Where("receipt_date = ?", *filterDate)
	}
	if from != nil {
		q = q.Where("receipt_date >= ?", *from)
	}
	if to != nil {
		q = q.Where("receipt_date <= ?", *to)
	}
	if apartmentTitle != "" {
		q = q.Where("apartment_title = ?", apartmentTitle)
	}

	var items []domain.Payment
	err := q.Order("receipt_date DESC, id DESC").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PaymentRepository) ListByReceiptDateRange(ctx context.Context, from, to time.Time) ([]domain.Payment, error) {
	var items []domain.Payment
	err := r.db.WithContext(ctx).
		Where("receipt_date >= ? AND receipt_date < ?", from, to).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
