package repository

import (
	"context"

	"gorm.io/gorm"
)

// TitleRepository собирает названия объектов по всем таблицам-источникам:
// бронирования, поступления и расходы.
type TitleRepository struct {
	db *gorm.DB
}

func NewTitleRepository(db *gorm.DB) *TitleRepository {
	return &TitleRepository{db: db}
}

// UniqueApartmentTitles возвращает отсортированный список названий без пустых.
func (r *TitleRepository) UniqueApartmentTitles(ctx context.Context) ([]string, error) {
	var titles []string
	q := `
SELECT DISTINCT apartment_title FROM (
    SELECT apartment_title FROM bookings
    WHERE apartment_title IS NOT NULL AND apartment_title <> ''
    UNION
    SELECT apartment_title FROM payments
    WHERE apartment_title IS NOT NULL AND apartment_title <> ''
    UNION
    SELECT apartment_title FROM expenses
    WHERE apartment_title IS NOT NULL AND apartment_title <> ''
) AS titles
ORDER BY apartment_title
`
	tx := r.db.WithContext(ctx).Raw(q).Scan(&titles)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return titles, nil
}
