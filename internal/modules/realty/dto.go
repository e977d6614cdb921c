package realty

import (
	"time"

	"cottagesheets/internal/domain"
)

// RenameRequest - новое название объекта.
type RenameRequest struct {
	Name string `json:"name" binding:"required"`
}

// RealtyRow - строка справочника объектов.
type RealtyRow struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func toRealtyRow(obj domain.Realty) RealtyRow {
	return RealtyRow{
		ID:        obj.ID,
		Name:      obj.Name,
		IsActive:  obj.IsActive,
		CreatedAt: obj.CreatedAt.Format(time.RFC3339),
		UpdatedAt: obj.UpdatedAt.Format(time.RFC3339),
	}
}
