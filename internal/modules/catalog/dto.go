package catalog

import (
	"time"

	"cottagesheets/internal/domain"
)

// ServiceNameRequest - тело запроса создания или переименования услуги.
type ServiceNameRequest struct {
	Name string `json:"name"`
}

// ServiceOption - короткая запись для выпадающих списков.
type ServiceOption struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ServiceInfo - полная запись для страницы управления услугами.
type ServiceInfo struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func toServiceInfo(s domain.Service) ServiceInfo {
	return ServiceInfo{
		ID:        s.ID,
		Name:      s.Name,
		IsActive:  s.IsActive,
		CreatedAt: s.CreatedAt.Format(time.RFC3339),
		UpdatedAt: s.UpdatedAt.Format(time.RFC3339),
	}
}
