package catalog

import (
	"context"
	"errors"
	"strings"

	"cottagesheets/internal/database"
	"cottagesheets/internal/domain"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Service управляет прайсом дополнительных услуг.
// Услуги не удаляются, а деактивируются: на них ссылаются продажи.
type Service struct {
	services ServiceRepositoryInterface
}

func NewService(services ServiceRepositoryInterface) *Service {
	return &Service{services: services}
}

// ActiveServices отдает услуги для выпадающего списка на шахматке.
func (s *Service) ActiveServices(ctx context.Context) ([]ServiceOption, error) {
	items, err := s.services.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	options := make([]ServiceOption, 0, len(items))
	for _, item := range items {
		options = append(options, ServiceOption{ID: item.ID, Name: item.Name})
	}
	return options, nil
}

// AllServices отдает весь прайс, включая деактивированные услуги.
func (s *Service) AllServices(ctx context.Context) ([]ServiceInfo, error) {
	items, err := s.services.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	infos := make([]ServiceInfo, 0, len(items))
	for _, item := range items {
		infos = append(infos, toServiceInfo(item))
	}
	return infos, nil
}

func (s *Service) Create(ctx context.Context, name string) (*domain.Service, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	svc := &domain.Service{Name: name, IsActive: true}
	if err := s.services.Create(ctx, svc); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, ErrServiceExists
		}
		return nil, err
	}

	log.Info().Int64("service_id", svc.ID).Str("name", svc.Name).Msg("service created")
	return svc, nil
}

func (s *Service) Rename(ctx context.Context, id int64, name string) (*domain.Service, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	svc, err := s.services.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}

	if err := s.services.UpdateName(ctx, id, name); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, ErrServiceExists
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}

	log.Info().Int64("service_id", id).Str("name", name).Msg("service renamed")
	svc.Name = name
	return svc, nil
}

// ToggleActive переключает доступность услуги и возвращает новое состояние.
func (s *Service) ToggleActive(ctx context.Context, id int64) (*domain.Service, error) {
	svc, err := s.services.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}

	next := !svc.IsActive
	if err := s.services.UpdateActive(ctx, id, next); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}

	log.Info().Int64("service_id", id).Bool("is_active", next).Msg("service status toggled")
	svc.IsActive = next
	return svc, nil
}
