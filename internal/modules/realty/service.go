package realty

import (
	"context"
	"errors"
	"strings"

	"cottagesheets/internal/database"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Service ведет справочник объектов недвижимости. Справочник пополняется
// автоматически из всех таблиц, где встречаются названия объектов.
type Service struct {
	realty   RealtyRepositoryInterface
	bookings BookingRenamerInterface
	titles   TitleSourceInterface
}

func NewService(realty RealtyRepositoryInterface, bookings BookingRenamerInterface, titles TitleSourceInterface) *Service {
	return &Service{realty: realty, bookings: bookings, titles: titles}
}

// List синхронизирует справочник с названиями из бронирований, поступлений
// и расходов, затем отдает весь справочник.
func (s *Service) List(ctx context.Context) ([]RealtyRow, error) {
	titles, err := s.titles.UniqueApartmentTitles(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.realty.SyncNames(ctx, titles); err != nil {
		return nil, err
	}

	items, err := s.realty.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]RealtyRow, 0, len(items))
	for _, obj := range items {
		rows = append(rows, toRealtyRow(obj))
	}
	return rows, nil
}

// Rename меняет название объекта и переносит его бронирования
// на новое название.
func (s *Service) Rename(ctx context.Context, id int64, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}

	obj, err := s.realty.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRealtyNotFound
		}
		return err
	}
	if obj.Name == name {
		return nil
	}

	if err := s.realty.UpdateName(ctx, id, name); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return ErrRealtyNotFound
		case database.IsUniqueViolation(err):
			return ErrNameExists
		}
		return err
	}

	moved, err := s.bookings.RenameApartment(ctx, obj.Name, name)
	if err != nil {
		return err
	}

	log.Info().
		Int64("realty_id", id).
		Str("old_name", obj.Name).
		Str("new_name", name).
		Int64("bookings_moved", moved).
		Msg("realty renamed")
	return nil
}

// ToggleActive переключает активность объекта и возвращает новый статус.
func (s *Service) ToggleActive(ctx context.Context, id int64) (bool, error) {
	obj, err := s.realty.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrRealtyNotFound
		}
		return false, err
	}

	active := !obj.IsActive
	if err := s.realty.UpdateActive(ctx, id, active); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrRealtyNotFound
		}
		return false, err
	}

	log.Info().Int64("realty_id", id).Bool("is_active", active).Msg("realty status toggled")
	return active, nil
}
