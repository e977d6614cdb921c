package plan

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cottagesheets/internal/domain"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Service ведет месячные планы по выручке.
type Service struct {
	plans PlanRepositoryInterface
}

func NewService(plans PlanRepositoryInterface) *Service {
	return &Service{plans: plans}
}

func (s *Service) List(ctx context.Context) ([]PlanRow, error) {
	items, err := s.plans.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]PlanRow, 0, len(items))
	for _, p := range items {
		rows = append(rows, PlanRow{
			ID:           p.ID,
			StartDate:    p.StartDate.Format("2006-01-02"),
			EndDate:      p.EndDate.Format("2006-01-02"),
			TargetAmount: p.TargetAmount,
			CreatedAt:    p.CreatedAt.Format(time.RFC3339),
			UpdatedAt:    p.UpdatedAt.Format(time.RFC3339),
		})
	}
	return rows, nil
}

func (s *Service) Create(ctx context.Context, req CreatePlanRequest) (*domain.MonthlyPlan, error) {
	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: start_date %q", ErrBadDate, req.StartDate)
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: end_date %q", ErrBadDate, req.EndDate)
	}

	p := &domain.MonthlyPlan{
		StartDate:    startDate,
		EndDate:      endDate,
		TargetAmount: *req.TargetAmount,
	}
	if err := s.plans.Create(ctx, p); err != nil {
		return nil, err
	}

	log.Info().
		Int64("plan_id", p.ID).
		Str("period", req.StartDate+".."+req.EndDate).
		Float64("target", p.TargetAmount).
		Msg("plan created")
	return p, nil
}

// Update меняет только переданные поля. Пустой запрос - ошибка,
// а не тихий успех.
func (s *Service) Update(ctx context.Context, id int64, req UpdatePlanRequest) error {
	fields := map[string]any{}
	if req.StartDate != nil {
		d, err := time.Parse("2006-01-02", *req.StartDate)
		if err != nil {
			return fmt.Errorf("%w: start_date %q", ErrBadDate, *req.StartDate)
		}
		fields["start_date"] = d
	}
	if req.EndDate != nil {
		d, err := time.Parse("2006-01-02", *req.EndDate)
		if err != nil {
			return fmt.Errorf("%w: end_date %q", ErrBadDate, *req.EndDate)
		}
		fields["end_date"] = d
	}
	if req.TargetAmount != nil {
		fields["target_amount"] = *req.TargetAmount
	}

	if len(fields) == 0 {
		return ErrNothingToApply
	}

	err := s.plans.UpdateFields(ctx, id, fields)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrPlanNotFound
	}
	if err != nil {
		return err
	}

	log.Info().Int64("plan_id", id).Int("fields", len(fields)).Msg("plan updated")
	return nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	err := s.plans.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrPlanNotFound
	}
	if err != nil {
		return err
	}

	log.Info().Int64("plan_id", id).Msg("plan deleted")
	return nil
}
