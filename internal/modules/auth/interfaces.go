package auth

import (
	"context"

	"cottagesheets/internal/domain"
)

// UserRepositoryInterface - только то, что нужно модулю авторизации.
type UserRepositoryInterface interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

type SessionRepositoryInterface interface {
	Create(ctx context.Context, s *domain.Session) error
	Delete(ctx context.Context, id string) error
}
