package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"cottagesheets/internal/domain"
	"cottagesheets/internal/pkg/jwt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Service проверяет учетные данные и управляет сессиями операторов.
type Service struct {
	users    UserRepositoryInterface
	sessions SessionRepositoryInterface
	jwt      *jwt.Service
}

type LoginResult struct {
	User  *domain.User
	Token string
}

func NewService(users UserRepositoryInterface, sessions SessionRepositoryInterface, jwtService *jwt.Service) *Service {
	return &Service{
		users:    users,
		sessions: sessions,
		jwt:      jwtService,
	}
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	user, err := s.users.GetByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	session := &domain.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Role:      user.Role,
		CreatedAt: now,
		ExpiresAt: now.Add(s.jwt.TTL()),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, err
	}

	token, err := s.jwt.GenerateToken(user.ID, user.Role, session.ID)
	if err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return &LoginResult{User: user, Token: token}, nil
}

// Logout удаляет сессию по токену из cookie. Невалидный токен не считается
// ошибкой: cookie все равно будет очищена.
func (s *Service) Logout(ctx context.Context, token string) error {
	claims, err := s.jwt.ValidateToken(token)
	if err != nil {
		return nil
	}
	return s.sessions.Delete(ctx, claims.ID)
}
