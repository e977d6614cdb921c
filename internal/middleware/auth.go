package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"cottagesheets/internal/domain"
	"cottagesheets/internal/pkg/jwt"
	"cottagesheets/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// SessionCookieName совпадает с именем cookie исходного веб-интерфейса.
const SessionCookieName = "session_token"

// SessionStore отдает сессию по идентификатору из jti.
type SessionStore interface {
	GetByID(ctx context.Context, id string) (*domain.Session, error)
}

// Auth проверяет cookie сессии (или Bearer-токен для API-клиентов),
// сверяет сессию с базой и кладет пользователя и роль в контекст.
type Auth struct {
	jwtService *jwt.Service
	sessions   SessionStore
}

func NewAuth(jwtService *jwt.Service, sessions SessionStore) *Auth {
	return &Auth{
		jwtService: jwtService,
		sessions:   sessions,
	}
}

func (a *Auth) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := a.extractToken(c)
		if token == "" {
			response.Error(c, http.StatusUnauthorized, "Не авторизован")
			c.Abort()
			return
		}

		claims, err := a.jwtService.ValidateToken(token)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Не авторизован")
			c.Abort()
			return
		}

		// Сессию можно отозвать, удалив строку, поэтому токена недостаточно.
		session, err := a.sessions.GetByID(c.Request.Context(), claims.ID)
		if err != nil || session == nil || time.Now().After(session.ExpiresAt) {
			response.Error(c, http.StatusUnauthorized, "Не авторизован")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)
		c.Set("session_id", claims.ID)

		c.Next()
	}
}

func (a *Auth) extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie != "" {
		return cookie
	}

	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}

	return ""
}
