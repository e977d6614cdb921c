package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"cottagesheets/internal/domain"
	"cottagesheets/internal/pkg/jwt"
)

// stubSessions отдает сессии из памяти, как таблица sessions в базе.
type stubSessions struct {
	sessions map[string]*domain.Session
}

func (s *stubSessions) GetByID(_ context.Context, id string) (*domain.Session, error) {
	session, ok := s.sessions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return session, nil
}

func newAuthRouter(jwtService *jwt.Service, sessions *stubSessions) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(NewAuth(jwtService, sessions).Handler())
	router.GET("/protected", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id":    c.GetInt64("user_id"),
			"role":       c.GetString("role"),
			"session_id": c.GetString("session_id"),
		})
	})

	return router
}

func liveSession(id string, userID int64, role string) *domain.Session {
	return &domain.Session{
		ID:        id,
		UserID:    userID,
		Role:      role,
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func TestAuth_CookieToken(t *testing.T) {
	jwtService := jwt.New("test-secret", time.Hour)
	token, err := jwtService.GenerateToken(42, "admin", "sess-1")
	assert.NoError(t, err)

	sessions := &stubSessions{sessions: map[string]*domain.Session{
		"sess-1": liveSession("sess-1", 42, "admin"),
	}}
	router := newAuthRouter(jwtService, sessions)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":42`)
	assert.Contains(t, w.Body.String(), `"role":"admin"`)
	assert.Contains(t, w.Body.String(), `"session_id":"sess-1"`)
}

func TestAuth_BearerToken(t *testing.T) {
	jwtService := jwt.New("test-secret", time.Hour)
	token, err := jwtService.GenerateToken(7, "user", "sess-api")
	assert.NoError(t, err)

	sessions := &stubSessions{sessions: map[string]*domain.Session{
		"sess-api": liveSession("sess-api", 7, "user"),
	}}
	router := newAuthRouter(jwtService, sessions)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"role":"user"`)
}

func TestAuth_NoToken(t *testing.T) {
	jwtService := jwt.New("test-secret", time.Hour)
	router := newAuthRouter(jwtService, &stubSessions{sessions: map[string]*domain.Session{}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Не авторизован")
}

func TestAuth_BadToken(t *testing.T) {
	jwtService := jwt.New("test-secret", time.Hour)
	router := newAuthRouter(jwtService, &stubSessions{sessions: map[string]*domain.Session{}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "garbage"})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_RevokedSession(t *testing.T) {
	jwtService := jwt.New("test-secret", time.Hour)
	token, err := jwtService.GenerateToken(42, "admin", "sess-gone")
	assert.NoError(t, err)

	// Токен валидный, но строки сессии в базе уже нет
	router := newAuthRouter(jwtService, &stubSessions{sessions: map[string]*domain.Session{}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_ExpiredSession(t *testing.T) {
	jwtService := jwt.New("test-secret", time.Hour)
	token, err := jwtService.GenerateToken(42, "admin", "sess-old")
	assert.NoError(t, err)

	expired := liveSession("sess-old", 42, "admin")
	expired.ExpiresAt = time.Now().Add(-time.Minute)

	sessions := &stubSessions{sessions: map[string]*domain.Session{"sess-old": expired}}
	router := newAuthRouter(jwtService, sessions)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminOnly(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("user_id", int64(7))
		c.Set("role", c.GetHeader("X-Test-Role"))
	})
	router.Use(AdminOnly())
	router.GET("/admin-only", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	t.Run("admin проходит", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/admin-only", nil)
		req.Header.Set("X-Test-Role", domain.RoleAdmin)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("оператору запрещено", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/admin-only", nil)
		req.Header.Set("X-Test-Role", domain.RoleUser)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "Доступ запрещен")
	})
}
