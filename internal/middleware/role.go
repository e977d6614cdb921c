package middleware

import (
	"net/http"

	"cottagesheets/internal/domain"
	"cottagesheets/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// RequireRole пропускает только пользователей с указанной ролью.
func RequireRole(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			response.Error(c, http.StatusUnauthorized, "Не авторизован")
			c.Abort()
			return
		}

		if role.(string) != requiredRole {
			response.Error(c, http.StatusForbidden, "Доступ запрещен")
			c.Abort()
			return
		}

		c.Next()
	}
}

// AdminOnly закрывает админские разделы: планы, объекты, услуги, дашборд.
func AdminOnly() gin.HandlerFunc {
	return RequireRole(domain.RoleAdmin)
}
