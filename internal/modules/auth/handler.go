package auth

import (
	"errors"
	"net/http"

	"cottagesheets/internal/middleware"
	"cottagesheets/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Handler обслуживает вход и выход операторов.
type Handler struct {
	service      *Service
	cookieMaxAge int
	cookieSecure bool
}

func NewHandler(service *Service, cookieMaxAge int, cookieSecure bool) *Handler {
	return &Handler{
		service:      service,
		cookieMaxAge: cookieMaxAge,
		cookieSecure: cookieSecure,
	}
}

func (h *Handler) RegisterRoutes(public *gin.RouterGroup) {
	public.POST("/login", h.Login)
	public.GET("/logout", h.Logout)
}

// Login авторизует оператора и выставляет cookie сессии.
// @Summary		Войти в систему
// @Description	Проверяет логин и пароль оператора, создаёт сессию и выставляет httponly cookie session_token. Возвращает тип пользователя (admin или user).
// @Tags		Авторизация
// @Param		request	body	LoginRequest	true	"Учётные данные (username, password)"
// @Success		200	{object}	map[string]interface{} "Успешный вход, возвращается user_type"
// @Failure		400	{object}	map[string]interface{} "Неверный формат запроса"
// @Failure		401	{object}	map[string]interface{} "Неверный логин или пароль"
// @Router		/login [POST]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Неверный формат запроса")
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "Неверный логин или пароль")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Не удалось выполнить вход")
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookieName, result.Token, h.cookieMaxAge, "/", "", h.cookieSecure, true)
	c.SetCookie("user_type", result.User.Role, h.cookieMaxAge, "/", "", h.cookieSecure, true)

	response.Success(c, http.StatusOK, gin.H{
		"message":   "Вход выполнен",
		"user_type": result.User.Role,
	})
}

// Logout завершает сессию и очищает cookie.
// @Summary		Выйти из системы
// @Description	Удаляет сессию оператора и очищает cookie session_token и user_type.
// @Tags		Авторизация
// @Success		200	{object}	map[string]interface{} "Выход выполнен"
// @Router		/logout [GET]
func (h *Handler) Logout(c *gin.Context) {
	if token, err := c.Cookie(middleware.SessionCookieName); err == nil && token != "" {
		_ = h.service.Logout(c.Request.Context(), token)
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", h.cookieSecure, true)
	c.SetCookie("user_type", "", -1, "/", "", h.cookieSecure, true)

	response.SuccessMessage(c, http.StatusOK, "Выход выполнен")
}
