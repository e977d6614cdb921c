package plan

import (
	"errors"
	"net/http"
	"strconv"

	"cottagesheets/internal/pkg/response"
	"cottagesheets/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(admin *gin.RouterGroup) {
	admin.GET("/plans/list", h.List)
	admin.POST("/plans/create", h.Create)
	admin.PUT("/plans/:id", h.Update)
	admin.DELETE("/plans/:id", h.Delete)
}

// List отдает все планы, новые сверху.
// @Summary		Список планов
// @Tags		Планы
// @Produce		json
// @Success		200	{object}	map[string]interface{} "Список планов"
// @Router		/plans/list [GET]
func (h *Handler) List(c *gin.Context) {
	rows, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}
	c.JSON(http.StatusOK, gin.H{"plans": rows})
}

// Create создает план по выручке.
// @Summary		Создать план
// @Tags		Планы
// @Accept		json
// @Produce		json
// @Param		request	body	CreatePlanRequest	true	"Данные плана"
// @Success		200	{object}	map[string]interface{} "План создан"
// @Failure		400	{object}	map[string]interface{} "Ошибка валидации"
// @Router		/plans/create [POST]
func (h *Handler) Create(c *gin.Context) {
	var req CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Неверный формат запроса")
		return
	}
	if err := validator.Validate(req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	p, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrBadDate) {
			response.Error(c, http.StatusBadRequest, "Некорректная дата")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "План создан",
		"id":      p.ID,
	})
}

// Update меняет переданные поля плана.
// @Summary		Обновить план
// @Tags		Планы
// @Accept		json
// @Produce		json
// @Param		id	path	int	true	"ID плана"
// @Param		request	body	UpdatePlanRequest	true	"Изменяемые поля"
// @Success		200	{object}	map[string]interface{} "План обновлен"
// @Failure		400	{object}	map[string]interface{} "Нет данных для обновления"
// @Failure		404	{object}	map[string]interface{} "План не найден"
// @Router		/plans/{id} [PUT]
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Некорректный идентификатор")
		return
	}

	var req UpdatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Неверный формат запроса")
		return
	}
	if err := validator.Validate(req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.service.Update(c.Request.Context(), id, req); err != nil {
		switch {
		case errors.Is(err, ErrNothingToApply):
			response.Error(c, http.StatusBadRequest, "Нет данных для обновления")
		case errors.Is(err, ErrPlanNotFound):
			response.Error(c, http.StatusNotFound, "План не найден")
		case errors.Is(err, ErrBadDate):
			response.Error(c, http.StatusBadRequest, "Некорректная дата")
		default:
			response.Error(c, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		}
		return
	}

	response.SuccessMessage(c, http.StatusOK, "План обновлен")
}

// Delete удаляет план.
// @Summary		Удалить план
// @Tags		Планы
// @Produce		json
// @Param		id	path	int	true	"ID плана"
// @Success		200	{object}	map[string]interface{} "План удален"
// @Failure		404	{object}	map[string]interface{} "План не найден"
// @Router		/plans/{id} [DELETE]
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Некорректный идентификатор")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrPlanNotFound) {
			response.Error(c, http.StatusNotFound, "План не найден")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}

	response.SuccessMessage(c, http.StatusOK, "План удален")
}
