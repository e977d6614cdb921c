package realty

import (
	"errors"
	"net/http"
	"strconv"

	"cottagesheets/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(admin *gin.RouterGroup) {
	admin.GET("/realty/list", h.List)
	admin.PUT("/realty/:id", h.Rename)
	admin.DELETE("/realty/:id", h.ToggleActive)
}

// List синхронизирует справочник со всеми источниками и отдает его целиком.
// @Summary		Справочник объектов
// @Description	Перед выдачей дописывает в справочник названия, встречающиеся в бронированиях, поступлениях и расходах.
// @Tags		Объекты
// @Produce		json
// @Success		200	{object}	map[string]interface{} "Список объектов"
// @Router		/realty/list [GET]
func (h *Handler) List(c *gin.Context) {
	rows, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}
	c.JSON(http.StatusOK, gin.H{"realty_objects": rows})
}

// Rename меняет название объекта с каскадом в бронирования.
// @Summary		Переименовать объект
// @Tags		Объекты
// @Accept		json
// @Produce		json
// @Param		id	path	int	true	"ID объекта"
// @Param		request	body	RenameRequest	true	"Новое название"
// @Success		200	{object}	map[string]interface{} "Объект обновлен"
// @Failure		400	{object}	map[string]interface{} "Название не может быть пустым"
// @Failure		404	{object}	map[string]interface{} "Объект не найден"
// @Router		/realty/{id} [PUT]
func (h *Handler) Rename(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Некорректный идентификатор")
		return
	}

	var req RenameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Название не может быть пустым")
		return
	}

	if err := h.service.Rename(c.Request.Context(), id, req.Name); err != nil {
		switch {
		case errors.Is(err, ErrEmptyName):
			response.Error(c, http.StatusBadRequest, "Название не может быть пустым")
		case errors.Is(err, ErrRealtyNotFound):
			response.Error(c, http.StatusNotFound, "Объект не найден")
		case errors.Is(err, ErrNameExists):
			response.Error(c, http.StatusBadRequest, "Объект с таким названием уже существует")
		default:
			response.Error(c, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		}
		return
	}

	response.SuccessMessage(c, http.StatusOK, "Объект обновлен")
}

// ToggleActive переключает активность объекта.
// @Summary		Переключить статус объекта
// @Tags		Объекты
// @Produce		json
// @Param		id	path	int	true	"ID объекта"
// @Success		200	{object}	map[string]interface{} "Статус обновлен"
// @Failure		404	{object}	map[string]interface{} "Объект не найден"
// @Router		/realty/{id} [DELETE]
func (h *Handler) ToggleActive(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Некорректный идентификатор")
		return
	}

	active, err := h.service.ToggleActive(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrRealtyNotFound) {
			response.Error(c, http.StatusNotFound, "Объект не найден")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message":   "Статус обновлен",
		"is_active": active,
	})
}
