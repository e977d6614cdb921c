package catalog

import (
	"errors"
	"fmt"
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

// RegisterRoutes вешает список услуг на общий доступ, управление - на админа.
func (h *Handler) RegisterRoutes(authorized, admin *gin.RouterGroup) {
	authorized.GET("/services", h.ActiveList)

	admin.GET("/services-management/list", h.FullList)
	admin.POST("/services/create", h.Create)
	admin.PUT("/services/:id", h.Rename)
	admin.DELETE("/services/:id", h.Toggle)
}

// ActiveList отдает активные услуги для продажи на шахматке.
// @Summary		Активные услуги
// @Tags		Услуги
// @Produce		json
// @Success		200	{object}	map[string]interface{} "Список услуг"
// @Router		/services [GET]
func (h *Handler) ActiveList(c *gin.Context) {
	options, err := h.service.ActiveServices(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": options})
}

// FullList отдает весь прайс для страницы управления.
// @Summary		Все услуги
// @Tags		Услуги
// @Produce		json
// @Success		200	{object}	map[string]interface{} "Список услуг со статусами"
// @Failure		403	{object}	map[string]interface{} "Доступ запрещен"
// @Router		/services-management/list [GET]
func (h *Handler) FullList(c *gin.Context) {
	infos, err := h.service.AllServices(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": infos})
}

// Create добавляет услугу в прайс.
// @Summary		Создать услугу
// @Tags		Услуги
// @Accept		json
// @Produce		json
// @Param		request	body	ServiceNameRequest	true	"Название услуги"
// @Success		200	{object}	map[string]interface{} "Услуга создана"
// @Failure		400	{object}	map[string]interface{} "Пустое или занятое название"
// @Router		/services/create [POST]
func (h *Handler) Create(c *gin.Context) {
	var req ServiceNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Неверный формат запроса")
		return
	}

	svc, err := h.service.Create(c.Request.Context(), req.Name)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyName):
			response.Error(c, http.StatusBadRequest, "Название услуги не может быть пустым")
		case errors.Is(err, ErrServiceExists):
			response.Error(c, http.StatusBadRequest, "Услуга с таким названием уже существует")
		default:
			response.Error(c, http.StatusInternalServerError, "Ошибка при создании услуги")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": fmt.Sprintf("Услуга '%s' успешно создана", svc.Name),
		"id":      svc.ID,
	})
}

// Rename меняет название услуги.
// @Summary		Переименовать услугу
// @Tags		Услуги
// @Accept		json
// @Produce		json
// @Param		id	path	int	true	"ID услуги"
// @Param		request	body	ServiceNameRequest	true	"Новое название"
// @Success		200	{object}	map[string]interface{} "Услуга обновлена"
// @Failure		404	{object}	map[string]interface{} "Услуга не найдена"
// @Router		/services/{id} [PUT]
func (h *Handler) Rename(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Некорректный идентификатор")
		return
	}

	var req ServiceNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Неверный формат запроса")
		return
	}

	svc, err := h.service.Rename(c.Request.Context(), id, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyName):
			response.Error(c, http.StatusBadRequest, "Название услуги не может быть пустым")
		case errors.Is(err, ErrServiceExists):
			response.Error(c, http.StatusBadRequest, "Услуга с таким названием уже существует")
		case errors.Is(err, ErrServiceNotFound):
			response.Error(c, http.StatusNotFound, "Услуга не найдена")
		default:
			response.Error(c, http.StatusInternalServerError, "Ошибка при обновлении услуги")
		}
		return
	}

	response.SuccessMessage(c, http.StatusOK, fmt.Sprintf("Услуга '%s' успешно обновлена", svc.Name))
}

// Toggle включает или выключает услугу вместо удаления.
// @Summary		Переключить статус услуги
// @Tags		Услуги
// @Produce		json
// @Param		id	path	int	true	"ID услуги"
// @Success		200	{object}	map[string]interface{} "Статус переключен"
// @Failure		404	{object}	map[string]interface{} "Услуга не найдена"
// @Router		/services/{id} [DELETE]
func (h *Handler) Toggle(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Некорректный идентификатор")
		return
	}

	svc, err := h.service.ToggleActive(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrServiceNotFound) {
			response.Error(c, http.StatusNotFound, "Услуга не найдена")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Ошибка при переключении статуса услуги")
		return
	}

	word := "деактивирована"
	if svc.IsActive {
		word = "активирована"
	}
	response.Success(c, http.StatusOK, gin.H{
		"message":   fmt.Sprintf("Услуга '%s' успешно %s", svc.Name, word),
		"is_active": svc.IsActive,
	})
}
