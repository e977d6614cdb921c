package payment

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"cottagesheets/internal/pkg/response"
	"cottagesheets/internal/pkg/validator"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(authorized *gin.RouterGroup) {
	authorized.GET("/payments", h.Page)
	authorized.GET("/payments/list", h.List)
	authorized.GET("/payments/calculate-advance", h.CalculateAdvance)
	authorized.POST("/payments/create", h.Create)
	authorized.PUT("/payments/:id", h.Update)
	authorized.DELETE("/payments/:id", h.Delete)
}

func parseDate(raw, param string) *time.Time {
	if raw == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		log.Warn().Str("param", param).Str("value", raw).Msg("malformed date ignored")
		return nil
	}
	return &t
}

func queryFilters(c *gin.Context) Filters {
	return Filters{
		Date: parseDate(c.Query("filter_date"), "filter_date"),
		From: parseDate(c.Query("filter_date_from"), "filter_date_from"),
		To:   parseDate(c.Query("filter_date_to"), "filter_date_to"),
	}
}

// Page отдает полный контекст страницы поступлений.
// @Summary		Страница поступлений
// @Description	Объединенный список: реальные поступления и проданные услуги. План и факт считаются только по реальным поступлениям.
// @Tags		Поступления
// @Produce		json
// @Param		filter_date	query	string	false	"Точная дата (ГГГГ-ММ-ДД)"
// @Param		filter_date_from	query	string	false	"Начало периода"
// @Param		filter_date_to	query	string	false	"Конец периода"
// @Success		200	{object}	map[string]interface{} "Поступления и итоги"
// @Router		/payments [GET]
func (h *Handler) Page(c *gin.Context) {
	data, err := h.service.Page(c.Request.Context(), queryFilters(c))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"payments":               data.Payments,
		"bookings_with_services": data.BookingsWithServices,
		"unique_apartments":      data.UniqueApartments,
		"filter_date":            c.Query("filter_date"),
		"filter_date_from":       c.Query("filter_date_from"),
		"filter_date_to":         c.Query("filter_date_to"),
		"total_plan":             data.TotalPlan,
		"total_fact":             data.TotalFact,
		"total_advance":          data.TotalAdvance,
	})
}

// List отдает реальные поступления без строк из проданных услуг.
// @Summary		Список поступлений
// @Tags		Поступления
// @Produce		json
// @Param		filter_date	query	string	false	"Точная дата (ГГГГ-ММ-ДД)"
// @Param		filter_date_from	query	string	false	"Начало периода"
// @Param		filter_date_to	query	string	false	"Конец периода"
// @Param		apartment_title	query	string	false	"Объект недвижимости"
// @Success		200	{object}	map[string]interface{} "Список поступлений"
// @Router		/payments/list [GET]
func (h *Handler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context(), queryFilters(c), c.Query("apartment_title"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}
	c.JSON(http.StatusOK, gin.H{"payments": items})
}

// Create создает поступление.
// @Summary		Создать поступление
// @Tags		Поступления
// @Accept		json
// @Produce		json
// @Param		request	body	CreatePaymentRequest	true	"Данные поступления"
// @Success		200	{object}	map[string]interface{} "Поступление создано"
// @Failure		400	{object}	map[string]interface{} "Не указан объект недвижимости"
// @Router		/payments/create [POST]
func (h *Handler) Create(c *gin.Context) {
	var req CreatePaymentRequest
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
		switch {
		case errors.Is(err, ErrMissingApartment):
			response.Error(c, http.StatusBadRequest, "Не указан объект недвижимости")
		case errors.Is(err, ErrBadDate):
			response.Error(c, http.StatusBadRequest, "Некорректная дата")
		default:
			response.Error(c, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Поступление создано",
		"id":      p.ID,
	})
}

// Update меняет переданные поля поступления.
// @Summary		Обновить поступление
// @Tags		Поступления
// @Accept		json
// @Produce		json
// @Param		id	path	int	true	"ID поступления"
// @Param		request	body	UpdatePaymentRequest	true	"Изменяемые поля"
// @Success		200	{object}	map[string]interface{} "Поступление обновлено"
// @Failure		404	{object}	map[string]interface{} "Поступление не найдено"
// @Router		/payments/{id} [PUT]
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Некорректный идентификатор")
		return
	}

	var req UpdatePaymentRequest
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
		case errors.Is(err, ErrPaymentNotFound):
			response.Error(c, http.StatusNotFound, "Поступление не найдено")
		case errors.Is(err, ErrBadDate):
			response.Error(c, http.StatusBadRequest, "Некорректная дата")
		default:
			response.Error(c, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		}
		return
	}

	response.SuccessMessage(c, http.StatusOK, "Поступление обновлено")
}

// Delete удаляет поступление.
// @Summary		Удалить поступление
// @Tags		Поступления
// @Produce		json
// @Param		id	path	int	true	"ID поступления"
// @Success		200	{object}	map[string]interface{} "Поступление удалено"
// @Failure		404	{object}	map[string]interface{} "Поступление не найдено"
// @Router		/payments/{id} [DELETE]
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Некорректный идентификатор")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrPaymentNotFound) {
			response.Error(c, http.StatusNotFound, "Поступление не найдено")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}

	response.SuccessMessage(c, http.StatusOK, "Поступление удалено")
}

// CalculateAdvance считает предоплаты будущих заездов объекта.
// @Summary		Аванс по будущим заселениям
// @Tags		Поступления
// @Produce		json
// @Param		apartment_title	query	string	true	"Объект недвижимости"
// @Param		selected_date	query	string	true	"Дата отсчета (ГГГГ-ММ-ДД)"
// @Success		200	{object}	map[string]interface{} "Сумма авансов"
// @Failure		400	{object}	map[string]interface{} "Некорректные параметры"
// @Router		/payments/calculate-advance [GET]
func (h *Handler) CalculateAdvance(c *gin.Context) {
	apartmentTitle := c.Query("apartment_title")
	if apartmentTitle == "" {
		response.Error(c, http.StatusBadRequest, "Не указан объект недвижимости")
		return
	}

	selectedDate, err := time.Parse("2006-01-02", c.Query("selected_date"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Некорректная дата")
		return
	}

	total, err := h.service.CalculateAdvance(c.Request.Context(), apartmentTitle, selectedDate)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"total_advance": total})
}
