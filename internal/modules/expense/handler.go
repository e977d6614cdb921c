package expense

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
	authorized.GET("/expenses", h.Page)
	authorized.GET("/expenses/list", h.List)
	authorized.POST("/expenses/create", h.Create)
	authorized.PUT("/expenses/:id", h.Update)
	authorized.DELETE("/expenses/:id", h.Delete)
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
		From:           parseDate(c.Query("filter_date_from"), "filter_date_from"),
		To:             parseDate(c.Query("filter_date_to"), "filter_date_to"),
		ApartmentTitle: c.Query("apartment_title"),
	}
}

// Page отдает полный контекст страницы расходов.
// @Summary		Страница расходов
// @Tags		Расходы
// @Produce		json
// @Param		filter_date_from	query	string	false	"Начало периода"
// @Param		filter_date_to	query	string	false	"Конец периода"
// @Param		apartment_title	query	string	false	"Объект недвижимости"
// @Success		200	{object}	map[string]interface{} "Расходы и итоги"
// @Router		/expenses [GET]
func (h *Handler) Page(c *gin.Context) {
	data, err := h.service.Page(c.Request.Context(), queryFilters(c))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"expenses":          data.Expenses,
		"unique_apartments": data.UniqueApartments,
		"filter_date_from":  c.Query("filter_date_from"),
		"filter_date_to":    c.Query("filter_date_to"),
		"apartment_title":   c.Query("apartment_title"),
		"total_expenses":    data.TotalExpenses,
		"user_type":         c.GetString("role"),
	})
}

// List отдает отфильтрованный список расходов.
// @Summary		Список расходов
// @Tags		Расходы
// @Produce		json
// @Param		filter_date_from	query	string	false	"Начало периода"
// @Param		filter_date_to	query	string	false	"Конец периода"
// @Param		apartment_title	query	string	false	"Объект недвижимости"
// @Success		200	{object}	map[string]interface{} "Список расходов"
// @Router		/expenses/list [GET]
func (h *Handler) List(c *gin.Context) {
	rows, err := h.service.List(c.Request.Context(), queryFilters(c))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}
	c.JSON(http.StatusOK, gin.H{"expenses": rows})
}

// Create создает расход.
// @Summary		Создать расход
// @Tags		Расходы
// @Accept		json
// @Produce		json
// @Param		request	body	CreateExpenseRequest	true	"Данные расхода"
// @Success		200	{object}	map[string]interface{} "Расход создан"
// @Failure		400	{object}	map[string]interface{} "Ошибка валидации"
// @Router		/expenses/create [POST]
func (h *Handler) Create(c *gin.Context) {
	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Неверный формат запроса")
		return
	}
	if err := validator.Validate(req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	e, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrBadDate) {
			response.Error(c, http.StatusBadRequest, "Некорректная дата")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Расход создан",
		"id":      e.ID,
	})
}

// Update меняет переданные поля расхода.
// @Summary		Обновить расход
// @Tags		Расходы
// @Accept		json
// @Produce		json
// @Param		id	path	int	true	"ID расхода"
// @Param		request	body	UpdateExpenseRequest	true	"Изменяемые поля"
// @Success		200	{object}	map[string]interface{} "Расход обновлен"
// @Failure		404	{object}	map[string]interface{} "Расход не найден"
// @Router		/expenses/{id} [PUT]
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Некорректный идентификатор")
		return
	}

	var req UpdateExpenseRequest
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
		case errors.Is(err, ErrExpenseNotFound):
			response.Error(c, http.StatusNotFound, "Расход не найден")
		case errors.Is(err, ErrBadDate):
			response.Error(c, http.StatusBadRequest, "Некорректная дата")
		default:
			response.Error(c, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		}
		return
	}

	response.SuccessMessage(c, http.StatusOK, "Расход обновлен")
}

// Delete удаляет расход.
// @Summary		Удалить расход
// @Tags		Расходы
// @Produce		json
// @Param		id	path	int	true	"ID расхода"
// @Success		200	{object}	map[string]interface{} "Расход удален"
// @Failure		404	{object}	map[string]interface{} "Расход не найден"
// @Router		/expenses/{id} [DELETE]
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Некорректный идентификатор")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrExpenseNotFound) {
			response.Error(c, http.StatusNotFound, "Расход не найден")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}

	response.SuccessMessage(c, http.StatusOK, "Расход удален")
}
