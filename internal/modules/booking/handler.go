package booking

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"cottagesheets/internal/pkg/response"

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
	authorized.GET("/bookings", h.GroupedList)
	authorized.POST("/update-checkin-comment", h.UpdateCheckinComment)
	authorized.GET("/booking-services/:id", h.ListBookingServices)
	authorized.POST("/booking-services", h.AttachService)
	authorized.DELETE("/booking-services/:id", h.DetachService)
	authorized.GET("/export", h.Export)
}

// parseDate понимает только ГГГГ-ММ-ДД, битые значения игнорирует.
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

// GroupedList отдает шахматку бронирований.
// @Summary		Шахматка бронирований
// @Description	Строки шахматки: выселение и заселение по каждому объекту на дату. Дубли объектов помечены флагами границ. Деньги за вычетом комиссии площадки.
// @Tags		Бронирования
// @Produce		json
// @Param		filter_date	query	string	false	"Дата заезда или выезда (ГГГГ-ММ-ДД)"
// @Success		200	{object}	map[string]interface{} "Строки шахматки"
// @Failure		401	{object}	map[string]interface{} "Не авторизован"
// @Router		/bookings [GET]
func (h *Handler) GroupedList(c *gin.Context) {
	raw := c.Query("filter_date")
	filterDate := parseDate(raw, "filter_date")

	groups, err := h.service.GroupedBookings(c.Request.Context(), filterDate)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}

	var filterValue interface{}
	if raw != "" {
		filterValue = raw
	}
	c.JSON(http.StatusOK, gin.H{
		"grouped_bookings": groups,
		"filter_date":      filterValue,
		"user_type":        c.GetString("role"),
	})
}

// UpdateCheckinComment сохраняет комментарий по оплате и проживанию в день заселения.
// @Summary		Обновить комментарий дня заселения
// @Tags		Бронирования
// @Accept		json
// @Produce		json
// @Param		request	body	UpdateCommentRequest	true	"Бронирование и текст комментария"
// @Success		200	{object}	map[string]interface{} "Комментарий обновлен"
// @Failure		404	{object}	map[string]interface{} "Бронирование не найдено"
// @Router		/update-checkin-comment [POST]
func (h *Handler) UpdateCheckinComment(c *gin.Context) {
	var req UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Неверный формат запроса")
		return
	}

	if err := h.service.UpdateCheckinComments(c.Request.Context(), req.BookingID, req.Comments); err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			response.Error(c, http.StatusNotFound, "Бронирование не найдено")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}

	response.SuccessMessage(c, http.StatusOK, "Комментарий обновлен")
}

// ListBookingServices отдает услуги бронирования и их сумму.
// @Summary		Услуги бронирования
// @Tags		Бронирования
// @Produce		json
// @Param		id	path	int	true	"ID бронирования"
// @Success		200	{object}	map[string]interface{} "Список услуг и сумма"
// @Router		/booking-services/{id} [GET]
func (h *Handler) ListBookingServices(c *gin.Context) {
	bookingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Некорректный идентификатор")
		return
	}

	rows, total, err := h.service.BookingServices(c.Request.Context(), bookingID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"services": rows,
		"total":    total,
	})
}

// AttachService добавляет услугу к бронированию.
// @Summary		Добавить услугу к бронированию
// @Tags		Бронирования
// @Accept		json
// @Produce		json
// @Param		request	body	AttachServiceRequest	true	"Бронирование, услуга и цена"
// @Success		200	{object}	map[string]interface{} "Услуга добавлена"
// @Failure		404	{object}	map[string]interface{} "Бронирование или услуга не найдены"
// @Router		/booking-services [POST]
func (h *Handler) AttachService(c *gin.Context) {
	var req AttachServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Неверный формат запроса")
		return
	}

	bs, err := h.service.AttachService(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrBookingNotFound):
			response.Error(c, http.StatusNotFound, "Бронирование не найдено")
		case errors.Is(err, ErrServiceNotFound):
			response.Error(c, http.StatusNotFound, "Услуга не найдена")
		default:
			response.Error(c, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Услуга добавлена",
		"id":      bs.ID,
	})
}

// DetachService убирает услугу из бронирования.
// @Summary		Удалить услугу бронирования
// @Tags		Бронирования
// @Produce		json
// @Param		id	path	int	true	"ID записи услуги"
// @Success		200	{object}	map[string]interface{} "Услуга удалена"
// @Failure		404	{object}	map[string]interface{} "Услуга не найдена"
// @Router		/booking-services/{id} [DELETE]
func (h *Handler) DetachService(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Некорректный идентификатор")
		return
	}

	if err := h.service.DetachService(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrItemNotFound) {
			response.Error(c, http.StatusNotFound, "Услуга не найдена")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}

	response.SuccessMessage(c, http.StatusOK, "Услуга удалена")
}

// Export выгружает шахматку в Excel.
// @Summary		Экспорт шахматки в Excel
// @Tags		Бронирования
// @Produce		application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param		filter_date	query	string	false	"Дата заезда или выезда (ГГГГ-ММ-ДД)"
// @Success		200	{file}	file	"Файл xlsx"
// @Router		/export [GET]
func (h *Handler) Export(c *gin.Context) {
	raw := c.Query("filter_date")
	filterDate := parseDate(raw, "filter_date")

	f, filename, err := h.service.BuildExport(c.Request.Context(), filterDate, raw)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
