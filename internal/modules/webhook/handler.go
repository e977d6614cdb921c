package webhook

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"cottagesheets/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(public *gin.RouterGroup) {
	public.POST("/webhook", h.Receive)
}

// Receive принимает события календаря: одно или массив.
// @Summary		Принять события календаря
// @Description	Принимает событие бронирования (create_booking, update_booking, delete_booking) или массив событий. Бронирования создаются или обновляются по внешнему id, удаление помечает запись как удалённую.
// @Tags		Webhook
// @Accept		json
// @Param		request	body	Event	true	"Событие или массив событий"
// @Success		200	{object}	map[string]interface{} "Результат обработки"
// @Failure		400	{object}	map[string]interface{} "Некорректный формат данных"
// @Router		/webhook [POST]
func (h *Handler) Receive(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Некорректный формат данных")
		return
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		response.Error(c, http.StatusBadRequest, "Некорректный формат данных")
		return
	}

	// Календарь шлет либо объект, либо массив объектов
	if trimmed[0] == '[' {
		var events []Event
		if err := json.Unmarshal(trimmed, &events); err != nil {
			response.Error(c, http.StatusBadRequest, "Некорректный формат данных")
			return
		}

		results := make([]EventResult, 0, len(events))
		for _, event := range events {
			result, err := h.service.ProcessEvent(c.Request.Context(), event)
			if err != nil {
				response.Error(c, http.StatusBadRequest, "Некорректный формат данных")
				return
			}
			results = append(results, *result)
		}

		response.Success(c, http.StatusOK, gin.H{
			"processed": len(results),
			"results":   results,
		})
		return
	}

	var event Event
	if err := json.Unmarshal(trimmed, &event); err != nil {
		response.Error(c, http.StatusBadRequest, "Некорректный формат данных")
		return
	}

	result, err := h.service.ProcessEvent(c.Request.Context(), event)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Некорректный формат данных")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"result": result})
}
