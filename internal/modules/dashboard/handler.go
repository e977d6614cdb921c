package dashboard

import (
	"net/http"
	"strconv"

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

func (h *Handler) RegisterRoutes(admin *gin.RouterGroup) {
	admin.GET("/dashboard", h.Annual)
}

// Annual отдает годовой финансовый отчет.
// @Summary		Годовой отчет
// @Description	Доходы, расходы и прибыль по месяцам и группам домов. Дубли складываются в группу по базовому адресу.
// @Tags		Дашборд
// @Produce		json
// @Param		year	query	int	false	"Год (по умолчанию текущий, окно текущий±5)"
// @Success		200	{object}	AnnualReport "Годовой отчет"
// @Router		/dashboard [GET]
func (h *Handler) Annual(c *gin.Context) {
	year := 0
	if raw := c.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			log.Warn().Str("value", raw).Msg("malformed year ignored")
		} else {
			year = parsed
		}
	}
	year = h.service.ClampYear(year)

	report, err := h.service.Annual(c.Request.Context(), year)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}

	c.JSON(http.StatusOK, report)
}
