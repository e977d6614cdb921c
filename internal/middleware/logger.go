package middleware

import (
	"net/http"
	"runtime/debug"
	"time"

	"cottagesheets/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// RequestLogger пишет строку на каждый запрос: метод, путь, статус, задержку.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		event := log.Info()
		if c.Writer.Status() >= http.StatusInternalServerError {
			event = log.Error()
		}
		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("query", c.Request.URL.RawQuery).
			Int("status", c.Writer.Status()).
			Str("client_ip", c.ClientIP()).
			Str("role", c.GetString("role")).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}

// Recovery перехватывает панику, логирует стек и отвечает 500 конвертом.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if recovered := recover(); recovered != nil {
				log.Error().
					Interface("panic", recovered).
					Str("method", c.Request.Method).
					Str("path", c.Request.URL.Path).
					Bytes("stack", debug.Stack()).
					Msg("panic recovered")

				response.Error(c, http.StatusInternalServerError, "Внутренняя ошибка сервера")
				c.Abort()
			}
		}()

		c.Next()
	}
}
