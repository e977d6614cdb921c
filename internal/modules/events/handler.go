package events

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

const (
	pingInterval = 30 * time.Second
	pongWait     = 60 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,

	// Кука сессии уже проверена общим middleware, origin не ограничиваем.
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type Handler struct {
	hub *Hub
}

func NewHandler(hub *Hub) *Handler {
	return &Handler{hub: hub}
}

func (h *Handler) RegisterRoutes(authorized *gin.RouterGroup) {
	authorized.GET("/ws/events", h.Subscribe)
}

// Subscribe подключает оператора к живой ленте событий бронирований.
// @Summary		Лента событий
// @Description	Апгрейд до websocket. События вебхука приходят всем подключенным операторам.
// @Tags		События
// @Router		/ws/events [GET]
func (h *Handler) Subscribe(c *gin.Context) {
	sessionID := c.GetString("session_id")
	if sessionID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "Не авторизован"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	h.hub.Register(sessionID, conn)
	log.Info().Str("session_id", sessionID).Msg("operator subscribed to events")

	defer func() {
		h.hub.Unregister(sessionID)
		log.Info().Str("session_id", sessionID).Msg("operator unsubscribed from events")
	}()

	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	go h.pingLoop(conn)
	h.readLoop(conn, sessionID)
}

func (h *Handler) pingLoop(conn *websocket.Conn) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for range ticker.C {
		if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(5*time.Second)); err != nil {
			return
		}
	}
}

// Лента односторонняя: входящие сообщения читаются только ради
// обработки pong и закрытия.
func (h *Handler) readLoop(conn *websocket.Conn, sessionID string) {
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure,
				websocket.CloseNormalClosure) {
				log.Debug().Str("session_id", sessionID).Err(err).Msg("websocket read error")
			}
			return
		}
	}
}
