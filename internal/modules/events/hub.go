package events

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// BookingEvent - событие бронирования, рассылаемое операторам.
type BookingEvent struct {
	Type           string `json:"type"`
	Action         string `json:"action"`
	BookingID      int64  `json:"booking_id"`
	Status         string `json:"status"`
	ApartmentTitle string `json:"apartment_title"`
	BeginDate      string `json:"begin_date"`
}

// Hub держит живые соединения операторов по идентификатору сессии.
// Повторное подключение той же сессии вытесняет старое соединение.
type Hub struct {
	mu          sync.RWMutex
	connections map[string]*websocket.Conn
}

func NewHub() *Hub {
	return &Hub{
		connections: make(map[string]*websocket.Conn),
	}
}

func (h *Hub) Register(sessionID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if old, ok := h.connections[sessionID]; ok && old != nil {
		_ = old.Close()
	}
	h.connections[sessionID] = conn
}

func (h *Hub) Unregister(sessionID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if conn, ok := h.connections[sessionID]; ok && conn != nil {
		_ = conn.Close()
		delete(h.connections, sessionID)
	}
}

func (h *Hub) OnlineCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.connections)
}

// Broadcast шлет сообщение всем подключенным. Мертвые соединения
// снимаются с учета.
func (h *Hub) Broadcast(message any) {
	h.mu.RLock()
	conns := make(map[string]*websocket.Conn, len(h.connections))
	for sessionID, conn := range h.connections {
		conns[sessionID] = conn
	}
	h.mu.RUnlock()

	for sessionID, conn := range conns {
		if err := conn.WriteJSON(message); err != nil {
			log.Debug().Str("session_id", sessionID).Err(err).Msg("dropping dead websocket")
			h.Unregister(sessionID)
		}
	}
}

// NotifyBookingEvent рассылает событие вебхука подключенным операторам.
func (h *Hub) NotifyBookingEvent(action string, bookingID int64, status, apartmentTitle string, beginDate time.Time) {
	h.Broadcast(BookingEvent{
		Type:           "booking_event",
		Action:         action,
		BookingID:      bookingID,
		Status:         status,
		ApartmentTitle: apartmentTitle,
		BeginDate:      beginDate.Format("2006-01-02"),
	})
}

func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for sessionID, conn := range h.connections {
		if conn != nil {
			_ = conn.Close()
		}
		delete(h.connections, sessionID)
	}
}
