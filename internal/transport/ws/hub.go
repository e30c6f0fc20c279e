// Package ws — websocket-лента изменений локального кэша для подключённых клиентов.
package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/Gunvolt24/oncall_routes/internal/domain"
	"github.com/Gunvolt24/oncall_routes/internal/ports"
	"github.com/Gunvolt24/oncall_routes/pkg/metrics"
	"github.com/gorilla/websocket"
)

// Config — параметры соединений.
type Config struct {
	SendBuffer   int
	PingInterval time.Duration
	WriteTimeout time.Duration
}

func (c Config) withDefaults() Config {
	if c.SendBuffer <= 0 {
		c.SendBuffer = 64
	}
	if c.PingInterval <= 0 {
		c.PingInterval = 54 * time.Second
	}
	if c.WriteTimeout <= 0 {
		c.WriteTimeout = 10 * time.Second
	}
	return c
}

// Hub — подключённые клиенты и рассылка им изменений кэша.
// Клиент с ?integration=<id> получает только изменения этой интеграции.
type Hub struct {
	cfg      Config
	log      ports.Logger
	upgrader websocket.Upgrader

	mu      sync.RWMutex
	clients map[*client]struct{}
	closed  bool
}

type client struct {
	hub       *Hub
	conn      *websocket.Conn
	send      chan []byte
	filter    string
	closeOnce sync.Once
}

func NewHub(cfg Config, log ports.Logger) *Hub {
	return &Hub{
		cfg: cfg.withDefaults(),
		log: log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		clients: make(map[*client]struct{}),
	}
}

// ServeWS — апгрейд соединения и регистрация клиента.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warnf(r.Context(), "websocket upgrade failed err=%v", err)
		return
	}
	c := &client{
		hub:    h,
		conn:   conn,
		send:   make(chan []byte, h.cfg.SendBuffer),
		filter: r.URL.Query().Get("integration"),
	}
	if !h.register(c) {
		_ = conn.Close()
		return
	}
	h.log.Infof(r.Context(), "websocket client connected integration=%q", c.filter)

	go c.writePump()
	go c.readPump()
}

// Broadcast — отправка изменения подходящим клиентам. Клиент с переполненным
// буфером отключается.
func (h *Hub) Broadcast(change domain.CacheChange) {
	msg, err := json.Marshal(change)
	if err != nil {
		h.log.Errorf(context.Background(), "marshal cache change failed err=%v", err)
		return
	}

	var slow []*client
	h.mu.RLock()
	for c := range h.clients {
		if !c.wants(change) {
			continue
		}
		select {
		case c.send <- msg:
		default:
			slow = append(slow, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range slow {
		h.log.Warnf(context.Background(), "websocket client too slow, disconnecting integration=%q", c.filter)
		h.unregister(c)
	}
}

// Clients — число подключённых клиентов.
func (h *Hub) Clients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Close — отключает всех клиентов; новые подключения отклоняются.
func (h *Hub) Close() {
	h.mu.Lock()
	h.closed = true
	clients := make([]*client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.Unlock()

	for _, c := range clients {
		h.unregister(c)
	}
}

func (h *Hub) register(c *client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	h.clients[c] = struct{}{}
	metrics.WSClients.Inc()
	return true
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	_, ok := h.clients[c]
	delete(h.clients, c)
	h.mu.Unlock()

	if ok {
		metrics.WSClients.Dec()
	}
	c.closeOnce.Do(func() { close(c.send) })
}

// wants — маршруты фильтруются по родителю, интеграции — по id в изменении.
func (c *client) wants(change domain.CacheChange) bool {
	if c.filter == "" {
		return true
	}
	if change.Parent == c.filter {
		return true
	}
	return slices.Contains(change.IDs, c.filter)
}

func (c *client) readPump() {
	defer func() {
		c.hub.unregister(c)
		_ = c.conn.Close()
	}()

	pongWait := c.hub.cfg.PingInterval * 10 / 9
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.hub.log.Warnf(context.Background(), "websocket read failed integration=%q err=%v", c.filter, err)
			}
			return
		}
	}
}

func (c *client) writePump() {
	ticker := time.NewTicker(c.hub.cfg.PingInterval)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(c.hub.cfg.WriteTimeout))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(c.hub.cfg.WriteTimeout))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
