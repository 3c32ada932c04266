package ws

import (
	"log/slog"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/loftlabs/loft-backend/internal/config"
)

const writeTimeout = 10 * time.Second

// Handler serves the /ws/:userId endpoint: one goroutine per connection
// blocked on reads, one on writes, with ping/pong idle detection.
type Handler struct {
	registry     *Registry
	pingInterval time.Duration
	pongTimeout  time.Duration
}

func NewHandler(registry *Registry, cfg *config.Config) *Handler {
	return &Handler{
		registry:     registry,
		pingInterval: cfg.WSPingInterval,
		pongTimeout:  cfg.WSPongTimeout,
	}
}

// Upgrade rejects plain HTTP requests on WebSocket routes.
func (h *Handler) Upgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// Serve returns the connection handler for GET /ws/:userId.
func (h *Handler) Serve() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		userID, err := uuid.Parse(conn.Params("userId"))
		if err != nil {
			deadline := time.Now().Add(writeTimeout)
			msg := websocket.FormatCloseMessage(websocket.ClosePolicyViolation, "invalid user id")
			_ = conn.WriteControl(websocket.CloseMessage, msg, deadline)
			_ = conn.Close()
			return
		}

		client := h.registry.Register(userID)
		slog.Info("websocket connected", "user_id", userID.String())

		go h.writePump(conn, client)
		h.readPump(conn)

		h.registry.Unregister(client)
		slog.Info("websocket disconnected", "user_id", userID.String())
	})
}

// readPump blocks on the connection until the client disconnects or goes
// idle past the pong timeout. Inbound frames are discarded; the channel is
// push-only.
func (h *Handler) readPump(conn *websocket.Conn) {
	_ = conn.SetReadDeadline(time.Now().Add(h.pongTimeout))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(h.pongTimeout))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// writePump drains the client's event channel onto the connection and
// pings on an interval. Any failed write unregisters the client and closes
// the connection.
func (h *Handler) writePump(conn *websocket.Conn, client *Client) {
	ticker := time.NewTicker(h.pingInterval)
	defer func() {
		ticker.Stop()
		_ = conn.Close()
	}()

	for {
		select {
		case evt, ok := <-client.Events():
			if !ok {
				deadline := time.Now().Add(writeTimeout)
				msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
				_ = conn.WriteControl(websocket.CloseMessage, msg, deadline)
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := conn.WriteJSON(evt); err != nil {
				slog.Info("websocket write failed, dropping connection",
					"user_id", client.UserID().String(), "error", err)
				h.registry.Unregister(client)
				return
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeTimeout)); err != nil {
				h.registry.Unregister(client)
				return
			}
		}
	}
}
