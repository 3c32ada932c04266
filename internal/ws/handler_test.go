package ws

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/loftlabs/loft-backend/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpgradeRejectsPlainHTTP(t *testing.T) {
	h := NewHandler(NewRegistry(), &config.Config{
		WSPingInterval: 50 * time.Second,
		WSPongTimeout:  60 * time.Second,
	})

	app := fiber.New()
	app.Use("/ws", h.Upgrade)
	app.Get("/ws/:userId", func(c *fiber.Ctx) error {
		return c.SendString("upgraded")
	})

	req := httptest.NewRequest("GET", "/ws/1b4e28ba-2fa1-11d2-883f-0016d3cca427", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUpgradeRequired, resp.StatusCode)
}

func TestUpgradePassesWebSocketHandshake(t *testing.T) {
	h := NewHandler(NewRegistry(), &config.Config{
		WSPingInterval: 50 * time.Second,
		WSPongTimeout:  60 * time.Second,
	})

	app := fiber.New()
	app.Use("/ws", h.Upgrade)
	app.Get("/ws/:userId", func(c *fiber.Ctx) error {
		return c.SendString("reached")
	})

	req := httptest.NewRequest("GET", "/ws/1b4e28ba-2fa1-11d2-883f-0016d3cca427", nil)
	req.Header.Set("Connection", "Upgrade")
	req.Header.Set("Upgrade", "websocket")
	req.Header.Set("Sec-WebSocket-Version", "13")
	req.Header.Set("Sec-WebSocket-Key", "dGhlIHNhbXBsZSBub25jZQ==")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
