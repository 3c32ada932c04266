package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/loftlabs/loft-backend/internal/database"
	"github.com/loftlabs/loft-backend/internal/dto"
	"github.com/loftlabs/loft-backend/internal/storage"
)

type HealthHandler struct {
	images *storage.ImageStore
}

func NewHealthHandler(images *storage.ImageStore) *HealthHandler {
	return &HealthHandler{images: images}
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	dbStatus := "ok"
	if err := database.Ping(); err != nil {
		dbStatus = "unhealthy: " + err.Error()
	}

	storageStatus := "ok"
	if err := h.images.Health(c.Context()); err != nil {
		storageStatus = "unhealthy: " + err.Error()
	}

	return c.JSON(dto.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		DB:        dbStatus,
		Storage:   storageStatus,
	})
}
