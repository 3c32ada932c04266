package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/loftlabs/loft-backend/internal/dto"
	"github.com/loftlabs/loft-backend/internal/middleware"
	"github.com/loftlabs/loft-backend/internal/models"
	"github.com/loftlabs/loft-backend/internal/services"
)

type ReportHandler struct {
	reportService *services.ReportService
}

func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

func (h *ReportHandler) CreateLost(c *fiber.Ctx) error {
	return h.create(c, models.ReportKindLost)
}

func (h *ReportHandler) CreateFound(c *fiber.Ctx) error {
	return h.create(c, models.ReportKindFound)
}

// create handles the multipart submission shared by both report kinds:
// scalar form fields plus any number of photo files under "photos".
func (h *ReportHandler) create(c *fiber.Ctx, kind string) error {
	reporterID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	in := &services.CreateReportInput{
		SubjectType: c.FormValue("subject"),
		RefIDs:      splitRefIDs(c.FormValue("refs")),
		Description: c.FormValue("desc_text"),
		Transcript:  c.FormValue("transcript"),
		Language:    c.FormValue("lang"),
		Location:    c.FormValue("location"),
	}

	if form, err := c.MultipartForm(); err == nil && form != nil {
		in.Photos = form.File["photos"]
	}

	report, err := h.reportService.Create(c.Context(), reporterID, kind, in)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(report)
}

func (h *ReportHandler) List(c *fiber.Ctx) error {
	kind := c.Query("type")
	status := c.Query("status")

	reports, err := h.reportService.List(kind, status)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.JSON(reports)
}

func (h *ReportHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid report ID",
		})
	}

	report, err := h.reportService.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrReportNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch report",
		})
	}

	return c.JSON(report)
}

func splitRefIDs(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	ids := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			ids = append(ids, trimmed)
		}
	}
	return ids
}
