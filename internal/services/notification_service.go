package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/loftlabs/loft-backend/internal/dto"
	"github.com/loftlabs/loft-backend/internal/models"
	"github.com/loftlabs/loft-backend/internal/ws"
	"gorm.io/gorm"
)

// NotificationService logs simulated SMS/CALL alerts. No real telephony is
// wired up; every attempt is persisted with a SIMULATED_SENT status, and
// recipients who are known users also get the message pushed to their live
// connections.
type NotificationService struct {
	db       *gorm.DB
	registry *ws.Registry
}

func NewNotificationService(db *gorm.DB, registry *ws.Registry) *NotificationService {
	return &NotificationService{db: db, registry: registry}
}

func (s *NotificationService) SendMock(req *dto.SendMockNotificationRequest) (*models.NotificationLog, error) {
	if strings.TrimSpace(req.Recipient) == "" {
		return nil, errors.New("recipient is required")
	}
	if strings.TrimSpace(req.Message) == "" {
		return nil, errors.New("message is required")
	}
	if !models.ValidNotificationType(req.Type) {
		return nil, fmt.Errorf("invalid notification type: must be %s or %s", models.NotificationSMS, models.NotificationCall)
	}

	entry := models.NotificationLog{
		ID:        uuid.New(),
		Recipient: req.Recipient,
		Message:   req.Message,
		Type:      req.Type,
		Status:    models.NotificationSimulatedSent,
	}
	if id, err := uuid.Parse(req.MatchID); err == nil && req.MatchID != "" {
		entry.MatchID = &id
	}
	if id, err := uuid.Parse(req.ReportID); err == nil && req.ReportID != "" {
		entry.ReportID = &id
	}

	if err := s.db.Create(&entry).Error; err != nil {
		return nil, fmt.Errorf("failed to log notification: %w", err)
	}

	slog.Info("simulated notification sent", "type", req.Type, "recipient", req.Recipient)

	// Recipient addresses are contact strings; when one belongs to a known
	// user, mirror the alert onto that user's live connections.
	var user models.User
	if err := s.db.First(&user, "email = ?", req.Recipient).Error; err == nil {
		evt := ws.Event{
			Type:    "notification",
			Message: req.Message,
		}
		if entry.MatchID != nil {
			evt.MatchID = entry.MatchID.String()
		}
		if entry.ReportID != nil {
			evt.ReportID = entry.ReportID.String()
		}
		s.registry.Push(user.ID, evt)
	}

	return &entry, nil
}

// List returns the notification log, newest first. Admin-only surface.
func (s *NotificationService) List(limit, offset int) ([]models.NotificationLog, int64, error) {
	var entries []models.NotificationLog
	var total int64

	query := s.db.Model(&models.NotificationLog{})
	query.Count(&total)

	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&entries).Error; err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}
