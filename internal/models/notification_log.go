package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	NotificationSMS  = "SMS"
	NotificationCall = "CALL"

	NotificationSimulatedSent = "SIMULATED_SENT"
	NotificationFailed        = "FAILED"
)

// NotificationLog records every simulated SMS/CALL alert attempt.
type NotificationLog struct {
	ID        uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	MatchID   *uuid.UUID `gorm:"type:uuid;index" json:"match_id,omitempty"`
	ReportID  *uuid.UUID `gorm:"type:uuid;index" json:"report_id,omitempty"`
	Recipient string     `gorm:"not null;size:255" json:"recipient"`
	Message   string     `gorm:"type:text;not null" json:"message"`
	Type      string     `gorm:"not null;size:10" json:"type"`
	Status    string     `gorm:"not null;default:'SIMULATED_SENT';size:20" json:"status"`
	CreatedAt time.Time  `json:"timestamp"`
}

// ValidNotificationType reports whether s is SMS or CALL.
func ValidNotificationType(s string) bool {
	return s == NotificationSMS || s == NotificationCall
}
