package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	MatchStatusPending   = "PENDING"
	MatchStatusConfirmed = "CONFIRMED"
	MatchStatusRejected  = "REJECTED"
)

// Match links a lost report to a found report. Rows are produced by the
// external matching pipeline; this service only lists and reviews them.
type Match struct {
	ID            uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	LostReportID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"lost_report_id"`
	FoundReportID uuid.UUID      `gorm:"type:uuid;not null;index" json:"found_report_id"`
	Scores        datatypes.JSON `gorm:"type:jsonb;default:'{}'" json:"scores"`
	FusedScore    float64        `json:"fused_score"`
	Status        string         `gorm:"not null;default:'PENDING';size:20;index" json:"status"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	LostReport    Report         `gorm:"foreignKey:LostReportID" json:"-"`
	FoundReport   Report         `gorm:"foreignKey:FoundReportID" json:"-"`
}

// ValidMatchStatus reports whether s is a known match review status.
func ValidMatchStatus(s string) bool {
	switch s {
	case MatchStatusPending, MatchStatusConfirmed, MatchStatusRejected:
		return true
	}
	return false
}
