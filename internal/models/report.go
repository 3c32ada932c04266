package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	ReportKindLost  = "LOST"
	ReportKindFound = "FOUND"

	SubjectPerson = "PERSON"
	SubjectItem   = "ITEM"

	ReportStatusOpen     = "OPEN"
	ReportStatusMatched  = "MATCHED"
	ReportStatusReunited = "REUNITED"
	ReportStatusClosed   = "CLOSED"
)

// Report is a lost or found record for a person or an item. Photos are
// stored in the object store; only their public URLs are persisted here.
type Report struct {
	ID          uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ReporterID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"reporter_id"`
	Kind        string         `gorm:"not null;size:10;index" json:"type"`
	SubjectType string         `gorm:"not null;size:10" json:"subject_type"`
	RefIDs      datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"ref_ids"`
	Description string         `gorm:"type:text;not null" json:"description_text"`
	Transcript  string         `gorm:"type:text" json:"transcript,omitempty"`
	Language    string         `gorm:"size:16" json:"language"`
	Location    string         `gorm:"not null;size:255" json:"location"`
	PhotoURLs   datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"photo_urls"`
	Status      string         `gorm:"not null;default:'OPEN';size:20;index" json:"status"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	Reporter    User           `gorm:"foreignKey:ReporterID" json:"-"`
}

// ValidReportKind reports whether s is LOST or FOUND.
func ValidReportKind(s string) bool {
	return s == ReportKindLost || s == ReportKindFound
}

// ValidSubjectType reports whether s is PERSON or ITEM.
func ValidSubjectType(s string) bool {
	return s == SubjectPerson || s == SubjectItem
}

// ValidReportStatus reports whether s is a known report lifecycle status.
func ValidReportStatus(s string) bool {
	switch s {
	case ReportStatusOpen, ReportStatusMatched, ReportStatusReunited, ReportStatusClosed:
		return true
	}
	return false
}
