package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleVolunteer = "VOLUNTEER"
	RoleAdmin     = "ADMIN"
)

// Profile carries per-user metadata separate from credentials: role,
// contact channel for alerts, and the facial-recognition/QR consent flag.
type Profile struct {
	UserID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Role          string    `gorm:"size:20;not null;default:'VOLUNTEER'" json:"role"`
	Contact       string    `gorm:"not null;size:255" json:"contact"`
	ConsentFaceQR bool      `gorm:"not null;default:false" json:"consent_face_qr"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	User          User      `gorm:"foreignKey:UserID" json:"-"`
}

// ValidRole reports whether s is a known profile role.
func ValidRole(s string) bool {
	return s == RoleVolunteer || s == RoleAdmin
}
