package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending  = "pending"
	StatusResolved = "resolved"
)

// Report is a street hazard submitted by a user. SubmittedBy, ReporterID and
// Timestamp are fixed at creation; only Status ever changes afterwards, and
// only through an admin toggle.
type Report struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Location    string    `gorm:"not null;size:255" json:"location"`
	HazardType  string    `gorm:"not null;size:100" json:"hazard_type"`
	Description string    `gorm:"not null;size:2000" json:"description"`
	ImageURL    string    `gorm:"type:text" json:"image_url,omitempty"`
	SubmittedBy string    `gorm:"not null;size:100;index" json:"submitted_by"`
	ReporterID  uuid.UUID `gorm:"type:uuid;not null;index" json:"reporter_id"`
	Timestamp   time.Time `gorm:"not null;index" json:"timestamp"`
	Status      string    `gorm:"not null;default:'pending';size:20" json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Reporter    User      `gorm:"foreignKey:ReporterID" json:"-"`
}
