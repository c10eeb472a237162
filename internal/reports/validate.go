package reports

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/streethazard/reporter/internal/models"
)

// HazardTypes is the catalog offered by the submission form. Submissions are
// not restricted to it; any non-empty hazard type is accepted.
var HazardTypes = []string{
	"Pothole",
	"Broken Street Light",
	"Damaged Sidewalk",
	"Road Debris",
	"Missing Sign",
	"Flooding",
	"Other",
}

// NewReport is the caller-supplied input for a submission. SubmittedBy is
// accepted on the wire but never trusted; the owner is always the actor.
type NewReport struct {
	Location    string `json:"location"`
	HazardType  string `json:"hazard_type"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	SubmittedBy string `json:"submitted_by"`
}

// ValidationError reports the first missing required field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid report: %s %s", e.Field, e.Reason)
}

// New validates input and builds a report owned by the actor. Required
// fields are checked after trimming, in form order; the first empty one
// aborts with a ValidationError and no partial entity. On success the
// report carries a fresh id, the given creation time and pending status.
func New(input NewReport, actor Actor, id uuid.UUID, now time.Time) (models.Report, error) {
	location := strings.TrimSpace(input.Location)
	if location == "" {
		return models.Report{}, &ValidationError{Field: "location", Reason: "is required"}
	}
	hazardType := strings.TrimSpace(input.HazardType)
	if hazardType == "" {
		return models.Report{}, &ValidationError{Field: "hazard_type", Reason: "is required"}
	}
	description := strings.TrimSpace(input.Description)
	if description == "" {
		return models.Report{}, &ValidationError{Field: "description", Reason: "is required"}
	}

	return models.Report{
		ID:          id,
		Location:    location,
		HazardType:  hazardType,
		Description: description,
		ImageURL:    strings.TrimSpace(input.ImageURL),
		SubmittedBy: actor.Username,
		ReporterID:  actor.ID,
		Timestamp:   now,
		Status:      models.StatusPending,
	}, nil
}
