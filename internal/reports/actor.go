package reports

import (
	"github.com/google/uuid"

	"github.com/streethazard/reporter/internal/models"
)

// Actor is the authenticated identity an operation runs as.
type Actor struct {
	ID       uuid.UUID
	Username string
	Role     string
}

func (a Actor) IsAdmin() bool {
	return a.Role == models.RoleAdmin
}

// ViewMode is the admin-only toggle between seeing only own reports and
// seeing everything. Non-admins are always pinned to ViewUser.
type ViewMode string

const (
	ViewUser  ViewMode = "user"
	ViewAdmin ViewMode = "admin"
)

// ParseViewMode maps a raw query value to a view mode, defaulting to user.
func ParseViewMode(s string) ViewMode {
	if s == string(ViewAdmin) {
		return ViewAdmin
	}
	return ViewUser
}

// Section is a navigation target scoping the visible report set.
type Section string

const (
	SectionDashboard      Section = "dashboard"
	SectionMyReports      Section = "my-reports"
	SectionAllReports     Section = "all-reports"
	SectionUserManagement Section = "user-management"
	SectionSettings       Section = "settings"
)

// StatusFilter is the pending/resolved sub-filter applied after ownership
// filtering. FilterAll passes everything through unchanged.
type StatusFilter string

const (
	FilterAll      StatusFilter = "all"
	FilterPending  StatusFilter = "pending"
	FilterResolved StatusFilter = "resolved"
)

// ParseStatusFilter maps a raw query value to a status filter, defaulting
// to all.
func ParseStatusFilter(s string) StatusFilter {
	switch StatusFilter(s) {
	case FilterPending:
		return FilterPending
	case FilterResolved:
		return FilterResolved
	default:
		return FilterAll
	}
}
