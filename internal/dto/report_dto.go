package dto

import (
	"github.com/streethazard/reporter/internal/models"
	"github.com/streethazard/reporter/internal/reports"
	"github.com/streethazard/reporter/internal/view"
)

type ReportListResponse struct {
	Reports []models.Report `json:"reports"`
	Total   int             `json:"total"`
}

type DashboardResponse struct {
	Dashboard view.Dashboard  `json:"dashboard"`
	Stats     reports.Stats   `json:"stats"`
	Reports   []models.Report `json:"reports"`
}

type HazardTypesResponse struct {
	HazardTypes []string `json:"hazard_types"`
}

type PromoteUserRequest struct {
	Email string `json:"email"`
}

type UserListResponse struct {
	Users []UserResponse `json:"users"`
	Total int            `json:"total"`
}

// SettingsResponse mirrors the admin settings status cards.
type SettingsResponse struct {
	Database string `json:"database"`
	Users    string `json:"users"`
	Reports  string `json:"reports"`
}
