package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/streethazard/reporter/internal/authctx"
	"github.com/streethazard/reporter/internal/config"
	"github.com/streethazard/reporter/internal/models"
	"github.com/streethazard/reporter/internal/reports"
)

var (
	ErrAdminOnly      = errors.New("admin access required")
	ErrReportNotFound = errors.New("report not found")
)

// ReportService governs the report lifecycle: submission, the admin status
// toggle and admin deletion. Every store call runs under a bounded deadline;
// a failed call leaves no partial state and the caller resubmits.
type ReportService struct {
	db           *gorm.DB
	storeTimeout time.Duration
}

func NewReportService(db *gorm.DB, cfg *config.Config) *ReportService {
	return &ReportService{db: db, storeTimeout: cfg.StoreTimeout}
}

func (s *ReportService) store(ctx context.Context) (*gorm.DB, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	return s.db.WithContext(ctx), cancel
}

// Submit creates a pending report for the actor. Any role may submit; the
// owner is forced to the actor's identity regardless of what the input
// claims.
func (s *ReportService) Submit(ctx context.Context, actor reports.Actor, input reports.NewReport) (*models.Report, error) {
	report, err := reports.New(input, actor, uuid.New(), time.Now().UTC())
	if err != nil {
		return nil, err
	}

	db, cancel := s.store(ctx)
	defer cancel()
	if err := db.Create(&report).Error; err != nil {
		return nil, fmt.Errorf("failed to create report: %w", err)
	}
	return &report, nil
}

// List fetches reports and derives the subset the actor may see. The store
// query is owner-scoped when only own reports can be visible, but the
// visibility filter is always re-applied to whatever comes back.
func (s *ReportService) List(ctx context.Context, actor reports.Actor, mode reports.ViewMode, section reports.Section, filter reports.StatusFilter) ([]models.Report, error) {
	db, cancel := s.store(ctx)
	defer cancel()

	query := db.Order("timestamp DESC")
	if !actor.IsAdmin() || mode != reports.ViewAdmin || section == reports.SectionMyReports {
		query = query.Scopes(authctx.OwnedBy(actor.Username))
	}

	var all []models.Report
	if err := query.Find(&all).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch reports: %w", err)
	}

	visible := reports.Visible(all, actor, mode, section)
	return reports.FilterStatus(visible, filter), nil
}

// Get returns a single report if the actor may see it.
func (s *ReportService) Get(ctx context.Context, actor reports.Actor, id uuid.UUID) (*models.Report, error) {
	db, cancel := s.store(ctx)
	defer cancel()

	var report models.Report
	if err := db.First(&report, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, fmt.Errorf("failed to fetch report: %w", err)
	}

	if !actor.IsAdmin() && report.SubmittedBy != actor.Username {
		return nil, ErrReportNotFound
	}
	return &report, nil
}

// ToggleStatus flips a report between pending and resolved. Admin only; a
// non-admin call fails and the report is unchanged. Only the status column
// is written.
func (s *ReportService) ToggleStatus(ctx context.Context, actor reports.Actor, id uuid.UUID) (*models.Report, error) {
	if !actor.IsAdmin() {
		return nil, ErrAdminOnly
	}

	db, cancel := s.store(ctx)
	defer cancel()

	var report models.Report
	if err := db.First(&report, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, fmt.Errorf("failed to fetch report: %w", err)
	}

	next := models.StatusResolved
	if report.Status == models.StatusResolved {
		next = models.StatusPending
	}

	if err := db.Model(&report).Update("status", next).Error; err != nil {
		return nil, fmt.Errorf("failed to update report status: %w", err)
	}

	report.Status = next
	return &report, nil
}

// Delete permanently removes a report. Admin only. A missing id, including
// a second delete of the same id, fails with ErrReportNotFound.
func (s *ReportService) Delete(ctx context.Context, actor reports.Actor, id uuid.UUID) error {
	if !actor.IsAdmin() {
		return ErrAdminOnly
	}

	db, cancel := s.store(ctx)
	defer cancel()

	result := db.Where("id = ?", id).Delete(&models.Report{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete report: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrReportNotFound
	}
	return nil
}
