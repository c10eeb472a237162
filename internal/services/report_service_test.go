package services

import (
	"context"
	"testing"
	"time"

	gormsqlite "github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/streethazard/reporter/internal/config"
	"github.com/streethazard/reporter/internal/models"
	"github.com/streethazard/reporter/internal/reports"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: 168 * time.Hour,
		StoreTimeout:     5 * time.Second,
	}
}

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(gormsqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.RefreshToken{}, &models.Report{}); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}

	return db
}

func seedUser(t *testing.T, db *gorm.DB, username, role string) reports.Actor {
	t.Helper()

	user := models.User{
		ID:       uuid.New(),
		Username: username,
		Email:    username + "@example.com",
		Password: "x",
		Role:     role,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user %s: %v", username, err)
	}
	return reports.Actor{ID: user.ID, Username: user.Username, Role: user.Role}
}

func seedReport(t *testing.T, db *gorm.DB, actor reports.Actor, status string, ts time.Time) models.Report {
	t.Helper()

	r := models.Report{
		ID:          uuid.New(),
		Location:    "5th and Main",
		HazardType:  "Pothole",
		Description: "Deep pothole",
		SubmittedBy: actor.Username,
		ReporterID:  actor.ID,
		Timestamp:   ts,
		Status:      status,
	}
	if err := db.Create(&r).Error; err != nil {
		t.Fatalf("seed report: %v", err)
	}
	return r
}

func TestSubmitForcesOwnerAndPendingStatus(t *testing.T) {
	db := setupDB(t)
	svc := NewReportService(db, testConfig())
	alice := seedUser(t, db, "alice", models.RoleUser)

	report, err := svc.Submit(context.Background(), alice, reports.NewReport{
		Location:    "Oak Ave",
		HazardType:  "Flooding",
		Description: "Standing water",
		SubmittedBy: "bob",
	})
	require.NoError(t, err)

	assert.Equal(t, models.StatusPending, report.Status)
	assert.Equal(t, "alice", report.SubmittedBy)

	var stored models.Report
	require.NoError(t, db.First(&stored, "id = ?", report.ID).Error)
	assert.Equal(t, "alice", stored.SubmittedBy)
	assert.Equal(t, models.StatusPending, stored.Status)
}

func TestSubmitRejectsMissingFieldsWithoutPersisting(t *testing.T) {
	db := setupDB(t)
	svc := NewReportService(db, testConfig())
	alice := seedUser(t, db, "alice", models.RoleUser)

	_, err := svc.Submit(context.Background(), alice, reports.NewReport{
		HazardType:  "Flooding",
		Description: "Standing water",
	})

	var verr *reports.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "location", verr.Field)

	var count int64
	db.Model(&models.Report{}).Count(&count)
	assert.Zero(t, count)
}

func TestToggleStatusIsItsOwnInverse(t *testing.T) {
	db := setupDB(t)
	svc := NewReportService(db, testConfig())
	carol := seedUser(t, db, "carol", models.RoleAdmin)
	r := seedReport(t, db, carol, models.StatusPending, time.Now().UTC())

	once, err := svc.ToggleStatus(context.Background(), carol, r.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusResolved, once.Status)

	twice, err := svc.ToggleStatus(context.Background(), carol, r.ID)
	require.NoError(t, err)
	assert.Equal(t, r.Status, twice.Status)

	// Nothing but the status changed.
	assert.Equal(t, r.Location, twice.Location)
	assert.Equal(t, r.SubmittedBy, twice.SubmittedBy)
	assert.Equal(t, r.Timestamp.Unix(), twice.Timestamp.Unix())
}

func TestToggleStatusResolvedGoesBackToPending(t *testing.T) {
	db := setupDB(t)
	svc := NewReportService(db, testConfig())
	carol := seedUser(t, db, "carol", models.RoleAdmin)
	r := seedReport(t, db, carol, models.StatusResolved, time.Now().UTC())

	got, err := svc.ToggleStatus(context.Background(), carol, r.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, got.Status)
}

func TestToggleStatusRejectsNonAdminAndLeavesReportUnchanged(t *testing.T) {
	db := setupDB(t)
	svc := NewReportService(db, testConfig())
	bob := seedUser(t, db, "bob", models.RoleUser)
	r := seedReport(t, db, bob, models.StatusPending, time.Now().UTC())

	_, err := svc.ToggleStatus(context.Background(), bob, r.ID)
	assert.ErrorIs(t, err, ErrAdminOnly)

	var stored models.Report
	require.NoError(t, db.First(&stored, "id = ?", r.ID).Error)
	assert.Equal(t, models.StatusPending, stored.Status)
}

func TestToggleStatusMissingReport(t *testing.T) {
	db := setupDB(t)
	svc := NewReportService(db, testConfig())
	carol := seedUser(t, db, "carol", models.RoleAdmin)

	_, err := svc.ToggleStatus(context.Background(), carol, uuid.New())
	assert.ErrorIs(t, err, ErrReportNotFound)
}

func TestDeleteRejectsNonAdminAndKeepsReport(t *testing.T) {
	db := setupDB(t)
	svc := NewReportService(db, testConfig())
	bob := seedUser(t, db, "bob", models.RoleUser)
	r := seedReport(t, db, bob, models.StatusPending, time.Now().UTC())

	err := svc.Delete(context.Background(), bob, r.ID)
	assert.ErrorIs(t, err, ErrAdminOnly)

	var count int64
	db.Model(&models.Report{}).Where("id = ?", r.ID).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestDeleteRemovesReportAndSecondDeleteIsNotFound(t *testing.T) {
	db := setupDB(t)
	svc := NewReportService(db, testConfig())
	carol := seedUser(t, db, "carol", models.RoleAdmin)
	r := seedReport(t, db, carol, models.StatusPending, time.Now().UTC())

	require.NoError(t, svc.Delete(context.Background(), carol, r.ID))

	err := svc.Delete(context.Background(), carol, r.ID)
	assert.ErrorIs(t, err, ErrReportNotFound)
}

func TestDeleteMissingIDIsNotFound(t *testing.T) {
	db := setupDB(t)
	svc := NewReportService(db, testConfig())
	carol := seedUser(t, db, "carol", models.RoleAdmin)

	err := svc.Delete(context.Background(), carol, uuid.New())
	assert.ErrorIs(t, err, ErrReportNotFound)
}

func TestListUserNeverSeesForeignReports(t *testing.T) {
	db := setupDB(t)
	svc := NewReportService(db, testConfig())
	alice := seedUser(t, db, "alice", models.RoleUser)
	bob := seedUser(t, db, "bob", models.RoleUser)
	mine := seedReport(t, db, alice, models.StatusPending, time.Now().UTC())
	seedReport(t, db, bob, models.StatusResolved, time.Now().UTC())

	got, err := svc.List(context.Background(), alice, reports.ViewUser, reports.SectionDashboard, reports.FilterAll)
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, mine.ID, got[0].ID)

	// Requesting admin view changes nothing for a plain user.
	got, err = svc.List(context.Background(), alice, reports.ViewAdmin, reports.SectionAllReports, reports.FilterAll)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "alice", got[0].SubmittedBy)
}

func TestListAdminAllReportsSeesEveryOwner(t *testing.T) {
	db := setupDB(t)
	svc := NewReportService(db, testConfig())
	alice := seedUser(t, db, "alice", models.RoleUser)
	bob := seedUser(t, db, "bob", models.RoleUser)
	carol := seedUser(t, db, "carol", models.RoleAdmin)
	seedReport(t, db, alice, models.StatusPending, time.Now().UTC().Add(-time.Hour))
	seedReport(t, db, bob, models.StatusResolved, time.Now().UTC())

	got, err := svc.List(context.Background(), carol, reports.ViewAdmin, reports.SectionAllReports, reports.FilterAll)
	require.NoError(t, err)

	require.Len(t, got, 2)
	// Newest first.
	assert.Equal(t, "bob", got[0].SubmittedBy)
	assert.Equal(t, "alice", got[1].SubmittedBy)
}

func TestListStatusFilterComposesAfterVisibility(t *testing.T) {
	db := setupDB(t)
	svc := NewReportService(db, testConfig())
	carol := seedUser(t, db, "carol", models.RoleAdmin)
	alice := seedUser(t, db, "alice", models.RoleUser)
	seedReport(t, db, alice, models.StatusPending, time.Now().UTC())
	resolved := seedReport(t, db, alice, models.StatusResolved, time.Now().UTC())

	got, err := svc.List(context.Background(), carol, reports.ViewAdmin, reports.SectionAllReports, reports.FilterResolved)
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, resolved.ID, got[0].ID)
}

func TestGetHidesForeignReportFromUser(t *testing.T) {
	db := setupDB(t)
	svc := NewReportService(db, testConfig())
	alice := seedUser(t, db, "alice", models.RoleUser)
	bob := seedUser(t, db, "bob", models.RoleUser)
	r := seedReport(t, db, bob, models.StatusPending, time.Now().UTC())

	_, err := svc.Get(context.Background(), alice, r.ID)
	assert.ErrorIs(t, err, ErrReportNotFound)

	got, err := svc.Get(context.Background(), bob, r.ID)
	require.NoError(t, err)
	assert.Equal(t, r.ID, got.ID)
}
