package reports

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streethazard/reporter/internal/models"
)

func report(owner, status string, ts time.Time) models.Report {
	return models.Report{
		ID:          uuid.New(),
		Location:    "somewhere",
		HazardType:  "Pothole",
		Description: "d",
		SubmittedBy: owner,
		Timestamp:   ts,
		Status:      status,
	}
}

var base = time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

func TestVisibleUserSeesOnlyOwnReports(t *testing.T) {
	store := []models.Report{
		report("alice", models.StatusPending, base),
		report("bob", models.StatusResolved, base.Add(time.Hour)),
	}
	actor := Actor{ID: uuid.New(), Username: "alice", Role: models.RoleUser}

	got := Visible(store, actor, ViewUser, SectionDashboard)

	require.Len(t, got, 1)
	assert.Equal(t, "alice", got[0].SubmittedBy)

	for _, r := range got {
		assert.Equal(t, actor.Username, r.SubmittedBy)
	}
}

func TestVisibleAdminAllReportsSeesEverything(t *testing.T) {
	store := []models.Report{
		report("alice", models.StatusPending, base),
		report("bob", models.StatusResolved, base.Add(time.Hour)),
	}
	carol := Actor{ID: uuid.New(), Username: "carol", Role: models.RoleAdmin}

	got := Visible(store, carol, ViewAdmin, SectionAllReports)

	assert.Len(t, got, 2)
}

func TestVisibleAdminInUserModeSeesOnlyOwn(t *testing.T) {
	store := []models.Report{
		report("alice", models.StatusPending, base),
		report("carol", models.StatusPending, base.Add(time.Hour)),
	}
	carol := Actor{ID: uuid.New(), Username: "carol", Role: models.RoleAdmin}

	got := Visible(store, carol, ViewUser, SectionDashboard)

	require.Len(t, got, 1)
	assert.Equal(t, "carol", got[0].SubmittedBy)
}

func TestVisibleAdminMyReportsSectionNarrowsToOwn(t *testing.T) {
	store := []models.Report{
		report("alice", models.StatusPending, base),
		report("carol", models.StatusPending, base.Add(time.Hour)),
	}
	carol := Actor{ID: uuid.New(), Username: "carol", Role: models.RoleAdmin}

	got := Visible(store, carol, ViewAdmin, SectionMyReports)

	require.Len(t, got, 1)
	assert.Equal(t, "carol", got[0].SubmittedBy)
}

func TestVisibleOrdersNewestFirstAndKeepsTieOrder(t *testing.T) {
	oldest := report("carol", models.StatusPending, base)
	tieA := report("carol", models.StatusPending, base.Add(time.Hour))
	tieB := report("carol", models.StatusResolved, base.Add(time.Hour))
	newest := report("carol", models.StatusPending, base.Add(2*time.Hour))
	store := []models.Report{oldest, tieA, tieB, newest}

	carol := Actor{ID: uuid.New(), Username: "carol", Role: models.RoleAdmin}
	got := Visible(store, carol, ViewAdmin, SectionAllReports)

	require.Len(t, got, 4)
	assert.Equal(t, newest.ID, got[0].ID)
	// Equal timestamps keep store order.
	assert.Equal(t, tieA.ID, got[1].ID)
	assert.Equal(t, tieB.ID, got[2].ID)
	assert.Equal(t, oldest.ID, got[3].ID)
}

func TestVisibleDoesNotMutateInput(t *testing.T) {
	store := []models.Report{
		report("alice", models.StatusPending, base.Add(time.Hour)),
		report("alice", models.StatusPending, base.Add(2*time.Hour)),
		report("bob", models.StatusPending, base),
	}
	orig := make([]models.Report, len(store))
	copy(orig, store)

	alice := Actor{ID: uuid.New(), Username: "alice", Role: models.RoleUser}
	Visible(store, alice, ViewUser, SectionDashboard)

	assert.Equal(t, orig, store)
}

func TestFilterStatusAllIsIdentity(t *testing.T) {
	store := []models.Report{
		report("alice", models.StatusPending, base),
		report("bob", models.StatusResolved, base),
	}

	got := FilterStatus(store, FilterAll)

	assert.Equal(t, store, got)
}

func TestFilterStatusNarrowsToOneStatus(t *testing.T) {
	store := []models.Report{
		report("alice", models.StatusPending, base),
		report("bob", models.StatusResolved, base),
		report("carol", models.StatusPending, base),
	}

	pending := FilterStatus(store, FilterPending)
	require.Len(t, pending, 2)
	for _, r := range pending {
		assert.Equal(t, models.StatusPending, r.Status)
	}

	resolved := FilterStatus(store, FilterResolved)
	require.Len(t, resolved, 1)
	assert.Equal(t, "bob", resolved[0].SubmittedBy)
}

func TestCountStatuses(t *testing.T) {
	store := []models.Report{
		report("alice", models.StatusPending, base),
		report("bob", models.StatusResolved, base),
		report("carol", models.StatusPending, base),
	}

	stats := CountStatuses(store)

	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 2, stats.Pending)
	assert.Equal(t, 1, stats.Resolved)
}

func TestParseViewModeDefaultsToUser(t *testing.T) {
	assert.Equal(t, ViewAdmin, ParseViewMode("admin"))
	assert.Equal(t, ViewUser, ParseViewMode("user"))
	assert.Equal(t, ViewUser, ParseViewMode(""))
	assert.Equal(t, ViewUser, ParseViewMode("root"))
}

func TestParseStatusFilterDefaultsToAll(t *testing.T) {
	assert.Equal(t, FilterPending, ParseStatusFilter("pending"))
	assert.Equal(t, FilterResolved, ParseStatusFilter("resolved"))
	assert.Equal(t, FilterAll, ParseStatusFilter(""))
	assert.Equal(t, FilterAll, ParseStatusFilter("archived"))
}
