package reports

import (
	"sort"

	"github.com/streethazard/reporter/internal/models"
)

// Visible derives the report subset the actor may see in the given view
// mode and section. Plain users, and admins browsing in user mode, only see
// their own submissions; an admin in admin mode sees everything unless the
// my-reports section narrows the set back to their own. The result is a
// fresh slice ordered newest first, stable for equal timestamps.
func Visible(all []models.Report, actor Actor, mode ViewMode, section Section) []models.Report {
	adminView := actor.IsAdmin() && mode == ViewAdmin
	ownOnly := !adminView || section == SectionMyReports

	out := make([]models.Report, 0, len(all))
	for _, r := range all {
		if ownOnly && r.SubmittedBy != actor.Username {
			continue
		}
		out = append(out, r)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out
}

// FilterStatus narrows reports to the given status. FilterAll is the
// identity: the input sequence is returned untouched.
func FilterStatus(in []models.Report, f StatusFilter) []models.Report {
	if f == FilterAll {
		return in
	}
	out := make([]models.Report, 0, len(in))
	for _, r := range in {
		if r.Status == string(f) {
			out = append(out, r)
		}
	}
	return out
}

// Stats are the dashboard counters.
type Stats struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Resolved int `json:"resolved"`
}

// CountStatuses tallies a report set for the dashboard stat cards.
func CountStatuses(in []models.Report) Stats {
	s := Stats{Total: len(in)}
	for _, r := range in {
		switch r.Status {
		case models.StatusPending:
			s.Pending++
		case models.StatusResolved:
			s.Resolved++
		}
	}
	return s
}
