// Package view decides which dashboard variant and navigation section to
// render for an actor, as a pure decision computed once per request.
package view

import (
	"github.com/streethazard/reporter/internal/reports"
)

type Kind string

const (
	KindUser  Kind = "user"
	KindAdmin Kind = "admin"
)

// Dashboard is the rendering decision: which dashboard variant, the
// effective section after degradation, and its display title.
type Dashboard struct {
	Kind    Kind             `json:"kind"`
	Mode    reports.ViewMode `json:"view_mode"`
	Section reports.Section  `json:"section"`
	Title   string           `json:"title"`
}

var titles = map[reports.Section]string{
	reports.SectionDashboard:      "Dashboard",
	reports.SectionMyReports:      "My Reports",
	reports.SectionAllReports:     "All Reports",
	reports.SectionUserManagement: "User Management",
	reports.SectionSettings:       "Settings",
}

// Title maps a section to its display string. Unrecognized sections fall
// back to the generic dashboard label; this never fails.
func Title(section reports.Section) string {
	if t, ok := titles[section]; ok {
		return t
	}
	return titles[reports.SectionDashboard]
}

// EffectiveMode pins non-admin actors to user mode; the toggle only exists
// for admins.
func EffectiveMode(actor reports.Actor, requested reports.ViewMode) reports.ViewMode {
	if !actor.IsAdmin() {
		return reports.ViewUser
	}
	return requested
}

// SelectDashboard resolves the dashboard for an actor. Admin-only sections
// degrade to the default dashboard section outside admin mode, which is
// also how a mode switch resets the section.
func SelectDashboard(actor reports.Actor, requested reports.ViewMode, section reports.Section) Dashboard {
	mode := EffectiveMode(actor, requested)

	kind := KindUser
	if actor.IsAdmin() && mode == reports.ViewAdmin {
		kind = KindAdmin
	}

	section = normalizeSection(section, kind)

	return Dashboard{
		Kind:    kind,
		Mode:    mode,
		Section: section,
		Title:   Title(section),
	}
}

func normalizeSection(section reports.Section, kind Kind) reports.Section {
	switch section {
	case reports.SectionDashboard, reports.SectionMyReports, reports.SectionSettings:
		return section
	case reports.SectionAllReports, reports.SectionUserManagement:
		if kind == KindAdmin {
			return section
		}
		return reports.SectionDashboard
	default:
		return reports.SectionDashboard
	}
}
