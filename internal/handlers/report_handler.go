package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/streethazard/reporter/internal/authctx"
	"github.com/streethazard/reporter/internal/dto"
	"github.com/streethazard/reporter/internal/reports"
	"github.com/streethazard/reporter/internal/services"
	"github.com/streethazard/reporter/internal/view"
)

type ReportHandler struct {
	reportService *services.ReportService
}

func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

func (h *ReportHandler) Create(c *fiber.Ctx) error {
	actor, err := authctx.Actor(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var input reports.NewReport
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	report, err := h.reportService.Submit(c.UserContext(), actor, input)
	if err != nil {
		var verr *reports.ValidationError
		if errors.As(err, &verr) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: verr.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create report",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(report)
}

// List returns the report set visible to the actor. Query params: view
// (user|admin), section, status (all|pending|resolved).
func (h *ReportHandler) List(c *fiber.Ctx) error {
	actor, err := authctx.Actor(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	mode := reports.ParseViewMode(c.Query("view"))
	section := reports.Section(c.Query("section"))
	filter := reports.ParseStatusFilter(c.Query("status"))

	visible, err := h.reportService.List(c.UserContext(), actor, mode, section, filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch reports",
		})
	}

	return c.JSON(dto.ReportListResponse{Reports: visible, Total: len(visible)})
}

func (h *ReportHandler) Get(c *fiber.Ctx) error {
	actor, err := authctx.Actor(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid report ID",
		})
	}

	report, err := h.reportService.Get(c.UserContext(), actor, id)
	if err != nil {
		if errors.Is(err, services.ErrReportNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Report not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch report",
		})
	}

	return c.JSON(report)
}

// Dashboard resolves the dashboard variant for the actor and returns it
// together with its visible report set and stat counters.
func (h *ReportHandler) Dashboard(c *fiber.Ctx) error {
	actor, err := authctx.Actor(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	requested := reports.ParseViewMode(c.Query("view"))
	section := reports.Section(c.Query("section", string(reports.SectionDashboard)))

	dashboard := view.SelectDashboard(actor, requested, section)

	visible, err := h.reportService.List(c.UserContext(), actor, dashboard.Mode, dashboard.Section, reports.ParseStatusFilter(c.Query("status")))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch reports",
		})
	}

	return c.JSON(dto.DashboardResponse{
		Dashboard: dashboard,
		Stats:     reports.CountStatuses(visible),
		Reports:   visible,
	})
}

// HazardTypes returns the submission form catalog.
func (h *ReportHandler) HazardTypes(c *fiber.Ctx) error {
	return c.JSON(dto.HazardTypesResponse{HazardTypes: reports.HazardTypes})
}

// ToggleStatus flips a report between pending and resolved. Admin route;
// the service re-checks the actor's role itself.
func (h *ReportHandler) ToggleStatus(c *fiber.Ctx) error {
	actor, err := authctx.Actor(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid report ID",
		})
	}

	report, err := h.reportService.ToggleStatus(c.UserContext(), actor, id)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAdminOnly):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrReportNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update report status",
		})
	}

	return c.JSON(report)
}

func (h *ReportHandler) Delete(c *fiber.Ctx) error {
	actor, err := authctx.Actor(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid report ID",
		})
	}

	if err := h.reportService.Delete(c.UserContext(), actor, id); err != nil {
		switch {
		case errors.Is(err, services.ErrAdminOnly):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrReportNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete report",
		})
	}

	return c.JSON(fiber.Map{"message": "Report deleted successfully"})
}
