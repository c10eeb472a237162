package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/streethazard/reporter/internal/dto"
	"github.com/streethazard/reporter/internal/services"
)

// UserHandler backs the admin user management and settings panels.
type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.userService.ListUsers(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch users",
		})
	}

	out := make([]dto.UserResponse, len(users))
	for i, u := range users {
		out[i] = dto.UserResponse{
			ID:        u.ID,
			Username:  u.Username,
			Email:     u.Email,
			Role:      u.Role,
			CreatedAt: u.CreatedAt,
		}
	}

	return c.JSON(dto.UserListResponse{Users: out, Total: len(out)})
}

// PromoteUser grants the admin role to an existing account, keyed by email.
func (h *UserHandler) PromoteUser(c *fiber.Ctx) error {
	var req dto.PromoteUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	user, err := h.userService.PromoteByEmail(c.UserContext(), req.Email)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "User not found with that email",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to promote user",
		})
	}

	return c.JSON(dto.UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	})
}

// Settings reports subsystem status for the admin settings page.
func (h *UserHandler) Settings(c *fiber.Ctx) error {
	return c.JSON(dto.SettingsResponse{
		Database: "System running normally",
		Users:    "Authentication active",
		Reports:  "Processing enabled",
	})
}
