package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/streethazard/reporter/internal/authctx"
	"github.com/streethazard/reporter/internal/config"
	"github.com/streethazard/reporter/internal/dto"
	"github.com/streethazard/reporter/internal/models"
)

// AdminRequired gates admin routes. Order of checks:
// 1. Config admin token header
// 2. Config-based admin email allowlist
// 3. DB-based user Role field (authoritative; picks up promotions made
//    after the token was minted)
func AdminRequired(db *gorm.DB, cfg *config.Config) fiber.Handler {
	adminEmails := parseCSV(cfg.AdminEmails)

	return func(c *fiber.Ctx) error {
		if cfg.AdminToken != "" {
			if c.Get("X-Admin-Token") == cfg.AdminToken {
				return c.Next()
			}
		}

		actor, err := authctx.Actor(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}

		if contains(adminEmails, authctx.Email(c)) {
			return c.Next()
		}

		var user models.User
		if err := db.First(&user, "id = ?", actor.ID).Error; err == nil {
			if user.IsAdmin() {
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: "Admin access required",
		})
	}
}

func parseCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func contains(list []string, val string) bool {
	for _, item := range list {
		if item == val {
			return true
		}
	}
	return false
}
