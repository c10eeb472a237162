// Package authctx extracts the acting identity from a request and provides
// ownership scoping for store queries.
package authctx

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/streethazard/reporter/internal/reports"
)

var ErrNoActor = errors.New("no authenticated actor in context")

// Actor builds the acting identity from the JWT claims the auth middleware
// stored in context locals.
func Actor(c *fiber.Ctx) (reports.Actor, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return reports.Actor{}, ErrNoActor
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return reports.Actor{}, ErrNoActor
	}

	sub, _ := claims["sub"].(string)
	id, err := uuid.Parse(sub)
	if err != nil {
		return reports.Actor{}, ErrNoActor
	}

	username, _ := claims["username"].(string)
	role, _ := claims["role"].(string)
	if username == "" {
		return reports.Actor{}, ErrNoActor
	}

	return reports.Actor{ID: id, Username: username, Role: role}, nil
}

// Email returns the email claim, used by the config-based admin allowlist.
func Email(c *fiber.Ctx) string {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return ""
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ""
	}
	email, _ := claims["email"].(string)
	return email
}
