package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/streethazard/reporter/internal/config"
	"github.com/streethazard/reporter/internal/models"
)

// UserService backs the admin user management panel.
type UserService struct {
	db           *gorm.DB
	storeTimeout time.Duration
}

func NewUserService(db *gorm.DB, cfg *config.Config) *UserService {
	return &UserService{db: db, storeTimeout: cfg.StoreTimeout}
}

func (s *UserService) store(ctx context.Context) (*gorm.DB, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	return s.db.WithContext(ctx), cancel
}

// ListUsers returns all accounts, newest first.
func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	db, cancel := s.store(ctx)
	defer cancel()

	var users []models.User
	if err := db.Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}
	return users, nil
}

// PromoteByEmail grants the admin role to the account registered under the
// given email. Promoting an existing admin is a no-op success.
func (s *UserService) PromoteByEmail(ctx context.Context, email string) (*models.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, ErrUserNotFound
	}

	db, cancel := s.store(ctx)
	defer cancel()

	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}

	if user.Role != models.RoleAdmin {
		if err := db.Model(&user).Update("role", models.RoleAdmin).Error; err != nil {
			return nil, fmt.Errorf("failed to promote user: %w", err)
		}
		user.Role = models.RoleAdmin
	}
	return &user, nil
}
