package services

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"reservas-backend/models"
	"reservas-backend/utils"
)

// AdminService authenticates administrators and manages their server-side
// sessions.
type AdminService struct {
	DB       *gorm.DB
	Sessions SessionStore
}

func NewAdminService(db *gorm.DB, sessions SessionStore) *AdminService {
	return &AdminService{DB: db, Sessions: sessions}
}

// Authenticate matches admin id and email exactly. On success it mints a
// session token bound to the admin. The error never says which field was
// wrong.
func (s *AdminService) Authenticate(ctx context.Context, adminID, email string) (string, models.Admin, error) {
	var admin models.Admin
	err := s.DB.Where("admin_id = ? AND email = ?", adminID, email).First(&admin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", models.Admin{}, ErrInvalidCredentials
		}
		return "", models.Admin{}, fmt.Errorf("failed to look up admin: %w", err)
	}

	token, err := utils.GenerateSecureToken(32)
	if err != nil {
		return "", models.Admin{}, fmt.Errorf("failed to generate session token: %w", err)
	}
	if err := s.Sessions.Set(ctx, token, admin.AdminID); err != nil {
		return "", models.Admin{}, fmt.Errorf("failed to store session: %w", err)
	}

	log.WithField("admin_id", admin.AdminID).Info("admin logged in")
	return token, admin, nil
}

// ResolveSession returns the admin id bound to a session token.
func (s *AdminService) ResolveSession(ctx context.Context, token string) (string, bool) {
	return s.Sessions.Get(ctx, token)
}

// Logout clears the session unconditionally; an unknown token is not an
// error.
func (s *AdminService) Logout(ctx context.Context, token string) error {
	return s.Sessions.Delete(ctx, token)
}

// GetByAdminID loads an administrator by its public id.
func (s *AdminService) GetByAdminID(adminID string) (models.Admin, error) {
	var admin models.Admin
	if err := s.DB.Where("admin_id = ?", adminID).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Admin{}, ErrNotFound
		}
		return models.Admin{}, err
	}
	return admin, nil
}

// DeleteSelf removes the administrator bound to the session, then clears the
// session.
func (s *AdminService) DeleteSelf(ctx context.Context, token, adminID string) error {
	admin, err := s.GetByAdminID(adminID)
	if err != nil {
		return err
	}
	if err := s.DB.Delete(&admin).Error; err != nil {
		return fmt.Errorf("failed to delete admin: %w", err)
	}
	if err := s.Sessions.Delete(ctx, token); err != nil {
		log.WithError(err).Warn("failed to clear session after self-delete")
	}
	log.WithField("admin_id", adminID).Info("admin deleted own account")
	return nil
}
