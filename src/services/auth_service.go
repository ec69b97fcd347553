package services

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/debreiyesus/church-server/src/models"
	"github.com/debreiyesus/church-server/src/repositories"
)

// AuthService verifies admin credentials
type AuthService struct {
	repo repositories.AdminRepository
}

// NewAuthService creates a new auth service
func NewAuthService(repo repositories.AdminRepository) *AuthService {
	return &AuthService{repo: repo}
}

// Authenticate looks up an active admin by username and verifies the
// password. Unknown users and wrong passwords both yield
// ErrInvalidCredentials so callers cannot distinguish the two.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*models.Admin, error) {
	admin, err := s.repo.GetActiveByUsername(ctx, username)
	if err != nil || admin == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return admin, nil
}
