package services

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/debreiyesus/church-server/src/models"
	"github.com/debreiyesus/church-server/src/repositories"
)

const adminsTable = "admins"

// AdminService manages admin accounts. Admin mutations must never leave the
// system without at least one active super admin.
type AdminService struct {
	repo  repositories.AdminRepository
	audit *AuditService
}

// NewAdminService creates a new admin service
func NewAdminService(repo repositories.AdminRepository, audit *AuditService) *AdminService {
	return &AdminService{repo: repo, audit: audit}
}

// CreateAdminInput holds the fields for a new admin account
type CreateAdminInput struct {
	Username     string
	Password     string
	FullName     *string
	Email        *string
	IsSuperAdmin bool
}

// UpdateAdminInput holds the updatable fields of an admin account.
// Nil pointers keep the stored value; an empty Password keeps the hash.
type UpdateAdminInput struct {
	Username     string
	FullName     *string
	Email        *string
	IsActive     *bool
	IsSuperAdmin *bool
	Password     string
}

// List returns all admin accounts, newest first
func (s *AdminService) List(ctx context.Context) ([]models.Admin, error) {
	return s.repo.List(ctx)
}

// Create adds a new admin account with a bcrypt-hashed password
func (s *AdminService) Create(ctx context.Context, actor models.Actor, input CreateAdminInput) (*models.Admin, error) {
	if err := validate.Var(input.Username, "required,max=100"); err != nil {
		return nil, validationError("username is required")
	}
	if err := validate.Var(input.Password, "required,min=8"); err != nil {
		return nil, validationError("password must be at least 8 characters")
	}

	taken, err := s.repo.UsernameExists(ctx, input.Username, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if taken {
		return nil, conflictError("username already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &models.Admin{
		Username:     input.Username,
		PasswordHash: string(hash),
		FullName:     input.FullName,
		Email:        input.Email,
		IsSuperAdmin: input.IsSuperAdmin,
	}
	if err := s.repo.Create(ctx, admin); err != nil {
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}

	s.audit.Record(ctx, actor, models.AuditActionCreate, adminsTable, admin.ID, nil, admin)
	return admin, nil
}

// Update modifies an admin account. Demoting or deactivating the last
// active super admin is rejected.
func (s *AdminService) Update(ctx context.Context, actor models.Actor, id int, input UpdateAdminInput) (*models.Admin, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load admin: %w", err)
	}
	if existing == nil {
		return nil, ErrNotFound
	}

	if existing.IsSuperAdmin && existing.IsActive {
		demoted := input.IsSuperAdmin != nil && !*input.IsSuperAdmin
		deactivated := input.IsActive != nil && !*input.IsActive
		if demoted || deactivated {
			others, err := s.repo.CountActiveSuperAdmins(ctx, id)
			if err != nil {
				return nil, fmt.Errorf("failed to count super admins: %w", err)
			}
			if others == 0 {
				return nil, conflictError("cannot remove super admin status from the last super admin")
			}
		}
	}

	if input.Username != "" && input.Username != existing.Username {
		taken, err := s.repo.UsernameExists(ctx, input.Username, id)
		if err != nil {
			return nil, fmt.Errorf("failed to check username: %w", err)
		}
		if taken {
			return nil, conflictError("username already exists")
		}
	}

	old := *existing

	updated := *existing
	if input.Username != "" {
		updated.Username = input.Username
	}
	updated.FullName = input.FullName
	updated.Email = input.Email
	if input.IsActive != nil {
		updated.IsActive = *input.IsActive
	}
	if input.IsSuperAdmin != nil {
		updated.IsSuperAdmin = *input.IsSuperAdmin
	}
	if input.Password != "" {
		if err := validate.Var(input.Password, "min=8"); err != nil {
			return nil, validationError("password must be at least 8 characters")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		updated.PasswordHash = string(hash)
	}

	if err := s.repo.Update(ctx, &updated); err != nil {
		return nil, fmt.Errorf("failed to update admin: %w", err)
	}

	s.audit.Record(ctx, actor, models.AuditActionUpdate, adminsTable, id, &old, &updated)
	return &updated, nil
}

// Delete soft-deletes an admin account. Admins may not delete their own
// account, and the last active super admin is protected.
func (s *AdminService) Delete(ctx context.Context, actor models.Actor, id int) error {
	if id == actor.ID {
		return conflictError("cannot delete your own admin account")
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load admin: %w", err)
	}
	if existing == nil {
		return ErrNotFound
	}

	if existing.IsSuperAdmin {
		others, err := s.repo.CountActiveSuperAdmins(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to count super admins: %w", err)
		}
		if others == 0 {
			return conflictError("cannot delete the last super admin")
		}
	}

	if err := s.repo.Deactivate(ctx, id); err != nil {
		return fmt.Errorf("failed to deactivate admin: %w", err)
	}

	s.audit.Record(ctx, actor, models.AuditActionDelete, adminsTable, id, nil,
		map[string]interface{}{"is_active": false})
	return nil
}

// EnsureSuperAdmin creates an initial super admin when none exists.
// Called once at startup from seed configuration.
func (s *AdminService) EnsureSuperAdmin(ctx context.Context, username, password string) (bool, error) {
	count, err := s.repo.CountActiveSuperAdmins(ctx, 0)
	if err != nil {
		return false, fmt.Errorf("failed to count super admins: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	_, err = s.Create(ctx, models.Actor{Username: "system"}, CreateAdminInput{
		Username:     username,
		Password:     password,
		IsSuperAdmin: true,
	})
	if err != nil {
		return false, err
	}
	return true, nil
}
