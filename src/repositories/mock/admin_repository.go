package mock

import (
	"context"

	"github.com/debreiyesus/church-server/src/models"
	"github.com/debreiyesus/church-server/src/repositories"
)

// AdminRepository is a mock implementation of repositories.AdminRepository
type AdminRepository struct {
	// Function stubs that can be overridden in tests
	ListFunc                   func(ctx context.Context) ([]models.Admin, error)
	GetByIDFunc                func(ctx context.Context, id int) (*models.Admin, error)
	GetActiveByUsernameFunc    func(ctx context.Context, username string) (*models.Admin, error)
	UsernameExistsFunc         func(ctx context.Context, username string, excludeID int) (bool, error)
	CountActiveSuperAdminsFunc func(ctx context.Context, excludeID int) (int, error)
	CreateFunc                 func(ctx context.Context, a *models.Admin) error
	UpdateFunc                 func(ctx context.Context, a *models.Admin) error
	DeactivateFunc             func(ctx context.Context, id int) error

	// Call tracking
	Calls map[string][]interface{}
}

// NewAdminRepository creates a new mock admin repository
func NewAdminRepository() *AdminRepository {
	return &AdminRepository{
		Calls: make(map[string][]interface{}),
	}
}

func (m *AdminRepository) List(ctx context.Context) ([]models.Admin, error) {
	m.Calls["List"] = append(m.Calls["List"], nil)
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *AdminRepository) GetByID(ctx context.Context, id int) (*models.Admin, error) {
	m.Calls["GetByID"] = append(m.Calls["GetByID"], id)
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *AdminRepository) GetActiveByUsername(ctx context.Context, username string) (*models.Admin, error) {
	m.Calls["GetActiveByUsername"] = append(m.Calls["GetActiveByUsername"], username)
	if m.GetActiveByUsernameFunc != nil {
		return m.GetActiveByUsernameFunc(ctx, username)
	}
	return nil, nil
}

func (m *AdminRepository) UsernameExists(ctx context.Context, username string, excludeID int) (bool, error) {
	m.Calls["UsernameExists"] = append(m.Calls["UsernameExists"], username)
	if m.UsernameExistsFunc != nil {
		return m.UsernameExistsFunc(ctx, username, excludeID)
	}
	return false, nil
}

func (m *AdminRepository) CountActiveSuperAdmins(ctx context.Context, excludeID int) (int, error) {
	m.Calls["CountActiveSuperAdmins"] = append(m.Calls["CountActiveSuperAdmins"], excludeID)
	if m.CountActiveSuperAdminsFunc != nil {
		return m.CountActiveSuperAdminsFunc(ctx, excludeID)
	}
	return 0, nil
}

func (m *AdminRepository) Create(ctx context.Context, a *models.Admin) error {
	m.Calls["Create"] = append(m.Calls["Create"], a)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, a)
	}
	return nil
}

func (m *AdminRepository) Update(ctx context.Context, a *models.Admin) error {
	m.Calls["Update"] = append(m.Calls["Update"], a)
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, a)
	}
	return nil
}

func (m *AdminRepository) Deactivate(ctx context.Context, id int) error {
	m.Calls["Deactivate"] = append(m.Calls["Deactivate"], id)
	if m.DeactivateFunc != nil {
		return m.DeactivateFunc(ctx, id)
	}
	return nil
}

// Ensure AdminRepository implements the interface
var _ repositories.AdminRepository = (*AdminRepository)(nil)
