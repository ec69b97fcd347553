package mock

import (
	"context"

	"github.com/debreiyesus/church-server/src/models"
	"github.com/debreiyesus/church-server/src/repositories"
)

// BaptismRepository is a mock implementation of repositories.BaptismRepository
type BaptismRepository struct {
	ListFunc       func(ctx context.Context, active *bool) ([]models.BaptismRecord, error)
	GetByIDFunc    func(ctx context.Context, id int) (*models.BaptismRecord, error)
	CreateFunc     func(ctx context.Context, r *models.BaptismRecord) error
	UpdateFunc     func(ctx context.Context, r *models.BaptismRecord) error
	DeactivateFunc func(ctx context.Context, id int, updatedBy string) error

	// Call tracking
	Calls map[string][]interface{}
}

// NewBaptismRepository creates a new mock baptism repository
func NewBaptismRepository() *BaptismRepository {
	return &BaptismRepository{
		Calls: make(map[string][]interface{}),
	}
}

func (m *BaptismRepository) List(ctx context.Context, active *bool) ([]models.BaptismRecord, error) {
	m.Calls["List"] = append(m.Calls["List"], active)
	if m.ListFunc != nil {
		return m.ListFunc(ctx, active)
	}
	return nil, nil
}

func (m *BaptismRepository) GetByID(ctx context.Context, id int) (*models.BaptismRecord, error) {
	m.Calls["GetByID"] = append(m.Calls["GetByID"], id)
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *BaptismRepository) Create(ctx context.Context, r *models.BaptismRecord) error {
	m.Calls["Create"] = append(m.Calls["Create"], r)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, r)
	}
	return nil
}

func (m *BaptismRepository) Update(ctx context.Context, r *models.BaptismRecord) error {
	m.Calls["Update"] = append(m.Calls["Update"], r)
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, r)
	}
	return nil
}

func (m *BaptismRepository) Deactivate(ctx context.Context, id int, updatedBy string) error {
	m.Calls["Deactivate"] = append(m.Calls["Deactivate"], id)
	if m.DeactivateFunc != nil {
		return m.DeactivateFunc(ctx, id, updatedBy)
	}
	return nil
}

// Ensure BaptismRepository implements the interface
var _ repositories.BaptismRepository = (*BaptismRepository)(nil)
