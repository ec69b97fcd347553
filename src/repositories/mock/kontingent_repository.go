package mock

import (
	"context"

	"github.com/debreiyesus/church-server/src/models"
	"github.com/debreiyesus/church-server/src/repositories"
)

// KontingentRepository is a mock implementation of repositories.KontingentRepository
type KontingentRepository struct {
	MonthStatusFunc func(ctx context.Context, month string) ([]models.KontingentStatus, error)
	UpsertFunc      func(ctx context.Context, p *models.KontingentPayment) error

	// Call tracking
	Calls map[string][]interface{}
}

// NewKontingentRepository creates a new mock kontingent repository
func NewKontingentRepository() *KontingentRepository {
	return &KontingentRepository{
		Calls: make(map[string][]interface{}),
	}
}

func (m *KontingentRepository) MonthStatus(ctx context.Context, month string) ([]models.KontingentStatus, error) {
	m.Calls["MonthStatus"] = append(m.Calls["MonthStatus"], month)
	if m.MonthStatusFunc != nil {
		return m.MonthStatusFunc(ctx, month)
	}
	return nil, nil
}

func (m *KontingentRepository) Upsert(ctx context.Context, p *models.KontingentPayment) error {
	m.Calls["Upsert"] = append(m.Calls["Upsert"], p)
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, p)
	}
	return nil
}

// Ensure KontingentRepository implements the interface
var _ repositories.KontingentRepository = (*KontingentRepository)(nil)
