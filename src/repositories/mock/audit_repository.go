package mock

import (
	"context"

	"github.com/debreiyesus/church-server/src/models"
	"github.com/debreiyesus/church-server/src/repositories"
)

// AuditRepository is a mock implementation of repositories.AuditRepository
type AuditRepository struct {
	InsertFunc func(ctx context.Context, e *models.AuditEntry) error
	ListFunc   func(ctx context.Context, tableName string, limit, offset int) ([]models.AuditEntry, error)

	// Call tracking; Entries collects every inserted entry for assertions
	Calls   map[string][]interface{}
	Entries []*models.AuditEntry
}

// NewAuditRepository creates a new mock audit repository
func NewAuditRepository() *AuditRepository {
	return &AuditRepository{
		Calls: make(map[string][]interface{}),
	}
}

func (m *AuditRepository) Insert(ctx context.Context, e *models.AuditEntry) error {
	m.Calls["Insert"] = append(m.Calls["Insert"], e)
	m.Entries = append(m.Entries, e)
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, e)
	}
	return nil
}

func (m *AuditRepository) List(ctx context.Context, tableName string, limit, offset int) ([]models.AuditEntry, error) {
	m.Calls["List"] = append(m.Calls["List"], tableName)
	if m.ListFunc != nil {
		return m.ListFunc(ctx, tableName, limit, offset)
	}
	return nil, nil
}

// Ensure AuditRepository implements the interface
var _ repositories.AuditRepository = (*AuditRepository)(nil)
