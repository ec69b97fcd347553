package mock

import (
	"context"

	"github.com/debreiyesus/church-server/src/models"
	"github.com/debreiyesus/church-server/src/repositories"
)

// MemberRepository is a mock implementation of repositories.MemberRepository
type MemberRepository struct {
	// Function stubs that can be overridden in tests
	ListFunc             func(ctx context.Context, filter repositories.MemberFilter) ([]models.Member, error)
	GetByIDFunc          func(ctx context.Context, id int) (*models.Member, error)
	PhoneExistsFunc      func(ctx context.Context, phone string, excludeID int) (bool, error)
	CardNumberExistsFunc func(ctx context.Context, cardNumber string, excludeID int) (bool, error)
	CreateFunc           func(ctx context.Context, m *models.Member) error
	UpdateFunc           func(ctx context.Context, m *models.Member) error
	DeactivateFunc       func(ctx context.Context, id int, updatedBy string) error

	// Call tracking
	Calls map[string][]interface{}
}

// NewMemberRepository creates a new mock member repository
func NewMemberRepository() *MemberRepository {
	return &MemberRepository{
		Calls: make(map[string][]interface{}),
	}
}

func (m *MemberRepository) List(ctx context.Context, filter repositories.MemberFilter) ([]models.Member, error) {
	m.Calls["List"] = append(m.Calls["List"], filter)
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, nil
}

func (m *MemberRepository) GetByID(ctx context.Context, id int) (*models.Member, error) {
	m.Calls["GetByID"] = append(m.Calls["GetByID"], id)
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MemberRepository) PhoneExists(ctx context.Context, phone string, excludeID int) (bool, error) {
	m.Calls["PhoneExists"] = append(m.Calls["PhoneExists"], phone)
	if m.PhoneExistsFunc != nil {
		return m.PhoneExistsFunc(ctx, phone, excludeID)
	}
	return false, nil
}

func (m *MemberRepository) CardNumberExists(ctx context.Context, cardNumber string, excludeID int) (bool, error) {
	m.Calls["CardNumberExists"] = append(m.Calls["CardNumberExists"], cardNumber)
	if m.CardNumberExistsFunc != nil {
		return m.CardNumberExistsFunc(ctx, cardNumber, excludeID)
	}
	return false, nil
}

func (m *MemberRepository) Create(ctx context.Context, member *models.Member) error {
	m.Calls["Create"] = append(m.Calls["Create"], member)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, member)
	}
	return nil
}

func (m *MemberRepository) Update(ctx context.Context, member *models.Member) error {
	m.Calls["Update"] = append(m.Calls["Update"], member)
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, member)
	}
	return nil
}

func (m *MemberRepository) Deactivate(ctx context.Context, id int, updatedBy string) error {
	m.Calls["Deactivate"] = append(m.Calls["Deactivate"], id)
	if m.DeactivateFunc != nil {
		return m.DeactivateFunc(ctx, id, updatedBy)
	}
	return nil
}

// Ensure MemberRepository implements the interface
var _ repositories.MemberRepository = (*MemberRepository)(nil)
