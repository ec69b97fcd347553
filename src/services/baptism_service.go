package services

import (
	"context"
	"fmt"
	"time"

	"github.com/debreiyesus/church-server/src/models"
	"github.com/debreiyesus/church-server/src/repositories"
)

const baptismTable = "baptism_records"

// BaptismService manages baptism records, soft-deleted like members.
type BaptismService struct {
	repo  repositories.BaptismRepository
	audit *AuditService
}

// NewBaptismService creates a new baptism service
func NewBaptismService(repo repositories.BaptismRepository, audit *AuditService) *BaptismService {
	return &BaptismService{repo: repo, audit: audit}
}

// BaptismInput holds the fields of a baptism record for create and update
type BaptismInput struct {
	EventDate          *time.Time
	ChildBaptismName   string
	ChildCallName      *string
	FatherName         *string
	MotherName         *string
	ParentsNationality *string
	ChildBirthDate     *time.Time
	ChildBaptismDate   *time.Time
	GodparentName      *string
	BaptismChurch      *string
	PriestName         *string
	Notes              *string
	IsActive           *bool
}

// List returns baptism records, optionally filtered by active state
func (s *BaptismService) List(ctx context.Context, active *bool) ([]models.BaptismRecord, error) {
	return s.repo.List(ctx, active)
}

// Get returns one record or ErrNotFound
func (s *BaptismService) Get(ctx context.Context, id int) (*models.BaptismRecord, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrNotFound
	}
	return b, nil
}

// Create inserts a new baptism record
func (s *BaptismService) Create(ctx context.Context, actor models.Actor, input BaptismInput) (*models.BaptismRecord, error) {
	if input.EventDate == nil || input.ChildBaptismName == "" {
		return nil, validationError("event date and child baptism name are required")
	}

	record := &models.BaptismRecord{
		EventDate:          *input.EventDate,
		ChildBaptismName:   input.ChildBaptismName,
		ChildCallName:      input.ChildCallName,
		FatherName:         input.FatherName,
		MotherName:         input.MotherName,
		ParentsNationality: input.ParentsNationality,
		ChildBirthDate:     input.ChildBirthDate,
		ChildBaptismDate:   input.ChildBaptismDate,
		GodparentName:      input.GodparentName,
		BaptismChurch:      input.BaptismChurch,
		PriestName:         input.PriestName,
		Notes:              input.Notes,
		CreatedBy:          &actor.Username,
	}
	if err := s.repo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create baptism record: %w", err)
	}

	s.audit.Record(ctx, actor, models.AuditActionCreate, baptismTable, record.ID, nil, record)
	return record, nil
}

// Update applies the new field set to an existing record
func (s *BaptismService) Update(ctx context.Context, actor models.Actor, id int, input BaptismInput) (*models.BaptismRecord, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load baptism record: %w", err)
	}
	if existing == nil {
		return nil, ErrNotFound
	}

	old := *existing

	updated := *existing
	if input.EventDate != nil {
		updated.EventDate = *input.EventDate
	}
	if input.ChildBaptismName != "" {
		updated.ChildBaptismName = input.ChildBaptismName
	}
	updated.ChildCallName = input.ChildCallName
	updated.FatherName = input.FatherName
	updated.MotherName = input.MotherName
	updated.ParentsNationality = input.ParentsNationality
	updated.ChildBirthDate = input.ChildBirthDate
	updated.ChildBaptismDate = input.ChildBaptismDate
	updated.GodparentName = input.GodparentName
	updated.BaptismChurch = input.BaptismChurch
	updated.PriestName = input.PriestName
	updated.Notes = input.Notes
	updated.IsActive = true
	if input.IsActive != nil {
		updated.IsActive = *input.IsActive
	}
	updated.UpdatedBy = &actor.Username

	if err := s.repo.Update(ctx, &updated); err != nil {
		return nil, fmt.Errorf("failed to update baptism record: %w", err)
	}

	s.audit.Record(ctx, actor, models.AuditActionUpdate, baptismTable, id, &old, &updated)
	return &updated, nil
}

// Delete soft-deletes a baptism record
func (s *BaptismService) Delete(ctx context.Context, actor models.Actor, id int) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load baptism record: %w", err)
	}
	if existing == nil {
		return ErrNotFound
	}

	if err := s.repo.Deactivate(ctx, id, actor.Username); err != nil {
		return fmt.Errorf("failed to deactivate baptism record: %w", err)
	}

	s.audit.Record(ctx, actor, models.AuditActionDelete, baptismTable, id, existing,
		map[string]interface{}{"is_active": false})
	return nil
}
