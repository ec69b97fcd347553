package services

import (
	"context"
	"fmt"
	"time"

	"github.com/debreiyesus/church-server/src/models"
	"github.com/debreiyesus/church-server/src/repositories"
)

const membersTable = "members"

// MemberService manages church members. Members are soft-deleted only.
type MemberService struct {
	repo  repositories.MemberRepository
	audit *AuditService
}

// NewMemberService creates a new member service
func NewMemberService(repo repositories.MemberRepository, audit *AuditService) *MemberService {
	return &MemberService{repo: repo, audit: audit}
}

// CreateMemberInput holds the fields for a new member.
// SMSConsent defaults to true when omitted.
type CreateMemberInput struct {
	FullName      string
	PhoneNumber   string
	Email         *string
	Personnummer  string
	CardNumber    *string
	Address       *string
	PostalCode    *string
	City          *string
	CardIssueDate *time.Time
	SMSConsent    *bool
	Notes         *string
}

// UpdateMemberInput holds the updatable member fields.
// SMSConsent and IsActive default to true when omitted, matching create.
type UpdateMemberInput struct {
	FullName      string
	PhoneNumber   string
	Email         *string
	Personnummer  string
	CardNumber    *string
	Address       *string
	PostalCode    *string
	City          *string
	CardIssueDate *time.Time
	SMSConsent    *bool
	IsActive      *bool
	Notes         *string
}

// List returns members matching the filter
func (s *MemberService) List(ctx context.Context, filter repositories.MemberFilter) ([]models.Member, error) {
	return s.repo.List(ctx, filter)
}

// Get returns one member or ErrNotFound
func (s *MemberService) Get(ctx context.Context, id int) (*models.Member, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrNotFound
	}
	return m, nil
}

// Create validates and inserts a new member. The uniqueness pre-checks give
// friendly errors; the database constraints remain authoritative.
func (s *MemberService) Create(ctx context.Context, actor models.Actor, input CreateMemberInput) (*models.Member, error) {
	if input.FullName == "" || input.PhoneNumber == "" {
		return nil, validationError("full name and phone number are required")
	}
	if err := validate.Var(input.Personnummer, "required,personnummer"); err != nil {
		return nil, validationError("personnummer must be 11 digits")
	}

	phoneTaken, err := s.repo.PhoneExists(ctx, input.PhoneNumber, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to check phone number: %w", err)
	}
	if phoneTaken {
		return nil, conflictError("member with this phone number already exists")
	}

	if input.CardNumber != nil && *input.CardNumber != "" {
		cardTaken, err := s.repo.CardNumberExists(ctx, *input.CardNumber, 0)
		if err != nil {
			return nil, fmt.Errorf("failed to check card number: %w", err)
		}
		if cardTaken {
			return nil, conflictError("card number already exists")
		}
	}

	consent := true
	if input.SMSConsent != nil {
		consent = *input.SMSConsent
	}

	member := &models.Member{
		FullName:      input.FullName,
		PhoneNumber:   input.PhoneNumber,
		Email:         input.Email,
		Personnummer:  &input.Personnummer,
		CardNumber:    input.CardNumber,
		Address:       input.Address,
		PostalCode:    input.PostalCode,
		City:          input.City,
		CardIssueDate: input.CardIssueDate,
		SMSConsent:    consent,
		Notes:         input.Notes,
		CreatedBy:     &actor.Username,
	}
	if err := s.repo.Create(ctx, member); err != nil {
		return nil, fmt.Errorf("failed to create member: %w", err)
	}

	s.audit.Record(ctx, actor, models.AuditActionCreate, membersTable, member.ID, nil, member)
	return member, nil
}

// Update loads the member, checks uniqueness excluding self, applies the
// new field set and stamps updated_by/updated_at.
func (s *MemberService) Update(ctx context.Context, actor models.Actor, id int, input UpdateMemberInput) (*models.Member, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load member: %w", err)
	}
	if existing == nil {
		return nil, ErrNotFound
	}

	if input.Personnummer != "" && !ValidPersonnummer(input.Personnummer) {
		return nil, validationError("personnummer must be 11 digits")
	}

	if input.PhoneNumber != "" && input.PhoneNumber != existing.PhoneNumber {
		phoneTaken, err := s.repo.PhoneExists(ctx, input.PhoneNumber, id)
		if err != nil {
			return nil, fmt.Errorf("failed to check phone number: %w", err)
		}
		if phoneTaken {
			return nil, conflictError("member with this phone number already exists")
		}
	}

	if input.CardNumber != nil && *input.CardNumber != "" &&
		(existing.CardNumber == nil || *input.CardNumber != *existing.CardNumber) {
		cardTaken, err := s.repo.CardNumberExists(ctx, *input.CardNumber, id)
		if err != nil {
			return nil, fmt.Errorf("failed to check card number: %w", err)
		}
		if cardTaken {
			return nil, conflictError("card number already exists")
		}
	}

	old := *existing

	updated := *existing
	if input.FullName != "" {
		updated.FullName = input.FullName
	}
	if input.PhoneNumber != "" {
		updated.PhoneNumber = input.PhoneNumber
	}
	updated.Email = input.Email
	if input.Personnummer != "" {
		updated.Personnummer = &input.Personnummer
	}
	updated.CardNumber = input.CardNumber
	updated.Address = input.Address
	updated.PostalCode = input.PostalCode
	updated.City = input.City
	updated.CardIssueDate = input.CardIssueDate
	updated.SMSConsent = true
	if input.SMSConsent != nil {
		updated.SMSConsent = *input.SMSConsent
	}
	updated.IsActive = true
	if input.IsActive != nil {
		updated.IsActive = *input.IsActive
	}
	updated.Notes = input.Notes
	updated.UpdatedBy = &actor.Username

	if err := s.repo.Update(ctx, &updated); err != nil {
		return nil, fmt.Errorf("failed to update member: %w", err)
	}

	s.audit.Record(ctx, actor, models.AuditActionUpdate, membersTable, id, &old, &updated)
	return &updated, nil
}

// Delete soft-deletes a member; the row is never removed
func (s *MemberService) Delete(ctx context.Context, actor models.Actor, id int) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load member: %w", err)
	}
	if existing == nil {
		return ErrNotFound
	}

	if err := s.repo.Deactivate(ctx, id, actor.Username); err != nil {
		return fmt.Errorf("failed to deactivate member: %w", err)
	}

	s.audit.Record(ctx, actor, models.AuditActionDelete, membersTable, id, existing,
		map[string]interface{}{"is_active": false})
	return nil
}
