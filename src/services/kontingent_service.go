package services

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/debreiyesus/church-server/src/models"
	"github.com/debreiyesus/church-server/src/repositories"
)

const kontingentTable = "kontingent_payments"

var monthRx = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// KontingentService tracks membership fees per member per month.
// Writes are idempotent upserts keyed on (member_id, payment_month).
type KontingentService struct {
	repo  repositories.KontingentRepository
	audit *AuditService
	now   func() time.Time
}

// NewKontingentService creates a new kontingent service
func NewKontingentService(repo repositories.KontingentRepository, audit *AuditService) *KontingentService {
	return &KontingentService{repo: repo, audit: audit, now: time.Now}
}

// KontingentInput holds one payment update
type KontingentInput struct {
	MemberID int
	Month    string // YYYY-MM
	Paid     bool
	Amount   *float64
	Notes    *string
}

// MonthStatus returns the per-member payment overview for a month
func (s *KontingentService) MonthStatus(ctx context.Context, month string) ([]models.KontingentStatus, error) {
	if !monthRx.MatchString(month) {
		return nil, validationError("month must be in YYYY-MM format")
	}
	return s.repo.MonthStatus(ctx, month)
}

// Upsert records a payment for (member, month), overwriting any existing
// row for that pair. Paid sets payment_date to the current server date;
// unpaid clears it. The second write for the same pair wins.
func (s *KontingentService) Upsert(ctx context.Context, actor models.Actor, input KontingentInput) (*models.KontingentPayment, error) {
	if input.MemberID == 0 || input.Month == "" {
		return nil, validationError("member ID and month are required")
	}
	if !monthRx.MatchString(input.Month) {
		return nil, validationError("month must be in YYYY-MM format")
	}

	payment := &models.KontingentPayment{
		MemberID:     input.MemberID,
		PaymentMonth: input.Month,
		Paid:         input.Paid,
		Amount:       input.Amount,
		Notes:        input.Notes,
		RecordedBy:   &actor.Username,
	}
	if input.Paid {
		today := s.now().Truncate(24 * time.Hour)
		payment.PaymentDate = &today
	}

	if err := s.repo.Upsert(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to upsert kontingent payment: %w", err)
	}

	action := models.AuditActionMarkUnpaid
	if input.Paid {
		action = models.AuditActionMarkPaid
	}
	s.audit.Record(ctx, actor, action, kontingentTable, payment.ID, nil, map[string]interface{}{
		"member_id": input.MemberID,
		"month":     input.Month,
		"paid":      input.Paid,
		"amount":    input.Amount,
	})

	return payment, nil
}
