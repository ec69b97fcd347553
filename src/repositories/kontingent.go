package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/debreiyesus/church-server/src/models"
)

// PgKontingentRepository is the PostgreSQL implementation of KontingentRepository
type PgKontingentRepository struct {
	pool *pgxpool.Pool
}

// NewKontingentRepository creates a kontingent repository backed by the pool
func NewKontingentRepository(pool *pgxpool.Pool) *PgKontingentRepository {
	return &PgKontingentRepository{pool: pool}
}

// MonthStatus returns every active member joined with their payment record
// for the given month, paid defaulting to false where no record exists.
func (r *PgKontingentRepository) MonthStatus(ctx context.Context, month string) ([]models.KontingentStatus, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT
			m.id, m.full_name, m.phone_number, m.personnummer,
			COALESCE(kp.paid, false), kp.payment_date, kp.amount, kp.notes,
			kp.recorded_by, kp.id
		FROM members m
		LEFT JOIN kontingent_payments kp ON kp.member_id = m.id AND kp.payment_month = $1
		WHERE m.is_active = true
		ORDER BY m.full_name ASC
	`, month)
	if err != nil {
		return nil, fmt.Errorf("failed to query kontingent status: %w", err)
	}
	defer rows.Close()

	statuses := []models.KontingentStatus{}
	for rows.Next() {
		var s models.KontingentStatus
		err := rows.Scan(
			&s.MemberID, &s.FullName, &s.PhoneNumber, &s.Personnummer,
			&s.Paid, &s.PaymentDate, &s.Amount, &s.Notes,
			&s.RecordedBy, &s.PaymentID,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan kontingent status: %w", err)
		}
		statuses = append(statuses, s)
	}
	return statuses, rows.Err()
}

// Upsert atomically inserts or overwrites the payment for
// (member_id, payment_month). The database's ON CONFLICT clause is the
// authoritative idempotency guarantee.
func (r *PgKontingentRepository) Upsert(ctx context.Context, p *models.KontingentPayment) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO kontingent_payments (member_id, payment_month, paid, payment_date, amount, notes, recorded_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (member_id, payment_month)
		DO UPDATE SET
			paid = $3,
			payment_date = $4,
			amount = $5,
			notes = $6,
			recorded_by = $7,
			updated_at = CURRENT_TIMESTAMP
		RETURNING id, created_at, updated_at
	`, p.MemberID, p.PaymentMonth, p.Paid, p.PaymentDate, p.Amount, p.Notes, p.RecordedBy).
		Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

// Ensure PgKontingentRepository implements the interface
var _ KontingentRepository = (*PgKontingentRepository)(nil)
