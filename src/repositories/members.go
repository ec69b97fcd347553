package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/debreiyesus/church-server/src/models"
)

const memberColumns = `id, full_name, phone_number, email, personnummer, card_number,
	address, postal_code, city, card_issue_date, sms_consent, is_active, notes,
	created_by, updated_by, created_at, updated_at`

// PgMemberRepository is the PostgreSQL implementation of MemberRepository
type PgMemberRepository struct {
	pool *pgxpool.Pool
}

// NewMemberRepository creates a member repository backed by the pool
func NewMemberRepository(pool *pgxpool.Pool) *PgMemberRepository {
	return &PgMemberRepository{pool: pool}
}

func scanMember(row pgx.Row) (*models.Member, error) {
	var m models.Member
	err := row.Scan(
		&m.ID, &m.FullName, &m.PhoneNumber, &m.Email, &m.Personnummer, &m.CardNumber,
		&m.Address, &m.PostalCode, &m.City, &m.CardIssueDate, &m.SMSConsent, &m.IsActive,
		&m.Notes, &m.CreatedBy, &m.UpdatedBy, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgMemberRepository) List(ctx context.Context, filter MemberFilter) ([]models.Member, error) {
	query := "SELECT " + memberColumns + " FROM members WHERE 1=1"
	args := []interface{}{}

	if filter.Active != nil {
		args = append(args, *filter.Active)
		query += fmt.Sprintf(" AND is_active = $%d", len(args))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		query += fmt.Sprintf(" AND (full_name ILIKE $%d OR phone_number ILIKE $%d OR personnummer ILIKE $%d)", n, n, n)
	}
	query += " ORDER BY full_name"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	members := []models.Member{}
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, *m)
	}
	return members, rows.Err()
}

// GetByID returns (nil, nil) when no member exists with the given id
func (r *PgMemberRepository) GetByID(ctx context.Context, id int) (*models.Member, error) {
	row := r.pool.QueryRow(ctx, "SELECT "+memberColumns+" FROM members WHERE id = $1", id)
	m, err := scanMember(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get member: %w", err)
	}
	return m, nil
}

func (r *PgMemberRepository) PhoneExists(ctx context.Context, phone string, excludeID int) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM members WHERE phone_number = $1 AND id != $2)",
		phone, excludeID,
	).Scan(&exists)
	return exists, err
}

func (r *PgMemberRepository) CardNumberExists(ctx context.Context, cardNumber string, excludeID int) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM members WHERE card_number = $1 AND id != $2)",
		cardNumber, excludeID,
	).Scan(&exists)
	return exists, err
}

func (r *PgMemberRepository) Create(ctx context.Context, m *models.Member) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO members (
			full_name, phone_number, email, personnummer, card_number,
			address, postal_code, city, card_issue_date,
			sms_consent, notes, created_by, updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $12)
		RETURNING id, is_active, created_at, updated_at
	`,
		m.FullName, m.PhoneNumber, m.Email, m.Personnummer, m.CardNumber,
		m.Address, m.PostalCode, m.City, m.CardIssueDate,
		m.SMSConsent, m.Notes, m.CreatedBy,
	).Scan(&m.ID, &m.IsActive, &m.CreatedAt, &m.UpdatedAt)
}

func (r *PgMemberRepository) Update(ctx context.Context, m *models.Member) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE members SET
			full_name = $1, phone_number = $2, email = $3, personnummer = $4,
			card_number = $5, address = $6, postal_code = $7, city = $8,
			card_issue_date = $9, sms_consent = $10, is_active = $11, notes = $12,
			updated_by = $13, updated_at = NOW()
		WHERE id = $14
	`,
		m.FullName, m.PhoneNumber, m.Email, m.Personnummer,
		m.CardNumber, m.Address, m.PostalCode, m.City,
		m.CardIssueDate, m.SMSConsent, m.IsActive, m.Notes,
		m.UpdatedBy, m.ID,
	)
	return err
}

func (r *PgMemberRepository) Deactivate(ctx context.Context, id int, updatedBy string) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE members SET is_active = false, updated_by = $1, updated_at = NOW()
		WHERE id = $2
	`, updatedBy, id)
	return err
}

// Ensure PgMemberRepository implements the interface
var _ MemberRepository = (*PgMemberRepository)(nil)
