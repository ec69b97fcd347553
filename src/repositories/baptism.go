package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/debreiyesus/church-server/src/models"
)

const baptismColumns = `id, event_date, child_baptism_name, child_call_name, father_name,
	mother_name, parents_nationality, child_birth_date, child_baptism_date,
	godparent_name, baptism_church, priest_name, notes, is_active,
	created_by, updated_by, created_at, updated_at`

// PgBaptismRepository is the PostgreSQL implementation of BaptismRepository
type PgBaptismRepository struct {
	pool *pgxpool.Pool
}

// NewBaptismRepository creates a baptism record repository backed by the pool
func NewBaptismRepository(pool *pgxpool.Pool) *PgBaptismRepository {
	return &PgBaptismRepository{pool: pool}
}

func scanBaptismRecord(row pgx.Row) (*models.BaptismRecord, error) {
	var b models.BaptismRecord
	err := row.Scan(
		&b.ID, &b.EventDate, &b.ChildBaptismName, &b.ChildCallName, &b.FatherName,
		&b.MotherName, &b.ParentsNationality, &b.ChildBirthDate, &b.ChildBaptismDate,
		&b.GodparentName, &b.BaptismChurch, &b.PriestName, &b.Notes, &b.IsActive,
		&b.CreatedBy, &b.UpdatedBy, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *PgBaptismRepository) List(ctx context.Context, active *bool) ([]models.BaptismRecord, error) {
	query := "SELECT " + baptismColumns + " FROM baptism_records"
	args := []interface{}{}
	if active != nil {
		query += " WHERE is_active = $1"
		args = append(args, *active)
	}
	query += " ORDER BY event_date DESC, id DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list baptism records: %w", err)
	}
	defer rows.Close()

	records := []models.BaptismRecord{}
	for rows.Next() {
		b, err := scanBaptismRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan baptism record: %w", err)
		}
		records = append(records, *b)
	}
	return records, rows.Err()
}

// GetByID returns (nil, nil) when no record exists with the given id
func (r *PgBaptismRepository) GetByID(ctx context.Context, id int) (*models.BaptismRecord, error) {
	b, err := scanBaptismRecord(r.pool.QueryRow(ctx,
		"SELECT "+baptismColumns+" FROM baptism_records WHERE id = $1", id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get baptism record: %w", err)
	}
	return b, nil
}

func (r *PgBaptismRepository) Create(ctx context.Context, b *models.BaptismRecord) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO baptism_records (
			event_date, child_baptism_name, child_call_name, father_name,
			mother_name, parents_nationality, child_birth_date, child_baptism_date,
			godparent_name, baptism_church, priest_name, notes,
			created_by, updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $13)
		RETURNING id, is_active, created_at, updated_at
	`,
		b.EventDate, b.ChildBaptismName, b.ChildCallName, b.FatherName,
		b.MotherName, b.ParentsNationality, b.ChildBirthDate, b.ChildBaptismDate,
		b.GodparentName, b.BaptismChurch, b.PriestName, b.Notes, b.CreatedBy,
	).Scan(&b.ID, &b.IsActive, &b.CreatedAt, &b.UpdatedAt)
}

func (r *PgBaptismRepository) Update(ctx context.Context, b *models.BaptismRecord) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE baptism_records SET
			event_date = $1, child_baptism_name = $2, child_call_name = $3,
			father_name = $4, mother_name = $5, parents_nationality = $6,
			child_birth_date = $7, child_baptism_date = $8, godparent_name = $9,
			baptism_church = $10, priest_name = $11, notes = $12, is_active = $13,
			updated_by = $14, updated_at = NOW()
		WHERE id = $15
	`,
		b.EventDate, b.ChildBaptismName, b.ChildCallName,
		b.FatherName, b.MotherName, b.ParentsNationality,
		b.ChildBirthDate, b.ChildBaptismDate, b.GodparentName,
		b.BaptismChurch, b.PriestName, b.Notes, b.IsActive,
		b.UpdatedBy, b.ID,
	)
	return err
}

func (r *PgBaptismRepository) Deactivate(ctx context.Context, id int, updatedBy string) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE baptism_records SET is_active = false, updated_by = $1, updated_at = NOW()
		WHERE id = $2
	`, updatedBy, id)
	return err
}

// Ensure PgBaptismRepository implements the interface
var _ BaptismRepository = (*PgBaptismRepository)(nil)
