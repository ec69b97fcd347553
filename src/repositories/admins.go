package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/debreiyesus/church-server/src/models"
)

const adminColumns = `id, username, password_hash, full_name, email, is_active, is_super_admin, created_at`

// PgAdminRepository is the PostgreSQL implementation of AdminRepository
type PgAdminRepository struct {
	pool *pgxpool.Pool
}

// NewAdminRepository creates an admin repository backed by the pool
func NewAdminRepository(pool *pgxpool.Pool) *PgAdminRepository {
	return &PgAdminRepository{pool: pool}
}

func scanAdmin(row pgx.Row) (*models.Admin, error) {
	var a models.Admin
	err := row.Scan(
		&a.ID, &a.Username, &a.PasswordHash, &a.FullName, &a.Email,
		&a.IsActive, &a.IsSuperAdmin, &a.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *PgAdminRepository) List(ctx context.Context) ([]models.Admin, error) {
	rows, err := r.pool.Query(ctx, "SELECT "+adminColumns+" FROM admins ORDER BY created_at DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to list admins: %w", err)
	}
	defer rows.Close()

	admins := []models.Admin{}
	for rows.Next() {
		a, err := scanAdmin(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan admin: %w", err)
		}
		admins = append(admins, *a)
	}
	return admins, rows.Err()
}

// GetByID returns (nil, nil) when no admin exists with the given id
func (r *PgAdminRepository) GetByID(ctx context.Context, id int) (*models.Admin, error) {
	a, err := scanAdmin(r.pool.QueryRow(ctx, "SELECT "+adminColumns+" FROM admins WHERE id = $1", id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}
	return a, nil
}

// GetActiveByUsername returns (nil, nil) when no active admin matches
func (r *PgAdminRepository) GetActiveByUsername(ctx context.Context, username string) (*models.Admin, error) {
	a, err := scanAdmin(r.pool.QueryRow(ctx,
		"SELECT "+adminColumns+" FROM admins WHERE username = $1 AND is_active = true", username))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get admin by username: %w", err)
	}
	return a, nil
}

func (r *PgAdminRepository) UsernameExists(ctx context.Context, username string, excludeID int) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM admins WHERE username = $1 AND id != $2)",
		username, excludeID,
	).Scan(&exists)
	return exists, err
}

func (r *PgAdminRepository) CountActiveSuperAdmins(ctx context.Context, excludeID int) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		"SELECT COUNT(*) FROM admins WHERE is_super_admin = true AND is_active = true AND id != $1",
		excludeID,
	).Scan(&count)
	return count, err
}

func (r *PgAdminRepository) Create(ctx context.Context, a *models.Admin) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO admins (username, password_hash, full_name, email, is_super_admin)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, is_active, created_at
	`, a.Username, a.PasswordHash, a.FullName, a.Email, a.IsSuperAdmin).
		Scan(&a.ID, &a.IsActive, &a.CreatedAt)
}

func (r *PgAdminRepository) Update(ctx context.Context, a *models.Admin) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE admins SET
			username = $1, password_hash = $2, full_name = $3, email = $4,
			is_active = $5, is_super_admin = $6
		WHERE id = $7
	`, a.Username, a.PasswordHash, a.FullName, a.Email, a.IsActive, a.IsSuperAdmin, a.ID)
	return err
}

func (r *PgAdminRepository) Deactivate(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, "UPDATE admins SET is_active = false WHERE id = $1", id)
	return err
}

// Ensure PgAdminRepository implements the interface
var _ AdminRepository = (*PgAdminRepository)(nil)
