package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/debreiyesus/church-server/src/models"
)

// PgAuditRepository is the PostgreSQL implementation of AuditRepository.
// The audit_log table is append-only; there is no update or delete path.
type PgAuditRepository struct {
	pool *pgxpool.Pool
}

// NewAuditRepository creates an audit repository backed by the pool
func NewAuditRepository(pool *pgxpool.Pool) *PgAuditRepository {
	return &PgAuditRepository{pool: pool}
}

func (r *PgAuditRepository) Insert(ctx context.Context, e *models.AuditEntry) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO audit_log (username, action, table_name, record_id, old_values, new_values, ip_address)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, e.Username, e.Action, e.TableName, e.RecordID, e.OldValues, e.NewValues, e.IPAddress)
	return err
}

func (r *PgAuditRepository) List(ctx context.Context, tableName string, limit, offset int) ([]models.AuditEntry, error) {
	query := `
		SELECT id, username, action, table_name, record_id, old_values, new_values, ip_address, created_at
		FROM audit_log`
	args := []interface{}{}
	if tableName != "" {
		query += " WHERE table_name = $1"
		args = append(args, tableName)
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}
	defer rows.Close()

	entries := []models.AuditEntry{}
	for rows.Next() {
		var e models.AuditEntry
		err := rows.Scan(&e.ID, &e.Username, &e.Action, &e.TableName, &e.RecordID,
			&e.OldValues, &e.NewValues, &e.IPAddress, &e.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan audit entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Ensure PgAuditRepository implements the interface
var _ AuditRepository = (*PgAuditRepository)(nil)
