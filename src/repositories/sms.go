package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/debreiyesus/church-server/src/models"
)

// PgSmsRepository is the PostgreSQL implementation of SmsRepository
type PgSmsRepository struct {
	pool *pgxpool.Pool
}

// NewSmsRepository creates an SMS log repository backed by the pool
func NewSmsRepository(pool *pgxpool.Pool) *PgSmsRepository {
	return &PgSmsRepository{pool: pool}
}

// EligibleRecipients resolves member ids to members that are active and
// have given SMS consent. Ineligible ids are silently dropped.
func (r *PgSmsRepository) EligibleRecipients(ctx context.Context, memberIDs []int) ([]models.Member, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, full_name, phone_number
		FROM members
		WHERE id = ANY($1)
		AND sms_consent = true
		AND is_active = true
	`, memberIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve recipients: %w", err)
	}
	defer rows.Close()

	members := []models.Member{}
	for rows.Next() {
		var m models.Member
		if err := rows.Scan(&m.ID, &m.FullName, &m.PhoneNumber); err != nil {
			return nil, fmt.Errorf("failed to scan recipient: %w", err)
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func (r *PgSmsRepository) CreateLog(ctx context.Context, log *models.SmsLog) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO sms_logs (message, recipient_count, sent_by, cost_estimate)
		VALUES ($1, $2, $3, $4)
		RETURNING id, sent_at
	`, log.Message, log.RecipientCount, log.SentBy, log.CostEstimate).
		Scan(&log.ID, &log.SentAt)
}

func (r *PgSmsRepository) AddRecipient(ctx context.Context, rec *models.SmsRecipient) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO sms_recipients (sms_log_id, member_id, phone_number, status, message_id, error_message)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`, rec.SmsLogID, rec.MemberID, rec.PhoneNumber, rec.Status, rec.MessageID, rec.ErrorMessage).
		Scan(&rec.ID, &rec.CreatedAt)
}

func (r *PgSmsRepository) ListLogs(ctx context.Context, limit, offset int) ([]models.SmsLog, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, message, recipient_count, sent_by, cost_estimate, sent_at
		FROM sms_logs
		ORDER BY sent_at DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list SMS logs: %w", err)
	}
	defer rows.Close()

	logs := []models.SmsLog{}
	for rows.Next() {
		var l models.SmsLog
		if err := rows.Scan(&l.ID, &l.Message, &l.RecipientCount, &l.SentBy, &l.CostEstimate, &l.SentAt); err != nil {
			return nil, fmt.Errorf("failed to scan SMS log: %w", err)
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range logs {
		recipients, err := r.logRecipients(ctx, logs[i].ID)
		if err != nil {
			return nil, err
		}
		logs[i].Recipients = recipients
	}
	return logs, nil
}

func (r *PgSmsRepository) logRecipients(ctx context.Context, logID int) ([]models.SmsRecipient, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT sr.id, sr.sms_log_id, sr.member_id, COALESCE(m.full_name, ''),
		       sr.phone_number, sr.status, sr.message_id, sr.created_at
		FROM sms_recipients sr
		LEFT JOIN members m ON sr.member_id = m.id
		WHERE sr.sms_log_id = $1
		ORDER BY sr.id
	`, logID)
	if err != nil {
		return nil, fmt.Errorf("failed to query SMS recipients: %w", err)
	}
	defer rows.Close()

	recipients := []models.SmsRecipient{}
	for rows.Next() {
		var rec models.SmsRecipient
		err := rows.Scan(&rec.ID, &rec.SmsLogID, &rec.MemberID, &rec.FullName,
			&rec.PhoneNumber, &rec.Status, &rec.MessageID, &rec.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan SMS recipient: %w", err)
		}
		recipients = append(recipients, rec)
	}
	return recipients, rows.Err()
}

func (r *PgSmsRepository) Stats(ctx context.Context) (*models.SmsStats, error) {
	var stats models.SmsStats
	err := r.pool.QueryRow(ctx, `
		SELECT
			COALESCE(SUM(recipient_count), 0)::integer,
			COALESCE(SUM(CASE WHEN sent_at >= date_trunc('month', CURRENT_DATE) THEN recipient_count ELSE 0 END), 0)::integer,
			COALESCE(SUM(cost_estimate), 0)
		FROM sms_logs
	`).Scan(&stats.TotalSent, &stats.ThisMonth, &stats.TotalCost)
	if err != nil {
		return nil, fmt.Errorf("failed to query SMS stats: %w", err)
	}
	return &stats, nil
}

// Ensure PgSmsRepository implements the interface
var _ SmsRepository = (*PgSmsRepository)(nil)
