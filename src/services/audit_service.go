package services

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/debreiyesus/church-server/src/logging"
	"github.com/debreiyesus/church-server/src/models"
	"github.com/debreiyesus/church-server/src/repositories"
)

// AuditService appends entries to the audit trail. Writes are best-effort:
// a failed audit write is logged and swallowed, never surfaced to the caller
// and never rolled into the primary operation's transaction. Entries can
// therefore be missing under persistence faults; this is accepted.
type AuditService struct {
	repo   repositories.AuditRepository
	logger zerolog.Logger
}

// NewAuditService creates a new audit service
func NewAuditService(repo repositories.AuditRepository) *AuditService {
	return &AuditService{
		repo:   repo,
		logger: logging.NewLogger("audit"),
	}
}

// Record appends one audit entry for a mutating action. oldValues and
// newValues are stored as opaque JSON snapshots; nil means no snapshot.
func (s *AuditService) Record(ctx context.Context, actor models.Actor, action, tableName string, recordID int, oldValues, newValues interface{}) {
	entry := &models.AuditEntry{
		Action:    action,
		TableName: tableName,
	}
	if actor.Username != "" {
		entry.Username = &actor.Username
	}
	if actor.IP != "" {
		entry.IPAddress = &actor.IP
	}
	if recordID != 0 {
		entry.RecordID = &recordID
	}

	entry.OldValues = marshalSnapshot(oldValues)
	entry.NewValues = marshalSnapshot(newValues)

	if err := s.repo.Insert(ctx, entry); err != nil {
		s.logger.Error().Err(err).
			Str("action", action).
			Str("table", tableName).
			Int("record_id", recordID).
			Msg("audit write failed")
	}
}

// List returns audit entries, newest first, optionally filtered by table
func (s *AuditService) List(ctx context.Context, tableName string, limit, offset int) ([]models.AuditEntry, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.List(ctx, tableName, limit, offset)
}

func marshalSnapshot(v interface{}) json.RawMessage {
	if v == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return data
}
