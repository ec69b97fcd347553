package models

import (
	"encoding/json"
	"time"
)

// Audit actions
const (
	AuditActionCreate     = "CREATE"
	AuditActionUpdate     = "UPDATE"
	AuditActionDelete     = "DELETE"
	AuditActionMarkPaid   = "MARK_PAID"
	AuditActionMarkUnpaid = "MARK_UNPAID"
)

// AuditEntry is an append-only record of a mutating action. Entries are
// never updated or deleted.
type AuditEntry struct {
	ID        int             `json:"id"`
	Username  *string         `json:"username"`
	Action    string          `json:"action"`
	TableName string          `json:"table_name"`
	RecordID  *int            `json:"record_id"`
	OldValues json.RawMessage `json:"old_values"`
	NewValues json.RawMessage `json:"new_values"`
	IPAddress *string         `json:"ip_address"`
	CreatedAt time.Time       `json:"created_at"`
}
