package repositories

import (
	"context"

	"github.com/debreiyesus/church-server/src/models"
)

// MemberFilter narrows member listings
type MemberFilter struct {
	Active *bool
	Search string // case-insensitive partial match over name/phone/personnummer
}

// MemberRepository defines the interface for member data access
type MemberRepository interface {
	List(ctx context.Context, filter MemberFilter) ([]models.Member, error)
	GetByID(ctx context.Context, id int) (*models.Member, error)
	PhoneExists(ctx context.Context, phone string, excludeID int) (bool, error)
	CardNumberExists(ctx context.Context, cardNumber string, excludeID int) (bool, error)
	Create(ctx context.Context, m *models.Member) error
	Update(ctx context.Context, m *models.Member) error
	Deactivate(ctx context.Context, id int, updatedBy string) error
}

// AdminRepository defines the interface for admin account data access
type AdminRepository interface {
	List(ctx context.Context) ([]models.Admin, error)
	GetByID(ctx context.Context, id int) (*models.Admin, error)
	GetActiveByUsername(ctx context.Context, username string) (*models.Admin, error)
	UsernameExists(ctx context.Context, username string, excludeID int) (bool, error)
	CountActiveSuperAdmins(ctx context.Context, excludeID int) (int, error)
	Create(ctx context.Context, a *models.Admin) error
	Update(ctx context.Context, a *models.Admin) error
	Deactivate(ctx context.Context, id int) error
}

// BaptismRepository defines the interface for baptism record data access
type BaptismRepository interface {
	List(ctx context.Context, active *bool) ([]models.BaptismRecord, error)
	GetByID(ctx context.Context, id int) (*models.BaptismRecord, error)
	Create(ctx context.Context, r *models.BaptismRecord) error
	Update(ctx context.Context, r *models.BaptismRecord) error
	Deactivate(ctx context.Context, id int, updatedBy string) error
}

// KontingentRepository defines the interface for membership-fee data access
type KontingentRepository interface {
	MonthStatus(ctx context.Context, month string) ([]models.KontingentStatus, error)
	Upsert(ctx context.Context, p *models.KontingentPayment) error
}

// SmsRepository defines the interface for SMS log data access
type SmsRepository interface {
	EligibleRecipients(ctx context.Context, memberIDs []int) ([]models.Member, error)
	CreateLog(ctx context.Context, log *models.SmsLog) error
	AddRecipient(ctx context.Context, r *models.SmsRecipient) error
	ListLogs(ctx context.Context, limit, offset int) ([]models.SmsLog, error)
	Stats(ctx context.Context) (*models.SmsStats, error)
}

// AuditRepository defines the interface for the append-only audit trail
type AuditRepository interface {
	Insert(ctx context.Context, e *models.AuditEntry) error
	List(ctx context.Context, tableName string, limit, offset int) ([]models.AuditEntry, error)
}
