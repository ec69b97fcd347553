package mock

import (
	"context"
	"sync"

	"github.com/debreiyesus/church-server/src/models"
	"github.com/debreiyesus/church-server/src/repositories"
)

// SmsRepository is a mock implementation of repositories.SmsRepository.
// Call tracking is mutex-guarded because the SMS service records
// recipients from concurrent goroutines.
type SmsRepository struct {
	EligibleRecipientsFunc func(ctx context.Context, memberIDs []int) ([]models.Member, error)
	CreateLogFunc          func(ctx context.Context, log *models.SmsLog) error
	AddRecipientFunc       func(ctx context.Context, r *models.SmsRecipient) error
	ListLogsFunc           func(ctx context.Context, limit, offset int) ([]models.SmsLog, error)
	StatsFunc              func(ctx context.Context) (*models.SmsStats, error)

	// Call tracking
	mu    sync.Mutex
	Calls map[string][]interface{}
}

// NewSmsRepository creates a new mock SMS repository
func NewSmsRepository() *SmsRepository {
	return &SmsRepository{
		Calls: make(map[string][]interface{}),
	}
}

func (m *SmsRepository) record(method string, arg interface{}) {
	m.mu.Lock()
	m.Calls[method] = append(m.Calls[method], arg)
	m.mu.Unlock()
}

// CallCount returns how many times a method was invoked
func (m *SmsRepository) CallCount(method string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls[method])
}

func (m *SmsRepository) EligibleRecipients(ctx context.Context, memberIDs []int) ([]models.Member, error) {
	m.record("EligibleRecipients", memberIDs)
	if m.EligibleRecipientsFunc != nil {
		return m.EligibleRecipientsFunc(ctx, memberIDs)
	}
	return nil, nil
}

func (m *SmsRepository) CreateLog(ctx context.Context, log *models.SmsLog) error {
	m.record("CreateLog", log)
	if m.CreateLogFunc != nil {
		return m.CreateLogFunc(ctx, log)
	}
	return nil
}

func (m *SmsRepository) AddRecipient(ctx context.Context, r *models.SmsRecipient) error {
	m.record("AddRecipient", r)
	if m.AddRecipientFunc != nil {
		return m.AddRecipientFunc(ctx, r)
	}
	return nil
}

func (m *SmsRepository) ListLogs(ctx context.Context, limit, offset int) ([]models.SmsLog, error) {
	m.record("ListLogs", []int{limit, offset})
	if m.ListLogsFunc != nil {
		return m.ListLogsFunc(ctx, limit, offset)
	}
	return nil, nil
}

func (m *SmsRepository) Stats(ctx context.Context) (*models.SmsStats, error) {
	m.record("Stats", nil)
	if m.StatsFunc != nil {
		return m.StatsFunc(ctx)
	}
	return nil, nil
}

// Ensure SmsRepository implements the interface
var _ repositories.SmsRepository = (*SmsRepository)(nil)
