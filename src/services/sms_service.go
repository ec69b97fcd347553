package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/debreiyesus/church-server/src/logging"
	"github.com/debreiyesus/church-server/src/models"
	"github.com/debreiyesus/church-server/src/repositories"
)

// SMSResult is the outcome of one campaign send
type SMSResult struct {
	LogID      int                   `json:"log_id"`
	Sent       int                   `json:"sent"`
	Failed     int                   `json:"failed"`
	Total      int                   `json:"total"`
	Recipients []SMSRecipientOutcome `json:"recipients"`
}

// SMSRecipientOutcome is the per-recipient delivery detail in a send response
type SMSRecipientOutcome struct {
	MemberID    int    `json:"member_id"`
	FullName    string `json:"full_name"`
	PhoneNumber string `json:"phone_number"`
	Status      string `json:"status"`
	Error       string `json:"error,omitempty"`
}

// SMSService sends campaign messages to members and keeps the send history.
// A nil sender means the gateway is not configured and sends are refused.
type SMSService struct {
	repo           repositories.SmsRepository
	sender         SMSSender
	costPerMessage float64
	logger         zerolog.Logger
}

// NewSMSService creates a new SMS service
func NewSMSService(repo repositories.SmsRepository, sender SMSSender, costPerMessage float64) *SMSService {
	return &SMSService{
		repo:           repo,
		sender:         sender,
		costPerMessage: costPerMessage,
		logger:         logging.NewLogger("sms"),
	}
}

// Configured reports whether an SMS gateway is wired in
func (s *SMSService) Configured() bool {
	return s.sender != nil
}

// Send dispatches one message to the eligible subset of the given members.
// Only active members with SMS consent receive the message; ineligible ids
// are dropped silently. One sms_logs row is written before dispatch, then
// every delivery attempt is recorded, success or failure. A failed recipient
// never aborts the rest of the batch.
func (s *SMSService) Send(ctx context.Context, actor models.Actor, memberIDs []int, message string) (*SMSResult, error) {
	if message == "" || len(memberIDs) == 0 {
		return nil, validationError("message and recipients are required")
	}
	if s.sender == nil {
		return nil, ErrSMSNotConfigured
	}

	recipients, err := s.repo.EligibleRecipients(ctx, memberIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve recipients: %w", err)
	}
	if len(recipients) == 0 {
		return nil, validationError("no eligible recipients (active members with SMS consent)")
	}

	log := &models.SmsLog{
		Message:        message,
		RecipientCount: len(recipients),
		SentBy:         &actor.Username,
		CostEstimate:   float64(len(recipients)) * s.costPerMessage,
	}
	if err := s.repo.CreateLog(ctx, log); err != nil {
		return nil, fmt.Errorf("failed to create SMS log: %w", err)
	}

	outcomes := make([]SMSRecipientOutcome, len(recipients))

	var wg sync.WaitGroup
	for i, member := range recipients {
		wg.Add(1)
		go func(i int, member models.Member) {
			defer wg.Done()
			outcomes[i] = s.sendOne(ctx, log.ID, member, message)
		}(i, member)
	}
	wg.Wait()

	result := &SMSResult{
		LogID:      log.ID,
		Total:      len(recipients),
		Recipients: outcomes,
	}
	for _, o := range outcomes {
		if o.Status == models.SMSStatusSent {
			result.Sent++
		} else {
			result.Failed++
		}
	}

	s.logger.Info().
		Int("log_id", log.ID).
		Int("sent", result.Sent).
		Int("failed", result.Failed).
		Str("sent_by", actor.Username).
		Msg("SMS campaign dispatched")

	return result, nil
}

// sendOne dispatches to a single member and persists the outcome row
func (s *SMSService) sendOne(ctx context.Context, logID int, member models.Member, message string) SMSRecipientOutcome {
	outcome := SMSRecipientOutcome{
		MemberID:    member.ID,
		FullName:    member.FullName,
		PhoneNumber: member.PhoneNumber,
	}

	rec := &models.SmsRecipient{
		SmsLogID:    logID,
		MemberID:    member.ID,
		PhoneNumber: member.PhoneNumber,
	}

	messageID, err := s.sender.Send(ctx, member.PhoneNumber, message)
	if err != nil {
		errMsg := err.Error()
		rec.Status = models.SMSStatusFailed
		rec.ErrorMessage = &errMsg
		outcome.Status = models.SMSStatusFailed
		outcome.Error = errMsg
		s.logger.Warn().
			Err(err).
			Int("member_id", member.ID).
			Msg("SMS delivery failed")
	} else {
		rec.Status = models.SMSStatusSent
		rec.MessageID = &messageID
		outcome.Status = models.SMSStatusSent
	}

	if err := s.repo.AddRecipient(ctx, rec); err != nil {
		s.logger.Error().
			Err(err).
			Int("member_id", member.ID).
			Int("log_id", logID).
			Msg("failed to record SMS recipient")
	}

	return outcome
}

// History returns past campaigns, newest first
func (s *SMSService) History(ctx context.Context, limit, offset int) ([]models.SmsLog, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.ListLogs(ctx, limit, offset)
}

// Stats returns aggregate campaign totals
func (s *SMSService) Stats(ctx context.Context) (*models.SmsStats, error) {
	return s.repo.Stats(ctx)
}
