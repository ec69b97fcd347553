package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/debreiyesus/church-server/src/models"
	"github.com/debreiyesus/church-server/src/repositories/mock"
)

// stubSender fails for the phone numbers in failing, succeeds otherwise.
// It is safe for concurrent use because its state is read-only after setup.
type stubSender struct {
	failing map[string]bool
}

func (s *stubSender) Send(ctx context.Context, phoneNumber, message string) (string, error) {
	if s.failing[phoneNumber] {
		return "", fmt.Errorf("gateway rejected %s", phoneNumber)
	}
	return "msg-" + phoneNumber, nil
}

func newSMSServiceForTest(sender SMSSender) (*SMSService, *mock.SmsRepository) {
	repo := mock.NewSmsRepository()
	svc := NewSMSService(repo, sender, 0.16)
	return svc, repo
}

func TestSMSSendRequiresConfiguration(t *testing.T) {
	svc, repo := newSMSServiceForTest(nil)

	_, err := svc.Send(context.Background(), testActor(), []int{1, 2}, "hello")
	assert.True(t, errors.Is(err, ErrSMSNotConfigured))
	assert.Zero(t, repo.CallCount("CreateLog"))
}

func TestSMSSendValidatesInput(t *testing.T) {
	svc, repo := newSMSServiceForTest(&stubSender{})

	_, err := svc.Send(context.Background(), testActor(), []int{1}, "")
	assert.True(t, errors.Is(err, ErrValidation), "empty message")

	_, err = svc.Send(context.Background(), testActor(), nil, "hello")
	assert.True(t, errors.Is(err, ErrValidation), "no recipients")

	assert.Zero(t, repo.CallCount("EligibleRecipients"))
}

func TestSMSSendRejectsWhenNoEligibleRecipients(t *testing.T) {
	svc, repo := newSMSServiceForTest(&stubSender{})
	repo.EligibleRecipientsFunc = func(ctx context.Context, memberIDs []int) ([]models.Member, error) {
		return []models.Member{}, nil
	}

	_, err := svc.Send(context.Background(), testActor(), []int{1, 2}, "hello")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))
	assert.Zero(t, repo.CallCount("CreateLog"), "no log row without eligible recipients")
}

func TestSMSSendFansOutToAllRecipients(t *testing.T) {
	svc, repo := newSMSServiceForTest(&stubSender{})
	repo.EligibleRecipientsFunc = func(ctx context.Context, memberIDs []int) ([]models.Member, error) {
		return []models.Member{
			{ID: 1, FullName: "A", PhoneNumber: "11111111"},
			{ID: 2, FullName: "B", PhoneNumber: "22222222"},
			{ID: 3, FullName: "C", PhoneNumber: "33333333"},
		}, nil
	}

	result, err := svc.Send(context.Background(), testActor(), []int{1, 2, 3, 4}, "hello")
	require.NoError(t, err)
	assert.Equal(t, 3, result.Total)
	assert.Equal(t, 3, result.Sent)
	assert.Equal(t, 0, result.Failed)
	assert.Len(t, result.Recipients, 3)

	require.Equal(t, 1, repo.CallCount("CreateLog"))
	log := repo.Calls["CreateLog"][0].(*models.SmsLog)
	assert.Equal(t, 3, log.RecipientCount)
	assert.InDelta(t, 3*0.16, log.CostEstimate, 0.0001)

	assert.Equal(t, 3, repo.CallCount("AddRecipient"), "one outcome row per recipient")
}

func TestSMSSendIsolatesPerRecipientFailures(t *testing.T) {
	sender := &stubSender{failing: map[string]bool{"22222222": true}}
	svc, repo := newSMSServiceForTest(sender)
	repo.EligibleRecipientsFunc = func(ctx context.Context, memberIDs []int) ([]models.Member, error) {
		return []models.Member{
			{ID: 1, FullName: "A", PhoneNumber: "11111111"},
			{ID: 2, FullName: "B", PhoneNumber: "22222222"},
			{ID: 3, FullName: "C", PhoneNumber: "33333333"},
		}, nil
	}

	result, err := svc.Send(context.Background(), testActor(), []int{1, 2, 3}, "hello")
	require.NoError(t, err, "partial failure must not fail the request")
	assert.Equal(t, 2, result.Sent)
	assert.Equal(t, 1, result.Failed)

	// Outcomes keep recipient order regardless of goroutine scheduling
	assert.Equal(t, models.SMSStatusSent, result.Recipients[0].Status)
	assert.Equal(t, models.SMSStatusFailed, result.Recipients[1].Status)
	assert.NotEmpty(t, result.Recipients[1].Error)
	assert.Equal(t, models.SMSStatusSent, result.Recipients[2].Status)

	// Every attempt is persisted, including the failed one
	assert.Equal(t, 3, repo.CallCount("AddRecipient"))
	statuses := map[string]int{}
	for _, call := range repo.Calls["AddRecipient"] {
		rec := call.(*models.SmsRecipient)
		statuses[rec.Status]++
		if rec.Status == models.SMSStatusFailed {
			require.NotNil(t, rec.ErrorMessage)
		} else {
			require.NotNil(t, rec.MessageID)
		}
	}
	assert.Equal(t, 2, statuses[models.SMSStatusSent])
	assert.Equal(t, 1, statuses[models.SMSStatusFailed])
}

func TestSMSHistoryClampsLimit(t *testing.T) {
	svc, repo := newSMSServiceForTest(nil)

	_, err := svc.History(context.Background(), -5, -1)
	require.NoError(t, err)
	require.Equal(t, 1, repo.CallCount("ListLogs"))
	args := repo.Calls["ListLogs"][0].([]int)
	assert.Equal(t, 50, args[0])
	assert.Equal(t, 0, args[1])
}
