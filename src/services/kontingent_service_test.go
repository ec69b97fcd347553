package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/debreiyesus/church-server/src/models"
	"github.com/debreiyesus/church-server/src/repositories/mock"
)

func newKontingentServiceForTest() (*KontingentService, *mock.KontingentRepository, *mock.AuditRepository) {
	repo := mock.NewKontingentRepository()
	auditRepo := mock.NewAuditRepository()
	svc := NewKontingentService(repo, NewAuditService(auditRepo))
	return svc, repo, auditRepo
}

func TestKontingentMonthValidation(t *testing.T) {
	svc, repo, _ := newKontingentServiceForTest()

	invalid := []string{"", "2026", "2026-13", "2026-00", "26-01", "2026/01", "2026-1"}
	for _, month := range invalid {
		_, err := svc.MonthStatus(context.Background(), month)
		require.Error(t, err, "month %q should be rejected", month)
		assert.True(t, errors.Is(err, ErrValidation))
	}
	assert.Empty(t, repo.Calls["MonthStatus"])

	_, err := svc.MonthStatus(context.Background(), "2026-02")
	require.NoError(t, err)
	assert.Len(t, repo.Calls["MonthStatus"], 1)
}

func TestKontingentUpsertPaidSetsPaymentDate(t *testing.T) {
	svc, repo, auditRepo := newKontingentServiceForTest()
	fixed := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	payment, err := svc.Upsert(context.Background(), testActor(), KontingentInput{
		MemberID: 7,
		Month:    "2026-03",
		Paid:     true,
	})
	require.NoError(t, err)
	require.NotNil(t, payment.PaymentDate)
	assert.Equal(t, fixed.Truncate(24*time.Hour), *payment.PaymentDate)
	require.NotNil(t, payment.RecordedBy)
	assert.Equal(t, "tester", *payment.RecordedBy)

	require.Len(t, repo.Calls["Upsert"], 1)
	require.Len(t, auditRepo.Entries, 1)
	assert.Equal(t, models.AuditActionMarkPaid, auditRepo.Entries[0].Action)
	assert.Equal(t, "kontingent_payments", auditRepo.Entries[0].TableName)
}

func TestKontingentUpsertUnpaidClearsPaymentDate(t *testing.T) {
	svc, _, auditRepo := newKontingentServiceForTest()

	payment, err := svc.Upsert(context.Background(), testActor(), KontingentInput{
		MemberID: 7,
		Month:    "2026-03",
		Paid:     false,
	})
	require.NoError(t, err)
	assert.Nil(t, payment.PaymentDate)

	require.Len(t, auditRepo.Entries, 1)
	assert.Equal(t, models.AuditActionMarkUnpaid, auditRepo.Entries[0].Action)
}

func TestKontingentUpsertValidatesInput(t *testing.T) {
	svc, repo, _ := newKontingentServiceForTest()

	_, err := svc.Upsert(context.Background(), testActor(), KontingentInput{
		Month: "2026-03",
		Paid:  true,
	})
	assert.True(t, errors.Is(err, ErrValidation), "missing member id")

	_, err = svc.Upsert(context.Background(), testActor(), KontingentInput{
		MemberID: 7,
		Month:    "March 2026",
		Paid:     true,
	})
	assert.True(t, errors.Is(err, ErrValidation), "malformed month")

	assert.Empty(t, repo.Calls["Upsert"])
}

func TestKontingentUpsertOverwrites(t *testing.T) {
	svc, repo, _ := newKontingentServiceForTest()

	// Same (member, month) twice: both go to the repository upsert,
	// the second write wins at the database level.
	amount1 := 100.0
	_, err := svc.Upsert(context.Background(), testActor(), KontingentInput{
		MemberID: 7, Month: "2026-03", Paid: true, Amount: &amount1,
	})
	require.NoError(t, err)

	_, err = svc.Upsert(context.Background(), testActor(), KontingentInput{
		MemberID: 7, Month: "2026-03", Paid: false,
	})
	require.NoError(t, err)

	require.Len(t, repo.Calls["Upsert"], 2)
	second := repo.Calls["Upsert"][1].(*models.KontingentPayment)
	assert.False(t, second.Paid)
	assert.Nil(t, second.PaymentDate)
}
