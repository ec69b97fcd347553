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

func newBaptismServiceForTest() (*BaptismService, *mock.BaptismRepository, *mock.AuditRepository) {
	repo := mock.NewBaptismRepository()
	auditRepo := mock.NewAuditRepository()
	svc := NewBaptismService(repo, NewAuditService(auditRepo))
	return svc, repo, auditRepo
}

func TestBaptismCreateRequiresDateAndName(t *testing.T) {
	svc, repo, _ := newBaptismServiceForTest()

	_, err := svc.Create(context.Background(), testActor(), BaptismInput{
		ChildBaptismName: "Name Only",
	})
	assert.True(t, errors.Is(err, ErrValidation))

	date := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	_, err = svc.Create(context.Background(), testActor(), BaptismInput{
		EventDate: &date,
	})
	assert.True(t, errors.Is(err, ErrValidation))

	assert.Empty(t, repo.Calls["Create"])
}

func TestBaptismCreateAudited(t *testing.T) {
	svc, repo, auditRepo := newBaptismServiceForTest()

	date := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	record, err := svc.Create(context.Background(), testActor(), BaptismInput{
		EventDate:        &date,
		ChildBaptismName: "Test Child",
	})
	require.NoError(t, err)
	require.NotNil(t, record.CreatedBy)
	assert.Equal(t, "tester", *record.CreatedBy)

	require.Len(t, repo.Calls["Create"], 1)
	require.Len(t, auditRepo.Entries, 1)
	assert.Equal(t, "baptism_records", auditRepo.Entries[0].TableName)
}

func TestBaptismDeleteIsSoft(t *testing.T) {
	svc, repo, auditRepo := newBaptismServiceForTest()
	repo.GetByIDFunc = func(ctx context.Context, id int) (*models.BaptismRecord, error) {
		return &models.BaptismRecord{ID: id, ChildBaptismName: "Test Child", IsActive: true}, nil
	}

	err := svc.Delete(context.Background(), testActor(), 4)
	require.NoError(t, err)
	require.Len(t, repo.Calls["Deactivate"], 1)

	require.Len(t, auditRepo.Entries, 1)
	assert.Equal(t, models.AuditActionDelete, auditRepo.Entries[0].Action)
}

func TestBaptismUpdateNotFound(t *testing.T) {
	svc, _, _ := newBaptismServiceForTest()

	_, err := svc.Update(context.Background(), testActor(), 99, BaptismInput{})
	assert.True(t, errors.Is(err, ErrNotFound))
}
