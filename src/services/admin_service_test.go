package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/debreiyesus/church-server/src/models"
	"github.com/debreiyesus/church-server/src/repositories/mock"
)

func newAdminServiceForTest() (*AdminService, *mock.AdminRepository, *mock.AuditRepository) {
	repo := mock.NewAdminRepository()
	auditRepo := mock.NewAuditRepository()
	svc := NewAdminService(repo, NewAuditService(auditRepo))
	return svc, repo, auditRepo
}

func TestAdminCreateRejectsShortPassword(t *testing.T) {
	svc, repo, _ := newAdminServiceForTest()

	_, err := svc.Create(context.Background(), testActor(), CreateAdminInput{
		Username: "newadmin",
		Password: "short",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))
	assert.Empty(t, repo.Calls["Create"])
}

func TestAdminCreateRejectsDuplicateUsername(t *testing.T) {
	svc, repo, _ := newAdminServiceForTest()
	repo.UsernameExistsFunc = func(ctx context.Context, username string, excludeID int) (bool, error) {
		return true, nil
	}

	_, err := svc.Create(context.Background(), testActor(), CreateAdminInput{
		Username: "existing",
		Password: "password123",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConflict))
}

func TestAdminCreateHashesPassword(t *testing.T) {
	svc, repo, auditRepo := newAdminServiceForTest()

	admin, err := svc.Create(context.Background(), testActor(), CreateAdminInput{
		Username: "newadmin",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.NotEqual(t, "password123", admin.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("password123")))

	require.Len(t, repo.Calls["Create"], 1)
	require.Len(t, auditRepo.Entries, 1)
	assert.Equal(t, models.AuditActionCreate, auditRepo.Entries[0].Action)
}

func TestAdminUpdateProtectsLastSuperAdmin(t *testing.T) {
	svc, repo, _ := newAdminServiceForTest()
	repo.GetByIDFunc = func(ctx context.Context, id int) (*models.Admin, error) {
		return &models.Admin{ID: id, Username: "root", IsActive: true, IsSuperAdmin: true}, nil
	}
	repo.CountActiveSuperAdminsFunc = func(ctx context.Context, excludeID int) (int, error) {
		return 0, nil
	}

	demote := false
	_, err := svc.Update(context.Background(), testActor(), 5, UpdateAdminInput{
		IsSuperAdmin: &demote,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConflict))
	assert.Empty(t, repo.Calls["Update"])

	deactivate := false
	_, err = svc.Update(context.Background(), testActor(), 5, UpdateAdminInput{
		IsActive: &deactivate,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConflict))
}

func TestAdminUpdateAllowsDemotionWhenAnotherSuperAdminExists(t *testing.T) {
	svc, repo, _ := newAdminServiceForTest()
	repo.GetByIDFunc = func(ctx context.Context, id int) (*models.Admin, error) {
		return &models.Admin{ID: id, Username: "root", IsActive: true, IsSuperAdmin: true}, nil
	}
	repo.CountActiveSuperAdminsFunc = func(ctx context.Context, excludeID int) (int, error) {
		return 1, nil
	}

	demote := false
	admin, err := svc.Update(context.Background(), testActor(), 5, UpdateAdminInput{
		IsSuperAdmin: &demote,
	})
	require.NoError(t, err)
	assert.False(t, admin.IsSuperAdmin)
}

func TestAdminDeleteRejectsSelf(t *testing.T) {
	svc, repo, _ := newAdminServiceForTest()

	actor := models.Actor{ID: 3, Username: "self"}
	err := svc.Delete(context.Background(), actor, 3)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConflict))
	assert.Empty(t, repo.Calls["GetByID"], "self-delete should be rejected before any lookup")
}

func TestAdminDeleteProtectsLastSuperAdmin(t *testing.T) {
	svc, repo, _ := newAdminServiceForTest()
	repo.GetByIDFunc = func(ctx context.Context, id int) (*models.Admin, error) {
		return &models.Admin{ID: id, Username: "root", IsActive: true, IsSuperAdmin: true}, nil
	}
	repo.CountActiveSuperAdminsFunc = func(ctx context.Context, excludeID int) (int, error) {
		return 0, nil
	}

	err := svc.Delete(context.Background(), testActor(), 5)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConflict))
	assert.Empty(t, repo.Calls["Deactivate"])
}

func TestAdminDeleteIsSoft(t *testing.T) {
	svc, repo, auditRepo := newAdminServiceForTest()
	repo.GetByIDFunc = func(ctx context.Context, id int) (*models.Admin, error) {
		return &models.Admin{ID: id, Username: "other", IsActive: true}, nil
	}

	err := svc.Delete(context.Background(), testActor(), 5)
	require.NoError(t, err)
	require.Len(t, repo.Calls["Deactivate"], 1)

	require.Len(t, auditRepo.Entries, 1)
	assert.Equal(t, models.AuditActionDelete, auditRepo.Entries[0].Action)
}

func TestAdminDeleteNotFound(t *testing.T) {
	svc, _, _ := newAdminServiceForTest()

	err := svc.Delete(context.Background(), testActor(), 99)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestEnsureSuperAdminSeedsOnlyWhenMissing(t *testing.T) {
	svc, repo, _ := newAdminServiceForTest()

	created, err := svc.EnsureSuperAdmin(context.Background(), "root", "password123")
	require.NoError(t, err)
	assert.True(t, created)
	require.Len(t, repo.Calls["Create"], 1)
	admin := repo.Calls["Create"][0].(*models.Admin)
	assert.True(t, admin.IsSuperAdmin)

	repo.CountActiveSuperAdminsFunc = func(ctx context.Context, excludeID int) (int, error) {
		return 1, nil
	}
	created, err = svc.EnsureSuperAdmin(context.Background(), "root", "password123")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Len(t, repo.Calls["Create"], 1, "no second admin should be created")
}

func TestAuthenticateGenericFailure(t *testing.T) {
	repo := mock.NewAdminRepository()
	svc := NewAuthService(repo)

	// Unknown user
	_, err := svc.Authenticate(context.Background(), "ghost", "password123")
	assert.True(t, errors.Is(err, ErrInvalidCredentials))

	// Known user, wrong password: same error
	hash, _ := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.DefaultCost)
	repo.GetActiveByUsernameFunc = func(ctx context.Context, username string) (*models.Admin, error) {
		return &models.Admin{ID: 1, Username: username, PasswordHash: string(hash), IsActive: true}, nil
	}
	_, err = svc.Authenticate(context.Background(), "root", "wrong-password")
	assert.True(t, errors.Is(err, ErrInvalidCredentials))

	// Correct password succeeds
	admin, err := svc.Authenticate(context.Background(), "root", "correct-password")
	require.NoError(t, err)
	assert.Equal(t, "root", admin.Username)
}
