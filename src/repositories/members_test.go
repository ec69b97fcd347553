package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/debreiyesus/church-server/src/database"
	"github.com/debreiyesus/church-server/src/models"
)

func strPtr(s string) *string { return &s }

func insertTestMember(t *testing.T, repo *PgMemberRepository, name, phone, pn string) *models.Member {
	t.Helper()
	m := &models.Member{
		FullName:     name,
		PhoneNumber:  phone,
		Personnummer: strPtr(pn),
		SMSConsent:   true,
		CreatedBy:    strPtr("tester"),
	}
	require.NoError(t, repo.Create(context.Background(), m))
	require.NotZero(t, m.ID)
	return m
}

func TestMemberRepositoryCreateAndGet(t *testing.T) {
	database.WithTestDB(t, func(tdb *database.TestDB) {
		repo := NewMemberRepository(tdb.Pool)

		created := insertTestMember(t, repo, "Test Person", "11111111", "01011012345")
		assert.True(t, created.IsActive, "new members start active")

		got, err := repo.GetByID(context.Background(), created.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Test Person", got.FullName)
		require.NotNil(t, got.Personnummer)
		assert.Equal(t, "01011012345", *got.Personnummer)
	})
}

func TestMemberRepositoryGetMissingReturnsNil(t *testing.T) {
	database.WithTestDB(t, func(tdb *database.TestDB) {
		repo := NewMemberRepository(tdb.Pool)

		got, err := repo.GetByID(context.Background(), 9999)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestMemberRepositoryPhoneExists(t *testing.T) {
	database.WithTestDB(t, func(tdb *database.TestDB) {
		repo := NewMemberRepository(tdb.Pool)
		m := insertTestMember(t, repo, "Test Person", "11111111", "01011012345")

		exists, err := repo.PhoneExists(context.Background(), "11111111", 0)
		require.NoError(t, err)
		assert.True(t, exists)

		// Excluding the owner itself
		exists, err = repo.PhoneExists(context.Background(), "11111111", m.ID)
		require.NoError(t, err)
		assert.False(t, exists)

		exists, err = repo.PhoneExists(context.Background(), "22222222", 0)
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestMemberRepositoryDeactivateKeepsRow(t *testing.T) {
	database.WithTestDB(t, func(tdb *database.TestDB) {
		repo := NewMemberRepository(tdb.Pool)
		m := insertTestMember(t, repo, "Test Person", "11111111", "01011012345")

		require.NoError(t, repo.Deactivate(context.Background(), m.ID, "tester"))

		got, err := repo.GetByID(context.Background(), m.ID)
		require.NoError(t, err)
		require.NotNil(t, got, "soft delete must keep the row")
		assert.False(t, got.IsActive)
		require.NotNil(t, got.UpdatedBy)
		assert.Equal(t, "tester", *got.UpdatedBy)
	})
}

func TestMemberRepositoryListFilters(t *testing.T) {
	database.WithTestDB(t, func(tdb *database.TestDB) {
		repo := NewMemberRepository(tdb.Pool)
		active := insertTestMember(t, repo, "Anna Active", "11111111", "01011012345")
		inactive := insertTestMember(t, repo, "Ivan Inactive", "22222222", "02022012345")
		require.NoError(t, repo.Deactivate(context.Background(), inactive.ID, "tester"))

		all, err := repo.List(context.Background(), MemberFilter{})
		require.NoError(t, err)
		assert.Len(t, all, 2)

		onlyActive := true
		filtered, err := repo.List(context.Background(), MemberFilter{Active: &onlyActive})
		require.NoError(t, err)
		require.Len(t, filtered, 1)
		assert.Equal(t, active.ID, filtered[0].ID)

		// Case-insensitive partial search over name and phone
		found, err := repo.List(context.Background(), MemberFilter{Search: "anna"})
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "Anna Active", found[0].FullName)

		found, err = repo.List(context.Background(), MemberFilter{Search: "2222"})
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, inactive.ID, found[0].ID)
	})
}
