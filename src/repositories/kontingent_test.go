package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/debreiyesus/church-server/src/database"
	"github.com/debreiyesus/church-server/src/models"
)

func TestKontingentUpsertIsIdempotent(t *testing.T) {
	database.WithTestDB(t, func(tdb *database.TestDB) {
		members := NewMemberRepository(tdb.Pool)
		repo := NewKontingentRepository(tdb.Pool)
		m := insertTestMember(t, members, "Test Person", "11111111", "01011012345")

		today := time.Now().UTC().Truncate(24 * time.Hour)
		amount := 100.0
		first := &models.KontingentPayment{
			MemberID:     m.ID,
			PaymentMonth: "2026-03",
			Paid:         true,
			PaymentDate:  &today,
			Amount:       &amount,
			RecordedBy:   strPtr("tester"),
		}
		require.NoError(t, repo.Upsert(context.Background(), first))

		// Second write for the same (member, month) overwrites, not duplicates
		second := &models.KontingentPayment{
			MemberID:     m.ID,
			PaymentMonth: "2026-03",
			Paid:         false,
			RecordedBy:   strPtr("tester"),
		}
		require.NoError(t, repo.Upsert(context.Background(), second))
		assert.Equal(t, first.ID, second.ID, "same row must be reused")

		statuses, err := repo.MonthStatus(context.Background(), "2026-03")
		require.NoError(t, err)
		require.Len(t, statuses, 1)
		assert.False(t, statuses[0].Paid)
		assert.Nil(t, statuses[0].PaymentDate, "unpaid clears the payment date")
	})
}

func TestKontingentMonthStatusListsAllActiveMembers(t *testing.T) {
	database.WithTestDB(t, func(tdb *database.TestDB) {
		members := NewMemberRepository(tdb.Pool)
		repo := NewKontingentRepository(tdb.Pool)

		paid := insertTestMember(t, members, "Anna Paid", "11111111", "01011012345")
		insertTestMember(t, members, "Bert Unpaid", "22222222", "02022012345")
		gone := insertTestMember(t, members, "Carl Gone", "33333333", "03032012345")
		require.NoError(t, members.Deactivate(context.Background(), gone.ID, "tester"))

		today := time.Now().UTC().Truncate(24 * time.Hour)
		require.NoError(t, repo.Upsert(context.Background(), &models.KontingentPayment{
			MemberID:     paid.ID,
			PaymentMonth: "2026-03",
			Paid:         true,
			PaymentDate:  &today,
		}))

		statuses, err := repo.MonthStatus(context.Background(), "2026-03")
		require.NoError(t, err)
		require.Len(t, statuses, 2, "inactive members are excluded")

		// Ordered by name: Anna first
		assert.Equal(t, "Anna Paid", statuses[0].FullName)
		assert.True(t, statuses[0].Paid)
		require.NotNil(t, statuses[0].PaymentID)

		assert.Equal(t, "Bert Unpaid", statuses[1].FullName)
		assert.False(t, statuses[1].Paid, "missing record defaults to unpaid")
		assert.Nil(t, statuses[1].PaymentID)

		// A month with no records still lists everyone as unpaid
		empty, err := repo.MonthStatus(context.Background(), "2026-04")
		require.NoError(t, err)
		require.Len(t, empty, 2)
		assert.False(t, empty[0].Paid)
		assert.False(t, empty[1].Paid)
	})
}
