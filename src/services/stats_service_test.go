package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/debreiyesus/church-server/src/database"
	"github.com/debreiyesus/church-server/src/repositories/mock"
)

func TestBucketAge(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	adult := "01018012345"     // born 1980
	child := "01011512345"     // born 2015
	futureTie := "01122612345" // year digits match 2026, birthday in December
	invalid := "123"

	tests := []struct {
		name        string
		pn          *string
		wantAdult   int
		wantChild   int
		wantUnknown int
	}{
		{"missing personnummer", nil, 0, 0, 1},
		{"invalid personnummer", &invalid, 0, 0, 1},
		{"adult", &adult, 1, 0, 0},
		{"child", &child, 0, 1, 0},
		{"birthday later this year counts as unknown", &futureTie, 0, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stats DashboardStats
			bucketAge(&stats, tt.pn, now)
			assert.Equal(t, tt.wantAdult, stats.AdultMembers, "adults")
			assert.Equal(t, tt.wantChild, stats.ChildMembers, "children")
			assert.Equal(t, tt.wantUnknown, stats.UnknownAge, "unknown")
		})
	}
}

func newStatsServiceForDB(tdb *database.TestDB) *StatsService {
	audit := NewAuditService(mock.NewAuditRepository())
	church := NewChurchService(tdb.Pool, audit)
	news := NewNewsService(tdb.Pool, audit)
	events := NewEventService(tdb.Pool, audit)
	return NewStatsService(tdb.Pool, church, news, events)
}

func TestDashboardAssemblesFullPayload(t *testing.T) {
	database.WithTestDB(t, func(tdb *database.TestDB) {
		ctx := context.Background()
		pool := tdb.Pool

		_, err := pool.Exec(ctx, `INSERT INTO church_info (id, name) VALUES (1, 'Debre Iyesus')`)
		require.NoError(t, err)

		for i := 1; i <= 6; i++ {
			_, err := pool.Exec(ctx, `
				INSERT INTO news (title, content, is_published, published_date)
				VALUES ($1, 'body', true, $2)
			`, fmt.Sprintf("News %d", i), time.Now().AddDate(0, 0, -i))
			require.NoError(t, err)
		}

		_, err = pool.Exec(ctx, `
			INSERT INTO events (title, event_date, is_published) VALUES
				('Soon', NOW() + INTERVAL '2 days', true),
				('Later', NOW() + INTERVAL '5 days', true),
				('Past', NOW() - INTERVAL '3 days', true),
				('Draft', NOW() + INTERVAL '1 day', false)
		`)
		require.NoError(t, err)

		_, err = pool.Exec(ctx, `
			INSERT INTO members (full_name, phone_number, personnummer, is_active) VALUES
				('Adult', '11111111', '01018012345', true),
				('Child', '22222222', '01011512345', true),
				('No Personnummer', '33333333', NULL, true),
				('Former Adult', '44444444', '02028012345', false)
		`)
		require.NoError(t, err)

		_, err = pool.Exec(ctx, `INSERT INTO photos (image_url) VALUES ('/uploads/x.jpg')`)
		require.NoError(t, err)
		_, err = pool.Exec(ctx, `
			INSERT INTO baptism_records (event_date, child_baptism_name)
			VALUES ('2024-05-01', 'Test Child')
		`)
		require.NoError(t, err)

		dashboard, err := newStatsServiceForDB(tdb).Dashboard(ctx)
		require.NoError(t, err)

		require.NotNil(t, dashboard.Church)
		assert.Equal(t, "Debre Iyesus", dashboard.Church.Name)

		assert.Equal(t, 4, dashboard.Stats.TotalMembers)
		assert.Equal(t, 3, dashboard.Stats.ActiveMembers)
		assert.Equal(t, 1, dashboard.Stats.AdultMembers, "inactive members are not bucketed")
		assert.Equal(t, 1, dashboard.Stats.ChildMembers)
		assert.Equal(t, 1, dashboard.Stats.UnknownAge)
		assert.Equal(t, 2, dashboard.Stats.UpcomingEvents)
		assert.Equal(t, 6, dashboard.Stats.PublishedNews)
		assert.Equal(t, 1, dashboard.Stats.TotalPhotos)
		assert.Equal(t, 1, dashboard.Stats.BaptismRecords)

		require.Len(t, dashboard.RecentNews, 5, "recent news is capped at 5")
		assert.Equal(t, "News 1", dashboard.RecentNews[0].Title, "newest first")

		require.Len(t, dashboard.RecentEvents, 2)
		assert.Equal(t, "Soon", dashboard.RecentEvents[0].Title, "soonest first")
		assert.Equal(t, "Later", dashboard.RecentEvents[1].Title)
	})
}

func TestDashboardBeforeChurchInfoExists(t *testing.T) {
	database.WithTestDB(t, func(tdb *database.TestDB) {
		dashboard, err := newStatsServiceForDB(tdb).Dashboard(context.Background())
		require.NoError(t, err)

		assert.Nil(t, dashboard.Church)
		assert.Equal(t, 0, dashboard.Stats.TotalMembers)
		assert.Empty(t, dashboard.RecentNews)
		assert.Empty(t, dashboard.RecentEvents)
	})
}
