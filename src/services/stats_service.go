package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/debreiyesus/church-server/src/models"
)

// DashboardStats holds the dashboard counters
type DashboardStats struct {
	TotalMembers   int `json:"total_members"`
	ActiveMembers  int `json:"active_members"`
	AdultMembers   int `json:"adult_members"` // 18 and over
	ChildMembers   int `json:"child_members"` // under 18
	UnknownAge     int `json:"unknown_age"`   // missing or invalid personnummer
	UpcomingEvents int `json:"upcoming_events"`
	PublishedNews  int `json:"published_news"`
	TotalPhotos    int `json:"total_photos"`
	BaptismRecords int `json:"baptism_records"`
}

// Dashboard is the full admin dashboard payload: the church profile, the
// counters, and short lists of what is coming up
type Dashboard struct {
	Church       *models.ChurchInfo `json:"church"`
	Stats        DashboardStats     `json:"stats"`
	RecentNews   []models.News      `json:"recent_news"`
	RecentEvents []models.Event     `json:"recent_events"`
}

// StatsService assembles the admin dashboard
type StatsService struct {
	pool   *pgxpool.Pool
	church *ChurchService
	news   *NewsService
	events *EventService
	now    func() time.Time
}

// NewStatsService creates a new stats service
func NewStatsService(pool *pgxpool.Pool, church *ChurchService, news *NewsService, events *EventService) *StatsService {
	return &StatsService{
		pool:   pool,
		church: church,
		news:   news,
		events: events,
		now:    time.Now,
	}
}

// Dashboard returns the admin dashboard: church info (nil until configured),
// counts, age buckets derived from each active member's personnummer, the 5
// most recent published articles and the next 5 events.
func (s *StatsService) Dashboard(ctx context.Context) (*Dashboard, error) {
	var stats DashboardStats
	err := s.pool.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM members),
			(SELECT COUNT(*) FROM members WHERE is_active = true),
			(SELECT COUNT(*) FROM events WHERE is_published = true AND event_date >= CURRENT_DATE),
			(SELECT COUNT(*) FROM news WHERE is_published = true),
			(SELECT COUNT(*) FROM photos),
			(SELECT COUNT(*) FROM baptism_records WHERE is_active = true)
	`).Scan(&stats.TotalMembers, &stats.ActiveMembers, &stats.UpcomingEvents,
		&stats.PublishedNews, &stats.TotalPhotos, &stats.BaptismRecords)
	if err != nil {
		return nil, fmt.Errorf("failed to query dashboard counts: %w", err)
	}

	rows, err := s.pool.Query(ctx, `
		SELECT personnummer FROM members WHERE is_active = true
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query member ages: %w", err)
	}
	defer rows.Close()

	now := s.now()
	for rows.Next() {
		var pn *string
		if err := rows.Scan(&pn); err != nil {
			return nil, fmt.Errorf("failed to scan personnummer: %w", err)
		}
		bucketAge(&stats, pn, now)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	church, err := s.church.Get(ctx)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	recentNews, err := s.news.ListPublished(ctx, 5)
	if err != nil {
		return nil, err
	}
	recentEvents, err := s.events.ListUpcoming(ctx, 5)
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		Church:       church,
		Stats:        stats,
		RecentNews:   recentNews,
		RecentEvents: recentEvents,
	}, nil
}

// bucketAge counts one member into the age buckets. A missing or invalid
// personnummer counts as unknown, as does a negative age, which the century
// heuristic produces for a birthday later in the reference year.
func bucketAge(stats *DashboardStats, pn *string, now time.Time) {
	if pn == nil {
		stats.UnknownAge++
		return
	}
	age, err := AgeFromPersonnummer(*pn, now)
	if err != nil || age < 0 {
		stats.UnknownAge++
		return
	}
	if age >= 18 {
		stats.AdultMembers++
	} else {
		stats.ChildMembers++
	}
}
