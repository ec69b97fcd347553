package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/debreiyesus/church-server/src/models"
)

const eventsTable = "events"

// EventService manages church events
type EventService struct {
	pool  *pgxpool.Pool
	audit *AuditService
}

// NewEventService creates a new event service
func NewEventService(pool *pgxpool.Pool, audit *AuditService) *EventService {
	return &EventService{pool: pool, audit: audit}
}

// EventInput holds the editable event fields
type EventInput struct {
	Title             string     `json:"title"`
	Description       *string    `json:"description"`
	EventDate         *time.Time `json:"event_date"`
	EndDate           *time.Time `json:"end_date"`
	Location          *string    `json:"location"`
	IsRecurring       *bool      `json:"is_recurring"`
	RecurrencePattern *string    `json:"recurrence_pattern"`
	IsPublished       *bool      `json:"is_published"`
}

const eventColumns = `id, title, description, event_date, end_date, location,
	is_recurring, recurrence_pattern, created_by, is_published, created_at`

func scanEvent(row pgx.Row) (*models.Event, error) {
	var e models.Event
	err := row.Scan(&e.ID, &e.Title, &e.Description, &e.EventDate, &e.EndDate,
		&e.Location, &e.IsRecurring, &e.RecurrencePattern, &e.CreatedBy,
		&e.IsPublished, &e.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// ListUpcoming returns published events from today onward, soonest first.
// A limit of 0 returns them all.
func (s *EventService) ListUpcoming(ctx context.Context, limit int) ([]models.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE is_published = true AND event_date >= CURRENT_DATE
		ORDER BY event_date ASC`
	args := []interface{}{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list upcoming events: %w", err)
	}
	defer rows.Close()
	return collectEvents(rows)
}

// List returns all events for the admin backend, soonest first
func (s *EventService) List(ctx context.Context) ([]models.Event, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT `+eventColumns+`
		FROM events
		ORDER BY event_date DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()
	return collectEvents(rows)
}

func collectEvents(rows pgx.Rows) ([]models.Event, error) {
	events := []models.Event{}
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, *e)
	}
	return events, rows.Err()
}

func (s *EventService) get(ctx context.Context, id int) (*models.Event, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+eventColumns+` FROM events WHERE id = $1`, id)
	e, err := scanEvent(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load event: %w", err)
	}
	return e, nil
}

// Create inserts a new event
func (s *EventService) Create(ctx context.Context, actor models.Actor, input EventInput) (*models.Event, error) {
	if input.Title == "" || input.EventDate == nil {
		return nil, validationError("title and event date are required")
	}

	recurring := input.IsRecurring != nil && *input.IsRecurring
	published := input.IsPublished == nil || *input.IsPublished

	row := s.pool.QueryRow(ctx, `
		INSERT INTO events (title, description, event_date, end_date, location,
			is_recurring, recurrence_pattern, created_by, is_published)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+eventColumns,
		input.Title, input.Description, *input.EventDate, input.EndDate, input.Location,
		recurring, input.RecurrencePattern, actor.ID, published)
	e, err := scanEvent(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	s.audit.Record(ctx, actor, models.AuditActionCreate, eventsTable, e.ID, nil, e)
	return e, nil
}

// Update modifies an event
func (s *EventService) Update(ctx context.Context, actor models.Actor, id int, input EventInput) (*models.Event, error) {
	existing, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.Title == "" || input.EventDate == nil {
		return nil, validationError("title and event date are required")
	}

	recurring := existing.IsRecurring
	if input.IsRecurring != nil {
		recurring = *input.IsRecurring
	}
	published := existing.IsPublished
	if input.IsPublished != nil {
		published = *input.IsPublished
	}

	row := s.pool.QueryRow(ctx, `
		UPDATE events SET
			title = $1, description = $2, event_date = $3, end_date = $4,
			location = $5, is_recurring = $6, recurrence_pattern = $7, is_published = $8
		WHERE id = $9
		RETURNING `+eventColumns,
		input.Title, input.Description, *input.EventDate, input.EndDate,
		input.Location, recurring, input.RecurrencePattern, published, id)
	e, err := scanEvent(row)
	if err != nil {
		return nil, fmt.Errorf("failed to update event: %w", err)
	}

	s.audit.Record(ctx, actor, models.AuditActionUpdate, eventsTable, id, existing, e)
	return e, nil
}

// Delete removes an event permanently
func (s *EventService) Delete(ctx context.Context, actor models.Actor, id int) error {
	existing, err := s.get(ctx, id)
	if err != nil {
		return err
	}

	if _, err := s.pool.Exec(ctx, `DELETE FROM events WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	s.audit.Record(ctx, actor, models.AuditActionDelete, eventsTable, id, existing, nil)
	return nil
}
