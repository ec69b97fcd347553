package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/debreiyesus/church-server/src/models"
)

const newsTable = "news"

// NewsService manages news articles. Publishing stamps published_date once;
// unpublishing keeps it so re-publishing preserves the original date.
type NewsService struct {
	pool  *pgxpool.Pool
	audit *AuditService
}

// NewNewsService creates a new news service
func NewNewsService(pool *pgxpool.Pool, audit *AuditService) *NewsService {
	return &NewsService{pool: pool, audit: audit}
}

// NewsInput holds the editable article fields
type NewsInput struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	IsPublished *bool  `json:"is_published"`
}

// ListPublished returns the latest published articles with author names,
// for the public site
func (s *NewsService) ListPublished(ctx context.Context, limit int) ([]models.News, error) {
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	rows, err := s.pool.Query(ctx, `
		SELECT n.id, n.title, n.content, n.author_id, a.full_name,
		       n.is_published, n.published_date, n.created_at, n.updated_at
		FROM news n
		LEFT JOIN admins a ON n.author_id = a.id
		WHERE n.is_published = true
		ORDER BY n.published_date DESC NULLS LAST, n.created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list published news: %w", err)
	}
	defer rows.Close()
	return scanNewsRows(rows)
}

// List returns all articles for the admin backend, newest first
func (s *NewsService) List(ctx context.Context) ([]models.News, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT n.id, n.title, n.content, n.author_id, a.full_name,
		       n.is_published, n.published_date, n.created_at, n.updated_at
		FROM news n
		LEFT JOIN admins a ON n.author_id = a.id
		ORDER BY n.created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list news: %w", err)
	}
	defer rows.Close()
	return scanNewsRows(rows)
}

func scanNewsRows(rows pgx.Rows) ([]models.News, error) {
	items := []models.News{}
	for rows.Next() {
		var n models.News
		err := rows.Scan(&n.ID, &n.Title, &n.Content, &n.AuthorID, &n.AuthorName,
			&n.IsPublished, &n.PublishedDate, &n.CreatedAt, &n.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan news row: %w", err)
		}
		items = append(items, n)
	}
	return items, rows.Err()
}

func (s *NewsService) get(ctx context.Context, id int) (*models.News, error) {
	var n models.News
	err := s.pool.QueryRow(ctx, `
		SELECT id, title, content, author_id, is_published, published_date, created_at, updated_at
		FROM news WHERE id = $1
	`, id).Scan(&n.ID, &n.Title, &n.Content, &n.AuthorID,
		&n.IsPublished, &n.PublishedDate, &n.CreatedAt, &n.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load news article: %w", err)
	}
	return &n, nil
}

// Create inserts a new article authored by the acting admin
func (s *NewsService) Create(ctx context.Context, actor models.Actor, input NewsInput) (*models.News, error) {
	if input.Title == "" || input.Content == "" {
		return nil, validationError("title and content are required")
	}

	published := input.IsPublished != nil && *input.IsPublished

	var n models.News
	err := s.pool.QueryRow(ctx, `
		INSERT INTO news (title, content, author_id, is_published, published_date)
		VALUES ($1, $2, $3, $4, CASE WHEN $4 THEN NOW() END)
		RETURNING id, title, content, author_id, is_published, published_date, created_at, updated_at
	`, input.Title, input.Content, actor.ID, published).
		Scan(&n.ID, &n.Title, &n.Content, &n.AuthorID,
			&n.IsPublished, &n.PublishedDate, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create news article: %w", err)
	}

	s.audit.Record(ctx, actor, models.AuditActionCreate, newsTable, n.ID, nil, &n)
	return &n, nil
}

// Update modifies an article. First publication stamps published_date.
func (s *NewsService) Update(ctx context.Context, actor models.Actor, id int, input NewsInput) (*models.News, error) {
	existing, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.Title == "" || input.Content == "" {
		return nil, validationError("title and content are required")
	}

	published := existing.IsPublished
	if input.IsPublished != nil {
		published = *input.IsPublished
	}

	var n models.News
	err = s.pool.QueryRow(ctx, `
		UPDATE news SET
			title = $1,
			content = $2,
			is_published = $3,
			published_date = CASE WHEN $3 AND published_date IS NULL THEN NOW() ELSE published_date END,
			updated_at = NOW()
		WHERE id = $4
		RETURNING id, title, content, author_id, is_published, published_date, created_at, updated_at
	`, input.Title, input.Content, published, id).
		Scan(&n.ID, &n.Title, &n.Content, &n.AuthorID,
			&n.IsPublished, &n.PublishedDate, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to update news article: %w", err)
	}

	s.audit.Record(ctx, actor, models.AuditActionUpdate, newsTable, id, existing, &n)
	return &n, nil
}

// Delete removes an article permanently
func (s *NewsService) Delete(ctx context.Context, actor models.Actor, id int) error {
	existing, err := s.get(ctx, id)
	if err != nil {
		return err
	}

	if _, err := s.pool.Exec(ctx, `DELETE FROM news WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete news article: %w", err)
	}

	s.audit.Record(ctx, actor, models.AuditActionDelete, newsTable, id, existing, nil)
	return nil
}
