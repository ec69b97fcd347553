package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/debreiyesus/church-server/src/models"
)

const photosTable = "photos"

// PhotoService manages the photo gallery. Deleting a photo also removes
// its backing file, best-effort.
type PhotoService struct {
	pool    *pgxpool.Pool
	audit   *AuditService
	uploads *UploadService
}

// NewPhotoService creates a new photo service
func NewPhotoService(pool *pgxpool.Pool, audit *AuditService, uploads *UploadService) *PhotoService {
	return &PhotoService{pool: pool, audit: audit, uploads: uploads}
}

// PhotoInput holds the editable photo metadata
type PhotoInput struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	IsPublished  *bool   `json:"is_published"`
	DisplayOrder *int    `json:"display_order"`
}

const photoColumns = `id, title, description, image_url, thumbnail_url,
	uploaded_by, is_published, display_order, created_at`

func scanPhoto(row pgx.Row) (*models.Photo, error) {
	var p models.Photo
	err := row.Scan(&p.ID, &p.Title, &p.Description, &p.ImageURL, &p.ThumbnailURL,
		&p.UploadedBy, &p.IsPublished, &p.DisplayOrder, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListPublished returns published gallery photos for the public site
func (s *PhotoService) ListPublished(ctx context.Context, limit int) ([]models.Photo, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	rows, err := s.pool.Query(ctx, `
		SELECT `+photoColumns+`
		FROM photos
		WHERE is_published = true
		ORDER BY display_order ASC, created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list published photos: %w", err)
	}
	defer rows.Close()
	return collectPhotos(rows)
}

// List returns all photos for the admin backend
func (s *PhotoService) List(ctx context.Context) ([]models.Photo, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT `+photoColumns+`
		FROM photos
		ORDER BY display_order ASC, created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list photos: %w", err)
	}
	defer rows.Close()
	return collectPhotos(rows)
}

func collectPhotos(rows pgx.Rows) ([]models.Photo, error) {
	photos := []models.Photo{}
	for rows.Next() {
		p, err := scanPhoto(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan photo: %w", err)
		}
		photos = append(photos, *p)
	}
	return photos, rows.Err()
}

func (s *PhotoService) get(ctx context.Context, id int) (*models.Photo, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+photoColumns+` FROM photos WHERE id = $1`, id)
	p, err := scanPhoto(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load photo: %w", err)
	}
	return p, nil
}

// Create records an uploaded photo with its public URL
func (s *PhotoService) Create(ctx context.Context, actor models.Actor, imageURL string, input PhotoInput) (*models.Photo, error) {
	if imageURL == "" {
		return nil, validationError("image is required")
	}

	published := input.IsPublished == nil || *input.IsPublished
	order := 0
	if input.DisplayOrder != nil {
		order = *input.DisplayOrder
	}

	row := s.pool.QueryRow(ctx, `
		INSERT INTO photos (title, description, image_url, uploaded_by, is_published, display_order)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+photoColumns,
		input.Title, input.Description, imageURL, actor.ID, published, order)
	p, err := scanPhoto(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create photo: %w", err)
	}

	s.audit.Record(ctx, actor, models.AuditActionCreate, photosTable, p.ID, nil, p)
	return p, nil
}

// Update modifies photo metadata; the image file itself is immutable
func (s *PhotoService) Update(ctx context.Context, actor models.Actor, id int, input PhotoInput) (*models.Photo, error) {
	existing, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	published := existing.IsPublished
	if input.IsPublished != nil {
		published = *input.IsPublished
	}
	order := existing.DisplayOrder
	if input.DisplayOrder != nil {
		order = *input.DisplayOrder
	}

	row := s.pool.QueryRow(ctx, `
		UPDATE photos SET
			title = $1, description = $2, is_published = $3, display_order = $4
		WHERE id = $5
		RETURNING `+photoColumns,
		input.Title, input.Description, published, order, id)
	p, err := scanPhoto(row)
	if err != nil {
		return nil, fmt.Errorf("failed to update photo: %w", err)
	}

	s.audit.Record(ctx, actor, models.AuditActionUpdate, photosTable, id, existing, p)
	return p, nil
}

// Delete removes a photo row and its backing file. File removal is
// best-effort; a missing file never fails the delete.
func (s *PhotoService) Delete(ctx context.Context, actor models.Actor, id int) error {
	existing, err := s.get(ctx, id)
	if err != nil {
		return err
	}

	if _, err := s.pool.Exec(ctx, `DELETE FROM photos WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete photo: %w", err)
	}

	if s.uploads != nil {
		s.uploads.Remove(existing.ImageURL)
	}

	s.audit.Record(ctx, actor, models.AuditActionDelete, photosTable, id, existing, nil)
	return nil
}
