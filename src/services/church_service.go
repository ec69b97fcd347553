package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/debreiyesus/church-server/src/models"
)

const churchInfoTable = "church_info"

// ChurchService manages the singleton church_info row
type ChurchService struct {
	pool  *pgxpool.Pool
	audit *AuditService
}

// NewChurchService creates a new church info service
func NewChurchService(pool *pgxpool.Pool, audit *AuditService) *ChurchService {
	return &ChurchService{pool: pool, audit: audit}
}

const churchInfoColumns = `
	id, name, address, phone, email, website, facebook, logo_url,
	pastor_name, pastor_phone, pastor_email, pastor_bio,
	sunday_service_time, wednesday_service_time, other_service_times,
	description, mission_statement, background_color, show_members_link,
	field_label_pastor, field_label_address, field_label_phone,
	field_label_email, field_label_website, field_label_facebook,
	updated_at`

func scanChurchInfo(row pgx.Row) (*models.ChurchInfo, error) {
	var info models.ChurchInfo
	err := row.Scan(
		&info.ID, &info.Name, &info.Address, &info.Phone, &info.Email,
		&info.Website, &info.Facebook, &info.LogoURL,
		&info.PastorName, &info.PastorPhone, &info.PastorEmail, &info.PastorBio,
		&info.SundayServiceTime, &info.WednesdayServiceTime, &info.OtherServiceTimes,
		&info.Description, &info.MissionStatement, &info.BackgroundColor, &info.ShowMembersLink,
		&info.FieldLabelPastor, &info.FieldLabelAddress, &info.FieldLabelPhone,
		&info.FieldLabelEmail, &info.FieldLabelWebsite, &info.FieldLabelFacebook,
		&info.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &info, nil
}

// Get returns the church info row, or ErrNotFound when none exists yet
func (s *ChurchService) Get(ctx context.Context) (*models.ChurchInfo, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+churchInfoColumns+` FROM church_info ORDER BY id LIMIT 1`)
	info, err := scanChurchInfo(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load church info: %w", err)
	}
	return info, nil
}

// ChurchInfoInput holds the editable church info fields
type ChurchInfoInput struct {
	Name                 string  `json:"name"`
	Address              *string `json:"address"`
	Phone                *string `json:"phone"`
	Email                *string `json:"email"`
	Website              *string `json:"website"`
	Facebook             *string `json:"facebook"`
	LogoURL              *string `json:"logo_url"`
	PastorName           *string `json:"pastor_name"`
	PastorPhone          *string `json:"pastor_phone"`
	PastorEmail          *string `json:"pastor_email"`
	PastorBio            *string `json:"pastor_bio"`
	SundayServiceTime    *string `json:"sunday_service_time"`
	WednesdayServiceTime *string `json:"wednesday_service_time"`
	OtherServiceTimes    *string `json:"other_service_times"`
	Description          *string `json:"description"`
	MissionStatement     *string `json:"mission_statement"`
	BackgroundColor      *string `json:"background_color"`
	ShowMembersLink      *bool   `json:"show_members_link"`
	FieldLabelPastor     *string `json:"field_label_pastor"`
	FieldLabelAddress    *string `json:"field_label_address"`
	FieldLabelPhone      *string `json:"field_label_phone"`
	FieldLabelEmail      *string `json:"field_label_email"`
	FieldLabelWebsite    *string `json:"field_label_website"`
	FieldLabelFacebook   *string `json:"field_label_facebook"`
}

// Update upserts the singleton row. The first update creates it.
func (s *ChurchService) Update(ctx context.Context, actor models.Actor, input ChurchInfoInput) (*models.ChurchInfo, error) {
	if input.Name == "" {
		return nil, validationError("church name is required")
	}

	old, err := s.Get(ctx)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	bgColor := "#ffffff"
	if input.BackgroundColor != nil && *input.BackgroundColor != "" {
		bgColor = *input.BackgroundColor
	}
	showMembers := true
	if input.ShowMembersLink != nil {
		showMembers = *input.ShowMembersLink
	}

	label := func(p *string, fallback string) string {
		if p != nil && *p != "" {
			return *p
		}
		return fallback
	}

	row := s.pool.QueryRow(ctx, `
		INSERT INTO church_info (
			id, name, address, phone, email, website, facebook, logo_url,
			pastor_name, pastor_phone, pastor_email, pastor_bio,
			sunday_service_time, wednesday_service_time, other_service_times,
			description, mission_statement, background_color, show_members_link,
			field_label_pastor, field_label_address, field_label_phone,
			field_label_email, field_label_website, field_label_facebook,
			updated_at
		) VALUES (
			1, $1, $2, $3, $4, $5, $6, $7,
			$8, $9, $10, $11,
			$12, $13, $14,
			$15, $16, $17, $18,
			$19, $20, $21, $22, $23, $24,
			NOW()
		)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			address = EXCLUDED.address,
			phone = EXCLUDED.phone,
			email = EXCLUDED.email,
			website = EXCLUDED.website,
			facebook = EXCLUDED.facebook,
			logo_url = EXCLUDED.logo_url,
			pastor_name = EXCLUDED.pastor_name,
			pastor_phone = EXCLUDED.pastor_phone,
			pastor_email = EXCLUDED.pastor_email,
			pastor_bio = EXCLUDED.pastor_bio,
			sunday_service_time = EXCLUDED.sunday_service_time,
			wednesday_service_time = EXCLUDED.wednesday_service_time,
			other_service_times = EXCLUDED.other_service_times,
			description = EXCLUDED.description,
			mission_statement = EXCLUDED.mission_statement,
			background_color = EXCLUDED.background_color,
			show_members_link = EXCLUDED.show_members_link,
			field_label_pastor = EXCLUDED.field_label_pastor,
			field_label_address = EXCLUDED.field_label_address,
			field_label_phone = EXCLUDED.field_label_phone,
			field_label_email = EXCLUDED.field_label_email,
			field_label_website = EXCLUDED.field_label_website,
			field_label_facebook = EXCLUDED.field_label_facebook,
			updated_at = NOW()
		RETURNING `+churchInfoColumns,
		input.Name, input.Address, input.Phone, input.Email, input.Website,
		input.Facebook, input.LogoURL,
		input.PastorName, input.PastorPhone, input.PastorEmail, input.PastorBio,
		input.SundayServiceTime, input.WednesdayServiceTime, input.OtherServiceTimes,
		input.Description, input.MissionStatement, bgColor, showMembers,
		label(input.FieldLabelPastor, "Pastor"),
		label(input.FieldLabelAddress, "Address"),
		label(input.FieldLabelPhone, "Phone"),
		label(input.FieldLabelEmail, "Email"),
		label(input.FieldLabelWebsite, "Website"),
		label(input.FieldLabelFacebook, "Facebook"),
	)
	info, err := scanChurchInfo(row)
	if err != nil {
		return nil, fmt.Errorf("failed to update church info: %w", err)
	}

	s.audit.Record(ctx, actor, models.AuditActionUpdate, churchInfoTable, info.ID, old, info)
	return info, nil
}
