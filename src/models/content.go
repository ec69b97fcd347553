package models

import "time"

// ChurchInfo is the singleton row (id=1) holding church-wide settings.
type ChurchInfo struct {
	ID                   int       `json:"id"`
	Name                 string    `json:"name"`
	Address              *string   `json:"address"`
	Phone                *string   `json:"phone"`
	Email                *string   `json:"email"`
	Website              *string   `json:"website"`
	Facebook             *string   `json:"facebook"`
	LogoURL              *string   `json:"logo_url"`
	PastorName           *string   `json:"pastor_name"`
	PastorPhone          *string   `json:"pastor_phone"`
	PastorEmail          *string   `json:"pastor_email"`
	PastorBio            *string   `json:"pastor_bio"`
	SundayServiceTime    *string   `json:"sunday_service_time"`
	WednesdayServiceTime *string   `json:"wednesday_service_time"`
	OtherServiceTimes    *string   `json:"other_service_times"`
	Description          *string   `json:"description"`
	MissionStatement     *string   `json:"mission_statement"`
	BackgroundColor      string    `json:"background_color"`
	ShowMembersLink      bool      `json:"show_members_link"`
	FieldLabelPastor     string    `json:"field_label_pastor"`
	FieldLabelAddress    string    `json:"field_label_address"`
	FieldLabelPhone      string    `json:"field_label_phone"`
	FieldLabelEmail      string    `json:"field_label_email"`
	FieldLabelWebsite    string    `json:"field_label_website"`
	FieldLabelFacebook   string    `json:"field_label_facebook"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// News is a published-content article; is_published gates public visibility.
type News struct {
	ID            int        `json:"id"`
	Title         string     `json:"title"`
	Content       string     `json:"content"`
	AuthorID      *int       `json:"author_id"`
	AuthorName    *string    `json:"author_name,omitempty"` // joined on public reads
	IsPublished   bool       `json:"is_published"`
	PublishedDate *time.Time `json:"published_date"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// Event is a church event, optionally recurring.
type Event struct {
	ID                int        `json:"id"`
	Title             string     `json:"title"`
	Description       *string    `json:"description"`
	EventDate         time.Time  `json:"event_date"`
	EndDate           *time.Time `json:"end_date"`
	Location          *string    `json:"location"`
	IsRecurring       bool       `json:"is_recurring"`
	RecurrencePattern *string    `json:"recurrence_pattern"`
	CreatedBy         *int       `json:"created_by"`
	IsPublished       bool       `json:"is_published"`
	CreatedAt         time.Time  `json:"created_at"`
}

// Photo is a gallery image; the file lives under the uploads directory and
// image_url points at its public location.
type Photo struct {
	ID           int       `json:"id"`
	Title        *string   `json:"title"`
	Description  *string   `json:"description"`
	ImageURL     string    `json:"image_url"`
	ThumbnailURL *string   `json:"thumbnail_url"`
	UploadedBy   *int      `json:"uploaded_by"`
	IsPublished  bool      `json:"is_published"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
}
