package models

import "time"

// Member represents a registered church member.
// Members are soft-deleted: is_active=false, the row is never removed.
type Member struct {
	ID            int        `json:"id"`
	FullName      string     `json:"full_name"`
	PhoneNumber   string     `json:"phone_number"`
	Email         *string    `json:"email"`
	Personnummer  *string    `json:"personnummer"`
	CardNumber    *string    `json:"card_number"`
	Address       *string    `json:"address"`
	PostalCode    *string    `json:"postal_code"`
	City          *string    `json:"city"`
	CardIssueDate *time.Time `json:"card_issue_date"`
	SMSConsent    bool       `json:"sms_consent"`
	IsActive      bool       `json:"is_active"`
	Notes         *string    `json:"notes"`
	CreatedBy     *string    `json:"created_by"`
	UpdatedBy     *string    `json:"updated_by"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
