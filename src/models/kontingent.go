package models

import "time"

// KontingentPayment is one member's fee record for one calendar month.
// (member_id, payment_month) is unique; writes are upserts, not history.
type KontingentPayment struct {
	ID           int        `json:"id"`
	MemberID     int        `json:"member_id"`
	PaymentMonth string     `json:"payment_month"` // YYYY-MM
	Paid         bool       `json:"paid"`
	PaymentDate  *time.Time `json:"payment_date"`
	Amount       *float64   `json:"amount"`
	Notes        *string    `json:"notes"`
	RecordedBy   *string    `json:"recorded_by"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// KontingentStatus is one row of the per-month overview: every active member
// joined with their payment for the requested month, paid defaulting false.
type KontingentStatus struct {
	MemberID     int        `json:"member_id"`
	FullName     string     `json:"full_name"`
	PhoneNumber  string     `json:"phone_number"`
	Personnummer *string    `json:"personnummer"`
	Paid         bool       `json:"paid"`
	PaymentDate  *time.Time `json:"payment_date"`
	Amount       *float64   `json:"amount"`
	Notes        *string    `json:"notes"`
	RecordedBy   *string    `json:"recorded_by"`
	PaymentID    *int       `json:"payment_id"`
}
