package models

import "time"

// SMS recipient delivery statuses
const (
	SMSStatusSent   = "sent"
	SMSStatusFailed = "failed"
)

// SmsLog is one row per send request; write-once.
type SmsLog struct {
	ID             int            `json:"id"`
	Message        string         `json:"message"`
	RecipientCount int            `json:"recipient_count"`
	SentBy         *string        `json:"sent_by"`
	CostEstimate   float64        `json:"cost_estimate"`
	SentAt         time.Time      `json:"sent_at"`
	Recipients     []SmsRecipient `json:"recipients,omitempty"`
}

// SmsRecipient records one attempted delivery, success or failure.
type SmsRecipient struct {
	ID           int       `json:"id"`
	SmsLogID     int       `json:"sms_log_id"`
	MemberID     int       `json:"member_id"`
	FullName     string    `json:"full_name,omitempty"` // joined on log reads
	PhoneNumber  string    `json:"phone_number"`
	Status       string    `json:"status"`
	MessageID    *string   `json:"message_id"`
	ErrorMessage *string   `json:"error_message,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// SmsStats aggregates campaign totals for the stats endpoint.
type SmsStats struct {
	TotalSent int     `json:"total_sent"`
	ThisMonth int     `json:"this_month"`
	TotalCost float64 `json:"total_cost"`
}
