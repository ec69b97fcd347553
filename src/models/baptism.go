package models

import "time"

// BaptismRecord documents a baptism ceremony. Soft-deleted like Member.
type BaptismRecord struct {
	ID                 int        `json:"id"`
	EventDate          time.Time  `json:"event_date"`
	ChildBaptismName   string     `json:"child_baptism_name"`
	ChildCallName      *string    `json:"child_call_name"`
	FatherName         *string    `json:"father_name"`
	MotherName         *string    `json:"mother_name"`
	ParentsNationality *string    `json:"parents_nationality"`
	ChildBirthDate     *time.Time `json:"child_birth_date"`
	ChildBaptismDate   *time.Time `json:"child_baptism_date"`
	GodparentName      *string    `json:"godparent_name"`
	BaptismChurch      *string    `json:"baptism_church"`
	PriestName         *string    `json:"priest_name"`
	Notes              *string    `json:"notes"`
	IsActive           bool       `json:"is_active"`
	CreatedBy          *string    `json:"created_by"`
	UpdatedBy          *string    `json:"updated_by"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}
