package models

import (
	"time"
)

// Participant is created on the first /api/start for an email and is never
// touched again. Admin deletion removes competitive data only, not this row.
type Participant struct {
	ID        string    `gorm:"primaryKey" json:"-"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	Email     string    `gorm:"uniqueIndex" json:"email"`
	Name      string    `json:"name"`
	StartedAt time.Time `json:"started_at"`
}

// Result is a participant's best primary quiz outcome. At most one row per
// email; Score never decreases. A higher-scoring resubmission replaces every
// field, including Name.
type Result struct {
	ID        string    `gorm:"primaryKey" json:"-"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	Email       string    `gorm:"uniqueIndex" json:"email"`
	Name        string    `json:"name"`
	Score       int       `json:"score"`
	Correct     int       `json:"correct"`
	Wrong       int       `json:"wrong"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// ExtraResult is the bonus round outcome. The bonus round is single-attempt:
// the row is written once and never updated, only deleted by an admin.
type ExtraResult struct {
	ID        string    `gorm:"primaryKey" json:"-"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	Email       string    `gorm:"uniqueIndex" json:"email"`
	ExtraScore  int       `json:"extra_score"`
	SubmittedAt time.Time `json:"submitted_at"`
}
