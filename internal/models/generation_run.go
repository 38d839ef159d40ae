package models

import (
	"time"

	"github.com/google/uuid"
)

type RunStatus string

const (
	RunCompleted RunStatus = "completed"
	RunFailed    RunStatus = "failed"
)

// GenerationRun is the persisted record of one pipeline invocation. The
// pipeline itself is storage-agnostic; runs are recorded off the request path
// by the background persister.
type GenerationRun struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	JobTitle     string    `gorm:"type:text" json:"job_title"`
	Company      string    `gorm:"type:text" json:"company"`
	JDLength     int       `json:"jd_length"`
	ResumeLength int       `json:"resume_length"`
	Status       RunStatus `gorm:"not null" json:"status"`
	Response     string    `gorm:"type:jsonb" json:"-"`
	ErrorMessage *string   `gorm:"type:text" json:"error_message,omitempty"`
	DurationMS   int64     `json:"duration_ms"`
	CreatedAt    time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt    time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (GenerationRun) TableName() string {
	return "generation_runs"
}
