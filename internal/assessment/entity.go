package assessment

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type AssessmentResult struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	AttemptID uuid.UUID      `gorm:"type:uuid;not null;index" json:"attempt_id"`
	Languages datatypes.JSON `gorm:"type:jsonb;not null" json:"languages"`
	Score     float64        `gorm:"not null" json:"score"`
	Total     int            `gorm:"not null" json:"total"`
	Passed    bool           `gorm:"not null;default:false" json:"passed"`
	Skipped   datatypes.JSON `gorm:"type:jsonb" json:"skipped"`
	Feedback  datatypes.JSON `gorm:"type:jsonb" json:"feedback"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
}
