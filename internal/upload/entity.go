package upload

import (
	"time"

	"github.com/google/uuid"
)

type Upload struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	StoredName   string     `gorm:"not null;uniqueIndex" json:"file"`
	OriginalName string     `gorm:"not null" json:"original_name"`
	ContentType  string     `json:"content_type"`
	Size         int64      `gorm:"not null" json:"size"`
	AttemptID    *uuid.UUID `gorm:"type:uuid;index" json:"attempt_id,omitempty"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
}
