package models

import (
	"time"
)

// MeditationSession records one completed guided session. The count
// feeds the Meditation Master reward.
type MeditationSession struct {
	ID          uint          `json:"id" gorm:"primaryKey"`
	Duration    time.Duration `json:"duration"`
	CompletedAt time.Time     `json:"completedAt"`
	CreatedAt   time.Time     `json:"created_at"`
}
