package models

import (
	"time"
)

// Roles for chat messages.
const (
	RoleUser      = "user"
	RoleCompanion = "companion"
)

// Message is one entry of the session transcript. Append-only within a
// session; the gateway truncates old history on save, the Postgres
// archive keeps everything.
type Message struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	Mood      Mood      `json:"mood,omitempty"`
}

// MessageRecord is the archived form of a Message, one row per turn
// entry, keyed by the pet it belongs to.
type MessageRecord struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	ExternalID string    `json:"external_id" gorm:"index"`
	PetName    string    `json:"pet_name" gorm:"index"`
	Role       string    `json:"role"`
	Content    string    `json:"content"`
	Mood       string    `json:"mood"`
	Timestamp  time.Time `json:"timestamp"`
	CreatedAt  time.Time `json:"created_at"`
}
