package models

import (
	"time"

	"gorm.io/gorm"
)

// JournalEntry is a dated reflection written by the user. Entries
// accumulate indefinitely and are listed newest-first.
type JournalEntry struct {
	gorm.Model `json:"-"`
	ID         uint      `json:"-" gorm:"primarykey"`
	ExternalID string    `json:"id" gorm:"index"`
	Date       time.Time `json:"date"`
	Content    string    `json:"content" gorm:"not null"`
	Mood       string    `json:"mood"`
	Tags       string    `json:"-"`
}

// CreateJournalRequest is the POST /journal payload.
type CreateJournalRequest struct {
	Content string   `json:"content" binding:"required"`
	Mood    string   `json:"mood"`
	Tags    []string `json:"tags"`
}
