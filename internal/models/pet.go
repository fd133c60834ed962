package models

import (
	"time"
)

// Archetype is the companion's species category. It selects which
// response table and imagery apply.
type Archetype string

const (
	ArchetypeDog    Archetype = "dog"
	ArchetypeCat    Archetype = "cat"
	ArchetypeRabbit Archetype = "rabbit"
	ArchetypePanda  Archetype = "panda"
)

// ValidArchetype reports whether a is one of the known companion types.
func ValidArchetype(a Archetype) bool {
	switch a {
	case ArchetypeDog, ArchetypeCat, ArchetypeRabbit, ArchetypePanda:
		return true
	}
	return false
}

// Mood is a discrete emotional label attached to messages and journal
// entries. Input classification uses the reduced subset happy/sad/
// neutral/excited; calm and anxious only appear on companion-expressed
// moods.
type Mood string

const (
	MoodHappy   Mood = "happy"
	MoodSad     Mood = "sad"
	MoodNeutral Mood = "neutral"
	MoodExcited Mood = "excited"
	MoodCalm    Mood = "calm"
	MoodAnxious Mood = "anxious"
)

// Pet is the persisted companion profile. Stats live in their own
// record (see PetRecord in the stats store); the profile carries
// identity and customization.
type Pet struct {
	Type            Archetype `json:"type"`
	Name            string    `json:"name"`
	Happiness       int       `json:"happiness"`
	LastInteraction time.Time `json:"lastInteraction"`
	Level           int       `json:"level"`
	XP              int       `json:"xp"`
	Curiosity       int       `json:"curiosity"`
	Obedience       int       `json:"obedience"`
	Energy          int       `json:"energy"`
	Accessories     []string  `json:"accessories"`
	BackgroundColor string    `json:"backgroundColor"`
}

// PetRecord is the stats row persisted per pet name. Stats are stored
// as a JSON column so the schema survives stat-set changes without a
// migration, matching the upstream document store.
type PetRecord struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"uniqueIndex;not null"`
	Type        string    `json:"type"`
	Stats       string    `json:"-" gorm:"type:jsonb"`
	LastUpdated time.Time `json:"last_updated"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
