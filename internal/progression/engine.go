package progression

import (
	"pixelpaw/backend/internal/models"
)

// Interaction classifies one user-driven turn.
type Interaction string

const (
	InteractionChat     Interaction = "chat"
	InteractionFeed     Interaction = "feed"
	InteractionPlay     Interaction = "play"
	InteractionSleep    Interaction = "sleep"
	InteractionJournal  Interaction = "journal"
	InteractionMeditate Interaction = "meditate"
)

// ValidCareAction reports whether i is one of the direct care buttons.
func ValidCareAction(i Interaction) bool {
	return i == InteractionFeed || i == InteractionPlay || i == InteractionSleep
}

// XP grants per interaction type.
const (
	xpPerChat     = 5
	xpPerJournal  = 3
	xpPerMeditate = 10
)

// Happiness heuristics when no authoritative snapshot is available.
const (
	careHappiness        = 10
	chatHappinessHigh    = 5
	chatHappinessDefault = 2
)

// Outcome reports what a single Apply did, so the caller can surface a
// level-up exactly once per crossing.
type Outcome struct {
	LeveledUp    bool `json:"leveledUp"`
	Level        int  `json:"level"`
	LevelsGained int  `json:"levelsGained"`
	XPGained     int  `json:"xpGained"`
}

// Apply is the state-transition function for one interaction turn.
//
// When remote is non-nil it is an authoritative snapshot from the
// server-side stats source: it replaces the current stats outright
// (last-write-wins, no merge) and is only re-clamped defensively.
// Otherwise a fixed local heuristic applies per interaction type. XP is
// granted on top of either branch and rolls over through AddXP.
func Apply(current Stats, interaction Interaction, m models.Mood, remote *Stats) (Stats, Outcome) {
	next := current
	if remote != nil {
		next = Normalize(*remote)
		// Progression counters still advance locally even when the
		// attribute snapshot is authoritative.
		next.Level = current.Level
		next.XP = current.XP
		next.XPToNextLevel = current.XPToNextLevel
	} else {
		switch interaction {
		case InteractionFeed, InteractionPlay, InteractionSleep:
			next = ApplyDelta(next, FieldHappiness, careHappiness)
		case InteractionChat:
			next = ApplyDelta(next, FieldHappiness, chatHappinessFor(m))
		}
	}

	xp := xpGrant(interaction)
	next, gained := AddXP(next, xp)

	return next, Outcome{
		LeveledUp:    gained > 0,
		Level:        next.Level,
		LevelsGained: gained,
		XPGained:     xp,
	}
}

func xpGrant(interaction Interaction) int {
	switch interaction {
	case InteractionChat:
		return xpPerChat
	case InteractionJournal:
		return xpPerJournal
	case InteractionMeditate:
		return xpPerMeditate
	default:
		return 0
	}
}

func chatHappinessFor(m models.Mood) int {
	if m == models.MoodHappy || m == models.MoodExcited {
		return chatHappinessHigh
	}
	return chatHappinessDefault
}
