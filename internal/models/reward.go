package models

import (
	"time"
)

// Reward categories.
const (
	RewardBadge     = "badge"
	RewardTreat     = "treat"
	RewardAccessory = "accessory"
)

// Reward is an unlockable achievement. Once Earned flips true it never
// reverts, and EarnedAt is written exactly once at that transition.
type Reward struct {
	ID          string     `json:"id"`
	Type        string     `json:"type"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Icon        string     `json:"icon"`
	Earned      bool       `json:"earned"`
	EarnedAt    *time.Time `json:"earnedAt,omitempty"`
}
