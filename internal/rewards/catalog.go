// Package rewards evaluates unlockable achievements against the user's
// accumulated history. Evaluation is a deterministic re-scan: running
// it twice over the same history yields the same earned set.
package rewards

import (
	"pixelpaw/backend/internal/models"
)

// History holds the cumulative counters the unlock predicates read. The
// caller supplies it; the engine never fetches anything itself.
type History struct {
	HasChatted      bool
	JournalEntries  int
	MeditationCount int
	Level           int
}

// definition pairs a reward with its unlock predicate.
type definition struct {
	reward models.Reward
	unlock func(History) bool
}

// catalog is the fixed reward set, checked in order on every
// evaluation. IDs are stable and persisted.
var catalog = []definition{
	{
		reward: models.Reward{ID: "1", Type: models.RewardBadge, Name: "First Chat",
			Description: "Had your first conversation", Icon: "💬"},
		unlock: func(h History) bool { return h.HasChatted },
	},
	{
		reward: models.Reward{ID: "2", Type: models.RewardBadge, Name: "Journal Keeper",
			Description: "Write 5 journal entries", Icon: "📔"},
		unlock: func(h History) bool { return h.JournalEntries >= 5 },
	},
	{
		reward: models.Reward{ID: "3", Type: models.RewardTreat, Name: "Golden Treat",
			Description: "Reach level 5", Icon: "🍪"},
		unlock: func(h History) bool { return h.Level >= 5 },
	},
	{
		reward: models.Reward{ID: "4", Type: models.RewardBadge, Name: "Meditation Master",
			Description: "Complete 10 meditation sessions", Icon: "🧘"},
		unlock: func(h History) bool { return h.MeditationCount >= 10 },
	},
	{
		reward: models.Reward{ID: "5", Type: models.RewardAccessory, Name: "Crown",
			Description: "Reach level 10", Icon: "👑"},
		unlock: func(h History) bool { return h.Level >= 10 },
	},
}

// Catalog returns a fresh, unearned copy of every reward definition.
// Used to seed a new profile.
func Catalog() []models.Reward {
	out := make([]models.Reward, 0, len(catalog))
	for _, def := range catalog {
		out = append(out, def.reward)
	}
	return out
}
