package rewards

import (
	"time"

	"pixelpaw/backend/internal/models"
)

// Evaluate re-scans the catalog against history and returns the updated
// reward set plus the rewards newly earned by this evaluation.
//
// Already-earned rewards are never re-evaluated or un-set; EarnedAt is
// stamped with now exactly once, at the first true transition. Rewards
// missing from current (an old persisted set) are backfilled from the
// catalog, so the output always carries the full set.
func Evaluate(history History, current []models.Reward, now time.Time) ([]models.Reward, []models.Reward) {
	byID := make(map[string]models.Reward, len(current))
	for _, r := range current {
		byID[r.ID] = r
	}

	updated := make([]models.Reward, 0, len(catalog))
	var newlyEarned []models.Reward

	for _, def := range catalog {
		r, ok := byID[def.reward.ID]
		if !ok {
			r = def.reward
		}
		if !r.Earned && def.unlock(history) {
			r.Earned = true
			stamp := now
			r.EarnedAt = &stamp
			newlyEarned = append(newlyEarned, r)
		}
		updated = append(updated, r)
	}

	return updated, newlyEarned
}
