package rewards

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pixelpaw/backend/internal/models"
)

func TestEvaluateIdempotent(t *testing.T) {
	h := History{HasChatted: true, JournalEntries: 6, MeditationCount: 2, Level: 5}
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	first, newly := Evaluate(h, Catalog(), now)
	assert.Len(t, newly, 3) // First Chat, Journal Keeper, Golden Treat

	// A later re-evaluation of the same history changes nothing, even
	// with a different clock: EarnedAt keeps the first stamp.
	second, newly2 := Evaluate(h, first, now.Add(48*time.Hour))
	assert.Empty(t, newly2)
	assert.Equal(t, first, second)
}

func TestEvaluateNeverReverts(t *testing.T) {
	now := time.Now()
	earned, _ := Evaluate(History{HasChatted: true}, Catalog(), now)

	// History regressing (e.g. a defaulted counter) must not un-earn.
	later, newly := Evaluate(History{HasChatted: false}, earned, now.Add(time.Hour))
	assert.Empty(t, newly)

	var firstChat models.Reward
	for _, r := range later {
		if r.Name == "First Chat" {
			firstChat = r
		}
	}
	assert.True(t, firstChat.Earned)
	require.NotNil(t, firstChat.EarnedAt)
	assert.Equal(t, now.UTC(), firstChat.EarnedAt.UTC())
}

func TestJournalKeeperThreshold(t *testing.T) {
	now := time.Now()

	rewardByName := func(set []models.Reward, name string) models.Reward {
		for _, r := range set {
			if r.Name == name {
				return r
			}
		}
		t.Fatalf("reward %q not in set", name)
		return models.Reward{}
	}

	set, newly := Evaluate(History{JournalEntries: 4}, Catalog(), now)
	assert.Empty(t, newly)
	assert.False(t, rewardByName(set, "Journal Keeper").Earned)

	set, newly = Evaluate(History{JournalEntries: 5}, set, now)
	require.Len(t, newly, 1)
	assert.Equal(t, "Journal Keeper", newly[0].Name)

	keeper := rewardByName(set, "Journal Keeper")
	assert.True(t, keeper.Earned)
	assert.NotNil(t, keeper.EarnedAt)
}

func TestEvaluateBackfillsMissingDefinitions(t *testing.T) {
	// An old persisted set that predates the Crown reward still comes
	// back complete.
	partial := Catalog()[:3]
	set, _ := Evaluate(History{}, partial, time.Now())
	assert.Len(t, set, len(Catalog()))
}

func TestLevelRewards(t *testing.T) {
	set, newly := Evaluate(History{Level: 10}, Catalog(), time.Now())
	names := make([]string, 0, len(newly))
	for _, r := range newly {
		names = append(names, r.Name)
	}
	assert.Contains(t, names, "Golden Treat")
	assert.Contains(t, names, "Crown")
	assert.Len(t, set, 5)
}
