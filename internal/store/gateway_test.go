package store

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pixelpaw/backend/internal/models"
	"pixelpaw/backend/internal/rewards"
	"pixelpaw/backend/pkg/logger"
)

func newTestGateway() *Gateway {
	log := logger.New(logger.Config{Level: "error", JSON: true, Output: io.Discard})
	return NewGateway(NewMemoryKV(), log)
}

func TestLoadPetAbsent(t *testing.T) {
	g := newTestGateway()
	_, ok, err := g.LoadPet(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSaveLoadPetRoundTrip(t *testing.T) {
	g := newTestGateway()
	ctx := context.Background()

	pet := models.Pet{
		Type: models.ArchetypeDog, Name: "Pixel", Happiness: 82,
		LastInteraction: time.Now().UTC(), Level: 3, XP: 40,
		Curiosity: 70, Obedience: 60, Energy: 90,
		Accessories: []string{"hat"}, BackgroundColor: "#FFFFFF",
	}
	require.NoError(t, g.SavePet(ctx, pet))

	got, ok, err := g.LoadPet(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, pet.Name, got.Name)
	assert.Equal(t, pet.Level, got.Level)
	assert.Equal(t, pet.Accessories, got.Accessories)
}

func TestLoadPetBackfillsOldSchema(t *testing.T) {
	g := newTestGateway()
	ctx := context.Background()

	// A record written before leveling and customization existed.
	old := []byte(`{"type":"cat","name":"Mochi","happiness":64,"lastInteraction":"2024-01-02T10:00:00Z"}`)
	require.NoError(t, g.kv.Set(ctx, KeyPet, old))

	pet, ok, err := g.LoadPet(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 64, pet.Happiness)
	assert.Equal(t, 1, pet.Level)
	assert.Equal(t, 65, pet.Curiosity)
	assert.Equal(t, 55, pet.Obedience)
	assert.Equal(t, 80, pet.Energy)
	assert.Equal(t, []string{}, pet.Accessories)
	assert.Equal(t, "#F6F5F3", pet.BackgroundColor)
}

func TestLoadPetMalformedTreatedAsAbsent(t *testing.T) {
	g := newTestGateway()
	ctx := context.Background()
	require.NoError(t, g.kv.Set(ctx, KeyPet, []byte(`{not json`)))

	_, ok, err := g.LoadPet(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSaveMessagesTruncates(t *testing.T) {
	g := newTestGateway()
	ctx := context.Background()

	msgs := make([]models.Message, maxTranscript+50)
	for i := range msgs {
		msgs[i] = models.Message{ID: string(rune('a' + i%26)), Role: models.RoleUser, Content: "m"}
	}
	require.NoError(t, g.SaveMessages(ctx, msgs))

	got, err := g.LoadMessages(ctx)
	require.NoError(t, err)
	assert.Len(t, got, maxTranscript)
}

func TestLoadMessagesEmptyOnFirstRun(t *testing.T) {
	g := newTestGateway()
	got, err := g.LoadMessages(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDailyQuoteSameDay(t *testing.T) {
	g := newTestGateway()
	ctx := context.Background()

	day := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	g.WithClock(func() time.Time { return day })

	require.NoError(t, g.SaveDailyQuote(ctx, "Breathe. You've got this"))

	// Later the same day the quote is still there.
	g.WithClock(func() time.Time { return day.Add(10 * time.Hour) })
	quote, ok, err := g.LoadDailyQuote(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Breathe. You've got this", quote)
}

func TestDailyQuoteExpiresNextDay(t *testing.T) {
	g := newTestGateway()
	ctx := context.Background()

	day := time.Date(2025, 3, 10, 23, 0, 0, 0, time.UTC)
	g.WithClock(func() time.Time { return day })
	require.NoError(t, g.SaveDailyQuote(ctx, "Progress, not perfection"))

	g.WithClock(func() time.Time { return day.Add(2 * time.Hour) }) // past midnight
	_, ok, err := g.LoadDailyQuote(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLoadRewardsDefaultsToCatalog(t *testing.T) {
	g := newTestGateway()
	ctx := context.Background()

	set, err := g.LoadRewards(ctx)
	require.NoError(t, err)
	assert.Equal(t, rewards.Catalog(), set)

	// Persisted earned state survives the round trip.
	set[0].Earned = true
	now := time.Now().UTC().Truncate(time.Second)
	set[0].EarnedAt = &now
	require.NoError(t, g.SaveRewards(ctx, set))

	got, err := g.LoadRewards(ctx)
	require.NoError(t, err)
	assert.True(t, got[0].Earned)
	require.NotNil(t, got[0].EarnedAt)
	assert.True(t, got[0].EarnedAt.Equal(now))
}
