package progression

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pixelpaw/backend/internal/models"
)

func TestApplyCareActionsThenChat(t *testing.T) {
	// §scenario: 70 happiness, three feeds, then one happy chat turn.
	s := DefaultStats()
	s.Happiness = 70

	for i := 0; i < 3; i++ {
		var out Outcome
		s, out = Apply(s, InteractionFeed, models.MoodNeutral, nil)
		assert.False(t, out.LeveledUp)
		assert.Equal(t, 0, out.XPGained)
	}
	assert.Equal(t, 100, s.Happiness)
	assert.Equal(t, 0, s.XP)

	s, out := Apply(s, InteractionChat, models.MoodHappy, nil)
	assert.Equal(t, 100, s.Happiness) // clamped from 105
	assert.Equal(t, 5, s.XP)
	assert.Equal(t, 1, s.Level)
	assert.Equal(t, 5, out.XPGained)
	assert.False(t, out.LeveledUp)
}

func TestApplyChatLevelUpSurfacedOnce(t *testing.T) {
	s := DefaultStats()
	s.Level = 3
	s.XP = 97

	s, out := Apply(s, InteractionChat, models.MoodNeutral, nil)
	assert.Equal(t, 2, s.XP)
	assert.Equal(t, 4, s.Level)
	assert.True(t, out.LeveledUp)
	assert.Equal(t, 1, out.LevelsGained)
	assert.Equal(t, 4, out.Level)

	// The next turn must not re-report the crossing.
	_, out = Apply(s, InteractionChat, models.MoodNeutral, nil)
	assert.False(t, out.LeveledUp)
}

func TestApplyChatMoodDependentHappiness(t *testing.T) {
	for _, tc := range []struct {
		mood models.Mood
		want int
	}{
		{models.MoodHappy, 75},
		{models.MoodExcited, 75},
		{models.MoodNeutral, 72},
		{models.MoodSad, 72},
	} {
		s := DefaultStats()
		s, _ = Apply(s, InteractionChat, tc.mood, nil)
		assert.Equal(t, tc.want, s.Happiness, "mood %s", tc.mood)
	}
}

func TestApplyJournalAndMeditateGrantXPOnly(t *testing.T) {
	s := DefaultStats()

	s, out := Apply(s, InteractionJournal, models.MoodNeutral, nil)
	assert.Equal(t, 70, s.Happiness)
	assert.Equal(t, 3, s.XP)
	assert.Equal(t, 3, out.XPGained)

	s, out = Apply(s, InteractionMeditate, models.MoodCalm, nil)
	assert.Equal(t, 70, s.Happiness)
	assert.Equal(t, 13, s.XP)
	assert.Equal(t, 10, out.XPGained)
}

func TestApplyRemoteSnapshotWins(t *testing.T) {
	s := DefaultStats()
	s.Happiness = 40
	s.Level = 2
	s.XP = 90

	remote := Stats{
		Happiness: 88, Curiosity: 70, Obedience: 60, Energy: 85,
		Angry: 5, Sad: 2, Level: 1, XP: 0, XPToNextLevel: 100,
	}

	out, outcome := Apply(s, InteractionChat, models.MoodSad, &remote)
	// Attribute fields replaced outright, no merge with the local 40.
	assert.Equal(t, 88, out.Happiness)
	assert.Equal(t, 70, out.Curiosity)
	// Progression counters advance locally: level 2 kept, 90+5 chat XP.
	assert.Equal(t, 2, out.Level)
	assert.Equal(t, 95, out.XP)
	assert.False(t, outcome.LeveledUp)
}

func TestApplyRemoteSnapshotReclampedDefensively(t *testing.T) {
	s := DefaultStats()
	remote := Stats{Happiness: 400, Curiosity: -3, Level: 1, XPToNextLevel: 100}

	out, _ := Apply(s, InteractionChat, models.MoodNeutral, &remote)
	assert.Equal(t, 100, out.Happiness)
	assert.Equal(t, 0, out.Curiosity)
	assert.LessOrEqual(t, out.XP, out.XPToNextLevel-1)
}
