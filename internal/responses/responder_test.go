package responses

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"pixelpaw/backend/internal/models"
)

func TestRespondSeededIsReproducible(t *testing.T) {
	a := NewResponder(rand.New(rand.NewSource(42)))
	b := NewResponder(rand.New(rand.NewSource(42)))

	for i := 0; i < 20; i++ {
		assert.Equal(t,
			a.Respond(models.ArchetypeDog, "I feel happy", "Pixel"),
			b.Respond(models.ArchetypeDog, "I feel happy", "Pixel"),
		)
	}
}

func TestRespondPicksFromMoodBucket(t *testing.T) {
	r := NewResponder(rand.New(rand.NewSource(1)))

	reply := r.Respond(models.ArchetypeCat, "wow this is fantastic", "Mochi")
	assert.Contains(t, replyTable[models.ArchetypeCat][models.MoodExcited], reply)

	reply = r.Respond(models.ArchetypePanda, "I'm so lonely", "Bao")
	assert.Contains(t, replyTable[models.ArchetypePanda][models.MoodSad], reply)
}

func TestRespondUnknownArchetypeFallsBack(t *testing.T) {
	r := NewResponder(rand.New(rand.NewSource(7)))
	reply := r.Respond(models.Archetype("dragon"), "hello", "Smaug")
	assert.True(t, strings.Contains(reply, "Smaug"), "generic reply should mention the pet name: %q", reply)
}

func TestReplyTableCoversAllBuckets(t *testing.T) {
	archetypes := []models.Archetype{
		models.ArchetypeDog, models.ArchetypeCat, models.ArchetypeRabbit, models.ArchetypePanda,
	}
	moods := []models.Mood{models.MoodHappy, models.MoodSad, models.MoodNeutral, models.MoodExcited}

	for _, a := range archetypes {
		for _, m := range moods {
			assert.NotEmpty(t, replyTable[a][m], "archetype %s mood %s", a, m)
		}
	}
}

func TestMotivationalQuoteSeeded(t *testing.T) {
	q1 := MotivationalQuote(rand.New(rand.NewSource(3)))
	q2 := MotivationalQuote(rand.New(rand.NewSource(3)))
	assert.Equal(t, q1, q2)
	assert.Contains(t, motivationalQuotes, q1)
}
