package chat

import (
	"strings"

	"pixelpaw/backend/internal/models"
	"pixelpaw/backend/internal/progression"
)

// Keyword triggers for content-based stat adjustments.
var (
	angerTriggers     = []string{"angry", "mad", "furious", "hate", "stupid", "bad"}
	sadnessTriggers   = []string{"sad", "cry", "depressed", "lonely", "hurt"}
	positiveTriggers  = []string{"love", "good", "great", "awesome", "wonderful"}
	curiosityTriggers = []string{"why", "how", "what", "tell me", "explain"}
	obedienceTriggers = []string{"please", "can you", "would you", "sit", "stay"}
	energyUpTriggers  = []string{"play", "run", "jump", "dance", "excited"}
	energyDownWords   = []string{"tired", "sleep", "rest", "calm"}
)

// StatsFromSentiment derives the authoritative stats snapshot for a
// chat turn from the detected mood and the message content. This is the
// server-computed path the progression engine prefers over its local
// heuristics; every delta goes through ApplyDelta so the result is
// always in range.
func StatsFromSentiment(current progression.Stats, m models.Mood, userText string) progression.Stats {
	s := current
	lower := strings.ToLower(userText)

	switch m {
	case models.MoodHappy, models.MoodExcited:
		s = progression.ApplyDelta(s, progression.FieldHappiness, 3)
		s = progression.ApplyDelta(s, progression.FieldCuriosity, 2)
		s = progression.ApplyDelta(s, progression.FieldEnergy, 2)
		s = progression.ApplyDelta(s, progression.FieldSad, -2)
		s = progression.ApplyDelta(s, progression.FieldAngry, -1)
	case models.MoodSad:
		s = progression.ApplyDelta(s, progression.FieldHappiness, -2)
		s = progression.ApplyDelta(s, progression.FieldEnergy, -1)
		s = progression.ApplyDelta(s, progression.FieldSad, 3)
	}

	if matchesAny(lower, angerTriggers) {
		s = progression.ApplyDelta(s, progression.FieldAngry, 4)
		s = progression.ApplyDelta(s, progression.FieldHappiness, -3)
	}
	if matchesAny(lower, sadnessTriggers) {
		s = progression.ApplyDelta(s, progression.FieldSad, 3)
		s = progression.ApplyDelta(s, progression.FieldHappiness, -2)
	}
	if matchesAny(lower, positiveTriggers) {
		s = progression.ApplyDelta(s, progression.FieldAngry, -2)
		s = progression.ApplyDelta(s, progression.FieldSad, -2)
	}
	if matchesAny(lower, curiosityTriggers) {
		s = progression.ApplyDelta(s, progression.FieldCuriosity, 3)
	}
	if matchesAny(lower, obedienceTriggers) {
		s = progression.ApplyDelta(s, progression.FieldObedience, 2)
	}
	if matchesAny(lower, energyUpTriggers) {
		s = progression.ApplyDelta(s, progression.FieldEnergy, 4)
	} else if matchesAny(lower, energyDownWords) {
		s = progression.ApplyDelta(s, progression.FieldEnergy, -3)
	}

	return s
}

func matchesAny(text string, triggers []string) bool {
	for _, t := range triggers {
		if strings.Contains(text, t) {
			return true
		}
	}
	return false
}
