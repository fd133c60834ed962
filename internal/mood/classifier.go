// Package mood maps free-text user input to a discrete mood label by
// keyword matching. Classification is deterministic: the same input
// always yields the same mood.
package mood

import (
	"strings"

	"pixelpaw/backend/internal/models"
)

// Keyword sets checked in priority order. Excited wins over happy,
// happy over sad; anything else is neutral.
var (
	excitedKeywords = []string{"yay", "awesome", "incredible", "fantastic", "best", "wow"}
	happyKeywords   = []string{"happy", "great", "amazing", "wonderful", "love", "excited", "joy", "good", "better", "awesome"}
	sadKeywords     = []string{"sad", "lonely", "depressed", "anxious", "worried", "scared", "upset", "bad", "terrible", "awful"}
)

// Classify returns the mood detected in text. Matching is
// case-insensitive substring containment; the first matching category
// in priority order wins, with no scoring or weights.
func Classify(text string) models.Mood {
	lower := strings.ToLower(text)

	if containsAny(lower, excitedKeywords) {
		return models.MoodExcited
	}
	if containsAny(lower, happyKeywords) {
		return models.MoodHappy
	}
	if containsAny(lower, sadKeywords) {
		return models.MoodSad
	}
	return models.MoodNeutral
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
