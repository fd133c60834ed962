package responses

import (
	"math/rand"
)

var motivationalQuotes = []string{
	"You are stronger than you think 💪",
	"Every day is a fresh start 🌅",
	"Your feelings are valid and important 💙",
	"Small steps lead to big changes 🐾",
	"You deserve kindness - especially from yourself 🌸",
	"It's okay to take things one moment at a time 🕊️",
	"You are worthy of love and happiness 💖",
	"Progress, not perfection 🌟",
	"Your presence makes a difference 🌈",
	"Breathe. You've got this 🌬️",
	"Be gentle with yourself today 🦋",
	"You are enough, just as you are ✨",
}

// MotivationalQuote returns one of the daily quotes. The gateway keys
// the stored quote by calendar day, so one pick lasts until midnight.
func MotivationalQuote(rng *rand.Rand) string {
	if rng == nil {
		return motivationalQuotes[rand.Intn(len(motivationalQuotes))]
	}
	return motivationalQuotes[rng.Intn(len(motivationalQuotes))]
}
