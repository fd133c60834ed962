package mood

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pixelpaw/backend/internal/models"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		text string
		want models.Mood
	}{
		{"excited keyword", "wow that is incredible", models.MoodExcited},
		{"happy keyword", "I feel so happy today", models.MoodHappy},
		{"sad keyword", "I'm lonely and upset", models.MoodSad},
		{"no keyword", "the weather is grey", models.MoodNeutral},
		{"empty input", "", models.MoodNeutral},
		{"case insensitive", "FANTASTIC news!", models.MoodExcited},
		{"substring match", "unhappy", models.MoodHappy}, // contains "happy"
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.text))
		})
	}
}

func TestClassifyPriorityOrder(t *testing.T) {
	// "awesome" is an excited keyword and is checked before the sad set,
	// so a mixed sentence resolves to excited.
	assert.Equal(t, models.MoodExcited, Classify("this is awesome and sad"))

	// happy beats sad when both sets match.
	assert.Equal(t, models.MoodHappy, Classify("good but terrible"))
}

func TestClassifyDeterministic(t *testing.T) {
	inputs := []string{"hello", "yay!", "so sad", "great and awful", ""}
	for _, in := range inputs {
		first := Classify(in)
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, Classify(in), "input %q", in)
		}
	}
}
