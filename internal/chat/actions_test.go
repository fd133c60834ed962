package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pixelpaw/backend/internal/models"
)

func TestExtractActions(t *testing.T) {
	cases := []struct {
		reply string
		want  []string
	}{
		{"*wags tail* hello there!", []string{"wags tail"}},
		{"*purrs* I like that. *stretches gracefully*", []string{"purrs", "stretches gracefully"}},
		{"no actions here", nil},
		{"unbalanced *asterisk", nil},
		{"* spaced action *", []string{"spaced action"}},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, ExtractActions(tc.reply), "reply %q", tc.reply)
	}
}

func TestActionResponse(t *testing.T) {
	assert.Equal(t, "*Pixel wags tail happily*",
		ActionResponse("Pixel", models.ArchetypeDog, []string{"wag tail"}))

	assert.Equal(t, "*Mochi purrs contentedly*",
		ActionResponse("Mochi", models.ArchetypeCat, []string{"purr softly"}))

	// Unrecognized verbs echo the raw action.
	assert.Equal(t, "*Bao moonwalks*",
		ActionResponse("Bao", models.ArchetypePanda, []string{"moonwalks"}))

	assert.Equal(t, "", ActionResponse("Pixel", models.ArchetypeDog, nil))
}
