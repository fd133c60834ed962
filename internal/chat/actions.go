package chat

import (
	"fmt"
	"regexp"
	"strings"

	"pixelpaw/backend/internal/models"
)

// Companion replies mark physical actions in *asterisks*, e.g.
// "*wags tail* hello!". The UI animates these separately.
var actionPattern = regexp.MustCompile(`\*([^*]+)\*`)

// ExtractActions pulls the marked actions out of a reply, in order.
func ExtractActions(reply string) []string {
	matches := actionPattern.FindAllStringSubmatch(reply, -1)
	if len(matches) == 0 {
		return nil
	}
	actions := make([]string, 0, len(matches))
	for _, m := range matches {
		if a := strings.TrimSpace(m[1]); a != "" {
			actions = append(actions, a)
		}
	}
	return actions
}

// actionLines maps the leading verb of an extracted action to a canned
// narration per archetype.
var actionLines = map[models.Archetype]map[string]string{
	models.ArchetypeDog: {
		"wag":  "%s wags tail happily",
		"bark": "%s barks excitedly",
		"jump": "%s jumps up and down",
		"spin": "%s spins in circles",
		"pant": "%s pants with joy",
		"tilt": "%s tilts head curiously",
	},
	models.ArchetypeCat: {
		"purr":    "%s purrs contentedly",
		"stretch": "%s stretches gracefully",
		"rub":     "%s rubs against you",
		"flick":   "%s flicks tail",
		"yawn":    "%s yawns elegantly",
	},
	models.ArchetypeRabbit: {
		"hop":    "%s hops excitedly",
		"twitch": "%s twitches nose",
		"bounce": "%s bounces around",
		"nibble": "%s nibbles thoughtfully",
	},
	models.ArchetypePanda: {
		"roll":  "%s rolls playfully",
		"munch": "%s munches bamboo",
		"hug":   "%s gives a gentle hug",
		"sit":   "%s sits peacefully",
	},
}

// ActionResponse narrates the first recognized action for the
// archetype, falling back to echoing the raw action.
func ActionResponse(petName string, archetype models.Archetype, actions []string) string {
	if len(actions) == 0 {
		return ""
	}

	lines, ok := actionLines[archetype]
	if !ok {
		lines = actionLines[models.ArchetypeDog]
	}
	for _, action := range actions {
		verb := strings.ToLower(strings.Fields(action)[0])
		if tmpl, ok := lines[verb]; ok {
			return "*" + fmt.Sprintf(tmpl, petName) + "*"
		}
	}
	return fmt.Sprintf("*%s %s*", petName, actions[0])
}
