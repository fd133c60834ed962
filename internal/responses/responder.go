// Package responses is the local fallback reply generator, used when
// the remote chat collaborator is unavailable. Replies come from a
// fixed table keyed by companion archetype and detected mood.
package responses

import (
	"fmt"
	"math/rand"
	"sync"

	"pixelpaw/backend/internal/models"
	"pixelpaw/backend/internal/mood"
)

// Responder selects canned replies. Randomness is injected so tests can
// seed it; the zero source falls back to a time-seeded generator.
type Responder struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewResponder creates a Responder using the given random source. A nil
// rng gets a default source.
func NewResponder(rng *rand.Rand) *Responder {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &Responder{rng: rng}
}

// Respond picks a reply for the archetype conditioned on the mood
// detected in userText. Unknown archetypes or empty buckets yield a
// generic line rather than an error.
func (r *Responder) Respond(archetype models.Archetype, userText, petName string) string {
	m := mood.Classify(userText)

	buckets, ok := replyTable[archetype]
	if !ok {
		return genericReply(petName)
	}
	candidates := buckets[m]
	if len(candidates) == 0 {
		return genericReply(petName)
	}

	r.mu.Lock()
	idx := r.rng.Intn(len(candidates))
	r.mu.Unlock()
	return candidates[idx]
}

func genericReply(petName string) string {
	return fmt.Sprintf("*%s looks at you warmly* I'm here with you!", petName)
}
