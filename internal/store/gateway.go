package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"pixelpaw/backend/internal/models"
	"pixelpaw/backend/internal/rewards"
	"pixelpaw/backend/pkg/logger"
)

// Persisted record keys, kept compatible with the original client
// storage layout.
const (
	KeyPet      = "pixelpaw_pet"
	KeyMessages = "pixelpaw_messages"
	KeyQuote    = "pixelpaw_quote"
	KeyRewards  = "pixelpaw_rewards"
)

// maxTranscript caps the message log kept in the KV record. The
// Postgres archive keeps full history.
const maxTranscript = 200

// Backfill defaults for pet records written by older schema versions.
const (
	defaultCuriosity  = 65
	defaultObedience  = 55
	defaultEnergy     = 80
	defaultBackground = "#F6F5F3"
)

// Gateway reads and writes the app's durable local records. Loads never
// fail on absent or old-schema payloads: absent keys yield defaults and
// missing fields are backfilled. Saves overwrite whole records.
type Gateway struct {
	kv  KV
	log *logger.Logger
	now func() time.Time
}

// NewGateway creates a gateway over kv.
func NewGateway(kv KV, log *logger.Logger) *Gateway {
	return &Gateway{kv: kv, log: log, now: time.Now}
}

// WithClock overrides the gateway's clock. Tests use it to cross the
// daily-quote day boundary.
func (g *Gateway) WithClock(now func() time.Time) *Gateway {
	g.now = now
	return g
}

// SavePet overwrites the pet profile record.
func (g *Gateway) SavePet(ctx context.Context, pet models.Pet) error {
	return g.save(ctx, KeyPet, pet)
}

// LoadPet returns the stored pet profile, backfilling fields that
// predate the current schema. ok is false when no pet was ever saved.
func (g *Gateway) LoadPet(ctx context.Context) (models.Pet, bool, error) {
	var pet models.Pet
	found, err := g.load(ctx, KeyPet, &pet)
	if err != nil || !found {
		return models.Pet{}, false, err
	}

	if pet.Level == 0 {
		pet.Level = 1
	}
	if pet.Curiosity == 0 {
		pet.Curiosity = defaultCuriosity
	}
	if pet.Obedience == 0 {
		pet.Obedience = defaultObedience
	}
	if pet.Energy == 0 {
		pet.Energy = defaultEnergy
	}
	if pet.Accessories == nil {
		pet.Accessories = []string{}
	}
	if pet.BackgroundColor == "" {
		pet.BackgroundColor = defaultBackground
	}
	return pet, true, nil
}

// SaveMessages overwrites the transcript record, keeping only the
// newest maxTranscript entries.
func (g *Gateway) SaveMessages(ctx context.Context, msgs []models.Message) error {
	if len(msgs) > maxTranscript {
		msgs = msgs[len(msgs)-maxTranscript:]
	}
	return g.save(ctx, KeyMessages, msgs)
}

// LoadMessages returns the stored transcript, empty on first run.
func (g *Gateway) LoadMessages(ctx context.Context) ([]models.Message, error) {
	var msgs []models.Message
	found, err := g.load(ctx, KeyMessages, &msgs)
	if err != nil || !found {
		return []models.Message{}, err
	}
	return msgs, nil
}

// quoteRecord stores a daily quote with the calendar day it was
// generated on.
type quoteRecord struct {
	Quote string `json:"quote"`
	Date  string `json:"date"`
}

// SaveDailyQuote stores quote keyed by today's calendar date.
func (g *Gateway) SaveDailyQuote(ctx context.Context, quote string) error {
	rec := quoteRecord{Quote: quote, Date: g.dayKey()}
	return g.save(ctx, KeyQuote, rec)
}

// LoadDailyQuote returns the stored quote if it was saved today. A
// quote from a previous day is treated as absent so the caller
// regenerates it.
func (g *Gateway) LoadDailyQuote(ctx context.Context) (string, bool, error) {
	var rec quoteRecord
	found, err := g.load(ctx, KeyQuote, &rec)
	if err != nil || !found {
		return "", false, err
	}
	if rec.Date != g.dayKey() {
		return "", false, nil
	}
	return rec.Quote, true, nil
}

// SaveRewards overwrites the reward set.
func (g *Gateway) SaveRewards(ctx context.Context, set []models.Reward) error {
	return g.save(ctx, KeyRewards, set)
}

// LoadRewards returns the stored reward set, or the unearned catalog on
// first run.
func (g *Gateway) LoadRewards(ctx context.Context) ([]models.Reward, error) {
	var set []models.Reward
	found, err := g.load(ctx, KeyRewards, &set)
	if err != nil {
		return nil, err
	}
	if !found || len(set) == 0 {
		return rewards.Catalog(), nil
	}
	return set, nil
}

func (g *Gateway) dayKey() string {
	return g.now().Format("2006-01-02")
}

func (g *Gateway) save(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshaling record %s: %w", key, err)
	}
	if err := g.kv.Set(ctx, key, data); err != nil {
		return fmt.Errorf("saving record %s: %w", key, err)
	}
	return nil
}

// load fills v from the stored record. Returns found=false for absent
// keys. A corrupt payload is logged and treated as absent, so a bad
// record never wedges startup.
func (g *Gateway) load(ctx context.Context, key string, v any) (bool, error) {
	data, err := g.kv.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("loading record %s: %w", key, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		g.log.Warn("discarding malformed persisted record", "key", key, "error", err.Error())
		return false, nil
	}
	return true, nil
}
