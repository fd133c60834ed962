package service

import (
	"context"
	"errors"
	"io"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pixelpaw/backend/internal/chat"
	"pixelpaw/backend/internal/models"
	"pixelpaw/backend/internal/progression"
	"pixelpaw/backend/internal/responses"
	"pixelpaw/backend/internal/store"
	"pixelpaw/backend/pkg/logger"
)

type memStatsStore struct {
	mu    sync.Mutex
	stats map[string]progression.Stats
	fail  bool
}

func newMemStatsStore() *memStatsStore {
	return &memStatsStore{stats: make(map[string]progression.Stats)}
}

func (m *memStatsStore) GetStats(name string) progression.Stats {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.stats[name]; ok {
		return s
	}
	return progression.DefaultStats()
}

func (m *memStatsStore) PutStats(name string, petType models.Archetype, stats progression.Stats) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return errors.New("store offline")
	}
	m.stats[name] = stats
	return nil
}

type stubChat struct {
	result *chat.TurnResult
	err    error
	calls  int
}

func (s *stubChat) Send(ctx context.Context, userText string, archetype models.Archetype, petName string, current progression.Stats) (*chat.TurnResult, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

type fixedCounter int64

func (c fixedCounter) Count() (int64, error) { return int64(c), nil }

type stubMeditationLog struct {
	sessions int64
}

func (m *stubMeditationLog) Record(d time.Duration, completedAt time.Time) error {
	m.sessions++
	return nil
}

func (m *stubMeditationLog) Count() (int64, error) { return m.sessions, nil }

type recordingArchive struct {
	mu   sync.Mutex
	msgs []models.Message
}

func (a *recordingArchive) Archive(petName string, msg models.Message) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.msgs = append(a.msgs, msg)
	return nil
}

type failingChat struct{}

func (failingChat) Send(ctx context.Context, userText string, archetype models.Archetype, petName string, current progression.Stats) (*chat.TurnResult, error) {
	return nil, errors.New("model offline")
}

func newTestSession(t *testing.T, sender ChatSender, stats *memStatsStore) (*SessionService, *store.Gateway, *recordingArchive) {
	t.Helper()
	log := logger.New(logger.Config{Level: "error", JSON: true, Output: io.Discard})
	gateway := store.NewGateway(store.NewMemoryKV(), log)
	archive := &recordingArchive{}
	svc := NewSessionService(SessionConfig{
		Stats:      stats,
		Gateway:    gateway,
		Chat:       sender,
		Responder:  responses.NewResponder(rand.New(rand.NewSource(7))),
		Journal:    fixedCounter(0),
		Meditation: &stubMeditationLog{},
		Archive:    archive,
		Rand:       rand.New(rand.NewSource(7)),
	}, log)
	return svc, gateway, archive
}

func TestChatAppliesRemoteSnapshotAndXP(t *testing.T) {
	stats := newMemStatsStore()
	remote := progression.Stats{
		Happiness: 90, Curiosity: 80, Obedience: 60, Energy: 70,
		Angry: 0, Sad: 0,
		Level: 1, XP: 0, XPToNextLevel: progression.XPPerLevel,
	}
	sender := &stubChat{result: &chat.TurnResult{
		Reply:   "*wags tail* I missed you!",
		Mood:    models.MoodHappy,
		Actions: []string{"wags tail"},
		Stats:   &remote,
	}}
	svc, _, archive := newTestSession(t, sender, stats)

	resp, err := svc.Chat(context.Background(), "hello there", models.ArchetypeDog, "Biscuit")
	require.NoError(t, err)

	assert.False(t, resp.Degraded)
	assert.Equal(t, "*wags tail* I missed you!", resp.Reply)
	assert.Equal(t, 90, resp.Stats.Happiness)
	assert.Equal(t, 5, resp.Stats.XP)
	assert.Equal(t, 1, resp.Stats.Level)
	assert.Equal(t, resp.Stats, stats.stats["Biscuit"])

	// both sides of the turn are archived
	require.Len(t, archive.msgs, 2)
	assert.Equal(t, models.RoleUser, archive.msgs[0].Role)
	assert.Equal(t, models.RoleCompanion, archive.msgs[1].Role)
}

func TestChatFallsBackWhenRemoteFails(t *testing.T) {
	stats := newMemStatsStore()
	stats.stats["Biscuit"] = progression.Stats{
		Happiness: 50, Curiosity: 65, Obedience: 55, Energy: 80,
		Level: 1, XP: 0, XPToNextLevel: progression.XPPerLevel,
	}
	sender := &stubChat{err: errors.New("connection refused")}
	svc, gateway, _ := newTestSession(t, sender, stats)

	resp, err := svc.Chat(context.Background(), "I am so happy today", models.ArchetypeDog, "Biscuit")
	require.NoError(t, err)

	// turn degraded but still fully applied: heuristic +5 happiness
	// for a happy message plus chat XP
	assert.True(t, resp.Degraded)
	assert.NotEmpty(t, resp.Reply)
	assert.Equal(t, models.MoodHappy, resp.Mood)
	assert.Equal(t, 55, resp.Stats.Happiness)
	assert.Equal(t, 5, resp.Stats.XP)

	msgs, err := gateway.LoadMessages(context.Background())
	require.NoError(t, err)
	assert.Len(t, msgs, 2)
}

func TestChatLevelRollover(t *testing.T) {
	stats := newMemStatsStore()
	stats.stats["Biscuit"] = progression.Stats{
		Happiness: 70, Curiosity: 65, Obedience: 55, Energy: 80,
		Level: 3, XP: 97, XPToNextLevel: progression.XPPerLevel,
	}
	sender := &stubChat{result: &chat.TurnResult{
		Reply: "ok", Mood: models.MoodNeutral,
	}}
	svc, _, _ := newTestSession(t, sender, stats)

	resp, err := svc.Chat(context.Background(), "hmm", models.ArchetypeCat, "Biscuit")
	require.NoError(t, err)

	assert.True(t, resp.Outcome.LeveledUp)
	assert.Equal(t, 1, resp.Outcome.LevelsGained)
	assert.Equal(t, 4, resp.Stats.Level)
	assert.Equal(t, 2, resp.Stats.XP)
}

func TestChatFirstTurnEarnsFirstChatReward(t *testing.T) {
	stats := newMemStatsStore()
	sender := &stubChat{result: &chat.TurnResult{Reply: "hi", Mood: models.MoodHappy}}
	svc, _, _ := newTestSession(t, sender, stats)

	resp, err := svc.Chat(context.Background(), "hello", models.ArchetypePanda, "Kiwi")
	require.NoError(t, err)
	require.Len(t, resp.NewRewards, 1)
	assert.Equal(t, "First Chat", resp.NewRewards[0].Name)
	require.NotNil(t, resp.NewRewards[0].EarnedAt)

	// second turn must not re-grant
	resp2, err := svc.Chat(context.Background(), "hello again", models.ArchetypePanda, "Kiwi")
	require.NoError(t, err)
	assert.Empty(t, resp2.NewRewards)
}

func TestCareFeedBoostsHappinessWithoutXP(t *testing.T) {
	stats := newMemStatsStore()
	svc, gateway, _ := newTestSession(t, &stubChat{}, stats)

	resp, err := svc.Care(context.Background(), progression.InteractionFeed, models.ArchetypeDog, "Biscuit")
	require.NoError(t, err)

	assert.Equal(t, 80, resp.Stats.Happiness)
	assert.Equal(t, 0, resp.Stats.XP)
	assert.Equal(t, 0, resp.Outcome.XPGained)
	assert.Contains(t, resp.Reply, "treat")

	msgs, err := gateway.LoadMessages(context.Background())
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, models.RoleCompanion, msgs[0].Role)
}

func TestCareSaturatesAtCap(t *testing.T) {
	stats := newMemStatsStore()
	svc, _, _ := newTestSession(t, &stubChat{}, stats)

	ctx := context.Background()
	for i := 0; i < 4; i++ {
		_, err := svc.Care(ctx, progression.InteractionFeed, models.ArchetypeDog, "Biscuit")
		require.NoError(t, err)
	}
	assert.Equal(t, 100, stats.stats["Biscuit"].Happiness)
}

func TestCompleteJournalGrantsXP(t *testing.T) {
	stats := newMemStatsStore()
	svc, _, _ := newTestSession(t, &stubChat{}, stats)

	resp, err := svc.CompleteJournal(context.Background(), models.ArchetypeRabbit, "Clover")
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Stats.XP)
	assert.Equal(t, 3, resp.Outcome.XPGained)
}

func TestCompleteMeditationGrantsXP(t *testing.T) {
	stats := newMemStatsStore()
	svc, _, _ := newTestSession(t, &stubChat{}, stats)

	resp, err := svc.CompleteMeditation(context.Background(), models.ArchetypeRabbit, "Clover", 5*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 10, resp.Stats.XP)
}

func TestDailyQuoteStableWithinDay(t *testing.T) {
	stats := newMemStatsStore()
	svc, _, _ := newTestSession(t, &stubChat{}, stats)

	ctx := context.Background()
	first, err := svc.DailyQuote(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, first)

	second, err := svc.DailyQuote(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestChatFailedPersistReturnsError(t *testing.T) {
	stats := newMemStatsStore()
	stats.fail = true
	sender := &stubChat{result: &chat.TurnResult{Reply: "hi", Mood: models.MoodNeutral}}
	svc, _, _ := newTestSession(t, sender, stats)

	_, err := svc.Chat(context.Background(), "hello", models.ArchetypeDog, "Biscuit")
	assert.Error(t, err)
}

func TestRewardsBackfillAndReport(t *testing.T) {
	stats := newMemStatsStore()
	svc, _, _ := newTestSession(t, &stubChat{}, stats)

	set, err := svc.Rewards(context.Background())
	require.NoError(t, err)
	require.Len(t, set, 5)
	for _, r := range set {
		assert.Nil(t, r.EarnedAt, "no activity yet: %s", r.Name)
	}
}

func TestConcurrentQuotesAndFallbackTurns(t *testing.T) {
	stats := newMemStatsStore()
	svc, _, _ := newTestSession(t, failingChat{}, stats)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 25; j++ {
				quote, err := svc.DailyQuote(context.Background())
				assert.NoError(t, err)
				assert.NotEmpty(t, quote)
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 25; j++ {
				resp, err := svc.Chat(context.Background(), "hello", models.ArchetypeDog, "Biscuit")
				assert.NoError(t, err)
				if resp != nil {
					assert.True(t, resp.Degraded)
				}
			}
		}()
	}
	wg.Wait()
}

type petReadFailKV struct {
	*store.MemoryKV
}

func (k *petReadFailKV) Get(ctx context.Context, key string) ([]byte, error) {
	if key == store.KeyPet {
		return nil, errors.New("kv read failed")
	}
	return k.MemoryKV.Get(ctx, key)
}

func TestChatSavesProfileWhenPetLoadFails(t *testing.T) {
	log := logger.New(logger.Config{Level: "error", JSON: true, Output: io.Discard})
	kv := &petReadFailKV{MemoryKV: store.NewMemoryKV()}
	gateway := store.NewGateway(kv, log)
	stats := newMemStatsStore()
	sender := &stubChat{result: &chat.TurnResult{Reply: "*purrs*", Mood: models.MoodHappy}}
	svc := NewSessionService(SessionConfig{
		Stats:      stats,
		Gateway:    gateway,
		Chat:       sender,
		Responder:  responses.NewResponder(rand.New(rand.NewSource(7))),
		Journal:    fixedCounter(0),
		Meditation: &stubMeditationLog{},
		Archive:    &recordingArchive{},
		Rand:       rand.New(rand.NewSource(7)),
	}, log)

	_, err := svc.Chat(context.Background(), "hi", models.ArchetypeCat, "Mochi")
	require.NoError(t, err)

	// The failed read must not skip the profile write
	raw, err := kv.MemoryKV.Get(context.Background(), store.KeyPet)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "Mochi")
}
