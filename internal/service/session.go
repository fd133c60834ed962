package service

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"pixelpaw/backend/internal/chat"
	"pixelpaw/backend/internal/models"
	"pixelpaw/backend/internal/mood"
	"pixelpaw/backend/internal/progression"
	"pixelpaw/backend/internal/responses"
	"pixelpaw/backend/internal/rewards"
	"pixelpaw/backend/internal/store"
	"pixelpaw/backend/pkg/logger"
)

// ChatSender is the remote chat collaborator contract. A nil Stats in
// the result means the collaborator produced no authoritative snapshot
// and the local heuristic branch applies.
type ChatSender interface {
	Send(ctx context.Context, userText string, archetype models.Archetype, petName string, current progression.Stats) (*chat.TurnResult, error)
}

// StatsStore is the remote stats store contract: defaulted get,
// last-write-wins put.
type StatsStore interface {
	GetStats(name string) progression.Stats
	PutStats(name string, petType models.Archetype, stats progression.Stats) error
}

// Counter supplies a cumulative count for reward predicates.
type Counter interface {
	Count() (int64, error)
}

// MeditationLog records completed sessions and reports the lifetime
// count.
type MeditationLog interface {
	Record(duration time.Duration, completedAt time.Time) error
	Count() (int64, error)
}

// Archiver appends turn messages to long-term history.
type Archiver interface {
	Archive(petName string, msg models.Message) error
}

// SessionService orchestrates one interaction turn: classify, chat,
// progress, persist, reward. All state transitions for a pet flow
// through here in submission order; the service itself holds no
// mutable state.
type SessionService struct {
	stats      StatsStore
	gateway    *store.Gateway
	chatClient ChatSender
	responder  *responses.Responder
	journal    Counter
	meditation MeditationLog
	archive    Archiver
	rng        *rand.Rand
	rngMu      sync.Mutex
	log        *logger.Logger
	now        func() time.Time
}

// SessionConfig wires the session controller's collaborators.
type SessionConfig struct {
	Stats      StatsStore
	Gateway    *store.Gateway
	Chat       ChatSender
	Responder  *responses.Responder
	Journal    Counter
	Meditation MeditationLog
	Archive    Archiver
	// Rand drives quote selection. The session serializes its own
	// access, so the source must not be shared with other components.
	Rand *rand.Rand
}

func NewSessionService(cfg SessionConfig, log *logger.Logger) *SessionService {
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &SessionService{
		stats:      cfg.Stats,
		gateway:    cfg.Gateway,
		chatClient: cfg.Chat,
		responder:  cfg.Responder,
		journal:    cfg.Journal,
		meditation: cfg.Meditation,
		archive:    cfg.Archive,
		rng:        rng,
		log:        log,
		now:        time.Now,
	}
}

// TurnResponse is the outcome of one interaction, emitted to the
// presentation layer.
type TurnResponse struct {
	Reply      string              `json:"reply,omitempty"`
	Mood       models.Mood         `json:"mood,omitempty"`
	Actions    []string            `json:"actions,omitempty"`
	Stats      progression.Stats   `json:"stats"`
	Outcome    progression.Outcome `json:"outcome"`
	NewRewards []models.Reward     `json:"newRewards,omitempty"`
	Degraded   bool                `json:"degraded,omitempty"`
}

// Chat runs one conversational turn. A failed or timed-out remote call
// never partially applies stats: the local responder and heuristic
// branch take over as one atomic transition, and the turn still
// succeeds from the user's point of view.
func (s *SessionService) Chat(ctx context.Context, userText string, archetype models.Archetype, petName string) (*TurnResponse, error) {
	current := s.stats.GetStats(petName)

	userMsg := models.Message{
		ID:        uuid.New().String(),
		Role:      models.RoleUser,
		Content:   userText,
		Timestamp: s.now().UTC(),
	}

	var (
		reply    string
		m        models.Mood
		actions  []string
		remote   *progression.Stats
		degraded bool
	)

	result, err := s.chatClient.Send(ctx, userText, archetype, petName, current)
	if err != nil {
		s.log.Warn("remote chat unavailable, using local responder",
			"pet", petName, "error", err.Error())
		reply = s.responder.Respond(archetype, userText, petName)
		m = chatMoodFallback(userText)
		degraded = true
	} else {
		reply = result.Reply
		m = result.Mood
		actions = result.Actions
		remote = result.Stats
	}

	next, outcome := progression.Apply(current, progression.InteractionChat, m, remote)

	companionMsg := models.Message{
		ID:        uuid.New().String(),
		Role:      models.RoleCompanion,
		Content:   reply,
		Timestamp: s.now().UTC(),
		Mood:      m,
	}

	if err := s.persistTurn(ctx, petName, archetype, next, []models.Message{userMsg, companionMsg}); err != nil {
		return nil, err
	}

	newRewards := s.evaluateRewards(ctx, next.Level, true)

	return &TurnResponse{
		Reply:      reply,
		Mood:       m,
		Actions:    actions,
		Stats:      next,
		Outcome:    outcome,
		NewRewards: newRewards,
		Degraded:   degraded,
	}, nil
}

// Care messages mirrored to the transcript per action.
var careMessages = map[progression.Interaction]string{
	progression.InteractionFeed:  "*munch munch* 😋 Thank you for the delicious treat! I feel so loved and energized!",
	progression.InteractionPlay:  "*plays joyfully* 🎾 This is so much fun! You always know how to make me happy!",
	progression.InteractionSleep: "*yawns and stretches* 😴 A nice rest feels wonderful. Thank you for taking care of me!",
}

// Care applies one feed/play/sleep action.
func (s *SessionService) Care(ctx context.Context, action progression.Interaction, archetype models.Archetype, petName string) (*TurnResponse, error) {
	current := s.stats.GetStats(petName)
	next, outcome := progression.Apply(current, action, models.MoodHappy, nil)

	msg := models.Message{
		ID:        uuid.New().String(),
		Role:      models.RoleCompanion,
		Content:   careMessages[action],
		Timestamp: s.now().UTC(),
		Mood:      models.MoodHappy,
	}

	if err := s.persistTurn(ctx, petName, archetype, next, []models.Message{msg}); err != nil {
		return nil, err
	}

	newRewards := s.evaluateRewards(ctx, next.Level, false)

	return &TurnResponse{
		Reply:      msg.Content,
		Mood:       models.MoodHappy,
		Stats:      next,
		Outcome:    outcome,
		NewRewards: newRewards,
	}, nil
}

// CompleteJournal grants the journal XP after an entry is written.
func (s *SessionService) CompleteJournal(ctx context.Context, archetype models.Archetype, petName string) (*TurnResponse, error) {
	return s.completeActivity(ctx, progression.InteractionJournal, archetype, petName)
}

// CompleteMeditation records the session and grants the meditation XP.
func (s *SessionService) CompleteMeditation(ctx context.Context, archetype models.Archetype, petName string, duration time.Duration) (*TurnResponse, error) {
	if s.meditation != nil {
		if err := s.meditation.Record(duration, s.now().UTC()); err != nil {
			s.log.LogError(err, "failed to record meditation session", "pet", petName)
		}
	}
	return s.completeActivity(ctx, progression.InteractionMeditate, archetype, petName)
}

func (s *SessionService) completeActivity(ctx context.Context, interaction progression.Interaction, archetype models.Archetype, petName string) (*TurnResponse, error) {
	current := s.stats.GetStats(petName)
	next, outcome := progression.Apply(current, interaction, models.MoodCalm, nil)

	if err := s.persistTurn(ctx, petName, archetype, next, nil); err != nil {
		return nil, err
	}

	newRewards := s.evaluateRewards(ctx, next.Level, false)

	return &TurnResponse{
		Stats:      next,
		Outcome:    outcome,
		NewRewards: newRewards,
	}, nil
}

// DailyQuote returns today's quote, generating and storing a new one
// when the stored quote is absent or from a previous day.
func (s *SessionService) DailyQuote(ctx context.Context) (string, error) {
	quote, ok, err := s.gateway.LoadDailyQuote(ctx)
	if err != nil {
		return "", err
	}
	if ok {
		return quote, nil
	}

	s.rngMu.Lock()
	quote = responses.MotivationalQuote(s.rng)
	s.rngMu.Unlock()
	if err := s.gateway.SaveDailyQuote(ctx, quote); err != nil {
		return "", err
	}
	return quote, nil
}

// Rewards re-evaluates and returns the full reward set.
func (s *SessionService) Rewards(ctx context.Context) ([]models.Reward, error) {
	current, err := s.gateway.LoadRewards(ctx)
	if err != nil {
		return nil, err
	}

	history := s.rewardHistory(ctx, 0, false)
	updated, newly := rewards.Evaluate(history, current, s.now().UTC())
	if len(newly) > 0 {
		if err := s.gateway.SaveRewards(ctx, updated); err != nil {
			return nil, err
		}
	}
	return updated, nil
}

// Transcript returns the working message log.
func (s *SessionService) Transcript(ctx context.Context) ([]models.Message, error) {
	return s.gateway.LoadMessages(ctx)
}

// persistTurn writes the new stats snapshot and appends msgs to both
// the working transcript and the archive. The stats write happens
// first so a transcript failure never leaves progression behind.
func (s *SessionService) persistTurn(ctx context.Context, petName string, archetype models.Archetype, next progression.Stats, msgs []models.Message) error {
	if err := s.stats.PutStats(petName, archetype, next); err != nil {
		return err
	}

	pet, ok, err := s.gateway.LoadPet(ctx)
	if err != nil {
		// Rebuild from the snapshot so the profile write still goes out
		s.log.LogError(err, "failed to load pet profile", "pet", petName)
		ok = false
	}
	if !ok {
		pet = models.Pet{
			Type:        archetype,
			Name:        petName,
			Accessories: []string{},
		}
	}
	pet.Happiness = next.Happiness
	pet.Curiosity = next.Curiosity
	pet.Obedience = next.Obedience
	pet.Energy = next.Energy
	pet.Level = next.Level
	pet.XP = next.XP
	pet.LastInteraction = s.now().UTC()
	if err := s.gateway.SavePet(ctx, pet); err != nil {
		s.log.LogError(err, "failed to save pet profile", "pet", petName)
	}

	if len(msgs) == 0 {
		return nil
	}

	transcript, err := s.gateway.LoadMessages(ctx)
	if err != nil {
		s.log.LogError(err, "failed to load transcript", "pet", petName)
		transcript = nil
	}
	transcript = append(transcript, msgs...)
	if err := s.gateway.SaveMessages(ctx, transcript); err != nil {
		s.log.LogError(err, "failed to save transcript", "pet", petName)
	}

	if s.archive != nil {
		for _, msg := range msgs {
			if err := s.archive.Archive(petName, msg); err != nil {
				s.log.LogError(err, "failed to archive message", "pet", petName, "message", msg.ID)
			}
		}
	}
	return nil
}

// evaluateRewards runs the reward engine after a turn. Failures here
// are logged and swallowed: a reward hiccup must not fail the turn.
func (s *SessionService) evaluateRewards(ctx context.Context, level int, chatted bool) []models.Reward {
	current, err := s.gateway.LoadRewards(ctx)
	if err != nil {
		s.log.LogError(err, "failed to load rewards")
		return nil
	}

	history := s.rewardHistory(ctx, level, chatted)
	updated, newly := rewards.Evaluate(history, current, s.now().UTC())
	if len(newly) == 0 {
		return nil
	}
	if err := s.gateway.SaveRewards(ctx, updated); err != nil {
		s.log.LogError(err, "failed to save rewards")
		return nil
	}
	return newly
}

// rewardHistory assembles the cumulative counters the reward
// predicates read. Counter failures default to zero rather than
// blocking evaluation; earned rewards can never regress anyway.
func (s *SessionService) rewardHistory(ctx context.Context, level int, chatted bool) rewards.History {
	var journalCount, meditationCount int64
	if s.journal != nil {
		if n, err := s.journal.Count(); err == nil {
			journalCount = n
		}
	}
	if s.meditation != nil {
		if n, err := s.meditation.Count(); err == nil {
			meditationCount = n
		}
	}

	if !chatted {
		if msgs, err := s.gateway.LoadMessages(ctx); err == nil && len(msgs) > 0 {
			chatted = true
		}
	}
	if level == 0 {
		if pet, ok, err := s.gateway.LoadPet(ctx); err == nil && ok {
			level = pet.Level
		}
	}

	return rewards.History{
		HasChatted:      chatted,
		JournalEntries:  int(journalCount),
		MeditationCount: int(meditationCount),
		Level:           level,
	}
}

// chatMoodFallback mirrors the classifier used inside the chat client
// so degraded turns still carry a mood.
func chatMoodFallback(userText string) models.Mood {
	return mood.Classify(userText)
}
