package api

import (
	"context"
	"io"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pixelpaw/backend/internal/chat"
	"pixelpaw/backend/internal/models"
	"pixelpaw/backend/internal/progression"
	"pixelpaw/backend/internal/responses"
	"pixelpaw/backend/internal/service"
	"pixelpaw/backend/internal/store"
	"pixelpaw/backend/pkg/logger"
)

type mapStatsStore struct {
	stats map[string]progression.Stats
}

func (m *mapStatsStore) GetStats(name string) progression.Stats {
	if s, ok := m.stats[name]; ok {
		return s
	}
	return progression.DefaultStats()
}

func (m *mapStatsStore) PutStats(name string, petType models.Archetype, stats progression.Stats) error {
	m.stats[name] = stats
	return nil
}

type cannedChat struct{}

func (cannedChat) Send(ctx context.Context, userText string, archetype models.Archetype, petName string, current progression.Stats) (*chat.TurnResult, error) {
	return &chat.TurnResult{
		Reply: "*wags tail* hello!",
		Mood:  models.MoodHappy,
	}, nil
}

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log := logger.New(logger.Config{Level: "error", JSON: true, Output: io.Discard})

	session := service.NewSessionService(service.SessionConfig{
		Stats:     &mapStatsStore{stats: make(map[string]progression.Stats)},
		Gateway:   store.NewGateway(store.NewMemoryKV(), log),
		Chat:      cannedChat{},
		Responder: responses.NewResponder(rand.New(rand.NewSource(1))),
		Rand:      rand.New(rand.NewSource(1)),
	}, log)

	engine := gin.New()
	NewSessionHandler(session, log).RegisterRoutes(engine)
	return engine
}

func TestChatEndpoint(t *testing.T) {
	engine := newTestEngine(t)

	body := `{"message":"hi there","petType":"dog","petName":"Biscuit"}`
	req, _ := http.NewRequest(http.MethodPost, "/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "wags tail")
	assert.Contains(t, w.Body.String(), `"mood":"happy"`)
	assert.Contains(t, w.Body.String(), `"stats"`)
}

func TestChatEndpointRejectsUnknownPetType(t *testing.T) {
	engine := newTestEngine(t)

	body := `{"message":"hi","petType":"dragon","petName":"Smaug"}`
	req, _ := http.NewRequest(http.MethodPost, "/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCareEndpoint(t *testing.T) {
	engine := newTestEngine(t)

	body := `{"action":"feed","petType":"cat","petName":"Mochi"}`
	req, _ := http.NewRequest(http.MethodPost, "/pet/care", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"happiness":80`)
}

func TestQuoteEndpointStable(t *testing.T) {
	engine := newTestEngine(t)

	get := func() string {
		req, _ := http.NewRequest(http.MethodGet, "/quote", nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
		return w.Body.String()
	}

	first := get()
	second := get()
	assert.Equal(t, first, second)
}
