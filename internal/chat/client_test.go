package chat

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pixelpaw/backend/internal/models"
	"pixelpaw/backend/internal/progression"
	"pixelpaw/backend/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Level: "error", JSON: true, Output: io.Discard})
}

func TestClientSendSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"response": "*wags tail* I'm glad you're happy!"}`))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, Model: "llama3.2:1b", APIKey: "test-key"}, testLogger())

	res, err := c.Send(context.Background(), "I feel happy today", models.ArchetypeDog, "Pixel", progression.DefaultStats())
	require.NoError(t, err)
	assert.Equal(t, "*wags tail* I'm glad you're happy!", res.Reply)
	assert.Equal(t, models.MoodHappy, res.Mood)
	assert.Equal(t, []string{"wags tail"}, res.Actions)
	require.NotNil(t, res.Stats)
	assert.Equal(t, 73, res.Stats.Happiness)
}

func TestClientSendEmptyReplyGetsPlaceholder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"response": "   "}`))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, Model: "llama3.2:1b"}, testLogger())
	res, err := c.Send(context.Background(), "hm", models.ArchetypeCat, "Mochi", progression.DefaultStats())
	require.NoError(t, err)
	assert.Contains(t, res.Reply, "didn't quite understand")
}

func TestClientSendServerErrorBubbles(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, Model: "llama3.2:1b"}, testLogger())
	_, err := c.Send(context.Background(), "hello", models.ArchetypeDog, "Pixel", progression.DefaultStats())
	assert.Error(t, err)
}

func TestClientRotateKey(t *testing.T) {
	var seen string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Get("Authorization")
		w.Write([]byte(`{"response": "ok"}`))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, Model: "m", APIKey: "old"}, testLogger())
	c.RotateKey("new-key")

	_, err := c.Send(context.Background(), "hi", models.ArchetypeDog, "Pixel", progression.DefaultStats())
	require.NoError(t, err)
	assert.Equal(t, "Bearer new-key", seen)
}
