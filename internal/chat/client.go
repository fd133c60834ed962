// Package chat talks to the remote chat collaborator (an Ollama-style
// generate API) and derives the per-turn mood, actions, and
// authoritative stats snapshot from its reply.
package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"pixelpaw/backend/internal/models"
	"pixelpaw/backend/internal/mood"
	"pixelpaw/backend/internal/progression"
	"pixelpaw/backend/pkg/logger"
	"pixelpaw/backend/pkg/resilience"
)

// Config holds the collaborator endpoint settings. The API key is
// explicit here rather than read from ambient state; RotateKey swaps it
// at runtime.
type Config struct {
	BaseURL string
	Model   string
	APIKey  string
	Timeout time.Duration
}

// TurnResult is everything one successful remote turn produces. Stats
// is the authoritative snapshot for the progression engine.
type TurnResult struct {
	Reply   string             `json:"reply"`
	Mood    models.Mood        `json:"mood"`
	Actions []string           `json:"actions,omitempty"`
	Stats   *progression.Stats `json:"stats,omitempty"`
}

// Client calls the generate API behind a circuit breaker. Any error it
// returns is a designed degradation signal: the caller falls back to
// the local responder and heuristic stats, never surfacing a hard
// failure to the user.
type Client struct {
	mu         sync.RWMutex
	cfg        Config
	httpClient *http.Client
	breaker    *resilience.CircuitBreaker
	log        *logger.Logger
}

// NewClient creates a chat client for the given endpoint.
func NewClient(cfg Config, log *logger.Logger) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = 60 * time.Second
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		breaker:    resilience.NewCircuitBreaker(resilience.DefaultCircuitBreakerConfig("remote-chat"), log),
		log:        log,
	}
}

// RotateKey replaces the API key used for subsequent requests.
func (c *Client) RotateKey(key string) {
	c.mu.Lock()
	c.cfg.APIKey = key
	c.mu.Unlock()
}

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type generateResponse struct {
	Response string `json:"response"`
}

// Send runs one chat turn: prompt the collaborator, then derive mood,
// actions, and the sentiment-driven stats snapshot from the exchange.
// current is the stats snapshot the sentiment deltas apply to.
func (c *Client) Send(ctx context.Context, userText string, archetype models.Archetype, petName string, current progression.Stats) (*TurnResult, error) {
	detected := mood.Classify(userText)

	var reply string
	err := c.breaker.Execute(func() error {
		var callErr error
		reply, callErr = c.generate(ctx, userText, archetype, petName)
		return callErr
	})
	if err != nil {
		return nil, err
	}

	stats := StatsFromSentiment(current, detected, userText)
	return &TurnResult{
		Reply:   reply,
		Mood:    detected,
		Actions: ExtractActions(reply),
		Stats:   &stats,
	}, nil
}

func (c *Client) generate(ctx context.Context, userText string, archetype models.Archetype, petName string) (string, error) {
	prompt := fmt.Sprintf(
		"You are %s, a cute and emotionally aware %s virtual pet. "+
			"Use *action* format for physical actions (like *wags tail* or *purrs*). "+
			"Respond kindly and naturally as a %s would.\nUser: %s\n%s:",
		petName, archetype, archetype, userText, petName,
	)

	c.mu.RLock()
	baseURL := c.cfg.BaseURL
	model := c.cfg.Model
	apiKey := c.cfg.APIKey
	c.mu.RUnlock()

	body, err := json.Marshal(generateRequest{Model: model, Prompt: prompt, Stream: false})
	if err != nil {
		return "", fmt.Errorf("marshaling generate request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating generate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling chat collaborator: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return "", fmt.Errorf("chat collaborator returned status %d", resp.StatusCode)
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decoding generate response: %w", err)
	}

	reply := strings.TrimSpace(out.Response)
	if reply == "" {
		reply = "*tilts head* I didn't quite understand that. Could you try again?"
	}
	return reply, nil
}
