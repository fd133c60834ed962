package ws

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"pixelpaw/backend/internal/models"
	"pixelpaw/backend/internal/service"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 64 * 1024 // 64KB

	// Timeout for one full chat turn including the model call
	turnTimeout = 90 * time.Second
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins in development
	},
	HandshakeTimeout: 10 * time.Second,
	ReadBufferSize:   1024,
	WriteBufferSize:  1024,
}

// Message is the envelope for all frames in both directions.
type Message struct {
	Type    string      `json:"type"`
	Content interface{} `json:"content"`
}

// Session runs chat turns for a connected companion.
type Session interface {
	Chat(ctx context.Context, userText string, archetype models.Archetype, petName string) (*service.TurnResponse, error)
}

// Client is one connected companion view.
type Client struct {
	ID      string
	Conn    *websocket.Conn
	Send    chan []byte
	PetName string
	PetType models.Archetype
	Hub     *Hub

	// Closed by the hub on unregister. Send itself is never closed, so
	// a chat turn finishing after disconnect cannot panic the handler.
	done chan struct{}
}

// Hub tracks connected clients and routes chat turns to the session
// controller.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	session    Session
	mu         sync.Mutex
}

func NewHub(session Session) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		session:    session,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			log.Printf("Client registered: %s for pet %s", client.ID, client.PetName)

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.done)
				log.Printf("Client unregistered: %s", client.ID)
			}
			h.mu.Unlock()
		}
	}
}

func (c *Client) ReadPump() {
	defer func() {
		c.Hub.unregister <- c
		c.Conn.Close()
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, messageData, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("error: %v", err)
			}
			break
		}

		var message Message
		if err := json.Unmarshal(messageData, &message); err != nil {
			log.Printf("Error unmarshaling message: %v", err)
			continue
		}

		go c.handleMessage(message)
	}
}

func (c *Client) handleMessage(message Message) {
	switch message.Type {
	case "chat":
		c.handleChatMessage(message)
	case "ping":
		c.sendMessage("pong", nil)
	default:
		log.Printf("Unknown message type: %s", message.Type)
	}
}

func (c *Client) handleChatMessage(message Message) {
	var chatContent struct {
		Content string `json:"content"`
	}

	contentBytes, err := json.Marshal(message.Content)
	if err != nil {
		log.Printf("Error marshaling content: %v", err)
		return
	}

	if err := json.Unmarshal(contentBytes, &chatContent); err != nil {
		log.Printf("Error unmarshaling chat content: %v", err)
		return
	}

	if chatContent.Content == "" {
		c.sendErrorMessage("Message content is required")
		return
	}

	// Notify client that the companion is typing
	c.sendMessage("typing", map[string]interface{}{
		"is_typing": true,
	})

	ctx, cancel := context.WithTimeout(context.Background(), turnTimeout)
	defer cancel()

	turn, err := c.Hub.session.Chat(ctx, chatContent.Content, c.PetType, c.PetName)
	if err != nil {
		log.Printf("Error running chat turn: %v", err)
		c.sendErrorMessage("Failed to generate a response")
		return
	}

	c.sendMessage("chat", map[string]interface{}{
		"id":        fmt.Sprintf("resp-%d", time.Now().UnixNano()),
		"reply":     turn.Reply,
		"mood":      turn.Mood,
		"actions":   turn.Actions,
		"timestamp": time.Now(),
	})

	// Stats ride in a separate frame so the client can animate the
	// reply before the bars move
	c.sendMessage("stats", map[string]interface{}{
		"stats":      turn.Stats,
		"levelUp":    turn.Outcome.LeveledUp,
		"newRewards": turn.NewRewards,
	})
}

func (c *Client) sendMessage(messageType string, content interface{}) {
	message := Message{
		Type:    messageType,
		Content: content,
	}

	messageJSON, err := json.Marshal(message)
	if err != nil {
		log.Printf("Error marshaling message: %v", err)
		return
	}

	select {
	case c.Send <- messageJSON:
	case <-c.done:
		// Client already unregistered; drop the frame
	}
}

func (c *Client) sendErrorMessage(errorText string) {
	c.sendMessage("error", map[string]string{
		"message": errorText,
	})
}

func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case <-c.done:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
			return

		case message := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

			// Flush any queued messages as separate frames
			n := len(c.Send)
			for i := 0; i < n; i++ {
				extraMsg := <-c.Send
				if err := c.Conn.WriteMessage(websocket.TextMessage, extraMsg); err != nil {
					return
				}
			}

		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// GetActiveConnections returns the ids of connected clients.
func (h *Hub) GetActiveConnections() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	ids := make([]string, 0, len(h.clients))
	for client := range h.clients {
		ids = append(ids, client.ID)
	}
	return ids
}

// ServeWs upgrades an HTTP request to a live companion connection.
func ServeWs(hub *Hub, c *gin.Context) {
	petName := c.Query("petName")
	if petName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "petName is required"})
		return
	}

	petType := models.Archetype(c.Query("petType"))
	if !models.ValidArchetype(petType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "petType is required"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("Failed to upgrade connection: %v", err)
		return
	}

	client := &Client{
		ID:      fmt.Sprintf("client-%d", time.Now().UnixNano()),
		Conn:    conn,
		Send:    make(chan []byte, 16),
		PetName: petName,
		PetType: petType,
		Hub:     hub,
		done:    make(chan struct{}),
	}

	hub.register <- client

	go client.WritePump()
	go client.ReadPump()
}
