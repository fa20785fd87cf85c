package websocket

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"hrbot/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The admin panel runs on its own origin.
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// SessionResolver validates the session token a client connects with.
type SessionResolver interface {
	Resolve(ctx context.Context, sessionID string) (*model.User, error)
}

// chatEvent is the payload pushed to connected admin panels when a chat
// changes.
type chatEvent struct {
	Event      string `json:"event"`
	EmployeeID int64  `json:"employee_id"`
	MessageID  uint   `json:"message_id"`
	IsRead     bool   `json:"is_read"`
}

// Client represents a single connected WebSocket client.
type Client struct {
	Hub  *Hub
	Conn *websocket.Conn
	Send chan []byte
}

// Hub maintains the set of active clients and fans chat events out to them.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	mu         sync.Mutex
}

// NewHub initializes a new Hub instance.
func NewHub() *Hub {
	return &Hub{
		broadcast:  make(chan []byte),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
	}
}

// NewMessage broadcasts a new-message event so open chat lists refresh.
// Implements service.ChatEventBroadcaster.
func (h *Hub) NewMessage(message *model.Message) {
	payload, err := json.Marshal(chatEvent{
		Event:      "new_message",
		EmployeeID: message.EmployeeID,
		MessageID:  message.ID,
		IsRead:     message.IsRead,
	})
	if err != nil {
		return
	}
	h.broadcast <- payload
}

// Run starts the core dispatch loop for WebSocket events.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			log.Println("New WebSocket client connected")
		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
				log.Println("WebSocket client disconnected")
			}
			h.mu.Unlock()
		case message := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients {
				select {
				case client.Send <- message:
				default:
					close(client.Send)
					delete(h.clients, client)
				}
			}
			h.mu.Unlock()
		}
	}
}

// writePump handles writing messages from the Hub to the WebSocket connection.
func (c *Client) writePump() {
	defer func() {
		_ = c.Conn.Close()
	}()
	for message := range c.Send {
		w, err := c.Conn.NextWriter(websocket.TextMessage)
		if err != nil {
			return
		}
		_, _ = w.Write(message)

		// Fast track writing queued messages.
		n := len(c.Send)
		for i := 0; i < n; i++ {
			_, _ = w.Write([]byte{'\n'})
			_, _ = w.Write(<-c.Send)
		}

		if err := w.Close(); err != nil {
			return
		}
	}
	_ = c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
}

// readPump pumps messages from the WebSocket connection to the hub.
func (c *Client) readPump() {
	defer func() {
		c.Hub.unregister <- c
		_ = c.Conn.Close()
	}()
	for {
		// Reading only keeps the connection alive; clients do not send.
		_, _, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("error: %v", err)
			}
			break
		}
	}
}

// ServeWs handles websocket requests from the admin panel. Clients connect
// with their session token as a query parameter; the session must resolve to
// an active user holding the send-messages capability.
func ServeWs(hub *Hub, c *gin.Context, auth SessionResolver) {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		log.Println("WebSocket connection rejected: missing session")
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	user, err := auth.Resolve(c.Request.Context(), sessionID)
	if err != nil {
		log.Println("WebSocket connection rejected: invalid session:", err)
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	if user.Role == nil || !user.Role.Has(model.CapSendMessages) {
		log.Println("WebSocket connection rejected: inadequate permissions")
		c.AbortWithStatus(http.StatusForbidden)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Println("WebSocket upgrade failed:", err)
		return
	}
	client := &Client{Hub: hub, Conn: conn, Send: make(chan []byte, 256)}
	client.Hub.register <- client

	go client.writePump()
	go client.readPump()
}
