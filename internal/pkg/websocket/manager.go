package websocket

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/piresc/quickconnect/internal/pkg/constants"
	"github.com/piresc/quickconnect/internal/pkg/models"
)

const writeWait = 10 * time.Second

// Client is one open socket subscribed to a chat
type Client struct {
	ID     string
	ChatID string
	Conn   *websocket.Conn

	writeMu sync.Mutex
}

// Manager manages WebSocket connections grouped by chat
type Manager struct {
	sync.RWMutex
	clients  map[string]map[string]*Client
	upgrader websocket.Upgrader
}

// NewManager creates a new WebSocket manager
func NewManager() *Manager {
	return &Manager{
		clients: make(map[string]map[string]*Client),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// HandleConnection upgrades the request, registers the client under chatID
// and runs handleClient until it returns
func (m *Manager) HandleConnection(c echo.Context, chatID string, handleClient func(*Client) error) error {
	ws, err := m.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer ws.Close()

	client := &Client{ID: uuid.NewString(), ChatID: chatID, Conn: ws}
	m.AddClient(client)
	defer m.RemoveClient(client)

	return handleClient(client)
}

// AddClient safely adds a client to the manager
func (m *Manager) AddClient(client *Client) {
	m.Lock()
	defer m.Unlock()
	if m.clients[client.ChatID] == nil {
		m.clients[client.ChatID] = make(map[string]*Client)
	}
	m.clients[client.ChatID][client.ID] = client
}

// RemoveClient safely removes a client from the manager
func (m *Manager) RemoveClient(client *Client) {
	m.Lock()
	defer m.Unlock()
	delete(m.clients[client.ChatID], client.ID)
	if len(m.clients[client.ChatID]) == 0 {
		delete(m.clients, client.ChatID)
	}
}

// ClientCount returns how many sockets watch chatID
func (m *Manager) ClientCount(chatID string) int {
	m.RLock()
	defer m.RUnlock()
	return len(m.clients[chatID])
}

// SendMessage sends a message to a WebSocket client
func (m *Manager) SendMessage(client *Client, event string, data interface{}) error {
	if client == nil || client.Conn == nil {
		return nil
	}

	rawData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("error marshaling message data: %w", err)
	}

	client.writeMu.Lock()
	defer client.writeMu.Unlock()

	_ = client.Conn.SetWriteDeadline(time.Now().Add(writeWait))
	return client.Conn.WriteJSON(models.WSMessage{
		Event: event,
		Data:  rawData,
	})
}

// SendErrorMessage sends an error message to a WebSocket client
func (m *Manager) SendErrorMessage(client *Client, code string, message string) error {
	return m.SendMessage(client, constants.EventError, models.WSErrorMessage{
		Code:    code,
		Message: message,
	})
}

// Close sends a normal close frame with reason and closes the socket
func (m *Manager) Close(client *Client, reason string) error {
	if client == nil || client.Conn == nil {
		return nil
	}

	client.writeMu.Lock()
	defer client.writeMu.Unlock()

	_ = client.Conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, reason),
		time.Now().Add(writeWait))
	return client.Conn.Close()
}
