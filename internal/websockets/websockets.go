package websockets

import (
	"claimdesk/config"
	"claimdesk/internal/database"
	"claimdesk/internal/events"
	"claimdesk/internal/logger"
	"sync"

	json "github.com/goccy/go-json"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// Manager streams claim lifecycle events to connected dashboard clients.
type Manager struct {
	db       database.DB
	eventBus *events.EventBus
	log      logger.Logger

	mu      sync.RWMutex
	clients map[string]*websocket.Conn
}

func New(db database.DB, eventBus *events.EventBus, config config.Config) (*Manager, error) {
	m := &Manager{
		db:       db,
		eventBus: eventBus,
		log:      logger.New("websockets"),
		clients:  make(map[string]*websocket.Conn),
	}

	go func() {
		if err := eventBus.Subscribe(events.ClaimChannel, m.broadcast); err != nil {
			m.log.Er("claim event subscription stopped", err)
		}
	}()

	return m, nil
}

// HandleWebSocket registers the connection and blocks until the client
// disconnects.
func (m *Manager) HandleWebSocket(c *websocket.Conn) {
	log := m.log.Function("HandleWebSocket")

	id := uuid.New().String()

	m.mu.Lock()
	m.clients[id] = c
	m.mu.Unlock()

	log.Info("Client connected", "clientID", id, "clients", m.ClientCount())

	defer func() {
		m.mu.Lock()
		delete(m.clients, id)
		m.mu.Unlock()
		_ = c.Close()
		log.Info("Client disconnected", "clientID", id)
	}()

	for {
		if _, _, err := c.ReadMessage(); err != nil {
			return
		}
	}
}

func (m *Manager) ClientCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.clients)
}

func (m *Manager) broadcast(event events.Event) {
	log := m.log.Function("broadcast")

	payload, err := json.Marshal(event)
	if err != nil {
		log.Er("failed to marshal event", err)
		return
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	for id, conn := range m.clients {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			log.Warn("failed to write to client", "clientID", id, "error", err)
		}
	}
}
