package connection

import (
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

// Client represents a connected websocket client
type Client struct {
	ID         string
	Conn       *websocket.Conn
	Send       chan []byte
	SessionIDs []string // Sessions the client is subscribed to
}

// Manager handles all client connections
type Manager struct {
	clients map[string]*Client
	mutex   sync.RWMutex
}

// NewManager creates a new connection manager
func NewManager() *Manager {
	return &Manager{
		clients: make(map[string]*Client),
	}
}

// Register starts tracking a client
func (m *Manager) Register(client *Client) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.clients[client.ID] = client
}

// Unregister forgets a client and closes its send channel
func (m *Manager) Unregister(client *Client) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if _, ok := m.clients[client.ID]; ok {
		delete(m.clients, client.ID)
		close(client.Send)
	}
}

// Count returns the number of connected clients
func (m *Manager) Count() int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return len(m.clients)
}

// SendToClient sends a message to a specific client
func (m *Manager) SendToClient(clientID string, message []byte) bool {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	if client, ok := m.clients[clientID]; ok {
		return trySend(client, message)
	}
	return false
}

// SendToSession sends a message to all clients subscribed to a session
func (m *Manager) SendToSession(sessionID string, message []byte) int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	sent := 0
	for _, client := range m.clients {
		for _, id := range client.SessionIDs {
			if id == sessionID {
				if trySend(client, message) {
					sent++
				}
				break
			}
		}
	}
	return sent
}

// trySend queues message without blocking; a full buffer drops it
func trySend(client *Client, message []byte) bool {
	select {
	case client.Send <- message:
		return true
	default:
		log.Printf("Dropping message for client %s: send buffer full", client.ID)
		return false
	}
}

// AddSessionToClient subscribes a client to a session
func (m *Manager) AddSessionToClient(clientID string, sessionID string) bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if client, ok := m.clients[clientID]; ok {
		for _, id := range client.SessionIDs {
			if id == sessionID {
				return true // Already subscribed
			}
		}
		client.SessionIDs = append(client.SessionIDs, sessionID)
		return true
	}
	return false
}

// RemoveSessionFromClient unsubscribes a client from a session
func (m *Manager) RemoveSessionFromClient(clientID string, sessionID string) bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if client, ok := m.clients[clientID]; ok {
		for i, id := range client.SessionIDs {
			if id == sessionID {
				client.SessionIDs = append(client.SessionIDs[:i], client.SessionIDs[i+1:]...)
				return true
			}
		}
	}
	return false
}

// IsClientInSession checks if a client is subscribed to a session
func (m *Manager) IsClientInSession(clientID string, sessionID string) bool {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	if client, ok := m.clients[clientID]; ok {
		for _, id := range client.SessionIDs {
			if id == sessionID {
				return true
			}
		}
	}
	return false
}
