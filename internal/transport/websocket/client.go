package websocket

import (
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/mrasdfdela/springboard-12-02-connect-four-oo/internal/domain"
)

// Client is one browser tab. A client watches at most one game at a time.
type Client struct {
	conn   *websocket.Conn
	gameID string

	// conn.WriteJSON is not safe for concurrent use
	writeMu sync.Mutex
}

func (c *Client) send(message domain.ServerMessage) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
	return c.conn.WriteJSON(message)
}

// ConnectionManager tracks which clients are watching which game.
type ConnectionManager struct {
	watchers map[string]map[*Client]struct{} // gameID → clients
	mu       sync.RWMutex
}

func NewConnectionManager() *ConnectionManager {
	return &ConnectionManager{
		watchers: make(map[string]map[*Client]struct{}),
	}
}

// Attach moves client onto gameID, detaching it from any previous game.
func (cm *ConnectionManager) Attach(client *Client, gameID string) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	cm.detachLocked(client)
	if cm.watchers[gameID] == nil {
		cm.watchers[gameID] = make(map[*Client]struct{})
	}
	cm.watchers[gameID][client] = struct{}{}
	client.gameID = gameID
}

func (cm *ConnectionManager) Detach(client *Client) {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	cm.detachLocked(client)
}

func (cm *ConnectionManager) detachLocked(client *Client) {
	if client.gameID == "" {
		return
	}
	if set, ok := cm.watchers[client.gameID]; ok {
		delete(set, client)
		if len(set) == 0 {
			delete(cm.watchers, client.gameID)
		}
	}
	client.gameID = ""
}

func (cm *ConnectionManager) GameOf(client *Client) string {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return client.gameID
}

func (cm *ConnectionManager) WatcherCount(gameID string) int {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return len(cm.watchers[gameID])
}

// Broadcast sends message to every client watching gameID.
func (cm *ConnectionManager) Broadcast(gameID string, message domain.ServerMessage) {
	cm.mu.RLock()
	clients := make([]*Client, 0, len(cm.watchers[gameID]))
	for c := range cm.watchers[gameID] {
		clients = append(clients, c)
	}
	cm.mu.RUnlock()

	for _, c := range clients {
		// best effort, the read loop notices dead sockets
		_ = c.send(message)
	}
}

// GameEvicted tells every watcher that gameID is gone and releases them,
// so their next join_game or new_game starts clean.
func (cm *ConnectionManager) GameEvicted(gameID string) {
	cm.mu.Lock()
	set := cm.watchers[gameID]
	delete(cm.watchers, gameID)
	clients := make([]*Client, 0, len(set))
	for c := range set {
		if c.gameID == gameID {
			c.gameID = ""
		}
		clients = append(clients, c)
	}
	cm.mu.Unlock()

	message := domain.ServerMessage{Type: "game_closed", GameID: gameID, Message: "game expired"}
	for _, c := range clients {
		_ = c.send(message)
	}
	if len(clients) > 0 {
		log.Printf("[WS] Released %d watchers of evicted game %s", len(clients), gameID)
	}
}
