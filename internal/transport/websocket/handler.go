package websocket

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/mrasdfdela/springboard-12-02-connect-four-oo/internal/domain"
	"github.com/mrasdfdela/springboard-12-02-connect-four-oo/internal/service/game"
)

const (
	pongWait     = 60 * time.Second
	pingInterval = 30 * time.Second
)

// Handler manages WebSocket dependencies
type Handler struct {
	ConnManager *ConnectionManager
	GameService *game.Service
	Upgrader    websocket.Upgrader
}

// NewHandler creates a new WebSocket handler. checkOrigin may be nil to
// accept any origin.
func NewHandler(cm *ConnectionManager, gs *game.Service, checkOrigin func(origin string) bool) *Handler {
	return &Handler{
		ConnManager: cm,
		GameService: gs,
		Upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if origin == "" || checkOrigin == nil {
					return true
				}
				return checkOrigin(origin)
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// HandleWebSocket is the HTTP handler that upgrades the connection. An
// optional gameId query parameter attaches the socket to that game.
func (h *Handler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[WS] Upgrade error: %v", err)
		return
	}

	client := &Client{conn: conn}
	if gameID := r.URL.Query().Get("gameId"); gameID != "" {
		h.join(client, gameID)
	}

	h.handleConnection(client)
}

// handleConnection manages the lifecycle of a single WebSocket connection
func (h *Handler) handleConnection(client *Client) {
	conn := client.conn
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	done := make(chan struct{})
	defer func() {
		close(done)
		h.ConnManager.Detach(client)
		conn.Close()
		log.Printf("[WS] Connection closed")
	}()

	// Keep-alive pinger
	go func() {
		ticker := time.NewTicker(pingInterval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				client.writeMu.Lock()
				err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(10*time.Second))
				client.writeMu.Unlock()
				if err != nil {
					return
				}
			}
		}
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[WS] Client disconnected unexpectedly: %v", err)
			}
			return
		}

		var msg domain.ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			log.Printf("[WS] Invalid message format: %v", err)
			client.send(domain.ServerMessage{Type: "error", Message: "invalid message"})
			continue
		}

		h.processMessage(client, msg)
	}
}

// processMessage routes specific actions
func (h *Handler) processMessage(client *Client, msg domain.ClientMessage) {
	switch msg.Type {
	case "new_game":
		session, err := h.GameService.StartGame(game.NewGameRequest{
			Rows:    msg.Rows,
			Columns: msg.Columns,
			Player1: msg.Player1,
			Player2: msg.Player2,
		})
		if err != nil {
			client.send(domain.ServerMessage{Type: "error", Message: err.Error()})
			return
		}
		h.ConnManager.Attach(client, session.GameID)
		snapshot := session.Snapshot()
		client.send(domain.ServerMessage{Type: "game_started", GameID: session.GameID, Game: &snapshot})

	case "join_game":
		h.join(client, msg.GameID)

	case "make_move":
		gameID := h.ConnManager.GameOf(client)
		if gameID == "" {
			client.send(domain.ServerMessage{Type: "error", Message: "no game joined"})
			return
		}
		// the notifier delivers move_made/game_over to this client too
		_, _, err := h.GameService.Sessions.SubmitMove(gameID, msg.Column, h.ConnManager)
		if err != nil {
			client.send(domain.ServerMessage{Type: "error", GameID: gameID, Message: moveErrorMessage(err)})
		}

	case "leave_game":
		h.ConnManager.Detach(client)
		client.send(domain.ServerMessage{Type: "game_left"})

	default:
		client.send(domain.ServerMessage{Type: "error", Message: "unknown message type"})
	}
}

func (h *Handler) join(client *Client, gameID string) {
	session, err := h.GameService.Sessions.GetSession(gameID)
	if err != nil {
		client.send(domain.ServerMessage{Type: "error", GameID: gameID, Message: err.Error()})
		return
	}
	h.ConnManager.Attach(client, gameID)
	snapshot := session.Snapshot()
	client.send(domain.ServerMessage{Type: "game_state", GameID: gameID, Game: &snapshot})
}

func moveErrorMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrColumnFull):
		return string(domain.ErrColumnFull)
	case errors.Is(err, domain.ErrGameOver):
		return string(domain.ErrGameOver)
	case errors.Is(err, domain.ErrInvalidColumn):
		return string(domain.ErrInvalidColumn)
	case errors.Is(err, game.ErrGameNotFound):
		return string(game.ErrGameNotFound)
	}
	return "move failed"
}
