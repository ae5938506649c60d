package websocket

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/mrasdfdela/springboard-12-02-connect-four-oo/internal/config"
	"github.com/mrasdfdela/springboard-12-02-connect-four-oo/internal/domain"
	"github.com/mrasdfdela/springboard-12-02-connect-four-oo/internal/service/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*httptest.Server, *Handler) {
	t.Helper()
	cfg := &config.Config{
		BoardRows:    6,
		BoardColumns: 7,
		Player1:      config.PlayerConfig{Name: "p1", Color: "red"},
		Player2:      config.PlayerConfig{Name: "p2", Color: "blue"},
	}
	h := NewHandler(NewConnectionManager(), game.NewService(game.NewSessionManager(), cfg), nil)
	srv := httptest.NewServer(http.HandlerFunc(h.HandleWebSocket))
	t.Cleanup(srv.Close)
	return srv, h
}

func dial(t *testing.T, srv *httptest.Server, query string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + query
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func read(t *testing.T, conn *websocket.Conn) domain.ServerMessage {
	t.Helper()
	var msg domain.ServerMessage
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	require.NoError(t, conn.ReadJSON(&msg))
	return msg
}

func TestNewGameAndPlayToWin(t *testing.T) {
	srv, h := newTestServer(t)
	conn := dial(t, srv, "")

	require.NoError(t, conn.WriteJSON(domain.ClientMessage{
		Type:    "new_game",
		Player1: &domain.PlayerInput{Name: "Ada", Color: "green"},
	}))
	started := read(t, conn)
	require.Equal(t, "game_started", started.Type)
	require.NotNil(t, started.Game)
	assert.Equal(t, "Ada", started.Game.Players[0].Name)
	assert.Equal(t, "p2", started.Game.Players[1].Name)
	gameID := started.GameID
	assert.Equal(t, 1, h.ConnManager.WatcherCount(gameID))

	for _, col := range []int{0, 1, 0, 1, 0, 1} {
		require.NoError(t, conn.WriteJSON(domain.ClientMessage{Type: "make_move", Column: col}))
		msg := read(t, conn)
		require.Equal(t, "move_made", msg.Type)
		assert.Equal(t, domain.OutcomeContinue, msg.Result.Outcome)
	}

	require.NoError(t, conn.WriteJSON(domain.ClientMessage{Type: "make_move", Column: 0}))
	moved := read(t, conn)
	require.Equal(t, "move_made", moved.Type)
	assert.Equal(t, domain.OutcomeWin, moved.Result.Outcome)

	over := read(t, conn)
	require.Equal(t, "game_over", over.Type)
	assert.Equal(t, "Player Ada won!", over.Message)
	assert.Equal(t, domain.StatusWon, over.Game.Status)

	require.NoError(t, conn.WriteJSON(domain.ClientMessage{Type: "make_move", Column: 3}))
	rejected := read(t, conn)
	assert.Equal(t, "error", rejected.Type)
	assert.Equal(t, string(domain.ErrGameOver), rejected.Message)
}

func TestWatcherReceivesMoves(t *testing.T) {
	srv, h := newTestServer(t)
	session, err := h.GameService.StartGame(game.NewGameRequest{})
	require.NoError(t, err)

	player := dial(t, srv, "?gameId="+session.GameID)
	watcher := dial(t, srv, "?gameId="+session.GameID)

	assert.Equal(t, "game_state", read(t, player).Type)
	state := read(t, watcher)
	assert.Equal(t, "game_state", state.Type)
	assert.Equal(t, session.GameID, state.GameID)

	require.NoError(t, player.WriteJSON(domain.ClientMessage{Type: "make_move", Column: 4}))

	for _, conn := range []*websocket.Conn{player, watcher} {
		msg := read(t, conn)
		require.Equal(t, "move_made", msg.Type)
		assert.Equal(t, 5, msg.Result.Row)
		assert.Equal(t, 4, msg.Result.Column)
		assert.Equal(t, domain.Player2, msg.Game.CurrentPlayer.ID)
	}
}

func TestMoveErrors(t *testing.T) {
	srv, _ := newTestServer(t)
	conn := dial(t, srv, "")

	require.NoError(t, conn.WriteJSON(domain.ClientMessage{Type: "make_move", Column: 0}))
	assert.Equal(t, "no game joined", read(t, conn).Message)

	require.NoError(t, conn.WriteJSON(domain.ClientMessage{Type: "join_game", GameID: "missing"}))
	assert.Equal(t, string(game.ErrGameNotFound), read(t, conn).Message)

	require.NoError(t, conn.WriteJSON(domain.ClientMessage{Type: "new_game", Rows: 4, Columns: 4}))
	require.Equal(t, "game_started", read(t, conn).Type)

	for i := 0; i < 4; i++ {
		require.NoError(t, conn.WriteJSON(domain.ClientMessage{Type: "make_move", Column: 1}))
		require.Equal(t, "move_made", read(t, conn).Type)
	}
	require.NoError(t, conn.WriteJSON(domain.ClientMessage{Type: "make_move", Column: 1}))
	assert.Equal(t, string(domain.ErrColumnFull), read(t, conn).Message)

	require.NoError(t, conn.WriteJSON(domain.ClientMessage{Type: "make_move", Column: 8}))
	assert.Equal(t, string(domain.ErrInvalidColumn), read(t, conn).Message)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("{not json")))
	assert.Equal(t, "invalid message", read(t, conn).Message)

	require.NoError(t, conn.WriteJSON(domain.ClientMessage{Type: "dance"}))
	assert.Equal(t, "unknown message type", read(t, conn).Message)

	require.NoError(t, conn.WriteJSON(domain.ClientMessage{Type: "leave_game"}))
	assert.Equal(t, "game_left", read(t, conn).Type)
}

func TestOriginCheck(t *testing.T) {
	h := NewHandler(NewConnectionManager(), nil, func(origin string) bool {
		return origin == "https://ok.example"
	})

	allowed := httptest.NewRequest(http.MethodGet, "/ws", nil)
	allowed.Header.Set("Origin", "https://ok.example")
	assert.True(t, h.Upgrader.CheckOrigin(allowed))

	denied := httptest.NewRequest(http.MethodGet, "/ws", nil)
	denied.Header.Set("Origin", "https://evil.example")
	assert.False(t, h.Upgrader.CheckOrigin(denied))

	assert.True(t, h.Upgrader.CheckOrigin(httptest.NewRequest(http.MethodGet, "/ws", nil)))
}

func TestGameEvictedReleasesWatchers(t *testing.T) {
	srv, h := newTestServer(t)
	session, err := h.GameService.StartGame(game.NewGameRequest{})
	require.NoError(t, err)

	conn := dial(t, srv, "?gameId="+session.GameID)
	require.Equal(t, "game_state", read(t, conn).Type)
	require.Equal(t, 1, h.ConnManager.WatcherCount(session.GameID))

	h.ConnManager.GameEvicted(session.GameID)

	closed := read(t, conn)
	assert.Equal(t, "game_closed", closed.Type)
	assert.Equal(t, session.GameID, closed.GameID)
	assert.Equal(t, 0, h.ConnManager.WatcherCount(session.GameID))

	require.NoError(t, conn.WriteJSON(domain.ClientMessage{Type: "make_move", Column: 0}))
	assert.Equal(t, "no game joined", read(t, conn).Message)
}
