package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mrasdfdela/springboard-12-02-connect-four-oo/internal/domain"
	"github.com/mrasdfdela/springboard-12-02-connect-four-oo/internal/service/game"
)

type WatcherCounter interface {
	WatcherCount(gameID string) int
}

type WatchHandler struct {
	SessionManager *game.SessionManager
	Watchers       WatcherCounter
}

func NewWatchHandler(sm *game.SessionManager, watchers WatcherCounter) *WatchHandler {
	return &WatchHandler{SessionManager: sm, Watchers: watchers}
}

type liveGameResponse struct {
	GameID       string            `json:"gameId"`
	Player1      domain.Player     `json:"player1"`
	Player2      domain.Player     `json:"player2"`
	Status       domain.GameStatus `json:"status"`
	WatcherCount int               `json:"watcherCount"`
	MoveCount    int               `json:"moveCount"`
}

// GetLiveGames lists every game currently held in memory
func (h *WatchHandler) GetLiveGames(c *gin.Context) {
	games := h.SessionManager.ListSessions()

	response := make([]liveGameResponse, 0, len(games))
	for _, g := range games {
		watchers := 0
		if h.Watchers != nil {
			watchers = h.Watchers.WatcherCount(g.GameID)
		}
		response = append(response, liveGameResponse{
			GameID:       g.GameID,
			Player1:      g.Players[0],
			Player2:      g.Players[1],
			Status:       g.Status,
			WatcherCount: watchers,
			MoveCount:    g.MoveCount,
		})
	}

	c.JSON(http.StatusOK, response)
}
