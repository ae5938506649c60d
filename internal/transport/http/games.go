package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mrasdfdela/springboard-12-02-connect-four-oo/internal/domain"
	"github.com/mrasdfdela/springboard-12-02-connect-four-oo/internal/service/game"
)

type GameHandler struct {
	GameService *game.Service
	Notifier    game.Notifier
}

func NewGameHandler(gs *game.Service, notifier game.Notifier) *GameHandler {
	return &GameHandler{GameService: gs, Notifier: notifier}
}

type moveRequest struct {
	Column *int `json:"column" binding:"required"`
}

type moveResponse struct {
	Result domain.MoveResult `json:"result"`
	Game   domain.Snapshot   `json:"game"`
}

// CreateGame starts a new hot-seat game. Missing fields fall back to config.
func (h *GameHandler) CreateGame(c *gin.Context) {
	var req game.NewGameRequest
	// an empty body, chunked or not, means all defaults
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	session, err := h.GameService.StartGame(req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, session.Snapshot())
}

func (h *GameHandler) GetGame(c *gin.Context) {
	session, err := h.GameService.Sessions.GetSession(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, session.Snapshot())
}

func (h *GameHandler) SubmitMove(c *gin.Context) {
	var req moveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "column is required"})
		return
	}

	result, snapshot, err := h.GameService.Sessions.SubmitMove(c.Param("id"), *req.Column, h.Notifier)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, moveResponse{Result: result, Game: snapshot})
}

func (h *GameHandler) DeleteGame(c *gin.Context) {
	if err := h.GameService.Sessions.RemoveSession(c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// writeError maps engine errors onto status codes.
func writeError(c *gin.Context, err error) {
	status, code := http.StatusInternalServerError, "internal_error"
	switch {
	case errors.Is(err, game.ErrGameNotFound):
		status, code = http.StatusNotFound, "game_not_found"
	case errors.Is(err, domain.ErrColumnFull):
		status, code = http.StatusConflict, "column_full"
	case errors.Is(err, domain.ErrGameOver):
		status, code = http.StatusConflict, "game_over"
	case errors.Is(err, domain.ErrInvalidColumn):
		status, code = http.StatusBadRequest, "invalid_column"
	case errors.Is(err, domain.ErrInvalidDimensions):
		status, code = http.StatusBadRequest, "invalid_dimensions"
	case errors.Is(err, domain.ErrInvalidPlayers):
		status, code = http.StatusBadRequest, "invalid_players"
	}
	c.JSON(status, gin.H{"error": code, "message": err.Error()})
}
