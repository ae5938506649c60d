package http

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/mrasdfdela/springboard-12-02-connect-four-oo/internal/config"
	"github.com/mrasdfdela/springboard-12-02-connect-four-oo/internal/service/game"
	"github.com/mrasdfdela/springboard-12-02-connect-four-oo/internal/transport/http/middleware"
	"github.com/mrasdfdela/springboard-12-02-connect-four-oo/internal/transport/websocket"
)

// NewRouter wires the REST API, the WebSocket endpoint and, when a ./static
// directory exists, the browser board.
func NewRouter(cfg *config.Config, gameService *game.Service, connManager *websocket.ConnectionManager) *gin.Engine {
	gameHandler := NewGameHandler(gameService, connManager)
	watchHandler := NewWatchHandler(gameService.Sessions, connManager)
	wsHandler := websocket.NewHandler(connManager, gameService, cfg.IsOriginAllowed)

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(cfg))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "games": gameService.Sessions.Count()})
	})

	api := router.Group("/api")
	{
		api.GET("/games", watchHandler.GetLiveGames)
		api.POST("/games", gameHandler.CreateGame)
		api.GET("/games/:id", gameHandler.GetGame)
		api.DELETE("/games/:id", gameHandler.DeleteGame)
		api.POST("/games/:id/moves", gameHandler.SubmitMove)
	}

	// WebSocket Route (origin checked by the upgrader)
	router.GET("/ws", gin.WrapF(wsHandler.HandleWebSocket))

	if _, err := os.Stat("./static"); err == nil {
		router.Static("/assets", "./static/assets")
		router.GET("/", func(c *gin.Context) {
			c.File("./static/index.html")
		})
	}

	return router
}
