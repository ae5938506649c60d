package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/mrasdfdela/springboard-12-02-connect-four-oo/internal/config"
	"github.com/mrasdfdela/springboard-12-02-connect-four-oo/internal/service/cleanup"
	"github.com/mrasdfdela/springboard-12-02-connect-four-oo/internal/service/game"
	transportHttp "github.com/mrasdfdela/springboard-12-02-connect-four-oo/internal/transport/http"
	"github.com/mrasdfdela/springboard-12-02-connect-four-oo/internal/transport/websocket"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := config.LoadConfig()
	gin.SetMode(cfg.GinMode)

	// Services
	sessionManager := game.NewSessionManager()
	gameService := game.NewService(sessionManager, cfg)
	connManager := websocket.NewConnectionManager()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Background workers
	cleanupWorker := cleanup.NewWorker(sessionManager, connManager, cfg.CleanupInterval, cfg.SessionIdle, cfg.SessionFinished)
	go cleanupWorker.Start(ctx)

	router := transportHttp.NewRouter(cfg, gameService, connManager)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited gracefully")
}
