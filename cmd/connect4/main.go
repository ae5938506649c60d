package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/mrasdfdela/springboard-12-02-connect-four-oo/internal/config"
	"github.com/mrasdfdela/springboard-12-02-connect-four-oo/internal/domain"
	"github.com/mrasdfdela/springboard-12-02-connect-four-oo/internal/transport/terminal"
)

func main() {
	// player names and colors can come from a local .env
	_ = godotenv.Load()

	cfg := config.LoadConfig()

	g, err := domain.NewGame(cfg.BoardRows, cfg.BoardColumns,
		domain.NewPlayer(domain.Player1, cfg.Player1.Name, cfg.Player1.Color),
		domain.NewPlayer(domain.Player2, cfg.Player2.Name, cfg.Player2.Color))
	if err != nil {
		log.Fatalf("Cannot start game: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := terminal.Play(ctx, os.Stdin, os.Stdout, g); err != nil {
		log.Fatalf("Game aborted: %v", err)
	}
}
