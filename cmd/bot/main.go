package main

import (
	"context"
	"log"

	"github.com/gdrivehub/YTLinkerBot/internal/app"

	"github.com/joho/godotenv"
)

func main() {

	// Load the env vars from an .env file if present,
	// in production everything comes from the environment
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded; %v", err)
	}

	// Wire up the app
	bot, err := app.New(context.Background())
	if err != nil {
		log.Fatalf("failed to create the app: %v", err)
	}

	// Register the routes and serve
	if err := bot.RegisterRoutes().Run(); err != nil {
		log.Fatalf("http server error: %v", err)
	}
}
