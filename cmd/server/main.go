package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/synthlab/crucible/internal/server"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using defaults")
	}

	srv, cfg, err := server.Bootstrap(context.Background())
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}

	r := srv.SetupRouter()

	log.Printf("Starting server on port %s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatal(err)
	}
}
