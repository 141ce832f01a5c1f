// Seeds the four starter elements into the configured database. The server
// does this on boot as well; this command exists for provisioning a database
// ahead of the first deploy.
package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/synthlab/crucible/internal/config"
	"github.com/synthlab/crucible/internal/logger"
	"github.com/synthlab/crucible/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using defaults")
	}

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.toml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Printf("Could not load %s: %v. Falling back to defaults", cfgPath, err)
		cfg = config.Default()
	}

	logg, err := logger.New(cfg.Server.LogMode)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logg.Sync()

	st, err := store.NewPostgresStore(cfg.Database, logg)
	if err != nil {
		logg.Fatal("failed to connect to database", "error", err)
	}

	if err := st.SeedStarters(context.Background()); err != nil {
		logg.Fatal("failed to seed starter elements", "error", err)
	}

	logg.Info("starter elements seeded", "count", len(store.Starters()))
}
