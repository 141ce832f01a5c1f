package store

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/synthlab/crucible/internal/config"
	"github.com/synthlab/crucible/internal/core/model"
	"github.com/synthlab/crucible/internal/logger"
)

// GormStore implements Store on a gorm-managed database. Production runs
// Postgres; tests hand it an in-memory sqlite handle instead.
type GormStore struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPostgresStore(cfg config.DatabaseConfig, logg *logger.Logger) (*GormStore, error) {
	gormLog := gormLogger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		gormLogger.Config{
			SlowThreshold:             1 * time.Second,
			LogLevel:                  gormLogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: gormLog,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Postgres: %w", err)
	}

	return NewGormStore(db, logg)
}

// NewGormStore wraps an already-open gorm handle and runs migrations.
func NewGormStore(db *gorm.DB, logg *logger.Logger) (*GormStore, error) {
	if err := db.AutoMigrate(&model.Element{}, &model.Recipe{}, &model.PlayerProgress{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	return &GormStore{db: db, log: logg.With("component", "store")}, nil
}
