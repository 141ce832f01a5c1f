package server

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/synthlab/crucible/internal/config"
	"github.com/synthlab/crucible/internal/core/resolver"
	"github.com/synthlab/crucible/internal/core/synthesis"
	"github.com/synthlab/crucible/internal/llm"
	"github.com/synthlab/crucible/internal/logger"
	"github.com/synthlab/crucible/internal/store"
)

type Server struct {
	Resolver *resolver.Resolver
	Store    store.Store
	log      *logger.Logger
}

func New(res *resolver.Resolver, st store.Store, logg *logger.Logger) *Server {
	return &Server{
		Resolver: res,
		Store:    st,
		log:      logg.With("component", "server"),
	}
}

// Bootstrap wires the full production stack from config plus env overrides.
func Bootstrap(ctx context.Context) (*Server, *config.Config, error) {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.toml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Printf("Could not load %s: %v. Falling back to defaults", cfgPath, err)
		cfg = config.Default()
	}
	applyEnvOverrides(cfg)

	logg, err := logger.New(cfg.Server.LogMode)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	st, err := store.NewPostgresStore(cfg.Database, logg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize store: %w", err)
	}
	if err := st.SeedStarters(ctx); err != nil {
		return nil, nil, fmt.Errorf("failed to seed starters: %w", err)
	}

	llmClient, err := llm.NewClient(ctx, cfg.LLM)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize LLM client: %w", err)
	}

	synth := synthesis.NewSynthesizer(llmClient, cfg.Synthesis.Prompt)
	res := resolver.NewResolver(st, synth, logg)

	return New(res, st, logg), cfg, nil
}

func applyEnvOverrides(cfg *config.Config) {
	if v := os.Getenv("LLM_PROVIDER"); v != "" {
		cfg.LLM.Provider = v
	}
	if v := os.Getenv("LLM_MODEL"); v != "" {
		cfg.LLM.Model = v
	}
	if v := os.Getenv("LLM_API_KEY"); v != "" {
		cfg.LLM.APIKey = v
	}
	if v := os.Getenv("LLM_BASE_URL"); v != "" {
		cfg.LLM.BaseURL = v
	}
	if v := os.Getenv("DATABASE_HOST"); v != "" {
		cfg.Database.Host = v
	}
	if v := os.Getenv("DATABASE_PORT"); v != "" {
		cfg.Database.Port = v
	}
	if v := os.Getenv("DATABASE_USER"); v != "" {
		cfg.Database.User = v
	}
	if v := os.Getenv("DATABASE_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("DATABASE_NAME"); v != "" {
		cfg.Database.Name = v
	}
	if v := os.Getenv("PORT"); v != "" {
		cfg.Server.Port = v
	}

	// Default to Gemini, the model the game launched on.
	if cfg.LLM.Provider == "" {
		cfg.LLM.Provider = "gemini"
		cfg.LLM.Model = "gemini-2.0-flash-lite"
	}
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()

	r.POST("/combine", s.Combine)
	r.GET("/elements/starters", s.Starters)
	r.GET("/elements/:id", s.GetElement)
	r.POST("/progress", s.SaveProgress)
	r.GET("/progress/:player_id", s.GetProgress)

	return r
}
