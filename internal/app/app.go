package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gdrivehub/YTLinkerBot/internal/config"
	"github.com/gdrivehub/YTLinkerBot/internal/drivers/database"
	"github.com/gdrivehub/YTLinkerBot/internal/drivers/rdb"
	"github.com/gdrivehub/YTLinkerBot/internal/extract"
	"github.com/gdrivehub/YTLinkerBot/internal/filters"
	"github.com/gdrivehub/YTLinkerBot/internal/handlers/links"
	"github.com/gdrivehub/YTLinkerBot/internal/handlers/misc"
	"github.com/gdrivehub/YTLinkerBot/internal/integrations/yt"
	"github.com/gdrivehub/YTLinkerBot/internal/middlewares"
	"github.com/gdrivehub/YTLinkerBot/internal/repositories/history"
)

type App struct {
	config  *config.Config
	server  *http.Server
	mw      *middlewares.Service
	links   *links.Service
	misc    *misc.Service
	cleanup func() error
}

// New wires up the whole app and returns it along
// with a cleanup function for the graceful shutdown
func New(ctx context.Context) (*App, error) {

	cfg := config.New()

	// Connect to Postgres
	db, err := database.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create DB service; %w", err)
	}

	// Connect to Redis
	cache, err := rdb.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create Redis service; %w", err)
	}

	// Create the YouTube client
	ytService, err := yt.New(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service; %w", err)
	}

	// Core services
	pipeline := extract.New(cfg, cache, ytService)
	filterStore := filters.New(cfg)
	historyRepo := history.New(db)

	// HTTP surface
	mw := middlewares.New(cfg)
	linksService := links.New(cfg, filterStore, pipeline, historyRepo)
	miscService := misc.New(cfg, db, cache)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.FetchTimeout + 5*time.Second,
		IdleTimeout:  time.Minute,
	}

	cleanup := func() error {
		db.Close()
		return errors.Join(cache.Client.Close())
	}

	return &App{
		config:  cfg,
		server:  server,
		mw:      mw,
		links:   linksService,
		misc:    miscService,
		cleanup: cleanup,
	}, nil
}
