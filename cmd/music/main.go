package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/1hanchen1/music/internal/cache"
	"github.com/1hanchen1/music/internal/config"
	"github.com/1hanchen1/music/internal/log"
	"github.com/1hanchen1/music/internal/musicsource"
	"github.com/1hanchen1/music/internal/player"
	"github.com/1hanchen1/music/internal/service"
	"github.com/1hanchen1/music/internal/store"
	"github.com/1hanchen1/music/internal/tui"
)

// Version is set at build time via -ldflags
var Version = "dev"

func main() {
	var showVersion bool
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.Parse()

	if showVersion {
		fmt.Printf("music %s\n", Version)
		return
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := log.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = log.NullLogger()
	}
	slog.SetDefault(logger)

	logger.Info("starting music", "version", Version)

	// "-" selects a memory-only cache store
	cacheDir := cfg.Cache.Dir
	if cacheDir == "-" {
		cacheDir = ""
	}
	docStore, err := store.NewDocumentStore(cacheDir)
	if err != nil {
		return fmt.Errorf("failed to open cache store: %w", err)
	}
	defer docStore.Close()

	cacheMgr := cache.NewManager(docStore, cache.Options{
		MaxEntries: cfg.Cache.MaxEntries,
		TTL:        time.Duration(cfg.Cache.ExpireHours) * time.Hour,
		Logger:     logger,
	})

	sources, err := musicsource.NewAll(&cfg.Sources, logger)
	if err != nil {
		return fmt.Errorf("failed to configure music sources: %w", err)
	}

	searchSvc := service.NewSearchService(sources, cacheMgr, cfg.Sources.Timeout(), logger)
	launcher := player.NewLauncher(cfg.Player.Command, cfg.Player.Args, logger)

	model := tui.NewModel(searchSvc, cacheMgr, launcher, cfg.UI.Theme, logger)

	p := tea.NewProgram(model, tea.WithAltScreen())

	logger.Info("starting TUI")

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}
