package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jsutton/marquee/internal/adapter"
	"github.com/jsutton/marquee/internal/catalog"
	"github.com/jsutton/marquee/internal/favorites"
	"github.com/jsutton/marquee/internal/provider/tmdb"
	"github.com/jsutton/marquee/internal/session"
	"github.com/jsutton/marquee/internal/store"
	"github.com/jsutton/marquee/internal/tui"
	"golang.org/x/term"
)

// Version is set at build time via -ldflags
var Version = "dev"

func main() {
	var showVersion bool
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.Parse()

	if showVersion {
		fmt.Printf("marquee %s\n", Version)
		return
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := adapter.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := adapter.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = adapter.NullLogger()
	}
	slog.SetDefault(logger)

	logger.Info("starting marquee", "version", Version)

	if !cfg.IsConfigured() {
		return runSetupFlow(cfg)
	}

	// Durable local storage for the session identity
	repo, err := store.OpenBoltRepository(cfg.Session.DataDir)
	if err != nil {
		return fmt.Errorf("failed to open session storage: %w", err)
	}
	defer repo.Close()

	// Stores are constructed once here and passed by reference to the
	// view layer; there is no ambient global lookup.
	provider := tmdb.NewClient(cfg.Provider.BaseURL, cfg.Provider.APIKey, logger)
	sessionStore := session.NewStore(repo, cfg.Session.LoginDelay, logger)
	catalogStore := catalog.NewStore(provider, logger)
	favoriteStore := favorites.NewStore()

	// Resume a previous session if one was persisted
	sessionStore.Restore()

	model := tui.NewModel(sessionStore, catalogStore, favoriteStore)

	p := tea.NewProgram(model, tea.WithAltScreen())

	logger.Info("starting TUI")

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}

// runSetupFlow prompts for the provider API key on first run
func runSetupFlow(cfg *adapter.Config) error {
	fmt.Println()
	fmt.Println("Welcome to Marquee!")
	fmt.Println()
	fmt.Println("Marquee needs a TMDB API key (https://www.themoviedb.org/settings/api).")
	fmt.Println()

	// Hidden input: the key is a credential
	fmt.Print("API key: ")
	keyBytes, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return fmt.Errorf("failed to read API key: %w", err)
	}

	apiKey := strings.TrimSpace(string(keyBytes))
	if apiKey == "" {
		return fmt.Errorf("no API key provided")
	}

	cfg.Provider.APIKey = apiKey
	if err := adapter.SaveConfig(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Println()
	fmt.Println("✓ Configuration saved!")
	fmt.Println()
	fmt.Println("Run marquee again to start browsing.")

	return nil
}
