package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"adrgrip/internal/config"
	"adrgrip/internal/domain"
	"adrgrip/internal/eventbus"
	"adrgrip/internal/loader"
	"adrgrip/internal/storage"
	"adrgrip/internal/store"
	"adrgrip/internal/ui"
)

func main() {
	// Parse command line arguments: each positional argument is a local
	// git clone whose ADRs should be loaded
	var statePath string
	flag.StringVar(&statePath, "state", "", "Path to the persisted editor state file")
	flag.Parse()

	// Load configuration
	configSvc := config.NewConfigService()
	cfg, err := configSvc.Load()
	if err != nil {
		log.Printf("Error loading config: %v", err)
		// Use default config
		cfg = config.DefaultConfig()
	}
	if statePath != "" {
		cfg.StatePath = statePath
	}

	// Set up logging
	if cfg.LogFile != "" {
		logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			log.Printf("Could not open log file: %v", err)
		} else {
			defer logFile.Close()
			log.SetOutput(logFile)
		}
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Create event bus and state store
	bus := eventbus.New()
	kv := storage.NewFileKV(cfg.StatePath)
	st := store.New(kv, bus)

	// Restore persisted state, then apply the configured default mode if
	// no mode was ever persisted
	st.Reload()
	if _, ok := kv.Get(storage.KeyMode); !ok {
		st.SetMode(cfg.Mode())
	}

	// Load the repositories named on the command line, skipping ones the
	// persisted state already holds
	if flag.NArg() > 0 {
		loaded := loader.New().LoadRepositories(ctx, flag.Args())

		known := make(map[string]bool)
		for _, r := range st.Repositories() {
			known[r.FullName] = true
		}
		var fresh []*domain.Repository
		for _, r := range loaded {
			if !known[r.FullName] {
				fresh = append(fresh, r)
			}
		}

		if len(fresh) > 0 {
			if err := st.AddRepositories(fresh); err != nil {
				log.Printf("Failed to add repositories: %v", err)
			}
		}
	}

	// Create UI model and Bubble Tea program
	uiModel := ui.NewModel(st, bus)
	p := tea.NewProgram(uiModel, tea.WithAltScreen())
	uiModel.SetProgram(p)

	// Run the UI
	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
