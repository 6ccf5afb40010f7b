package main

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/plankboard/plank/internal/config"
	"github.com/plankboard/plank/internal/logging"
	"github.com/plankboard/plank/internal/store"
	"github.com/plankboard/plank/internal/tui"
)

func main() {
	if err := logging.Init(); err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// The one store for the session; every view gets it by reference
	st := store.New()

	model := tui.InitialModel(st, cfg)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}
