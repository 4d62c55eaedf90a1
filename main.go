package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"tallyho/internal/board"
	"tallyho/internal/config"
	"tallyho/internal/eventbus"
	"tallyho/internal/storage"
	"tallyho/internal/ui"
)

func main() {
	// Parse command line arguments
	var dataDir string
	var configPath string
	var logPath string
	flag.StringVar(&dataDir, "data", "", "Board storage directory (overrides config)")
	flag.StringVar(&configPath, "config", "", "Path to the config file")
	flag.StringVar(&logPath, "log", "", "Log file path (overrides config)")
	flag.Parse()

	// Create event bus
	bus := eventbus.New()

	// Load configuration, writing a default file on first run
	configSvc := config.NewConfigServiceWithBus(bus)
	cfg, cfgPath := loadOrCreateConfig(configSvc, configPath)

	// Set up logging
	if logPath == "" {
		logPath = cfg.LogFile
	}
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}
	log.Printf("Using config at %s", cfgPath)

	// Resolve the board storage directory
	if dataDir == "" {
		dataDir, err = cfg.ResolveDataDir()
		if err != nil {
			fmt.Printf("Error resolving data dir: %v\n", err)
			os.Exit(1)
		}
	}
	log.Printf("Board storage at %s", dataDir)

	// Create the board store
	store := board.NewStore(storage.NewDisk(dataDir), bus)

	// Create UI model
	m := ui.NewModel(bus, cfg, store)

	// Seed dimensions so the first frame renders before any WindowSizeMsg
	if fd := int(os.Stdout.Fd()); term.IsTerminal(fd) {
		if width, height, err := term.GetSize(fd); err == nil {
			m.SetSize(width, height)
		}
	}

	// Create Bubble Tea program
	p := tea.NewProgram(m, tea.WithAltScreen())
	m.SetProgram(p)

	// Forward bus events to the UI through a buffered channel
	eventChan := make(chan eventbus.DomainEvent, 100)
	forwardEvent := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.Println("Event channel full, dropping event")
		}
	}
	bus.Subscribe(eventbus.EventBoardLoaded, forwardEvent)
	bus.Subscribe(eventbus.EventError, forwardEvent)

	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	// Load the board; the loaded event is queued until the program starts
	store.Load()

	// Marker for the e2e driver, printed before the alternate screen starts
	if os.Getenv("TALLYHO_E2E_TEST") != "" {
		fmt.Println("__READY__")
	}

	// Run the UI
	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Printf("UI exited normally")

	// Cleanup
	close(eventChan)
	bus.Close()
}

// loadOrCreateConfig loads the config file, writing a default one on first run.
// A config that exists but fails to parse is fatal rather than overwritten.
func loadOrCreateConfig(configSvc config.ConfigService, override string) (*config.Config, string) {
	path := override
	if path == "" {
		path = configSvc.Path()
	}

	if _, err := os.Stat(path); err == nil {
		cfg, err := configSvc.LoadFromPath(path)
		if err != nil {
			fmt.Printf("Error loading config %s: %v\n", path, err)
			os.Exit(1)
		}
		return cfg, path
	}

	// First run: persist the defaults so the file is there to edit
	cfg := config.DefaultConfig()
	if err := configSvc.SaveToPath(cfg, path); err != nil {
		fmt.Printf("Warning: could not write config %s: %v\n", path, err)
	}
	return cfg, path
}
