package cli

import (
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/devbush/cueline/internal/adapters/clipboard"
	"github.com/devbush/cueline/internal/adapters/file"
	"github.com/devbush/cueline/internal/config"
	"github.com/devbush/cueline/internal/ports"
)

// App holds all application dependencies
type App struct {
	Config    *config.Config
	Projects  ports.ProjectStore
	Clipboard ports.Clipboard
	Log       zerolog.Logger

	logFile *os.File
}

// NewApp creates and wires up all dependencies
func NewApp() (*App, error) {
	// Ensure directories exist
	if err := config.EnsureDirs(); err != nil {
		return nil, err
	}

	// Load config
	cfg, err := config.LoadDefault()
	if err != nil {
		return nil, err
	}

	// The TUI owns stdout, so the session log goes to a file.
	var logOut io.Writer = io.Discard
	logFile, err := os.OpenFile(config.LogPath(), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err == nil {
		logOut = logFile
	}

	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(logOut).Level(level).With().Timestamp().Logger()

	return &App{
		Config:    cfg,
		Projects:  file.NewStore(),
		Clipboard: clipboard.NewSystem(),
		Log:       logger,
		logFile:   logFile,
	}, nil
}

// Close releases app resources
func (a *App) Close() {
	if a.logFile != nil {
		a.logFile.Close()
	}
}

var globalApp *App

// GetApp returns the global app instance, creating it if needed
func GetApp() (*App, error) {
	if globalApp == nil {
		app, err := NewApp()
		if err != nil {
			return nil, err
		}
		globalApp = app
	}
	return globalApp, nil
}
