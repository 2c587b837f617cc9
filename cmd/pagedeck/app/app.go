// Package app provides the application context and dependency management for
// the pagedeck CLI. It centralizes configuration, logging, and construction
// of the pagedeck client.
package app

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/pagedeck/pagedeck"
)

// App represents the pagedeck application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// Pagedeck client (lazy-initialized, singleton)
	mu     sync.Mutex
	client pagedeck.Client
}

// New creates a new App instance with the given version information.
func New(version, commit, date string) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// Client returns the pagedeck client, creating it lazily.
func (a *App) Client() (pagedeck.Client, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.client != nil {
		return a.client, nil
	}

	client, err := pagedeck.New(
		pagedeck.WithConfigPath(a.config.DeckFile),
		pagedeck.WithAccount(a.config.Account),
		pagedeck.WithToken(a.config.Token),
	)
	if err != nil {
		return nil, err
	}
	a.client = client
	return client, nil
}
