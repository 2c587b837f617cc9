package config

import (
	"os"
	"sync"

	"github.com/pagedeck/pagedeck/pkg/constants"
	"github.com/pagedeck/pagedeck/pkg/logging"
)

// Loader loads the deck configuration at most once per process and memoizes
// the result. A missing or malformed document is recovered locally by
// substituting Default; Config never fails.
type Loader struct {
	path string
	once sync.Once
	cfg  *Config
}

// NewLoader creates a loader for the given configuration file path. An empty
// path uses the default file in the working directory.
func NewLoader(path string) *Loader {
	if path == "" {
		path = constants.DefaultConfigFile
	}
	return &Loader{path: path}
}

// Path returns the configuration file path this loader reads.
func (l *Loader) Path() string {
	return l.path
}

// Config returns the loaded configuration. The first call reads and parses
// the file; subsequent calls return the cached result.
func (l *Loader) Config() *Config {
	l.once.Do(func() {
		l.cfg = l.load()
	})
	return l.cfg
}

func (l *Loader) load() *Config {
	data, err := os.ReadFile(l.path)
	if err != nil {
		logging.Warn().
			Str("path", l.path).
			Err(err).
			Msg("Deck configuration not readable, using defaults")
		return Default()
	}

	cfg, err := Parse(data)
	if err != nil {
		logging.Warn().
			Str("path", l.path).
			Err(err).
			Msg("Deck configuration malformed, using defaults")
		return Default()
	}

	logging.Debug().
		Str("path", l.path).
		Str("account", cfg.Account()).
		Int("manual_entries", len(cfg.Projects)).
		Msg("Deck configuration loaded")
	return cfg
}
