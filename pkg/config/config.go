// Package config loads and models the deck configuration: the account to
// scan, repositories to exclude, the preferred display order, and manually
// authored project entries. The configuration is a human-editable YAML
// document; an absent or malformed document degrades to built-in defaults
// rather than failing the caller.
package config

import (
	"bytes"
	"slices"

	"github.com/goccy/go-yaml"

	"github.com/pagedeck/pagedeck/pkg/constants"
	"github.com/pagedeck/pagedeck/pkg/errors"
)

// Config is the parsed deck configuration. It is loaded once per process and
// read-only afterwards.
type Config struct {
	// Username is the account whose pages projects are aggregated.
	Username string `yaml:"username" json:"username"`

	// Exclude lists repository names omitted from auto-discovery.
	Exclude []string `yaml:"exclude" json:"exclude,omitempty"`

	// Order ranks display names; names listed earlier sort earlier.
	Order []string `yaml:"order" json:"order,omitempty"`

	// Projects are the manually authored entries.
	Projects []Entry `yaml:"projects" json:"projects,omitempty"`
}

// Default returns the built-in configuration used when no document is
// available: the fallback account and empty lists.
func Default() *Config {
	return &Config{
		Username: constants.DefaultAccount,
		Exclude:  []string{},
		Order:    []string{},
		Projects: []Entry{},
	}
}

// Parse decodes a YAML document into a Config. Missing keys keep their zero
// values; an empty username falls back to the built-in account via Account.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if len(bytes.TrimSpace(data)) == 0 {
		cfg.normalize()
		return &cfg, nil
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.WrapParse("yaml", "", err)
	}
	cfg.normalize()
	return &cfg, nil
}

// Account returns the configured username, or the built-in fallback account
// when none is set.
func (c *Config) Account() string {
	if c.Username == "" {
		return constants.DefaultAccount
	}
	return c.Username
}

// Excluded reports whether a repository name is excluded from auto-discovery.
func (c *Config) Excluded(name string) bool {
	return slices.Contains(c.Exclude, name)
}

// OrderIndex returns the position of a display name in the order list,
// or -1 when the name is not ranked.
func (c *Config) OrderIndex(name string) int {
	return slices.Index(c.Order, name)
}

// Entry returns the manual entry referencing the given repository name,
// or nil when no entry references it.
func (c *Config) Entry(repo string) *Entry {
	if repo == "" {
		return nil
	}
	for i := range c.Projects {
		if c.Projects[i].Repo == repo {
			return &c.Projects[i]
		}
	}
	return nil
}

// normalize replaces nil slices so downstream code can range without checks.
func (c *Config) normalize() {
	if c.Exclude == nil {
		c.Exclude = []string{}
	}
	if c.Order == nil {
		c.Order = []string{}
	}
	if c.Projects == nil {
		c.Projects = []Entry{}
	}
}
