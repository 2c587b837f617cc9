// Package constants provides shared constants used throughout the pagedeck codebase.
// This includes timeouts, limits, file permissions, and default values that
// should be consistent across the application.
package constants

import "time"

// Timeout constants define various timeout durations used in the application
const (
	// DefaultHTTPTimeout is the standard timeout for HTTP requests to the GitHub API
	DefaultHTTPTimeout = 30 * time.Second

	// ServerReadHeaderTimeout bounds how long the preview server waits for
	// request headers
	ServerReadHeaderTimeout = 10 * time.Second

	// ServerShutdownTimeout is the grace period for the preview server to drain
	ServerShutdownTimeout = 5 * time.Second
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Limit constants define various limits and capacities
const (
	// DefaultPageSize is the number of repositories requested per GitHub API page
	DefaultPageSize = 100
)

// Default configuration values
const (
	// DefaultAccount is the fallback GitHub account when no username is configured
	DefaultAccount = "octocat"

	// DefaultConfigFile is the deck configuration file looked up in the working directory
	DefaultConfigFile = "pagedeck.yaml"

	// DefaultOutputDir is where the generated site is written
	DefaultOutputDir = "public"

	// DefaultServePort is the port used by the preview server
	DefaultServePort = 8080

	// UntitledProject is the display name for manual entries with no name or repo
	UntitledProject = "Untitled"

	// PlaceholderURL is the tile destination when no URL can be derived
	PlaceholderURL = "#"
)
