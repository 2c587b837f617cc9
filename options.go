package pagedeck

import (
	"net/http"

	"github.com/pagedeck/pagedeck/pkg/config"
)

// options holds the resolved client configuration.
type options struct {
	account    string
	token      string
	configPath string
	loader     *config.Loader
	source     RepositorySource
	httpClient *http.Client
}

// Option is a function that configures a Client.
type Option func(*options) error

// newOptions applies the given options over the defaults.
func newOptions(opts ...Option) (*options, error) {
	o := &options{}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// WithAccount overrides the account to aggregate, taking precedence over the
// username in the deck configuration.
func WithAccount(account string) Option {
	return func(o *options) error {
		o.account = account
		return nil
	}
}

// WithToken authenticates GitHub API requests with a personal access token.
func WithToken(token string) Option {
	return func(o *options) error {
		o.token = token
		return nil
	}
}

// WithConfigPath sets the deck configuration file to load.
func WithConfigPath(path string) Option {
	return func(o *options) error {
		o.configPath = path
		return nil
	}
}

// WithConfigLoader injects a pre-built configuration loader, sharing its
// memoized configuration with other consumers.
func WithConfigLoader(loader *config.Loader) Option {
	return func(o *options) error {
		o.loader = loader
		return nil
	}
}

// WithRepositorySource replaces the GitHub-backed repository source.
func WithRepositorySource(source RepositorySource) Option {
	return func(o *options) error {
		o.source = source
		return nil
	}
}

// WithHTTPClient sets the HTTP client used for API requests when no explicit
// repository source is provided.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(o *options) error {
		o.httpClient = httpClient
		return nil
	}
}
