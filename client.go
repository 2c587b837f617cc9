package pagedeck

import (
	"context"
	"sync"

	"github.com/pagedeck/pagedeck/internal/sources/github"
	"github.com/pagedeck/pagedeck/pkg/catalog"
	"github.com/pagedeck/pagedeck/pkg/config"
	"github.com/pagedeck/pagedeck/pkg/logging"
	"github.com/pagedeck/pagedeck/pkg/reconcile"
)

// Compile-time interface check to ensure proper implementation.
var _ Client = (*client)(nil)

// client is the internal implementation of the Client interface.
type client struct {
	options *options
	loader  *config.Loader
	source  RepositorySource
}

// New creates a new Client instance with the given options.
func New(opts ...Option) (Client, error) {
	options, err := newOptions(opts...)
	if err != nil {
		return nil, err
	}

	c := &client{
		options: options,
		loader:  options.loader,
		source:  options.source,
	}
	if c.loader == nil {
		c.loader = config.NewLoader(options.configPath)
	}
	if c.source == nil {
		var srcOpts []github.Option
		if options.httpClient != nil {
			srcOpts = append(srcOpts, github.WithHTTPClient(options.httpClient))
		}
		if options.token != "" {
			srcOpts = append(srcOpts, github.WithToken(options.token))
		}
		c.source = github.New(srcOpts...)
	}

	return c, nil
}

// Config returns the memoized deck configuration.
func (c *client) Config() *config.Config {
	return c.loader.Config()
}

// Account returns the account the deck is built for: the explicit option
// when given, else the configured username, else the built-in fallback.
func (c *client) Account() string {
	if c.options.account != "" {
		return c.options.account
	}
	return c.Config().Account()
}

// Deck fetches the repository list and profile concurrently, then reconciles
// them with the configuration. If the repository source fails, the deck
// degrades to the manual-only reconciliation with a synthesized profile
// rather than surfacing the error.
func (c *client) Deck(ctx context.Context) (*Deck, error) {
	cfg := c.Config()
	account := c.Account()
	log := logging.Ctx(ctx)

	var (
		wg      sync.WaitGroup
		repos   []catalog.Repository
		repoErr error

		profile    catalog.Profile
		profileErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		repos, repoErr = c.source.Repositories(ctx, account)
	}()
	go func() {
		defer wg.Done()
		profile, profileErr = c.source.Profile(ctx, account)
	}()
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if repoErr != nil || profileErr != nil {
		err := repoErr
		if err == nil {
			err = profileErr
		}
		log.Warn().
			Err(err).
			Str("account", account).
			Msg("Repository source unreachable, building manual-only deck")
		return &Deck{
			Profile:  catalog.FallbackProfile(account),
			Projects: reconcile.ManualOnly(cfg, account),
			Fallback: true,
		}, nil
	}

	projects := reconcile.Reconcile(repos, cfg, account)
	log.Info().
		Str("account", account).
		Int("repositories", len(repos)).
		Int("projects", len(projects)).
		Msg("Deck reconciled")

	return &Deck{
		Profile:  profile,
		Projects: projects,
	}, nil
}
