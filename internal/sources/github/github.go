// Package github implements the repository source against the GitHub REST
// API. It lists a user's public repositories, keeps the pages-hosting flag,
// and resolves the owner profile.
package github

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	gh "github.com/google/go-github/v82/github"
	"golang.org/x/oauth2"

	"github.com/pagedeck/pagedeck/pkg/catalog"
	"github.com/pagedeck/pagedeck/pkg/constants"
	"github.com/pagedeck/pagedeck/pkg/errors"
	"github.com/pagedeck/pagedeck/pkg/logging"
)

// Source fetches repository records and profiles from the GitHub API.
type Source struct {
	client *gh.Client
}

// Option configures a Source.
type Option func(*Source)

// WithToken authenticates API requests with a personal access token.
// Unauthenticated access works for public data but is rate limited harder.
// The current HTTP client stays in place as the transport underneath the
// token source, so injected clients and timeouts survive authentication.
func WithToken(token string) Option {
	return func(s *Source) {
		if token == "" {
			return
		}
		ctx := context.WithValue(context.Background(), oauth2.HTTPClient, s.client.Client())
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		s.client = gh.NewClient(oauth2.NewClient(ctx, ts))
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(s *Source) {
		s.client = gh.NewClient(httpClient)
	}
}

// WithBaseURL points the client at a different API endpoint, used in tests.
func WithBaseURL(base string) Option {
	return func(s *Source) {
		if !strings.HasSuffix(base, "/") {
			base += "/"
		}
		if u, err := url.Parse(base); err == nil {
			s.client.BaseURL = u
			s.client.UploadURL = u
		}
	}
}

// New creates a GitHub repository source.
func New(opts ...Option) *Source {
	httpClient := &http.Client{Timeout: constants.DefaultHTTPTimeout}
	s := &Source{client: gh.NewClient(httpClient)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Repositories lists all public repositories of the account, following
// pagination until exhausted. Failures are wrapped as API errors and
// propagated; the caller decides whether to fall back to manual-only mode.
func (s *Source) Repositories(ctx context.Context, account string) ([]catalog.Repository, error) {
	opts := &gh.RepositoryListByUserOptions{
		Type:        "owner",
		ListOptions: gh.ListOptions{PerPage: constants.DefaultPageSize},
	}

	var records []catalog.Repository
	for {
		repos, resp, err := s.client.Repositories.ListByUser(ctx, account, opts)
		if err != nil {
			return nil, wrapAPIError(account, resp, err)
		}
		for _, r := range repos {
			records = append(records, catalog.Repository{
				Name:        r.GetName(),
				Description: r.GetDescription(),
				HTMLURL:     r.GetHTMLURL(),
				HasPages:    r.GetHasPages(),
			})
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	logging.Ctx(ctx).Debug().
		Str("account", account).
		Int("repositories", len(records)).
		Msg("Listed repositories")
	return records, nil
}

// Profile resolves the account's profile record.
func (s *Source) Profile(ctx context.Context, account string) (catalog.Profile, error) {
	user, resp, err := s.client.Users.Get(ctx, account)
	if err != nil {
		return catalog.Profile{}, wrapAPIError(account, resp, err)
	}

	return catalog.Profile{
		Username:   user.GetLogin(),
		AvatarURL:  user.GetAvatarURL(),
		ProfileURL: user.GetHTMLURL(),
	}, nil
}

// wrapAPIError converts go-github failures into the shared APIError type,
// preserving the HTTP status when one was received.
func wrapAPIError(account string, resp *gh.Response, err error) error {
	status := 0
	if resp != nil && resp.Response != nil {
		status = resp.StatusCode
	}
	return errors.WrapAPI(account, status, err)
}
