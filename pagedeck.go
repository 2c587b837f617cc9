// Package pagedeck aggregates a user's publicly hosted pages projects into a
// single browsable deck. It queries the GitHub API for the account's
// repositories, keeps those with pages hosting enabled, merges that
// auto-discovered set with the hand-authored deck configuration (overrides,
// exclusions, manual entries, ordering), and exposes the result as one
// deterministically ordered project list plus the owner profile.
//
// Example usage:
//
//	client, err := pagedeck.New(
//	    pagedeck.WithConfigPath("pagedeck.yaml"),
//	    pagedeck.WithToken(os.Getenv("GITHUB_TOKEN")),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	deck, err := client.Deck(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, project := range deck.Projects {
//	    fmt.Printf("%s -> %s\n", project.Name, project.URL)
//	}
//
// When the repository source is unreachable the deck degrades to the
// manually configured entries and a profile synthesized from the account
// name, so a deck is always produced.
package pagedeck

import (
	"context"

	"github.com/pagedeck/pagedeck/pkg/catalog"
	"github.com/pagedeck/pagedeck/pkg/config"
)

// Deck is the reconciled output: the ordered project list and the owner
// profile consumed by presentation.
type Deck struct {
	// Profile is the account profile, possibly synthesized in fallback mode.
	Profile catalog.Profile `json:"profile"`

	// Projects is the ordered, reconciled project list.
	Projects []catalog.Project `json:"projects"`

	// Fallback reports that the repository source was unreachable and the
	// deck contains manually configured entries only.
	Fallback bool `json:"fallback,omitempty"`
}

// RepositorySource lists repositories and resolves profiles for an account.
// Implementations may fail with network or API errors; the client recovers
// by reconciling in manual-only mode.
type RepositorySource interface {
	Repositories(ctx context.Context, account string) ([]catalog.Repository, error)
	Profile(ctx context.Context, account string) (catalog.Profile, error)
}

// Client produces reconciled decks for a configured account.
type Client interface {
	// Deck fetches, reconciles and orders the project deck.
	Deck(ctx context.Context) (*Deck, error)

	// Config returns the memoized deck configuration.
	Config() *config.Config

	// Account returns the account the deck is built for.
	Account() string
}
