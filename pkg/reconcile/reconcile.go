// Package reconcile implements the deterministic merge of auto-discovered
// repositories and manually configured entries into a single ordered project
// deck. Reconciliation is a pure function of its inputs: no I/O, no errors,
// and byte-identical output for identical input.
package reconcile

import (
	"github.com/pagedeck/pagedeck/pkg/catalog"
	"github.com/pagedeck/pagedeck/pkg/config"
	"github.com/pagedeck/pagedeck/pkg/constants"
)

// Reconcile merges the repository records with the deck configuration.
//
// Auto-discovered branch: repositories with pages hosting enabled, minus
// excluded names and names redirected to the manual branch by an entry with
// its own destination URL. Surviving repositories take per-field overrides
// from a matching entry. Manual branch: every configured entry materializes
// into its own project, independent of the auto-discovered branch. An entry
// that only overrides fields (no destination URL) therefore contributes a
// second tile on top of the overridden auto-discovered one; that is the
// documented behavior of the system, preserved here verbatim.
//
// The concatenated result is sorted by the deck comparator.
func Reconcile(repos []catalog.Repository, cfg *config.Config, account string) []catalog.Project {
	projects := make([]catalog.Project, 0, len(repos)+len(cfg.Projects))

	for _, repo := range repos {
		if !repo.HasPages {
			continue
		}
		if cfg.Excluded(repo.Name) || redirected(cfg, repo.Name) {
			continue
		}

		p := catalog.Project{
			Name:           repo.Name,
			Description:    repo.Description,
			URL:            catalog.PagesURL(account, repo.Name),
			RepoURL:        repo.HTMLURL,
			AutoDiscovered: true,
		}
		if entry := cfg.Entry(repo.Name); entry != nil {
			applyOverrides(&p, entry)
		}
		projects = append(projects, p)
	}

	for i := range cfg.Projects {
		projects = append(projects, materialize(&cfg.Projects[i], account))
	}

	Sort(projects, cfg)
	return projects
}

// ManualOnly builds the deck from the configured entries alone, for when the
// repository source is unreachable. Field rules match the manual branch of
// Reconcile except that a missing destination URL falls back to the pages
// address of the referenced repository, or to a placeholder link.
func ManualOnly(cfg *config.Config, account string) []catalog.Project {
	projects := make([]catalog.Project, 0, len(cfg.Projects))

	for i := range cfg.Projects {
		entry := &cfg.Projects[i]
		p := materialize(entry, account)
		if p.URL == "" {
			if entry.Repo != "" {
				p.URL = catalog.PagesURL(account, entry.Repo)
			} else {
				p.URL = constants.PlaceholderURL
			}
		}
		projects = append(projects, p)
	}

	Sort(projects, cfg)
	return projects
}

// redirected reports whether a repository is represented via the manual
// branch instead: an entry references it and supplies its own destination.
func redirected(cfg *config.Config, name string) bool {
	entry := cfg.Entry(name)
	return entry != nil && entry.URL != ""
}

// applyOverrides replaces auto-discovered fields with the entry's non-empty
// values. The source link is never overridden here; only the explicit manual
// path controls it.
func applyOverrides(p *catalog.Project, entry *config.Entry) {
	if entry.Name != "" {
		p.Name = entry.Name
	}
	if entry.Description != "" {
		p.Description = entry.Description
	}
	if entry.URL != "" {
		p.URL = entry.URL
	}
	if entry.Thumbnail != "" {
		p.Thumbnail = entry.Thumbnail
	}
}

// materialize converts a configured entry into a project of its own.
func materialize(entry *config.Entry, account string) catalog.Project {
	name := entry.DisplayName()
	if name == "" {
		name = constants.UntitledProject
	}
	return catalog.Project{
		Name:        name,
		Description: entry.Description,
		URL:         entry.URL,
		RepoURL:     manualRepoURL(entry, account),
		Thumbnail:   entry.Thumbnail,
	}
}

// manualRepoURL resolves the source link of a manual project. An explicit
// repoUrl wins verbatim, where explicit null means no link at all; otherwise
// the canonical address is synthesized from the referenced repository.
func manualRepoURL(entry *config.Entry, account string) string {
	if entry.HasRepoURL() {
		if entry.RepoURL != nil {
			return *entry.RepoURL
		}
		return ""
	}
	if entry.Repo != "" {
		return catalog.RepoURL(account, entry.Repo)
	}
	return ""
}
