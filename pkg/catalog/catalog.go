// Package catalog defines the core data types of the pagedeck system: the
// repository records discovered from the hosting API, the project tiles
// produced by reconciliation, and the owner profile shown alongside them.
package catalog

// Repository is a source-control repository as reported by the hosting API.
// Records are immutable once fetched; one set is retrieved per account per run.
type Repository struct {
	// Name uniquely identifies the repository within its account.
	Name string `json:"name"`

	// Description is the repository description, empty when unset.
	Description string `json:"description,omitempty"`

	// HTMLURL is the canonical repository home page.
	HTMLURL string `json:"html_url"`

	// HasPages reports whether the pages-hosting feature is enabled.
	HasPages bool `json:"has_pages"`
}

// Project is a single tile in the reconciled deck. It is the only entity
// handed to the presentation layer.
type Project struct {
	// Name is the display name of the tile.
	Name string `json:"name"`

	// Description is the tile description, empty when none is known.
	Description string `json:"description"`

	// URL is the destination the tile links to.
	URL string `json:"url"`

	// RepoURL links to the source code. Empty means no source link is shown.
	RepoURL string `json:"repo_url,omitempty"`

	// Thumbnail is an optional image reference for the tile.
	Thumbnail string `json:"thumbnail,omitempty"`

	// AutoDiscovered records whether the project came from the repository
	// source (true) or from a manual configuration entry (false).
	AutoDiscovered bool `json:"auto_discovered"`
}

// Profile is the normalized account profile consumed by presentation.
type Profile struct {
	Username   string `json:"username"`
	AvatarURL  string `json:"avatar_url"`
	ProfileURL string `json:"profile_url"`
}
