package config

import "github.com/goccy/go-yaml"

// Entry is one manually authored project in the configuration. An entry may
// reference a repository by name, in which case its non-empty fields override
// the auto-discovered values for that repository.
type Entry struct {
	// Repo links the entry to a repository by name. Empty for standalone
	// entries that do not correspond to any repository.
	Repo string `yaml:"repo" json:"repo,omitempty"`

	// Name overrides the display name; falls back to Repo when empty.
	Name string `yaml:"name" json:"name,omitempty"`

	// Description overrides the project description.
	Description string `yaml:"description" json:"description,omitempty"`

	// URL is a manually supplied destination. A non-empty URL takes the
	// referenced repository out of the auto-discovered branch entirely.
	URL string `yaml:"url" json:"url,omitempty"`

	// RepoURL overrides the source-code link. See HasRepoURL for the
	// difference between an absent key and an explicit null.
	RepoURL *string `yaml:"repoUrl" json:"repo_url,omitempty"`

	// Thumbnail is an optional tile image reference.
	Thumbnail string `yaml:"thumbnail" json:"thumbnail,omitempty"`

	// Rank is the per-entry order key. Recognized for configuration
	// compatibility; ranking is driven solely by the top-level order list.
	Rank int `yaml:"order" json:"order,omitempty"`

	// repoURLSet records whether the repoUrl key appeared in the document
	// at all. An explicit `repoUrl: null` means "show no source link",
	// which is different from omitting the key (derive the default link).
	repoURLSet bool
}

// HasRepoURL reports whether the entry declared a repoUrl key, including an
// explicit null.
func (e *Entry) HasRepoURL() bool {
	return e.repoURLSet
}

// SetRepoURL declares the source-code link override explicitly. Passing nil
// records "no source link" rather than "derive the default".
func (e *Entry) SetRepoURL(url *string) {
	e.RepoURL = url
	e.repoURLSet = true
}

// DisplayName returns the name shown on the tile: the explicit name, the
// repository name, or empty when the entry declares neither.
func (e *Entry) DisplayName() string {
	if e.Name != "" {
		return e.Name
	}
	if e.Repo != "" {
		return e.Repo
	}
	return ""
}

// UnmarshalYAML decodes the entry and records whether the repoUrl key was
// present, so an explicit null survives parsing.
func (e *Entry) UnmarshalYAML(data []byte) error {
	type plain Entry
	var p plain
	if err := yaml.Unmarshal(data, &p); err != nil {
		return err
	}
	*e = Entry(p)

	var keys map[string]any
	if err := yaml.Unmarshal(data, &keys); err != nil {
		return err
	}
	_, e.repoURLSet = keys["repoUrl"]
	return nil
}
