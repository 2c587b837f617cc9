package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagedeck/pagedeck/pkg/constants"
)

const sampleDoc = `
username: alice
exclude:
  - dotfiles
  - sandbox
order:
  - Blog
  - Notes
projects:
  - repo: blog
    name: Blog
    description: Yearly writing
  - repo: legacy
    url: https://legacy.example.com
    repoUrl: null
  - name: External tool
    url: https://tool.example.com
    repoUrl: https://git.example.com/tool
    thumbnail: img/tool.png
    order: 2
`

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(sampleDoc))
	require.NoError(t, err)

	assert.Equal(t, "alice", cfg.Account())
	assert.Equal(t, []string{"dotfiles", "sandbox"}, cfg.Exclude)
	assert.Equal(t, []string{"Blog", "Notes"}, cfg.Order)
	require.Len(t, cfg.Projects, 3)
}

func TestParseRepoURLPresence(t *testing.T) {
	cfg, err := Parse([]byte(sampleDoc))
	require.NoError(t, err)

	// No repoUrl key: derive the default link downstream.
	blog := cfg.Projects[0]
	assert.False(t, blog.HasRepoURL())
	assert.Nil(t, blog.RepoURL)

	// Explicit null: show no source link at all.
	legacy := cfg.Projects[1]
	assert.True(t, legacy.HasRepoURL())
	assert.Nil(t, legacy.RepoURL)

	// Explicit value: use it verbatim.
	tool := cfg.Projects[2]
	assert.True(t, tool.HasRepoURL())
	require.NotNil(t, tool.RepoURL)
	assert.Equal(t, "https://git.example.com/tool", *tool.RepoURL)
}

func TestParseEmptyDocument(t *testing.T) {
	cfg, err := Parse([]byte(""))
	require.NoError(t, err)

	assert.Equal(t, constants.DefaultAccount, cfg.Account())
	assert.Empty(t, cfg.Exclude)
	assert.Empty(t, cfg.Order)
	assert.Empty(t, cfg.Projects)
}

func TestParseMalformed(t *testing.T) {
	_, err := Parse([]byte("projects: [whoops"))
	assert.Error(t, err)
}

func TestExcluded(t *testing.T) {
	cfg, err := Parse([]byte(sampleDoc))
	require.NoError(t, err)

	assert.True(t, cfg.Excluded("dotfiles"))
	assert.False(t, cfg.Excluded("blog"))
}

func TestOrderIndex(t *testing.T) {
	cfg, err := Parse([]byte(sampleDoc))
	require.NoError(t, err)

	assert.Equal(t, 0, cfg.OrderIndex("Blog"))
	assert.Equal(t, 1, cfg.OrderIndex("Notes"))
	assert.Equal(t, -1, cfg.OrderIndex("Other"))
}

func TestEntryLookup(t *testing.T) {
	cfg, err := Parse([]byte(sampleDoc))
	require.NoError(t, err)

	entry := cfg.Entry("blog")
	require.NotNil(t, entry)
	assert.Equal(t, "Blog", entry.Name)

	assert.Nil(t, cfg.Entry("unknown"))
	// Entries without a repo reference never match by name.
	assert.Nil(t, cfg.Entry(""))
}

func TestEntryDisplayName(t *testing.T) {
	named := Entry{Repo: "blog", Name: "Blog"}
	assert.Equal(t, "Blog", named.DisplayName())

	repoOnly := Entry{Repo: "blog"}
	assert.Equal(t, "blog", repoOnly.DisplayName())

	var empty Entry
	assert.Equal(t, "", empty.DisplayName())
}

func TestSetRepoURL(t *testing.T) {
	var e Entry
	assert.False(t, e.HasRepoURL())

	e.SetRepoURL(nil)
	assert.True(t, e.HasRepoURL())
	assert.Nil(t, e.RepoURL)
}

func TestLoaderMissingFile(t *testing.T) {
	l := NewLoader(filepath.Join(t.TempDir(), "absent.yaml"))
	cfg := l.Config()
	require.NotNil(t, cfg)
	assert.Equal(t, constants.DefaultAccount, cfg.Account())
}

func TestLoaderMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{{nope"), 0o644))

	cfg := NewLoader(path).Config()
	require.NotNil(t, cfg)
	assert.Equal(t, constants.DefaultAccount, cfg.Account())
}

func TestLoaderMemoizes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.yaml")
	require.NoError(t, os.WriteFile(path, []byte("username: alice"), 0o644))

	l := NewLoader(path)
	first := l.Config()
	require.Equal(t, "alice", first.Account())

	// Rewriting the file must not change the memoized result.
	require.NoError(t, os.WriteFile(path, []byte("username: bob"), 0o644))
	assert.Same(t, first, l.Config())
}

func TestLoaderDefaultPath(t *testing.T) {
	l := NewLoader("")
	assert.Equal(t, constants.DefaultConfigFile, l.Path())
}
