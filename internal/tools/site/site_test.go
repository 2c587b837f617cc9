package site

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagedeck/pagedeck"
	"github.com/pagedeck/pagedeck/pkg/catalog"
)

func sampleDeck() *pagedeck.Deck {
	return &pagedeck.Deck{
		Profile: catalog.Profile{
			Username:   "alice",
			AvatarURL:  "https://github.com/alice.png",
			ProfileURL: "https://github.com/alice",
		},
		Projects: []catalog.Project{
			{
				Name:           "blog",
				Description:    "Yearly writing",
				URL:            "https://alice.github.io/blog/",
				RepoURL:        "https://github.com/alice/blog",
				AutoDiscovered: true,
			},
			{
				Name:      "Mirror",
				URL:       "https://mirror.example.com",
				Thumbnail: "img/mirror.png",
			},
		},
	}
}

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	g := New(WithOutputDir(dir))

	require.NoError(t, g.Generate(sampleDeck()))

	data, err := os.ReadFile(filepath.Join(dir, "index.html"))
	require.NoError(t, err)

	html := string(data)
	assert.Contains(t, html, "alice · projects")
	assert.Contains(t, html, `href="https://alice.github.io/blog/"`)
	assert.Contains(t, html, "Yearly writing")
	assert.Contains(t, html, `src="img/mirror.png"`)
	assert.Contains(t, html, `id="search"`)
	assert.Contains(t, html, `id="theme-toggle"`)
}

func TestGenerateEscapesContent(t *testing.T) {
	dir := t.TempDir()
	deck := sampleDeck()
	deck.Projects[0].Description = `<script>alert("x")</script>`

	require.NoError(t, New(WithOutputDir(dir)).Generate(deck))

	data, err := os.ReadFile(filepath.Join(dir, "index.html"))
	require.NoError(t, err)
	assert.NotContains(t, string(data), `<script>alert`)
}

func TestGenerateEmptyDeck(t *testing.T) {
	dir := t.TempDir()
	deck := &pagedeck.Deck{Profile: catalog.FallbackProfile("alice")}

	require.NoError(t, New(WithOutputDir(dir)).Generate(deck))

	data, err := os.ReadFile(filepath.Join(dir, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "No projects yet.")
}

func TestGenerateCreatesOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "public")

	require.NoError(t, New(WithOutputDir(dir)).Generate(sampleDeck()))

	_, err := os.Stat(filepath.Join(dir, "index.html"))
	assert.NoError(t, err)
}

func TestWithTitle(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, New(WithOutputDir(dir), WithTitle("My Deck")).Generate(sampleDeck()))

	data, err := os.ReadFile(filepath.Join(dir, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "<title>My Deck</title>")
}
