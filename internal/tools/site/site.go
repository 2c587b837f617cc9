// Package site renders a reconciled deck into a standalone static site:
// a searchable tile grid with a light/dark theme toggle, written as a single
// self-contained HTML page.
package site

import (
	"bytes"
	"embed"
	"html/template"
	"os"
	"path/filepath"

	"github.com/pagedeck/pagedeck"
	"github.com/pagedeck/pagedeck/pkg/constants"
	"github.com/pagedeck/pagedeck/pkg/errors"
	"github.com/pagedeck/pagedeck/pkg/logging"
)

//go:embed templates/*.tmpl
var templates embed.FS

const indexFileName = "index.html"

// Generator writes the static site for a deck.
type Generator struct {
	outputDir string
	title     string
}

// Option configures a Generator.
type Option func(*Generator)

// WithOutputDir sets the directory the site is written to.
func WithOutputDir(dir string) Option {
	return func(g *Generator) {
		if dir != "" {
			g.outputDir = dir
		}
	}
}

// WithTitle overrides the page title. The default is derived from the
// deck's profile.
func WithTitle(title string) Option {
	return func(g *Generator) {
		g.title = title
	}
}

// New creates a site generator.
func New(opts ...Option) *Generator {
	g := &Generator{outputDir: constants.DefaultOutputDir}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// OutputDir returns the directory the site is written to.
func (g *Generator) OutputDir() string {
	return g.outputDir
}

// pageData is the template input.
type pageData struct {
	Title string
	Deck  *pagedeck.Deck
}

// Generate renders the deck into the output directory. Write failures are
// terminal: there is no further fallback once the deck itself is built.
func (g *Generator) Generate(deck *pagedeck.Deck) error {
	tmpl, err := template.ParseFS(templates, "templates/*.tmpl")
	if err != nil {
		return errors.WrapParse("template", "templates", err)
	}

	title := g.title
	if title == "" {
		title = deck.Profile.Username + " · projects"
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "index.html.tmpl", pageData{Title: title, Deck: deck}); err != nil {
		return errors.WrapParse("template", indexFileName, err)
	}

	if err := os.MkdirAll(g.outputDir, constants.DirPermissions); err != nil {
		return errors.WrapIO("create", g.outputDir, err)
	}

	indexPath := filepath.Join(g.outputDir, indexFileName)
	if err := os.WriteFile(indexPath, buf.Bytes(), constants.FilePermissions); err != nil {
		return errors.WrapIO("write", indexPath, err)
	}

	logging.Info().
		Str("path", indexPath).
		Int("projects", len(deck.Projects)).
		Bool("fallback", deck.Fallback).
		Msg("Site generated")
	return nil
}
