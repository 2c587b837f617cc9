package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pagedeck/pagedeck"
	"github.com/pagedeck/pagedeck/internal/cmd/output"
	"github.com/pagedeck/pagedeck/internal/tools/site"
	"github.com/pagedeck/pagedeck/pkg/config"
	"github.com/pagedeck/pagedeck/pkg/constants"
)

// NewListCommand creates the list command.
func (a *App) NewListCommand() *cobra.Command {
	var profileOnly bool

	cmd := &cobra.Command{
		Use:     "list",
		GroupID: "core",
		Short:   "List the reconciled project deck",
		Long: `List fetches the account's Pages-enabled repositories, merges them with
the deck file, and prints the resulting ordered project list.

When the repository source is unreachable the deck degrades to the
manually configured entries.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := a.Client()
			if err != nil {
				return err
			}

			deck, err := client.Deck(cmd.Context())
			if err != nil {
				return err
			}
			if deck.Fallback {
				a.logger.Warn().Msg("Repository source unreachable, showing configured entries only")
			}

			format := output.DetectFormat(a.config.Format)
			formatter := output.NewFormatter(format)
			if profileOnly {
				return formatter.Format(cmd.OutOrStdout(), deck.Profile)
			}
			return formatter.Format(cmd.OutOrStdout(), deck.Projects)
		},
	}

	cmd.Flags().BoolVar(&profileOnly, "profile", false, "show the account profile instead of projects")

	return cmd
}

// NewGenerateCommand creates the generate command.
func (a *App) NewGenerateCommand() *cobra.Command {
	var (
		outputDir string
		title     string
	)

	cmd := &cobra.Command{
		Use:     "generate",
		GroupID: "core",
		Short:   "Generate the static deck site",
		Long: `Generate reconciles the project deck and renders it into a self-contained
static site ready to publish on GitHub Pages.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			deck, gen, err := a.buildSite(cmd.Context(), outputDir, title)
			if err != nil {
				return err
			}

			a.logger.Info().
				Str("output", gen.OutputDir()).
				Int("projects", len(deck.Projects)).
				Bool("fallback", deck.Fallback).
				Msg("Site generated")
			fmt.Fprintf(cmd.OutOrStdout(), "Generated site with %d projects in %s\n", len(deck.Projects), gen.OutputDir())
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output-dir", "d", "", "directory to write the site into (default public)")
	cmd.Flags().StringVar(&title, "title", "", "site title (default: account name)")

	return cmd
}

// NewServeCommand creates the serve command.
func (a *App) NewServeCommand() *cobra.Command {
	var (
		port      int
		outputDir string
	)

	cmd := &cobra.Command{
		Use:     "serve",
		GroupID: "core",
		Short:   "Generate the deck site and preview it locally",
		Long: `Serve generates the static site and serves it on a local HTTP port for
previewing before publishing. The server shuts down on interrupt.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			deck, gen, err := a.buildSite(cmd.Context(), outputDir, "")
			if err != nil {
				return err
			}

			addr := ":" + strconv.Itoa(port)
			server := &http.Server{
				Addr:              addr,
				Handler:           http.FileServer(http.Dir(gen.OutputDir())),
				ReadHeaderTimeout: constants.ServerReadHeaderTimeout,
			}

			errCh := make(chan error, 1)
			go func() {
				errCh <- server.ListenAndServe()
			}()

			a.logger.Info().
				Str("addr", addr).
				Int("projects", len(deck.Projects)).
				Msg("Serving deck preview")
			fmt.Fprintf(cmd.OutOrStdout(), "Serving %s on http://localhost%s\n", gen.OutputDir(), addr)

			select {
			case <-cmd.Context().Done():
				shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.ServerShutdownTimeout)
				defer cancel()
				return server.Shutdown(shutdownCtx)
			case err := <-errCh:
				if err != nil && err != http.ErrServerClosed {
					return err
				}
				return nil
			}
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", a.config.Port, "port to serve the preview on")
	cmd.Flags().StringVarP(&outputDir, "output-dir", "d", "", "directory to write the site into (default public)")

	return cmd
}

// NewValidateCommand creates the validate command.
func (a *App) NewValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "validate",
		GroupID: "management",
		Short:   "Validate the deck file",
		Long: `Validate parses the deck file strictly and reports problems that the
runtime loader would otherwise silently recover from by falling back to
an empty configuration.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := a.config.DeckFile
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("reading deck file %s: %w", path, err)
			}

			cfg, err := config.Parse(data)
			if err != nil {
				return fmt.Errorf("deck file %s is invalid: %w", path, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s is valid\n", path)
			fmt.Fprintf(cmd.OutOrStdout(), "  account:        %s\n", cfg.Account())
			fmt.Fprintf(cmd.OutOrStdout(), "  excluded repos: %d\n", len(cfg.Exclude))
			fmt.Fprintf(cmd.OutOrStdout(), "  ordered repos:  %d\n", len(cfg.Order))
			fmt.Fprintf(cmd.OutOrStdout(), "  manual entries: %d\n", len(cfg.Projects))
			return nil
		},
	}

	return cmd
}

// NewVersionCommand creates the version command.
func (a *App) NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "pagedeck %s\n", a.version)
			fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n", a.commit)
			fmt.Fprintf(cmd.OutOrStdout(), "  built:  %s\n", a.date)
		},
	}
}

// buildSite reconciles the deck and renders the static site, returning the
// deck and the generator used so callers can report where output landed.
func (a *App) buildSite(ctx context.Context, outputDir, title string) (*pagedeck.Deck, *site.Generator, error) {
	client, err := a.Client()
	if err != nil {
		return nil, nil, err
	}

	deck, err := client.Deck(ctx)
	if err != nil {
		return nil, nil, err
	}
	if deck.Fallback {
		a.logger.Warn().Msg("Repository source unreachable, site contains configured entries only")
	}

	if outputDir == "" {
		outputDir = a.config.OutputDir
	}
	if title == "" {
		title = deck.Profile.Username
	}

	gen := site.New(site.WithOutputDir(outputDir), site.WithTitle(title))
	if err := gen.Generate(deck); err != nil {
		return nil, nil, err
	}
	return deck, gen, nil
}
