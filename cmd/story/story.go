// Package story implements the story debug command.
package story

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/mlehtin/storykit/internal/conf"
	"github.com/mlehtin/storykit/internal/content"
	"github.com/mlehtin/storykit/internal/observability"
	"github.com/mlehtin/storykit/internal/storyblok"
)

// Command creates the story command: fetch one story through the resilience
// layer and print the result envelope.
func Command(settings *conf.Settings) *cobra.Command {
	var version, resolveRelations, resolveLinks string

	cmd := &cobra.Command{
		Use:   "story [slug]",
		Short: "Fetch a story through the resilience layer",
		Long: `Fetch a single story by slug, exactly the way a site consumer would: the
delivery API when a token is configured, fixtures otherwise, fixture fallback
on upstream failure, and fail-open content validation throughout.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params := storyblok.Params{
				Version:      version,
				ResolveLinks: resolveLinks,
			}
			if resolveRelations != "" {
				params.ResolveRelations = strings.Split(resolveRelations, ",")
			}
			return runStory(cmd, settings, args[0], params)
		},
	}

	cmd.Flags().StringVar(&version, "version", "", "Content version: draft or published (defaults to the environment's)")
	cmd.Flags().StringVar(&resolveRelations, "resolve-relations", "", "Comma-separated component.field relation references to resolve")
	cmd.Flags().StringVar(&resolveLinks, "resolve-links", "", "Link resolution mode: url or story")

	return cmd
}

func runStory(cmd *cobra.Command, settings *conf.Settings, slug string, params storyblok.Params) error {
	service, err := buildService(settings)
	if err != nil {
		return err
	}
	defer service.Close()

	result := service.FetchStory(cmd.Context(), slug, params)

	envelope := struct {
		Story  *storyblok.Story `json:"story"`
		Error  string           `json:"error,omitempty"`
		Status int              `json:"status"`
	}{Story: result.Story, Status: result.Status}
	if result.Err != nil {
		envelope.Error = result.Err.Error()
	}

	out, err := json.MarshalIndent(envelope, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}

// buildService assembles the resilience layer from settings: fixture store,
// delivery client when a token is present, and the content service on top.
func buildService(settings *conf.Settings) (*content.Service, error) {
	fixtures, err := loadFixtures(settings)
	if err != nil {
		return nil, err
	}

	var fetcher content.StoryFetcher
	if !settings.Offline() {
		client, err := storyblok.NewClient(storyblok.Config{
			Token:    settings.CMS.Token,
			BaseURL:  settings.CMS.BaseURL,
			Timeout:  settings.CMS.Timeout,
			CacheTTL: settings.CMS.CacheTTL,
			Version:  settings.ContentVersion(),
			Debug:    settings.Debug,
		})
		if err != nil {
			return nil, err
		}
		fetcher = client
	}

	metrics, err := observability.NewContentMetrics(prometheus.NewRegistry())
	if err != nil {
		return nil, err
	}

	return content.NewService(content.Config{
		Offline:            settings.Offline(),
		Version:            settings.ContentVersion(),
		SettingsSlug:       settings.Content.SettingsSlug,
		DefaultFixtureSlug: settings.Content.DefaultFixtureSlug,
		SettingsTTL:        settings.Content.SettingsCacheTTL,
	}, fetcher, fixtures, metrics), nil
}

func loadFixtures(settings *conf.Settings) (*content.FixtureStore, error) {
	if dir := settings.Content.FixturesDir; dir != "" {
		return content.LoadFixtureDir(dir)
	}
	return content.LoadEmbeddedFixtures()
}
