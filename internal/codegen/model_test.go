package codegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlehtin/storykit/internal/schema"
)

func TestBuildDefinitionsSortsAndMaps(t *testing.T) {
	t.Parallel()

	defs := buildDefinitions([]ManagementComponent{
		{
			Name: "hero",
			Schema: map[string]ManagementField{
				"layout": {
					Type: "option", Pos: 2,
					Options: []FieldOption{{Name: "Left", Value: "left"}, {Name: "Center", Value: "center"}},
				},
				"headline": {Type: "text", Pos: 0, Required: true, DisplayName: "Headline"},
				"image":    {Type: "asset", Pos: 1},
			},
		},
		{
			Name: "grid",
			Schema: map[string]ManagementField{
				"columns": {
					Type:               "bloks",
					RestrictComponents: true,
					ComponentWhitelist: []string{"teaser", "feature"},
				},
			},
		},
	})

	require.Len(t, defs, 2)
	// Components come out sorted by name.
	assert.Equal(t, schema.Component("grid"), defs[0].Name)
	assert.Equal(t, schema.Component("hero"), defs[1].Name)

	hero := defs[1]
	require.Len(t, hero.Fields, 3)
	// Fields come out in schema position order.
	assert.Equal(t, "headline", hero.Fields[0].Name)
	assert.Equal(t, schema.FieldText, hero.Fields[0].Type)
	assert.True(t, hero.Fields[0].Required)
	assert.Equal(t, "Headline", hero.Fields[0].Label)

	assert.Equal(t, "image", hero.Fields[1].Name)
	assert.Equal(t, schema.FieldAsset, hero.Fields[1].Type)
	assert.Equal(t, "Image", hero.Fields[1].Label, "label falls back to the humanized name")

	assert.Equal(t, "layout", hero.Fields[2].Name)
	assert.Equal(t, []string{"left", "center"}, hero.Fields[2].Options)

	grid := defs[0]
	require.Len(t, grid.Fields, 1)
	assert.Equal(t, []schema.Component{"teaser", "feature"}, grid.Fields[0].Whitelist)
}

func TestBuildDefinitionsUnrestrictedBloksHasNoWhitelist(t *testing.T) {
	t.Parallel()

	defs := buildDefinitions([]ManagementComponent{{
		Name: "page",
		Schema: map[string]ManagementField{
			"body": {
				Type: "bloks",
				// Whitelist present but restriction disabled: open field.
				ComponentWhitelist: []string{"hero"},
			},
		},
	}})

	require.Len(t, defs, 1)
	assert.Empty(t, defs[0].Fields[0].Whitelist)
}

func TestBuildDefinitionsSkipsNonContentFields(t *testing.T) {
	t.Parallel()

	defs := buildDefinitions([]ManagementComponent{{
		Name: "article",
		Schema: map[string]ManagementField{
			"title":       {Type: "text", Pos: 0, Required: true},
			"tab-content": {Type: "tab", Pos: 1},
			"divider":     {Type: "section", Pos: 2},
			"plugin":      {Type: "custom", Pos: 3},
		},
	}})

	require.Len(t, defs, 1)
	require.Len(t, defs[0].Fields, 1)
	assert.Equal(t, "title", defs[0].Fields[0].Name)
}

func TestGoName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "hero", want: "Hero"},
		{in: "cta_banner", want: "CTABanner"},
		{in: "site_settings", want: "SiteSettings"},
		{in: "nav_link", want: "NavLink"},
		{in: "cta_label", want: "CTALabel"},
		{in: "seo_title", want: "SEOTitle"},
		{in: "default_og_image", want: "DefaultOGImage"},
		{in: "_uid", want: "UID"},
		{in: "author_email", want: "AuthorEmail"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, goName(tt.in))
		})
	}
}

func TestHumanize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "headline", want: "Headline"},
		{in: "button_label", want: "Button label"},
		{in: "cta_label", want: "CTA label"},
		{in: "seo_title", want: "SEO title"},
		{in: "default_og_image", want: "Default OG image"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, humanize(tt.in))
		})
	}
}
