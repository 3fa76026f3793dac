package codegen

import (
	"go/format"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullComponentSet() []ManagementComponent {
	return []ManagementComponent{
		{
			Name: "hero",
			Schema: map[string]ManagementField{
				"headline":  {Type: "text", Pos: 0, Required: true},
				"image":     {Type: "asset", Pos: 1},
				"cta_link":  {Type: "multilink", Pos: 2},
				"layout":    {Type: "option", Pos: 3, Options: []FieldOption{{Name: "Left", Value: "left"}}},
				"noindex":   {Type: "boolean", Pos: 4},
				"published": {Type: "datetime", Pos: 5},
				"rating":    {Type: "number", Pos: 6},
				"body":      {Type: "richtext", Pos: 7},
				"tags":      {Type: "options", Pos: 8},
			},
		},
		{
			Name: "grid",
			Schema: map[string]ManagementField{
				"columns": {
					Type:               "bloks",
					RestrictComponents: true,
					ComponentWhitelist: []string{"hero", "teaser"},
				},
			},
		},
		{
			Name: "teaser",
			Schema: map[string]ManagementField{
				"headline": {Type: "text", Pos: 0, Required: true},
			},
		},
	}
}

func renderAll(t *testing.T, components []ManagementComponent) (componentsSrc, typesSrc, mocksSrc string) {
	t.Helper()

	model := buildRenderModel(buildDefinitions(components))

	a, err := renderFile(componentsTemplate, model)
	require.NoError(t, err)
	b, err := renderFile(typesTemplate, model)
	require.NoError(t, err)
	c, err := renderFile(mocksTemplate, model)
	require.NoError(t, err)

	return string(a), string(b), string(c)
}

func TestRenderedFilesAreGofmtClean(t *testing.T) {
	t.Parallel()

	componentsSrc, typesSrc, mocksSrc := renderAll(t, fullComponentSet())

	for name, src := range map[string]string{
		"components": componentsSrc,
		"types":      typesSrc,
		"mocks":      mocksSrc,
	} {
		formatted, err := format.Source([]byte(src))
		require.NoError(t, err, "%s output must be valid Go", name)
		assert.Equal(t, src, string(formatted), "%s output must already be gofmt formatted", name)
		assert.True(t, strings.HasPrefix(src, "// Code generated by storykit generate. DO NOT EDIT."), name)
	}
}

func TestRenderComponentsFile(t *testing.T) {
	t.Parallel()

	componentsSrc, _, _ := renderAll(t, fullComponentSet())

	assert.Contains(t, componentsSrc, `ComponentGrid   Component = "grid"`)
	assert.Contains(t, componentsSrc, `ComponentHero   Component = "hero"`)
	assert.Contains(t, componentsSrc, `{Name: "headline", Type: FieldText, Required: true, Label: "Headline"},`)
	assert.Contains(t, componentsSrc, `Options: []string{"left"}`)
	assert.Contains(t, componentsSrc, `Whitelist: []Component{ComponentHero, ComponentTeaser},`)

	// Components slice lists every component in sorted order.
	gridIdx := strings.Index(componentsSrc, "ComponentGrid,")
	heroIdx := strings.Index(componentsSrc, "ComponentHero,")
	teaserIdx := strings.Index(componentsSrc, "ComponentTeaser,")
	require.Positive(t, gridIdx)
	assert.Less(t, gridIdx, heroIdx)
	assert.Less(t, heroIdx, teaserIdx)
}

func TestRenderTypesFile(t *testing.T) {
	t.Parallel()

	_, typesSrc, _ := renderAll(t, fullComponentSet())

	assert.Contains(t, typesSrc, `// Hero is the typed declaration of the "hero" component.`)
	assert.Contains(t, typesSrc, "type Hero struct {")
	assert.Contains(t, typesSrc, "`json:\"_uid\"`")
	// Required fields carry no omitempty, optional ones do.
	assert.Contains(t, typesSrc, "`json:\"headline\"`")
	assert.Contains(t, typesSrc, "`json:\"image,omitempty\"`")
	assert.Contains(t, typesSrc, "*storyblok.Asset")
	assert.Contains(t, typesSrc, "*storyblok.Link")
	assert.Contains(t, typesSrc, "[]Block")
	assert.Contains(t, typesSrc, `"github.com/mlehtin/storykit/internal/storyblok"`)
}

func TestRenderTypesFileOmitsUnusedImport(t *testing.T) {
	t.Parallel()

	// No asset or link fields anywhere: the storyblok import must not appear.
	_, typesSrc, _ := renderAll(t, []ManagementComponent{{
		Name: "teaser",
		Schema: map[string]ManagementField{
			"headline": {Type: "text", Pos: 0, Required: true},
		},
	}})

	assert.NotContains(t, typesSrc, "storyblok")
}

func TestRenderMocksFile(t *testing.T) {
	t.Parallel()

	_, _, mocksSrc := renderAll(t, fullComponentSet())

	assert.Contains(t, mocksSrc, "var Mocks = map[Component]func() Block{")
	assert.Contains(t, mocksSrc, "ComponentHero:   MockHero,")
	assert.Contains(t, mocksSrc, `"_uid":      uuid.NewString(),`)
	// Heuristic scalar values.
	assert.Contains(t, mocksSrc, `"headline":  "Sample Headline"`)
	assert.Contains(t, mocksSrc, `mockAsset("image")`)
	assert.Contains(t, mocksSrc, "mockLink()")
	assert.Contains(t, mocksSrc, `"layout":    "left"`)
	assert.Contains(t, mocksSrc, `"published": "2024-01-15T09:30:00Z"`)
	assert.Contains(t, mocksSrc, `"rating":    float64(5)`)
	// The grid mock nests only leaf component factories from its whitelist.
	assert.Contains(t, mocksSrc, "MockTeaser(),")
	assert.NotContains(t, mocksSrc, "MockGrid(),\n")
}

func TestRenderMocksEmailHeuristic(t *testing.T) {
	t.Parallel()

	_, _, mocksSrc := renderAll(t, []ManagementComponent{{
		Name: "author",
		Schema: map[string]ManagementField{
			"author_email": {Type: "text", Pos: 0},
			"email":        {Type: "text", Pos: 1},
		},
	}})

	assert.Contains(t, mocksSrc, `"author@example.com"`)
	assert.Contains(t, mocksSrc, `"contact@example.com"`)
}
