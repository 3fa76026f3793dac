package storyblok

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParamsValuesDeterministicEncoding(t *testing.T) {
	t.Parallel()

	p := Params{
		Version:          VersionPublished,
		ResolveRelations: []string{"page.author", "teaser.link"},
		StartsWith:       "blog/",
		Page:             2,
		PerPage:          25,
	}

	first := p.values("tok", 1718000000).Encode()
	second := p.values("tok", 1718000000).Encode()
	assert.Equal(t, first, second, "response cache keys rely on stable encoding")

	// Keys come out sorted, so the literal form is predictable.
	assert.Equal(t,
		"cv=1718000000&page=2&per_page=25&resolve_relations=page.author%2Cteaser.link&starts_with=blog%2F&token=tok&version=published",
		first)
}

func TestParamsValuesDefaults(t *testing.T) {
	t.Parallel()

	v := Params{}.values("tok", 0)
	assert.Equal(t, VersionPublished, v.Get("version"))
	assert.Equal(t, "tok", v.Get("token"))
	assert.Empty(t, v.Get("cv"), "a zero cv token is omitted")
	assert.Empty(t, v.Get("page"))
}

func TestParamsMerge(t *testing.T) {
	t.Parallel()

	base := Params{Version: VersionPublished, PerPage: 10, SortBy: "position:asc"}

	merged := base.Merge(Params{Version: VersionDraft, StartsWith: "blog/"})
	assert.Equal(t, VersionDraft, merged.Version, "caller params win")
	assert.Equal(t, "blog/", merged.StartsWith)
	assert.Equal(t, 10, merged.PerPage, "unset caller fields keep the base")
	assert.Equal(t, "position:asc", merged.SortBy)

	// Merge never mutates its receiver.
	assert.Equal(t, VersionPublished, base.Version)
}
