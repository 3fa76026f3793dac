package content

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlehtin/storykit/internal/errors"
	"github.com/mlehtin/storykit/internal/storyblok"
)

func TestFetchStoryOfflineServesFixtures(t *testing.T) {
	t.Parallel()

	svc := NewService(Config{Offline: true}, nil, embeddedStore(t), nil)

	tests := []struct {
		name     string
		slug     string
		wantSlug string
	}{
		{name: "known slug", slug: "home", wantSlug: "home"},
		{name: "second known slug", slug: "about", wantSlug: "about"},
		{name: "unknown slug cascades to default", slug: "no-such-page", wantSlug: "home"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result := svc.FetchStory(context.Background(), tt.slug, storyblok.Params{})
			require.True(t, result.OK())
			assert.Equal(t, http.StatusOK, result.Status)
			assert.Equal(t, tt.wantSlug, result.Story.FullSlug)
		})
	}
}

func TestFetchStoryOfflineIsDeterministic(t *testing.T) {
	t.Parallel()

	svc := NewService(Config{Offline: true}, nil, embeddedStore(t), nil)

	first := svc.FetchStory(context.Background(), "home", storyblok.Params{})
	second := svc.FetchStory(context.Background(), "home", storyblok.Params{})
	require.True(t, first.OK())
	require.True(t, second.OK())
	assert.Equal(t, first.Story, second.Story)
}

func TestFetchStoryOfflineNeverTouchesUpstream(t *testing.T) {
	t.Parallel()

	// A configured fetcher must stay unused when offline mode is forced.
	fetcher := servingFetcher(testStory(t, "home"))
	svc := NewService(Config{Offline: true}, fetcher, embeddedStore(t), nil)

	for i := 0; i < 5; i++ {
		svc.FetchStory(context.Background(), "home", storyblok.Params{})
		svc.FetchStories(context.Background(), storyblok.Params{})
		svc.GetGlobalSettings(context.Background())
	}

	assert.Zero(t, fetcher.getCalls.Load())
	assert.Zero(t, fetcher.listCalls.Load())
}

func TestFetchStoryOfflineNoFixture(t *testing.T) {
	t.Parallel()

	svc := NewService(Config{Offline: true}, nil, EmptyFixtureStore(), nil)

	result := svc.FetchStory(context.Background(), "anything", storyblok.Params{})
	assert.Nil(t, result.Story)
	require.Error(t, result.Err)
	assert.Equal(t, http.StatusNotFound, result.Status)
	assert.True(t, errors.IsNotFound(result.Err))
}

func TestFetchStoryEmptySlug(t *testing.T) {
	t.Parallel()

	svc := NewService(Config{Offline: true}, nil, embeddedStore(t), nil)

	result := svc.FetchStory(context.Background(), "", storyblok.Params{})
	assert.Nil(t, result.Story)
	require.Error(t, result.Err)
	assert.Equal(t, http.StatusBadRequest, result.Status)
}

func TestFetchStoryOnlineSuccessValidatesContent(t *testing.T) {
	t.Parallel()

	fetcher := servingFetcher(testStory(t, "home"))
	svc := NewService(Config{}, fetcher, EmptyFixtureStore(), nil)

	result := svc.FetchStory(context.Background(), "home", storyblok.Params{})
	require.True(t, result.OK())
	assert.Equal(t, http.StatusOK, result.Status)
	// The stringified boolean is coerced on the way through the validator.
	assert.Equal(t, true, result.Story.Content["noindex"])
}

func TestFetchStoryUpstreamFailureFallsBackToFixture(t *testing.T) {
	t.Parallel()

	svc := NewService(Config{}, failingFetcher(http.StatusBadGateway), embeddedStore(t), nil)

	result := svc.FetchStory(context.Background(), "home", storyblok.Params{})
	require.True(t, result.OK(), "fixture fallback must present as a success")
	assert.Equal(t, http.StatusOK, result.Status)
	assert.Equal(t, "home", result.Story.FullSlug)
}

func TestFetchStoryUpstreamFailureUnknownSlugCascades(t *testing.T) {
	t.Parallel()

	svc := NewService(Config{}, failingFetcher(http.StatusInternalServerError), embeddedStore(t), nil)

	result := svc.FetchStory(context.Background(), "campaign-2031", storyblok.Params{})
	require.True(t, result.OK())
	assert.Equal(t, "home", result.Story.FullSlug)
}

func TestFetchStorySurfacesErrorWithoutFixture(t *testing.T) {
	t.Parallel()

	svc := NewService(Config{}, failingFetcher(http.StatusBadGateway), EmptyFixtureStore(), nil)

	result := svc.FetchStory(context.Background(), "home", storyblok.Params{})
	assert.Nil(t, result.Story)
	require.Error(t, result.Err)
	// The status comes from the upstream error, not a synthetic value.
	assert.Equal(t, http.StatusBadGateway, result.Status)
}

func TestFetchStoryStatusDefaultsTo500(t *testing.T) {
	t.Parallel()

	fetcher := &fakeFetcher{
		getStory: func(context.Context, string, storyblok.Params) (*storyblok.StoryResponse, error) {
			return nil, errors.Newf("connection refused").
				Category(errors.CategoryNetwork).
				Component("storyblok").
				Build()
		},
	}
	svc := NewService(Config{}, fetcher, EmptyFixtureStore(), nil)

	result := svc.FetchStory(context.Background(), "home", storyblok.Params{})
	require.Error(t, result.Err)
	assert.Equal(t, http.StatusInternalServerError, result.Status)
}

func TestFetchStoryEnvelopeExclusivity(t *testing.T) {
	t.Parallel()

	// Exactly one of Story and Err on every terminal return, except the
	// documented offline/no-fixture case which has Err and a 404.
	scenarios := []struct {
		name string
		svc  *Service
		slug string
	}{
		{name: "offline hit", svc: NewService(Config{Offline: true}, nil, embeddedStore(t), nil), slug: "home"},
		{name: "offline miss", svc: NewService(Config{Offline: true}, nil, EmptyFixtureStore(), nil), slug: "x"},
		{name: "online success", svc: NewService(Config{}, servingFetcher(testStory(t, "a")), EmptyFixtureStore(), nil), slug: "a"},
		{name: "online failure with fixture", svc: NewService(Config{}, failingFetcher(500), embeddedStore(t), nil), slug: "home"},
		{name: "online failure without fixture", svc: NewService(Config{}, failingFetcher(500), EmptyFixtureStore(), nil), slug: "x"},
		{name: "empty slug", svc: NewService(Config{Offline: true}, nil, embeddedStore(t), nil), slug: ""},
	}

	for _, sc := range scenarios {
		sc := sc
		t.Run(sc.name, func(t *testing.T) {
			t.Parallel()
			result := sc.svc.FetchStory(context.Background(), sc.slug, storyblok.Params{})
			hasStory := result.Story != nil
			hasErr := result.Err != nil
			assert.True(t, hasStory != hasErr,
				"envelope must carry exactly one of story and error, got story=%v err=%v", hasStory, hasErr)
		})
	}
}

func TestFetchStoryVersionDefaulting(t *testing.T) {
	t.Parallel()

	var seen storyblok.Params
	fetcher := &fakeFetcher{
		getStory: func(_ context.Context, _ string, p storyblok.Params) (*storyblok.StoryResponse, error) {
			seen = p
			return &storyblok.StoryResponse{Story: testStory(t, "home")}, nil
		},
	}
	svc := NewService(Config{Version: storyblok.VersionDraft}, fetcher, EmptyFixtureStore(), nil)

	svc.FetchStory(context.Background(), "home", storyblok.Params{})
	assert.Equal(t, storyblok.VersionDraft, seen.Version)

	svc.FetchStory(context.Background(), "home", storyblok.Params{Version: storyblok.VersionPublished})
	assert.Equal(t, storyblok.VersionPublished, seen.Version, "caller params win over the default")

	svc.FetchStory(context.Background(), "home", storyblok.Params{ResolveLinks: "url"})
	assert.Equal(t, storyblok.VersionDraft, seen.Version, "default applies alongside caller filters")
	assert.Equal(t, "url", seen.ResolveLinks)
}

func TestFetchStoryNilStoryInResponse(t *testing.T) {
	t.Parallel()

	fetcher := &fakeFetcher{
		getStory: func(context.Context, string, storyblok.Params) (*storyblok.StoryResponse, error) {
			return &storyblok.StoryResponse{}, nil
		},
	}

	t.Run("falls back to fixture", func(t *testing.T) {
		t.Parallel()
		svc := NewService(Config{}, fetcher, embeddedStore(t), nil)

		var result StoryResult
		require.NotPanics(t, func() {
			result = svc.FetchStory(context.Background(), "home", storyblok.Params{})
		})
		require.True(t, result.OK())
		assert.Equal(t, "home", result.Story.FullSlug)
	})

	t.Run("surfaces error without fixture", func(t *testing.T) {
		t.Parallel()
		svc := NewService(Config{}, fetcher, EmptyFixtureStore(), nil)

		var result StoryResult
		require.NotPanics(t, func() {
			result = svc.FetchStory(context.Background(), "home", storyblok.Params{})
		})
		require.Error(t, result.Err)
		assert.Nil(t, result.Story)
		assert.Equal(t, http.StatusInternalServerError, result.Status)
		assert.True(t, errors.IsCategory(result.Err, errors.CategoryHTTP))
	})
}

func TestFetchStoriesOffline(t *testing.T) {
	t.Parallel()

	svc := NewService(Config{Offline: true}, nil, embeddedStore(t), nil)

	result := svc.FetchStories(context.Background(), storyblok.Params{})
	require.True(t, result.OK())
	assert.NotNil(t, result.Stories)
	assert.Empty(t, result.Stories)
}

func TestFetchStoriesUpstreamFailure(t *testing.T) {
	t.Parallel()

	svc := NewService(Config{}, failingFetcher(http.StatusServiceUnavailable), embeddedStore(t), nil)

	result := svc.FetchStories(context.Background(), storyblok.Params{})
	assert.False(t, result.OK())
	assert.NotNil(t, result.Stories)
	assert.Empty(t, result.Stories)
	assert.Zero(t, result.Total)
}

func TestFetchStoriesSuccessValidatesEach(t *testing.T) {
	t.Parallel()

	svc := NewService(Config{}, servingFetcher(testStory(t, "home")), EmptyFixtureStore(), nil)

	result := svc.FetchStories(context.Background(), storyblok.Params{})
	require.True(t, result.OK())
	require.Len(t, result.Stories, 1)
	assert.Equal(t, 1, result.Total)
	assert.Equal(t, true, result.Stories[0].Content["noindex"])
}
