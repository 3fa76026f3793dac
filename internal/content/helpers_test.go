package content

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mlehtin/storykit/internal/errors"
	"github.com/mlehtin/storykit/internal/storyblok"
)

// fakeFetcher is a programmable StoryFetcher that counts its calls, so
// tests can assert zero upstream activity in offline mode.
type fakeFetcher struct {
	getStory    func(ctx context.Context, slug string, p storyblok.Params) (*storyblok.StoryResponse, error)
	listStories func(ctx context.Context, p storyblok.Params) (*storyblok.StoriesResponse, error)

	getCalls  atomic.Int64
	listCalls atomic.Int64
}

func (f *fakeFetcher) GetStory(ctx context.Context, slug string, p storyblok.Params) (*storyblok.StoryResponse, error) {
	f.getCalls.Add(1)
	if f.getStory == nil {
		return nil, errors.Newf("no fake configured").Component("content").Build()
	}
	return f.getStory(ctx, slug, p)
}

func (f *fakeFetcher) ListStories(ctx context.Context, p storyblok.Params) (*storyblok.StoriesResponse, error) {
	f.listCalls.Add(1)
	if f.listStories == nil {
		return nil, errors.Newf("no fake configured").Component("content").Build()
	}
	return f.listStories(ctx, p)
}

// failingFetcher returns an upstream error with the given HTTP status on
// every call.
func failingFetcher(status int) *fakeFetcher {
	err := errors.Newf("delivery API error (status %d)", status).
		Category(errors.CategoryForStatus(status)).
		StatusCode(status).
		Component("storyblok").
		Build()
	return &fakeFetcher{
		getStory: func(context.Context, string, storyblok.Params) (*storyblok.StoryResponse, error) {
			return nil, err
		},
		listStories: func(context.Context, storyblok.Params) (*storyblok.StoriesResponse, error) {
			return nil, err
		},
	}
}

// servingFetcher returns the given story for every slug.
func servingFetcher(story *storyblok.Story) *fakeFetcher {
	return &fakeFetcher{
		getStory: func(context.Context, string, storyblok.Params) (*storyblok.StoryResponse, error) {
			copied := *story
			return &storyblok.StoryResponse{Story: &copied}, nil
		},
		listStories: func(context.Context, storyblok.Params) (*storyblok.StoriesResponse, error) {
			return &storyblok.StoriesResponse{Stories: []storyblok.Story{*story}, Total: 1}, nil
		},
	}
}

// testStory builds a minimal live story with a valid page content tree.
func testStory(t *testing.T, slug string) *storyblok.Story {
	t.Helper()
	return &storyblok.Story{
		ID:       99,
		UUID:     "11111111-2222-3333-4444-555555555555",
		Name:     "Test",
		Slug:     slug,
		FullSlug: slug,
		Content: map[string]any{
			"_uid":      "c1",
			"component": "page",
			"noindex":   "true",
		},
	}
}

// settingsStory builds a live site_settings story.
func settingsStory(t *testing.T, siteName string) *storyblok.Story {
	t.Helper()
	return &storyblok.Story{
		ID:       7,
		FullSlug: "site-settings",
		Content: map[string]any{
			"_uid":      "s1",
			"component": "site_settings",
			"site_name": siteName,
			"tagline":   "Live tagline",
		},
	}
}

// embeddedStore loads the bundled fixture set or fails the test.
func embeddedStore(t *testing.T) *FixtureStore {
	t.Helper()
	store, err := LoadEmbeddedFixtures()
	require.NoError(t, err)
	require.NotZero(t, store.Len())
	return store
}
