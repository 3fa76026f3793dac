package content

import (
	"context"
	"net/http"
	"time"

	"github.com/mlehtin/storykit/internal/errors"
	"github.com/mlehtin/storykit/internal/storyblok"
)

// FetchStory fetches a single story by slug through the resilience layer.
//
// Offline mode (no delivery credential) is checked first and short-circuits
// all network activity: the slug is served from the fixture registry,
// cascading to the default fixture, and finally to a not-found envelope.
//
// Online failures of any kind — network error, non-2xx status, or a 2xx
// response missing its story payload — fall back to the same fixture
// cascade. A fixture hit is returned as a success indistinguishable from
// live data. Only when no fixture exists does the envelope surface the
// original upstream error, with its status derived from the failure.
//
// FetchStory never panics; every path returns an envelope.
func (s *Service) FetchStory(ctx context.Context, slug string, params storyblok.Params) StoryResult {
	start := s.now()

	if slug == "" {
		return StoryResult{
			Err: errors.Newf("story slug must not be empty").
				Category(errors.CategoryValidation).
				Component("content").
				Build(),
			Status: http.StatusBadRequest,
		}
	}

	if s.offline() {
		result := s.storyFromFixtures(slug, "offline")
		s.metrics.RecordFetch("offline", outcomeOf(result), s.since(start))
		return result
	}

	params = s.layerDefaults().Merge(params)

	resp, err := s.fetcher.GetStory(ctx, slug, params)
	if err == nil && (resp == nil || resp.Story == nil) {
		// The delivery client never returns a nil story on success, but the
		// never-panic contract must not depend on the fetcher implementation.
		err = errors.Newf("delivery response missing story payload").
			Category(errors.CategoryHTTP).
			Context("slug", slug).
			Component("content").
			Build()
	}
	if err != nil {
		s.metrics.RecordUpstreamError(categoryOf(err))
		logger.Warn("story fetch failed, trying fixture fallback",
			"slug", slug,
			"error", err)

		if fallback, ok := s.fixtureFallback(slug, "upstream_failure"); ok {
			s.metrics.RecordFetch("online", "fallback", s.since(start))
			return fallback
		}

		// No recovery path: surface the original error, never a synthetic one.
		s.metrics.RecordFetch("online", "error", s.since(start))
		return StoryResult{
			Err:    err,
			Status: errors.HTTPStatus(err, http.StatusInternalServerError),
		}
	}

	story := resp.Story
	story.Content = s.validator.ValidateContent(story.Content)

	s.metrics.RecordFetch("online", "success", s.since(start))
	return StoryResult{Story: story, Status: http.StatusOK}
}

// FetchStories fetches a story listing. Listing endpoints have no fixture
// equivalent: offline mode yields an empty list with no error, and online
// failures yield an empty list plus the captured error with total 0.
func (s *Service) FetchStories(ctx context.Context, params storyblok.Params) StoriesResult {
	start := s.now()

	if s.offline() {
		s.metrics.RecordFetch("offline", "success", s.since(start))
		return StoriesResult{Stories: []storyblok.Story{}}
	}

	params = s.layerDefaults().Merge(params)

	resp, err := s.fetcher.ListStories(ctx, params)
	if err != nil {
		s.metrics.RecordUpstreamError(categoryOf(err))
		s.metrics.RecordFetch("online", "error", s.since(start))
		logger.Warn("story listing failed", "error", err)
		return StoriesResult{Stories: []storyblok.Story{}, Err: err}
	}

	for i := range resp.Stories {
		resp.Stories[i].Content = s.validator.ValidateContent(resp.Stories[i].Content)
	}

	s.metrics.RecordFetch("online", "success", s.since(start))
	return StoriesResult{Stories: resp.Stories, Total: resp.Total}
}

// storyFromFixtures serves the offline cascade: slug, then the default
// fixture, then a not-found envelope.
func (s *Service) storyFromFixtures(slug, reason string) StoryResult {
	if result, ok := s.fixtureFallback(slug, reason); ok {
		return result
	}

	return StoryResult{
		Err: errors.Newf("no fixture for slug %q and no default fixture", slug).
			Category(errors.CategoryNotFound).
			Context("slug", slug).
			Component("content").
			Build(),
		Status: http.StatusNotFound,
	}
}

// fixtureFallback looks up slug in the fixture registry, falling back to
// the configured default fixture. Found fixtures are validated and
// returned as successes.
func (s *Service) fixtureFallback(slug, reason string) (StoryResult, bool) {
	story, ok := s.fixtures.Lookup(slug)
	if !ok {
		story, ok = s.fixtures.Lookup(s.cfg.DefaultFixtureSlug)
		if !ok {
			return StoryResult{}, false
		}
		logger.Debug("serving default fixture for unknown slug",
			"slug", slug,
			"default", s.cfg.DefaultFixtureSlug,
			"reason", reason)
	}

	story.Content = s.validator.ValidateContent(story.Content)
	s.metrics.RecordFixtureFallback(reason)

	return StoryResult{Story: story, Status: http.StatusOK}, true
}

// layerDefaults is the parameter base every request starts from;
// caller-supplied params overlay it.
func (s *Service) layerDefaults() storyblok.Params {
	return storyblok.Params{Version: s.cfg.Version}
}

func (s *Service) since(start time.Time) float64 {
	return s.now().Sub(start).Seconds()
}

func outcomeOf(result StoryResult) string {
	if result.OK() {
		return "success"
	}
	return "error"
}

func categoryOf(err error) string {
	var enhanced *errors.EnhancedError
	if errors.As(err, &enhanced) {
		return enhanced.GetCategory()
	}
	return string(errors.CategoryGeneric)
}
