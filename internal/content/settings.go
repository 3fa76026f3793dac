package content

import (
	"context"
	"sync"
	"time"

	"github.com/mlehtin/storykit/internal/schema"
	"github.com/mlehtin/storykit/internal/storyblok"
)

// settingsCache is the process-lifetime slot for global site settings.
// The triple (value, fetchedAt, revalidating) is only ever mutated under
// mu by GetGlobalSettings and revalidateSettings. The revalidating flag is
// required even though lookups are fast: a revalidation spans a network
// suspension, and concurrent callers must not start overlapping fetches.
type settingsCache struct {
	mu           sync.Mutex
	value        *schema.SiteSettings
	fetchedAt    time.Time
	revalidating bool
}

// GetGlobalSettings returns the global site settings, never a zero value
// and never an error. Resolution order:
//
//  1. Fresh cache (age < TTL): returned immediately, no I/O.
//  2. Stale cache: returned immediately while one background revalidation
//     refreshes the slot (stale-while-revalidate, not stale-then-block).
//  3. Empty cache: a blocking fetch populates the slot.
//  4. Empty cache and failed fetch: a concurrently populated cache value
//     if one appeared (stale-if-error), else the hardcoded defaults.
func (s *Service) GetGlobalSettings(ctx context.Context) schema.SiteSettings {
	s.settings.mu.Lock()

	if s.settings.value != nil {
		age := s.now().Sub(s.settings.fetchedAt)
		cached := *s.settings.value

		if age < s.cfg.SettingsTTL {
			s.settings.mu.Unlock()
			s.metrics.RecordSettingsCacheHit()
			return cached
		}

		// Stale: hand back the cached value and refresh in the background.
		// The flag is checked and set before any suspension point, so
		// concurrent callers never start two overlapping revalidations.
		if !s.settings.revalidating {
			s.settings.revalidating = true
			go s.revalidateSettings(context.WithoutCancel(ctx))
		}
		s.settings.mu.Unlock()

		s.metrics.RecordSettingsCacheStaleHit()
		return cached
	}

	s.settings.mu.Unlock()
	s.metrics.RecordSettingsCacheMiss()

	settings, ok := s.fetchSettings(ctx)
	if ok {
		s.settings.mu.Lock()
		s.settings.value = &settings
		s.settings.fetchedAt = s.now()
		s.settings.mu.Unlock()
		return settings
	}

	// Fetch failed. A concurrent caller may have populated the cache while
	// we were fetching; stale beats hardcoded.
	s.settings.mu.Lock()
	defer s.settings.mu.Unlock()
	if s.settings.value != nil {
		return *s.settings.value
	}

	logger.Warn("global settings unavailable, using hardcoded defaults",
		"slug", s.cfg.SettingsSlug)
	return schema.DefaultSiteSettings()
}

// revalidateSettings refreshes the cache slot in the background. On any
// failure the existing cache is left untouched; errors are logged, never
// propagated. The in-progress flag is released in a defer so it clears
// even if the fetch path misbehaves.
func (s *Service) revalidateSettings(ctx context.Context) {
	defer func() {
		s.settings.mu.Lock()
		s.settings.revalidating = false
		s.settings.mu.Unlock()
	}()

	settings, ok := s.fetchSettings(ctx)
	if !ok {
		s.metrics.RecordSettingsRevalidation("error")
		logger.Warn("settings revalidation failed, keeping stale cache",
			"slug", s.cfg.SettingsSlug)
		return
	}

	s.settings.mu.Lock()
	s.settings.value = &settings
	s.settings.fetchedAt = s.now()
	s.settings.mu.Unlock()

	s.metrics.RecordSettingsRevalidation("success")
	logger.Debug("global settings revalidated", "slug", s.cfg.SettingsSlug)
}

// fetchSettings fetches and decodes the settings story through the safe
// fetch path, so offline mode and fixture fallback apply to settings too.
func (s *Service) fetchSettings(ctx context.Context) (schema.SiteSettings, bool) {
	result := s.FetchStory(ctx, s.cfg.SettingsSlug, storyblok.Params{})
	if !result.OK() {
		return schema.SiteSettings{}, false
	}

	settings, err := schema.SiteSettingsFromContent(result.Story.Content)
	if err != nil {
		logger.Warn("settings story content is unusable",
			"slug", s.cfg.SettingsSlug,
			"error", err)
		return schema.SiteSettings{}, false
	}

	return settings, true
}

// settingsRevalidating reports whether a background revalidation is in
// flight. Used by tests to synchronize with the refresh goroutine.
func (s *Service) settingsRevalidating() bool {
	s.settings.mu.Lock()
	defer s.settings.mu.Unlock()
	return s.settings.revalidating
}
