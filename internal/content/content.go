// Package content implements the content fetch resilience layer: safe
// story fetches with local fixture fallback, runtime content validation,
// and a stale-while-revalidate cache for global site settings.
//
// The layer's defining property is that no caller-visible panic or thrown
// error ever escapes: every failure path terminates in a returned envelope,
// a fixture, a stale cache value or a hardcoded default.
package content

import (
	"context"
	"log"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/mlehtin/storykit/internal/logging"
	"github.com/mlehtin/storykit/internal/observability"
	"github.com/mlehtin/storykit/internal/storyblok"
)

// Package-level logger specific to the content layer
var (
	logger          *slog.Logger
	serviceLevelVar = new(slog.LevelVar) // Dynamic level control
	closeLogger     func() error
)

func init() {
	var err error
	logFilePath := filepath.Join("logs", "content.log")
	serviceLevelVar.Set(slog.LevelDebug)

	logger, closeLogger, err = logging.NewFileLogger(logFilePath, "content", serviceLevelVar)
	if err != nil {
		log.Printf("Failed to initialize content file logger at %s: %v. Service logging disabled.", logFilePath, err)
		logger = logging.NewDiscardLogger("content", serviceLevelVar)
		closeLogger = func() error { return nil }
	}
}

// StoryFetcher is the upstream delivery API surface the service depends on.
type StoryFetcher interface {
	GetStory(ctx context.Context, slug string, p storyblok.Params) (*storyblok.StoryResponse, error)
	ListStories(ctx context.Context, p storyblok.Params) (*storyblok.StoriesResponse, error)
}

// Config holds configuration for the content service.
type Config struct {
	Offline            bool          // true when the delivery credential is absent
	Version            string        // default content version (draft or published)
	SettingsSlug       string        // slug of the global site settings story
	DefaultFixtureSlug string        // fixture used when a requested slug has no fixture
	SettingsTTL        time.Duration // stale-while-revalidate TTL for global settings
}

// DefaultConfig returns service defaults.
func DefaultConfig() Config {
	return Config{
		Version:            storyblok.VersionPublished,
		SettingsSlug:       "site-settings",
		DefaultFixtureSlug: "home",
		SettingsTTL:        60 * time.Second,
	}
}

// Service is the content fetch resilience layer. All state it mutates is
// owned by the struct; there is no package-level cache.
type Service struct {
	cfg       Config
	fetcher   StoryFetcher
	fixtures  *FixtureStore
	validator *Validator
	metrics   *observability.ContentMetrics
	settings  settingsCache

	now func() time.Time // injectable clock for cache-age tests
}

// NewService creates a content service. fetcher may be nil, which forces
// offline mode regardless of cfg.Offline.
func NewService(cfg Config, fetcher StoryFetcher, fixtures *FixtureStore, metrics *observability.ContentMetrics) *Service {
	defaults := DefaultConfig()
	if cfg.Version == "" {
		cfg.Version = defaults.Version
	}
	if cfg.SettingsSlug == "" {
		cfg.SettingsSlug = defaults.SettingsSlug
	}
	if cfg.DefaultFixtureSlug == "" {
		cfg.DefaultFixtureSlug = defaults.DefaultFixtureSlug
	}
	if cfg.SettingsTTL <= 0 {
		cfg.SettingsTTL = defaults.SettingsTTL
	}
	if fixtures == nil {
		fixtures = EmptyFixtureStore()
	}

	service := &Service{
		cfg:       cfg,
		fetcher:   fetcher,
		fixtures:  fixtures,
		validator: NewValidator(metrics),
		metrics:   metrics,
		now:       time.Now,
	}

	logger.Info("content service initialized",
		"offline", service.offline(),
		"version", cfg.Version,
		"settings_slug", cfg.SettingsSlug,
		"default_fixture", cfg.DefaultFixtureSlug,
		"fixtures", fixtures.Len())

	return service
}

// Close releases service resources.
func (s *Service) Close() {
	if closeLogger != nil {
		_ = closeLogger()
	}
}

// offline reports whether the service must not touch the network.
func (s *Service) offline() bool {
	return s.cfg.Offline || s.fetcher == nil
}
