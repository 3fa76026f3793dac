// Package observability provides Prometheus metrics for the content layer
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// ContentMetrics contains Prometheus metrics for content fetch operations
type ContentMetrics struct {
	registry *prometheus.Registry

	// Story fetch metrics
	fetchTotal         *prometheus.CounterVec
	fetchDuration      *prometheus.HistogramVec
	fixtureFallbacks   *prometheus.CounterVec
	upstreamErrorTotal *prometheus.CounterVec

	// Validation metrics
	validationFailuresTotal *prometheus.CounterVec

	// Settings cache metrics
	settingsCacheHits          prometheus.Counter
	settingsCacheStaleHits     prometheus.Counter
	settingsCacheMisses        prometheus.Counter
	settingsRevalidationsTotal *prometheus.CounterVec
}

// NewContentMetrics creates and registers new content metrics
func NewContentMetrics(registry *prometheus.Registry) (*ContentMetrics, error) {
	m := &ContentMetrics{registry: registry}
	m.initMetrics()
	if err := registry.Register(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *ContentMetrics) initMetrics() {
	m.fetchTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "content_story_fetches_total",
			Help: "Total number of story fetch operations",
		},
		[]string{"mode", "outcome"}, // mode: online, offline; outcome: success, fallback, error
	)

	m.fetchDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "content_story_fetch_duration_seconds",
			Help: "Time taken to fetch a story from the CMS",
			// 50ms to ~25s covers CDN-fast responses through timeout scenarios
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 10),
		},
		[]string{"mode"},
	)

	m.fixtureFallbacks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "content_fixture_fallbacks_total",
			Help: "Total number of fetches served from local fixtures",
		},
		[]string{"reason"}, // reason: offline, upstream_failure
	)

	m.upstreamErrorTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "content_upstream_errors_total",
			Help: "Total number of upstream CMS API errors",
		},
		[]string{"category"},
	)

	m.validationFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "content_validation_failures_total",
			Help: "Total number of content trees that failed schema validation",
		},
		[]string{"component"},
	)

	m.settingsCacheHits = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "content_settings_cache_hits_total",
		Help: "Total number of fresh settings cache hits",
	})
	m.settingsCacheStaleHits = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "content_settings_cache_stale_hits_total",
		Help: "Total number of stale settings cache hits that triggered revalidation",
	})
	m.settingsCacheMisses = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "content_settings_cache_misses_total",
		Help: "Total number of settings cache misses requiring a blocking fetch",
	})
	m.settingsRevalidationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "content_settings_revalidations_total",
			Help: "Total number of background settings revalidations",
		},
		[]string{"outcome"}, // outcome: success, error
	)
}

// Describe implements prometheus.Collector
func (m *ContentMetrics) Describe(ch chan<- *prometheus.Desc) {
	m.fetchTotal.Describe(ch)
	m.fetchDuration.Describe(ch)
	m.fixtureFallbacks.Describe(ch)
	m.upstreamErrorTotal.Describe(ch)
	m.validationFailuresTotal.Describe(ch)
	m.settingsCacheHits.Describe(ch)
	m.settingsCacheStaleHits.Describe(ch)
	m.settingsCacheMisses.Describe(ch)
	m.settingsRevalidationsTotal.Describe(ch)
}

// Collect implements prometheus.Collector
func (m *ContentMetrics) Collect(ch chan<- prometheus.Metric) {
	m.fetchTotal.Collect(ch)
	m.fetchDuration.Collect(ch)
	m.fixtureFallbacks.Collect(ch)
	m.upstreamErrorTotal.Collect(ch)
	m.validationFailuresTotal.Collect(ch)
	m.settingsCacheHits.Collect(ch)
	m.settingsCacheStaleHits.Collect(ch)
	m.settingsCacheMisses.Collect(ch)
	m.settingsRevalidationsTotal.Collect(ch)
}

// RecordFetch records a completed story fetch with its mode and outcome
func (m *ContentMetrics) RecordFetch(mode, outcome string, seconds float64) {
	if m == nil {
		return
	}
	m.fetchTotal.WithLabelValues(mode, outcome).Inc()
	m.fetchDuration.WithLabelValues(mode).Observe(seconds)
}

// RecordFixtureFallback records a fetch served from the local fixture registry
func (m *ContentMetrics) RecordFixtureFallback(reason string) {
	if m == nil {
		return
	}
	m.fixtureFallbacks.WithLabelValues(reason).Inc()
}

// RecordUpstreamError records an upstream CMS API error by category
func (m *ContentMetrics) RecordUpstreamError(category string) {
	if m == nil {
		return
	}
	m.upstreamErrorTotal.WithLabelValues(category).Inc()
}

// RecordValidationFailure records a content tree that failed schema validation
func (m *ContentMetrics) RecordValidationFailure(component string) {
	if m == nil {
		return
	}
	m.validationFailuresTotal.WithLabelValues(component).Inc()
}

// RecordSettingsCacheHit records a fresh settings cache hit
func (m *ContentMetrics) RecordSettingsCacheHit() {
	if m == nil {
		return
	}
	m.settingsCacheHits.Inc()
}

// RecordSettingsCacheStaleHit records a stale hit that kicked off revalidation
func (m *ContentMetrics) RecordSettingsCacheStaleHit() {
	if m == nil {
		return
	}
	m.settingsCacheStaleHits.Inc()
}

// RecordSettingsCacheMiss records an empty-cache blocking fetch
func (m *ContentMetrics) RecordSettingsCacheMiss() {
	if m == nil {
		return
	}
	m.settingsCacheMisses.Inc()
}

// RecordSettingsRevalidation records a background revalidation outcome
func (m *ContentMetrics) RecordSettingsRevalidation(outcome string) {
	if m == nil {
		return
	}
	m.settingsRevalidationsTotal.WithLabelValues(outcome).Inc()
}
