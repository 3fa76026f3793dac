// Package storyblok implements a client for the Storyblok-compatible
// content delivery API.
package storyblok

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net/http"
	"net/url"
	"path/filepath"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/mlehtin/storykit/internal/errors"
	"github.com/mlehtin/storykit/internal/httpclient"
	"github.com/mlehtin/storykit/internal/logging"
)

// Package-level logger specific to the storyblok client
var (
	logger          *slog.Logger
	serviceLevelVar = new(slog.LevelVar) // Dynamic level control
	closeLogger     func() error
)

func init() {
	var err error
	logFilePath := filepath.Join("logs", "storyblok.log")
	serviceLevelVar.Set(slog.LevelDebug)

	logger, closeLogger, err = logging.NewFileLogger(logFilePath, "storyblok", serviceLevelVar)
	if err != nil {
		log.Printf("Failed to initialize storyblok file logger at %s: %v. Service logging disabled.", logFilePath, err)
		logger = logging.NewDiscardLogger("storyblok", serviceLevelVar)
		closeLogger = func() error { return nil }
	}
}

// Config holds configuration for the delivery API client.
type Config struct {
	Token    string        // content delivery API token
	BaseURL  string        // API base URL
	Timeout  time.Duration // per-request timeout
	CacheTTL time.Duration // response cache TTL
	Version  string        // default content version when a request has none
	Debug    bool          // enable verbose request logging
}

// DefaultConfig returns client defaults matching the hosted delivery API.
func DefaultConfig() Config {
	return Config{
		BaseURL:  "https://api.storyblok.com/v2",
		Timeout:  10 * time.Second,
		CacheTTL: 30 * time.Second,
		Version:  VersionPublished,
	}
}

// Client provides methods for the content delivery API.
type Client struct {
	config        Config
	httpClient    *httpclient.Client
	responseCache *cache.Cache
	cv            atomic.Int64 // last seen cache-version token, sent on subsequent requests

	// Metrics
	metrics struct {
		apiCalls    int64
		cacheHits   int64
		cacheMisses int64
		apiErrors   int64
		mu          sync.RWMutex
	}
}

// NewClient creates a new delivery API client.
func NewClient(config Config) (*Client, error) {
	if config.Token == "" {
		return nil, errors.Newf("content delivery token is required").
			Category(errors.CategoryConfiguration).
			Component("storyblok").
			Build()
	}

	defaults := DefaultConfig()
	if config.BaseURL == "" {
		config.BaseURL = defaults.BaseURL
	}
	if config.Timeout == 0 {
		config.Timeout = defaults.Timeout
	}
	if config.CacheTTL == 0 {
		config.CacheTTL = defaults.CacheTTL
	}
	if config.Version == "" {
		config.Version = defaults.Version
	}

	client := &Client{
		config: config,
		httpClient: httpclient.New(&httpclient.Config{
			DefaultTimeout: config.Timeout,
			UserAgent:      "storykit",
		}),
		responseCache: cache.New(config.CacheTTL, config.CacheTTL*2),
	}

	logger.Info("storyblok client initialized",
		"base_url", config.BaseURL,
		"cache_ttl", config.CacheTTL,
		"default_version", config.Version,
		"token_configured", config.Token != "")

	return client, nil
}

// Close cleans up client resources.
func (c *Client) Close() {
	c.httpClient.Close()
	logger.Info("closing storyblok client")

	if closeLogger != nil {
		if err := closeLogger(); err != nil {
			log.Printf("Error closing storyblok logger: %v", err)
		}
	}
}

// GetStory retrieves a single story by its slug.
// A 2xx response without a story payload is reported as an error: a story
// endpoint answering without a story is an upstream fault, not a success.
func (c *Client) GetStory(ctx context.Context, slug string, p Params) (*StoryResponse, error) {
	if slug == "" {
		return nil, errors.Newf("story slug must not be empty").
			Category(errors.CategoryValidation).
			Component("storyblok").
			Build()
	}

	endpoint := fmt.Sprintf("%s/cdn/stories/%s", c.config.BaseURL, slug)
	requestURL := endpoint + "?" + c.queryFor(p).Encode()

	var result StoryResponse
	if err := c.doGet(ctx, requestURL, &result, nil); err != nil {
		return nil, err
	}

	if result.Story == nil {
		return nil, errors.Newf("delivery API response is missing the story payload").
			Category(errors.CategoryHTTP).
			Context("slug", slug).
			Component("storyblok").
			Build()
	}

	c.rememberCV(result.CV)
	return &result, nil
}

// ListStories retrieves a page of stories. Total is taken from the Total
// response header when present.
func (c *Client) ListStories(ctx context.Context, p Params) (*StoriesResponse, error) {
	endpoint := fmt.Sprintf("%s/cdn/stories", c.config.BaseURL)
	requestURL := endpoint + "?" + c.queryFor(p).Encode()

	var result StoriesResponse
	var total int
	err := c.doGet(ctx, requestURL, &result, func(resp *http.Response) {
		if v := resp.Header.Get("Total"); v != "" {
			if parsed, err := strconv.Atoi(v); err == nil {
				total = parsed
			}
		}
	})
	if err != nil {
		return nil, err
	}

	if result.Stories == nil {
		return nil, errors.Newf("delivery API response is missing the stories payload").
			Category(errors.CategoryHTTP).
			Component("storyblok").
			Build()
	}

	if total == 0 {
		total = len(result.Stories)
	}
	result.Total = total

	c.rememberCV(result.CV)
	return &result, nil
}

// CacheVersion returns the last cache-version token seen from the API.
func (c *Client) CacheVersion() int64 {
	return c.cv.Load()
}

// FlushCache clears the response cache.
func (c *Client) FlushCache() {
	c.responseCache.Flush()
	logger.Info("storyblok response cache cleared")
}

// queryFor builds the query values for a request, layering the client's
// default version under the caller's params.
func (c *Client) queryFor(p Params) url.Values {
	if p.Version == "" {
		p.Version = c.config.Version
	}
	return p.values(c.config.Token, c.cv.Load())
}

// rememberCV stores the cache-version token from a successful response.
func (c *Client) rememberCV(cv int64) {
	if cv > 0 {
		c.cv.Store(cv)
	}
}

// doGet performs a GET against the delivery API with response caching.
// Draft requests bypass the cache so editors always see current content.
func (c *Client) doGet(ctx context.Context, requestURL string, result any, inspect func(*http.Response)) error {
	cacheable := !isDraftURL(requestURL)

	if cacheable {
		if cached, found := c.responseCache.Get(requestURL); found {
			if body, ok := cached.([]byte); ok {
				c.metrics.mu.Lock()
				c.metrics.cacheHits++
				c.metrics.mu.Unlock()

				logger.Debug("delivery response cache hit", "url", requestURL)
				return json.Unmarshal(body, result)
			}
		}
		c.metrics.mu.Lock()
		c.metrics.cacheMisses++
		c.metrics.mu.Unlock()
	}

	reqCtx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	start := time.Now()
	c.metrics.mu.Lock()
	c.metrics.apiCalls++
	c.metrics.mu.Unlock()

	resp, err := c.httpClient.Get(reqCtx, requestURL)
	if err != nil {
		c.metrics.mu.Lock()
		c.metrics.apiErrors++
		c.metrics.mu.Unlock()

		logger.Error("delivery API request failed", "error", err, "url", requestURL)
		return errors.Newf("delivery API request failed: %w", err).
			Category(errors.CategoryNetwork).
			Context("url", requestURL).
			Component("storyblok").
			Build()
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.Error("failed to read delivery API response body",
			"error", err,
			"url", requestURL,
			"status_code", resp.StatusCode)
		return errors.Newf("failed to read response body: %w", err).
			Category(errors.CategoryNetwork).
			StatusCode(resp.StatusCode).
			Component("storyblok").
			Build()
	}

	if resp.StatusCode >= 400 {
		c.metrics.mu.Lock()
		c.metrics.apiErrors++
		c.metrics.mu.Unlock()

		var apiErr apiError
		message := string(bodyBytes)
		if err := json.Unmarshal(bodyBytes, &apiErr); err == nil {
			if apiErr.Message != "" {
				message = apiErr.Message
			} else if apiErr.Error != "" {
				message = apiErr.Error
			}
		}

		if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
			logger.Error("delivery API authentication failed",
				"status_code", resp.StatusCode,
				"url", requestURL,
				"message", "check the content delivery token configuration")
		} else {
			logger.Warn("delivery API error response",
				"status_code", resp.StatusCode,
				"url", requestURL,
				"message", message)
		}

		return errors.Newf("delivery API error (status %d): %s", resp.StatusCode, message).
			Category(errors.CategoryForStatus(resp.StatusCode)).
			StatusCode(resp.StatusCode).
			Context("url", requestURL).
			Component("storyblok").
			Build()
	}

	if inspect != nil {
		inspect(resp)
	}

	if err := json.Unmarshal(bodyBytes, result); err != nil {
		responsePreview := string(bodyBytes)
		if len(responsePreview) > 500 {
			responsePreview = responsePreview[:500] + "..."
		}

		logger.Error("failed to parse delivery API response",
			"error", err,
			"url", requestURL,
			"response_size", len(bodyBytes),
			"response_preview", responsePreview)
		return errors.Newf("failed to parse response: %w", err).
			Category(errors.CategoryFileParsing).
			Context("url", requestURL).
			Component("storyblok").
			Build()
	}

	if cacheable {
		c.responseCache.Set(requestURL, bodyBytes, cache.DefaultExpiration)
	}

	duration := time.Since(start)
	if c.config.Debug {
		logger.Debug("delivery API response",
			"status_code", resp.StatusCode,
			"url", requestURL,
			"duration_ms", duration.Milliseconds(),
			"response_size", len(bodyBytes))
	} else {
		logger.Info("delivery API request successful",
			"url", requestURL,
			"duration_ms", duration.Milliseconds())
	}

	return nil
}

// Metrics represents delivery client counters.
type Metrics struct {
	APICalls    int64 `json:"api_calls"`
	CacheHits   int64 `json:"cache_hits"`
	CacheMisses int64 `json:"cache_misses"`
	APIErrors   int64 `json:"api_errors"`
}

// GetMetrics returns current client metrics.
func (c *Client) GetMetrics() Metrics {
	c.metrics.mu.RLock()
	defer c.metrics.mu.RUnlock()

	return Metrics{
		APICalls:    c.metrics.apiCalls,
		CacheHits:   c.metrics.cacheHits,
		CacheMisses: c.metrics.cacheMisses,
		APIErrors:   c.metrics.apiErrors,
	}
}

func isDraftURL(requestURL string) bool {
	u, err := url.Parse(requestURL)
	if err != nil {
		return false
	}
	return u.Query().Get("version") == VersionDraft
}
