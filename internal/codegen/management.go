package codegen

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mlehtin/storykit/internal/errors"
	"github.com/mlehtin/storykit/internal/httpclient"
)

// ManagementConfig holds connection settings for the management API, which
// uses a bearer token distinct from the content delivery credential.
type ManagementConfig struct {
	Token   string
	SpaceID string
	BaseURL string
	Timeout time.Duration

	MaxRetries int
	RetryBase  time.Duration
}

// DefaultManagementConfig returns defaults matching the hosted management API.
func DefaultManagementConfig() ManagementConfig {
	return ManagementConfig{
		BaseURL:    "https://mapi.storyblok.com/v1",
		Timeout:    15 * time.Second,
		MaxRetries: 5,
		RetryBase:  500 * time.Millisecond,
	}
}

// ManagementClient fetches component schemas from the management API.
type ManagementClient struct {
	config     ManagementConfig
	httpClient *httpclient.Client
	policy     retryPolicy
}

// NewManagementClient validates cfg and returns a client. Token and SpaceID
// are mandatory: the generator has no offline fallback.
func NewManagementClient(cfg ManagementConfig) (*ManagementClient, error) {
	if cfg.Token == "" {
		return nil, errors.Newf("management API token is required").
			Category(errors.CategoryConfiguration).
			Component("codegen").
			Context("operation", "new_management_client").
			Build()
	}
	if cfg.SpaceID == "" {
		return nil, errors.Newf("management API space ID is required").
			Category(errors.CategoryConfiguration).
			Component("codegen").
			Context("operation", "new_management_client").
			Build()
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultManagementConfig().BaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultManagementConfig().Timeout
	}

	policy := defaultRetryPolicy()
	if cfg.MaxRetries > 0 {
		policy.MaxAttempts = cfg.MaxRetries
	}
	if cfg.RetryBase > 0 {
		policy.BaseDelay = cfg.RetryBase
	}

	return &ManagementClient{
		config: cfg,
		httpClient: httpclient.New(&httpclient.Config{
			DefaultTimeout: cfg.Timeout,
		}),
		policy: policy,
	}, nil
}

// ManagementComponent is one component definition as the management API
// returns it. Schema preserves the raw field descriptors keyed by field name.
type ManagementComponent struct {
	Name        string                     `json:"name"`
	DisplayName string                     `json:"display_name,omitempty"`
	IsRoot      bool                       `json:"is_root,omitempty"`
	IsNestable  bool                       `json:"is_nestable,omitempty"`
	Schema      map[string]ManagementField `json:"schema"`
}

// ManagementField is one field descriptor inside a component schema.
type ManagementField struct {
	Type               string        `json:"type"`
	Pos                int           `json:"pos,omitempty"`
	Required           bool          `json:"required,omitempty"`
	DisplayName        string        `json:"display_name,omitempty"`
	ComponentWhitelist []string      `json:"component_whitelist,omitempty"`
	RestrictComponents bool          `json:"restrict_components,omitempty"`
	Options            []FieldOption `json:"options,omitempty"`
}

// FieldOption is one selectable value of an option/options field.
type FieldOption struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type componentsResponse struct {
	Components []ManagementComponent `json:"components"`
}

// FetchComponents retrieves the space's component list, retrying transient
// failures per the client's policy. Authentication and not-found errors abort
// immediately: a code generator has no sensible fallback for those.
func (c *ManagementClient) FetchComponents(ctx context.Context) ([]ManagementComponent, error) {
	url := fmt.Sprintf("%s/spaces/%s/components", c.config.BaseURL, c.config.SpaceID)

	var components []ManagementComponent
	err := c.policy.Run(ctx, func(ctx context.Context) error {
		list, err := c.fetchOnce(ctx, url)
		if err != nil {
			return err
		}
		components = list
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Fetched component schemas from management API",
		"space_id", c.config.SpaceID, "components", len(components))
	return components, nil
}

func (c *ManagementClient) fetchOnce(ctx context.Context, url string) ([]ManagementComponent, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.New(err).
			Category(errors.CategoryNetwork).
			Component("codegen").
			Context("operation", "fetch_components").
			Build()
	}
	req.Header.Set("Authorization", c.config.Token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(ctx, req)
	if err != nil {
		return nil, errors.New(err).
			Category(errors.CategoryNetwork).
			Component("codegen").
			Context("operation", "fetch_components").
			Build()
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.Debug("Failed to close management API response body", "error", err)
		}
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 16<<20))
	if err != nil {
		return nil, errors.New(err).
			Category(errors.CategoryNetwork).
			Component("codegen").
			Context("operation", "fetch_components").
			Build()
	}

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Newf("management API returned status %d", resp.StatusCode).
			Category(errors.CategoryForStatus(resp.StatusCode)).
			Component("codegen").
			Context("operation", "fetch_components").
			StatusCode(resp.StatusCode).
			Build()
	}

	var parsed componentsResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, errors.New(err).
			Category(errors.CategoryFileParsing).
			Component("codegen").
			Context("operation", "fetch_components").
			Build()
	}
	if len(parsed.Components) == 0 {
		return nil, errors.Newf("management API response contains no components").
			Category(errors.CategoryHTTP).
			Component("codegen").
			Context("operation", "fetch_components").
			Build()
	}
	return parsed.Components, nil
}

// Close releases the client's connection pool.
func (c *ManagementClient) Close() {
	c.httpClient.Close()
}
