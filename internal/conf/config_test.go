package conf

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func validSettings() *Settings {
	return &Settings{
		Environment: "production",
		CMS: CMSSettings{
			BaseURL:  "https://api.storyblok.com/v2",
			Timeout:  10 * time.Second,
			CacheTTL: 30 * time.Second,
		},
		Content: ContentSettings{
			SettingsSlug:       "site-settings",
			DefaultFixtureSlug: "home",
			SettingsCacheTTL:   time.Minute,
		},
		Codegen: CodegenSettings{
			OutputDir:   "internal/schema",
			HashFile:    "schema.sha256",
			MaxRetries:  5,
			RetryBaseMS: 500,
		},
	}
}

func TestValidateSettings(t *testing.T) {
	t.Parallel()

	require.NoError(t, ValidateSettings(validSettings()))

	tests := []struct {
		name    string
		mutate  func(*Settings)
		wantErr string
	}{
		{
			name:    "empty base URL",
			mutate:  func(s *Settings) { s.CMS.BaseURL = "" },
			wantErr: "cms.baseurl must not be empty",
		},
		{
			name:    "non-http base URL",
			mutate:  func(s *Settings) { s.CMS.BaseURL = "ftp://api.storyblok.com" },
			wantErr: "cms.baseurl must be an http(s) URL",
		},
		{
			name:    "zero timeout",
			mutate:  func(s *Settings) { s.CMS.Timeout = 0 },
			wantErr: "cms.timeout must be positive",
		},
		{
			name:    "empty settings slug",
			mutate:  func(s *Settings) { s.Content.SettingsSlug = "" },
			wantErr: "content.settingsslug must not be empty",
		},
		{
			name:    "zero settings cache TTL",
			mutate:  func(s *Settings) { s.Content.SettingsCacheTTL = 0 },
			wantErr: "content.settingscachettl must be positive",
		},
		{
			name:    "zero codegen retries",
			mutate:  func(s *Settings) { s.Codegen.MaxRetries = 0 },
			wantErr: "codegen.maxretries must be at least 1",
		},
		{
			name:    "zero retry base",
			mutate:  func(s *Settings) { s.Codegen.RetryBaseMS = 0 },
			wantErr: "codegen.retrybasems must be at least 1",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			settings := validSettings()
			tt.mutate(settings)
			err := ValidateSettings(settings)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateSettingsCollectsAllErrors(t *testing.T) {
	t.Parallel()

	settings := validSettings()
	settings.CMS.BaseURL = ""
	settings.Content.SettingsSlug = ""
	settings.Codegen.MaxRetries = 0

	err := ValidateSettings(settings)
	require.Error(t, err)

	var ve ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Len(t, ve.Errors, 3)
}

func TestOffline(t *testing.T) {
	t.Parallel()

	settings := validSettings()
	assert.True(t, settings.Offline(), "absent delivery token means offline")

	settings.CMS.Token = "delivery-token"
	assert.False(t, settings.Offline())
}

func TestContentVersion(t *testing.T) {
	t.Parallel()

	settings := validSettings()
	assert.Equal(t, "published", settings.ContentVersion())

	settings.Environment = EnvDevelopment
	assert.Equal(t, "draft", settings.ContentVersion())

	settings.Environment = "staging"
	assert.Equal(t, "published", settings.ContentVersion())
}

func TestSaveYAMLConfigRoundTrip(t *testing.T) {
	t.Parallel()

	settings := validSettings()
	settings.CMS.Token = "delivery-token"
	settings.Content.FixturesDir = "fixtures"

	path := filepath.Join(t.TempDir(), "storykit.yaml")
	require.NoError(t, SaveYAMLConfig(path, settings))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var loaded Settings
	require.NoError(t, yaml.Unmarshal(data, &loaded))
	assert.Equal(t, *settings, loaded)
}

func TestSetSettings(t *testing.T) {
	settings := validSettings()
	SetSettings(settings)
	assert.Same(t, settings, GetSettings())
}
