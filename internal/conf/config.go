// config.go: settings struct and functions to load and save configuration for storykit.
package conf

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvDevelopment selects the draft content version, everything else publishes.
const EnvDevelopment = "development"

// CMSSettings contains settings for the headless CMS APIs.
type CMSSettings struct {
	Token           string        // content delivery API token, empty enables offline mode
	ManagementToken string        // management API token, used only by codegen
	SpaceID         string        // CMS space identifier, used only by codegen
	BaseURL         string        // content delivery API base URL
	ManagementURL   string        // management API base URL
	AssetHost       string        // asset domain recognized by the image transformer
	Timeout         time.Duration // per-request timeout for delivery API calls
	CacheTTL        time.Duration // delivery response cache TTL
}

// ContentSettings contains settings for the content resilience layer.
type ContentSettings struct {
	SettingsSlug       string        // slug of the global site settings story
	DefaultFixtureSlug string        // fixture used when a requested slug has no fixture
	FixturesDir        string        // optional directory overriding the embedded fixture set
	SettingsCacheTTL   time.Duration // stale-while-revalidate TTL for global settings
}

// CodegenSettings contains settings for the schema code generator.
type CodegenSettings struct {
	OutputDir   string // directory for generated artifacts
	HashFile    string // schema hash marker path, relative to OutputDir
	MaxRetries  int    // retry ceiling for management API fetches
	RetryBaseMS int    // base backoff delay in milliseconds
}

// LogSettings contains settings for file logging.
type LogSettings struct {
	Enabled bool   // true to enable per-service log files
	Path    string // directory for log files
}

// Settings contains all application settings.
type Settings struct {
	Debug       bool   // true to enable debug output
	Environment string // "development" selects draft content, anything else published

	CMS     CMSSettings
	Content ContentSettings
	Codegen CodegenSettings
	Log     LogSettings
}

// settingsInstance is the current settings instance
var (
	settingsInstance *Settings
	once             sync.Once
	settingsMutex    sync.RWMutex
)

// Load reads the configuration file and environment variables into a Settings struct.
func Load() (*Settings, error) {
	settingsMutex.Lock()
	defer settingsMutex.Unlock()

	settings := &Settings{}

	if err := initViper(); err != nil {
		return nil, fmt.Errorf("error initializing viper: %w", err)
	}

	if err := viper.Unmarshal(settings); err != nil {
		return nil, fmt.Errorf("error unmarshaling config into struct: %w", err)
	}

	if err := ValidateSettings(settings); err != nil {
		return nil, fmt.Errorf("error validating settings: %w", err)
	}

	settingsInstance = settings
	return settingsInstance, nil
}

// initViper initializes viper with default values and reads the configuration file.
func initViper() error {
	viper.SetConfigName("storykit")
	viper.SetConfigType("yaml")

	viper.AddConfigPath(".")
	if configDir, err := os.UserConfigDir(); err == nil {
		viper.AddConfigPath(filepath.Join(configDir, "storykit"))
	}

	// Set default values for each configuration parameter
	// function defined in defaults.go
	setDefaultConfig()

	// Bind environment variables, function defined in env.go
	if err := bindEnvVars(); err != nil {
		return fmt.Errorf("error binding environment variables: %w", err)
	}

	err := viper.ReadInConfig()
	if err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			// No config file is fine, defaults plus environment carry the day
			return nil
		}
		return fmt.Errorf("fatal error reading config file: %w", err)
	}

	return nil
}

// Setting returns the current settings instance, initializing it if necessary
func Setting() *Settings {
	once.Do(func() {
		if settingsInstance == nil {
			_, err := Load()
			if err != nil {
				log.Fatalf("Error loading settings: %v", err)
			}
		}
	})
	return GetSettings()
}

// GetSettings returns the current settings instance without triggering a load.
// Returns nil if Load has not been called.
func GetSettings() *Settings {
	settingsMutex.RLock()
	defer settingsMutex.RUnlock()
	return settingsInstance
}

// SetSettings replaces the current settings instance. Intended for tests.
func SetSettings(settings *Settings) {
	settingsMutex.Lock()
	defer settingsMutex.Unlock()
	settingsInstance = settings
}

// SaveYAMLConfig writes the settings to a YAML configuration file.
// It overwrites the existing file, not preserving comments or structure.
func SaveYAMLConfig(configPath string, settings *Settings) error {
	yamlData, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("error marshaling settings to YAML: %w", err)
	}

	// Write to a temporary file first for an atomic replace
	tempFile, err := os.CreateTemp(filepath.Dir(configPath), "storykit-*.yaml")
	if err != nil {
		return fmt.Errorf("error creating temporary config file: %w", err)
	}
	tempName := tempFile.Name()

	if _, err := tempFile.Write(yamlData); err != nil {
		_ = tempFile.Close()
		_ = os.Remove(tempName)
		return fmt.Errorf("error writing temporary config file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		_ = os.Remove(tempName)
		return fmt.Errorf("error closing temporary config file: %w", err)
	}

	if err := os.Rename(tempName, configPath); err != nil {
		_ = os.Remove(tempName)
		return fmt.Errorf("error replacing config file: %w", err)
	}

	return nil
}

// Offline reports whether the delivery credential is absent, which switches
// the content layer to fixture-only mode.
func (s *Settings) Offline() bool {
	return s.CMS.Token == ""
}

// ContentVersion returns the delivery API version matching the build environment.
func (s *Settings) ContentVersion() string {
	if s.Environment == EnvDevelopment {
		return "draft"
	}
	return "published"
}
