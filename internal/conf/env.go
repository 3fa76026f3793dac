// env.go - Environment variable configuration and validation for storykit
package conf

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// envBinding holds metadata for environment variable bindings (internal use)
type envBinding struct {
	ConfigKey string             // Viper config key
	EnvVar    string             // Environment variable name
	Validate  func(string) error // Optional validation function
}

// getEnvBindings returns all environment variable bindings with validation.
// The STORYBLOK_* names follow the CMS vendor convention so deployments can
// reuse credentials already present in their environment.
func getEnvBindings() []envBinding {
	return []envBinding{
		{"cms.token", "STORYBLOK_TOKEN", nil},
		{"cms.managementtoken", "STORYBLOK_MANAGEMENT_TOKEN", nil},
		{"cms.spaceid", "STORYBLOK_SPACE_ID", validateEnvSpaceID},
		{"cms.baseurl", "STORYKIT_CMS_BASEURL", validateEnvURL},
		{"cms.managementurl", "STORYKIT_CMS_MANAGEMENTURL", validateEnvURL},
		{"cms.assethost", "STORYKIT_CMS_ASSETHOST", nil},

		{"environment", "STORYKIT_ENVIRONMENT", nil},
		{"debug", "STORYKIT_DEBUG", validateEnvBool},

		{"content.settingsslug", "STORYKIT_SETTINGS_SLUG", nil},
		{"content.fixturesdir", "STORYKIT_FIXTURES_DIR", nil},

		{"log.enabled", "STORYKIT_LOG_ENABLED", validateEnvBool},
		{"log.path", "STORYKIT_LOG_PATH", nil},
	}
}

// bindEnvVars sets up environment variable bindings with validation (internal)
func bindEnvVars() error {
	bindings := getEnvBindings()
	var warnings []string

	for _, binding := range bindings {
		if err := viper.BindEnv(binding.ConfigKey, binding.EnvVar); err != nil {
			warnings = append(warnings, fmt.Sprintf("Failed to bind %s: %v", binding.EnvVar, err))
			continue
		}

		if binding.Validate != nil {
			if value, ok := os.LookupEnv(binding.EnvVar); ok {
				if err := binding.Validate(value); err != nil {
					warnings = append(warnings, fmt.Sprintf("Invalid value for %s: %v", binding.EnvVar, err))
				}
			}
		}
	}

	for _, warning := range warnings {
		log.Printf("conf: %s", warning)
	}

	return nil
}

func validateEnvBool(value string) error {
	if _, err := strconv.ParseBool(value); err != nil {
		return fmt.Errorf("expected boolean, got %q", value)
	}
	return nil
}

func validateEnvSpaceID(value string) error {
	if _, err := strconv.Atoi(value); err != nil {
		return fmt.Errorf("expected numeric space id, got %q", value)
	}
	return nil
}

func validateEnvURL(value string) error {
	if !strings.HasPrefix(value, "http://") && !strings.HasPrefix(value, "https://") {
		return fmt.Errorf("expected http(s) URL, got %q", value)
	}
	return nil
}
