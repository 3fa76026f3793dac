// conf/validate.go

package conf

import (
	"fmt"
	"strings"
)

// ValidationError represents a collection of validation errors
type ValidationError struct {
	Errors []string
}

// Error returns a string representation of the validation errors
func (ve ValidationError) Error() string {
	return fmt.Sprintf("Validation errors: %v", ve.Errors)
}

// ValidateSettings validates the entire Settings struct
func ValidateSettings(settings *Settings) error {
	ve := ValidationError{}

	if err := validateCMSSettings(&settings.CMS); err != nil {
		ve.Errors = append(ve.Errors, err.Error())
	}
	if err := validateContentSettings(&settings.Content); err != nil {
		ve.Errors = append(ve.Errors, err.Error())
	}
	if err := validateCodegenSettings(&settings.Codegen); err != nil {
		ve.Errors = append(ve.Errors, err.Error())
	}

	if len(ve.Errors) > 0 {
		return ve
	}
	return nil
}

func validateCMSSettings(cms *CMSSettings) error {
	if cms.BaseURL == "" {
		return fmt.Errorf("cms.baseurl must not be empty")
	}
	if !strings.HasPrefix(cms.BaseURL, "http://") && !strings.HasPrefix(cms.BaseURL, "https://") {
		return fmt.Errorf("cms.baseurl must be an http(s) URL, got %q", cms.BaseURL)
	}
	if cms.Timeout <= 0 {
		return fmt.Errorf("cms.timeout must be positive, got %v", cms.Timeout)
	}
	return nil
}

func validateContentSettings(content *ContentSettings) error {
	if content.SettingsSlug == "" {
		return fmt.Errorf("content.settingsslug must not be empty")
	}
	if content.SettingsCacheTTL <= 0 {
		return fmt.Errorf("content.settingscachettl must be positive, got %v", content.SettingsCacheTTL)
	}
	return nil
}

func validateCodegenSettings(codegen *CodegenSettings) error {
	if codegen.MaxRetries < 1 {
		return fmt.Errorf("codegen.maxretries must be at least 1, got %d", codegen.MaxRetries)
	}
	if codegen.RetryBaseMS < 1 {
		return fmt.Errorf("codegen.retrybasems must be at least 1, got %d", codegen.RetryBaseMS)
	}
	return nil
}
